// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package grids

import "fmt"

// DefaultToolbarSize is the thickness of a composite's toolbar strip
// if its Options don't set one.
const DefaultToolbarSize = 30

// Options configures a composite layout created by [New].  It replaces
// the dynamic keyword arguments of the original grid-plot API by an
// explicit record whose recognized options are the toolbar's position,
// the panels' shared dimensions and the toolbar strip's thickness.
type Options struct {

	// Position of the toolbar relative to the panel grid; mandatory,
	// i.e. the zero value fails validation.
	Position Position

	// PanelWidth is the shared width of all panels; must be positive.
	PanelWidth int

	// PanelHeight is the shared height of all panels; must be
	// positive.
	PanelHeight int

	// ToolbarSize is the thickness of the toolbar strip, i.e. its
	// height if positioned Above or Below and its width if positioned
	// Left or Right.  Zero defaults to [DefaultToolbarSize]; negative
	// values fail validation.
	ToolbarSize int
}

// toolbarSize returns the set toolbar size falling back to
// DefaultToolbarSize if unset.
func (oo Options) toolbarSize() int {
	if oo.ToolbarSize == 0 {
		return DefaultToolbarSize
	}
	return oo.ToolbarSize
}

// validate returns a wrapped ErrGrid, ErrDimensions or ErrPosition
// error if given grid or receiving options are unusable for a
// composite layout; otherwise nil.
func (oo Options) validate(gg Grid) error {
	if gg.IsEmpty() {
		return fmt.Errorf("%w: no panels given", ErrGrid)
	}
	if !gg.IsRectangular() {
		return fmt.Errorf("%w: rows differ in length", ErrGrid)
	}
	if oo.PanelWidth <= 0 || oo.PanelHeight <= 0 {
		return fmt.Errorf("%w: panel extent %dx%d not positive",
			ErrDimensions, oo.PanelWidth, oo.PanelHeight)
	}
	if oo.ToolbarSize < 0 {
		return fmt.Errorf("%w: toolbar size %d negative",
			ErrDimensions, oo.ToolbarSize)
	}
	if !oo.Position.Valid() {
		return fmt.Errorf("%w: %d", ErrPosition, oo.Position)
	}
	return nil
}
