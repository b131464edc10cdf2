// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package grids

// A Composite pairs a panel grid with a toolbar position and reports
// the placement of its panels and its toolbar to a presentation
// collaborator.  Composites are created by [New], are immutable once
// created and hence safe for concurrent use.
type Composite struct {
	gg Grid
	oo Options
}

// New validates given grid against given options and returns a
// composite layout recording the grid's structure unchanged together
// with the options.  The returned composite shares the grid's panel
// references but not its slices, i.e. the caller may alter given grid
// afterwards without affecting the composite.  New fails with a
// wrapped [ErrGrid], [ErrDimensions] or [ErrPosition] error if the
// validation fails; see [Options.validate].
func New(gg Grid, oo Options) (*Composite, error) {
	if err := oo.validate(gg); err != nil {
		return nil, err
	}
	oo.ToolbarSize = oo.toolbarSize()
	return &Composite{gg: gg.clone(), oo: oo}, nil
}

// Rows returns the number of panel rows of given composite.
func (cc *Composite) Rows() int { return cc.gg.Rows() }

// Columns returns the number of panel columns of given composite.
func (cc *Composite) Columns() int { return cc.gg.Columns() }

// Panel returns the panel reference at given row and column and true,
// or nil and false if row or column are out of bound.
func (cc *Composite) Panel(row, column int) (Panel, bool) {
	if row < 0 || row >= cc.Rows() || column < 0 || column >= cc.Columns() {
		return nil, false
	}
	return cc.gg[row][column], true
}

// Grid returns a structural copy of given composite's panel grid.
func (cc *Composite) Grid() Grid { return cc.gg.clone() }

// Position returns the toolbar position of given composite.
func (cc *Composite) Position() Position { return cc.oo.Position }

// PanelWidth returns the shared width of given composite's panels.
func (cc *Composite) PanelWidth() int { return cc.oo.PanelWidth }

// PanelHeight returns the shared height of given composite's panels.
func (cc *Composite) PanelHeight() int { return cc.oo.PanelHeight }

// ToolbarSize returns the thickness of given composite's toolbar
// strip.
func (cc *Composite) ToolbarSize() int { return cc.oo.ToolbarSize }

// gridDim returns the extent of the panel grid without the toolbar.
func (cc *Composite) gridDim() (width, height int) {
	return cc.Columns() * cc.oo.PanelWidth, cc.Rows() * cc.oo.PanelHeight
}

// panelOffsets returns the offsets by which panels are shifted to
// make room for a toolbar positioned Above or Left.
func (cc *Composite) panelOffsets() (dx, dy int) {
	switch cc.oo.Position {
	case Above:
		return 0, cc.oo.ToolbarSize
	case Left:
		return cc.oo.ToolbarSize, 0
	}
	return 0, 0
}

// PanelDim returns the placement of the panel at given row and column
// relative to given composite's origin and true, or the zero Dim and
// false if row or column are out of bound.
func (cc *Composite) PanelDim(row, column int) (Dim, bool) {
	if _, ok := cc.Panel(row, column); !ok {
		return Dim{}, false
	}
	dx, dy := cc.panelOffsets()
	return DimAt(
		dx+column*cc.oo.PanelWidth,
		dy+row*cc.oo.PanelHeight,
		cc.oo.PanelWidth,
		cc.oo.PanelHeight,
	), true
}

// ToolbarDim returns the placement of given composite's toolbar strip
// relative to the composite's origin.  The strip spans the panel
// grid's full width if positioned Above or Below and the grid's full
// height if positioned Left or Right.
func (cc *Composite) ToolbarDim() Dim {
	gw, gh := cc.gridDim()
	switch cc.oo.Position {
	case Above:
		return DimAt(0, 0, gw, cc.oo.ToolbarSize)
	case Below:
		return DimAt(0, gh, gw, cc.oo.ToolbarSize)
	case Left:
		return DimAt(0, 0, cc.oo.ToolbarSize, gh)
	}
	return DimAt(gw, 0, cc.oo.ToolbarSize, gh)
}

// Dim returns the overall extent of given composite, i.e. its panel
// grid's extent plus the toolbar strip on the configured side.  Dim
// makes a composite a [Dimer], i.e. composable by [Row] and [Column].
func (cc *Composite) Dim() Dim {
	gw, gh := cc.gridDim()
	if cc.oo.Position.vertical() {
		return DimOf(gw+cc.oo.ToolbarSize, gh)
	}
	return DimOf(gw, gh+cc.oo.ToolbarSize)
}

// Eq returns true if given composites are structurally equal, i.e.
// they were created from grids holding identical panel references in
// identical shape and from equal options.
func (cc *Composite) Eq(other *Composite) bool {
	if cc == other {
		return true
	}
	if other == nil {
		return false
	}
	return cc.oo == other.oo && cc.gg.eq(other.gg)
}
