// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package grids

// Position indicates on which side of a panel grid its shared toolbar
// is placed.  The zero value is no valid position, i.e. an Options
// instance without a set position fails [New]'s validation with
// [ErrPosition].
type Position int

const (
	// Above places the toolbar along a grid's full width on top of
	// its panels.
	Above Position = iota + 1

	// Below places the toolbar along a grid's full width underneath
	// its panels.
	Below

	// Left places the toolbar along a grid's full height left of its
	// panels.
	Left

	// Right places the toolbar along a grid's full height right of
	// its panels.
	Right
)

// Valid returns true if given position is one of Above, Below, Left or
// Right.
func (p Position) Valid() bool { return p >= Above && p <= Right }

// vertical returns true for the positions whose toolbar spans a grid's
// height, i.e. Left and Right.
func (p Position) vertical() bool { return p == Left || p == Right }

// String returns given position's name as used by the original
// toolbar-location options, i.e. "above", "below", "left" or "right";
// other values stringify to "invalid position".
func (p Position) String() string {
	switch p {
	case Above:
		return "above"
	case Below:
		return "below"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "invalid position"
}
