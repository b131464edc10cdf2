// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package grids

import "fmt"

// A Dim instance describes the rectangular area a layouted component
// takes up: its origin relative to the surrounding composition's
// origin and its extent.  The unit of a Dim's values is defined by the
// presentation collaborator, e.g. pixels or terminal cells.  A Dim
// instance is a value, i.e. it is copied and compared as such.
type Dim struct {
	x, y, width, height int
}

// DimAt returns a Dim with given origin x, y and given extent width,
// height.
func DimAt(x, y, width, height int) Dim {
	return Dim{x: x, y: y, width: width, height: height}
}

// DimOf returns a Dim with given extent width, height at the origin
// of its surrounding composition.
func DimOf(width, height int) Dim { return DimAt(0, 0, width, height) }

// X returns the horizontal offset of a dim's area.
func (d Dim) X() int { return d.x }

// Y returns the vertical offset of a dim's area.
func (d Dim) Y() int { return d.y }

// Width returns the horizontal extent of a dim's area.
func (d Dim) Width() int { return d.width }

// Height returns the vertical extent of a dim's area.
func (d Dim) Height() int { return d.height }

// Area returns the number of units a dim's area covers.
func (d Dim) Area() int { return d.width * d.height }

// IsZero returns true if a dim has no extent.
func (d Dim) IsZero() bool { return d.width == 0 && d.height == 0 }

// MoveBy returns a new Dim whose origin is moved by given deltas dx
// and dy while its extent is kept.
func (d Dim) MoveBy(dx, dy int) Dim {
	return DimAt(d.x+dx, d.y+dy, d.width, d.height)
}

// String returns a dim's area in the format (x,y;widthxheight).
func (d Dim) String() string {
	return fmt.Sprintf("(%d,%d;%dx%d)", d.x, d.y, d.width, d.height)
}
