// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package grids

// A Dimer is a component which can take part in a composition, i.e.
// it reports the extent it takes up.  [Composite], [Row] and [Column]
// are Dimers.
type Dimer interface {

	// Dim reports the extent of a component whereas its origin is
	// interpreted relative to the surrounding composition.
	Dim() Dim
}

// A Chainer lays its components out left to right.  A composing
// component MUST only implement either the Chainer or the Stacker
// interface, not both.
type Chainer interface {
	Dimer

	// Chained returns the components laid out left to right.
	Chained() []Dimer
}

// A Stacker lays its components out top to bottom.  A composing
// component MUST only implement either the Stacker or the Chainer
// interface, not both.
type Stacker interface {
	Dimer

	// Stacked returns the components laid out top to bottom.
	Stacked() []Dimer
}

// A Row chains given Dimers left to right; its extent is the sum of
// their widths and the maximum of their heights.  Rows and Columns
// nest arbitrarily.
type Row struct{ dd []Dimer }

// NewRow returns a Row chaining given Dimers left to right.
func NewRow(dd ...Dimer) *Row { return &Row{dd: dd} }

// Chained returns the components of given row laid out left to right.
func (r *Row) Chained() []Dimer { return append([]Dimer{}, r.dd...) }

// Dim returns the extent of given row, i.e. the width-sum and the
// height-maximum of its components.
func (r *Row) Dim() Dim {
	width, height := 0, 0
	for _, d := range r.dd {
		dim := d.Dim()
		width += dim.Width()
		if dim.Height() > height {
			height = dim.Height()
		}
	}
	return DimOf(width, height)
}

// A Column stacks given Dimers top to bottom; its extent is the
// maximum of their widths and the sum of their heights.  Columns and
// Rows nest arbitrarily.
type Column struct{ dd []Dimer }

// NewColumn returns a Column stacking given Dimers top to bottom.
func NewColumn(dd ...Dimer) *Column { return &Column{dd: dd} }

// Stacked returns the components of given column laid out top to
// bottom.
func (c *Column) Stacked() []Dimer { return append([]Dimer{}, c.dd...) }

// Dim returns the extent of given column, i.e. the width-maximum and
// the height-sum of its components.
func (c *Column) Dim() Dim {
	width, height := 0, 0
	for _, d := range c.dd {
		dim := d.Dim()
		height += dim.Height()
		if dim.Width() > width {
			width = dim.Width()
		}
	}
	return DimOf(width, height)
}

// Reflow calculates the placement of each component of the composition
// rooted in given Dimer and reports it to given callback.  The root is
// placed at the origin; a Chainer's components are placed at
// increasing horizontal, a Stacker's components at increasing vertical
// offsets.  Components smaller than their siblings keep their own
// extent, i.e. they are aligned top/left and nothing is clipped or
// stretched.  Reflow is a no-op if root or cb is nil.
func Reflow(root Dimer, cb func(Dimer, Dim)) {
	if root == nil || cb == nil {
		return
	}
	reflow(root, 0, 0, cb)
}

func reflow(d Dimer, x, y int, cb func(Dimer, Dim)) {
	dim := d.Dim()
	cb(d, DimAt(x, y, dim.Width(), dim.Height()))
	switch c := d.(type) {
	case Chainer:
		for _, child := range c.Chained() {
			reflow(child, x, y, cb)
			x += child.Dim().Width()
		}
	case Stacker:
		for _, child := range c.Stacked() {
			reflow(child, x, y, cb)
			y += child.Dim().Height()
		}
	}
}
