// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package grids composes a rectangular arrangement of panels with a
// shared toolbar into a composite layout.  A panel is an opaque
// reference to a rectangular visual unit, e.g. a single plot, which is
// created and rendered by collaborators of this package: a plotting
// collaborator provides the panels, a presentation collaborator
// consumes the composite layout and puts the panels and the toolbar on
// the screen.  grids itself neither inspects nor renders panels; it
// only describes where everything goes.  E.g.
//
//	+--------------------------+
//	|         toolbar          |
//	+------------+-------------+
//	|            |             |
//	|   panel    |   panel     |
//	|            |             |
//	+------------+-------------+
//	|            |             |
//	|   panel    |   panel     |
//	|            |             |
//	+------------+-------------+
//
// is the composite layout of a 2x2 grid whose toolbar is positioned
// Above.  Such a composite is created by [New] from a [Grid], i.e. the
// panels in rows of columns, and an [Options] instance providing the
// toolbar's [Position] and the panels' shared dimensions:
//
//	cc, err := grids.New(
//	    grids.Grid{{p1, p2}, {p3, p4}},
//	    grids.Options{
//	        Position:    grids.Above,
//	        PanelWidth:  300,
//	        PanelHeight: 300,
//	    },
//	)
//
// New fails with [ErrGrid] if given grid is empty or its rows differ
// in length, with [ErrDimensions] if a panel dimension is not positive
// and with [ErrPosition] if given position is not one of Above, Below,
// Left or Right.  A successfully created composite is immutable and
// may be used concurrently without further coordination.
//
// A composite reports the placement of each panel and of the toolbar
// through [Composite.PanelDim], [Composite.ToolbarDim] and
// [Composite.Dim] whereas all reported placements are relative to the
// composite's origin.
//
// Composites in turn may be arranged relative to each other by the
// [Row] and [Column] composers which implement the [Chainer] and
// [Stacker] interface respectively.  [Reflow] calculates from such a
// composition the absolute placement of each of its components:
//
//	grids.Reflow(grids.NewColumn(
//	    grids.NewRow(above, below),
//	    grids.NewRow(left, right),
//	), func(d grids.Dimer, dim grids.Dim) {
//	    // d is placed at dim relative to the composition's origin
//	})
package grids
