// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package grids

import (
	"github.com/slukits/ints"
	"golang.org/x/exp/slices"
)

// A Panel is an opaque reference to a rectangular visual unit, e.g. a
// single plot, which is provided by a plotting collaborator.  grids
// never inspects, copies or mutates what a panel refers to.  A nil
// panel is accepted and stands for an empty grid cell.  Note panels
// are expected to be references, i.e. of a comparable dynamic type,
// since composites compare their grids by panel identity.
type Panel interface{}

// A Grid holds the panels of a composition in rows of columns.  A
// grid is only usable by [New] if it is rectangular, i.e. all of its
// rows have the same length, and if it is not empty.
type Grid [][]Panel

// Rows returns the number of rows of given grid.
func (gg Grid) Rows() int { return len(gg) }

// Columns returns the number of columns of given grid, i.e. the
// length of its first row.
func (gg Grid) Columns() int {
	if len(gg) == 0 {
		return 0
	}
	return len(gg[0])
}

// IsEmpty returns true if given grid has no rows or its rows have no
// columns.
func (gg Grid) IsEmpty() bool { return gg.Rows() == 0 || gg.Columns() == 0 }

// IsRectangular returns true if all rows of given grid have the same
// length.  Note an empty grid is rectangular.
func (gg Grid) IsRectangular() bool {
	ll := &ints.Set{}
	for _, rr := range gg {
		ll.Add(len(rr))
	}
	return ll.Len() <= 1
}

// clone returns a structural copy of given grid, i.e. the row slices
// are copied while the panel references are shared.
func (gg Grid) clone() Grid {
	cp := make(Grid, 0, len(gg))
	for _, rr := range gg {
		cp = append(cp, slices.Clone(rr))
	}
	return cp
}

// eq returns true if given grids have the same shape and hold in each
// cell the same panel reference.
func (gg Grid) eq(other Grid) bool {
	return slices.EqualFunc(gg, other, func(r1, r2 []Panel) bool {
		return slices.EqualFunc(r1, r2, func(p1, p2 Panel) bool {
			return p1 == p2
		})
	})
}
