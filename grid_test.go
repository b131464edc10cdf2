// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package grids

import (
	"testing"

	. "github.com/slukits/gounit"
)

type AGrid struct{ Suite }

func (s *AGrid) SetUp(t *T) { t.Parallel() }

func (s *AGrid) Reports_its_row_and_column_count(t *T) {
	gg := fxGrid(2, 3)
	t.Eq(2, gg.Rows())
	t.Eq(3, gg.Columns())
}

func (s *AGrid) Is_empty_without_rows(t *T) {
	t.True(Grid{}.IsEmpty())
	t.True(Grid(nil).IsEmpty())
}

func (s *AGrid) Is_empty_without_columns(t *T) {
	t.True(Grid{{}}.IsEmpty())
}

func (s *AGrid) Is_not_empty_holding_a_panel(t *T) {
	t.Not.True(fxGrid(1, 1).IsEmpty())
}

func (s *AGrid) Is_rectangular_if_all_rows_have_equal_length(t *T) {
	t.True(fxGrid(2, 2).IsRectangular())
	t.True(Grid{}.IsRectangular())
}

func (s *AGrid) Is_not_rectangular_given_differing_row_lengths(t *T) {
	gg := fxGrid(2, 2)
	gg[1] = append(gg[1], &plot{ID: "extra"})
	t.Not.True(gg.IsRectangular())
}

func (s *AGrid) Accepts_nil_panels_as_empty_cells(t *T) {
	gg := Grid{{nil, &plot{ID: "p"}}, {&plot{ID: "q"}, nil}}
	t.True(gg.IsRectangular())
	t.Not.True(gg.IsEmpty())
}

func TestAGrid(t *testing.T) {
	t.Parallel()
	Run(&AGrid{}, t)
}
