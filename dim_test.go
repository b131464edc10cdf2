// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package grids

import (
	"testing"

	. "github.com/slukits/gounit"
)

type ADim struct{ Suite }

func (s *ADim) SetUp(t *T) { t.Parallel() }

func (s *ADim) Reports_origin_and_extent(t *T) {
	d := DimAt(5, 7, 300, 200)
	t.Eq(5, d.X())
	t.Eq(7, d.Y())
	t.Eq(300, d.Width())
	t.Eq(200, d.Height())
}

func (s *ADim) Is_at_the_origin_if_created_from_extent_only(t *T) {
	d := DimOf(300, 200)
	t.Eq(0, d.X())
	t.Eq(0, d.Y())
}

func (s *ADim) Covers_the_product_of_its_extent(t *T) {
	t.Eq(60000, DimOf(300, 200).Area())
}

func (s *ADim) Is_zero_without_extent(t *T) {
	t.True(DimAt(5, 7, 0, 0).IsZero())
	t.Not.True(DimOf(300, 200).IsZero())
}

func (s *ADim) Keeps_its_extent_if_moved(t *T) {
	d := DimAt(5, 7, 300, 200).MoveBy(10, -7)
	t.Eq(DimAt(15, 0, 300, 200), d)
}

func (s *ADim) Stringifies_origin_and_extent(t *T) {
	t.Eq("(5,7;300x200)", DimAt(5, 7, 300, 200).String())
}

func TestADim(t *testing.T) {
	t.Parallel()
	Run(&ADim{}, t)
}
