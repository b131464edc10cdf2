// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package grids

import (
	"testing"

	. "github.com/slukits/gounit"
)

type APosition struct{ Suite }

func (s *APosition) SetUp(t *T) { t.Parallel() }

func (s *APosition) Is_invalid_if_unset(t *T) {
	var p Position
	t.Not.True(p.Valid())
}

func (s *APosition) Is_valid_given_one_of_the_four_members(t *T) {
	for _, p := range []Position{Above, Below, Left, Right} {
		t.True(p.Valid())
	}
}

func (s *APosition) Is_invalid_outside_the_four_members(t *T) {
	t.Not.True(Position(-1).Valid())
	t.Not.True((Right + 1).Valid())
}

func (s *APosition) Stringifies_to_its_toolbar_location(t *T) {
	exp := map[Position]string{
		Above: "above", Below: "below", Left: "left", Right: "right"}
	for p, str := range exp {
		t.Eq(str, p.String())
	}
}

func (s *APosition) Stringifies_invalid_values_accordingly(t *T) {
	t.Eq("invalid position", Position(0).String())
	t.Eq("invalid position", (Right + 1).String())
}

func TestAPosition(t *testing.T) {
	t.Parallel()
	Run(&APosition{}, t)
}
