// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package grids

import "fmt"

// plot is an opaque panel stand-in as a plotting collaborator would
// provide it.
type plot struct{ ID string }

// fxGrid provides a rectangular grid fixture of given shape whose
// cells hold distinct plot references.
func fxGrid(rows, columns int) Grid {
	gg := Grid{}
	for r := 0; r < rows; r++ {
		rr := []Panel{}
		for c := 0; c < columns; c++ {
			rr = append(rr, &plot{ID: fmt.Sprintf("%d:%d", r, c)})
		}
		gg = append(gg, rr)
	}
	return gg
}

// fxOptions provides the options of the original toolbar-placement
// example: 300x300 panels with the toolbar positioned at given p.
func fxOptions(p Position) Options {
	return Options{Position: p, PanelWidth: 300, PanelHeight: 300}
}
