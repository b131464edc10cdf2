// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package grids

import "errors"

// ErrGrid is wrapped by errors of [New] reporting an unusable grid:
// a nil or empty grid or a grid whose rows differ in length.
var ErrGrid = errors.New("grids: invalid grid shape")

// ErrDimensions is wrapped by errors of [New] reporting a non-positive
// panel width or height or a negative toolbar size.
var ErrDimensions = errors.New("grids: invalid dimensions")

// ErrPosition is wrapped by errors of [New] reporting a toolbar
// position which is none of Above, Below, Left or Right.
var ErrPosition = errors.New("grids: invalid toolbar position")
