// Copyright © 2026 Imgrid contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: grid/grid.go
// Summary: The character-cell display contract consumed by the rasterizer.

package grid

// Cell is one display cell: a character plus foreground and background
// palette indices.
type Cell struct {
	Ch rune
	Fg int
	Bg int
}

// Surface is the host display seen by this subsystem: paint a cell, read a
// cell back, and report grid geometry and pointer state. Out-of-bounds
// paints and reads are silent no-ops.
type Surface interface {
	Size() (w, h int)
	Paint(x, y int, c Cell)
	Read(x, y int) Cell
	MousePos() (x, y int)
	Mouse() (left, right bool)
}
