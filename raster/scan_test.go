// Copyright © 2026 Imgrid contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package raster

import (
	"testing"

	"github.com/framegrace/imgrid/grid"
	"github.com/framegrace/imgrid/im"
	"github.com/framegrace/imgrid/theme"
)

func paintedCells(s *grid.MemSurface) map[[2]int]grid.Cell {
	out := make(map[[2]int]grid.Cell)
	w, h := s.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if c := s.Read(x, y); c != (grid.Cell{}) {
				out[[2]int{x, y}] = c
			}
		}
	}
	return out
}

func fillColour() uint32 {
	return im.PackColour(theme.Colour("BLACK", "BLUE", false))
}

func TestDrawTriangleRightTriangle(t *testing.T) {
	s := grid.NewMemSurface(10, 10)
	drawTriangle(im.Vec2{X: 0, Y: 0}, im.Vec2{X: 4, Y: 0}, im.Vec2{X: 0, Y: 4}, fillColour(), s)

	cells := paintedCells(s)
	if len(cells) != 15 {
		t.Fatalf("expected 15 cells, painted %d", len(cells))
	}

	// Row extents shrink one cell per row down the hypotenuse.
	for y := 0; y <= 4; y++ {
		for x := 0; x <= 4-y; x++ {
			c, ok := cells[[2]int{x, y}]
			if !ok {
				t.Fatalf("cell (%d,%d) not painted", x, y)
			}
			if c.Ch != ' ' || c.Bg != theme.Blue {
				t.Fatalf("cell (%d,%d) = %+v, want blank blue fill", x, y, c)
			}
		}
	}
}

func TestDrawTriangleOutsideBoundingRowsUntouched(t *testing.T) {
	s := grid.NewMemSurface(10, 10)
	drawTriangle(im.Vec2{X: 1, Y: 2}, im.Vec2{X: 5, Y: 2}, im.Vec2{X: 3, Y: 4}, fillColour(), s)

	for pos := range paintedCells(s) {
		if pos[1] < 2 || pos[1] > 4 {
			t.Fatalf("cell %v painted outside the triangle's rows", pos)
		}
	}
}

func TestDrawTriangleClipsToSurface(t *testing.T) {
	s := grid.NewMemSurface(4, 4)
	drawTriangle(im.Vec2{X: -2, Y: -2}, im.Vec2{X: 2, Y: -2}, im.Vec2{X: 2, Y: 2}, fillColour(), s)

	want := map[[2]int]bool{
		{0, 0}: true, {1, 0}: true, {2, 0}: true,
		{1, 1}: true, {2, 1}: true,
		{2, 2}: true,
	}
	cells := paintedCells(s)
	if len(cells) != len(want) {
		t.Fatalf("painted %d cells, want %d", len(cells), len(want))
	}
	for pos := range want {
		if _, ok := cells[pos]; !ok {
			t.Fatalf("cell %v not painted", pos)
		}
	}
}

func TestDrawTriangleDegenerateLine(t *testing.T) {
	s := grid.NewMemSurface(10, 10)
	drawTriangle(im.Vec2{X: 1, Y: 2}, im.Vec2{X: 5, Y: 2}, im.Vec2{X: 3, Y: 2}, fillColour(), s)

	cells := paintedCells(s)
	if len(cells) != 5 {
		t.Fatalf("zero-height triangle painted %d cells, want 5", len(cells))
	}
	for x := 1; x <= 5; x++ {
		if _, ok := cells[[2]int{x, 2}]; !ok {
			t.Fatalf("cell (%d,2) not painted", x)
		}
	}
}

func TestDrawTriangleDegeneratePoint(t *testing.T) {
	s := grid.NewMemSurface(10, 10)
	drawTriangle(im.Vec2{X: 7, Y: 3}, im.Vec2{X: 7, Y: 3}, im.Vec2{X: 7, Y: 3}, fillColour(), s)

	cells := paintedCells(s)
	if len(cells) != 1 {
		t.Fatalf("point triangle painted %d cells, want 1", len(cells))
	}
	if _, ok := cells[[2]int{7, 3}]; !ok {
		t.Fatalf("cell (7,3) not painted")
	}
}
