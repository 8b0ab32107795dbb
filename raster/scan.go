// Copyright © 2026 Imgrid contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: raster/scan.go
// Summary: Triangle scan conversion onto the character grid.
//
// Classic edge-list scanline fill: walk each edge with a symmetric Bresenham
// stepper, collect per-row x extents, then fill each covered row. Working at
// cell granularity there is no anti-aliasing and no sub-cell positioning;
// degenerate triangles still produce their point or line coverage because
// every pixel an edge visits widens its row.

package raster

import (
	"math"

	"github.com/framegrace/imgrid/grid"
	"github.com/framegrace/imgrid/im"
)

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// scanLine walks the edge (x1,y1)-(x2,y2), updating xrange's per-row
// (min,max) pairs for every row in [0, ymax). The major axis is whichever
// delta is larger; the stepper visits m+1 points.
func scanLine(x1, y1, x2, y2, ymax int, xrange []int) {
	sx := x2 - x1
	sy := y2 - y1

	dx1 := sign(sx)
	dy1 := sign(sy)

	m := abs(sx)
	n := abs(sy)
	dx2, dy2 := dx1, 0

	if m < n {
		m, n = abs(sy), abs(sx)
		dx2, dy2 = 0, dy1
	}

	x, y := x1, y1
	cnt := m + 1
	k := n / 2

	for ; cnt > 0; cnt-- {
		if y >= 0 && y < ymax {
			if x < xrange[2*y] {
				xrange[2*y] = x
			}
			if x > xrange[2*y+1] {
				xrange[2*y+1] = x
			}
		}

		k += n
		if k < m {
			x += dx2
			y += dy2
		} else {
			k -= m
			x += dx1
			y += dy1
		}
	}
}

// drawTriangle fills the triangle (p0, p1, p2) with blank cells in the
// colour's fill component, clipped to the surface.
func drawTriangle(p0, p1, p2 im.Vec2, col uint32, s grid.Surface) {
	w, h := s.Size()

	ymin := int(math.Floor(math.Min(math.Min(float64(p0.Y), float64(p1.Y)), float64(p2.Y))))
	ymax := int(math.Floor(math.Max(math.Max(float64(p0.Y), float64(p1.Y)), float64(p2.Y))))

	ydelta := ymax - ymin + 1
	xrange := make([]int, 2*ydelta)
	for y := 0; y < ydelta; y++ {
		xrange[2*y] = math.MaxInt32
		xrange[2*y+1] = math.MinInt32
	}

	x0, y0 := floori(p0.X), floori(p0.Y)
	x1, y1 := floori(p1.X), floori(p1.Y)
	x2, y2 := floori(p2.X), floori(p2.Y)

	scanLine(x0, y0-ymin, x1, y1-ymin, ydelta, xrange)
	scanLine(x1, y1-ymin, x2, y2-ymin, ydelta, xrange)
	scanLine(x2, y2-ymin, x0, y0-ymin, ydelta, xrange)

	colour := im.UnpackColour(col)
	cell := grid.Cell{Ch: ' ', Fg: int(colour.X), Bg: int(colour.Y)}

	for y := 0; y < ydelta; y++ {
		if xrange[2*y+1] < xrange[2*y] {
			continue
		}
		for x := xrange[2*y]; x <= xrange[2*y+1]; x++ {
			if x >= 0 && x < w && y+ymin >= 0 && y+ymin < h {
				s.Paint(x, y+ymin, cell)
			}
		}
	}
}

func floori(v float32) int {
	return int(math.Floor(float64(v)))
}
