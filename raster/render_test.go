// Copyright © 2026 Imgrid contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package raster

import (
	"testing"

	"github.com/framegrace/imgrid/grid"
	"github.com/framegrace/imgrid/im"
	"github.com/framegrace/imgrid/theme"
)

// glyphQuad appends a six-index glyph triangle-pair for the cell (x, y)
// with the given index ordering, nil meaning the canonical order.
func glyphQuad(dl *im.DrawList, x, y int, glyph string, col uint32, order []int) {
	uv := im.Vec2{X: 3, Y: 7}
	x0, y0 := float32(x), float32(y)-0.5
	x1, y1 := float32(x)+1, float32(y)+0.5
	base := len(dl.VtxBuffer)
	dl.VtxBuffer = append(dl.VtxBuffer,
		im.DrawVert{Pos: im.Vec2{X: x0, Y: y0}, UV: uv, Col: col, Glyph: glyph},
		im.DrawVert{Pos: im.Vec2{X: x1, Y: y0}, UV: uv, Col: col, Glyph: glyph},
		im.DrawVert{Pos: im.Vec2{X: x1, Y: y1}, UV: uv, Col: col, Glyph: glyph},
		im.DrawVert{Pos: im.Vec2{X: x0, Y: y1}, UV: uv, Col: col, Glyph: glyph},
	)
	if order == nil {
		order = []int{0, 1, 2, 0, 2, 3}
	}
	for _, o := range order {
		dl.IdxBuffer = append(dl.IdxBuffer, base+o)
	}
}

func drawData(dl *im.DrawList, w, h int) *im.DrawData {
	dl.CmdBuffer = []im.DrawCmd{{
		ClipRect:  im.Vec4{X: 0, Y: 0, Z: float32(w), W: float32(h)},
		ElemCount: len(dl.IdxBuffer),
	}}
	return &im.DrawData{
		Lists:            []*im.DrawList{dl},
		DisplaySize:      im.Vec2{X: float32(w), Y: float32(h)},
		FramebufferScale: im.Vec2{X: 1, Y: 1},
	}
}

func textColour() uint32 {
	return im.PackColour(theme.Colour("WHITE", "WHITE", false))
}

func TestGlyphPairPaintsCellPreservingBackground(t *testing.T) {
	s := grid.NewMemSurface(20, 10)
	s.Fill(grid.Cell{Ch: ' ', Fg: theme.Grey, Bg: theme.Blue})

	dl := &im.DrawList{}
	glyphQuad(dl, 2, 4, "A", textColour(), nil)
	Render(drawData(dl, 20, 10), s)

	got := s.Read(2, 4)
	if got.Ch != 'A' {
		t.Fatalf("cell char = %q, want 'A'", got.Ch)
	}
	if got.Fg != theme.White {
		t.Fatalf("cell fg = %d, want white", got.Fg)
	}
	if got.Bg != theme.Blue {
		t.Fatalf("cell bg = %d, want preserved blue", got.Bg)
	}
}

func TestGlyphRoutingForAnyVertexOrdering(t *testing.T) {
	orders := [][]int{
		{0, 1, 2, 0, 2, 3},
		{2, 0, 1, 3, 2, 0},
		{1, 2, 0, 2, 3, 0},
	}
	for _, order := range orders {
		s := grid.NewMemSurface(20, 10)
		dl := &im.DrawList{}
		glyphQuad(dl, 5, 3, "X", textColour(), order)
		Render(drawData(dl, 20, 10), s)

		if got := s.Read(5, 3).Ch; got != 'X' {
			t.Fatalf("order %v: cell char = %q, want glyph path", order, got)
		}
		// The glyph path never scan-converts, so nothing else is painted.
		w, h := s.Size()
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if (x != 5 || y != 3) && s.Read(x, y) != (grid.Cell{}) {
					t.Fatalf("order %v: stray cell at (%d,%d)", order, x, y)
				}
			}
		}
	}
}

func TestGeometryScanConvertedTriangleByTriangle(t *testing.T) {
	s := grid.NewMemSurface(20, 10)
	dl := &im.DrawList{}

	// Two triangles of a quad with distinct texture coordinates each: the
	// walker must take the geometry branch for both.
	col := im.PackColour(theme.Colour("BLACK", "RED", false))
	addGeom := func(p0, p1, p2 im.Vec2, salt float32) {
		base := len(dl.VtxBuffer)
		dl.VtxBuffer = append(dl.VtxBuffer,
			im.DrawVert{Pos: p0, UV: im.Vec2{X: salt, Y: 0}, Col: col},
			im.DrawVert{Pos: p1, UV: im.Vec2{X: salt + 1, Y: 0}, Col: col},
			im.DrawVert{Pos: p2, UV: im.Vec2{X: salt, Y: 1}, Col: col},
		)
		dl.IdxBuffer = append(dl.IdxBuffer, base, base+1, base+2)
	}
	addGeom(im.Vec2{X: 1, Y: 1}, im.Vec2{X: 4, Y: 1}, im.Vec2{X: 4, Y: 3}, 10)
	addGeom(im.Vec2{X: 1, Y: 1}, im.Vec2{X: 4, Y: 3}, im.Vec2{X: 1, Y: 3}, 20)

	Render(drawData(dl, 20, 10), s)

	for y := 1; y <= 3; y++ {
		for x := 1; x <= 4; x++ {
			c := s.Read(x, y)
			if c.Ch != ' ' || c.Bg != theme.Red {
				t.Fatalf("cell (%d,%d) = %+v, want red fill", x, y, c)
			}
		}
	}
}

func TestGlyphOutsideClipRectSkipped(t *testing.T) {
	s := grid.NewMemSurface(20, 10)
	dl := &im.DrawList{}
	glyphQuad(dl, 8, 4, "A", textColour(), nil)
	dl.CmdBuffer = []im.DrawCmd{{
		ClipRect:  im.Vec4{X: 0, Y: 0, Z: 5, W: 5},
		ElemCount: len(dl.IdxBuffer),
	}}
	dd := &im.DrawData{
		Lists:            []*im.DrawList{dl},
		DisplaySize:      im.Vec2{X: 20, Y: 10},
		FramebufferScale: im.Vec2{X: 1, Y: 1},
	}
	Render(dd, s)

	if got := s.Read(8, 4); got != (grid.Cell{}) {
		t.Fatalf("clipped glyph painted cell %+v", got)
	}
}

func TestUndecodableGlyphGetsPlaceholder(t *testing.T) {
	cases := []string{"€", "ab", ""}
	for _, payload := range cases {
		s := grid.NewMemSurface(20, 10)
		dl := &im.DrawList{}
		glyphQuad(dl, 3, 3, payload, textColour(), nil)
		Render(drawData(dl, 20, 10), s)

		if got := s.Read(3, 3).Ch; got != DefaultPlaceholder {
			t.Fatalf("payload %q: cell char = %q, want placeholder", payload, got)
		}
	}
}

func TestDuplicateGlyphShiftsRight(t *testing.T) {
	// Two glyph quads land on the same computed centre; the second shifts
	// one cell right of the first. Known approximation: legitimately
	// overlapping sub-cell glyphs shift too.
	s := grid.NewMemSurface(20, 10)
	dl := &im.DrawList{}
	glyphQuad(dl, 4, 2, "A", textColour(), nil)
	glyphQuad(dl, 4, 2, "B", textColour(), nil)
	Render(drawData(dl, 20, 10), s)

	if got := s.Read(4, 2).Ch; got != 'A' {
		t.Fatalf("first glyph = %q, want 'A'", got)
	}
	if got := s.Read(5, 2).Ch; got != 'B' {
		t.Fatalf("shifted duplicate = %q, want 'B'", got)
	}
}

func TestRenderSkipsEmptyFramebuffer(t *testing.T) {
	s := grid.NewMemSurface(20, 10)
	dl := &im.DrawList{}
	glyphQuad(dl, 2, 2, "A", textColour(), nil)
	dd := drawData(dl, 20, 10)
	dd.DisplaySize = im.Vec2{}

	Render(dd, s)
	if got := s.Read(2, 2); got != (grid.Cell{}) {
		t.Fatalf("empty framebuffer still painted %+v", got)
	}
}

func TestHostGlyphTranscoding(t *testing.T) {
	if r, ok := hostGlyph("A"); !ok || r != 'A' {
		t.Fatalf("hostGlyph(A) = %q, %v", r, ok)
	}
	// é sits in the host code page and round-trips.
	if r, ok := hostGlyph("é"); !ok || r != 'é' {
		t.Fatalf("hostGlyph(é) = %q, %v", r, ok)
	}
	if _, ok := hostGlyph("€"); ok {
		t.Fatalf("hostGlyph(€) should not resolve")
	}
	if _, ok := hostGlyph(""); ok {
		t.Fatalf("hostGlyph of empty payload should not resolve")
	}
}
