// Copyright © 2026 Imgrid contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: im/draw.go
// Summary: Draw data emitted by the context and consumed by the rasterizer.

package im

// Vec2 is a 2D position in character-cell coordinates.
type Vec2 struct {
	X, Y float32
}

// Vec4 carries a colour in the grid's interop encoding: X is the foreground
// palette index, Y the background palette index, Z a bold flag, W always 1.
type Vec4 struct {
	X, Y, Z, W float32
}

// PackColour encodes a palette colour into the 32-bit vertex colour slot.
func PackColour(c Vec4) uint32 {
	fg := uint32(int32(c.X)) & 0xff
	bg := uint32(int32(c.Y)) & 0xff
	bold := uint32(0)
	if c.Z != 0 {
		bold = 1
	}
	return fg | bg<<8 | bold<<16 | 0xff<<24
}

// UnpackColour is the inverse of PackColour.
func UnpackColour(u uint32) Vec4 {
	return Vec4{
		X: float32(u & 0xff),
		Y: float32(u >> 8 & 0xff),
		Z: float32(u >> 16 & 0x1),
		W: 1,
	}
}

// DrawVert is one vertex of the draw stream. Glyph quads additionally carry
// the UTF-8 payload of the character they stand for; geometry leaves it
// empty.
type DrawVert struct {
	Pos   Vec2
	UV    Vec2
	Col   uint32
	Glyph string
}

// DrawCmd covers a contiguous run of indices sharing one clip rectangle.
// ClipRect is (minX, minY, maxX, maxY).
type DrawCmd struct {
	ClipRect  Vec4
	ElemCount int
	IdxOffset int
}

// DrawList is one window's vertex/index stream plus its commands.
type DrawList struct {
	VtxBuffer []DrawVert
	IdxBuffer []int
	CmdBuffer []DrawCmd
}

// DrawData is a frame's worth of draw lists, back to front.
type DrawData struct {
	Lists            []*DrawList
	DisplayPos       Vec2
	DisplaySize      Vec2
	FramebufferScale Vec2
}

func (dl *DrawList) reset() {
	dl.VtxBuffer = dl.VtxBuffer[:0]
	dl.IdxBuffer = dl.IdxBuffer[:0]
	dl.CmdBuffer = dl.CmdBuffer[:0]
}

// addGlyph appends one character quad: four vertices sharing a single
// texture coordinate (the rasterizer recognizes the pair of triangles as a
// glyph cell by that property) and six indices. The quad is centred on the
// cell so the rasterizer's half-cell offset lands it back on (x, y).
func (dl *DrawList) addGlyph(x, y int, r rune, col uint32) {
	uv := Vec2{X: float32(r % 16), Y: float32(r / 16)}
	x0, y0 := float32(x), float32(y)-0.5
	x1, y1 := float32(x)+1, float32(y)+0.5
	glyph := string(r)

	base := len(dl.VtxBuffer)
	dl.VtxBuffer = append(dl.VtxBuffer,
		DrawVert{Pos: Vec2{x0, y0}, UV: uv, Col: col, Glyph: glyph},
		DrawVert{Pos: Vec2{x1, y0}, UV: uv, Col: col, Glyph: glyph},
		DrawVert{Pos: Vec2{x1, y1}, UV: uv, Col: col, Glyph: glyph},
		DrawVert{Pos: Vec2{x0, y1}, UV: uv, Col: col, Glyph: glyph},
	)
	dl.IdxBuffer = append(dl.IdxBuffer,
		base, base+1, base+2,
		base, base+2, base+3,
	)
}

// addTriangle appends one geometry triangle. The texture coordinates are
// salted with the vertex offset so no two triangles in a list ever carry
// pairwise-identical coordinates, which is the rasterizer's glyph marker.
func (dl *DrawList) addTriangle(p0, p1, p2 Vec2, col uint32) {
	base := len(dl.VtxBuffer)
	salt := float32(base)
	dl.VtxBuffer = append(dl.VtxBuffer,
		DrawVert{Pos: p0, UV: Vec2{salt, 0}, Col: col},
		DrawVert{Pos: p1, UV: Vec2{salt + 1, 0}, Col: col},
		DrawVert{Pos: p2, UV: Vec2{salt, 1}, Col: col},
	)
	dl.IdxBuffer = append(dl.IdxBuffer, base, base+1, base+2)
}
