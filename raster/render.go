// Copyright © 2026 Imgrid contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: raster/render.go
// Summary: Draw-data walker: routes glyph triangle-pairs to the cell
// painter and genuine geometry to the scan converter.

package raster

import (
	"math"

	"github.com/mattn/go-runewidth"

	"github.com/framegrace/imgrid/grid"
	"github.com/framegrace/imgrid/im"
)

// DefaultPlaceholder substitutes for glyph payloads that do not resolve to
// exactly one display character.
const DefaultPlaceholder = '?'

// Renderer rasterizes draw data onto a surface.
type Renderer struct {
	// Placeholder replaces undecodable glyphs; zero means DefaultPlaceholder.
	Placeholder rune
}

// Render rasterizes dd with default settings.
func Render(dd *im.DrawData, s grid.Surface) {
	(&Renderer{}).Render(dd, s)
}

// Render walks every command of every draw list and paints the surface.
// A non-positive framebuffer skips the whole pass.
func (r *Renderer) Render(dd *im.DrawData, s grid.Surface) {
	if dd == nil {
		return
	}
	fbW := int(dd.DisplaySize.X * dd.FramebufferScale.X)
	fbH := int(dd.DisplaySize.Y * dd.FramebufferScale.Y)
	if fbW <= 0 || fbH <= 0 {
		return
	}

	clipOff := dd.DisplayPos
	clipScale := dd.FramebufferScale

	for _, list := range dd.Lists {
		for _, cmd := range list.CmdBuffer {
			clip := im.Vec4{
				X: (cmd.ClipRect.X - clipOff.X) * clipScale.X,
				Y: (cmd.ClipRect.Y - clipOff.Y) * clipScale.Y,
				Z: (cmd.ClipRect.Z - clipOff.X) * clipScale.X,
				W: (cmd.ClipRect.W - clipOff.Y) * clipScale.Y,
			}
			if clip.X >= float32(fbW) || clip.Y >= float32(fbH) || clip.Z < 0 || clip.W < 0 {
				continue
			}
			r.renderCmd(list, cmd, clip, s)
		}
	}
}

// renderCmd scans the command's indices in triples. A glyph triangle-pair
// (this triple's texture coordinates pairwise equal to the next triple's)
// is painted as one character cell, consuming six indices; anything else is
// geometry and only the current triangle is scan-converted before moving on
// by three.
func (r *Renderer) renderCmd(list *im.DrawList, cmd im.DrawCmd, clip im.Vec4, s grid.Surface) {
	lastCharX := float32(-10000)
	lastCharY := float32(-10000)

	for i := 0; i+2 < cmd.ElemCount; i += 3 {
		base := cmd.IdxOffset + i
		v0 := list.VtxBuffer[list.IdxBuffer[base]]
		v1 := list.VtxBuffer[list.IdxBuffer[base+1]]
		v2 := list.VtxBuffer[list.IdxBuffer[base+2]]

		if i+5 >= cmd.ElemCount || !glyphPair(list, base) {
			drawTriangle(v0.Pos, v1.Pos, v2.Pos, v0.Col, s)
			continue
		}

		p0 := list.VtxBuffer[list.IdxBuffer[base+3]].Pos
		p1 := list.VtxBuffer[list.IdxBuffer[base+4]].Pos
		p2 := list.VtxBuffer[list.IdxBuffer[base+5]].Pos

		x := (v0.Pos.X + v1.Pos.X + v2.Pos.X + p0.X + p1.X + p2.X) / 6
		y := (v0.Pos.Y+v1.Pos.Y+v2.Pos.Y+p0.Y+p1.Y+p2.Y)/6 + 0.5

		// Adjacent duplicate glyph quads can land on the same computed
		// centre; shifting one cell right of the previous glyph is an
		// empirical workaround for that draw-list artifact, not exact for
		// glyphs that legitimately overlap at sub-cell precision.
		if abs32(y-lastCharY) < 0.5 && abs32(x-lastCharX) < 0.5 {
			x = lastCharX + 1
			y = lastCharY
		}
		lastCharX = x
		lastCharY = y

		xx := floori(x)
		yy := floori(y)
		if float32(xx) < clip.X || float32(xx) >= clip.Z ||
			float32(yy) < clip.Y || float32(yy) >= clip.W {
			i += 3
			continue
		}

		ch, ok := hostGlyph(v0.Glyph)
		if !ok || runewidth.RuneWidth(ch) != 1 {
			ch = r.placeholder()
		}

		colour := im.UnpackColour(v0.Col)
		bg := s.Read(xx, yy).Bg
		s.Paint(xx, yy, grid.Cell{Ch: ch, Fg: int(colour.X), Bg: bg})

		i += 3
	}
}

// glyphPair reports whether the triple at base and the one after it carry
// pairwise-identical texture coordinates, the marker for a pre-rendered
// character cell.
func glyphPair(list *im.DrawList, base int) bool {
	for j := 0; j < 3; j++ {
		a := list.VtxBuffer[list.IdxBuffer[base+j]].UV
		b := list.VtxBuffer[list.IdxBuffer[base+j+3]].UV
		if a.X != b.X || a.Y != b.Y {
			return false
		}
	}
	return true
}

func (r *Renderer) placeholder() rune {
	if r.Placeholder == 0 {
		return DefaultPlaceholder
	}
	return r.Placeholder
}

func abs32(v float32) float32 {
	return float32(math.Abs(float64(v)))
}
