// Copyright © 2026 Imgrid contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: im/window.go
// Summary: Window records and their draw-list emission helpers.

package im

// Window is one named surface in a context. Windows persist across frames;
// their draw lists are rebuilt every frame.
type Window struct {
	Name      string
	Parent    *Window
	Children  []*Window
	Pos       Vec2
	Size      Vec2
	Collapsed bool

	drawList DrawList
	cursor   Vec2
}

// Placement is the persistable part of a window: where it sits and whether
// it is collapsed.
type Placement struct {
	Name      string
	X, Y      int
	W, H      int
	Collapsed bool
}

func (w *Window) placement() Placement {
	return Placement{
		Name:      w.Name,
		X:         int(w.Pos.X),
		Y:         int(w.Pos.Y),
		W:         int(w.Size.X),
		H:         int(w.Size.Y),
		Collapsed: w.Collapsed,
	}
}

func (w *Window) applyPlacement(p Placement) {
	w.Pos = Vec2{X: float32(p.X), Y: float32(p.Y)}
	w.Size = Vec2{X: float32(p.W), Y: float32(p.H)}
	w.Collapsed = p.Collapsed
}

// clipRect is the window's clip rectangle; windows without an explicit size
// clip to the whole display.
func (w *Window) clipRect(display Vec2) Vec4 {
	if w.Size.X <= 0 || w.Size.Y <= 0 {
		return Vec4{X: 0, Y: 0, Z: display.X, W: display.Y}
	}
	return Vec4{X: w.Pos.X, Y: w.Pos.Y, Z: w.Pos.X + w.Size.X, W: w.Pos.Y + w.Size.Y}
}

func (w *Window) addChild(child *Window) {
	for _, c := range w.Children {
		if c == child {
			return
		}
	}
	w.Children = append(w.Children, child)
}
