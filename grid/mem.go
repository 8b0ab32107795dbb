// Copyright © 2026 Imgrid contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: grid/mem.go
// Summary: Fixed-size in-memory surface for tests and headless hosts.

package grid

// MemSurface is a plain in-memory grid. The zero Cell is an empty black
// cell. Pointer state is set directly by the embedding test or host.
type MemSurface struct {
	w, h    int
	cells   []Cell
	mouseX  int
	mouseY  int
	left    bool
	right   bool
}

// NewMemSurface allocates a w by h surface. Non-positive dimensions clamp
// to zero.
func NewMemSurface(w, h int) *MemSurface {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &MemSurface{w: w, h: h, cells: make([]Cell, w*h)}
}

func (m *MemSurface) Size() (int, int) { return m.w, m.h }

func (m *MemSurface) Paint(x, y int, c Cell) {
	if x < 0 || x >= m.w || y < 0 || y >= m.h {
		return
	}
	m.cells[y*m.w+x] = c
}

func (m *MemSurface) Read(x, y int) Cell {
	if x < 0 || x >= m.w || y < 0 || y >= m.h {
		return Cell{}
	}
	return m.cells[y*m.w+x]
}

func (m *MemSurface) MousePos() (int, int) { return m.mouseX, m.mouseY }

func (m *MemSurface) Mouse() (bool, bool) { return m.left, m.right }

// SetMouse positions the pointer and button state for the next frame.
func (m *MemSurface) SetMouse(x, y int, left, right bool) {
	m.mouseX, m.mouseY = x, y
	m.left, m.right = left, right
}

// Fill paints every cell, handy for seeding backgrounds in tests.
func (m *MemSurface) Fill(c Cell) {
	for i := range m.cells {
		m.cells[i] = c
	}
}
