// Copyright © 2026 Imgrid contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: grid/tcell.go
// Summary: Surface adapter over a tcell screen.
// Usage: Wrapped around the host's tcell.Screen; the host forwards tcell
// events so mouse state stays current.

package grid

import (
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/imgrid/theme"
)

// TcellSurface adapts a tcell.Screen to the Surface interface. A shadow
// buffer keeps Read exact, since tcell does not give back palette indices.
type TcellSurface struct {
	screen tcell.Screen
	shadow []Cell
	w, h   int

	mouseX, mouseY int
	left, right    bool
}

// NewTcellSurface wraps the provided screen, which must already be
// initialized.
func NewTcellSurface(screen tcell.Screen) *TcellSurface {
	s := &TcellSurface{screen: screen}
	s.resize(screen.Size())
	return s
}

func (s *TcellSurface) resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	s.w, s.h = w, h
	s.shadow = make([]Cell, w*h)
}

func (s *TcellSurface) Size() (int, int) { return s.w, s.h }

func (s *TcellSurface) Paint(x, y int, c Cell) {
	if x < 0 || x >= s.w || y < 0 || y >= s.h {
		return
	}
	s.shadow[y*s.w+x] = c
	style := tcell.StyleDefault.
		Foreground(theme.ToTcell(c.Fg)).
		Background(theme.ToTcell(c.Bg))
	ch := c.Ch
	if ch == 0 {
		ch = ' '
	}
	s.screen.SetContent(x, y, ch, nil, style)
}

func (s *TcellSurface) Read(x, y int) Cell {
	if x < 0 || x >= s.w || y < 0 || y >= s.h {
		return Cell{}
	}
	return s.shadow[y*s.w+x]
}

func (s *TcellSurface) MousePos() (int, int) { return s.mouseX, s.mouseY }

func (s *TcellSurface) Mouse() (bool, bool) { return s.left, s.right }

// HandleEvent keeps pointer and size state in sync. The host calls it for
// every tcell event before driving its feed passes.
func (s *TcellSurface) HandleEvent(ev tcell.Event) {
	switch e := ev.(type) {
	case *tcell.EventResize:
		s.resize(e.Size())
	case *tcell.EventMouse:
		s.mouseX, s.mouseY = e.Position()
		s.left = e.Buttons()&tcell.Button1 != 0
		s.right = e.Buttons()&tcell.Button2 != 0
	}
}

// Show flushes pending paints to the terminal.
func (s *TcellSurface) Show() {
	s.screen.Show()
}
