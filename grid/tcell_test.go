// Copyright © 2026 Imgrid contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package grid

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/imgrid/theme"
)

func newSimSurface(t *testing.T) (*TcellSurface, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("simulation screen init: %v", err)
	}
	t.Cleanup(sim.Fini)
	return NewTcellSurface(sim), sim
}

func TestTcellPaintAndReadBack(t *testing.T) {
	s, sim := newSimSurface(t)

	c := Cell{Ch: '@', Fg: theme.White, Bg: theme.Blue}
	s.Paint(3, 2, c)
	if got := s.Read(3, 2); got != c {
		t.Fatalf("Read = %+v, want %+v", got, c)
	}

	s.Show()
	r, _, style, _ := sim.GetContent(3, 2)
	if r != '@' {
		t.Fatalf("screen rune = %q", r)
	}
	fg, bg, _ := style.Decompose()
	if fg != theme.ToTcell(theme.White) || bg != theme.ToTcell(theme.Blue) {
		t.Fatalf("screen style = %v/%v", fg, bg)
	}
}

func TestTcellPaintZeroRuneBecomesSpace(t *testing.T) {
	s, sim := newSimSurface(t)
	s.Paint(0, 0, Cell{Fg: theme.White, Bg: theme.Red})
	s.Show()
	r, _, _, _ := sim.GetContent(0, 0)
	if r != ' ' {
		t.Fatalf("zero rune painted as %q", r)
	}
}

func TestTcellPaintOutOfBoundsIgnored(t *testing.T) {
	s, _ := newSimSurface(t)
	w, h := s.Size()
	s.Paint(-1, 0, Cell{Ch: 'x'})
	s.Paint(w, 0, Cell{Ch: 'x'})
	s.Paint(0, h, Cell{Ch: 'x'})
	if got := s.Read(-1, 0); got != (Cell{}) {
		t.Fatalf("out-of-bounds Read = %+v", got)
	}
}

func TestTcellHandleEventTracksMouseAndResize(t *testing.T) {
	s, _ := newSimSurface(t)

	s.HandleEvent(tcell.NewEventMouse(5, 7, tcell.Button1, 0))
	if x, y := s.MousePos(); x != 5 || y != 7 {
		t.Fatalf("mouse pos = %d,%d", x, y)
	}
	left, right := s.Mouse()
	if !left || right {
		t.Fatalf("buttons = %v,%v", left, right)
	}

	s.HandleEvent(tcell.NewEventMouse(5, 7, tcell.ButtonNone, 0))
	if left, _ := s.Mouse(); left {
		t.Fatalf("button release not tracked")
	}

	s.HandleEvent(tcell.NewEventResize(100, 40))
	if w, h := s.Size(); w != 100 || h != 40 {
		t.Fatalf("size after resize = %d,%d", w, h)
	}
	if got := s.Read(99, 39); got != (Cell{}) {
		t.Fatalf("resized shadow not cleared: %+v", got)
	}
}

func TestMemSurfaceBounds(t *testing.T) {
	m := NewMemSurface(4, 3)
	m.Paint(3, 2, Cell{Ch: 'x', Fg: 1, Bg: 2})
	if m.Read(3, 2).Ch != 'x' {
		t.Fatalf("corner cell lost")
	}
	m.Paint(4, 0, Cell{Ch: 'y'})
	m.Paint(0, 3, Cell{Ch: 'y'})
	if m.Read(4, 0) != (Cell{}) || m.Read(0, 3) != (Cell{}) {
		t.Fatalf("out-of-bounds paint leaked")
	}
	m.Fill(Cell{Bg: 5})
	if m.Read(0, 0).Bg != 5 || m.Read(3, 2).Bg != 5 {
		t.Fatalf("Fill incomplete")
	}
}
