// Copyright © 2026 Imgrid contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/imgrid-demo/screens.go
// Summary: The demo's two host screens.

package main

import (
	"fmt"

	"github.com/framegrace/imgrid/im"
	"github.com/framegrace/imgrid/input"
	"github.com/framegrace/imgrid/session"
	"github.com/framegrace/imgrid/theme"
)

// baseScreen sits at the bottom of the stack and shows a status window.
type baseScreen struct {
	frames int
}

func (b *baseScreen) buildUI(s *session.Session) {
	b.frames++

	ctx := s.Context()
	win := ctx.Begin("status")
	win.Pos = im.Vec2{X: 1, Y: 1}
	win.Size = im.Vec2{X: 40, Y: 6}
	s.ClaimCurrentWindow()

	ctx.Rect(im.Vec2{X: 1, Y: 1}, im.Vec2{X: 40, Y: 5}, theme.Colour("BLACK", "BLUE", false))
	ctx.Text(fmt.Sprintf("frame %d", b.frames))
	ctx.Text("m opens the menu, q quits")
	ctx.End()
}

func (b *baseScreen) handleInput(s *session.Session, keys input.KeySet) {
	// The base screen is the floor of the stack; nothing to pass beneath.
}

// menuScreen is the modal pushed on top of the base screen.
type menuScreen struct {
	selected int
}

var menuEntries = []string{"resume", "inventory", "options"}

func (m *menuScreen) buildUI(s *session.Session) {
	ctx := s.Context()
	win := ctx.Begin("menu")
	win.Pos = im.Vec2{X: 10, Y: 4}
	win.Size = im.Vec2{X: 24, Y: 8}
	s.ClaimCurrentWindow()

	// The menu owns the cursor keys; their presence must not leak input to
	// the base screen.
	s.DeclareSuppressedKey(input.KeyCursorUp)
	s.DeclareSuppressedKey(input.KeyCursorDown)

	ctx.Rect(im.Vec2{X: 10, Y: 4}, im.Vec2{X: 33, Y: 11}, theme.Colour("BLACK", "BLACK", false))
	ctx.Text("menu")

	items := ctx.Begin("menu.items")
	items.Pos = im.Vec2{X: 11, Y: 5}
	items.Size = im.Vec2{X: 22, Y: 6}
	for i, entry := range menuEntries {
		col := theme.Colour("WHITE", "WHITE", false)
		if i == m.selected {
			col = theme.Colour("YELLOW", "YELLOW", false)
		}
		ctx.TextColoured(col, entry)
	}
	ctx.End()
	ctx.End()
}

func (m *menuScreen) handleInput(s *session.Session, keys input.KeySet) {
	switch {
	case keys.Has(input.KeyCursorUp) && m.selected > 0:
		m.selected--
	case keys.Has(input.KeyCursorDown) && m.selected < len(menuEntries)-1:
		m.selected++
	}
	s.FeedUpwards()
}
