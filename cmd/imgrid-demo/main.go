// Copyright © 2026 Imgrid contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/imgrid-demo/main.go
// Summary: Host simulation driving the render/feed protocol over tcell.
//
// Runs a two-screen host stack: a base screen with a status window and a
// modal menu screen pushed on top of it. Esc pops the modal, m brings it
// back, q quits.

package main

import (
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/framegrace/imgrid/config"
	"github.com/framegrace/imgrid/grid"
	"github.com/framegrace/imgrid/input"
	"github.com/framegrace/imgrid/session"
	"github.com/framegrace/imgrid/settings"
)

// hostScreen is one entry in the simulated screen stack.
type hostScreen interface {
	// buildUI runs the screen's widget code inside an open render pass.
	buildUI(s *session.Session)
	// handleInput consumes keys inside an open feed pass.
	handleInput(s *session.Session, keys input.KeySet)
}

func main() {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		log.Fatal("imgrid-demo: stdin is not a terminal")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("imgrid-demo: create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("imgrid-demo: init screen: %v", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	surface := grid.NewTcellSurface(screen)

	cfg := config.System()
	opts := session.FromConfig(cfg)
	if path := cfg.GetString("settings", "path", ""); path != "" {
		opts.Store = openStore(path)
	} else if path, err := settings.DefaultPath(); err == nil {
		opts.Store = openStore(path)
	}
	if opts.Store != nil {
		defer opts.Store.Close()
	}

	sess := session.New(surface, opts)

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			events <- screen.PollEvent()
		}
	}()

	stack := []hostScreen{&baseScreen{}, &menuScreen{}}
	ticker := time.NewTicker(33 * time.Millisecond)
	defer ticker.Stop()

	for {
		keys := make(input.KeySet)

	drain:
		for {
			select {
			case ev := <-events:
				surface.HandleEvent(ev)
				if key, ok := ev.(*tcell.EventKey); ok {
					collectKey(key, keys)
				}
			default:
				break drain
			}
		}

		if keys.Has(input.CharToKey('q')) {
			sess.OnDismissLastScreen()
			return
		}
		if keys.Has(input.KeyLeaveScreen) && len(stack) > 1 {
			stack = stack[:len(stack)-1]
		}
		if keys.Has(input.CharToKey('m')) && len(stack) == 1 {
			stack = append(stack, &menuScreen{})
		}

		feedStack(sess, stack, keys)
		renderStack(sess, stack)
		surface.Show()

		<-ticker.C
	}
}

func openStore(path string) *settings.Store {
	store, err := settings.Open(path)
	if err != nil {
		log.Printf("imgrid-demo: window settings unavailable: %v", err)
		return nil
	}
	return store
}

// renderStack issues render passes top screen outermost, screens beneath
// nested inside it, matching the host's interposed render chain.
func renderStack(s *session.Session, stack []hostScreen) {
	var rec func(i int)
	rec = func(i int) {
		isTop := i == len(stack)-1
		id := s.RenderStart(isTop)
		stack[i].buildUI(s)
		if i > 0 {
			rec(i - 1)
		}
		s.RenderEnd(isTop, id)
	}
	rec(len(stack) - 1)
}

// feedStack delivers input to the top screen and walks down the stack only
// while each feed pass allows upward propagation.
func feedStack(s *session.Session, stack []hostScreen, keys input.KeySet) {
	for i := len(stack) - 1; i >= 0; i-- {
		s.FeedStart(i == len(stack)-1, keys)
		stack[i].handleInput(s, keys)
		if !s.FeedEnd(keys) {
			return
		}
	}
}

func collectKey(ev *tcell.EventKey, keys input.KeySet) {
	switch ev.Key() {
	case tcell.KeyLeft:
		keys[input.KeyCursorLeft] = true
	case tcell.KeyRight:
		keys[input.KeyCursorRight] = true
	case tcell.KeyUp:
		keys[input.KeyCursorUp] = true
	case tcell.KeyDown:
		keys[input.KeyCursorDown] = true
	case tcell.KeyEnter:
		keys[input.KeySelect] = true
	case tcell.KeyEscape:
		keys[input.KeyLeaveScreen] = true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		keys[input.KeyBackspace] = true
	case tcell.KeyRune:
		if k := input.CharToKey(ev.Rune()); k != input.KeyNone {
			keys[k] = true
		}
	}
}
