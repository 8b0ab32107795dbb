// Copyright © 2026 Imgrid contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: session/session.go
// Summary: Session state tying one GUI context to one host display.
// Usage: The host constructs one Session and hands it to every screen that
// takes part in the render/feed protocol. No global accessor exists; tests
// run as many independent sessions as they like.

package session

import (
	"log"

	"github.com/google/uuid"

	"github.com/framegrace/imgrid/config"
	"github.com/framegrace/imgrid/grid"
	"github.com/framegrace/imgrid/im"
	"github.com/framegrace/imgrid/input"
	"github.com/framegrace/imgrid/raster"
	"github.com/framegrace/imgrid/settings"
	"github.com/framegrace/imgrid/theme"
)

// passRecord is one render pass's bookkeeping, held in a depth-indexed
// arena so nested passes never alias each other's claims.
type passRecord struct {
	windows    []string
	suppressed []input.Key
}

// Session owns the rendering context, pending input, and per-frame pass
// bookkeeping for one embedding. Everything runs on the host's single
// render/input thread.
type Session struct {
	id         uuid.UUID
	ctx        *im.Context
	surface    grid.Surface
	translator *input.Translator
	renderer   *raster.Renderer
	store      *settings.Store

	pending      input.KeySet
	mouseButtons [2]bool

	renderDepth int
	passes      []passRecord
	rendered    map[string]bool

	shouldFeedUp         bool
	suppressNextKeyboard bool
	suppressNextMouse    bool

	restoreRender func()
	restoreFeed   func()
}

// Options configures a Session beyond its surface.
type Options struct {
	// Suppressor overrides the default numeric/arrow suppression filter.
	Suppressor *input.Suppressor
	// Placeholder overrides the glyph used for undecodable text.
	Placeholder rune
	// Store, when set, persists window placements across runs. The session
	// does not take ownership; the host closes it.
	Store *settings.Store
}

// FromConfig builds Options from the imgrid configuration.
func FromConfig(cfg config.Config) Options {
	var opts Options

	pairs := make(map[input.Key]input.Key)
	arrows := map[string]input.Key{
		"left":  input.KeyCursorLeft,
		"right": input.KeyCursorRight,
		"up":    input.KeyCursorUp,
		"down":  input.KeyCursorDown,
	}
	for trigger, arrowName := range cfg.GetStringMap("input", "danger_pairs") {
		arrow, ok := arrows[arrowName]
		if !ok || len(trigger) != 1 {
			log.Printf("Session: Ignoring danger pair %q -> %q", trigger, arrowName)
			continue
		}
		pairs[input.CharToKey(rune(trigger[0]))] = arrow
	}
	if len(pairs) > 0 {
		opts.Suppressor = input.NewSuppressor(pairs, cfg.GetInt("input", "suppress_frames", input.DefaultSuppressFrames))
	}

	if glyph := cfg.GetString("render", "placeholder_glyph", ""); glyph != "" {
		opts.Placeholder = []rune(glyph)[0]
	}
	return opts
}

// New builds a session over the given surface: a fresh context is created,
// styled for the character grid, bound to the host key scheme, and restored
// from the settings store when one is attached.
func New(surface grid.Surface, opts Options) *Session {
	s := &Session{
		id:       uuid.New(),
		ctx:      im.CreateContext(),
		surface:  surface,
		renderer: &raster.Renderer{Placeholder: opts.Placeholder},
		store:    opts.Store,
		pending:  make(input.KeySet),
		rendered: make(map[string]bool),
	}
	s.translator = input.NewTranslator(surface, opts.Suppressor)

	restore := s.Activate()
	defer restore()

	theme.Apply(s.ctx)
	input.BindKeys(&s.ctx.IO)

	w, h := surface.Size()
	s.ctx.IO.DisplaySize = im.Vec2{X: float32(w), Y: float32(h)}

	if s.store != nil {
		placements, err := s.store.Load()
		if err != nil {
			log.Printf("Session %s: Failed to load window settings: %v", s.id, err)
		}
		for _, p := range placements {
			s.ctx.ApplyPlacement(p)
		}
	}
	return s
}

// Context exposes the session's GUI context for widget code running inside
// a pass.
func (s *Session) Context() *im.Context { return s.ctx }

// ID returns the session identity used in logs and the settings store.
func (s *Session) ID() string { return s.id.String() }

// Activate makes the session's context current and returns the restore
// function. Callers run it on every exit path; passes may nest, so each
// activation captures whatever was current at its own entry.
func (s *Session) Activate() func() {
	prev := im.Current()
	im.SetCurrent(s.ctx)
	return func() { im.SetCurrent(prev) }
}

// feed merges one frame of host input into the pending set and buffers the
// surface's mouse-button state for the next render frame.
func (s *Session) feed(keys input.KeySet) {
	s.pending.Merge(keys)

	s.mouseButtons = [2]bool{}
	if s.suppressNextMouse {
		return
	}
	left, right := s.surface.Mouse()
	s.mouseButtons[0] = left
	s.mouseButtons[1] = right
}

// newFrame pushes pending input through the translator and starts a
// library frame. Pending input is consumed exactly once.
func (s *Session) newFrame() {
	s.translator.NewFrame(s.ctx, s.pending, s.mouseButtons)
	s.pending = make(input.KeySet)
	s.mouseButtons = [2]bool{}
}

// saveSettings flushes window placements, best effort.
func (s *Session) saveSettings() {
	if s.store == nil {
		return
	}
	if err := s.store.Save(s.id.String(), s.ctx.Placements()); err != nil {
		log.Printf("Session %s: Failed to save window settings: %v", s.id, err)
	}
}
