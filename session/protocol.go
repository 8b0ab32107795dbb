// Copyright © 2026 Imgrid contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: session/protocol.go
// Summary: The per-screen render and feed pass protocol.
//
// Every host screen brackets its GUI work in RenderStart/RenderEnd and its
// input handling in FeedStart/FeedEnd. Brackets nest like the host's screen
// stack: the outermost screen's start comes first and its end comes last,
// after every nested screen's passes. Depth 1 identifies the outermost
// pass; it owns frame setup, the final catch-all composite, and teardown.

package session

import (
	"log"

	"github.com/framegrace/imgrid/im"
	"github.com/framegrace/imgrid/input"
)

// RenderStart opens a render pass and returns its depth as the pass id.
// The outermost call resets the frame bookkeeping, activates the context,
// and begins the library frame.
func (s *Session) RenderStart(isTop bool) int {
	if isTop {
		s.passes = s.passes[:0]
		s.rendered = make(map[string]bool)
		s.renderDepth = 0
		s.restoreRender = s.Activate()
		s.newFrame()
	}

	s.renderDepth++
	for len(s.passes) < s.renderDepth {
		s.passes = append(s.passes, passRecord{})
	}
	s.passes[s.renderDepth-1] = passRecord{}
	return s.renderDepth
}

// ClaimCurrentWindow registers the innermost open window under the current
// pass. Call between Begin and End of the window being claimed.
func (s *Session) ClaimCurrentWindow() {
	w := s.ctx.CurrentWindow()
	if w == nil || s.renderDepth == 0 {
		log.Printf("Session %s: Window claim outside a render pass", s.id)
		return
	}
	rec := &s.passes[s.renderDepth-1]
	rec.windows = append(rec.windows, w.Name)
}

// DeclareSuppressedKey marks a key as consumed by the current pass; its
// presence in a later feed blocks upward propagation until the next
// top-level render pass resets the declarations.
func (s *Session) DeclareSuppressedKey(k input.Key) {
	if s.renderDepth == 0 {
		log.Printf("Session %s: Suppressed-key declaration outside a render pass", s.id)
		return
	}
	rec := &s.passes[s.renderDepth-1]
	rec.suppressed = append(rec.suppressed, k)
}

// FeedUpwards requests that unconsumed input continue to the screen
// beneath this one. One-shot: cleared at FeedEnd.
func (s *Session) FeedUpwards() {
	s.shouldFeedUp = true
}

// SuppressNextKeyboardFeed vetoes the next upward keyboard propagation,
// regardless of FeedUpwards. One-shot.
func (s *Session) SuppressNextKeyboardFeed() {
	s.suppressNextKeyboard = true
}

// SuppressNextMouseFeed drops the next buffered mouse-button capture so a
// click handled here is not replayed beneath. One-shot.
func (s *Session) SuppressNextMouseFeed() {
	s.suppressNextMouse = true
}

// RenderEnd closes the pass identified by id. The pass's claimed windows
// and their not-yet-rendered descendants are spliced to the front of the
// display and focus orders, composited, and rasterized onto the surface.
// The outermost pass also sweeps up windows no pass claimed, ends the
// library frame, and restores the previous context.
func (s *Session) RenderEnd(isTop bool, id int) {
	if id < 1 || id > len(s.passes) {
		log.Printf("Session %s: RenderEnd with bad pass id %d", s.id, id)
		return
	}

	base := s.collectClaimed(s.passes[id-1].windows, isTop)
	all := s.appendDescendants(base)
	for _, w := range all {
		s.rendered[w.Name] = true
	}

	display := s.ctx.PullDisplayOrder(all)
	focus := s.ctx.PullFocusOrder(all)
	display = im.SortWindows(display)

	s.ctx.Rearrange(display, focus)
	s.ctx.ProgressiveRender(display, isTop)
	s.renderer.Render(s.ctx.DrawData(), s.surface)

	s.renderDepth--

	if isTop {
		s.ctx.EndFrame()
		if s.restoreRender != nil {
			s.restoreRender()
			s.restoreRender = nil
		}
	}
}

// collectClaimed resolves claimed names against the context in display
// order. The outermost pass takes every window an earlier pass has not
// rendered; inner passes only their own claims.
func (s *Session) collectClaimed(names []string, isTop bool) []*im.Window {
	claimed := make(map[string]bool, len(names))
	for _, n := range names {
		claimed[n] = true
	}
	var out []*im.Window
	for _, w := range s.ctx.DisplayOrder() {
		if !claimed[w.Name] && !isTop {
			continue
		}
		if s.rendered[w.Name] {
			continue
		}
		out = append(out, w)
	}
	return out
}

// appendDescendants expands the window list with every descendant not
// rendered by an earlier pass. Explicit worklist: window trees come from
// host widget code and can nest arbitrarily.
func (s *Session) appendDescendants(base []*im.Window) []*im.Window {
	var out []*im.Window
	for _, root := range base {
		work := []*im.Window{root}
		for len(work) > 0 {
			w := work[len(work)-1]
			work = work[:len(work)-1]

			if !s.rendered[w.Name] {
				out = append(out, w)
			}
			for i := len(w.Children) - 1; i >= 0; i-- {
				work = append(work, w.Children[i])
			}
		}
	}
	return out
}

// FeedStart opens a feed pass. The outermost call merges the host's key
// set into the session's pending input and buffers mouse state.
func (s *Session) FeedStart(isTop bool, keys input.KeySet) {
	if keys != nil && isTop {
		s.feed(keys)
	}
	s.restoreFeed = s.Activate()
}

// FeedEnd closes a feed pass and reports whether the host should also
// deliver this input to the screen beneath: only when some widget asked
// for upward feed, nothing vetoed it, and none of the pressed keys was
// declared consumed by any pass. Both one-shot flags reset regardless.
func (s *Session) FeedEnd(keys input.KeySet) bool {
	shouldFeed := false
	if s.shouldFeedUp && !s.suppressNextKeyboard && keys != nil {
		shouldFeed = !s.anySuppressed(keys)
	}

	s.shouldFeedUp = false
	s.suppressNextKeyboard = false
	s.suppressNextMouse = false

	if s.restoreFeed != nil {
		s.restoreFeed()
		s.restoreFeed = nil
	}
	return shouldFeed
}

func (s *Session) anySuppressed(keys input.KeySet) bool {
	for _, rec := range s.passes {
		for _, k := range rec.suppressed {
			if keys.Has(k) {
				return true
			}
		}
	}
	return false
}

// OnDismissLastScreen clears pending input and suppressed-key declarations
// when the host tears down the last screen using this session, so nothing
// stale leaks into an unrelated future screen. Window placements are
// flushed to the settings store when one is attached.
func (s *Session) OnDismissLastScreen() {
	restore := s.Activate()
	defer restore()

	s.ctx.IO.ResetInput()
	for i := range s.passes {
		s.passes[i].suppressed = nil
	}
	s.pending = make(input.KeySet)
	s.mouseButtons = [2]bool{}

	s.saveSettings()
}
