// Copyright © 2026 Imgrid contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: im/context.go
// Summary: Context lifecycle, window registration, and frame state.
// Usage: One context per embedding session; the host-side session swaps the
// current context in and out around its render and feed passes.

package im

import "log"

// Context owns the window lists, input state, and per-frame draw data of
// one independent GUI instance.
type Context struct {
	IO    IO
	Style Style

	// windows is back-to-front display order: the last entry draws on top.
	windows []*Window
	// focus is least- to most-recently-focused.
	focus  []*Window
	byName map[string]*Window

	stack    []*Window
	drawData *DrawData
	rendered map[*Window]bool

	pending    map[string]Placement
	frameCount int
	inFrame    bool
}

// current is the library's global current-context pointer, the single piece
// of process state embedders must swap around their passes.
var current *Context

// CreateContext returns a fresh context. It does not become current.
func CreateContext() *Context {
	return &Context{
		byName:   make(map[string]*Window),
		rendered: make(map[*Window]bool),
		pending:  make(map[string]Placement),
	}
}

// Current returns the current context, which may be nil.
func Current() *Context { return current }

// SetCurrent swaps the current context. Callers are expected to save the
// previous value and restore it when done.
func SetCurrent(ctx *Context) { current = ctx }

// NewFrame starts a frame: per-window draw lists are discarded and the
// rendered-this-frame set is cleared. Input state in IO is expected to have
// been written by the translator beforehand.
func (c *Context) NewFrame() {
	c.frameCount++
	c.inFrame = true
	c.rendered = make(map[*Window]bool)
	for _, w := range c.windows {
		w.drawList.reset()
		w.cursor = Vec2{X: w.Pos.X + c.Style.WindowPadding.X, Y: w.Pos.Y}
	}
}

// EndFrame closes the frame. An unbalanced Begin is a host bug; it is
// logged and the stack discarded rather than crashing the render loop.
func (c *Context) EndFrame() {
	if len(c.stack) != 0 {
		log.Printf("im: EndFrame with %d unclosed windows", len(c.stack))
		c.stack = c.stack[:0]
	}
	c.inFrame = false
	c.IO.InputChars = c.IO.InputChars[:0]
}

// FrameCount returns the number of frames started so far.
func (c *Context) FrameCount() int { return c.frameCount }

// Begin opens the named window, creating it on first use. Nested Begins
// record the parent/child relation. Every Begin needs a matching End.
func (c *Context) Begin(name string) *Window {
	w, ok := c.byName[name]
	if !ok {
		w = &Window{Name: name}
		if p, hit := c.pending[name]; hit {
			w.applyPlacement(p)
			delete(c.pending, name)
		}
		c.byName[name] = w
		c.windows = append(c.windows, w)
		c.focus = append(c.focus, w)
	}
	if len(c.stack) > 0 {
		parent := c.stack[len(c.stack)-1]
		if w.Parent == nil && parent != w {
			w.Parent = parent
			parent.addChild(w)
		}
	}
	c.stack = append(c.stack, w)
	w.cursor = Vec2{X: w.Pos.X + c.Style.WindowPadding.X, Y: w.Pos.Y}
	return w
}

// End closes the most recently begun window.
func (c *Context) End() {
	if len(c.stack) == 0 {
		log.Printf("im: End without matching Begin")
		return
	}
	c.stack = c.stack[:len(c.stack)-1]
}

// CurrentWindow returns the window of the innermost open Begin, or nil.
func (c *Context) CurrentWindow() *Window {
	if len(c.stack) == 0 {
		return nil
	}
	return c.stack[len(c.stack)-1]
}

// Window returns the named window if it exists.
func (c *Context) Window(name string) *Window {
	return c.byName[name]
}

// Text emits s as glyph quads at the current window's cursor, one cell per
// rune, in the style's text colour. Newlines move the cursor down.
func (c *Context) Text(s string) {
	c.TextColoured(c.Style.Colors[ColText], s)
}

// TextColoured is Text with an explicit colour.
func (c *Context) TextColoured(col Vec4, s string) {
	w := c.CurrentWindow()
	if w == nil {
		return
	}
	packed := PackColour(col)
	startX := w.Pos.X + c.Style.WindowPadding.X
	for _, r := range s {
		if r == '\n' {
			w.cursor.X = startX
			w.cursor.Y++
			continue
		}
		w.drawList.addGlyph(int(w.cursor.X), int(w.cursor.Y), r, packed)
		w.cursor.X++
	}
	w.cursor.X = startX
	w.cursor.Y++
}

// Rect emits a filled rectangle as two geometry triangles.
func (c *Context) Rect(min, max Vec2, col Vec4) {
	w := c.CurrentWindow()
	if w == nil {
		return
	}
	packed := PackColour(col)
	w.drawList.addTriangle(min, Vec2{X: max.X, Y: min.Y}, max, packed)
	w.drawList.addTriangle(min, max, Vec2{X: min.X, Y: max.Y}, packed)
}

// Triangle emits a single geometry triangle.
func (c *Context) Triangle(p0, p1, p2 Vec2, col Vec4) {
	w := c.CurrentWindow()
	if w == nil {
		return
	}
	w.drawList.addTriangle(p0, p1, p2, PackColour(col))
}

// ApplyPlacement records a placement for the named window. Existing windows
// move immediately; otherwise the placement is applied when the window is
// first begun.
func (c *Context) ApplyPlacement(p Placement) {
	if w, ok := c.byName[p.Name]; ok {
		w.applyPlacement(p)
		return
	}
	c.pending[p.Name] = p
}

// Placements snapshots every window's placement for persistence.
func (c *Context) Placements() []Placement {
	out := make([]Placement, 0, len(c.windows))
	for _, w := range c.windows {
		out = append(out, w.placement())
	}
	return out
}
