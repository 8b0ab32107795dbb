// Copyright © 2026 Imgrid contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: im/order.go
// Summary: Window ordering surgery and the restricted progressive render.
// Usage: Driven by the session's render protocol to splice each pass's
// windows to the front of the display and focus lists before compositing.

package im

// DisplayOrder returns the back-to-front window list. The slice is a copy;
// the windows are not.
func (c *Context) DisplayOrder() []*Window {
	return append([]*Window(nil), c.windows...)
}

// FocusOrder returns the focus list, most recently focused last.
func (c *Context) FocusOrder() []*Window {
	return append([]*Window(nil), c.focus...)
}

// PullDisplayOrder filters the context's display list down to the given
// windows, preserving the context's current order.
func (c *Context) PullDisplayOrder(windows []*Window) []*Window {
	return pullOrdered(c.windows, windows)
}

// PullFocusOrder filters the context's focus list down to the given
// windows, preserving the context's current order.
func (c *Context) PullFocusOrder(windows []*Window) []*Window {
	return pullOrdered(c.focus, windows)
}

func pullOrdered(from, subset []*Window) []*Window {
	set := make(map[*Window]bool, len(subset))
	for _, w := range subset {
		set[w] = true
	}
	var out []*Window
	for _, w := range from {
		if set[w] {
			out = append(out, w)
		}
	}
	return out
}

// Rearrange rewrites the display and focus lists: windows outside the given
// slices keep their relative order, the given windows are appended at the
// front-most/most-recently-focused end in the order given.
func (c *Context) Rearrange(display, focus []*Window) {
	c.windows = spliceFront(c.windows, display)
	c.focus = spliceFront(c.focus, focus)
}

func spliceFront(existing, members []*Window) []*Window {
	set := make(map[*Window]bool, len(members))
	for _, w := range members {
		set[w] = true
	}
	out := make([]*Window, 0, len(existing))
	for _, w := range existing {
		if !set[w] {
			out = append(out, w)
		}
	}
	return append(out, members...)
}

// SortWindows reorders the list so every parent precedes its children and
// each subtree stays contiguous, the library's sibling/child display rule.
// Only applied to display order. Uses an explicit worklist so pathological
// window nesting cannot exhaust the call stack.
func SortWindows(list []*Window) []*Window {
	inList := make(map[*Window]bool, len(list))
	for _, w := range list {
		inList[w] = true
	}
	seen := make(map[*Window]bool, len(list))
	out := make([]*Window, 0, len(list))

	emit := func(root *Window) {
		work := []*Window{root}
		for len(work) > 0 {
			w := work[len(work)-1]
			work = work[:len(work)-1]
			if seen[w] {
				continue
			}
			seen[w] = true
			out = append(out, w)
			// Push children reversed so they pop in sibling order.
			for i := len(w.Children) - 1; i >= 0; i-- {
				if ch := w.Children[i]; inList[ch] {
					work = append(work, ch)
				}
			}
		}
	}

	for _, w := range list {
		if w.Parent != nil && inList[w.Parent] {
			continue // emitted inside its parent's subtree
		}
		emit(w)
	}
	return out
}

// ProgressiveRender builds the frame's draw data restricted to exactly the
// given windows, back to front. When renderUnclaimed is set, windows that no
// render call has touched this frame are appended after them; the embedding
// protocol enables that only for its outermost pass.
func (c *Context) ProgressiveRender(windows []*Window, renderUnclaimed bool) {
	emit := append([]*Window(nil), windows...)
	if renderUnclaimed {
		set := make(map[*Window]bool, len(windows))
		for _, w := range windows {
			set[w] = true
		}
		for _, w := range c.windows {
			if !set[w] && !c.rendered[w] {
				emit = append(emit, w)
			}
		}
	}

	dd := &DrawData{
		DisplaySize:      c.IO.DisplaySize,
		FramebufferScale: Vec2{X: 1, Y: 1},
	}
	for _, w := range emit {
		c.rendered[w] = true
		if len(w.drawList.IdxBuffer) == 0 {
			continue
		}
		list := &DrawList{
			VtxBuffer: append([]DrawVert(nil), w.drawList.VtxBuffer...),
			IdxBuffer: append([]int(nil), w.drawList.IdxBuffer...),
		}
		list.CmdBuffer = []DrawCmd{{
			ClipRect:  w.clipRect(c.IO.DisplaySize),
			ElemCount: len(list.IdxBuffer),
			IdxOffset: 0,
		}}
		dd.Lists = append(dd.Lists, list)
	}
	c.drawData = dd
}

// DrawData returns the data built by the most recent ProgressiveRender, or
// nil before the first one.
func (c *Context) DrawData() *DrawData {
	return c.drawData
}
