// Copyright © 2026 Imgrid contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package im

import "testing"

func names(ws []*Window) []string {
	out := make([]string, len(ws))
	for i, w := range ws {
		out[i] = w.Name
	}
	return out
}

func equalNames(a []*Window, b ...string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Name != b[i] {
			return false
		}
	}
	return true
}

func buildContext(namesInOrder ...string) *Context {
	c := CreateContext()
	for _, n := range namesInOrder {
		c.Begin(n)
		c.End()
	}
	return c
}

func TestRearrangeSplicesMembersToFront(t *testing.T) {
	c := buildContext("a", "b", "c", "d")
	members := []*Window{c.Window("b"), c.Window("a")}

	c.Rearrange(members, members)

	if !equalNames(c.DisplayOrder(), "c", "d", "b", "a") {
		t.Fatalf("display order = %v", names(c.DisplayOrder()))
	}
	if !equalNames(c.FocusOrder(), "c", "d", "b", "a") {
		t.Fatalf("focus order = %v", names(c.FocusOrder()))
	}
}

func TestRearrangeIdempotent(t *testing.T) {
	c := buildContext("a", "b", "c", "d")
	pull := func() ([]*Window, []*Window) {
		set := []*Window{c.Window("b"), c.Window("d")}
		return SortWindows(c.PullDisplayOrder(set)), c.PullFocusOrder(set)
	}

	display, focus := pull()
	c.Rearrange(display, focus)
	first := names(c.DisplayOrder())
	firstFocus := names(c.FocusOrder())

	display, focus = pull()
	c.Rearrange(display, focus)

	second := names(c.DisplayOrder())
	secondFocus := names(c.FocusOrder())
	for i := range first {
		if first[i] != second[i] || firstFocus[i] != secondFocus[i] {
			t.Fatalf("reapplying the same set moved windows: %v -> %v", first, second)
		}
	}
}

func TestSortWindowsParentsBeforeChildren(t *testing.T) {
	c := CreateContext()
	c.Begin("root")
	c.Begin("root.child")
	c.Begin("root.child.leaf")
	c.End()
	c.End()
	c.End()
	c.Begin("other")
	c.End()

	list := []*Window{
		c.Window("root.child.leaf"),
		c.Window("other"),
		c.Window("root"),
		c.Window("root.child"),
	}
	sorted := SortWindows(list)
	if !equalNames(sorted, "other", "root", "root.child", "root.child.leaf") {
		t.Fatalf("sorted = %v", names(sorted))
	}
}

func TestProgressiveRenderRestrictsToGivenWindows(t *testing.T) {
	c := CreateContext()
	c.IO.DisplaySize = Vec2{X: 80, Y: 25}
	for _, n := range []string{"a", "b"} {
		c.Begin(n)
		c.Text("x")
		c.End()
	}

	c.ProgressiveRender([]*Window{c.Window("a")}, false)
	dd := c.DrawData()
	if len(dd.Lists) != 1 {
		t.Fatalf("restricted render produced %d lists", len(dd.Lists))
	}
}

func TestProgressiveRenderCatchAllSweepsUnrendered(t *testing.T) {
	c := CreateContext()
	c.IO.DisplaySize = Vec2{X: 80, Y: 25}
	c.NewFrame()
	for _, n := range []string{"a", "b", "c"} {
		c.Begin(n)
		c.Text("x")
		c.End()
	}

	// An inner pass renders "a"; the outermost pass sweeps the rest.
	c.ProgressiveRender([]*Window{c.Window("a")}, false)
	c.ProgressiveRender([]*Window{c.Window("b")}, true)

	dd := c.DrawData()
	if len(dd.Lists) != 2 {
		t.Fatalf("catch-all render produced %d lists, want b and c", len(dd.Lists))
	}
}
