// Copyright © 2026 Imgrid contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: theme/style.go
// Summary: Condensed character-grid style applied to a fresh context.

package theme

import "github.com/framegrace/imgrid/im"

// Apply configures ctx's style for a character grid: everything measured in
// whole cells, no rounding or borders, anti-aliasing off, keyboard nav on.
func Apply(ctx *im.Context) {
	s := &ctx.Style

	s.Alpha = 1.0
	s.WindowPadding = im.Vec2{X: 1, Y: 0}
	s.WindowRounding = 0
	s.WindowBorderSize = 0
	s.WindowMinSize = im.Vec2{X: 4, Y: 1}
	s.WindowTitleAlign = im.Vec2{}
	s.ChildRounding = 0
	s.ChildBorderSize = 0
	s.PopupRounding = 0
	s.PopupBorderSize = 0
	s.FramePadding = im.Vec2{X: 1, Y: 0}
	s.FrameRounding = 0
	s.FrameBorderSize = 0
	s.ItemSpacing = im.Vec2{X: 1, Y: 0}
	s.ItemInnerSpacing = im.Vec2{X: 1, Y: 0}
	s.IndentSpacing = 1
	s.ColumnsMinSpacing = 1
	s.ScrollbarSize = 0.5
	s.ScrollbarRounding = 0
	s.GrabMinSize = 0.1
	s.GrabRounding = 0
	s.TabRounding = 0
	s.TabBorderSize = 0
	s.ButtonTextAlign = im.Vec2{}
	s.SelectableTextAlign = im.Vec2{}
	s.CellPadding = im.Vec2{X: 1, Y: 0}
	s.MouseCursorScale = 1
	s.AntiAliasedLines = false
	s.AntiAliasedFill = false

	for i := range s.Colors {
		s.Colors[i] = Colour("BLACK", "BLACK", false)
	}

	s.Colors[im.ColText] = Colour("WHITE", "WHITE", false)
	s.Colors[im.ColTextDisabled] = Colour("GREY", "GREY", false)
	s.Colors[im.ColTitleBg] = Colour("BLACK", "BLUE", false)
	s.Colors[im.ColTitleBgActive] = Colour("BLACK", "LIGHTBLUE", false)
	s.Colors[im.ColTitleBgCollapsed] = Colour("BLACK", "BLUE", false)
	s.Colors[im.ColMenuBarBg] = Colour("BLACK", "BLUE", false)
	s.Colors[im.ColTextSelectedBg] = Colour("BLACK", "RED", false)
	s.Colors[im.ColCheckMark] = Colour("WHITE", "BLACK", false)
	s.Colors[im.ColSliderGrab] = Colour("WHITE", "BLACK", false)
	s.Colors[im.ColSliderGrabActive] = Colour("WHITE", "BLACK", false)
	s.Colors[im.ColButton] = Colour("WHITE", "BLACK", false)
	s.Colors[im.ColButtonHovered] = Colour("BLACK", "RED", false)
	s.Colors[im.ColButtonActive] = Colour("BLACK", "GREEN", false)
	s.Colors[im.ColHeader] = Colour("BLACK", "BLUE", false)
	s.Colors[im.ColHeaderHovered] = Colour("BLACK", "BLUE", false)
	s.Colors[im.ColHeaderActive] = Colour("BLACK", "BLUE", false)
	s.Colors[im.ColSeparator] = Colour("WHITE", "WHITE", false)
	s.Colors[im.ColSeparatorHovered] = Colour("WHITE", "WHITE", false)
	s.Colors[im.ColSeparatorActive] = Colour("WHITE", "WHITE", false)
	s.Colors[im.ColResizeGrip] = Colour("WHITE", "BLACK", false)
	s.Colors[im.ColResizeGripHovered] = Colour("WHITE", "BLACK", false)
	s.Colors[im.ColResizeGripActive] = Colour("WHITE", "BLACK", false)
	s.Colors[im.ColTableBorderStrong] = Colour("WHITE", "WHITE", false)
	s.Colors[im.ColTableBorderLight] = Colour("WHITE", "WHITE", false)

	// Nav highlights stay invisible; a separate highlight layer reads badly
	// on a 16-colour grid.
	s.Colors[im.ColNavHighlight] = im.Vec4{}
	s.Colors[im.ColNavWindowingHighlight] = im.Vec4{}
	s.Colors[im.ColNavWindowingDimBg] = im.Vec4{}

	ctx.IO.MouseDragThreshold = 0
	ctx.IO.NavKeyboard = true
}
