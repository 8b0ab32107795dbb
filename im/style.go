// Copyright © 2026 Imgrid contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: im/style.go
// Summary: Style constants tuned for a character-cell display.

package im

// Col indexes the style colour table.
type Col int

const (
	ColText Col = iota
	ColTextDisabled
	ColWindowBg
	ColChildBg
	ColPopupBg
	ColBorder
	ColTitleBg
	ColTitleBgActive
	ColTitleBgCollapsed
	ColMenuBarBg
	ColTextSelectedBg
	ColCheckMark
	ColSliderGrab
	ColSliderGrabActive
	ColButton
	ColButtonHovered
	ColButtonActive
	ColHeader
	ColHeaderHovered
	ColHeaderActive
	ColSeparator
	ColSeparatorHovered
	ColSeparatorActive
	ColResizeGrip
	ColResizeGripHovered
	ColResizeGripActive
	ColTableBorderStrong
	ColTableBorderLight
	ColNavHighlight
	ColNavWindowingHighlight
	ColNavWindowingDimBg
	ColCount
)

// Style holds the layout metrics and colours of one context. On a character
// grid every metric is in whole or half cells; rounding and borders are off.
type Style struct {
	Alpha              float32
	WindowPadding      Vec2
	WindowRounding     float32
	WindowBorderSize   float32
	WindowMinSize      Vec2
	WindowTitleAlign   Vec2
	ChildRounding      float32
	ChildBorderSize    float32
	PopupRounding      float32
	PopupBorderSize    float32
	FramePadding       Vec2
	FrameRounding      float32
	FrameBorderSize    float32
	ItemSpacing        Vec2
	ItemInnerSpacing   Vec2
	IndentSpacing      float32
	ColumnsMinSpacing  float32
	ScrollbarSize      float32
	ScrollbarRounding  float32
	GrabMinSize        float32
	GrabRounding       float32
	TabRounding        float32
	TabBorderSize      float32
	ButtonTextAlign    Vec2
	SelectableTextAlign Vec2
	CellPadding        Vec2
	MouseCursorScale   float32
	AntiAliasedLines   bool
	AntiAliasedFill    bool

	Colors [ColCount]Vec4
}
