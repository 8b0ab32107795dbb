// Copyright © 2026 Imgrid contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: im/io.go
// Summary: Per-frame input state fed by the host-side translator.

package im

// KeysDownCapacity bounds the host key enum. The translator checks its key
// vocabulary fits at construction time.
const KeysDownCapacity = 512

// KeySlot names the logical keys the library acts on. The host binds each
// slot to one of its own key identifiers through IO.KeyMap.
type KeySlot int

const (
	// SlotActivate is the library's widget-activation key (space in its
	// native scheme; hosts with Enter-to-confirm muscle memory bind Enter
	// here instead).
	SlotActivate KeySlot = iota
	SlotEscape
	SlotBackspace
	SlotLeftArrow
	SlotRightArrow
	SlotUpArrow
	SlotDownArrow
	SlotCount
)

// IO is the library-side input/output state for one context.
type IO struct {
	KeysDown    [KeysDownCapacity]bool
	KeyMap      [SlotCount]int
	InputChars  []rune
	DisplaySize Vec2
	MousePos    Vec2
	MouseDown   [5]bool
	DeltaTime   float32

	MouseDragThreshold float32
	NavKeyboard        bool
}

// AddInputCharacter appends one character to the frame's text-input stream.
func (io *IO) AddInputCharacter(r rune) {
	io.InputChars = append(io.InputChars, r)
}

// ResetInput releases every key and mouse button.
func (io *IO) ResetInput() {
	io.KeysDown = [KeysDownCapacity]bool{}
	io.MouseDown = [5]bool{}
}

// SlotDown reports whether the host key bound to the slot is held.
func (io *IO) SlotDown(slot KeySlot) bool {
	k := io.KeyMap[slot]
	if k < 0 || k >= KeysDownCapacity {
		return false
	}
	return io.KeysDown[k]
}
