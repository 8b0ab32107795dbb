// Copyright © 2026 Imgrid contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: input/translate.go
// Summary: Per-frame translation of host key state into the library's IO.

package input

import (
	"fmt"
	"unicode"

	"github.com/framegrace/imgrid/grid"
	"github.com/framegrace/imgrid/im"
)

// frameDelta is the nominal per-frame time step handed to the library; the
// host does not report frame times.
const frameDelta = 33.0 / 1000.0

// Translator feeds one context's IO from the host's key set and surface
// each frame, ahead of the library's layout work.
type Translator struct {
	surface    grid.Surface
	suppressor *Suppressor
}

// NewTranslator wires a translator to its surface. The key vocabulary must
// fit the library's key-state array; a mismatch is a build configuration
// error, caught here rather than corrupting state later.
func NewTranslator(surface grid.Surface, suppressor *Suppressor) *Translator {
	if KeyCount > im.KeysDownCapacity {
		panic(fmt.Sprintf("input: key vocabulary (%d) exceeds library key capacity (%d)",
			KeyCount, im.KeysDownCapacity))
	}
	if suppressor == nil {
		suppressor = NewSuppressor(nil, 0)
	}
	return &Translator{surface: surface, suppressor: suppressor}
}

// BindKeys installs the host bindings for the library's logical key slots.
// The host's confirm key lands on the activation slot: the library natively
// toggles focus with space and activates with enter, which is backwards
// from the host's muscle memory, and the host's widgets auto-activate so
// binding confirm to activation preserves expectations.
func BindKeys(io *im.IO) {
	io.KeyMap[im.SlotActivate] = int(KeySelect)
	io.KeyMap[im.SlotEscape] = int(KeyLeaveScreen)
	io.KeyMap[im.SlotBackspace] = int(KeyBackspace)
	io.KeyMap[im.SlotLeftArrow] = int(KeyCursorLeft)
	io.KeyMap[im.SlotRightArrow] = int(KeyCursorRight)
	io.KeyMap[im.SlotUpArrow] = int(KeyCursorUp)
	io.KeyMap[im.SlotDownArrow] = int(KeyCursorDown)
}

// NewFrame pushes one frame of input into ctx and starts the library frame.
// mouse carries the button state buffered at the most recent feed.
func (t *Translator) NewFrame(ctx *im.Context, keys KeySet, mouse [2]bool) {
	keys = t.suppressor.Filter(keys)
	t.suppressor.Tick()

	io := &ctx.IO
	io.ResetInput()

	for k := range keys {
		if int(k) < im.KeysDownCapacity {
			io.KeysDown[k] = true
		}
		if c := KeyToChar(k); c >= 0 && c < 256 && unicode.IsPrint(rune(c)) {
			io.AddInputCharacter(rune(c))
		}
	}

	w, h := t.surface.Size()
	io.DisplaySize = im.Vec2{X: float32(w), Y: float32(h)}

	mx, my := t.surface.MousePos()
	io.MousePos = im.Vec2{X: float32(mx), Y: float32(my)}

	io.DeltaTime = frameDelta

	io.MouseDown[0] = mouse[0]
	io.MouseDown[1] = mouse[1]

	ctx.NewFrame()
}
