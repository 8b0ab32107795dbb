// Copyright © 2026 Imgrid contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: input/key.go
// Summary: The host's key vocabulary and its character conversions.

package input

// Key identifies one host input event. Printable characters map onto their
// byte value; named keys follow above the character range. The type is
// totally ordered so key sets and tables stay deterministic.
type Key int

const (
	KeyNone Key = 0

	// 1..255 are character keys, addressed via CharToKey.

	KeyCursorLeft Key = iota + 256
	KeyCursorRight
	KeyCursorUp
	KeyCursorDown
	// KeySelect is the host's confirm key (Enter).
	KeySelect
	// KeyLeaveScreen is the host's dismiss key (Escape).
	KeyLeaveScreen
	KeyBackspace

	// keyCount reserves one extra slot used as an always-false key.
	keyCount
)

// KeyCount is the size of the host key enum including the spare slot.
const KeyCount = int(keyCount) + 1

// CharToKey maps a printable character to its key, or KeyNone for
// characters outside the single-byte range.
func CharToKey(r rune) Key {
	if r <= 0 || r > 255 {
		return KeyNone
	}
	return Key(r)
}

// KeyToChar maps a character key back to its character value, or -1 for
// named keys.
func KeyToChar(k Key) int {
	if k > 0 && k < 256 {
		return int(k)
	}
	return -1
}

// KeySet is the set of keys the host reports pressed for one frame.
type KeySet map[Key]bool

// NewKeySet builds a set from the given keys.
func NewKeySet(keys ...Key) KeySet {
	s := make(KeySet, len(keys))
	for _, k := range keys {
		s[k] = true
	}
	return s
}

// Clone copies the set; filters work on copies so the host's set survives.
func (s KeySet) Clone() KeySet {
	out := make(KeySet, len(s))
	for k, v := range s {
		if v {
			out[k] = true
		}
	}
	return out
}

// Merge adds every key of other to s.
func (s KeySet) Merge(other KeySet) {
	for k, v := range other {
		if v {
			s[k] = true
		}
	}
}

// Has reports membership.
func (s KeySet) Has(k Key) bool { return s[k] }
