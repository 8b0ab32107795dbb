// Copyright © 2026 Imgrid contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: input/suppress.go
// Summary: Numeric-pad vs arrow-key suppression filter.
//
// The host emits both the raw numeric key (e.g. '4') and a synthesized
// directional key for the same physical key-repeat, and the synthesized one
// can arrive a frame early. Seeing the trigger therefore suppresses its
// paired arrow for a window of frames, not just the frame itself.

package input

// DefaultSuppressFrames is how many frames an arrow stays suppressed after
// its numeric trigger was last seen. Chosen empirically against key-repeat
// timing; frame counting is a known approximation of a time-based window.
const DefaultSuppressFrames = 10

// DefaultPairs maps the numeric movement keys to the arrows they shadow.
func DefaultPairs() map[Key]Key {
	return map[Key]Key{
		CharToKey('4'): KeyCursorLeft,
		CharToKey('6'): KeyCursorRight,
		CharToKey('8'): KeyCursorUp,
		CharToKey('2'): KeyCursorDown,
	}
}

// Suppressor tracks which triggers are "dangerous": recently pressed and
// still within the suppression window.
type Suppressor struct {
	pairs     map[Key]Key
	ages      map[Key]int
	maxFrames int
}

// NewSuppressor builds a filter over the given trigger→arrow pairs.
func NewSuppressor(pairs map[Key]Key, maxFrames int) *Suppressor {
	if pairs == nil {
		pairs = DefaultPairs()
	}
	if maxFrames <= 0 {
		maxFrames = DefaultSuppressFrames
	}
	return &Suppressor{
		pairs:     pairs,
		ages:      make(map[Key]int),
		maxFrames: maxFrames,
	}
}

// Filter returns keys with every suppressed arrow removed and restarts the
// age of any trigger present this frame. The input set is not modified.
func (s *Suppressor) Filter(keys KeySet) KeySet {
	out := keys.Clone()
	for trigger, arrow := range s.pairs {
		if !out.Has(trigger) {
			continue
		}
		s.ages[trigger] = 0
		delete(out, arrow)
	}

	// A trigger seen within the window keeps its arrow suppressed even on
	// frames where the trigger itself is absent; that covers the
	// one-frame-early repeat race.
	for trigger, age := range s.ages {
		if age <= s.maxFrames {
			delete(out, s.pairs[trigger])
		}
	}
	return out
}

// Tick ages every tracked trigger by one frame, dropping entries that have
// outlived the window. Called exactly once per input-processing frame,
// after Filter.
func (s *Suppressor) Tick() {
	for trigger := range s.ages {
		s.ages[trigger]++
		if s.ages[trigger] > s.maxFrames {
			delete(s.ages, trigger)
		}
	}
}

// Tracking reports whether the trigger is currently aged, for tests.
func (s *Suppressor) Tracking(trigger Key) bool {
	_, ok := s.ages[trigger]
	return ok
}
