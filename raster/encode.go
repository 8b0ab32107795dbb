// Copyright © 2026 Imgrid contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: raster/encode.go
// Summary: Host text-encoding adapter for glyph payloads.
//
// The host display speaks code page 437, so a glyph quad's UTF-8 payload
// counts as one display character exactly when it transcodes to a single
// CP437 byte.

package raster

import "golang.org/x/text/encoding/charmap"

// hostGlyph resolves a glyph payload to its display rune. ok is false when
// the payload does not land on exactly one host character.
func hostGlyph(payload string) (rune, bool) {
	if payload == "" {
		return 0, false
	}
	encoded, err := charmap.CodePage437.NewEncoder().Bytes([]byte(payload))
	if err != nil || len(encoded) != 1 {
		return 0, false
	}
	return charmap.CodePage437.DecodeByte(encoded[0]), true
}
