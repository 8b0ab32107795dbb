// Copyright © 2026 Imgrid contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: theme/theme.go
// Summary: The 16-colour terminal palette and its colour interop helpers.

package theme

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/framegrace/imgrid/im"
)

// Reset is the pseudo-index meaning "keep whatever colour is there".
const Reset = -1

// Palette indices in host order.
const (
	Black = iota
	Blue
	Green
	Cyan
	Red
	Magenta
	Brown
	Grey
	DarkGrey
	LightBlue
	LightGreen
	LightCyan
	LightRed
	LightMagenta
	Yellow
	White
	Max
)

var names = map[string]int{
	"RESET":        Reset,
	"BLACK":        Black,
	"BLUE":         Blue,
	"GREEN":        Green,
	"CYAN":         Cyan,
	"RED":          Red,
	"MAGENTA":      Magenta,
	"BROWN":        Brown,
	"GREY":         Grey,
	"DARKGREY":     DarkGrey,
	"LIGHTBLUE":    LightBlue,
	"LIGHTGREEN":   LightGreen,
	"LIGHTCYAN":    LightCyan,
	"LIGHTRED":     LightRed,
	"LIGHTMAGENTA": LightMagenta,
	"YELLOW":       Yellow,
	"WHITE":        White,
	"MAX":          Max,
}

// Index resolves a colour name to its palette index.
func Index(name string) (int, error) {
	idx, ok := names[name]
	if !ok {
		return 0, fmt.Errorf("theme: unknown colour %q", name)
	}
	return idx, nil
}

// MustIndex is Index for the package's own fixed tables.
func MustIndex(name string) int {
	idx, err := Index(name)
	if err != nil {
		panic(err)
	}
	return idx
}

// Colour builds the interop encoding from named foreground and background.
// The character payload travels elsewhere; Z carries the bold flag.
func Colour(fg, bg string, bold bool) im.Vec4 {
	b := float32(0)
	if bold {
		b = 1
	}
	return im.Vec4{X: float32(MustIndex(fg)), Y: float32(MustIndex(bg)), Z: b, W: 1}
}

// tcellColours maps palette indices onto tcell's ANSI names.
var tcellColours = [Max]tcell.Color{
	tcell.ColorBlack,
	tcell.ColorNavy,
	tcell.ColorGreen,
	tcell.ColorTeal,
	tcell.ColorMaroon,
	tcell.ColorPurple,
	tcell.ColorOlive,
	tcell.ColorSilver,
	tcell.ColorGray,
	tcell.ColorBlue,
	tcell.ColorLime,
	tcell.ColorAqua,
	tcell.ColorRed,
	tcell.ColorFuchsia,
	tcell.ColorYellow,
	tcell.ColorWhite,
}

// ToTcell maps a palette index to a tcell colour. Out-of-range indices
// (including Reset) fall back to the terminal default.
func ToTcell(index int) tcell.Color {
	if index < 0 || index >= Max {
		return tcell.ColorDefault
	}
	return tcellColours[index]
}

// paletteRGB holds reference RGB values for nearest-colour resolution,
// matching the classic VGA text palette.
var paletteRGB = [Max]colorful.Color{
	rgb(0x00, 0x00, 0x00), // BLACK
	rgb(0x00, 0x00, 0xaa), // BLUE
	rgb(0x00, 0xaa, 0x00), // GREEN
	rgb(0x00, 0xaa, 0xaa), // CYAN
	rgb(0xaa, 0x00, 0x00), // RED
	rgb(0xaa, 0x00, 0xaa), // MAGENTA
	rgb(0xaa, 0x55, 0x00), // BROWN
	rgb(0xaa, 0xaa, 0xaa), // GREY
	rgb(0x55, 0x55, 0x55), // DARKGREY
	rgb(0x55, 0x55, 0xff), // LIGHTBLUE
	rgb(0x55, 0xff, 0x55), // LIGHTGREEN
	rgb(0x55, 0xff, 0xff), // LIGHTCYAN
	rgb(0xff, 0x55, 0x55), // LIGHTRED
	rgb(0xff, 0x55, 0xff), // LIGHTMAGENTA
	rgb(0xff, 0xff, 0x55), // YELLOW
	rgb(0xff, 0xff, 0xff), // WHITE
}

func rgb(r, g, b uint8) colorful.Color {
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// Nearest returns the palette index perceptually closest to c.
func Nearest(c colorful.Color) int {
	best, bestDist := Black, -1.0
	for i, p := range paletteRGB {
		d := c.DistanceLab(p)
		if bestDist < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}
