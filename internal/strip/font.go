package strip

import (
	"image"
	"image/color"
	"unicode"
)

// Glyph dimensions for the fixed-width pixel font. Every character cell is
// GlyphWidth pixels of ink plus one pixel of spacing, so text advances by
// CharWidth per character.
const (
	GlyphWidth  = 5
	GlyphHeight = 5
	CharWidth   = GlyphWidth + 1
)

// glyphs maps a rune to its 5x5 bitmask, one byte per row with the glyph in
// the low 5 bits (MSB = leftmost pixel). Runes without an entry draw as
// blank. Lowercase input is folded to uppercase before lookup.
var glyphs = map[rune][GlyphHeight]uint8{
	'A': {0b01110, 0b10001, 0b11111, 0b10001, 0b10001},
	'B': {0b11110, 0b10001, 0b11110, 0b10001, 0b11110},
	'C': {0b01111, 0b10000, 0b10000, 0b10000, 0b01111},
	'D': {0b11110, 0b10001, 0b10001, 0b10001, 0b11110},
	'E': {0b11111, 0b10000, 0b11110, 0b10000, 0b11111},
	'F': {0b11111, 0b10000, 0b11110, 0b10000, 0b10000},
	'G': {0b01111, 0b10000, 0b10011, 0b10001, 0b01111},
	'H': {0b10001, 0b10001, 0b11111, 0b10001, 0b10001},
	'I': {0b11111, 0b00100, 0b00100, 0b00100, 0b11111},
	'J': {0b00111, 0b00010, 0b00010, 0b10010, 0b01100},
	'K': {0b10010, 0b10100, 0b11000, 0b10100, 0b10010},
	'L': {0b10000, 0b10000, 0b10000, 0b10000, 0b11111},
	'M': {0b10001, 0b11011, 0b10101, 0b10001, 0b10001},
	'N': {0b10001, 0b11001, 0b10101, 0b10011, 0b10001},
	'O': {0b01110, 0b10001, 0b10001, 0b10001, 0b01110},
	'P': {0b11110, 0b10001, 0b11110, 0b10000, 0b10000},
	'Q': {0b01110, 0b10001, 0b10101, 0b10010, 0b01101},
	'R': {0b11110, 0b10001, 0b11110, 0b10100, 0b10010},
	'S': {0b01111, 0b10000, 0b01110, 0b00001, 0b11110},
	'T': {0b11111, 0b00100, 0b00100, 0b00100, 0b00100},
	'U': {0b10001, 0b10001, 0b10001, 0b10001, 0b01110},
	'V': {0b10001, 0b10001, 0b10001, 0b01010, 0b00100},
	'W': {0b10001, 0b10001, 0b10101, 0b11011, 0b10001},
	'X': {0b10001, 0b01010, 0b00100, 0b01010, 0b10001},
	'Y': {0b10001, 0b01010, 0b00100, 0b00100, 0b00100},
	'Z': {0b11111, 0b00010, 0b00100, 0b01000, 0b11111},
	'0': {0b01110, 0b10011, 0b10101, 0b11001, 0b01110},
	'1': {0b00100, 0b01100, 0b00100, 0b00100, 0b01110},
	'2': {0b11110, 0b00001, 0b01110, 0b10000, 0b11111},
	'3': {0b11110, 0b00001, 0b00110, 0b00001, 0b11110},
	'4': {0b10001, 0b10001, 0b11111, 0b00001, 0b00001},
	'5': {0b11111, 0b10000, 0b11110, 0b00001, 0b11110},
	'6': {0b01110, 0b10000, 0b11110, 0b10001, 0b01110},
	'7': {0b11111, 0b00001, 0b00010, 0b00100, 0b00100},
	'8': {0b01110, 0b10001, 0b01110, 0b10001, 0b01110},
	'9': {0b01110, 0b10001, 0b01111, 0b00001, 0b01110},
	'-': {0b00000, 0b00000, 0b11111, 0b00000, 0b00000},
	'/': {0b00001, 0b00010, 0b00100, 0b01000, 0b10000},
	'.': {0b00000, 0b00000, 0b00000, 0b00000, 0b00100},
	' ': {},
}

// DrawText renders s at (x, y) in the fixed-width pixel font. Pixels landing
// outside the image bounds are dropped.
func DrawText(img *image.RGBA, s string, x, y int, col color.RGBA) {
	for _, r := range s {
		rows, ok := glyphs[unicode.ToUpper(r)]
		if ok {
			for dy, row := range rows {
				for dx := 0; dx < GlyphWidth; dx++ {
					if row>>(GlyphWidth-1-dx)&1 != 0 {
						setPixel(img, x+dx, y+dy, col)
					}
				}
			}
		}
		x += CharWidth
	}
}

func setPixel(img *image.RGBA, x, y int, col color.RGBA) {
	if image.Pt(x, y).In(img.Bounds()) {
		img.SetRGBA(x, y, col)
	}
}
