// Package dots models a single braille cell as an 8-dot bitmask.
//
// A Cell is a 2-column by 4-row grid of dots, one bit per dot, laid out per
// the Unicode Braille Patterns block: adding the mask to U+2800 yields the
// glyph for the pattern. All 256 mask values are valid glyphs.
package dots

import (
	"io"
	"unicode/utf8"
)

// Base is the first code point of the Unicode Braille Patterns block, the
// glyph with no dots set.
const Base rune = 0x2800

// RenderLen is the number of bytes Render writes: every code point in the
// Braille Patterns block encodes as 3 bytes of UTF-8.
const RenderLen = 3

// Cell is the dot pattern of one braille glyph. The zero value has all dots
// off. Columns are addressed x = 1,2 left to right, rows y = 1..4 top to
// bottom.
type Cell uint8

// masks maps a row and column to the bit weight of its dot, indexed
// [y-1][x-1]. The weights follow Unicode's dot numbering: the left column
// carries dots 1,2,3,7 top to bottom, the right column dots 4,5,6,8.
var masks = [4][2]Cell{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

func mask(x, y int) (Cell, bool) {
	if x < 1 || x > 2 || y < 1 || y > 4 {
		return 0, false
	}
	return masks[y-1][x-1], true
}

// New returns a cell with all dots off.
func New() Cell {
	return 0
}

// Set turns on the dot at column x, row y. Coordinates outside the 2x4 grid
// are ignored.
func (c *Cell) Set(x, y int) {
	if m, ok := mask(x, y); ok {
		*c |= m
	}
}

// Unset turns off the dot at column x, row y. Coordinates outside the 2x4
// grid are ignored.
func (c *Cell) Unset(x, y int) {
	if m, ok := mask(x, y); ok {
		*c &^= m
	}
}

// Fill turns on all 8 dots.
func (c *Cell) Fill() {
	*c = 0xff
}

// Clear turns off all 8 dots, restoring the cell to its initial state.
func (c *Cell) Clear() {
	*c = 0
}

// At reports whether the dot at column x, row y is on. Coordinates outside
// the 2x4 grid read as off.
func (c Cell) At(x, y int) bool {
	m, ok := mask(x, y)
	return ok && c&m != 0
}

// Rune returns the braille glyph for the cell's dot pattern.
func (c Cell) Rune() rune {
	return Base + rune(c)
}

// String returns the cell's glyph as a string.
func (c Cell) String() string {
	return string(c.Rune())
}

// Render writes the UTF-8 encoding of the cell's glyph into buf starting at
// offset 0 and returns the number of bytes written, always RenderLen. If buf
// is shorter than RenderLen, Render writes nothing and returns 0 and
// io.ErrShortBuffer. The buffer is not NUL terminated.
func (c Cell) Render(buf []byte) (int, error) {
	if len(buf) < RenderLen {
		return 0, io.ErrShortBuffer
	}
	return utf8.EncodeRune(buf, c.Rune()), nil
}
