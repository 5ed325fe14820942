package balance

import "fortio.org/safecast"

// Cursor walks the runes of one line.
type Cursor struct {
	src []rune
	Off int
}

// NewCursor creates a cursor positioned at the start of s.
func NewCursor(s string) Cursor {
	return Cursor{src: []rune(s)}
}

// EOF проверяет, достигнут ли конец строки
func (c *Cursor) EOF() bool {
	return c.Off >= len(c.src)
}

// Bump перемещает курсор на один символ вперед и возвращает прочитанный символ
func (c *Cursor) Bump() rune {
	if c.EOF() {
		return 0
	}
	r := c.src[c.Off]
	c.Off++
	return r
}

// Before returns the rune preceding the one most recently returned by Bump,
// or 0 when that rune started the line.
func (c *Cursor) Before() rune {
	if c.Off < 2 {
		return 0
	}
	return c.src[c.Off-2]
}

// Col returns the 1-based column of the rune most recently returned by Bump.
func (c *Cursor) Col() uint32 {
	col, err := safecast.Conv[uint32](c.Off)
	if err != nil {
		return ^uint32(0)
	}
	return col
}
