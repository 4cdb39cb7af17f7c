package parser

import "strings"

// cursor is a read position in a normalised line. Stages take a cursor and
// return the advanced one, or the same one when they do not match.
type cursor struct {
	src string
	pos int
}

func newCursor(s string) cursor {
	return cursor{src: s}.skipSpace()
}

// rest returns the unread text.
func (c cursor) rest() string {
	return c.src[c.pos:]
}

func (c cursor) done() bool {
	return c.pos >= len(c.src)
}

// advance moves past n bytes and any whitespace after them.
func (c cursor) advance(n int) cursor {
	c.pos += n
	if c.pos > len(c.src) {
		c.pos = len(c.src)
	}
	return c.skipSpace()
}

func (c cursor) skipSpace() cursor {
	for c.pos < len(c.src) && isSpace(c.src[c.pos]) {
		c.pos++
	}
	return c
}

// splice returns a cursor over the unread text with [from, to) of it
// removed. The text on either side is rejoined with a single space.
func (c cursor) splice(from, to int) cursor {
	rest := c.rest()
	before := strings.TrimSpace(rest[:from])
	after := strings.TrimSpace(rest[to:])
	return newCursor(joinText(before, after))
}

// joinText joins two fragments with one space. A fragment that opens with
// a comma attaches directly.
func joinText(a, b string) string {
	a = strings.TrimSpace(a)
	b = strings.TrimSpace(b)
	switch {
	case a == "":
		return b
	case b == "":
		return a
	case strings.HasPrefix(b, ","):
		return a + b
	default:
		return a + " " + b
	}
}
