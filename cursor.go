// Copyright (C) 2024 The jsonv Authors. All Rights Reserved.

package jsonv

import (
	"fmt"
	"strings"
)

// A cursor holds the input text and a single read position, and provides the
// character-level primitives the grammar productions are built from. Each
// call to Parse owns one cursor; a cursor is never shared or reused.
type cursor struct {
	input string // immutable
	pos   int    // byte offset of the next unread character
}

// atEnd reports whether the input is exhausted.
func (c *cursor) atEnd() bool { return c.pos >= len(c.input) }

// skipSpace advances past any run of JSON whitespace.
func (c *cursor) skipSpace() {
	for c.pos < len(c.input) {
		switch c.input[c.pos] {
		case ' ', '\t', '\n', '\r':
			c.pos++
		default:
			return
		}
	}
}

// peek returns the character at the current position without consuming it.
// It must not be called at end of input.
func (c *cursor) peek() byte { return c.input[c.pos] }

// next consumes and returns the character at the current position.
// It must not be called at end of input.
func (c *cursor) next() byte {
	b := c.input[c.pos]
	c.pos++
	return b
}

// tryConsume consumes the current character and reports true if it equals b;
// otherwise it reports false with no side effect.
func (c *cursor) tryConsume(b byte) bool {
	if c.pos < len(c.input) && c.input[c.pos] == b {
		c.pos++
		return true
	}
	return false
}

// expect skips whitespace and consumes the current character, which must
// equal b; otherwise it reports a parse error at the current position.
func (c *cursor) expect(b byte) error {
	c.skipSpace()
	if c.atEnd() || c.input[c.pos] != b {
		return c.errorf("Expected '%c'", b)
	}
	c.pos++
	return nil
}

// expectText skips whitespace and consumes the characters of text exactly,
// reporting a parse error at the first mismatch (including end of input).
func (c *cursor) expectText(text string) error {
	c.skipSpace()
	for i := 0; i < len(text); i++ {
		if c.atEnd() || c.input[c.pos] != text[i] {
			return c.errorf("Expected '%s'", text)
		}
		c.pos++
	}
	return nil
}

// errorf constructs a *ParseError at the current position. The 1-based line
// and column are computed by scanning the consumed prefix for newlines.
func (c *cursor) errorf(format string, args ...any) *ParseError {
	prefix := c.input[:c.pos]
	return &ParseError{
		Line: 1 + strings.Count(prefix, "\n"),
		Col:  c.pos - strings.LastIndexByte(prefix, '\n'),
		Msg:  fmt.Sprintf(format, args...),
	}
}
