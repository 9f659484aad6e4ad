// Copyright (C) 2024 The jsonv Authors. All Rights Reserved.

package jsonv

import (
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/jvx/jsonv/internal/escape"
	"go4.org/mem"
)

// Parse parses text as a single JSON document and returns the resulting
// value tree. The entire input must be consumed: any non-whitespace content
// after the first complete value is an error. In case of error the returned
// error has concrete type [*ParseError].
func Parse(text string) (Value, error) {
	c := &cursor{input: text}
	v, err := parseValue(c)
	if err != nil {
		return nil, err
	}
	c.skipSpace()
	if !c.atEnd() {
		return nil, c.errorf("Trailing characters after valid JSON value")
	}
	return v, nil
}

// ParseBytes parses data as a single JSON document. A nil slice is a usage
// error reported as [ErrNoInput]; an empty non-nil slice is a syntax error
// like any other text with no value in it.
func ParseBytes(data []byte) (Value, error) {
	if data == nil {
		return nil, ErrNoInput
	}
	return Parse(string(data))
}

// MustParse is Parse for static inputs known to be valid, such as test
// fixtures. It panics if text does not parse.
func MustParse(text string) Value {
	v, err := Parse(text)
	if err != nil {
		panic("jsonv: " + err.Error())
	}
	return v
}

// parseValue dispatches on the next significant character to the production
// for the corresponding grammar category.
func parseValue(c *cursor) (Value, error) {
	c.skipSpace()
	if c.atEnd() {
		return nil, c.errorf("Unexpected end of input while expecting a value")
	}
	switch b := c.peek(); {
	case b == '{':
		return parseObject(c)
	case b == '[':
		return parseArray(c)
	case b == '"':
		return parseString(c)
	case b == 't':
		if err := c.expectText("true"); err != nil {
			return nil, err
		}
		return Bool(true), nil
	case b == 'f':
		if err := c.expectText("false"); err != nil {
			return nil, err
		}
		return Bool(false), nil
	case b == 'n':
		if err := c.expectText("null"); err != nil {
			return nil, err
		}
		return Null{}, nil
	case b == '-' || isDigit(b):
		return parseNumber(c)
	default:
		r, _ := utf8.DecodeRuneInString(c.input[c.pos:])
		return nil, c.errorf("Unexpected character '%c' while parsing a value", r)
	}
}

func parseObject(c *cursor) (Value, error) {
	if err := c.expect('{'); err != nil {
		return nil, err
	}
	c.skipSpace()
	if c.tryConsume('}') {
		return Object{}, nil
	}
	obj := Object{}
	for {
		c.skipSpace()
		if c.atEnd() || c.peek() != '"' {
			return nil, c.errorf(`Object keys must be strings starting with '"'`)
		}
		key, err := parseString(c)
		if err != nil {
			return nil, err
		}
		if err := c.expect(':'); err != nil {
			return nil, err
		}
		val, err := parseValue(c)
		if err != nil {
			return nil, err
		}

		// A duplicate key keeps its original position; the last value wins.
		if m := obj.Find(string(key)); m != nil {
			m.Value = val
		} else {
			obj = append(obj, &Member{Key: string(key), Value: val})
		}

		c.skipSpace()
		if c.tryConsume('}') {
			return obj, nil
		}
		if err := c.expect(','); err != nil {
			return nil, err
		}
	}
}

func parseArray(c *cursor) (Value, error) {
	if err := c.expect('['); err != nil {
		return nil, err
	}
	c.skipSpace()
	if c.tryConsume(']') {
		return Array{}, nil
	}
	arr := Array{}
	for {
		v, err := parseValue(c)
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)

		c.skipSpace()
		if c.tryConsume(']') {
			return arr, nil
		}
		if err := c.expect(','); err != nil {
			return nil, err
		}
	}
}

func parseString(c *cursor) (String, error) {
	if err := c.expect('"'); err != nil {
		return "", err
	}
	var sb strings.Builder
	for {
		if c.atEnd() {
			return "", c.errorf("Unterminated string literal")
		}
		switch b := c.next(); {
		case b == '"':
			return String(sb.String()), nil
		case b == '\\':
			if err := parseEscape(c, &sb); err != nil {
				return "", err
			}
		case b <= 0x1F:
			return "", c.errorf("Unescaped control character in string")
		default:
			sb.WriteByte(b)
		}
	}
}

// parseEscape decodes the escape sequence following a backslash and appends
// its expansion to sb.
func parseEscape(c *cursor, sb *strings.Builder) error {
	if c.atEnd() {
		return c.errorf("Unterminated escape sequence in string")
	}
	b := c.next()
	if dec, ok := escape.Single(b); ok {
		sb.WriteByte(dec)
		return nil
	}
	if b != 'u' {
		return c.errorf(`Invalid escape character '\%c'`, b)
	}

	u, err := hexUnit(c)
	if err != nil {
		return err
	}
	if !utf16.IsSurrogate(u) {
		sb.WriteRune(u)
		return nil
	}

	// The escape decoded to a lone UTF-16 code unit. A high surrogate
	// immediately followed by an escaped low surrogate combines into one
	// scalar value; an unpaired surrogate becomes U+FFFD.
	if isHighSurrogate(u) && strings.HasPrefix(c.input[c.pos:], `\u`) {
		mark := c.pos
		c.pos += 2
		u2, err := hexUnit(c)
		if err != nil {
			return err
		}
		if r := utf16.DecodeRune(u, u2); r != utf8.RuneError {
			sb.WriteRune(r)
			return nil
		}
		// The second escape does not pair with the first. Rewind so it
		// decodes on its own behind the replacement for the lone unit.
		c.pos = mark
	}
	sb.WriteRune(utf8.RuneError)
	return nil
}

// hexUnit decodes the four hex digits of a \u escape, whose "\u" prefix has
// already been consumed, into a 16-bit code unit.
func hexUnit(c *cursor) (rune, error) {
	if len(c.input)-c.pos < 4 {
		return 0, c.errorf(`Incomplete \u escape`)
	}
	u, err := escape.Hex4(mem.S(c.input[c.pos : c.pos+4]))
	if err != nil {
		return 0, c.errorf(`Invalid hex digit in \u escape`)
	}
	c.pos += 4
	return u, nil
}

func parseNumber(c *cursor) (Value, error) {
	start := c.pos
	c.tryConsume('-')

	// Integer part. A zero must stand alone: 0 and 0.5 are fine, 01 is not.
	if c.tryConsume('0') {
		if !c.atEnd() && isDigit(c.peek()) {
			c.pos = start
			return nil, c.errorf("Numbers with leading zero are invalid")
		}
	} else if err := digits(c, "Expected digits"); err != nil {
		return nil, err
	}

	integral := true
	if c.tryConsume('.') {
		integral = false
		if err := digits(c, "Expected digits after decimal point"); err != nil {
			return nil, err
		}
	}
	if c.tryConsume('e') || c.tryConsume('E') {
		integral = false
		if !c.tryConsume('+') {
			c.tryConsume('-')
		}
		if err := digits(c, "Expected digits in exponent"); err != nil {
			return nil, err
		}
	}
	return classifyNumber(c.input[start:c.pos], integral), nil
}

// digits consumes the maximal run of decimal digits, requiring at least one.
func digits(c *cursor, missing string) error {
	n := 0
	for !c.atEnd() && isDigit(c.peek()) {
		c.pos++
		n++
	}
	if n == 0 {
		return c.errorf("%s", missing)
	}
	return nil
}

func isDigit(b byte) bool { return '0' <= b && b <= '9' }

func isHighSurrogate(u rune) bool { return u >= 0xD800 && u < 0xDC00 }
