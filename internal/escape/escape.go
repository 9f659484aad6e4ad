// Copyright (C) 2024 The jsonv Authors. All Rights Reserved.

// Package escape handles the escape sequences of JSON strings.
package escape

import (
	"errors"
	"unicode/utf8"

	"go4.org/mem"
)

var singleEsc = [...]byte{
	'"':  '"',
	'\\': '\\',
	'/':  '/',
	'b':  '\b',
	'f':  '\f',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
}

// Single maps a single-character escape (the character following the
// backslash) to its decoded equivalent. It reports false for characters that
// do not name a single-character escape, including 'u'.
func Single(c byte) (byte, bool) {
	if int(c) < len(singleEsc) && singleEsc[c] != 0 {
		return singleEsc[c], true
	}
	return 0, false
}

// ErrBadHexDigit is reported by Hex4 for a character outside [0-9a-fA-F].
var ErrBadHexDigit = errors.New("invalid hex digit")

// Hex4 decodes exactly four hexadecimal digits from the front of src into a
// 16-bit code unit. The caller is responsible for ensuring src has at least
// four characters.
func Hex4(src mem.RO) (rune, error) {
	var v rune
	for i := 0; i < 4; i++ {
		b := src.At(i)
		v <<= 4
		switch {
		case '0' <= b && b <= '9':
			v += rune(b - '0')
		case 'a' <= b && b <= 'f':
			v += rune(b - 'a' + 10)
		case 'A' <= b && b <= 'F':
			v += rune(b - 'A' + 10)
		default:
			return 0, ErrBadHexDigit
		}
	}
	return v, nil
}

var controlEsc = [...]byte{
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	' ':  ' ', // sentinel
}

var hexDigit = []byte("0123456789abcdef")

// Quote encodes a string as a JSON string value, escaping characters as
// needed and adding the enclosing double quotation marks.
func Quote(src mem.RO) []byte {
	buf := make([]byte, 0, src.Len()+2)
	putByte := func(bs ...byte) { buf = append(buf, bs...) }

	putByte('"')
	for src.Len() != 0 {
		r, n := mem.DecodeRune(src)
		if r < utf8.RuneSelf {
			if r < ' ' {
				if b := controlEsc[r]; b != 0 {
					putByte('\\', b)
				} else {
					putByte('\\', 'u', '0', '0', hexDigit[int(r>>4)], hexDigit[int(r&15)])
				}
			} else if r == '\\' || r == '"' {
				putByte('\\', byte(r))
			} else {
				putByte(byte(r))
			}
			src = src.SliceFrom(n)
			continue
		}

		switch r {
		case '\ufffd': // replacement rune
			buf = append(buf, `\ufffd`...)
		case '\u2028': // line separator
			buf = append(buf, `\u2028`...)
		case '\u2029': // paragraph separator
			buf = append(buf, `\u2029`...)
		default:
			var rbuf [6]byte
			n := utf8.EncodeRune(rbuf[:], r)
			buf = append(buf, rbuf[:n]...)
		}

		src = src.SliceFrom(n)
	}
	putByte('"')
	return buf
}
