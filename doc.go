// Copyright (C) 2024 The jsonv Authors. All Rights Reserved.

// Package jsonv implements a strict recursive-descent parser for JSON text
// as defined by RFC 8259.
//
// # Parsing
//
// Call [Parse] with the complete text of a JSON document. Parse returns the
// root of the resulting value tree, or a [*ParseError] describing the first
// grammar violation found in a left-to-right scan:
//
//	v, err := jsonv.Parse(`{"name": "aloe", "leaves": 42}`)
//	if err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//
// The concrete type of a [Value] is one of Null, Bool, Integer, Decimal,
// Float, String, Array, or Object, mirroring the syntactic category of the
// source text that produced it:
//
//	JSON form        | Type     | Representation
//	---------------- | -------- | -----------------------------------------
//	null             | Null     | (none)
//	true, false      | Bool     | bool
//	12, -4           | Integer  | int64
//	0.5, 2e9         | Decimal  | exact decimal (see below)
//	1e400            | Float    | float64
//	"text"           | String   | string, escapes decoded
//	[ ... ]          | Array    | []Value
//	{ ... }          | Object   | ordered []*Member
//
// # Numbers
//
// A numeric literal with no fractional part or exponent that fits in an
// int64 becomes an Integer. Any other literal that is exactly representable
// with at most 29 significant digits and a decimal exponent within ±28
// becomes a Decimal. Everything else falls back to Float, the nearest
// double-precision value of the literal; this last step cannot fail for a
// literal the grammar accepts.
//
// # Errors
//
// All grammar violations are fatal to the current call: there is no partial
// result and no recovery. The returned *ParseError carries the 1-based line
// and column of the offending position. A nil input to [ParseBytes] is a
// usage error reported as [ErrNoInput] before any scanning begins.
//
// The parser accepts strict RFC 8259 input only. Comments, trailing commas,
// and the NaN/Infinity literals are rejected.
package jsonv
