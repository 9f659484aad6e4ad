// Copyright (C) 2024 The jsonv Authors. All Rights Reserved.

package jsonv

import (
	"strconv"

	"github.com/cockroachdb/apd/v3"
)

// decContext bounds the Decimal variant: at most 29 significant digits with
// an adjusted decimal exponent within ±28. A literal that cannot be carried
// exactly inside this envelope falls back to Float.
var decContext = apd.Context{
	Precision:   29,
	MaxExponent: 28,
	MinExponent: -28,
	Rounding:    apd.RoundHalfEven,
}

// classifyNumber converts the literal text of a syntactically valid JSON
// number into the narrowest suitable numeric variant. The integral flag
// reports whether the literal has neither a fractional part nor an exponent.
//
// The tiers are tried in order: exact int64, exact bounded decimal, then
// double-precision float. The float tier accepts every literal the grammar
// does, so classification cannot fail; an out-of-range literal such as 1e400
// yields the IEEE infinity, matching strconv.ParseFloat.
func classifyNumber(text string, integral bool) Value {
	if integral {
		if z, err := strconv.ParseInt(text, 10, 64); err == nil {
			return Integer(z)
		}
	}
	if d, res, err := decContext.NewFromString(text); err == nil && res == 0 {
		return Decimal{val: d}
	}
	f, _ := strconv.ParseFloat(text, 64)
	return Float(f)
}
