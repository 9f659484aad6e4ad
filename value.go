// Copyright (C) 2024 The jsonv Authors. All Rights Reserved.

package jsonv

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"
	"github.com/jvx/jsonv/internal/escape"
	"go4.org/mem"
)

// A Value is a parsed JSON value. The concrete type of a Value is one of
// Null, Bool, Integer, Decimal, Float, String, Array, or Object; the set is
// closed, and a tree returned by Parse is never mutated by the package after
// construction.
type Value interface {
	// JSON returns a compact JSON rendering of the value.
	JSON() string

	isValue()
}

// Null represents the JSON null constant.
type Null struct{}

func (Null) isValue() {}

// JSON satisfies the Value interface.
func (Null) JSON() string { return "null" }

func (Null) String() string { return "null" }

// A Bool is a JSON Boolean constant, true or false.
type Bool bool

func (Bool) isValue() {}

// JSON satisfies the Value interface.
func (b Bool) JSON() string {
	if b {
		return "true"
	}
	return "false"
}

// Value reports the truth value of b.
func (b Bool) Value() bool { return bool(b) }

// An Integer is a JSON number with no fractional part or exponent whose
// value fits in an int64.
type Integer int64

func (Integer) isValue() {}

// JSON satisfies the Value interface.
func (z Integer) JSON() string { return strconv.FormatInt(int64(z), 10) }

// Int64 reports the value of z as an int64.
func (z Integer) Int64() int64 { return int64(z) }

// A Decimal is a JSON number carried as an exact decimal value. A literal
// becomes a Decimal when it has a fractional part or exponent, or overflows
// int64, and is exactly representable with at most 29 significant digits and
// an adjusted exponent within ±28.
type Decimal struct {
	val *apd.Decimal
}

func (Decimal) isValue() {}

// JSON satisfies the Value interface.
func (d Decimal) JSON() string { return d.val.String() }

// Decimal reports the exact decimal value of d. The caller must not modify
// the returned value.
func (d Decimal) Decimal() *apd.Decimal { return d.val }

// Float64 reports the nearest double-precision value of d.
// It panics if the value cannot be converted.
func (d Decimal) Float64() float64 {
	f, err := d.val.Float64()
	if err != nil {
		panic(err)
	}
	return f
}

func (d Decimal) String() string { return d.val.String() }

// A Float is a JSON number that did not fit the Integer or Decimal
// representations, carried as the nearest double-precision value.
type Float float64

func (Float) isValue() {}

// JSON satisfies the Value interface. An infinity, which parsing produces
// for out-of-range literals such as 1e400, is rendered as the overflowing
// literal 1e999 so that the result is still grammatical JSON.
func (f Float) JSON() string {
	if math.IsInf(float64(f), 1) {
		return "1e999"
	} else if math.IsInf(float64(f), -1) {
		return "-1e999"
	}
	return strconv.FormatFloat(float64(f), 'g', -1, 64)
}

// Float64 reports the value of f as a float64.
func (f Float) Float64() float64 { return float64(f) }

// A String is a JSON string value with all escape sequences decoded.
type String string

func (String) isValue() {}

// JSON satisfies the Value interface. The result is quoted and re-escaped.
func (s String) JSON() string { return string(escape.Quote(mem.S(string(s)))) }

// An Array is an ordered sequence of values.
type Array []Value

func (Array) isValue() {}

// JSON satisfies the Value interface.
func (a Array) JSON() string {
	if len(a) == 0 {
		return "[]"
	}
	var sb strings.Builder
	sb.WriteByte('[')
	sb.WriteString(a[0].JSON())
	for _, v := range a[1:] {
		sb.WriteByte(',')
		sb.WriteString(v.JSON())
	}
	sb.WriteByte(']')
	return sb.String()
}

func (a Array) String() string { return fmt.Sprintf("Array(len=%d)", len(a)) }

// Len reports the number of elements in a.
func (a Array) Len() int { return len(a) }

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	Key   string
	Value Value
}

// JSON renders the member as a quoted key and value separated by a colon.
func (m Member) JSON() string { return String(m.Key).JSON() + ":" + m.Value.JSON() }

func (m Member) String() string { return fmt.Sprintf("Member(key=%q)", m.Key) }

// An Object is a collection of key-value members. Keys are unique and member
// order follows the order of first appearance in the source text; when a key
// occurs more than once, the member keeps its original position and the last
// value written wins.
type Object []*Member

func (Object) isValue() {}

// JSON satisfies the Value interface.
func (o Object) JSON() string {
	if len(o) == 0 {
		return "{}"
	}
	var sb strings.Builder
	sb.WriteByte('{')
	sb.WriteString(o[0].JSON())
	for _, m := range o[1:] {
		sb.WriteByte(',')
		sb.WriteString(m.JSON())
	}
	sb.WriteByte('}')
	return sb.String()
}

func (o Object) String() string { return fmt.Sprintf("Object(len=%d)", len(o)) }

// Len reports the number of members in o.
func (o Object) Len() int { return len(o) }

// Find returns the member of o with the given key, or nil.
func (o Object) Find(key string) *Member {
	for _, m := range o {
		if m.Key == key {
			return m
		}
	}
	return nil
}
