// Copyright (C) 2024 The jsonv Authors. All Rights Reserved.

package jsonv_test

import (
	"testing"

	"github.com/creachadair/mds/mtest"
	"github.com/google/go-cmp/cmp"
	"github.com/jvx/jsonv"
)

func TestValueJSON(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`null`, `null`},
		{`true`, `true`},
		{`false`, `false`},
		{`-15`, `-15`},
		{`0.5`, `0.5`},
		{`"a b c"`, `"a b c"`},
		{`{}`, `{}`},
		{`[]`, `[]`},

		// Whitespace is not preserved.
		{"  { \"x\" : [ 1 , 2 ]  }  ", `{"x":[1,2]}`},

		// Member order is order of first appearance; last value wins.
		{`{"b":1,"a":2}`, `{"b":1,"a":2}`},
		{`{"a":1,"b":2,"a":3}`, `{"a":3,"b":2}`},

		// Escapes are decoded on input and re-encoded canonically.
		{`"\u0041\u0026"`, `"A&"`},
		{`"tab\there"`, `"tab\there"`},
		{`"\u001f"`, `"\u001f"`},

		// An overflowing literal renders as an overflowing literal.
		{`1e400`, `1e999`},
		{`-1e400`, `-1e999`},
	}
	for _, test := range tests {
		if got := mustParse(t, test.input).JSON(); got != test.want {
			t.Errorf("Parse(%#q).JSON(): got %#q, want %#q", test.input, got, test.want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		`null`,
		`[1,2.75,"three",{"four":[true,false,null]}]`,
		`{"a":{"b":{"c":[]}},"d":-19,"e":"\ud83d\ude00"}`,
		`123456789012345678901`,
		`[0.1,1e10,2E+28,"\u2028\u2029"]`,
		`"quote \" backslash \\ control \u0007"`,
		`"\udc00 lone surrogates \ud800"`,
		`1e400`,
		`-1e400`,
	}
	for _, input := range inputs {
		v := mustParse(t, input)
		back := mustParse(t, v.JSON())
		if diff := cmp.Diff(v, back, diffOpts); diff != "" {
			t.Errorf("Round trip of %#q: (-first, +second)\n%s", input, diff)
		}
	}
}

func TestObjectFind(t *testing.T) {
	obj := mustParse(t, `{"name":"aloe","leaves":42,"edible":false}`).(jsonv.Object)

	if obj.Len() != 3 {
		t.Errorf("Len: got %d, want 3", obj.Len())
	}
	m := obj.Find("leaves")
	if m == nil {
		t.Fatal(`Find("leaves"): not found`)
	}
	if z, ok := m.Value.(jsonv.Integer); !ok || z.Int64() != 42 {
		t.Errorf(`Find("leaves").Value: got %v, want Integer(42)`, m.Value)
	}
	if m := obj.Find("roots"); m != nil {
		t.Errorf(`Find("roots"): got %v, want nil`, m)
	}
}

func TestMustParse(t *testing.T) {
	v := jsonv.MustParse(`[1]`)
	if diff := cmp.Diff(jsonv.Array{jsonv.Integer(1)}, v, diffOpts); diff != "" {
		t.Errorf("MustParse: (-want, +got)\n%s", diff)
	}

	mtest.MustPanic(t, func() { jsonv.MustParse(`{`) })
	mtest.MustPanic(t, func() { jsonv.MustParse(``) })
	mtest.MustPanic(t, func() { jsonv.MustParse(`truex`) })
}
