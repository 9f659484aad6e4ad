// Copyright (C) 2024 The jsonv Authors. All Rights Reserved.

package jsonv

import (
	"errors"
	"fmt"
)

// ErrNoInput is reported by ParseBytes when no input is provided at all.
// It is a precondition failure, distinct from a *ParseError: no scanning has
// begun and no position is meaningful.
var ErrNoInput = errors.New("no input text provided")

// A ParseError describes the first grammar violation found while parsing.
// Line and Col are 1-based and locate the offending position in the input.
type ParseError struct {
	Line int
	Col  int
	Msg  string
}

// Error satisfies the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at line %d, col %d", e.Msg, e.Line, e.Col)
}
