// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package algounit parses and formats the numbers found in algorithm
// benchmark logs.
//
// Benchmark logs are written by hand-rolled harnesses in a variety of
// locales, so a measurement may arrive as "12", "3,2" or "3.0e2".
// Parse accepts all of these and remembers whether the value was
// written as an integer or as a floating-point number, so that
// String can reproduce a value of the same kind.
package algounit

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// A Kind describes how a Number was written.
type Kind int

const (
	// Invalid is the Kind of the zero Number. It marks an absent
	// measurement.
	Invalid Kind = iota
	// Int is an integral number written without a decimal point or
	// exponent.
	Int
	// Float is a number written with a decimal point or exponent.
	Float
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "Invalid"
	case Int:
		return "Int"
	case Float:
		return "Float"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// A Number is a single measured value. The zero Number is not valid
// and represents a missing measurement.
type Number struct {
	kind Kind
	i    int64
	f    float64
}

// IntNumber returns an Int Number with value v.
func IntNumber(v int64) Number {
	return Number{kind: Int, i: v}
}

// FloatNumber returns a Float Number with value v.
func FloatNumber(v float64) Number {
	return Number{kind: Float, f: v}
}

// Kind returns the kind of n.
func (n Number) Kind() Kind {
	return n.kind
}

// Valid reports whether n holds a value.
func (n Number) Valid() bool {
	return n.kind != Invalid
}

// Int returns the value of an Int Number. For a Float Number it
// returns the value truncated toward zero.
func (n Number) Int() int64 {
	if n.kind == Float {
		return int64(n.f)
	}
	return n.i
}

// Float64 returns the value of n as a float64. This is how numbers
// are plotted, regardless of their Kind.
func (n Number) Float64() float64 {
	if n.kind == Int {
		return float64(n.i)
	}
	return n.f
}

// String formats n so that Parse(n.String()) returns n again.
//
// Int numbers print in decimal. Float numbers print in the shortest
// form that round-trips, switching to exponent notation for very
// large and very small magnitudes, and always carry a decimal point
// or exponent so they re-parse as Float. The invalid Number prints as
// the empty string.
func (n Number) String() string {
	switch n.kind {
	case Int:
		return strconv.FormatInt(n.i, 10)
	case Float:
		return formatFloat(n.f)
	}
	return ""
}

func formatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	if abs := math.Abs(v); abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

// A NumError records a failure to parse a measurement.
type NumError struct {
	Num string // the input, as written
	Err error  // the reason the conversion failed
}

func (e *NumError) Error() string {
	return "parsing " + strconv.Quote(e.Num) + ": " + e.Err.Error()
}

func (e *NumError) Unwrap() error {
	return e.Err
}

// Parse parses a measurement.
//
// Surrounding whitespace is ignored and a decimal comma is accepted
// in place of a decimal point. If the result contains '.', 'e' or 'E',
// or is one of "inf", "infinity" or "nan" (in any case, optionally
// signed), it is parsed as a Float, otherwise as an Int. A Float too
// large to represent becomes ±Inf. Thousands separators are not
// recognized: "1.234" is the Float 1.234.
func Parse(s string) (Number, error) {
	norm := strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if strings.ContainsAny(norm, ".eE") || isFloatName(norm) {
		f, err := strconv.ParseFloat(norm, 64)
		if err != nil && !(errors.Is(err, strconv.ErrRange) && math.IsInf(f, 0)) {
			return Number{}, &NumError{s, numErr(err)}
		}
		return FloatNumber(f), nil
	}
	i, err := strconv.ParseInt(norm, 10, 64)
	if err != nil {
		return Number{}, &NumError{s, numErr(err)}
	}
	return IntNumber(i), nil
}

// isFloatName reports whether s names a non-finite float.
func isFloatName(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return strings.EqualFold(s, "inf") || strings.EqualFold(s, "infinity") || strings.EqualFold(s, "nan")
}

// ParseInt parses an integral input size. Unlike Parse it does not
// accept decimal commas or fractional values.
func ParseInt(s string) (int, error) {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, &NumError{s, numErr(err)}
	}
	return i, nil
}

// numErr strips the *strconv.NumError wrapper, since NumError already
// carries the input.
func numErr(err error) error {
	if ne, ok := err.(*strconv.NumError); ok {
		return ne.Err
	}
	return err
}
