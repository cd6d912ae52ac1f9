// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package algounit

import (
	"errors"
	"math"
	"strconv"
	"testing"
)

func TestParse(t *testing.T) {
	for _, test := range []struct {
		in   string
		want Number
	}{
		{"12", IntNumber(12)},
		{" 12 ", IntNumber(12)},
		{"-7", IntNumber(-7)},
		{"1,5", FloatNumber(1.5)},
		{"3,2", FloatNumber(3.2)},
		{"3.0e2", FloatNumber(300)},
		{"1E3", FloatNumber(1000)},
		{"0.25", FloatNumber(0.25)},
		// Period thousands separators are taken as decimal points.
		{"1.234", FloatNumber(1.234)},
		// Overflow saturates, as does an explicit infinity.
		{"1e400", FloatNumber(math.Inf(1))},
		{"-1,5e400", FloatNumber(math.Inf(-1))},
		{"inf", FloatNumber(math.Inf(1))},
		{"-Infinity", FloatNumber(math.Inf(-1))},
	} {
		got, err := Parse(test.in)
		if err != nil {
			t.Errorf("Parse(%q): unexpected error %v", test.in, err)
			continue
		}
		if got != test.want {
			t.Errorf("Parse(%q) = %v (%v), want %v (%v)", test.in, got, got.Kind(), test.want, test.want.Kind())
		}
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{"", "  ", "abc", "1,2,3", "12ms", "e", "99999999999999999999"} {
		_, err := Parse(in)
		var ne *NumError
		if !errors.As(err, &ne) {
			t.Errorf("Parse(%q): want *NumError, got %v", in, err)
			continue
		}
		if ne.Num != in {
			t.Errorf("Parse(%q): NumError.Num = %q", in, ne.Num)
		}
	}

	_, err := Parse("99999999999999999999")
	if !errors.Is(err, strconv.ErrRange) {
		t.Errorf("Parse of overflowing int: want ErrRange, got %v", err)
	}
}

func TestParseInt(t *testing.T) {
	if n, err := ParseInt(" 100 "); err != nil || n != 100 {
		t.Errorf("ParseInt(\" 100 \") = %d, %v, want 100, nil", n, err)
	}
	for _, in := range []string{"1,5", "1.5", "", "n"} {
		if _, err := ParseInt(in); err == nil {
			t.Errorf("ParseInt(%q): want error", in)
		}
	}
}

func TestString(t *testing.T) {
	for _, test := range []struct {
		n    Number
		want string
	}{
		{Number{}, ""},
		{IntNumber(521), "521"},
		{IntNumber(-3), "-3"},
		{FloatNumber(3.2), "3.2"},
		{FloatNumber(300), "300.0"},
		{FloatNumber(0.0001), "0.0001"},
		{FloatNumber(0.00001), "1e-05"},
		{FloatNumber(1e15), "1000000000000000.0"},
		{FloatNumber(1e16), "1e+16"},
		{FloatNumber(math.Inf(1)), "inf"},
	} {
		if got := test.n.String(); got != test.want {
			t.Errorf("%#v.String() = %q, want %q", test.n, got, test.want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for _, n := range []Number{
		IntNumber(0), IntNumber(100000), FloatNumber(0), FloatNumber(3.2),
		FloatNumber(1.0 / 3), FloatNumber(6.02e23), FloatNumber(-2.5e-9), FloatNumber(12345.678),
		FloatNumber(math.Inf(1)), FloatNumber(math.Inf(-1)),
	} {
		got, err := Parse(n.String())
		if err != nil {
			t.Errorf("Parse(%q): %v", n.String(), err)
			continue
		}
		if got != n {
			t.Errorf("Parse(%q) = %#v, want %#v", n.String(), got, n)
		}
	}
}

func TestParseNaN(t *testing.T) {
	for _, in := range []string{"nan", "NaN", FloatNumber(math.NaN()).String()} {
		got, err := Parse(in)
		if err != nil {
			t.Errorf("Parse(%q): %v", in, err)
			continue
		}
		if got.Kind() != Float || !math.IsNaN(got.Float64()) {
			t.Errorf("Parse(%q) = %v (%v), want Float NaN", in, got, got.Kind())
		}
	}
	if _, err := Parse("nano"); err == nil {
		t.Errorf("Parse(%q) succeeded", "nano")
	}
}

func TestConversions(t *testing.T) {
	if got := IntNumber(7).Float64(); got != 7 {
		t.Errorf("IntNumber(7).Float64() = %v", got)
	}
	if got := FloatNumber(7.9).Int(); got != 7 {
		t.Errorf("FloatNumber(7.9).Int() = %v", got)
	}
	if (Number{}).Valid() {
		t.Errorf("zero Number is valid")
	}
}
