// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package algofmt

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseLine(t *testing.T) {
	for _, test := range []struct {
		name  string
		line  string
		label string
		pairs Pairs
		ok    bool
	}{
		{
			name:  "basic",
			line:  "ms_100, n: 100, compares: 521",
			label: "ms_100",
			pairs: Pairs{{"n", "100"}, {"compares", "521"}},
			ok:    true,
		},
		{
			name:  "decimal comma",
			line:  "ms_100, n: 100, compares: 521, time in ms: 3,2",
			label: "ms_100",
			pairs: Pairs{{"n", "100"}, {"compares", "521"}, {"time in ms", "3,2"}},
			ok:    true,
		},
		{
			name:  "whitespace",
			line:  "  qs_x  ,n:5,   max depth :  7\t",
			label: "qs_x",
			pairs: Pairs{{"n", "5"}, {"max depth", "7"}},
			ok:    true,
		},
		{
			name:  "colon in value",
			line:  "select_1, n: 10, note: a:b",
			label: "select_1",
			pairs: Pairs{{"n", "10"}, {"note", "a:b"}},
			ok:    true,
		},
		{
			name:  "stray fragments",
			line:  "ms_1, junk, n: 3, compares: 4, 5",
			label: "ms_1",
			pairs: Pairs{{"n", "3"}, {"compares", "4"}},
			ok:    true,
		},
		{
			name:  "word after comma",
			line:  "ms_1, n: 100,junk, compares: 5,7",
			label: "ms_1",
			pairs: Pairs{{"n", "100"}, {"compares", "5,7"}},
			ok:    true,
		},
		{
			name:  "empty key and value",
			line:  "ms_1, : 3, n:, n: 4",
			label: "ms_1",
			pairs: Pairs{{"n", "4"}},
			ok:    true,
		},
		{
			name:  "no fields",
			line:  "label,algo,n,compares",
			label: "label",
			pairs: nil,
			ok:    true,
		},
		{name: "blank", line: "   "},
		{name: "no comma", line: "ms_100 n: 100"},
		{name: "nothing after comma", line: "ms_100,   "},
		{name: "no label", line: ", n: 100"},
		{name: "spaced label", line: "ms 100, n: 100"},
	} {
		t.Run(test.name, func(t *testing.T) {
			label, pairs, ok := ParseLine(test.line)
			if ok != test.ok {
				t.Fatalf("ParseLine(%q) ok = %v, want %v", test.line, ok, test.ok)
			}
			if !ok {
				return
			}
			if label != test.label {
				t.Errorf("label = %q, want %q", label, test.label)
			}
			if len(pairs) == 0 && len(test.pairs) == 0 {
				return
			}
			if diff := cmp.Diff(test.pairs, pairs); diff != "" {
				t.Errorf("pairs mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPairsGet(t *testing.T) {
	ps := Pairs{{"n", "1"}, {"array size", "2"}, {"n", "3"}}
	if v, ok := ps.Get("n"); !ok || v != "3" {
		t.Errorf("Get(n) = %q, %v, want last value 3", v, ok)
	}
	if v, ok := ps.First("array size", "n"); !ok || v != "2" {
		t.Errorf("First(array size, n) = %q, %v, want 2", v, ok)
	}
	if _, ok := ps.First("x", "y"); ok {
		t.Errorf("First of missing keys reported ok")
	}
}
