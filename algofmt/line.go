// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package algofmt

import (
	"strings"
	"unicode"
)

// A Pair is a single key: value field of a log line. Both Key and
// Value have surrounding whitespace removed.
type Pair struct {
	Key   string
	Value string
}

// Pairs is the ordered list of fields following a line's label.
type Pairs []Pair

// Get returns the value for key. If key appears more than once, the
// last occurrence wins.
func (ps Pairs) Get(key string) (string, bool) {
	for i := len(ps) - 1; i >= 0; i-- {
		if ps[i].Key == key {
			return ps[i].Value, true
		}
	}
	return "", false
}

// First returns the value of the first key in keys that is present
// in ps.
func (ps Pairs) First(keys ...string) (string, bool) {
	for _, key := range keys {
		if v, ok := ps.Get(key); ok {
			return v, true
		}
	}
	return "", false
}

// ParseLine splits a log line of the form
//
//	label, key1: value1, key2: value2, ...
//
// into its label and fields, with ok reporting whether line has that
// shape at all. The label is a run of characters containing neither
// space nor comma, and it must be followed by a comma and at least
// one more character.
//
// Fields are separated by commas. A comma-separated fragment that has
// no colon and starts with a digit directly after the comma continues
// the value of the preceding field, so that values written with a
// decimal comma ("time in ms: 3,2") survive intact. Other colon-less fragments, and
// fields with an empty key or value, are dropped. There is no way to
// escape a comma or colon inside a key.
func ParseLine(line string) (label string, pairs Pairs, ok bool) {
	s := strings.TrimSpace(line)
	if s == "" {
		return "", nil, false
	}
	end := strings.IndexFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if end <= 0 {
		return "", nil, false
	}
	label, rest := s[:end], strings.TrimLeftFunc(s[end:], unicode.IsSpace)
	if !strings.HasPrefix(rest, ",") {
		return "", nil, false
	}
	rest = strings.TrimSpace(rest[1:])
	if rest == "" {
		return "", nil, false
	}

	// open is the index in pairs of the field the next colon-less
	// fragment continues, or -1.
	open := -1
	for _, frag := range strings.Split(rest, ",") {
		colon := strings.IndexByte(frag, ':')
		if colon < 0 {
			if open >= 0 && frag != "" && isDigit(frag[0]) {
				pairs[open].Value += "," + frag
			} else {
				open = -1
			}
			continue
		}
		pairs = append(pairs, Pair{frag[:colon], frag[colon+1:]})
		open = len(pairs) - 1
	}

	// Trim and drop degenerate fields now that continuations have
	// been joined.
	out := pairs[:0]
	for _, p := range pairs {
		p.Key = strings.TrimSpace(p.Key)
		p.Value = strings.TrimSpace(p.Value)
		if p.Key == "" || p.Value == "" {
			continue
		}
		out = append(out, p)
	}
	return label, out, true
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
