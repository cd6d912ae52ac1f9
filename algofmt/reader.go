// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package algofmt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// A Reader reads Records from a benchmark log.
//
// Its API is modeled on bufio.Scanner. Unlike bufio.Scanner, each
// Record returned by Record is freshly allocated, so callers may
// retain it.
//
// Lines that are not benchmark runs, and runs without an input size,
// are skipped silently. A run with a malformed number stops the
// Reader: Scan returns false and Err returns a *SyntaxError.
type Reader struct {
	s   *bufio.Scanner
	err error

	fileName string
	line     int

	rec *Record
}

// maxLineLen bounds the length of a single log line. Harnesses
// sometimes attach long free-form notes to a run, so this is far above
// bufio.Scanner's default.
var maxLineLen = 64 << 20

// A SyntaxError reports a run whose fields could not be converted.
type SyntaxError struct {
	FileName string
	Line     int
	Msg      string
	Err      error // underlying error, if any
}

func (e *SyntaxError) Pos() (fileName string, line int) {
	return e.FileName, e.Line
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.FileName, e.Line, e.Msg)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// NewReader returns a Reader that reads a benchmark log from r.
// fileName is used in positions and error messages only.
func NewReader(r io.Reader, fileName string) *Reader {
	reader := new(Reader)
	reader.Reset(r, fileName)
	return reader
}

// Reset resets the reader to begin reading from a new input.
func (r *Reader) Reset(ior io.Reader, fileName string) {
	if fileName == "" {
		fileName = "<unknown>"
	}
	r.s = bufio.NewScanner(ior)
	r.s.Buffer(make([]byte, 0, 64<<10), maxLineLen)
	r.err = nil
	r.fileName = fileName
	r.line = 0
	r.rec = nil
}

// Scan advances the reader to the next Record and reports whether a
// Record was read. After Scan returns false, the caller should check
// Err.
func (r *Reader) Scan() bool {
	if r.err != nil {
		return false
	}
	r.rec = nil
	for r.s.Scan() {
		r.line++
		label, pairs, ok := ParseLine(r.s.Text())
		if !ok {
			continue
		}
		rec, err := Normalize(label, pairs)
		if errors.Is(err, ErrNoSize) {
			continue
		}
		if err != nil {
			r.err = &SyntaxError{r.fileName, r.line, err.Error(), err}
			return false
		}
		rec.fileName, rec.line = r.fileName, r.line
		r.rec = rec
		return true
	}
	if err := r.s.Err(); err != nil {
		// The failed read was of the line after the last one scanned.
		r.err = fmt.Errorf("%s:%d: %w", r.fileName, r.line+1, err)
	}
	return false
}

// Record returns the Record read by the last call to Scan, or nil if
// Scan has not returned true.
func (r *Reader) Record() *Record {
	return r.rec
}

// Err returns the first error that stopped the Reader, or nil if it
// reached the end of its input.
func (r *Reader) Err() error {
	return r.err
}

// ReadAll reads every Record from r until EOF or the first error.
// The Records read before an error are returned along with it.
func (r *Reader) ReadAll() ([]*Record, error) {
	var recs []*Record
	for r.Scan() {
		recs = append(recs, r.Record())
	}
	return recs, r.Err()
}
