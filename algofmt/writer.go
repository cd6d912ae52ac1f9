// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package algofmt

import (
	"bytes"
	"fmt"
	"io"
)

// A Writer writes Records in the benchmark log format, one line per
// Record, so that a Reader reads them back unchanged.
type Writer struct {
	w   io.Writer
	buf bytes.Buffer
}

// NewWriter returns a writer that writes benchmark log lines to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write writes rec as a single line. The input size is written under
// the key "n" and each present metric under its canonical name.
func (w *Writer) Write(rec *Record) error {
	if !labelOK(rec.Label) {
		return fmt.Errorf("label %q cannot be written as a log line", rec.Label)
	}
	fmt.Fprintf(&w.buf, "%s, n: %d", rec.Label, rec.N)
	for _, m := range Metrics() {
		if v, ok := rec.Value(m); ok {
			fmt.Fprintf(&w.buf, ", %s: %s", m, v)
		}
	}
	w.buf.WriteByte('\n')

	// Flush the buffer out to the io.Writer. Write to the buffer
	// can't fail, so we only have to check if this fails.
	_, err := w.w.Write(w.buf.Bytes())
	w.buf.Reset()
	return err
}

// labelOK reports whether ParseLine would recover label unchanged.
func labelOK(label string) bool {
	if label == "" {
		return false
	}
	for _, r := range label {
		if r == ',' || r == '\n' || r == '\r' || r == ' ' || r == '\t' {
			return false
		}
	}
	return true
}
