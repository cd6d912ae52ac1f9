// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package algofmt

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/algoperf/algoperf/algounit"
)

// CSVHeader returns the header row of the cleaned table:
// label, algo, n, then every metric in schema order.
func CSVHeader() []string {
	hdr := []string{"label", "algo", "n"}
	for _, m := range Metrics() {
		hdr = append(hdr, m.String())
	}
	return hdr
}

// A CSVWriter writes Records as rows of a cleaned table.
type CSVWriter struct {
	w     *csv.Writer
	wrote bool
	row   []string
}

// NewCSVWriter returns a writer that writes a cleaned table to w.
// The header row is written before the first Record.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{w: csv.NewWriter(w)}
}

// Write writes rec as one row. Absent metrics are empty cells.
func (w *CSVWriter) Write(rec *Record) error {
	if !w.wrote {
		if err := w.w.Write(CSVHeader()); err != nil {
			return err
		}
		w.wrote = true
	}
	w.row = append(w.row[:0], rec.Label, string(rec.Algo), strconv.Itoa(rec.N))
	for _, v := range rec.Values {
		w.row = append(w.row, v.String())
	}
	return w.w.Write(w.row)
}

// Flush writes any buffered rows and reports any error from this or
// an earlier Write. A table with no Records still gets its header.
func (w *CSVWriter) Flush() error {
	if !w.wrote {
		if err := w.w.Write(CSVHeader()); err != nil {
			return err
		}
		w.wrote = true
	}
	w.w.Flush()
	return w.w.Error()
}

// WriteCSVFile writes recs as a cleaned table to path, replacing
// any existing file. The table is rendered in full before the file
// is touched.
func WriteCSVFile(path string, recs []*Record) error {
	var buf bytes.Buffer
	w := NewCSVWriter(&buf)
	for _, rec := range recs {
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0666)
}

// ReadCSV reads a cleaned table written by CSVWriter. Columns are
// matched by header name, so tables with extra columns or a different
// column order are accepted as long as label, algo and n are present.
// Empty metric cells read as absent.
func ReadCSV(r io.Reader, fileName string) ([]*Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	hdr, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	col := make(map[string]int)
	for i, name := range hdr {
		col[name] = i
	}
	for _, name := range []string{"label", "algo", "n"} {
		if _, ok := col[name]; !ok {
			return nil, &SyntaxError{FileName: fileName, Line: 1, Msg: fmt.Sprintf("missing %q column", name)}
		}
	}
	cell := func(row []string, name string) string {
		if i, ok := col[name]; ok && i < len(row) {
			return row[i]
		}
		return ""
	}

	var recs []*Record
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return recs, err
		}
		fail := func(err error) error {
			return &SyntaxError{fileName, line, err.Error(), err}
		}
		n, err := algounit.ParseInt(cell(row, "n"))
		if err != nil {
			return recs, fail(err)
		}
		rec := &Record{
			Label:    cell(row, "label"),
			Algo:     Family(cell(row, "algo")),
			N:        n,
			fileName: fileName,
			line:     line,
		}
		for _, m := range Metrics() {
			s := cell(row, m.String())
			if s == "" {
				continue
			}
			if rec.Values[m], err = algounit.Parse(s); err != nil {
				return recs, fail(err)
			}
		}
		recs = append(recs, rec)
	}
	return recs, nil
}
