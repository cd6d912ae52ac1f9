// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package algofmt

import (
	"os"
)

// A Files reads Records from a sequence of benchmark logs.
type Files struct {
	// Paths is the list of file names to read in.
	Paths []string

	// AllowStdin indicates that the path "-" should be treated as
	// stdin and if the file list is empty, it should be treated
	// as consisting of stdin.
	AllowStdin bool

	// inputs is the sequence of remaining inputs, or nil if this
	// Files has not started yet.
	inputs []string

	reader  Reader
	file    *os.File
	isStdin bool
	err     error
}

func (f *Files) init() {
	f.inputs = []string{}
	if f.AllowStdin && len(f.Paths) == 0 {
		f.inputs = append(f.inputs, "-")
	}
	f.inputs = append(f.inputs, f.Paths...)
}

// Scan advances to the next Record in the sequence of files and
// reports whether a Record was read. If Scan reaches the end of the
// last file, or if an error occurs, it returns false; the caller
// should then check Err.
func (f *Files) Scan() bool {
	if f.err != nil {
		return false
	}
	if f.inputs == nil {
		f.init()
	}

	for {
		if f.file == nil {
			if len(f.inputs) == 0 {
				return false
			}
			path := f.inputs[0]
			f.inputs = f.inputs[1:]

			if f.AllowStdin && path == "-" {
				f.isStdin, f.file = true, os.Stdin
			} else {
				file, err := os.Open(path)
				if err != nil {
					f.err = err
					return false
				}
				f.isStdin, f.file = false, file
			}
			f.reader.Reset(f.file, path)
		}

		if f.reader.Scan() {
			return true
		}
		err := f.reader.Err()
		f.close()
		if err != nil {
			f.err = err
			return false
		}
	}
}

func (f *Files) close() {
	if !f.isStdin {
		f.file.Close()
	}
	f.file = nil
}

// Record returns the Record read by the last call to Scan.
func (f *Files) Record() *Record {
	return f.reader.Record()
}

// Err returns the error that stopped Scan, if any.
// If Scan stopped because it read each file to completion,
// or if Scan has not yet returned false, Err returns nil.
func (f *Files) Err() error {
	return f.err
}

// ReadAll reads every Record from every file.
func (f *Files) ReadAll() ([]*Record, error) {
	var recs []*Record
	for f.Scan() {
		recs = append(recs, f.Record())
	}
	return recs, f.Err()
}
