// Copyright 2017 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build cgo
// +build cgo

// Package sqlite3 registers the sqlite3 driver with the db package.
// Import it for its side effects.
package sqlite3

import (
	"database/sql"

	"github.com/algoperf/algoperf/storage/db"
	"github.com/mattn/go-sqlite3"
)

func init() {
	db.RegisterOpenHook("sqlite3", func(db *sql.DB) error {
		db.Driver().(*sqlite3.SQLiteDriver).ConnectHook = func(c *sqlite3.SQLiteConn) error {
			_, err := c.Exec("PRAGMA foreign_keys = ON;", nil)
			return err
		}
		// SQLite does not support concurrent writers, and each
		// connection to :memory: is a separate database.
		db.SetMaxOpenConns(1)
		return nil
	})
}
