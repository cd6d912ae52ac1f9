// Copyright 2017 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Algosave stores algorithm benchmark results in a SQL database.
//
// Usage:
//
//	algosave [-config file.yaml] [-driver name] [-dsn dsn] [-clean] [file...]
//
// Each input file should be a benchmark log as read by algoplot, or,
// with -clean, a cleaned table as written by algoplot. With no files,
// or for the file "-", algosave reads standard input.
//
// All records are stored as a single upload. Algosave prints the ID
// assigned to the upload.
//
// The database defaults to the SQLite file results/metrics.db. The
// -config file may set it instead:
//
//	database:
//	  driver: mysql
//	  dsn: user:pass@tcp(localhost:3306)/algoperf
//
// Flags given on the command line override the config file.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/go-sql-driver/mysql"

	"github.com/algoperf/algoperf/algofmt"
	"github.com/algoperf/algoperf/internal/config"
	"github.com/algoperf/algoperf/storage/db"
	_ "github.com/algoperf/algoperf/storage/db/sqlite3"
)

func usage(fs *flag.FlagSet) func() {
	return func() {
		fmt.Fprintf(fs.Output(), `Usage of algosave:
	algosave [flags] [file...]
`)
		fs.PrintDefaults()
	}
}

func main() {
	log.SetPrefix("algosave: ")
	log.SetFlags(0)

	if err := run(context.Background(), os.Stdout, os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

func run(ctx context.Context, stdout io.Writer, args []string) error {
	fs := flag.NewFlagSet("algosave", flag.ContinueOnError)
	fs.Usage = usage(fs)
	var (
		configFile = fs.String("config", "", "read database settings from YAML `file`")
		driver     = fs.String("driver", config.DefaultDriver, "database `driver` (sqlite3 or mysql)")
		dsn        = fs.String("dsn", config.DefaultDSN, "database data source `name`")
		clean      = fs.Bool("clean", false, "inputs are cleaned CSV tables instead of logs")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.Default()
	if *configFile != "" {
		var err error
		if cfg, err = config.Load(*configFile); err != nil {
			return err
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "driver":
			cfg.Database.Driver = *driver
		case "dsn":
			cfg.Database.DSN = *dsn
		}
	})

	var recs []*algofmt.Record
	var err error
	if *clean {
		recs, err = readClean(fs.Args())
	} else {
		files := algofmt.Files{Paths: fs.Args(), AllowStdin: true}
		recs, err = files.ReadAll()
	}
	if err != nil {
		return err
	}
	if len(recs) == 0 {
		return errors.New("no records to upload")
	}

	if err := makeDBDir(cfg.Database.Driver, cfg.Database.DSN); err != nil {
		return err
	}
	d, err := db.OpenSQL(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer d.Close()

	id, err := save(ctx, d, recs)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "uploaded %d records as upload %s\n", len(recs), id)
	return nil
}

// readClean reads cleaned tables from paths, or from stdin if paths
// is empty or for the path "-".
func readClean(paths []string) ([]*algofmt.Record, error) {
	if len(paths) == 0 {
		paths = []string{"-"}
	}
	var all []*algofmt.Record
	for _, path := range paths {
		var r io.Reader = os.Stdin
		if path != "-" {
			f, err := os.Open(path)
			if err != nil {
				return nil, err
			}
			defer f.Close()
			r = f
		}
		recs, err := algofmt.ReadCSV(r, path)
		if err != nil {
			return nil, err
		}
		all = append(all, recs...)
	}
	return all, nil
}

// makeDBDir creates the directory holding a SQLite database file.
func makeDBDir(driver, dsn string) error {
	if driver != "sqlite3" || dsn == ":memory:" || strings.HasPrefix(dsn, "file:") {
		return nil
	}
	return os.MkdirAll(filepath.Dir(dsn), 0777)
}

// save stores recs as one upload and returns its ID. Either every
// record is stored or none is.
func save(ctx context.Context, d *db.DB, recs []*algofmt.Record) (string, error) {
	u, err := d.NewUpload(ctx)
	if err != nil {
		return "", err
	}
	for _, rec := range recs {
		if err := u.InsertRecord(rec); err != nil {
			u.Abort()
			if fileName, line := rec.Pos(); fileName != "" {
				return "", fmt.Errorf("%s:%d: %w", fileName, line, err)
			}
			return "", err
		}
	}
	if err := u.Commit(); err != nil {
		return "", err
	}
	return u.ID, nil
}
