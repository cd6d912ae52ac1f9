// Copyright 2016 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package db stores normalized benchmark Records in a SQL database.
package db

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"github.com/algoperf/algoperf/algofmt"
	"github.com/algoperf/algoperf/algounit"
)

// DB is a high-level interface to a database of benchmark records.
// It's safe for concurrent use by multiple goroutines.
type DB struct {
	sql *sql.DB // underlying database connection
	// prepared statements
	insertUpload *sql.Stmt
	insertRecord *sql.Stmt
}

// OpenSQL creates a DB backed by a SQL database. The parameters are
// the same as the parameters for sql.Open. Only mysql and sqlite3 are
// explicitly supported; other database engines will receive MySQL
// query syntax which may or may not be compatible.
func OpenSQL(driverName, dataSourceName string) (*DB, error) {
	db, err := sql.Open(driverName, dataSourceName)
	if err != nil {
		return nil, err
	}
	if hook := openHooks[driverName]; hook != nil {
		if err := hook(db); err != nil {
			db.Close()
			return nil, err
		}
	}
	d := &DB{sql: db}
	if err := d.createTables(driverName); err != nil {
		db.Close()
		return nil, err
	}
	if err := d.prepareStatements(driverName); err != nil {
		db.Close()
		return nil, err
	}
	return d, nil
}

var openHooks = make(map[string]func(*sql.DB) error)

// RegisterOpenHook registers a hook to be called after opening a connection to driverName.
// This is used by the sqlite3 package to register a ConnectHook.
// It must be called from an init function.
func RegisterOpenHook(driverName string, hook func(*sql.DB) error) {
	openHooks[driverName] = hook
}

// metricColumns lists the Records columns holding metrics, in schema
// order.
var metricColumns = func() []string {
	var cols []string
	for _, m := range algofmt.Metrics() {
		cols = append(cols, m.String())
	}
	return cols
}()

// createTmpl is the template used to prepare the CREATE statements
// for the database. It is evaluated with . as a map containing an
// entry whose key is the driver name and a "metrics" entry listing
// the metric columns.
//
// Metrics are stored in their exported text form so that integer and
// floating-point values keep their kind. Absent metrics are NULL.
var createTmpl = template.Must(template.New("create").Parse(`
CREATE TABLE IF NOT EXISTS Uploads (
	UploadID {{if .sqlite3}}INTEGER PRIMARY KEY AUTOINCREMENT{{else}}SERIAL PRIMARY KEY AUTO_INCREMENT{{end}}
);
CREATE TABLE IF NOT EXISTS Records (
	UploadID BIGINT UNSIGNED,
	RecordID BIGINT UNSIGNED,
	Label VARCHAR(255),
	Algo VARCHAR(32),
	N BIGINT,
{{range .metrics}}
	{{.}} VARCHAR(32) NULL,
{{end}}
{{if not .sqlite3}}
	Index (Algo),
{{end}}
	PRIMARY KEY (UploadID, RecordID),
	FOREIGN KEY (UploadID) REFERENCES Uploads(UploadID) ON UPDATE CASCADE ON DELETE CASCADE
);
{{if .sqlite3}}
CREATE INDEX IF NOT EXISTS RecordsAlgo ON Records(Algo);
{{end}}
`))

// createTables creates any missing tables on the connection in
// db.sql. driverName is the same driver name passed to sql.Open and
// is used to select the correct syntax.
func (db *DB) createTables(driverName string) error {
	var buf bytes.Buffer
	data := map[string]interface{}{driverName: true, "metrics": metricColumns}
	if err := createTmpl.Execute(&buf, data); err != nil {
		return err
	}
	for _, q := range strings.Split(buf.String(), ";") {
		if strings.TrimSpace(q) == "" {
			continue
		}
		if _, err := db.sql.Exec(q); err != nil {
			return fmt.Errorf("create table: %v", err)
		}
	}
	return nil
}

// prepareStatements calls db.sql.Prepare on reusable SQL statements.
func (db *DB) prepareStatements(driverName string) error {
	var err error
	q := "INSERT INTO Uploads() VALUES ()"
	if driverName == "sqlite3" {
		q = "INSERT INTO Uploads DEFAULT VALUES"
	}
	db.insertUpload, err = db.sql.Prepare(q)
	if err != nil {
		return err
	}
	cols := append([]string{"UploadID", "RecordID", "Label", "Algo", "N"}, metricColumns...)
	q = "INSERT INTO Records(" + strings.Join(cols, ", ") + ") VALUES (" +
		strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", ") + ")"
	db.insertRecord, err = db.sql.Prepare(q)
	if err != nil {
		return err
	}
	return nil
}

// An Upload is a collection of records that share an upload ID.
// Records inserted into an Upload become visible together when it is
// committed.
type Upload struct {
	// ID is the upload ID shared by every record in this upload.
	ID string

	// id is the numeric value used as the primary key.
	id int64
	// recordid is the index of the next record to insert.
	recordid int64
	// db is the underlying database that this upload is going to.
	db *DB
	// tx is the transaction holding the upload.
	tx *sql.Tx
	// ctx is the context the upload was started with.
	ctx context.Context
}

// NewUpload returns an upload for storing new records.
// The caller must call Commit or Abort on the returned Upload.
func (db *DB) NewUpload(ctx context.Context) (*Upload, error) {
	tx, err := db.sql.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	res, err := tx.StmtContext(ctx, db.insertUpload).ExecContext(ctx)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	i, err := res.LastInsertId()
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	return &Upload{
		ID:  strconv.FormatInt(i, 10),
		id:  i,
		db:  db,
		tx:  tx,
		ctx: ctx,
	}, nil
}

// InsertRecord inserts a single record in an existing upload.
func (u *Upload) InsertRecord(r *algofmt.Record) error {
	args := []interface{}{u.id, u.recordid, r.Label, string(r.Algo), r.N}
	for _, v := range r.Values {
		args = append(args, sql.NullString{String: v.String(), Valid: v.Valid()})
	}
	if _, err := u.tx.StmtContext(u.ctx, u.db.insertRecord).ExecContext(u.ctx, args...); err != nil {
		return err
	}
	u.recordid++
	return nil
}

// Commit finishes processing the upload.
func (u *Upload) Commit() error {
	return u.tx.Commit()
}

// Abort cleans up resources associated with the upload.
// It does not attempt to clean up partial database state.
func (u *Upload) Abort() error {
	return u.tx.Rollback()
}

// Records returns the records of upload id in insertion order.
// Unknown upload IDs have no records.
func (db *DB) Records(ctx context.Context, id string) ([]*algofmt.Record, error) {
	uploadid, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid upload ID %q", id)
	}
	q := "SELECT Label, Algo, N, " + strings.Join(metricColumns, ", ") +
		" FROM Records WHERE UploadID = ? ORDER BY RecordID"
	rows, err := db.sql.QueryContext(ctx, q, uploadid)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []*algofmt.Record
	for rows.Next() {
		var (
			rec     algofmt.Record
			algo    string
			metrics [algofmt.NumMetrics]sql.NullString
		)
		dest := []interface{}{&rec.Label, &algo, &rec.N}
		for i := range metrics {
			dest = append(dest, &metrics[i])
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		rec.Algo = algofmt.Family(algo)
		for i, s := range metrics {
			if !s.Valid {
				continue
			}
			if rec.Values[i], err = algounit.Parse(s.String); err != nil {
				return nil, fmt.Errorf("upload %s: %v", id, err)
			}
		}
		recs = append(recs, &rec)
	}
	return recs, rows.Err()
}

// DeleteUpload deletes upload id and all of its records.
func (db *DB) DeleteUpload(ctx context.Context, id string) error {
	uploadid, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid upload ID %q", id)
	}
	tx, err := db.sql.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	// Records are removed by the foreign key cascade.
	res, err := tx.ExecContext(ctx, "DELETE FROM Uploads WHERE UploadID = ?", uploadid)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return fmt.Errorf("upload %s not found", id)
	}
	return tx.Commit()
}

// CountUploads returns the number of uploads in the database.
func (db *DB) CountUploads() (int, error) {
	var uploads int
	err := db.sql.QueryRow("SELECT COUNT(*) FROM Uploads").Scan(&uploads)
	return uploads, err
}

// Close closes the database connections, releasing any open resources.
func (db *DB) Close() error {
	if err := db.insertUpload.Close(); err != nil {
		return err
	}
	if err := db.insertRecord.Close(); err != nil {
		return err
	}
	return db.sql.Close()
}
