// Package loader rebuilds the SQLite store from the generator's CSV files.
// The store is a derived artifact: by default any existing database file is
// deleted and recreated, and all inserts happen in a single transaction so
// a failure leaves no partially loaded tables behind.
package loader

import (
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"
)

const insertBatchSize = 100

type Loader struct {
	rawDir       string
	dbPath       string
	keepExisting bool
}

func New(rawDir, dbPath string, keepExisting bool) *Loader {
	return &Loader{
		rawDir:       rawDir,
		dbPath:       dbPath,
		keepExisting: keepExisting,
	}
}

// Run loads the five CSV files into the database and returns the number of
// rows inserted per table.
func (l *Loader) Run() (map[string]int, error) {
	// Check inputs before touching the database so a missing file never
	// costs the caller an existing store.
	for _, t := range Tables {
		path := filepath.Join(l.rawDir, t.File)
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("missing input file %s: %w", t.File, err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(l.dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	if !l.keepExisting {
		if err := os.Remove(l.dbPath); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to remove existing database %s: %w", l.dbPath, err)
		}
	}

	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?_foreign_keys=on", l.dbPath))
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database %s: %w", l.dbPath, err)
	}
	defer db.Close()

	for _, t := range Tables {
		if _, err := db.Exec(t.CreateSQL); err != nil {
			return nil, fmt.Errorf("failed to create table %s: %w", t.Name, err)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	counts := make(map[string]int, len(Tables))
	for _, t := range Tables {
		n, err := l.loadTable(tx, t)
		if err != nil {
			tx.Rollback()
			return nil, err
		}
		counts[t.Name] = n
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return counts, nil
}

func (l *Loader) loadTable(tx *sql.Tx, t Table) (int, error) {
	path := filepath.Join(l.rawDir, t.File)
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open %s: %w", t.File, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, fmt.Errorf("%s: missing header row", t.File)
		}
		return 0, fmt.Errorf("%s: failed to read header: %w", t.File, err)
	}
	if !slices.Equal(header, t.Columns) {
		return 0, fmt.Errorf("%s: header mismatch: expected [%s], got [%s]",
			t.File, strings.Join(t.Columns, ","), strings.Join(header, ","))
	}

	inserted := 0
	var batch [][]string
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// csv.ParseError carries the offending line number
			return inserted, fmt.Errorf("%s: malformed row: %w", t.File, err)
		}
		batch = append(batch, record)

		if len(batch) >= insertBatchSize {
			if err := insertBatch(tx, t.Name, header, batch); err != nil {
				return inserted, err
			}
			inserted += len(batch)
			batch = batch[:0]
		}
	}

	if len(batch) > 0 {
		if err := insertBatch(tx, t.Name, header, batch); err != nil {
			return inserted, err
		}
		inserted += len(batch)
	}

	return inserted, nil
}

// insertBatch issues one multi-row INSERT. Column order comes from the
// validated file header, never from a hardcoded list.
func insertBatch(tx *sql.Tx, table string, columns []string, rows [][]string) error {
	builder := sq.Insert(table).Columns(columns...)
	for _, row := range rows {
		values := make([]interface{}, len(row))
		for i, v := range row {
			values[i] = v
		}
		builder = builder.Values(values...)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert for %s: %w", table, err)
	}

	if _, err := tx.Exec(query, args...); err != nil {
		return fmt.Errorf("failed to insert into %s: %w", table, err)
	}
	return nil
}
