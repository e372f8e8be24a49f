// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package posdb persists conversion runs in a SQLite database so plate
// revisions can be compared across runs.
package posdb

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/orthball/plateconv/pkg/types"
)

// Store manages the position-history SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at cfg.DBPath and creates the schema
// if it does not exist.
func Open(cfg types.StoreConfig) (*Store, error) {
	path := cfg.DBPath
	if path == "" {
		path = "plateconv.db"
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			created_at TEXT NOT NULL,
			info TEXT,
			scale TEXT,
			total_mx INTEGER,
			total_choc INTEGER,
			total INTEGER
		)`,
		`CREATE TABLE IF NOT EXISTS keys (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL REFERENCES runs(id),
			type TEXT NOT NULL,
			x_mm REAL NOT NULL,
			y_mm REAL NOT NULL,
			svg_x REAL NOT NULL,
			svg_y REAL NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_keys_run_id ON keys(run_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// RunSummary describes one recorded conversion run.
type RunSummary struct {
	ID        string    `json:"id" yaml:"id"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
	Info      string    `json:"info" yaml:"info"`
	TotalMX   int       `json:"total_mx" yaml:"total_mx"`
	TotalChoc int       `json:"total_choc" yaml:"total_choc"`
	Total     int       `json:"total" yaml:"total"`
}

// Record inserts a report as a new run and returns its id. The insert is
// transactional: a run is recorded fully or not at all. Key rows keep the
// report's sort order via their insertion rowid.
func (s *Store) Record(ctx context.Context, r types.Report) (string, error) {
	id := uuid.NewString()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, created_at, info, scale, total_mx, total_choc, total)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, time.Now().UTC().Format(time.RFC3339), r.Info, r.Scale,
		r.TotalMX, r.TotalChoc, r.Total,
	)
	if err != nil {
		return "", fmt.Errorf("inserting run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO keys (run_id, type, x_mm, y_mm, svg_x, svg_y)
		 VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, k := range append(append([]types.KeyPosition{}, r.MXKeys...), r.ChocKeys...) {
		if _, err := stmt.ExecContext(ctx, id, string(k.Type), k.XMM, k.YMM, k.SVGX, k.SVGY); err != nil {
			return "", fmt.Errorf("inserting key: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing run: %w", err)
	}
	return id, nil
}

// List returns recorded runs, newest first.
func (s *Store) List(ctx context.Context) ([]RunSummary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created_at, info, total_mx, total_choc, total
		 FROM runs ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []RunSummary
	for rows.Next() {
		var r RunSummary
		var created string
		if err := rows.Scan(&r.ID, &created, &r.Info, &r.TotalMX, &r.TotalChoc, &r.Total); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		if t, err := time.Parse(time.RFC3339, created); err == nil {
			r.CreatedAt = t
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Export reconstructs the report recorded under the given run id, preserving
// the order the keys were recorded in.
func (s *Store) Export(ctx context.Context, runID string) (types.Report, error) {
	var r types.Report
	err := s.db.QueryRowContext(ctx,
		`SELECT info, scale, total_mx, total_choc, total FROM runs WHERE id = ?`, runID,
	).Scan(&r.Info, &r.Scale, &r.TotalMX, &r.TotalChoc, &r.Total)
	if err == sql.ErrNoRows {
		return r, fmt.Errorf("run %s not found", runID)
	}
	if err != nil {
		return r, fmt.Errorf("querying run: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT type, x_mm, y_mm, svg_x, svg_y FROM keys WHERE run_id = ? ORDER BY rowid`, runID)
	if err != nil {
		return r, fmt.Errorf("querying keys: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var k types.KeyPosition
		var kind string
		if err := rows.Scan(&kind, &k.XMM, &k.YMM, &k.SVGX, &k.SVGY); err != nil {
			return r, fmt.Errorf("scanning key: %w", err)
		}
		k.Type = types.KeySwitchType(kind)
		switch k.Type {
		case types.SwitchChoc:
			r.ChocKeys = append(r.ChocKeys, k)
		default:
			r.MXKeys = append(r.MXKeys, k)
		}
	}
	return r, rows.Err()
}
