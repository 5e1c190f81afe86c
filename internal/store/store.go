// Package store persists check-run summaries and mined terminology pairs
// in a local SQLite database, so successive runs over the same corpus can
// be compared and mined terms accumulate across files.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"
	_ "modernc.org/sqlite"
)

type Store struct {
	db *sql.DB
}

func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}

	return s, nil
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS check_runs (
		id TEXT PRIMARY KEY,
		input_file TEXT NOT NULL,
		units INTEGER NOT NULL,
		untranslated INTEGER NOT NULL,
		ascii_heavy INTEGER NOT NULL,
		ratio_flags INTEGER NOT NULL,
		avg_ratio REAL NOT NULL,
		min_ratio REAL NOT NULL,
		max_ratio REAL NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	-- mined_terms accumulates glossary pairs across mining runs
	CREATE TABLE IF NOT EXISTS mined_terms (
		id TEXT PRIMARY KEY,
		source_term TEXT NOT NULL,
		target_term TEXT NOT NULL,
		count INTEGER NOT NULL,
		example_ids TEXT,
		input_file TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		UNIQUE(source_term, target_term)
	);

	CREATE INDEX IF NOT EXISTS idx_runs_file ON check_runs(input_file);
	CREATE INDEX IF NOT EXISTS idx_terms_lookup ON mined_terms(source_term, target_term);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Run is one stored check-run summary.
type Run struct {
	ID           string
	InputFile    string
	Units        int
	Untranslated int
	ASCIIHeavy   int
	RatioFlags   int
	AvgRatio     float64
	MinRatio     float64
	MaxRatio     float64
	CreatedAt    time.Time
}

// SaveRun records one check run.
func (s *Store) SaveRun(ctx context.Context, run Run) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO check_runs (id, input_file, units, untranslated, ascii_heavy, ratio_flags, avg_ratio, min_ratio, max_ratio, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.InputFile, run.Units, run.Untranslated, run.ASCIIHeavy,
		run.RatioFlags, run.AvgRatio, run.MinRatio, run.MaxRatio, time.Now())
	return err
}

// ListRuns returns all stored runs, most recent first.
func (s *Store) ListRuns(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, input_file, units, untranslated, ascii_heavy, ratio_flags, avg_ratio, min_ratio, max_ratio, created_at FROM check_runs ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.InputFile, &r.Units, &r.Untranslated, &r.ASCIIHeavy,
			&r.RatioFlags, &r.AvgRatio, &r.MinRatio, &r.MaxRatio, &r.CreatedAt); err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// GetRun retrieves a single run by ID.
func (s *Store) GetRun(ctx context.Context, id string) (*Run, error) {
	var r Run
	err := s.db.QueryRowContext(ctx,
		`SELECT id, input_file, units, untranslated, ascii_heavy, ratio_flags, avg_ratio, min_ratio, max_ratio, created_at FROM check_runs WHERE id = ?`,
		id).Scan(&r.ID, &r.InputFile, &r.Units, &r.Untranslated, &r.ASCIIHeavy,
		&r.RatioFlags, &r.AvgRatio, &r.MinRatio, &r.MaxRatio, &r.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("run not found: %s", id)
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// ClearRuns removes all stored check runs.
func (s *Store) ClearRuns(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM check_runs`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// MinedTerm is a persisted glossary pair.
type MinedTerm struct {
	ID         string
	SourceTerm string
	TargetTerm string
	Count      int
	ExampleIDs string
	InputFile  string
	CreatedAt  time.Time
}

// SaveMinedTerm inserts or replaces a mined glossary pair. Terms are NFC
// normalized so the same pair mined from differently-encoded files lands
// on one row.
func (s *Store) SaveMinedTerm(ctx context.Context, sourceTerm, targetTerm string, count int, exampleIDs, inputFile string) error {
	id := fmt.Sprintf("term_%d", time.Now().UnixNano())
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO mined_terms (id, source_term, target_term, count, example_ids, input_file) VALUES (?, ?, ?, ?, ?, ?)`,
		id, normalizeTerm(sourceTerm), normalizeTerm(targetTerm), count, exampleIDs, inputFile)
	return err
}

// ListMinedTerms returns all persisted glossary pairs ordered by descending
// count, ties broken by source term.
func (s *Store) ListMinedTerms(ctx context.Context) ([]MinedTerm, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, source_term, target_term, count, example_ids, input_file, created_at FROM mined_terms ORDER BY count DESC, source_term ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var terms []MinedTerm
	for rows.Next() {
		var t MinedTerm
		if err := rows.Scan(&t.ID, &t.SourceTerm, &t.TargetTerm, &t.Count, &t.ExampleIDs, &t.InputFile, &t.CreatedAt); err != nil {
			return nil, err
		}
		terms = append(terms, t)
	}
	return terms, rows.Err()
}

func (s *Store) Close() error {
	return s.db.Close()
}

// normalizeTerm trims whitespace and applies Unicode NFC normalization for
// consistent term comparison.
func normalizeTerm(term string) string {
	return norm.NFC.String(strings.TrimSpace(term))
}
