// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package journal keeps an append-only SQLite record of every processed
// bulletin: what was converted, under which name, and why files were
// skipped. The journal is an operator audit trail; it is never consulted
// to decide whether a file needs converting.
package journal

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/tf1999tf/pdf-alert-processor/pkg/types"
)

// Entry is one journal row.
type Entry struct {
	ID            int64     `json:"id" yaml:"id"`
	Source        string    `json:"source" yaml:"source"`
	Output        string    `json:"output,omitempty" yaml:"output,omitempty"`
	WarningNumber string    `json:"warning_number,omitempty" yaml:"warning_number,omitempty"`
	IssueTime     string    `json:"issue_time,omitempty" yaml:"issue_time,omitempty"`
	Status        string    `json:"status" yaml:"status"`
	Reason        string    `json:"reason,omitempty" yaml:"reason,omitempty"`
	Detail        string    `json:"detail,omitempty" yaml:"detail,omitempty"`
	RecordedAt    time.Time `json:"recorded_at" yaml:"recorded_at"`
}

const (
	StatusConverted = "converted"
	StatusSkipped   = "skipped"
	StatusFailed    = "failed"
)

// EntryFromOutcome converts a processing outcome into a journal entry.
func EntryFromOutcome(o types.Outcome) Entry {
	e := Entry{
		Source: o.Source,
		Output: o.Output,
		Reason: string(o.Reason),
	}
	if o.Record != nil {
		e.WarningNumber = o.Record.WarningNumber
		e.IssueTime = o.Record.IssueTimeLine
	}
	if o.Err != nil {
		e.Detail = o.Err.Error()
	}
	switch o.Reason {
	case types.ReasonNone:
		e.Status = StatusConverted
	case types.ReasonEmptyBody:
		e.Status = StatusSkipped
	default:
		e.Status = StatusFailed
	}
	return e
}

// Store manages the journal SQLite database.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens or creates the journal database at path, creating its parent
// directory and schema when missing.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating journal directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening journal: %w", err)
	}
	// A monitor pass and a manual batch may record concurrently.
	db.SetMaxOpenConns(1)

	s := &Store{db: db, now: time.Now}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating journal schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS conversions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			source TEXT NOT NULL,
			output TEXT,
			warning_number TEXT,
			issue_time TEXT,
			status TEXT NOT NULL,
			reason TEXT,
			detail TEXT,
			recorded_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_conversions_source ON conversions(source)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record appends the outcome of one processed file.
func (s *Store) Record(ctx context.Context, o types.Outcome) error {
	e := EntryFromOutcome(o)
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO conversions (source, output, warning_number, issue_time, status, reason, detail, recorded_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Source, e.Output, e.WarningNumber, e.IssueTime, e.Status, e.Reason, e.Detail,
		s.now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("recording %s: %w", e.Source, err)
	}
	return nil
}

// Recent returns up to limit entries, newest first. A non-positive limit
// returns every entry.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	query := `SELECT id, source, output, warning_number, issue_time, status, reason, detail, recorded_at
		FROM conversions ORDER BY id DESC`
	var args []any
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying journal: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e                                                Entry
			output, warning, issueTime, reason, detail, when sql.NullString
		)
		if err := rows.Scan(&e.ID, &e.Source, &output, &warning, &issueTime, &e.Status, &reason, &detail, &when); err != nil {
			return nil, fmt.Errorf("scanning journal row: %w", err)
		}
		e.Output = output.String
		e.WarningNumber = warning.String
		e.IssueTime = issueTime.String
		e.Reason = reason.String
		e.Detail = detail.String
		if t, err := time.Parse(time.RFC3339Nano, when.String); err == nil {
			e.RecordedAt = t
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
