// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/lineindex/index.go
// Summary: SQLite FTS5 index of categorized lines.
//
// Each line is stored as plain text for searching, plus its style runs so
// results can be redrawn with the colours they were captured with.

package lineindex

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/framegrace/sgrcat/sgr"
)

// Run is a styled span of a stored line. Offsets are relative to the line text.
type Run struct {
	Start int       `json:"start"`
	End   int       `json:"end"`
	Style sgr.Style `json:"style"`
}

// Result is a stored line returned by Search.
type Result struct {
	ID     int64
	Source string
	LineNo int
	Text   string
	Runs   []Run
}

// Slices rebuilds the categorized slices of the stored line.
func (r Result) Slices() []sgr.Slice {
	slices := make([]sgr.Slice, 0, len(r.Runs))
	for _, run := range r.Runs {
		if run.Start < 0 || run.End > len(r.Text) || run.Start > run.End {
			continue
		}
		slices = append(slices, sgr.Slice{
			Text:  r.Text[run.Start:run.End],
			Start: run.Start,
			End:   run.End,
			Style: run.Style,
		})
	}
	return slices
}

// Index is a line store backed by SQLite.
type Index struct {
	db *sql.DB
	mu sync.RWMutex
}

const schemaVersion = 1

const schema = `
CREATE TABLE IF NOT EXISTS schema_version (
    version INTEGER PRIMARY KEY
);

CREATE TABLE IF NOT EXISTS lines (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    source TEXT NOT NULL,
    line_no INTEGER NOT NULL,
    content TEXT NOT NULL,
    runs TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_lines_source ON lines(source, line_no);

CREATE VIRTUAL TABLE IF NOT EXISTS lines_fts USING fts5(
    content,
    content='lines',
    content_rowid='id',
    tokenize='trigram'
);

CREATE TRIGGER IF NOT EXISTS lines_ai AFTER INSERT ON lines BEGIN
    INSERT INTO lines_fts(rowid, content) VALUES (new.id, new.content);
END;

CREATE TRIGGER IF NOT EXISTS lines_ad AFTER DELETE ON lines BEGIN
    INSERT INTO lines_fts(lines_fts, rowid, content) VALUES ('delete', old.id, old.content);
END;
`

// Open opens or creates the index database at path.
func Open(path string) (*Index, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	dsn := path +
		"?_pragma=journal_mode(WAL)" +
		"&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	if _, err := db.Exec("INSERT OR REPLACE INTO schema_version (version) VALUES (?)", schemaVersion); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to record schema version: %w", err)
	}

	return &Index{db: db}, nil
}

// Close closes the database.
func (ix *Index) Close() error {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	return ix.db.Close()
}

// encodeLine flattens a categorized line into its text and line-relative runs.
func encodeLine(line []sgr.Slice) (string, []Run) {
	var b strings.Builder
	runs := make([]Run, 0, len(line))
	for _, s := range line {
		start := b.Len()
		b.WriteString(s.Text)
		runs = append(runs, Run{Start: start, End: b.Len(), Style: s.Style})
	}
	return b.String(), runs
}

// Add stores one categorized line.
func (ix *Index) Add(source string, lineNo int, line []sgr.Slice) error {
	return ix.AddLines(source, lineNo, [][]sgr.Slice{line})
}

// AddLines stores consecutive lines in one transaction, numbering them from
// firstLine.
func (ix *Index) AddLines(source string, firstLine int, lines [][]sgr.Slice) error {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	tx, err := ix.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	stmt, err := tx.Prepare("INSERT INTO lines (source, line_no, content, runs) VALUES (?, ?, ?, ?)")
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, line := range lines {
		text, runs := encodeLine(line)
		data, err := json.Marshal(runs)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("encode runs: %w", err)
		}
		if _, err := stmt.Exec(source, firstLine+i, text, string(data)); err != nil {
			tx.Rollback()
			return fmt.Errorf("insert line %d: %w", firstLine+i, err)
		}
	}
	return tx.Commit()
}

// Count returns the number of stored lines.
func (ix *Index) Count() (int, error) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	var n int
	err := ix.db.QueryRow("SELECT COUNT(*) FROM lines").Scan(&n)
	return n, err
}

// DeleteSource removes every line stored for source.
func (ix *Index) DeleteSource(source string) error {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	_, err := ix.db.Exec("DELETE FROM lines WHERE source = ?", source)
	return err
}

// Search returns up to limit lines containing query, in insertion order.
// Queries shorter than 3 bytes fall back to LIKE since the trigram
// tokenizer cannot match them.
func (ix *Index) Search(query string, limit int) ([]Result, error) {
	if query == "" {
		return nil, nil
	}

	ix.mu.RLock()
	defer ix.mu.RUnlock()

	var rows *sql.Rows
	var err error
	if len(query) < 3 {
		likePattern := "%" + strings.ReplaceAll(strings.ReplaceAll(strings.ReplaceAll(query, `\`, `\\`), "%", `\%`), "_", `\_`) + "%"
		rows, err = ix.db.Query(`
			SELECT id, source, line_no, content, runs
			FROM lines
			WHERE content LIKE ? ESCAPE '\'
			ORDER BY id
			LIMIT ?
		`, likePattern, limit)
	} else {
		quotedQuery := `"` + strings.ReplaceAll(query, `"`, `""`) + `"`
		rows, err = ix.db.Query(`
			SELECT l.id, l.source, l.line_no, l.content, l.runs
			FROM lines_fts
			JOIN lines l ON l.id = lines_fts.rowid
			WHERE lines_fts MATCH ?
			ORDER BY l.id
			LIMIT ?
		`, quotedQuery, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		var runs string
		if err := rows.Scan(&r.ID, &r.Source, &r.LineNo, &r.Text, &runs); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		if err := json.Unmarshal([]byte(runs), &r.Runs); err != nil {
			log.Printf("[LINE_INDEX] Bad runs for line %d: %v", r.ID, err)
		}
		results = append(results, r)
	}
	return results, rows.Err()
}
