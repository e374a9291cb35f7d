// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package journal persists a record of converted files in a SQLite
// database, enabling incremental batch runs and the status command.
package journal

import (
	"database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/zeebo/blake3"

	"github.com/pdiddy/md2norg/pkg/types"
)

const dbFile = "journal.db"

// Store manages the conversion journal database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the journal database under cfg.StateDir,
// creating the directory and schema as needed.
func Open(cfg types.JournalConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.StateDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating state directory: %w", err)
	}

	dbPath := filepath.Join(cfg.StateDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening journal database: %w", err)
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
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS conversions (
		source_path TEXT PRIMARY KEY,
		checksum TEXT NOT NULL,
		output_path TEXT NOT NULL,
		run_id TEXT NOT NULL,
		converted_at TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// Checksum returns the blake3-256 hex digest of a source document.
func Checksum(data []byte) string {
	h := blake3.Sum256(data)
	return hex.EncodeToString(h[:])
}

// Seen reports whether sourcePath was already converted with the given
// content checksum.
func (s *Store) Seen(sourcePath, checksum string) (bool, error) {
	var stored string
	err := s.db.QueryRow(
		`SELECT checksum FROM conversions WHERE source_path = ?`, sourcePath,
	).Scan(&stored)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("querying journal: %w", err)
	}
	return stored == checksum, nil
}

// Record upserts the journal entry for one converted file.
func (s *Store) Record(e types.JournalEntry) error {
	_, err := s.db.Exec(
		`INSERT INTO conversions (source_path, checksum, output_path, run_id, converted_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(source_path) DO UPDATE SET
		   checksum = excluded.checksum,
		   output_path = excluded.output_path,
		   run_id = excluded.run_id,
		   converted_at = excluded.converted_at`,
		e.SourcePath, e.Checksum, e.OutputPath, e.RunID,
		e.ConvertedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("recording conversion: %w", err)
	}
	return nil
}

// List returns all journal entries ordered by source path.
func (s *Store) List() ([]types.JournalEntry, error) {
	rows, err := s.db.Query(
		`SELECT source_path, checksum, output_path, run_id, converted_at
		 FROM conversions ORDER BY source_path`,
	)
	if err != nil {
		return nil, fmt.Errorf("querying journal: %w", err)
	}
	defer rows.Close()

	var entries []types.JournalEntry
	for rows.Next() {
		var e types.JournalEntry
		var ts string
		if err := rows.Scan(&e.SourcePath, &e.Checksum, &e.OutputPath, &e.RunID, &ts); err != nil {
			return nil, fmt.Errorf("scanning journal row: %w", err)
		}
		if t, err := time.Parse(time.RFC3339, ts); err == nil {
			e.ConvertedAt = t
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading journal rows: %w", err)
	}
	return entries, nil
}
