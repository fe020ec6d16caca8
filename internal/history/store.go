// Package history persists a journal of executed moves so a run can be
// inspected and undone later. Moves are grouped into batches, one per run.
package history

import (
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// Batch identifies one organizer run.
type Batch struct {
	ID         string
	TargetRoot string
	StartedAt  time.Time
	MoveCount  int
}

// Move is one recorded file move. Source and Dest are absolute paths.
type Move struct {
	ID      int64
	BatchID string
	Source  string
	Dest    string
	MovedAt time.Time
}

// Store manages the SQLite move journal.
type Store struct {
	db     *sql.DB
	dbPath string
}

// NewStore opens (creating if necessary) the journal database at dbPath and
// initializes its schema. Use ":memory:" for an ephemeral store.
func NewStore(dbPath string) (*Store, error) {
	if dbPath != ":memory:" {
		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}
	return &Store{db: db, dbPath: dbPath}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// BeginBatch records the start of a run and returns its batch ID.
func (s *Store) BeginBatch(targetRoot string) (string, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(
		"INSERT INTO batches (id, target_root, started_at) VALUES (?, ?, ?)",
		id, targetRoot, time.Now().UTC(),
	)
	if err != nil {
		return "", fmt.Errorf("begin batch: %w", err)
	}
	return id, nil
}

// RecordMove appends one executed move to a batch.
func (s *Store) RecordMove(batchID, source, dest string) error {
	_, err := s.db.Exec(
		"INSERT INTO moves (batch_id, source, dest, moved_at) VALUES (?, ?, ?, ?)",
		batchID, source, dest, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("record move: %w", err)
	}
	return nil
}

// Batches returns the most recent batches, newest first, with their move
// counts. limit <= 0 returns all batches.
func (s *Store) Batches(limit int) ([]Batch, error) {
	query := `
		SELECT b.id, b.target_root, b.started_at, COUNT(m.id)
		FROM batches b
		LEFT JOIN moves m ON m.batch_id = b.id
		GROUP BY b.id
		ORDER BY b.started_at DESC, b.id DESC`
	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list batches: %w", err)
	}
	defer rows.Close()

	var batches []Batch
	for rows.Next() {
		var b Batch
		if err := rows.Scan(&b.ID, &b.TargetRoot, &b.StartedAt, &b.MoveCount); err != nil {
			return nil, fmt.Errorf("scan batch: %w", err)
		}
		batches = append(batches, b)
	}
	return batches, rows.Err()
}

// LatestBatch returns the ID of the most recently started batch.
// Returns an error if the journal is empty.
func (s *Store) LatestBatch() (string, error) {
	var id string
	err := s.db.QueryRow(
		"SELECT id FROM batches ORDER BY started_at DESC, id DESC LIMIT 1",
	).Scan(&id)
	if err == sql.ErrNoRows {
		return "", fmt.Errorf("history is empty")
	}
	if err != nil {
		return "", fmt.Errorf("latest batch: %w", err)
	}
	return id, nil
}

// Moves returns the moves of a batch in execution order.
func (s *Store) Moves(batchID string) ([]Move, error) {
	rows, err := s.db.Query(
		"SELECT id, batch_id, source, dest, moved_at FROM moves WHERE batch_id = ? ORDER BY id",
		batchID,
	)
	if err != nil {
		return nil, fmt.Errorf("list moves: %w", err)
	}
	defer rows.Close()

	var moves []Move
	for rows.Next() {
		var m Move
		if err := rows.Scan(&m.ID, &m.BatchID, &m.Source, &m.Dest, &m.MovedAt); err != nil {
			return nil, fmt.Errorf("scan move: %w", err)
		}
		moves = append(moves, m)
	}
	return moves, rows.Err()
}

// DeleteBatch removes a batch and its moves from the journal.
func (s *Store) DeleteBatch(batchID string) error {
	result, err := s.db.Exec("DELETE FROM batches WHERE id = ?", batchID)
	if err != nil {
		return fmt.Errorf("delete batch: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete batch: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("batch %s not found", batchID)
	}
	return nil
}
