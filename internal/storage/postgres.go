// Package storage persists parse history in PostgreSQL.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ParseRecord is one stored parse result.
type ParseRecord struct {
	ID         int64           `json:"id"`
	UploadedAt time.Time       `json:"uploaded_at"`
	Filename   string          `json:"filename"`
	TargetName string          `json:"target_name"`
	WeekEnding *string         `json:"week_ending"`
	Record     json.RawMessage `json:"record"`
}

type DB struct {
	Pool *pgxpool.Pool
}

// NewDB creates a connection pool for the given URL. Connections are
// established lazily, so an unreachable database surfaces on first use
// rather than here.
func NewDB(connString string) (*DB, error) {
	pool, err := pgxpool.New(context.Background(), connString)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}
	return &DB{Pool: pool}, nil
}

// Init creates the history table if it does not exist yet.
func (db *DB) Init(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS parses (
			id          BIGSERIAL PRIMARY KEY,
			uploaded_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			filename    TEXT NOT NULL,
			target_name TEXT NOT NULL,
			week_ending TEXT,
			record      JSONB NOT NULL
		);
	`
	if _, err := db.Pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to create parses table: %w", err)
	}
	return nil
}

// SaveParse stores one successful parse.
func (db *DB) SaveParse(ctx context.Context, entry ParseRecord) error {
	query := `
		INSERT INTO parses (filename, target_name, week_ending, record)
		VALUES ($1, $2, $3, $4)
	`
	_, err := db.Pool.Exec(ctx, query,
		entry.Filename,
		entry.TargetName,
		entry.WeekEnding,
		entry.Record)
	if err != nil {
		return fmt.Errorf("failed to save parse: %w", err)
	}
	return nil
}

// History returns the most recent parses, newest first.
func (db *DB) History(ctx context.Context, limit int) ([]ParseRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `
		SELECT id, uploaded_at, filename, target_name, week_ending, record
		FROM parses
		ORDER BY uploaded_at DESC, id DESC
		LIMIT $1
	`
	rows, err := db.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	defer rows.Close()

	var entries []ParseRecord
	for rows.Next() {
		var entry ParseRecord
		if err := rows.Scan(
			&entry.ID,
			&entry.UploadedAt,
			&entry.Filename,
			&entry.TargetName,
			&entry.WeekEnding,
			&entry.Record,
		); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (db *DB) Close() {
	db.Pool.Close()
}
