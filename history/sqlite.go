package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS stego_history (
  id TEXT PRIMARY KEY,
  type TEXT NOT NULL,
  mode TEXT NOT NULL,
  has_password INTEGER NOT NULL DEFAULT 0,
  content_length INTEGER NOT NULL,
  message_length INTEGER NOT NULL,
  created_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS stego_history_created_at ON stego_history (created_at);
`

// SQLiteStore persists records in a SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore returns a store bound to db. Call Migrate before use on a
// fresh database.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// OpenSQLite opens the database at dsn and creates the history table.
func OpenSQLite(ctx context.Context, dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	s := NewSQLiteStore(db)
	if err := s.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Migrate creates the history table if it does not exist.
func (s *SQLiteStore) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create history table: %w", err)
	}
	return nil
}

// Record inserts r.
func (s *SQLiteStore) Record(ctx context.Context, r Record) error {
	query := `INSERT INTO stego_history (id, type, mode, has_password, content_length, message_length, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, query,
		r.ID, r.Type, string(r.Mode), r.HasPassword, r.ContentLength, r.MessageLength, r.Timestamp.UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to insert history record: %w", err)
	}
	return nil
}

// List returns records newest first.
func (s *SQLiteStore) List(ctx context.Context, limit int) ([]Record, error) {
	query := `SELECT id, type, mode, has_password, content_length, message_length, created_at
			FROM stego_history ORDER BY created_at DESC, rowid DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select history records: %w", err)
	}
	defer rows.Close()

	var result []Record
	for rows.Next() {
		var (
			r    Record
			mode string
			ms   int64
		)
		if err := rows.Scan(&r.ID, &r.Type, &mode, &r.HasPassword, &r.ContentLength, &r.MessageLength, &ms); err != nil {
			return nil, err
		}
		r.Mode = Mode(mode)
		r.Timestamp = time.UnixMilli(ms)
		result = append(result, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Clear deletes every record.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM stego_history`); err != nil {
		return fmt.Errorf("failed to clear history records: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
