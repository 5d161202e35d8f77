package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sqlitemigrate "github.com/Alihasantgs/Adminpanal/internal/platform/storage/sqlitemigrate"
	"github.com/Alihasantgs/Adminpanal/internal/services/admin/storage"
	"github.com/Alihasantgs/Adminpanal/internal/services/admin/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

const timeFormat = time.RFC3339Nano

// Store provides a SQLite-backed store implementing admin storage interfaces.
type Store struct {
	sqlDB *sql.DB
}

// Open opens a SQLite store at the provided path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &Store{sqlDB: sqlDB}
	if err := store.runMigrations(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return store, nil
}

// Close closes the underlying SQLite database.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// runMigrations runs embedded SQL migrations.
func (s *Store) runMigrations() error {
	return sqlitemigrate.ApplyMigrations(s.sqlDB, migrations.FS, "")
}

// PutSession persists an operator session record, replacing any previous row.
func (s *Store) PutSession(ctx context.Context, record storage.SessionRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(record.ID) == "" {
		return fmt.Errorf("session id is required")
	}
	if strings.TrimSpace(record.Token) == "" {
		return fmt.Errorf("session token is required")
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	_, err := s.sqlDB.ExecContext(ctx, `
INSERT OR REPLACE INTO operator_sessions
    (session_id, token, user_id, user_email, user_name, created_at, expires_at)
VALUES (?, ?, ?, ?, ?, ?, ?)`,
		record.ID,
		record.Token,
		record.UserID,
		record.UserEmail,
		record.UserName,
		record.CreatedAt.UTC().Format(timeFormat),
		record.ExpiresAt.UTC().Format(timeFormat),
	)
	if err != nil {
		return fmt.Errorf("put session: %w", err)
	}
	return nil
}

// GetSession loads one operator session record.
func (s *Store) GetSession(ctx context.Context, sessionID string) (storage.SessionRecord, error) {
	if err := ctx.Err(); err != nil {
		return storage.SessionRecord{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.SessionRecord{}, fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(sessionID) == "" {
		return storage.SessionRecord{}, fmt.Errorf("session id is required")
	}

	row := s.sqlDB.QueryRowContext(ctx, `
SELECT session_id, token, user_id, user_email, user_name, created_at, expires_at
FROM operator_sessions WHERE session_id = ?`, sessionID)

	var record storage.SessionRecord
	var createdAt, expiresAt string
	err := row.Scan(
		&record.ID,
		&record.Token,
		&record.UserID,
		&record.UserEmail,
		&record.UserName,
		&createdAt,
		&expiresAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return storage.SessionRecord{}, storage.ErrNotFound
		}
		return storage.SessionRecord{}, fmt.Errorf("get session: %w", err)
	}

	if record.CreatedAt, err = parseTime(createdAt); err != nil {
		return storage.SessionRecord{}, fmt.Errorf("parse session created_at: %w", err)
	}
	if record.ExpiresAt, err = parseTime(expiresAt); err != nil {
		return storage.SessionRecord{}, fmt.Errorf("parse session expires_at: %w", err)
	}
	return record, nil
}

// DeleteSession removes one operator session record. Missing rows are a no-op.
func (s *Store) DeleteSession(ctx context.Context, sessionID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(sessionID) == "" {
		return fmt.Errorf("session id is required")
	}

	if _, err := s.sqlDB.ExecContext(ctx, "DELETE FROM operator_sessions WHERE session_id = ?", sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// DeleteSessionsByToken removes every session holding the given backend token.
func (s *Store) DeleteSessionsByToken(ctx context.Context, token string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(token) == "" {
		return nil
	}

	if _, err := s.sqlDB.ExecContext(ctx, "DELETE FROM operator_sessions WHERE token = ?", token); err != nil {
		return fmt.Errorf("delete sessions by token: %w", err)
	}
	return nil
}

// DeleteExpiredSessions removes sessions whose expiry is at or before cutoff.
func (s *Store) DeleteExpiredSessions(ctx context.Context, cutoff time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if cutoff.IsZero() {
		cutoff = time.Now().UTC()
	}

	if _, err := s.sqlDB.ExecContext(ctx, "DELETE FROM operator_sessions WHERE expires_at <= ?", cutoff.UTC().Format(timeFormat)); err != nil {
		return fmt.Errorf("delete expired sessions: %w", err)
	}
	return nil
}

func parseTime(value string) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return time.Time{}, nil
	}
	return time.Parse(timeFormat, value)
}

var _ storage.Store = (*Store)(nil)
