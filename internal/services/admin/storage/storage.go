package storage

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound indicates a session record does not exist.
var ErrNotFound = errors.New("storage: not found")

// SessionRecord is a persisted operator session.
type SessionRecord struct {
	ID        string
	Token     string
	UserID    string
	UserEmail string
	UserName  string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// SessionStore persists operator session records across restarts.
type SessionStore interface {
	PutSession(ctx context.Context, record SessionRecord) error
	GetSession(ctx context.Context, sessionID string) (SessionRecord, error)
	DeleteSession(ctx context.Context, sessionID string) error
	DeleteSessionsByToken(ctx context.Context, token string) error
	DeleteExpiredSessions(ctx context.Context, cutoff time.Time) error
}

// Store is a composite interface for admin storage concerns.
type Store interface {
	SessionStore
	Close() error
}
