package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/Alihasantgs/Adminpanal/internal/services/admin/storage"
)

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open(""); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestPutSessionRoundTrip(t *testing.T) {
	store := openTempStore(t)

	createdAt := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	record := storage.SessionRecord{
		ID:        "session-1",
		Token:     "tok-1",
		UserID:    "u1",
		UserEmail: "admin@superclip.com",
		UserName:  "Admin",
		CreatedAt: createdAt,
		ExpiresAt: createdAt.Add(24 * time.Hour),
	}
	if err := store.PutSession(context.Background(), record); err != nil {
		t.Fatalf("put session: %v", err)
	}

	loaded, err := store.GetSession(context.Background(), "session-1")
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if loaded.Token != "tok-1" || loaded.UserEmail != "admin@superclip.com" {
		t.Fatalf("loaded = %+v, want stored token and email", loaded)
	}
	if !loaded.CreatedAt.Equal(createdAt) {
		t.Fatalf("created_at = %v, want %v", loaded.CreatedAt, createdAt)
	}
	if !loaded.ExpiresAt.Equal(createdAt.Add(24 * time.Hour)) {
		t.Fatalf("expires_at = %v, want created_at + 24h", loaded.ExpiresAt)
	}
}

func TestGetSessionMissingReturnsNotFound(t *testing.T) {
	store := openTempStore(t)

	if _, err := store.GetSession(context.Background(), "absent"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("error = %v, want storage.ErrNotFound", err)
	}
}

func TestPutSessionValidation(t *testing.T) {
	store := openTempStore(t)

	if err := store.PutSession(context.Background(), storage.SessionRecord{Token: "tok"}); err == nil {
		t.Fatal("expected error for empty session id")
	}
	if err := store.PutSession(context.Background(), storage.SessionRecord{ID: "s"}); err == nil {
		t.Fatal("expected error for empty token")
	}
}

func TestDeleteSessionIsIdempotent(t *testing.T) {
	store := openTempStore(t)

	record := storage.SessionRecord{ID: "session-2", Token: "tok-2", ExpiresAt: time.Now().Add(time.Hour)}
	if err := store.PutSession(context.Background(), record); err != nil {
		t.Fatalf("put session: %v", err)
	}
	if err := store.DeleteSession(context.Background(), "session-2"); err != nil {
		t.Fatalf("delete session: %v", err)
	}
	if err := store.DeleteSession(context.Background(), "session-2"); err != nil {
		t.Fatalf("delete absent session: %v", err)
	}
	if _, err := store.GetSession(context.Background(), "session-2"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("error = %v, want storage.ErrNotFound after delete", err)
	}
}

func TestDeleteSessionsByToken(t *testing.T) {
	store := openTempStore(t)

	expires := time.Now().Add(time.Hour)
	for _, id := range []string{"a", "b"} {
		record := storage.SessionRecord{ID: id, Token: "shared-token", ExpiresAt: expires}
		if err := store.PutSession(context.Background(), record); err != nil {
			t.Fatalf("put session %s: %v", id, err)
		}
	}
	keep := storage.SessionRecord{ID: "c", Token: "other-token", ExpiresAt: expires}
	if err := store.PutSession(context.Background(), keep); err != nil {
		t.Fatalf("put session c: %v", err)
	}

	if err := store.DeleteSessionsByToken(context.Background(), "shared-token"); err != nil {
		t.Fatalf("delete sessions by token: %v", err)
	}

	for _, id := range []string{"a", "b"} {
		if _, err := store.GetSession(context.Background(), id); !errors.Is(err, storage.ErrNotFound) {
			t.Fatalf("session %s error = %v, want storage.ErrNotFound", id, err)
		}
	}
	if _, err := store.GetSession(context.Background(), "c"); err != nil {
		t.Fatalf("session c should survive: %v", err)
	}
}

func TestDeleteExpiredSessions(t *testing.T) {
	store := openTempStore(t)

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	stale := storage.SessionRecord{ID: "stale", Token: "t1", CreatedAt: now.Add(-2 * time.Hour), ExpiresAt: now.Add(-time.Hour)}
	fresh := storage.SessionRecord{ID: "fresh", Token: "t2", CreatedAt: now, ExpiresAt: now.Add(time.Hour)}
	for _, record := range []storage.SessionRecord{stale, fresh} {
		if err := store.PutSession(context.Background(), record); err != nil {
			t.Fatalf("put session %s: %v", record.ID, err)
		}
	}

	if err := store.DeleteExpiredSessions(context.Background(), now); err != nil {
		t.Fatalf("delete expired: %v", err)
	}

	if _, err := store.GetSession(context.Background(), "stale"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("stale session error = %v, want storage.ErrNotFound", err)
	}
	if _, err := store.GetSession(context.Background(), "fresh"); err != nil {
		t.Fatalf("fresh session should survive: %v", err)
	}
}

func TestStoreMethodsRequireStore(t *testing.T) {
	var store *Store
	if err := store.PutSession(context.Background(), storage.SessionRecord{ID: "s", Token: "t"}); err == nil {
		t.Fatal("expected error for nil store")
	}
	if _, err := store.GetSession(context.Background(), "s"); err == nil {
		t.Fatal("expected error for nil store")
	}
}

func openTempStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "admin.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil && err != sql.ErrConnDone {
			t.Fatalf("close store: %v", err)
		}
	})
	return store
}
