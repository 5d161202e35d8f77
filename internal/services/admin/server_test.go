package admin

import (
	"context"
	"path/filepath"
	"testing"
)

func TestNewServerRequiresHTTPAddr(t *testing.T) {
	t.Parallel()

	_, err := NewServer(context.Background(), Config{APIBaseURL: "http://localhost:3000"})
	if err == nil {
		t.Fatal("expected an error for a missing http address")
	}
}

func TestNewServerRequiresAPIBaseURL(t *testing.T) {
	t.Parallel()

	_, err := NewServer(context.Background(), Config{HTTPAddr: ":0"})
	if err == nil {
		t.Fatal("expected an error for a missing api base url")
	}
}

func TestNewServerOpensStore(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "admin.db")
	t.Setenv("SUPERCLIP_ADMIN_DB_PATH", dbPath)

	server, err := NewServer(context.Background(), Config{
		HTTPAddr:   ":0",
		APIBaseURL: "http://localhost:3000",
	})
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	defer server.Close()

	if server.httpServer == nil {
		t.Fatal("expected a configured http server")
	}
	if server.store == nil {
		t.Fatal("expected an open session store")
	}
}

func TestNilServerIsSafe(t *testing.T) {
	t.Parallel()

	var server *Server
	if err := server.ListenAndServe(context.Background()); err == nil {
		t.Fatal("expected an error from a nil server")
	}
	server.Close()
}
