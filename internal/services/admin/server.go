package admin

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/Alihasantgs/Adminpanal/internal/platform/config"
	"github.com/Alihasantgs/Adminpanal/internal/platform/timeouts"
	adminsqlite "github.com/Alihasantgs/Adminpanal/internal/services/admin/storage/sqlite"
	"github.com/Alihasantgs/Adminpanal/internal/superclip"
)

// adminServerEnv captures startup defaults for the admin process.
type adminServerEnv struct {
	DBPath string `env:"SUPERCLIP_ADMIN_DB_PATH"`
}

func loadAdminServerEnv() adminServerEnv {
	var cfg adminServerEnv
	_ = config.ParseEnv(&cfg)
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join("data", "admin.db")
	}
	return cfg
}

// Config defines the inputs for the admin operator process.
type Config struct {
	// HTTPAddr is the listen address for the dashboard.
	HTTPAddr string
	// APIBaseURL locates the SuperClip backend the dashboard consumes.
	APIBaseURL string
}

// Server hosts the admin dashboard on top of the SuperClip API.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	sessions   *sessionStore
	store      *adminsqlite.Store
}

// NewServer builds a configured admin server.
func NewServer(ctx context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	apiBaseURL := strings.TrimSpace(cfg.APIBaseURL)
	if apiBaseURL == "" {
		return nil, errors.New("api base url is required")
	}

	adminEnv := loadAdminServerEnv()
	store, err := openAdminStore(adminEnv.DBPath)
	if err != nil {
		return nil, err
	}

	sessions := newSessionStore(store)
	client := superclip.NewClient(apiBaseURL, nil)
	// A rejected token invalidates every session that carries it, mirroring
	// the backend's own view of the credential.
	client.SetUnauthorizedHook(func(token string) {
		sessions.DeleteByToken(context.Background(), token)
	})

	handler := NewHandler(client, sessions)
	httpServer := &http.Server{
		Addr:              httpAddr,
		Handler:           handler,
		ReadHeaderTimeout: timeouts.ReadHeader,
	}

	return &Server{
		httpAddr:   httpAddr,
		httpServer: httpServer,
		sessions:   sessions,
		store:      store,
	}, nil
}

// ListenAndServe runs the HTTP server until the context ends.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("admin server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	serveErr := make(chan error, 1)
	log.Printf("admin listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close releases resources held by the server.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			log.Printf("close admin store: %v", err)
		}
	}
}

func openAdminStore(path string) (*adminsqlite.Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}

	store, err := adminsqlite.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open admin sqlite store: %w", err)
	}
	return store, nil
}
