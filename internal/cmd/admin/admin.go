package admin

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/Alihasantgs/Adminpanal/internal/services/admin"
)

const (
	defaultHTTPAddr   = ":8082"
	defaultAPIBaseURL = "http://localhost:3000"
)

// Config holds the admin command configuration.
type Config struct {
	HTTPAddr   string
	APIBaseURL string
}

// EnvLookup returns the value for a key when present.
type EnvLookup func(string) (string, bool)

// ParseConfig parses flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string, lookup EnvLookup) (Config, error) {
	cfg := Config{
		HTTPAddr:   envOrDefault(lookup, []string{"SUPERCLIP_ADMIN_ADDR"}, defaultHTTPAddr),
		APIBaseURL: envOrDefault(lookup, []string{"SUPERCLIP_API_URL"}, defaultAPIBaseURL),
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.APIBaseURL, "api-url", cfg.APIBaseURL, "SuperClip API base URL")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Run starts the admin server.
func Run(ctx context.Context, cfg Config) error {
	server, err := admin.NewServer(ctx, admin.Config{
		HTTPAddr:   cfg.HTTPAddr,
		APIBaseURL: cfg.APIBaseURL,
	})
	if err != nil {
		return fmt.Errorf("init admin server: %w", err)
	}
	defer server.Close()

	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve admin: %w", err)
	}
	return nil
}

func envOrDefault(lookup EnvLookup, keys []string, fallback string) string {
	for _, key := range keys {
		if lookup == nil {
			break
		}
		value, ok := lookup(key)
		if ok {
			trimmed := strings.TrimSpace(value)
			if trimmed != "" {
				return trimmed
			}
		}
	}
	return fallback
}
