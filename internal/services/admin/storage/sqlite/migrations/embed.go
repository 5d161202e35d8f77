// Package migrations embeds the admin SQLite schema migrations.
package migrations

import "embed"

// FS exposes the embedded migration files.
//
//go:embed *.sql
var FS embed.FS
