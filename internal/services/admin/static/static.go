// Package static embeds the admin dashboard's stylesheet and scripts.
package static

import "embed"

//go:embed css js
var FS embed.FS
