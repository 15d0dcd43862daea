// Package migrations embeds the versioned schema scripts.
package migrations

import "embed"

//go:embed sqlite/*.sql
var FS embed.FS
