// Package migrations embeds SQL migration files.
package migrations

import "embed"

// FS holds the embedded goose migrations.
//
//go:embed *.sql
var FS embed.FS
