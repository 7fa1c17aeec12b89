// Package migrations embeds the goose SQL migrations for the task board schema.
package migrations

import "embed"

// FS holds every migration file. Apply it with goose.SetBaseFS(FS) and directory ".".
//
//go:embed *.sql
var FS embed.FS
