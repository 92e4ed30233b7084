// Package migrations embeds the versioned schema migrations applied by
// postgres.Migrate and the migrate command.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
