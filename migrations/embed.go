// Package migrations embeds the SQL schema for the sqlite and postgres backends.
package migrations

import "embed"

//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS
