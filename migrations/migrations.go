// Package migrations embeds the SQL migration files shipped with the server.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
