// Package migrations embeds the goose migration scripts.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
