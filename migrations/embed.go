// Package migrations holds the schema, applied in file name order by cmd/migrate.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
