// Package migrations incrusta los scripts SQL versionados con goose.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
