// Package migrations ships the SQL schema of every supported driver inside the binary.
package migrations

import "embed"

//go:embed postgres/*.sql sqlite/*.sql
var FS embed.FS
