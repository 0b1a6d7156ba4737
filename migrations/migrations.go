// Package migrations embeds the SQLite schema migration files.
package migrations

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed sqlite/*.sql
var FS embed.FS

// SQLiteFS returns the sqlite migration files rooted at their directory, the
// shape the migration runner expects.
func SQLiteFS() fs.FS {
	sub, err := fs.Sub(FS, "sqlite")
	if err != nil {
		// The embedded tree always contains sqlite/; a failure here means a
		// broken build, not a runtime condition.
		panic(fmt.Sprintf("embedded migrations missing: %v", err))
	}
	return sub
}
