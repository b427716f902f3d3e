// Package migrations embeds the SQL schema migrations for both storage
// backends. The migration runner reads them through fs.Sub per backend.
package migrations

import "embed"

//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS
