// Package newsletter is the module root; it only carries the embedded
// database migrations so they ship inside the binary.
package newsletter

import "embed"

// Migrations holds the goose SQL migrations applied by the migrate command.
//
//go:embed migrations/*.sql
var Migrations embed.FS
