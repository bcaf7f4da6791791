// Package usermeta holds assets shared by the service binaries.
package usermeta

import "embed"

// Migrations contains the goose SQL migrations applied by the migrate command.
//
//go:embed migrations/*.sql
var Migrations embed.FS
