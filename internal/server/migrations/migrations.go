// Package migrations embeds the goose SQL migrations for the metadata and
// counter tables.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
