// Package migrations embeds the goose SQL migrations for the relational
// side of the catalog: the card library, decks, recommendations and
// account routines.
package migrations

import "embed"

// Files holds the embedded SQL migration files.
//
//go:embed *.sql
var Files embed.FS
