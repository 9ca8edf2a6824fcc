// Package migrations embeds the seeded schema. Later-numbered migrations
// add the optional columns the capability probe guards, so a database that
// stopped partway through is a supported state.
package migrations

import "embed"

//go:embed *.sql
var Files embed.FS
