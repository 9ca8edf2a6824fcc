// Package schema probes the target database for optional tables and columns
// so seeding can degrade gracefully on partially-migrated schemas.
package schema

import (
	"context"
	"log/slog"

	"github.com/goleaf/statybae-seeder/pkg/database"
)

const (
	tableExistsQuery = `
		SELECT EXISTS (
			SELECT 1 FROM information_schema.tables
			WHERE table_schema = 'public' AND table_name = $1
		)`

	columnExistsQuery = `
		SELECT EXISTS (
			SELECT 1 FROM information_schema.columns
			WHERE table_schema = 'public' AND table_name = $1 AND column_name = $2
		)`
)

// Probe answers table/column existence questions against information_schema.
// Results are memoized for the lifetime of the probe (one seeding run), and
// any introspection failure is folded to false: a column we cannot confirm
// is a column we must not write. The probe is owned by the single seeding
// goroutine and needs no locking.
type Probe struct {
	db      database.DBTX
	logger  *slog.Logger
	tables  map[string]bool
	columns map[string]bool
}

// NewProbe creates a probe bound to the given connection.
func NewProbe(db database.DBTX, logger *slog.Logger) *Probe {
	return &Probe{
		db:      db,
		logger:  logger,
		tables:  make(map[string]bool),
		columns: make(map[string]bool),
	}
}

// HasTable reports whether the given table exists in the public schema.
func (p *Probe) HasTable(ctx context.Context, table string) bool {
	if cached, ok := p.tables[table]; ok {
		return cached
	}

	var exists bool
	if err := p.db.QueryRow(ctx, tableExistsQuery, table).Scan(&exists); err != nil {
		p.logger.Debug("table probe failed, treating as absent",
			slog.String("table", table),
			slog.String("error", err.Error()),
		)
		exists = false
	}

	p.tables[table] = exists
	return exists
}

// HasColumn reports whether the given column exists on the given table.
func (p *Probe) HasColumn(ctx context.Context, table, column string) bool {
	key := table + "." + column
	if cached, ok := p.columns[key]; ok {
		return cached
	}

	var exists bool
	if err := p.db.QueryRow(ctx, columnExistsQuery, table, column).Scan(&exists); err != nil {
		p.logger.Debug("column probe failed, treating as absent",
			slog.String("table", table),
			slog.String("column", column),
			slog.String("error", err.Error()),
		)
		exists = false
	}

	p.columns[key] = exists
	return exists
}
