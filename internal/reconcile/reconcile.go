// Package reconcile implements the idempotent upsert engine at the heart of
// the seeder: natural-key lookup, update-in-place or insert, and generation
// of derived child records (conditions, codes, inventories, pivots).
package reconcile

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/goleaf/statybae-seeder/pkg/database"
)

// ColumnChecker reports whether an optional column exists on a table.
// *schema.Probe satisfies it; tests use a stub.
type ColumnChecker interface {
	HasColumn(ctx context.Context, table, column string) bool
}

// EntitySpec describes one entity to reconcile: where it lives, how it is
// identified, and what its row should look like.
type EntitySpec struct {
	// Table is the target table name (a trusted literal, never user input).
	Table string
	// KeyColumn holds the natural key, e.g. "slug" or "code".
	KeyColumn string
	// Key is the natural-key value. It is written on insert and never
	// touched on update.
	Key string
	// Payload maps column names to desired values.
	Payload map[string]any
	// OptionalPayload fields are written only when the backing column
	// exists per the schema capability probe.
	OptionalPayload map[string]any
}

// Reconciler is the upsert engine. It is owned by the single seeding
// goroutine; the memo map needs no locking.
type Reconciler struct {
	db    database.DBTX
	caps  ColumnChecker
	now   func() time.Time
	newID func() string
	memo  map[string]string
}

// Option customizes a Reconciler.
type Option func(*Reconciler)

// WithClock overrides the timestamp source, for tests.
func WithClock(now func() time.Time) Option {
	return func(r *Reconciler) { r.now = now }
}

// WithIDFunc overrides surrogate-ID generation, for tests.
func WithIDFunc(fn func() string) Option {
	return func(r *Reconciler) { r.newID = fn }
}

// New creates a Reconciler over the given connection and capability probe.
func New(db database.DBTX, caps ColumnChecker, opts ...Option) *Reconciler {
	r := &Reconciler{
		db:    db,
		caps:  caps,
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
		memo:  make(map[string]string),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Reconcile brings one row in line with the spec. It returns the row's
// identity and whether a new row was created. Re-invoking with the same
// (table, key) within a run is served from the memo, so downstream steps
// that re-reference an entity cannot double-insert it.
//
// Write failures propagate to the caller: seeding is human-supervised and
// fixed by rerunning, not by automatic retry.
func (r *Reconciler) Reconcile(ctx context.Context, spec EntitySpec) (string, bool, error) {
	memoKey := spec.Table + "\x00" + spec.Key
	if id, ok := r.memo[memoKey]; ok {
		return id, false, nil
	}

	columns, values := r.mergedPayload(ctx, spec)

	lookup := fmt.Sprintf(`SELECT id FROM %s WHERE %s = $1`, spec.Table, spec.KeyColumn)

	var id string
	err := r.db.QueryRow(ctx, lookup, spec.Key).Scan(&id)
	switch {
	case err == nil:
		if err := r.update(ctx, spec.Table, id, columns, values); err != nil {
			return "", false, err
		}
		r.memo[memoKey] = id
		return id, false, nil

	case errors.Is(err, pgx.ErrNoRows):
		id, err := r.insert(ctx, spec, columns, values)
		if err != nil {
			return "", false, err
		}
		r.memo[memoKey] = id
		return id, true, nil

	default:
		return "", false, fmt.Errorf("lookup %s %q: %w", spec.Table, spec.Key, err)
	}
}

// Resolved returns the memoized identity for a previously reconciled
// (table, key) pair, if any.
func (r *Reconciler) Resolved(table, key string) (string, bool) {
	id, ok := r.memo[table+"\x00"+key]
	return id, ok
}

// mergedPayload combines the unconditional payload with the optional
// fields whose backing column exists, in sorted column order so generated
// SQL is deterministic.
func (r *Reconciler) mergedPayload(ctx context.Context, spec EntitySpec) ([]string, []any) {
	merged := make(map[string]any, len(spec.Payload)+len(spec.OptionalPayload))
	for col, val := range spec.Payload {
		merged[col] = val
	}
	for col, val := range spec.OptionalPayload {
		if r.caps.HasColumn(ctx, spec.Table, col) {
			merged[col] = val
		}
	}

	columns := make([]string, 0, len(merged))
	for col := range merged {
		columns = append(columns, col)
	}
	sort.Strings(columns)

	values := make([]any, 0, len(columns))
	for _, col := range columns {
		values = append(values, merged[col])
	}
	return columns, values
}

// update merges the payload into the existing row. The natural key is not
// part of the update set: identity is immutable after creation.
func (r *Reconciler) update(ctx context.Context, table, id string, columns []string, values []any) error {
	sets := make([]string, 0, len(columns)+1)
	args := make([]any, 0, len(values)+2)
	for i, col := range columns {
		sets = append(sets, fmt.Sprintf("%s = $%d", col, i+1))
		args = append(args, values[i])
	}
	sets = append(sets, fmt.Sprintf("updated_at = $%d", len(columns)+1))
	args = append(args, r.now(), id)

	query := fmt.Sprintf(`UPDATE %s SET %s WHERE id = $%d`,
		table, strings.Join(sets, ", "), len(columns)+2)

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("update %s %s: %w", table, id, err)
	}
	return nil
}

func (r *Reconciler) insert(ctx context.Context, spec EntitySpec, columns []string, values []any) (string, error) {
	id := r.newID()
	now := r.now()

	allColumns := append([]string{"id", spec.KeyColumn}, columns...)
	allColumns = append(allColumns, "created_at", "updated_at")

	args := append([]any{id, spec.Key}, values...)
	args = append(args, now, now)

	placeholders := make([]string, len(allColumns))
	for i := range allColumns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s)`,
		spec.Table,
		strings.Join(allColumns, ", "),
		strings.Join(placeholders, ", "),
	)

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return "", fmt.Errorf("insert %s %q: %w", spec.Table, spec.Key, err)
	}
	return id, nil
}

// isUniqueViolation reports whether the error is a PostgreSQL unique
// constraint violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "23505")
}
