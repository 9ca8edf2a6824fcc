// Package seeder defines the named seed units and the runner that executes
// them in dependency order: reference data first, then catalog, promotions,
// content, admin, and finally bulk customers.
package seeder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/goleaf/statybae-seeder/internal/identity"
	"github.com/goleaf/statybae-seeder/internal/progress"
	"github.com/goleaf/statybae-seeder/internal/reconcile"
	"github.com/goleaf/statybae-seeder/internal/schema"
	"github.com/goleaf/statybae-seeder/internal/translate"
	"github.com/goleaf/statybae-seeder/pkg/database"
	apperrors "github.com/goleaf/statybae-seeder/pkg/errors"
)

// Deps bundles the collaborators a seed unit works with. Units receive it
// read-only; all mutable state lives behind the reconciler and reporter.
type Deps struct {
	DB       database.DBTX
	Probe    *schema.Probe
	Rec      *reconcile.Reconciler
	Gen      *reconcile.Generator
	IDs      *identity.Resolver
	Reporter *progress.Reporter
	Logger   *slog.Logger

	Locales    []string
	BaseLocale string
	AppName    string
	AppURL     string

	CustomerCount    int
	CustomerDeadline time.Duration
}

// Unit is one independently invocable seeding step.
type Unit struct {
	Name string
	Run  func(ctx context.Context, d *Deps) error
}

// Units returns the full registry in dependency order.
func Units() []Unit {
	return []Unit{
		{Name: "reference", Run: seedReference},
		{Name: "catalog", Run: seedCatalog},
		{Name: "promotions", Run: seedPromotions},
		{Name: "content", Run: seedContent},
		{Name: "admin", Run: seedAdmin},
		{Name: "customers", Run: seedCustomers},
	}
}

// Runner executes seed units sequentially.
type Runner struct {
	deps  *Deps
	units []Unit
}

// NewRunner creates a Runner over the full unit registry.
func NewRunner(deps *Deps) *Runner {
	return &Runner{deps: deps, units: Units()}
}

// Run executes the selected units in registry order. An empty selection
// runs everything. Unknown unit names fail before anything is written.
func (r *Runner) Run(ctx context.Context, only []string) error {
	selected, err := r.selectUnits(only)
	if err != nil {
		return err
	}

	for _, unit := range selected {
		r.deps.Logger.InfoContext(ctx, "seed unit starting", slog.String("unit", unit.Name))
		start := time.Now()
		if err := unit.Run(ctx, r.deps); err != nil {
			return fmt.Errorf("seed unit %s: %w", unit.Name, err)
		}
		r.deps.Reporter.UnitDone(unit.Name, time.Since(start))
	}

	r.deps.Reporter.Summary()
	return nil
}

func (r *Runner) selectUnits(only []string) ([]Unit, error) {
	if len(only) == 0 {
		return r.units, nil
	}

	wanted := make(map[string]bool, len(only))
	for _, name := range only {
		wanted[name] = true
	}

	var selected []Unit
	for _, unit := range r.units {
		if wanted[unit.Name] {
			selected = append(selected, unit)
			delete(wanted, unit.Name)
		}
	}
	for name := range wanted {
		return nil, fmt.Errorf("unknown seed unit %q", name)
	}
	return selected, nil
}

// reconcile runs the upsert engine for one entity and records the outcome.
func (d *Deps) reconcile(ctx context.Context, entity string, spec reconcile.EntitySpec) (string, error) {
	id, created, err := d.Rec.Reconcile(ctx, spec)
	if err != nil {
		return "", err
	}
	if created {
		d.Reporter.Observe(entity, progress.OutcomeInserted)
	} else {
		d.Reporter.Observe(entity, progress.OutcomeUpdated)
	}
	return id, nil
}

// fanOutTranslations persists one translation row per supported locale for
// the given entity.
func (d *Deps) fanOutTranslations(ctx context.Context, entityType, entityID, canonicalSlug string, base translate.Fields, perLocale map[string]map[string]string) error {
	sources := make(map[string]translate.Fields, len(perLocale))
	for locale, fields := range perLocale {
		sources[locale] = translate.Fields(fields)
	}

	for _, tr := range translate.FanOut(base, canonicalSlug, d.BaseLocale, d.Locales, sources) {
		created, err := d.Gen.EnsureTranslation(ctx, entityType, entityID, tr)
		if err != nil {
			return err
		}
		if created {
			d.Reporter.Observe("translation", progress.OutcomeInserted)
		} else {
			d.Reporter.Observe("translation", progress.OutcomeUpdated)
		}
	}
	return nil
}

// seoFields builds the base-locale translatable fields with SEO meta
// stamped from the application identity.
func (d *Deps) seoFields(name, description string) translate.Fields {
	fields := translate.Fields{
		"name":      name,
		"seo_title": name + " | " + d.AppName,
	}
	if description != "" {
		fields["description"] = description
		fields["seo_description"] = description
	}
	return fields
}

// resolveRef finds the identity behind a natural key, first in the per-run
// memo, then in the database: a unit run with -only must still see rows
// seeded by an earlier run. A missing row yields ErrMissingReference.
func (d *Deps) resolveRef(ctx context.Context, table, keyColumn, key string) (string, error) {
	if id, ok := d.Rec.Resolved(table, key); ok {
		return id, nil
	}

	var id string
	err := d.DB.QueryRow(ctx,
		fmt.Sprintf(`SELECT id FROM %s WHERE %s = $1`, table, keyColumn), key,
	).Scan(&id)
	switch {
	case err == nil:
		return id, nil
	case errors.Is(err, pgx.ErrNoRows):
		return "", apperrors.MissingReference(table, key)
	default:
		return "", fmt.Errorf("resolve %s %q: %w", table, key, err)
	}
}

// skipMissing downgrades a missing-reference error to a warning and
// records the skip. Any other error is returned untouched.
func (d *Deps) skipMissing(ctx context.Context, entity string, err error) error {
	if err == nil {
		return nil
	}
	if apperrors.IsSkippable(err) {
		d.Logger.WarnContext(ctx, "skipping step with missing reference",
			slog.String("entity", entity),
			slog.String("reason", err.Error()),
		)
		d.Reporter.Observe(entity, progress.OutcomeSkipped)
		return nil
	}
	return err
}
