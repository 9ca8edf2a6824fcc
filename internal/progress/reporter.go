// Package progress tracks per-entity seeding outcomes and exposes them as
// Prometheus metrics for one-shot batch runs.
package progress

import (
	"context"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

// Outcome classifies what the reconciler did with one entity.
type Outcome string

const (
	OutcomeInserted Outcome = "inserted"
	OutcomeUpdated  Outcome = "updated"
	OutcomeSkipped  Outcome = "skipped"
)

// Reporter accumulates seeding counters on a private registry so parallel
// test runs never fight over the global one. It is used from the single
// seeding goroutine and needs no locking beyond what the counters provide.
type Reporter struct {
	logger  *slog.Logger
	pushURL string

	registry *prometheus.Registry
	entities *prometheus.CounterVec
	units    *prometheus.GaugeVec

	tally map[Outcome]int
}

// NewReporter creates a Reporter. An empty pushURL disables the final
// Pushgateway push.
func NewReporter(logger *slog.Logger, pushURL string) *Reporter {
	registry := prometheus.NewRegistry()

	entities := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "seeder_entities_total",
			Help: "Entities processed by the seeder, by entity type and outcome",
		},
		[]string{"entity", "outcome"},
	)
	units := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "seeder_unit_duration_seconds",
			Help: "Wall-clock duration of each seed unit",
		},
		[]string{"unit"},
	)
	registry.MustRegister(entities, units)

	return &Reporter{
		logger:   logger,
		pushURL:  pushURL,
		registry: registry,
		entities: entities,
		units:    units,
		tally:    make(map[Outcome]int),
	}
}

// Observe records one reconciled entity.
func (r *Reporter) Observe(entity string, outcome Outcome) {
	r.entities.WithLabelValues(entity, string(outcome)).Inc()
	r.tally[outcome]++
}

// ObserveCount records a batch of entities with the same outcome.
func (r *Reporter) ObserveCount(entity string, outcome Outcome, n int) {
	if n <= 0 {
		return
	}
	r.entities.WithLabelValues(entity, string(outcome)).Add(float64(n))
	r.tally[outcome] += n
}

// UnitDone records a finished seed unit and logs its duration.
func (r *Reporter) UnitDone(unit string, elapsed time.Duration) {
	r.units.WithLabelValues(unit).Set(elapsed.Seconds())
	r.logger.Info("seed unit finished",
		slog.String("unit", unit),
		slog.Duration("elapsed", elapsed),
	)
}

// Progress logs bulk-generation progress at a coarse cadence: every 100
// records and at the end.
func (r *Reporter) Progress(unit string, current, total int) {
	if current%100 != 0 && current != total {
		return
	}
	r.logger.Info("seed progress",
		slog.String("unit", unit),
		slog.Int("current", current),
		slog.Int("total", total),
	)
}

// Tally returns the number of entities recorded with the given outcome.
func (r *Reporter) Tally(outcome Outcome) int {
	return r.tally[outcome]
}

// Summary logs the run totals.
func (r *Reporter) Summary() {
	r.logger.Info("seed run summary",
		slog.Int("inserted", r.tally[OutcomeInserted]),
		slog.Int("updated", r.tally[OutcomeUpdated]),
		slog.Int("skipped", r.tally[OutcomeSkipped]),
	)
}

// Gatherer exposes the private registry, for tests and for the push.
func (r *Reporter) Gatherer() prometheus.Gatherer {
	return r.registry
}

// Push sends the run's metrics to the configured Pushgateway. A push
// failure is reported but must not fail the run: the data is already in
// the database.
func (r *Reporter) Push(ctx context.Context) error {
	if r.pushURL == "" {
		return nil
	}
	err := push.New(r.pushURL, "statybae_seeder").
		Gatherer(r.registry).
		PushContext(ctx)
	if err != nil {
		r.logger.Warn("pushgateway push failed", slog.String("error", err.Error()))
		return err
	}
	return nil
}
