// Package app wires the seeder's dependency graph and drives one run.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/goleaf/statybae-seeder/internal/cache"
	"github.com/goleaf/statybae-seeder/internal/config"
	"github.com/goleaf/statybae-seeder/internal/event"
	"github.com/goleaf/statybae-seeder/internal/identity"
	"github.com/goleaf/statybae-seeder/internal/progress"
	"github.com/goleaf/statybae-seeder/internal/reconcile"
	"github.com/goleaf/statybae-seeder/internal/schema"
	"github.com/goleaf/statybae-seeder/internal/seeder"
	"github.com/goleaf/statybae-seeder/migrations"
	"github.com/goleaf/statybae-seeder/pkg/database"
	pkgkafka "github.com/goleaf/statybae-seeder/pkg/kafka"
)

// App owns the connections and collaborators for one seeding run.
type App struct {
	cfg      *config.Config
	logger   *slog.Logger
	pool     *pgxpool.Pool
	reporter *progress.Reporter
	runner   *seeder.Runner
	events   *event.Producer
	inval    *cache.Invalidator
}

// NewApp connects to PostgreSQL, applies migrations, and builds the
// dependency graph. Kafka and Redis are wired only when configured.
func NewApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	pgCfg := cfg.Postgres()
	pool, err := database.NewPostgresPool(connectCtx, &pgCfg, logger)
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}
	logger.Info("connected to PostgreSQL",
		slog.String("host", cfg.PostgresHost),
		slog.String("database", cfg.PostgresDB),
	)

	if err := database.RunMigrations(ctx, pool, migrations.Files, logger); err != nil {
		pool.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	probe := schema.NewProbe(pool, logger)
	reporter := progress.NewReporter(logger, cfg.PushgatewayURL)

	deps := &seeder.Deps{
		DB:               pool,
		Probe:            probe,
		Rec:              reconcile.New(pool, probe),
		Gen:              reconcile.NewGenerator(pool, nil),
		IDs:              identity.NewResolver(nil),
		Reporter:         reporter,
		Logger:           logger,
		Locales:          cfg.Locales(),
		BaseLocale:       cfg.BaseLocale(),
		AppName:          cfg.AppName,
		AppURL:           cfg.AppURL,
		CustomerCount:    cfg.CustomerCount,
		CustomerDeadline: cfg.CustomerDeadline,
	}

	app := &App{
		cfg:      cfg,
		logger:   logger,
		pool:     pool,
		reporter: reporter,
		runner:   seeder.NewRunner(deps),
	}

	if cfg.KafkaEnabled() {
		producer := pkgkafka.NewProducer(pkgkafka.DefaultProducerConfig(cfg.KafkaBrokers), logger)
		app.events = event.NewProducer(producer, cfg.KafkaTopic, logger)
		logger.Info("kafka producer initialized", slog.Any("brokers", cfg.KafkaBrokers))
	}

	if cfg.RedisEnabled() {
		client, err := database.NewRedisClient(connectCtx, cfg.Redis())
		if err != nil {
			// Cache invalidation is best-effort; the seed itself must not
			// depend on the cache being reachable.
			logger.Warn("redis unavailable, cache invalidation disabled",
				slog.String("error", err.Error()))
		} else {
			app.inval = cache.NewInvalidator(client, logger)
		}
	}

	return app, nil
}

// Run executes the selected seed units, then the post-run steps: cache
// invalidation, the seed.completed event, and the metrics push.
func (a *App) Run(ctx context.Context, only []string) error {
	runID := uuid.NewString()
	a.logger.Info("seed run starting",
		slog.String("run_id", runID),
		slog.Any("units", only),
	)
	startedAt := time.Now().UTC()

	if err := a.runner.Run(ctx, only); err != nil {
		return err
	}

	if dropped, err := a.inval.InvalidateSeeded(ctx); err != nil {
		a.logger.Warn("cache invalidation incomplete",
			slog.Int("dropped", dropped),
			slog.String("error", err.Error()))
	}

	if a.events != nil {
		unitNames := only
		if len(unitNames) == 0 {
			for _, unit := range seeder.Units() {
				unitNames = append(unitNames, unit.Name)
			}
		}
		err := a.events.PublishSeedCompleted(ctx, event.SeedCompletedData{
			RunID:      runID,
			Units:      unitNames,
			Inserted:   a.reporter.Tally(progress.OutcomeInserted),
			Updated:    a.reporter.Tally(progress.OutcomeUpdated),
			Skipped:    a.reporter.Tally(progress.OutcomeSkipped),
			StartedAt:  startedAt,
			FinishedAt: time.Now().UTC(),
		})
		if err != nil {
			a.logger.Warn("seed event publish failed", slog.String("error", err.Error()))
		}
	}

	// Metrics are advisory; a push failure is already logged.
	_ = a.reporter.Push(ctx)

	return nil
}

// Close releases all connections.
func (a *App) Close() {
	if err := a.events.Close(); err != nil {
		a.logger.Warn("close kafka producer", slog.String("error", err.Error()))
	}
	if err := a.inval.Close(); err != nil {
		a.logger.Warn("close redis client", slog.String("error", err.Error()))
	}
	a.pool.Close()
}
