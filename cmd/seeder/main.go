package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/goleaf/statybae-seeder/internal/app"
	"github.com/goleaf/statybae-seeder/internal/config"
	"github.com/goleaf/statybae-seeder/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		slog.Error("seeding failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run() error {
	var only string
	flag.StringVar(&only, "only", "", "comma-separated subset of seed units to run (default: all, in dependency order)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New("statybae-seeder", cfg.LogLevel)
	log.Info("starting seeder",
		slog.String("environment", cfg.Environment),
		slog.Any("locales", cfg.Locales()),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application, err := app.NewApp(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer application.Close()

	return application.Run(ctx, splitUnits(only))
}

func splitUnits(raw string) []string {
	if raw == "" {
		return nil
	}
	var units []string
	for _, part := range strings.Split(raw, ",") {
		if name := strings.TrimSpace(part); name != "" {
			units = append(units, name)
		}
	}
	return units
}
