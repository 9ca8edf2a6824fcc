package seeder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/goleaf/statybae-seeder/internal/progress"
)

const customerChunkSize = 100

var customerFirstNames = []string{
	"Jonas", "Mantas", "Tomas", "Lukas", "Darius",
	"Eglė", "Rūta", "Ieva", "Gabija", "Austėja",
}

var customerLastNames = []string{
	"Kazlauskas", "Petrauskas", "Jankauskas", "Stankevičius",
	"Urbonienė", "Paulauskienė", "Žukauskas", "Butkus",
}

// seedCustomers bulk-generates the configured number of demo customers in
// fixed-size chunks. Emails are deterministic per index and inserted with
// ON CONFLICT DO NOTHING, so a rerun is idempotent at the row level. The
// wall-clock deadline is checked between chunks: on expiry the unit stops
// enqueuing and returns cleanly with what was completed. A zero deadline
// disables the check.
func seedCustomers(ctx context.Context, d *Deps) error {
	total := d.CustomerCount
	if total == 0 {
		d.Logger.InfoContext(ctx, "customer generation disabled")
		return nil
	}

	deadline := time.Now().Add(d.CustomerDeadline)
	inserted := 0
	done := 0

	for done < total {
		if d.CustomerDeadline != 0 && time.Now().After(deadline) {
			d.Logger.WarnContext(ctx, "customer generation deadline reached",
				slog.Int("completed", done),
				slog.Int("target", total),
			)
			break
		}

		chunk := customerChunkSize
		if remaining := total - done; remaining < chunk {
			chunk = remaining
		}

		n, err := insertCustomerChunk(ctx, d, done, chunk)
		if err != nil {
			return fmt.Errorf("customer chunk at %d: %w", done, err)
		}
		inserted += n
		done += chunk
		d.Reporter.Progress("customers", done, total)
	}

	d.Reporter.ObserveCount("customer", progress.OutcomeInserted, inserted)
	d.Reporter.ObserveCount("customer", progress.OutcomeSkipped, done-inserted)
	return nil
}

// insertCustomerChunk queues one pgx batch of inserts starting at the
// given index and returns how many rows were actually inserted (conflicts
// count as zero).
func insertCustomerChunk(ctx context.Context, d *Deps, start, size int) (int, error) {
	now := time.Now().UTC()
	batch := &pgx.Batch{}

	for i := start; i < start+size; i++ {
		first := customerFirstNames[i%len(customerFirstNames)]
		last := customerLastNames[(i/len(customerFirstNames))%len(customerLastNames)]
		email := fmt.Sprintf("klientas-%05d@pastas.statybae.lt", i+1)
		group := customerGroupFor(i)

		batch.Queue(
			`INSERT INTO customers (id, email, first_name, last_name, group_code, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)
			 ON CONFLICT (email) DO NOTHING`,
			uuid.NewString(), email, first, last, group, now, now,
		)
	}

	results := d.DB.SendBatch(ctx, batch)
	defer results.Close()

	inserted := 0
	for i := 0; i < size; i++ {
		tag, err := results.Exec()
		if err != nil {
			return inserted, err
		}
		inserted += int(tag.RowsAffected())
	}
	return inserted, nil
}

// customerGroupFor spreads demo customers over the seeded groups: most are
// retail, every tenth is VIP, every twenty-fifth wholesale.
func customerGroupFor(i int) string {
	switch {
	case i%25 == 0:
		return "wholesale"
	case i%10 == 0:
		return "vip"
	default:
		return "retail"
	}
}
