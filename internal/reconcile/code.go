package reconcile

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	apperrors "github.com/goleaf/statybae-seeder/pkg/errors"
)

// codeAlphabet excludes look-alike characters so printed vouchers survive
// manual entry.
const codeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

const (
	randomCodeLength = 10
	// maxCodeAttempts bounds candidate redraws per requested code. With a
	// 31^10 code space a collision streak this long does not happen in
	// practice; the cap exists so a degenerate store that always reports
	// "exists" fails instead of hanging.
	maxCodeAttempts = 100
)

// CodeOptions carries the non-key attributes of a redeemable code.
type CodeOptions struct {
	ExpiresAt *time.Time
	MaxUses   int
	Metadata  map[string]any
}

// EnsureCode inserts a redeemable code for a discount unless the code
// string is already taken anywhere in the system; codes are globally
// unique, not per-discount. Returns true when a row was inserted.
// usage_count always starts at zero; an existing row is left untouched.
func (g *Generator) EnsureCode(ctx context.Context, discountID, code string, opts CodeOptions) (bool, error) {
	var exists bool
	err := g.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM discount_codes WHERE code = $1)`,
		code,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check code %q: %w", code, err)
	}
	if exists {
		return false, nil
	}

	metadata := opts.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}
	metadataJSON, err := json.Marshal(metadata)
	if err != nil {
		return false, fmt.Errorf("marshal code metadata: %w", err)
	}

	now := g.now()
	_, err = g.db.Exec(ctx,
		`INSERT INTO discount_codes (id, discount_id, code, expires_at, max_uses, usage_count, metadata, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, 0, $6, $7, $8)`,
		g.newID(), discountID, code, opts.ExpiresAt, opts.MaxUses, metadataJSON, now, now,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return false, apperrors.AlreadyExists("code", "code", code)
		}
		return false, fmt.Errorf("insert code %q: %w", code, err)
	}
	return true, nil
}

// GenerateCodes bulk-creates count random codes for a discount, drawing
// candidates until an unused one is found. The loop is bounded by the
// requested quantity, with a per-code retry cap.
func (g *Generator) GenerateCodes(ctx context.Context, discountID string, count int, prefix string, opts CodeOptions) ([]string, error) {
	codes := make([]string, 0, count)

	for i := 0; i < count; i++ {
		var inserted bool
		for attempt := 0; attempt < maxCodeAttempts; attempt++ {
			candidate := prefix + g.randomCode()
			ok, err := g.EnsureCode(ctx, discountID, candidate, opts)
			if err != nil {
				return codes, err
			}
			if ok {
				codes = append(codes, candidate)
				inserted = true
				break
			}
		}
		if !inserted {
			return codes, apperrors.CodeSpaceExhausted(maxCodeAttempts)
		}
	}

	return codes, nil
}

func (g *Generator) randomCode() string {
	b := make([]byte, randomCodeLength)
	for i := range b {
		b[i] = codeAlphabet[g.rng.Intn(len(codeAlphabet))]
	}
	return string(b)
}
