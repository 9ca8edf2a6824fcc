package reconcile

import (
	"context"
	"fmt"
)

// AttachPivot links leftID to each rightID through a pivot table with
// sync-without-detach semantics: missing links are added, existing links
// are never removed. Returns the number of links added.
func (g *Generator) AttachPivot(ctx context.Context, table, leftCol, rightCol, leftID string, rightIDs []string) (int, error) {
	existsQuery := fmt.Sprintf(
		`SELECT EXISTS(SELECT 1 FROM %s WHERE %s = $1 AND %s = $2)`,
		table, leftCol, rightCol,
	)
	insertQuery := fmt.Sprintf(
		`INSERT INTO %s (%s, %s, created_at) VALUES ($1, $2, $3)`,
		table, leftCol, rightCol,
	)

	added := 0
	for _, rightID := range rightIDs {
		var exists bool
		if err := g.db.QueryRow(ctx, existsQuery, leftID, rightID).Scan(&exists); err != nil {
			return added, fmt.Errorf("check pivot %s (%s, %s): %w", table, leftID, rightID, err)
		}
		if exists {
			continue
		}
		if _, err := g.db.Exec(ctx, insertQuery, leftID, rightID, g.now()); err != nil {
			return added, fmt.Errorf("attach pivot %s (%s, %s): %w", table, leftID, rightID, err)
		}
		added++
	}

	return added, nil
}

// EnsureVariantInventory seeds an initial stock row for a variant at a
// warehouse location. The discriminator is (variant_id, location_code);
// an existing row is never overwritten, so a reseed cannot clobber live
// stock levels.
func (g *Generator) EnsureVariantInventory(ctx context.Context, variantID, locationCode string, quantity int) (bool, error) {
	var exists bool
	err := g.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM variant_inventories WHERE variant_id = $1 AND location_code = $2)`,
		variantID, locationCode,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check inventory %s@%s: %w", variantID, locationCode, err)
	}
	if exists {
		return false, nil
	}

	now := g.now()
	_, err = g.db.Exec(ctx,
		`INSERT INTO variant_inventories (id, variant_id, location_code, quantity, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		g.newID(), variantID, locationCode, quantity, now, now,
	)
	if err != nil {
		return false, fmt.Errorf("insert inventory %s@%s: %w", variantID, locationCode, err)
	}
	return true, nil
}
