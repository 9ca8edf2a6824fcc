package reconcile

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/goleaf/statybae-seeder/internal/translate"
)

// EnsureTranslation persists a fanned-out translation row under its
// (entity_type, entity_id, locale) composite key. Unlike the child
// generators, translations ARE overwritten on rerun: they track the parent
// entity's current definition. Returns true when a new row was inserted.
func (g *Generator) EnsureTranslation(ctx context.Context, entityType, entityID string, tr translate.Translation) (bool, error) {
	var id string
	err := g.db.QueryRow(ctx,
		`SELECT id FROM entity_translations WHERE entity_type = $1 AND entity_id = $2 AND locale = $3`,
		entityType, entityID, tr.Locale,
	).Scan(&id)

	switch {
	case err == nil:
		_, err = g.db.Exec(ctx,
			`UPDATE entity_translations
			 SET slug = $1, name = $2, description = $3, seo_title = $4, seo_description = $5, updated_at = $6
			 WHERE id = $7`,
			tr.Slug, tr.Fields["name"], tr.Fields["description"],
			tr.Fields["seo_title"], tr.Fields["seo_description"], g.now(), id,
		)
		if err != nil {
			return false, fmt.Errorf("update translation %s/%s %s: %w", entityType, entityID, tr.Locale, err)
		}
		return false, nil

	case errors.Is(err, pgx.ErrNoRows):
		now := g.now()
		_, err = g.db.Exec(ctx,
			`INSERT INTO entity_translations (id, entity_type, entity_id, locale, slug, name, description, seo_title, seo_description, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
			g.newID(), entityType, entityID, tr.Locale, tr.Slug,
			tr.Fields["name"], tr.Fields["description"],
			tr.Fields["seo_title"], tr.Fields["seo_description"], now, now,
		)
		if err != nil {
			return false, fmt.Errorf("insert translation %s/%s %s: %w", entityType, entityID, tr.Locale, err)
		}
		return true, nil

	default:
		return false, fmt.Errorf("lookup translation %s/%s %s: %w", entityType, entityID, tr.Locale, err)
	}
}
