package reconcile

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/goleaf/statybae-seeder/internal/domain"
)

// EncodeConditionValue canonically JSON-encodes a condition value. Scalars
// become JSON scalars, lists become JSON arrays. The stored string is also
// the comparison key for the exists check, so encoding must stay stable.
func EncodeConditionValue(v any) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode condition value: %w", err)
	}
	return string(raw), nil
}

// EnsureCondition attaches an eligibility predicate to a discount unless a
// condition with the same (type, value) discriminator already exists.
// Returns true when a row was inserted. An empty operator picks the default
// for the condition type: numeric types get greater_than, others equals_to.
func (g *Generator) EnsureCondition(ctx context.Context, discountID string, c domain.ConditionDef) (bool, error) {
	encoded, err := EncodeConditionValue(c.Value)
	if err != nil {
		return false, err
	}

	var exists bool
	err = g.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM discount_conditions WHERE discount_id = $1 AND type = $2 AND value = $3)`,
		discountID, c.Type, encoded,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check condition %s on discount %s: %w", c.Type, discountID, err)
	}
	if exists {
		return false, nil
	}

	operator := c.Operator
	if operator == "" {
		if domain.NumericConditionType(c.Type) {
			operator = domain.OperatorGreaterThan
		} else {
			operator = domain.OperatorEqualsTo
		}
	}

	now := g.now()
	_, err = g.db.Exec(ctx,
		`INSERT INTO discount_conditions (id, discount_id, type, operator, value, position, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		g.newID(), discountID, c.Type, operator, encoded, c.Position, now, now,
	)
	if err != nil {
		return false, fmt.Errorf("insert condition %s on discount %s: %w", c.Type, discountID, err)
	}
	return true, nil
}
