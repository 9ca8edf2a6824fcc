package reconcile

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/goleaf/statybae-seeder/pkg/database"
)

// Generator creates derived child records keyed off a reconciled parent:
// discount conditions, redeemable codes, translations, variant inventories,
// and pivot attachments. Every operation is skip-if-exists, so reruns never
// duplicate children.
type Generator struct {
	db    database.DBTX
	rng   *rand.Rand
	now   func() time.Time
	newID func() string
}

// GeneratorOption customizes a Generator.
type GeneratorOption func(*Generator)

// WithGeneratorClock overrides the timestamp source, for tests.
func WithGeneratorClock(now func() time.Time) GeneratorOption {
	return func(g *Generator) { g.now = now }
}

// WithGeneratorIDFunc overrides surrogate-ID generation, for tests.
func WithGeneratorIDFunc(fn func() string) GeneratorOption {
	return func(g *Generator) { g.newID = fn }
}

// NewGenerator creates a Generator. Pass a nil rng to use a time-seeded
// source; tests inject a fixed seed for deterministic code generation.
func NewGenerator(db database.DBTX, rng *rand.Rand, opts ...GeneratorOption) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	g := &Generator{
		db:    db,
		rng:   rng,
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}
