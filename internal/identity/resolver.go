// Package identity computes stable natural keys (slugs, codes) for seeded
// entities so repeated runs match existing rows instead of duplicating them.
package identity

import (
	"math/rand"
	"strings"
	"time"

	"github.com/goleaf/statybae-seeder/pkg/slug"
)

// suffixAlphabet excludes look-alike characters (0/O, 1/I/L) so generated
// keys survive being read aloud or retyped by an operator.
const suffixAlphabet = "abcdefghjkmnpqrstuvwxyz23456789"

const suffixLength = 6

// Resolver derives natural keys from seed definitions. The random source
// is injected so tests can run deterministically; NewResolver(nil) seeds
// from the clock for production use.
type Resolver struct {
	rng *rand.Rand
}

// NewResolver creates a resolver. Pass nil to use a time-seeded source.
func NewResolver(rng *rand.Rand) *Resolver {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Resolver{rng: rng}
}

// Slug resolves the natural slug for an entity. An explicit slug wins
// verbatim; otherwise the name is slugified; a nameless definition gets a
// random suffix so the key is never empty.
func (r *Resolver) Slug(explicit, name string) string {
	if explicit != "" {
		return explicit
	}
	if s := slug.Generate(name); s != "" {
		return s
	}
	return "gen-" + r.randomSuffix()
}

// Code resolves the natural code for a discount or similar coded entity.
// Codes are upper-cased slugs: "VIP 12% Off" becomes "VIP-12-OFF".
func (r *Resolver) Code(explicit, name string) string {
	if explicit != "" {
		return strings.ToUpper(explicit)
	}
	if s := slug.Generate(name); s != "" {
		return strings.ToUpper(s)
	}
	return "GEN-" + strings.ToUpper(r.randomSuffix())
}

func (r *Resolver) randomSuffix() string {
	b := make([]byte, suffixLength)
	for i := range b {
		b[i] = suffixAlphabet[r.rng.Intn(len(suffixAlphabet))]
	}
	return string(b)
}
