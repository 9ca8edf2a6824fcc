package identity

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func deterministicResolver() *Resolver {
	return NewResolver(rand.New(rand.NewSource(1)))
}

func TestSlug_ExplicitWinsVerbatim(t *testing.T) {
	r := deterministicResolver()
	assert.Equal(t, "custom-slug", r.Slug("custom-slug", "Some Name"))
}

func TestSlug_DerivedFromName(t *testing.T) {
	r := deterministicResolver()
	assert.Equal(t, "statybines-medziagos", r.Slug("", "Statybinės medžiagos"))
	assert.Equal(t, "vip-12-off", r.Slug("", "VIP 12% Off"))
}

func TestSlug_RandomFallbackWhenNameEmpty(t *testing.T) {
	r := deterministicResolver()
	got := r.Slug("", "")
	assert.True(t, strings.HasPrefix(got, "gen-"), "got %q", got)
	assert.Len(t, got, len("gen-")+suffixLength)
}

func TestSlug_RandomFallbackWhenNameUnslugifiable(t *testing.T) {
	r := deterministicResolver()
	got := r.Slug("", "!!!")
	assert.True(t, strings.HasPrefix(got, "gen-"), "got %q", got)
}

func TestSlug_DeterministicWithSameSeed(t *testing.T) {
	a := NewResolver(rand.New(rand.NewSource(42)))
	b := NewResolver(rand.New(rand.NewSource(42)))
	assert.Equal(t, a.Slug("", ""), b.Slug("", ""))
}

func TestCode_ExplicitUpperCased(t *testing.T) {
	r := deterministicResolver()
	assert.Equal(t, "STUDENT15", r.Code("student15", "ignored"))
}

func TestCode_DerivedFromName(t *testing.T) {
	r := deterministicResolver()
	assert.Equal(t, "VIP-12-OFF", r.Code("", "VIP 12% Off"))
}

func TestCode_RandomFallback(t *testing.T) {
	r := deterministicResolver()
	got := r.Code("", "")
	assert.True(t, strings.HasPrefix(got, "GEN-"), "got %q", got)
	assert.Equal(t, strings.ToUpper(got), got)
}

func TestNewResolver_NilSource(t *testing.T) {
	r := NewResolver(nil)
	assert.NotEmpty(t, r.Slug("", ""))
}
