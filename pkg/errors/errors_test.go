package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Sentinel error identity ---

func TestSentinelErrors_AreDistinct(t *testing.T) {
	sentinels := []error{
		ErrNotFound, ErrAlreadyExists, ErrInvalidDefinition,
		ErrMissingReference, ErrCodeSpaceExhausted, ErrInternal,
	}

	for i := 0; i < len(sentinels); i++ {
		for j := i + 1; j < len(sentinels); j++ {
			assert.NotEqual(t, sentinels[i], sentinels[j],
				"sentinels %d and %d should be distinct", i, j)
		}
	}
}

// --- SeedError behavior ---

func TestSeedError_ErrorString_WithWrappedError(t *testing.T) {
	inner := fmt.Errorf("db connection lost")
	seedErr := &SeedError{Code: "INTERNAL_ERROR", Message: "something broke", Err: inner}
	assert.Contains(t, seedErr.Error(), "INTERNAL_ERROR")
	assert.Contains(t, seedErr.Error(), "something broke")
	assert.Contains(t, seedErr.Error(), "db connection lost")
}

func TestSeedError_ErrorString_WithoutWrappedError(t *testing.T) {
	seedErr := &SeedError{Code: "NOT_FOUND", Message: "discount not found"}
	assert.Equal(t, "NOT_FOUND: discount not found", seedErr.Error())
}

func TestSeedError_Unwrap(t *testing.T) {
	seedErr := &SeedError{Code: "NOT_FOUND", Message: "nope", Err: ErrNotFound}
	assert.True(t, errors.Is(seedErr, ErrNotFound))
}

func TestSeedError_Unwrap_Nil(t *testing.T) {
	seedErr := &SeedError{Code: "TEST", Message: "test"}
	assert.Nil(t, seedErr.Unwrap())
}

// --- Constructor functions ---

func TestNotFound(t *testing.T) {
	err := NotFound("discount", "vip-12-off")
	require.NotNil(t, err)
	assert.Equal(t, "NOT_FOUND", err.Code)
	assert.Contains(t, err.Message, "discount")
	assert.Contains(t, err.Message, "vip-12-off")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestAlreadyExists(t *testing.T) {
	err := AlreadyExists("code", "code", "STUDENT15")
	require.NotNil(t, err)
	assert.Equal(t, "ALREADY_EXISTS", err.Code)
	assert.Contains(t, err.Message, `"STUDENT15"`)
	assert.True(t, errors.Is(err, ErrAlreadyExists))
}

func TestMissingReference(t *testing.T) {
	err := MissingReference("customer group", "vip")
	require.NotNil(t, err)
	assert.Equal(t, "MISSING_REFERENCE", err.Code)
	assert.True(t, errors.Is(err, ErrMissingReference))
}

func TestCodeSpaceExhausted(t *testing.T) {
	err := CodeSpaceExhausted(100)
	require.NotNil(t, err)
	assert.Contains(t, err.Message, "100")
	assert.True(t, errors.Is(err, ErrCodeSpaceExhausted))
}

// --- Helpers ---

func TestWrap(t *testing.T) {
	inner := errors.New("boom")
	err := Wrap(inner, "seed catalog")
	assert.Contains(t, err.Error(), "seed catalog")
	assert.True(t, errors.Is(err, inner))
}

func TestIsSkippable(t *testing.T) {
	assert.True(t, IsSkippable(MissingReference("zone", "vilnius")))
	assert.True(t, IsSkippable(fmt.Errorf("attach: %w", ErrMissingReference)))
	assert.False(t, IsSkippable(ErrNotFound))
	assert.False(t, IsSkippable(nil))
}
