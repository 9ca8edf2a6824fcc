package seeder

import (
	"context"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goleaf/statybae-seeder/internal/progress"
)

func TestSeedFeatureFlags_TableMissingSkipsAll(t *testing.T) {
	deps, mock := testDeps(t)

	// Only the table probe runs; no flag rows are touched.
	mock.ExpectQuery("information_schema.tables").
		WithArgs("feature_flags").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

	err := seedFeatureFlags(context.Background(), deps)

	require.NoError(t, err)
	assert.Equal(t, len(adminFeatureFlags()), deps.Reporter.Tally(progress.OutcomeSkipped))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedFeatureFlags_TablePresentReconcilesEachFlag(t *testing.T) {
	deps, mock := testDeps(t)

	mock.ExpectQuery("information_schema.tables").
		WithArgs("feature_flags").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	for i, flag := range adminFeatureFlags() {
		id := string(rune('a' + i))
		mock.ExpectQuery("SELECT id FROM feature_flags").
			WithArgs(flag.Key).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(id))
		mock.ExpectExec("UPDATE feature_flags SET").
			WithArgs(flag.Description, flag.Enabled, pgxmock.AnyArg(), id).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	}

	err := seedFeatureFlags(context.Background(), deps)

	require.NoError(t, err)
	assert.Equal(t, len(adminFeatureFlags()), deps.Reporter.Tally(progress.OutcomeUpdated))
	assert.Zero(t, deps.Reporter.Tally(progress.OutcomeSkipped))
	assert.NoError(t, mock.ExpectationsWereMet())
}
