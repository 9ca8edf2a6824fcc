package reconcile

import (
	"context"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goleaf/statybae-seeder/internal/domain"
)

func TestEncodeConditionValue(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"string scalar", "vip", `"vip"`},
		{"integer threshold", 5000, `5000`},
		{"slug list", []string{"irankiai", "santechnika"}, `["irankiai","santechnika"]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeConditionValue(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEnsureCondition_InsertsWithDefaultOperator(t *testing.T) {
	g, mock := setupGenerator(t)

	mock.ExpectQuery("FROM discount_conditions WHERE discount_id").
		WithArgs("disc-1", domain.ConditionCustomerGroup, `"vip"`).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec("INSERT INTO discount_conditions").
		WithArgs("gen-001", "disc-1", domain.ConditionCustomerGroup,
			domain.OperatorEqualsTo, `"vip"`, 0, fixedNow, fixedNow).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	created, err := g.EnsureCondition(context.Background(), "disc-1", domain.ConditionDef{
		Type:  domain.ConditionCustomerGroup,
		Value: "vip",
	})

	require.NoError(t, err)
	assert.True(t, created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureCondition_NumericTypeDefaultsToGreaterThan(t *testing.T) {
	g, mock := setupGenerator(t)

	mock.ExpectQuery("FROM discount_conditions WHERE discount_id").
		WithArgs("disc-1", domain.ConditionCartTotal, `5000`).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec("INSERT INTO discount_conditions").
		WithArgs("gen-001", "disc-1", domain.ConditionCartTotal,
			domain.OperatorGreaterThan, `5000`, 1, fixedNow, fixedNow).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	created, err := g.EnsureCondition(context.Background(), "disc-1", domain.ConditionDef{
		Type:     domain.ConditionCartTotal,
		Value:    5000,
		Position: 1,
	})

	require.NoError(t, err)
	assert.True(t, created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureCondition_ExplicitOperatorWins(t *testing.T) {
	g, mock := setupGenerator(t)

	mock.ExpectQuery("FROM discount_conditions WHERE discount_id").
		WithArgs("disc-1", domain.ConditionItemQty, `3`).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec("INSERT INTO discount_conditions").
		WithArgs("gen-001", "disc-1", domain.ConditionItemQty,
			domain.OperatorEqualsTo, `3`, 0, fixedNow, fixedNow).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	created, err := g.EnsureCondition(context.Background(), "disc-1", domain.ConditionDef{
		Type:     domain.ConditionItemQty,
		Operator: domain.OperatorEqualsTo,
		Value:    3,
	})

	require.NoError(t, err)
	assert.True(t, created)
}

func TestEnsureCondition_SkipsDuplicateDiscriminator(t *testing.T) {
	g, mock := setupGenerator(t)

	mock.ExpectQuery("FROM discount_conditions WHERE discount_id").
		WithArgs("disc-1", domain.ConditionCustomerGroup, `"vip"`).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	created, err := g.EnsureCondition(context.Background(), "disc-1", domain.ConditionDef{
		Type:  domain.ConditionCustomerGroup,
		Value: "vip",
	})

	require.NoError(t, err)
	assert.False(t, created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureCondition_SameTypeDifferentValueInsertsBoth(t *testing.T) {
	g, mock := setupGenerator(t)

	mock.ExpectQuery("FROM discount_conditions WHERE discount_id").
		WithArgs("disc-1", domain.ConditionCategory, `"irankiai"`).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec("INSERT INTO discount_conditions").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectQuery("FROM discount_conditions WHERE discount_id").
		WithArgs("disc-1", domain.ConditionCategory, `"santechnika"`).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec("INSERT INTO discount_conditions").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	for _, slug := range []string{"irankiai", "santechnika"} {
		created, err := g.EnsureCondition(context.Background(), "disc-1", domain.ConditionDef{
			Type:  domain.ConditionCategory,
			Value: slug,
		})
		require.NoError(t, err)
		assert.True(t, created)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}
