package reconcile

import (
	"context"
	"fmt"
	"math/rand"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goleaf/statybae-seeder/pkg/database"
)

func setupGenerator(t *testing.T) (*Generator, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := database.NewMockPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	seq := 0
	g := NewGenerator(mock, rand.New(rand.NewSource(42)),
		WithGeneratorClock(func() time.Time { return fixedNow }),
		WithGeneratorIDFunc(func() string {
			seq++
			return fmt.Sprintf("gen-%03d", seq)
		}),
	)
	return g, mock
}

func TestAttachPivot_AddsMissingLinks(t *testing.T) {
	g, mock := setupGenerator(t)

	mock.ExpectQuery("FROM product_categories WHERE product_id").
		WithArgs("prod-1", "cat-1").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery("FROM product_categories WHERE product_id").
		WithArgs("prod-1", "cat-2").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec("INSERT INTO product_categories").
		WithArgs("prod-1", "cat-2", fixedNow).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	added, err := g.AttachPivot(context.Background(),
		"product_categories", "product_id", "category_id",
		"prod-1", []string{"cat-1", "cat-2"})

	require.NoError(t, err)
	assert.Equal(t, 1, added)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttachPivot_AllExistingNoWrites(t *testing.T) {
	g, mock := setupGenerator(t)

	for _, cat := range []string{"cat-1", "cat-2"} {
		mock.ExpectQuery("FROM product_categories WHERE product_id").
			WithArgs("prod-1", cat).
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
	}

	added, err := g.AttachPivot(context.Background(),
		"product_categories", "product_id", "category_id",
		"prod-1", []string{"cat-1", "cat-2"})

	require.NoError(t, err)
	assert.Equal(t, 0, added)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureVariantInventory_SeedsOnce(t *testing.T) {
	g, mock := setupGenerator(t)

	mock.ExpectQuery("FROM variant_inventories WHERE variant_id").
		WithArgs("var-1", "vilnius-main").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec("INSERT INTO variant_inventories").
		WithArgs("gen-001", "var-1", "vilnius-main", 120, fixedNow, fixedNow).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	created, err := g.EnsureVariantInventory(context.Background(), "var-1", "vilnius-main", 120)

	require.NoError(t, err)
	assert.True(t, created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureVariantInventory_NeverOverwritesStock(t *testing.T) {
	g, mock := setupGenerator(t)

	mock.ExpectQuery("FROM variant_inventories WHERE variant_id").
		WithArgs("var-1", "vilnius-main").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	created, err := g.EnsureVariantInventory(context.Background(), "var-1", "vilnius-main", 999)

	require.NoError(t, err)
	assert.False(t, created)
	assert.NoError(t, mock.ExpectationsWereMet())
}
