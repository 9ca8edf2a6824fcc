package database

import (
	"context"
	"errors"
	"io"
	"testing"
	"testing/fstest"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goleaf/statybae-seeder/pkg/logger"
)

func migrationsFS() fstest.MapFS {
	return fstest.MapFS{
		"001_reference.up.sql": {Data: []byte("CREATE TABLE countries (id TEXT PRIMARY KEY)")},
		"002_catalog.up.sql":   {Data: []byte("CREATE TABLE categories (id TEXT PRIMARY KEY)")},
		"001_reference.down.sql": {
			Data: []byte("DROP TABLE countries"),
		},
	}
}

func TestRunMigrations_AppliesInOrder(t *testing.T) {
	mock, err := NewMockPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").
		WillReturnResult(pgxmock.NewResult("CREATE", 0))

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("001_reference.up.sql").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectBegin()
	mock.ExpectExec("CREATE TABLE countries").
		WillReturnResult(pgxmock.NewResult("CREATE", 0))
	mock.ExpectExec("INSERT INTO schema_migrations").
		WithArgs("001_reference.up.sql").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("002_catalog.up.sql").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectBegin()
	mock.ExpectExec("CREATE TABLE categories").
		WillReturnResult(pgxmock.NewResult("CREATE", 0))
	mock.ExpectExec("INSERT INTO schema_migrations").
		WithArgs("002_catalog.up.sql").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	log := logger.NewWithWriter("test", "error", io.Discard)
	err = RunMigrations(context.Background(), mock, migrationsFS(), log)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunMigrations_SkipsApplied(t *testing.T) {
	mock, err := NewMockPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").
		WillReturnResult(pgxmock.NewResult("CREATE", 0))
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("001_reference.up.sql").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("002_catalog.up.sql").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	log := logger.NewWithWriter("test", "error", io.Discard)
	err = RunMigrations(context.Background(), mock, migrationsFS(), log)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunMigrations_RollsBackOnSQLError(t *testing.T) {
	mock, err := NewMockPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").
		WillReturnResult(pgxmock.NewResult("CREATE", 0))
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("001_reference.up.sql").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectBegin()
	mock.ExpectExec("CREATE TABLE countries").
		WillReturnError(errors.New("syntax error"))
	mock.ExpectRollback()

	log := logger.NewWithWriter("test", "error", io.Discard)
	err = RunMigrations(context.Background(), mock, migrationsFS(), log)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "001_reference.up.sql")
	assert.NoError(t, mock.ExpectationsWereMet())
}
