package schemaloader

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestTableColumns(t *testing.T) {
	db, mock := newMockDB(t)

	rows := sqlmock.NewRows([]string{"column_name"}).
		AddRow("Name").
		AddRow("Age").
		AddRow("Pclass")
	mock.ExpectQuery("SELECT column_name").
		WithArgs("passengers").
		WillReturnRows(rows)

	columns, err := TableColumns(db, "passengers")
	require.NoError(t, err)
	assert.Equal(t, []string{"Name", "Age", "Pclass"}, columns)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTableColumnsUnknownTable(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery("SELECT column_name").
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"column_name"}))

	_, err := TableColumns(db, "ghost")
	assert.ErrorContains(t, err, "no columns or does not exist")
}
