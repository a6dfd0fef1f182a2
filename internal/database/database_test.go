package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/locallibrary/internal/entities"
)

func setupTestDB(t *testing.T) *Database {
	t.Helper()
	db, err := NewDatabase(filepath.Join(t.TempDir(), "test.db"), WithLogLevel("silent"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestNewDatabase(t *testing.T) {
	db := setupTestDB(t)

	for _, table := range []any{&entities.Author{}, &entities.Genre{}, &entities.Book{}, &entities.BookInstance{}} {
		assert.True(t, db.DB.Migrator().HasTable(table))
	}
	assert.True(t, db.DB.Migrator().HasTable("book_genres"))
}

func TestNewDatabase_InvalidPath(t *testing.T) {
	_, err := NewDatabase(filepath.Join(t.TempDir(), "missing", "dir", "test.db"))
	assert.Error(t, err)
}

func TestDatabase_Ping(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Ping(context.Background()))

	require.NoError(t, db.Close())
	assert.Error(t, db.Ping(context.Background()))
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want logger.LogLevel
	}{
		{"silent", logger.Silent},
		{"ERROR", logger.Error},
		{" info ", logger.Info},
		{"warn", logger.Warn},
		{"", logger.Warn},
		{"verbose", logger.Warn},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLogLevel(tt.in), tt.in)
	}
}

func TestOpenDialector(t *testing.T) {
	d, err := openDialector(DriverSQLite, "file.db")
	require.NoError(t, err)
	assert.Equal(t, "sqlite", d.Name())

	d, err = openDialector("POSTGRES", "host=localhost dbname=library")
	require.NoError(t, err)
	assert.Equal(t, "postgres", d.Name())

	_, err = openDialector("mongodb", "mongodb://localhost")
	assert.ErrorContains(t, err, `unsupported database driver "mongodb"`)
}

func TestNewDatabase_UnsupportedDriver(t *testing.T) {
	_, err := NewDatabase("whatever", WithDriver("oracle"))
	assert.Error(t, err)
}
