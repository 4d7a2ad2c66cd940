package database

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mrlokans/bookstore/internal/config"
	"github.com/mrlokans/bookstore/internal/entities"
)

func setupTestDB(t *testing.T) *Database {
	t.Helper()

	db, err := NewDatabase(config.Database{
		Driver:   config.DriverSQLite,
		Path:     filepath.Join(t.TempDir(), "test.db"),
		LogLevel: "silent",
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestNewDatabase_MigratesAllTables(t *testing.T) {
	db := setupTestDB(t)

	for _, model := range []any{&entities.User{}, &entities.Author{}, &entities.Category{}, &entities.Book{}} {
		assert.True(t, db.DB.Migrator().HasTable(model), "missing table for %T", model)
	}
}

func TestNewDatabase_DefaultsToSQLite(t *testing.T) {
	db, err := NewDatabase(config.Database{
		Path:     filepath.Join(t.TempDir(), "default.db"),
		LogLevel: "silent",
	})
	require.NoError(t, err)
	defer db.Close()

	assert.Equal(t, config.DriverSQLite, db.Driver)
}

func TestNewDatabase_MySQLRequiresDSN(t *testing.T) {
	_, err := NewDatabase(config.Database{Driver: config.DriverMySQL})

	assert.ErrorIs(t, err, ErrMissingDSN)
}

func TestNewDatabase_UnsupportedDriver(t *testing.T) {
	_, err := NewDatabase(config.Database{Driver: "oracle"})

	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestDatabase_ForeignKeysEnforced(t *testing.T) {
	db := setupTestDB(t)

	err := db.DB.Create(&entities.Book{Name: "Orphan", Price: 1, AuthorID: 1, CategoryID: 1}).Error

	require.Error(t, err)
	assert.True(t, IsForeignKeyViolation(err))
	assert.False(t, IsUniqueViolation(err))
}

func TestDatabase_UniqueIndexEnforced(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.DB.Create(&entities.Category{Types: "Fiction"}).Error)

	err := db.DB.Create(&entities.Category{Types: "Fiction"}).Error

	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err))
	assert.False(t, IsForeignKeyViolation(err))
}

func TestDatabase_PingAndClose(t *testing.T) {
	db, err := NewDatabase(config.Database{
		Path:     filepath.Join(t.TempDir(), "ping.db"),
		LogLevel: "silent",
	})
	require.NoError(t, err)

	require.NoError(t, db.Ping(context.Background()))
	require.NoError(t, db.Close())
	assert.Error(t, db.Ping(context.Background()))
}

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "./library.db?"+sqliteOptions, SQLiteDSN("./library.db"))
	assert.Equal(t, "file:test.db?mode=rwc&"+sqliteOptions, SQLiteDSN("file:test.db?mode=rwc"))
}

func TestConstraintClassification(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		unique     bool
		foreignKey bool
	}{
		{"nil", nil, false, false},
		{"plain", errors.New("boom"), false, false},
		{"gorm duplicated", gorm.ErrDuplicatedKey, true, false},
		{"gorm foreign key", gorm.ErrForeignKeyViolated, false, true},
		{"sqlite unique", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}, true, false},
		{"sqlite primary key", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey}, true, false},
		{"sqlite foreign key", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey}, false, true},
		{"sqlite not null", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintNotNull}, false, false},
		{"mysql duplicate", &mysql.MySQLError{Number: 1062}, true, false},
		{"mysql referenced", &mysql.MySQLError{Number: 1451}, false, true},
		{"mysql no parent", &mysql.MySQLError{Number: 1452}, false, true},
		{"mysql other", &mysql.MySQLError{Number: 1146}, false, false},
		{"wrapped", fmt.Errorf("insert: %w", &mysql.MySQLError{Number: 1062}), true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.unique, IsUniqueViolation(tt.err))
			assert.Equal(t, tt.foreignKey, IsForeignKeyViolation(tt.err))
		})
	}
}
