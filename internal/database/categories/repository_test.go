package categories

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mrlokans/bookstore/internal/config"
	"github.com/mrlokans/bookstore/internal/database"
	"github.com/mrlokans/bookstore/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, *gorm.DB) {
	t.Helper()

	db, err := database.NewDatabase(config.Database{
		Driver:   config.DriverSQLite,
		Path:     filepath.Join(t.TempDir(), "categories.db"),
		LogLevel: "silent",
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(db.DB), db.DB
}

func seedBook(t *testing.T, db *gorm.DB, name string, categoryID uint) {
	t.Helper()
	author := entities.Author{Name: "author of " + name}
	require.NoError(t, db.Create(&author).Error)
	require.NoError(t, db.Create(&entities.Book{
		Name: name, Price: 5, AuthorID: author.ID, CategoryID: categoryID,
	}).Error)
}

func TestRepository_CreateAndGet(t *testing.T) {
	repo, _ := setupTestDB(t)

	category := &entities.Category{Types: "Fiction"}
	require.NoError(t, repo.Create(category))

	got, err := repo.GetByID(category.ID)
	require.NoError(t, err)
	assert.Equal(t, "Fiction", got.Types)
}

func TestRepository_Create_DuplicateTypes(t *testing.T) {
	repo, _ := setupTestDB(t)
	require.NoError(t, repo.Create(&entities.Category{Types: "Fiction"}))

	err := repo.Create(&entities.Category{Types: "Fiction"})

	require.Error(t, err)
	assert.True(t, database.IsUniqueViolation(err))
}

func TestRepository_TypesExists(t *testing.T) {
	repo, _ := setupTestDB(t)
	require.NoError(t, repo.Create(&entities.Category{Types: "Poetry"}))

	exists, err := repo.TypesExists("Poetry")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.TypesExists("Drama")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRepository_ListWithBookCounts(t *testing.T) {
	repo, db := setupTestDB(t)
	fiction := &entities.Category{Types: "Fiction"}
	poetry := &entities.Category{Types: "Poetry"}
	require.NoError(t, repo.Create(fiction))
	require.NoError(t, repo.Create(poetry))
	seedBook(t, db, "Dune", fiction.ID)

	summaries, err := repo.ListWithBookCounts()

	require.NoError(t, err)
	assert.Equal(t, []entities.CategorySummary{
		{ID: fiction.ID, Name: "Fiction", BookCount: 1},
		{ID: poetry.ID, Name: "Poetry", BookCount: 0},
	}, summaries)
}

func TestRepository_CountBooks(t *testing.T) {
	repo, db := setupTestDB(t)
	category := &entities.Category{Types: "Fiction"}
	require.NoError(t, repo.Create(category))
	seedBook(t, db, "Dune", category.ID)
	seedBook(t, db, "Emma", category.ID)

	count, err := repo.CountBooks(category.ID)

	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestRepository_Delete(t *testing.T) {
	repo, _ := setupTestDB(t)
	category := &entities.Category{Types: "Empty"}
	require.NoError(t, repo.Create(category))

	require.NoError(t, repo.Delete(category.ID))

	_, err := repo.GetByID(category.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepository_Delete_ReferencedCategoryIsRestricted(t *testing.T) {
	repo, db := setupTestDB(t)
	category := &entities.Category{Types: "Fiction"}
	require.NoError(t, repo.Create(category))
	seedBook(t, db, "Dune", category.ID)

	err := repo.Delete(category.ID)

	require.Error(t, err)
	assert.True(t, database.IsForeignKeyViolation(err))
}
