package catalog

import (
	"context"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mrlokans/bookstore/internal/apperrors"
	"github.com/mrlokans/bookstore/internal/config"
	"github.com/mrlokans/bookstore/internal/database"
	"github.com/mrlokans/bookstore/internal/entities"
)

func setupService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()

	db, err := database.NewDatabase(config.Database{
		Driver:   config.DriverSQLite,
		Path:     filepath.Join(t.TempDir(), "catalog.db"),
		LogLevel: "silent",
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewService(db.DB), db.DB
}

func price(v float64) *float64 {
	return &v
}

func uintPtr(v uint) *uint {
	return &v
}

func countRows(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(model).Count(&count).Error)
	return count
}

func assertValidation(t *testing.T, err error, field string) {
	t.Helper()
	appErr, ok := apperrors.As(err)
	require.True(t, ok, "expected app error, got %v", err)
	assert.Equal(t, apperrors.CodeValidation, appErr.Code)
	assert.Equal(t, field, appErr.Field)
}

// seed creates "Frank Herbert" and "Fiction" and returns their ids.
func seed(t *testing.T, svc *Service) (authorID, categoryID uint) {
	t.Helper()
	ctx := context.Background()
	author, err := svc.AddAuthor(ctx, "Frank Herbert")
	require.NoError(t, err)
	category, err := svc.AddCategory(ctx, "Fiction")
	require.NoError(t, err)
	return author.ID, category.ID
}

func addBook(t *testing.T, svc *Service, name string, p float64, authorID, categoryID uint) *entities.Book {
	t.Helper()
	book, err := svc.AddBook(context.Background(), BookInput{
		Name: name, Price: price(p), AuthorID: uintPtr(authorID), CategoryID: uintPtr(categoryID),
	})
	require.NoError(t, err)
	return book
}

func TestService_AddAuthor(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	author, err := svc.AddAuthor(ctx, "Ursula K. Le Guin")
	require.NoError(t, err)
	assert.NotZero(t, author.ID)

	_, err = svc.AddAuthor(ctx, "Ursula K. Le Guin")
	assert.Same(t, ErrAuthorExists, err)

	_, err = svc.AddAuthor(ctx, "  ")
	assertValidation(t, err, "name")

	_, err = svc.AddAuthor(ctx, strings.Repeat("a", MaxAuthorNameLength+1))
	assertValidation(t, err, "name")
}

func TestService_ListAndGetAuthor(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()
	authorID, categoryID := seed(t, svc)
	other, err := svc.AddAuthor(ctx, "Isaac Asimov")
	require.NoError(t, err)
	dune := addBook(t, svc, "Dune", 9.99, authorID, categoryID)

	summaries, err := svc.ListAuthors(ctx)
	require.NoError(t, err)
	assert.Equal(t, []entities.AuthorSummary{
		{ID: authorID, Name: "Frank Herbert", BookCount: 1},
		{ID: other.ID, Name: "Isaac Asimov", BookCount: 0},
	}, summaries)

	detail, err := svc.GetAuthor(ctx, authorID)
	require.NoError(t, err)
	assert.Equal(t, "Frank Herbert", detail.Name)
	assert.Equal(t, []entities.BookRef{{ID: dune.ID, Title: "Dune"}}, detail.Books)

	detail, err = svc.GetAuthor(ctx, other.ID)
	require.NoError(t, err)
	assert.NotNil(t, detail.Books)
	assert.Empty(t, detail.Books)

	_, err = svc.GetAuthor(ctx, 999)
	assert.Same(t, ErrAuthorNotFound, err)
}

func TestService_DeleteAuthor(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()
	authorID, categoryID := seed(t, svc)
	addBook(t, svc, "Dune", 9.99, authorID, categoryID)
	lonely, err := svc.AddAuthor(ctx, "Nobody")
	require.NoError(t, err)

	err = svc.DeleteAuthor(ctx, authorID)
	assert.Same(t, ErrAuthorHasBooks, err)
	assert.Equal(t, int64(2), countRows(t, db, &entities.Author{}))
	assert.Equal(t, int64(1), countRows(t, db, &entities.Book{}))
	listings, err := svc.ListBooks(ctx)
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, "Frank Herbert", listings[0].Author)

	require.NoError(t, svc.DeleteAuthor(ctx, lonely.ID))
	assert.Equal(t, int64(1), countRows(t, db, &entities.Author{}))

	assert.Same(t, ErrAuthorNotFound, svc.DeleteAuthor(ctx, lonely.ID))
}

func TestService_UpdateAuthor(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()
	authorID, categoryID := seed(t, svc)
	addBook(t, svc, "Dune", 9.99, authorID, categoryID)
	_, err := svc.AddAuthor(ctx, "Isaac Asimov")
	require.NoError(t, err)

	updated, err := svc.UpdateAuthor(ctx, authorID, "F. Herbert")
	require.NoError(t, err)
	assert.Equal(t, "F. Herbert", updated.Name)

	listings, err := svc.ListBooks(ctx)
	require.NoError(t, err)
	assert.Equal(t, "F. Herbert", listings[0].Author)

	_, err = svc.UpdateAuthor(ctx, 999, "Whoever")
	assert.Same(t, ErrAuthorNotFound, err)

	_, err = svc.UpdateAuthor(ctx, authorID, "")
	assertValidation(t, err, "name")

	_, err = svc.UpdateAuthor(ctx, authorID, "Isaac Asimov")
	assert.Same(t, ErrAuthorExists, err)
}

func TestService_Categories(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()
	authorID, fictionID := seed(t, svc)
	poetry, err := svc.AddCategory(ctx, "Poetry")
	require.NoError(t, err)
	addBook(t, svc, "Dune", 9.99, authorID, fictionID)

	_, err = svc.AddCategory(ctx, "Fiction")
	assert.Same(t, ErrCategoryExists, err)
	_, err = svc.AddCategory(ctx, "")
	assertValidation(t, err, "types")
	_, err = svc.AddCategory(ctx, strings.Repeat("x", MaxCategoryTypeLength+1))
	assertValidation(t, err, "types")

	summaries, err := svc.ListCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []entities.CategorySummary{
		{ID: fictionID, Name: "Fiction", BookCount: 1},
		{ID: poetry.ID, Name: "Poetry", BookCount: 0},
	}, summaries)

	assert.Same(t, ErrCategoryHasBooks, svc.DeleteCategory(ctx, fictionID))
	assert.Equal(t, int64(2), countRows(t, db, &entities.Category{}))
	assert.Equal(t, int64(1), countRows(t, db, &entities.Book{}))

	require.NoError(t, svc.DeleteCategory(ctx, poetry.ID))
	assert.Same(t, ErrCategoryNotFound, svc.DeleteCategory(ctx, poetry.ID))
}

func TestService_AddBook(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()
	authorID, categoryID := seed(t, svc)
	resume := "Spice and sand."

	book, err := svc.AddBook(ctx, BookInput{
		Name: "Dune", Price: price(9.99), AuthorID: uintPtr(authorID), CategoryID: uintPtr(categoryID), Resume: &resume,
	})
	require.NoError(t, err)
	assert.NotZero(t, book.ID)
	assert.Equal(t, resume, book.Resume)
	require.NotNil(t, book.Author)
	assert.Equal(t, "Frank Herbert", book.Author.Name)

	listings, err := svc.ListBooks(ctx)
	require.NoError(t, err)
	assert.Equal(t, []entities.BookListing{
		{ID: book.ID, Name: "Dune", Price: 9.99, Author: "Frank Herbert", Category: "Fiction"},
	}, listings)
}

func TestService_AddBook_ResumeDefaultsToEmpty(t *testing.T) {
	svc, db := setupService(t)
	authorID, categoryID := seed(t, svc)

	book := addBook(t, svc, "Dune", 9.99, authorID, categoryID)

	var stored entities.Book
	require.NoError(t, db.First(&stored, book.ID).Error)
	assert.Equal(t, "", stored.Resume)
}

func TestService_AddBook_Rejected(t *testing.T) {
	svc, db := setupService(t)
	authorID, categoryID := seed(t, svc)

	valid := func() BookInput {
		return BookInput{Name: "Dune", Price: price(9.99), AuthorID: uintPtr(authorID), CategoryID: uintPtr(categoryID)}
	}

	tests := []struct {
		name      string
		mutate    func(in *BookInput)
		wantField string
		wantErr   error
	}{
		{"blank name", func(in *BookInput) { in.Name = " " }, "name", nil},
		{"missing price", func(in *BookInput) { in.Price = nil }, "price", nil},
		{"zero price", func(in *BookInput) { in.Price = price(0) }, "price", nil},
		{"negative price", func(in *BookInput) { in.Price = price(-1) }, "price", nil},
		{"infinite price", func(in *BookInput) { in.Price = price(math.Inf(1)) }, "price", nil},
		{"missing category", func(in *BookInput) { in.CategoryID = nil }, "category_id", nil},
		{"missing author", func(in *BookInput) { in.AuthorID = nil }, "author_id", nil},
		{"name checked before price", func(in *BookInput) {
			in.Name = ""
			in.Price = nil
		}, "name", nil},
		{"unknown category", func(in *BookInput) { in.CategoryID = uintPtr(999) }, "", ErrBookReferenceNotFound},
		{"unknown author", func(in *BookInput) { in.AuthorID = uintPtr(999) }, "", ErrBookReferenceNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid()
			tt.mutate(&in)

			book, err := svc.AddBook(context.Background(), in)

			assert.Nil(t, book)
			if tt.wantErr != nil {
				assert.Same(t, tt.wantErr, err)
				assert.ErrorIs(t, err, apperrors.ErrNotFound)
			} else {
				assertValidation(t, err, tt.wantField)
			}
			assert.Zero(t, countRows(t, db, &entities.Book{}))
		})
	}
}

func TestService_SearchBooks(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()
	authorID, categoryID := seed(t, svc)
	addBook(t, svc, "Dune", 9.99, authorID, categoryID)
	addBook(t, svc, "Dune Messiah", 12, authorID, categoryID)
	addBook(t, svc, "Emma", 4.5, authorID, categoryID)

	byName, err := svc.SearchBooksByName(ctx, "dUnE")
	require.NoError(t, err)
	require.Len(t, byName, 2)
	assert.Equal(t, "Dune", byName[0].Name)
	assert.Equal(t, "Fiction", byName[0].Category)

	all, err := svc.SearchBooksByName(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	byPrice, err := svc.SearchBooksByMaxPrice(ctx, "9.99")
	require.NoError(t, err)
	assert.Len(t, byPrice, 2)

	byPrice, err = svc.SearchBooksByMaxPrice(ctx, "9.98")
	require.NoError(t, err)
	require.Len(t, byPrice, 1)
	assert.Equal(t, "Emma", byPrice[0].Name)
}

func TestParsePrice(t *testing.T) {
	valid := map[string]float64{"9.99": 9.99, " 10 ": 10, "0": 0, "-3": -3}
	for raw, want := range valid {
		got, err := ParsePrice(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got)
	}

	for _, raw := range []string{"", "abc", "9,99", "NaN", "Inf", "-inf"} {
		_, err := ParsePrice(raw)
		assertValidation(t, err, "price")
		assert.EqualError(t, err, "Invalid price value. Please use numbers.")
	}
}

func TestToListing_MissingRelations(t *testing.T) {
	listing := toListing(entities.Book{ID: 3, Name: "Orphan", Price: 1})

	assert.Equal(t, UnknownAuthor, listing.Author)
	assert.Equal(t, NoCategory, listing.Category)
}
