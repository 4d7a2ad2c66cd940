// Package catalog implements the author, category and book operations.
//
// Every mutation runs in a single transaction covering its checks (existence,
// uniqueness, book counts) and its write. Unique indexes and RESTRICT foreign
// keys of the schema remain the final guard; their violations map to the same
// errors as the checks.
package catalog

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"gorm.io/gorm"

	"github.com/mrlokans/bookstore/internal/apperrors"
	"github.com/mrlokans/bookstore/internal/entities"
)

// Display values for book relations that cannot be resolved.
const (
	UnknownAuthor = "unknown author"
	NoCategory    = "no category"
)

// Column sizes of the catalog tables.
const (
	MaxAuthorNameLength   = 80
	MaxCategoryTypeLength = 20
	MaxBookNameLength     = 120
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return s.db.WithContext(ctx).Transaction(fn)
}

func (s *Service) read(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx)
}

// requireText rejects blank values and values longer than max characters.
func requireText(field, value string, max int) error {
	if strings.TrimSpace(value) == "" {
		return apperrors.Validation(field, field+" is required")
	}
	if utf8.RuneCountInString(value) > max {
		return apperrors.Validation(field, fmt.Sprintf("%s must be at most %d characters", field, max))
	}
	return nil
}

func toListing(book entities.Book) entities.BookListing {
	listing := entities.BookListing{
		ID:       book.ID,
		Name:     book.Name,
		Price:    book.Price,
		Author:   UnknownAuthor,
		Category: NoCategory,
	}
	if book.Author != nil {
		listing.Author = book.Author.Name
	}
	if book.Category != nil {
		listing.Category = book.Category.Types
	}
	return listing
}

func toListings(books []entities.Book) []entities.BookListing {
	listings := make([]entities.BookListing, 0, len(books))
	for _, book := range books {
		listings = append(listings, toListing(book))
	}
	return listings
}
