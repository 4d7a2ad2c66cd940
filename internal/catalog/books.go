package catalog

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/mrlokans/bookstore/internal/apperrors"
	"github.com/mrlokans/bookstore/internal/database"
	"github.com/mrlokans/bookstore/internal/database/authors"
	"github.com/mrlokans/bookstore/internal/database/books"
	"github.com/mrlokans/bookstore/internal/database/categories"
	"github.com/mrlokans/bookstore/internal/entities"
)

var ErrBookReferenceNotFound = apperrors.NotFound("Category or Author not exist")

const msgInvalidPrice = "Invalid price value. Please use numbers."

// BookInput carries a new book. Pointer fields distinguish missing values from zero.
type BookInput struct {
	Name       string
	Price      *float64
	CategoryID *uint
	AuthorID   *uint
	Resume     *string
}

func (in BookInput) validate() error {
	if err := requireText("name", in.Name, MaxBookNameLength); err != nil {
		return err
	}

	switch {
	case in.Price == nil:
		return apperrors.Validation("price", "price is required")
	case math.IsNaN(*in.Price) || math.IsInf(*in.Price, 0):
		return apperrors.Validation("price", msgInvalidPrice)
	case *in.Price <= 0:
		return apperrors.Validation("price", "price must be greater than zero")
	}

	if in.CategoryID == nil {
		return apperrors.Validation("category_id", "category_id is required")
	}
	if in.AuthorID == nil {
		return apperrors.Validation("author_id", "author_id is required")
	}
	return nil
}

// AddBook creates a book for an existing author and category.
func (s *Service) AddBook(ctx context.Context, in BookInput) (*entities.Book, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	book := &entities.Book{
		Name:       in.Name,
		Price:      *in.Price,
		CategoryID: *in.CategoryID,
		AuthorID:   *in.AuthorID,
	}
	if in.Resume != nil {
		book.Resume = *in.Resume
	}

	err := s.transaction(ctx, func(tx *gorm.DB) error {
		category, err := categories.NewRepository(tx).GetByID(book.CategoryID)
		if err != nil {
			return referenceError(err, "category")
		}
		author, err := authors.NewRepository(tx).GetByID(book.AuthorID)
		if err != nil {
			return referenceError(err, "author")
		}

		if err := books.NewRepository(tx).Create(book); err != nil {
			if database.IsForeignKeyViolation(err) {
				return ErrBookReferenceNotFound
			}
			return fmt.Errorf("failed to create book: %w", err)
		}

		book.Category = category
		book.Author = author
		return nil
	})
	if err != nil {
		return nil, err
	}
	return book, nil
}

func referenceError(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrBookReferenceNotFound
	}
	return fmt.Errorf("failed to get %s: %w", what, err)
}

// ListBooks returns every book with author and category names.
func (s *Service) ListBooks(ctx context.Context) ([]entities.BookListing, error) {
	found, err := books.NewRepository(s.read(ctx)).List()
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	return toListings(found), nil
}

// SearchBooksByName matches term as a case-insensitive substring of the book name.
// An empty term matches every book.
func (s *Service) SearchBooksByName(ctx context.Context, term string) ([]entities.BookListing, error) {
	found, err := books.NewRepository(s.read(ctx)).SearchByName(term)
	if err != nil {
		return nil, fmt.Errorf("failed to search books: %w", err)
	}
	return toListings(found), nil
}

// SearchBooksByMaxPrice returns books priced at or below raw, which must parse as a finite number.
func (s *Service) SearchBooksByMaxPrice(ctx context.Context, raw string) ([]entities.BookListing, error) {
	maxPrice, err := ParsePrice(raw)
	if err != nil {
		return nil, err
	}

	found, err := books.NewRepository(s.read(ctx)).SearchByMaxPrice(maxPrice)
	if err != nil {
		return nil, fmt.Errorf("failed to search books: %w", err)
	}
	return toListings(found), nil
}

// ParsePrice parses a decimal price from a query string value.
func ParsePrice(raw string) (float64, error) {
	price, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, apperrors.Validation("price", msgInvalidPrice)
	}
	return price, nil
}
