package http

import (
	"context"

	"github.com/mrlokans/bookstore/internal/auth"
	"github.com/mrlokans/bookstore/internal/catalog"
	"github.com/mrlokans/bookstore/internal/entities"
)

// This file consolidates the service interfaces used by HTTP controllers.
// Each controller depends on the narrowest interface it needs.

// AuthService signs users up and logs them in.
type AuthService interface {
	Signup(ctx context.Context, username, email, password string) (*entities.User, error)
	Login(ctx context.Context, email, password string) (*auth.Token, *entities.User, error)
}

// AuthorService provides author operations.
type AuthorService interface {
	AddAuthor(ctx context.Context, name string) (*entities.Author, error)
	ListAuthors(ctx context.Context) ([]entities.AuthorSummary, error)
	GetAuthor(ctx context.Context, id uint) (*entities.AuthorDetail, error)
	UpdateAuthor(ctx context.Context, id uint, name string) (*entities.Author, error)
	DeleteAuthor(ctx context.Context, id uint) error
}

// CategoryService provides category operations.
type CategoryService interface {
	AddCategory(ctx context.Context, types string) (*entities.Category, error)
	ListCategories(ctx context.Context) ([]entities.CategorySummary, error)
	DeleteCategory(ctx context.Context, id uint) error
}

// BookService provides book operations.
type BookService interface {
	AddBook(ctx context.Context, in catalog.BookInput) (*entities.Book, error)
	ListBooks(ctx context.Context) ([]entities.BookListing, error)
	SearchBooksByName(ctx context.Context, term string) ([]entities.BookListing, error)
	SearchBooksByMaxPrice(ctx context.Context, raw string) ([]entities.BookListing, error)
}

// --- Composite Interface ---

// CatalogService combines the catalog interfaces; *catalog.Service implements it.
type CatalogService interface {
	AuthorService
	CategoryService
	BookService
}

// Pinger checks store connectivity for the health endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}
