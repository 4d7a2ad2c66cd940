// Package books provides database operations for books.
//
// Read methods preload the Author and Category relations so callers can render
// names without further queries.
package books

import (
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mrlokans/bookstore/internal/entities"
)

// likeEscape is the LIKE escape character. A backslash would need different
// quoting in sqlite and mysql string literals.
const likeEscape = "!"

var likeEscaper = strings.NewReplacer(likeEscape, likeEscape+likeEscape, "%", likeEscape+"%", "_", likeEscape+"_")

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts the book row only; referenced authors and categories are never upserted.
func (r *Repository) Create(book *entities.Book) error {
	return r.db.Omit(clause.Associations).Create(book).Error
}

func (r *Repository) withRelations() *gorm.DB {
	return r.db.Preload("Author").Preload("Category").Order("books.id")
}

// List returns all books.
func (r *Repository) List() ([]entities.Book, error) {
	books := make([]entities.Book, 0)
	err := r.withRelations().Find(&books).Error
	return books, err
}

// SearchByName returns books whose name contains term, ignoring case.
// Wildcard characters in term match literally.
func (r *Repository) SearchByName(term string) ([]entities.Book, error) {
	pattern := "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
	books := make([]entities.Book, 0)
	err := r.withRelations().
		Where("LOWER(books.name) LIKE ? ESCAPE '"+likeEscape+"'", pattern).
		Find(&books).Error
	return books, err
}

// SearchByMaxPrice returns books priced at or below maxPrice.
func (r *Repository) SearchByMaxPrice(maxPrice float64) ([]entities.Book, error) {
	books := make([]entities.Book, 0)
	err := r.withRelations().Where("books.price <= ?", maxPrice).Find(&books).Error
	return books, err
}
