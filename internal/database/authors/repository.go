// Package authors provides database operations for authors.
//
// # Usage
//
//	repo := authors.NewRepository(tx)
//	summaries, err := repo.ListWithBookCounts()
package authors

import (
	"gorm.io/gorm"

	"github.com/mrlokans/bookstore/internal/entities"
)

// Repository handles all author database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new authors repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(author *entities.Author) error {
	return r.db.Create(author).Error
}

// GetByID returns gorm.ErrRecordNotFound for unknown ids.
func (r *Repository) GetByID(id uint) (*entities.Author, error) {
	var author entities.Author
	if err := r.db.First(&author, id).Error; err != nil {
		return nil, err
	}
	return &author, nil
}

// NameExists reports whether an author with exactly this name exists.
func (r *Repository) NameExists(name string) (bool, error) {
	var count int64
	err := r.db.Model(&entities.Author{}).Where("name = ?", name).Count(&count).Error
	return count > 0, err
}

// ListWithBookCounts returns every author with the number of books it owns, by id.
func (r *Repository) ListWithBookCounts() ([]entities.AuthorSummary, error) {
	summaries := make([]entities.AuthorSummary, 0)
	err := r.db.Model(&entities.Author{}).
		Select("authors.id, authors.name, COUNT(books.id) AS book_count").
		Joins("LEFT JOIN books ON books.author_id = authors.id").
		Group("authors.id, authors.name").
		Order("authors.id").
		Scan(&summaries).Error
	return summaries, err
}

// ListBooks returns the id and title of every book by the author.
func (r *Repository) ListBooks(authorID uint) ([]entities.BookRef, error) {
	refs := make([]entities.BookRef, 0)
	err := r.db.Model(&entities.Book{}).
		Select("id, name AS title").
		Where("author_id = ?", authorID).
		Order("id").
		Scan(&refs).Error
	return refs, err
}

func (r *Repository) CountBooks(authorID uint) (int64, error) {
	var count int64
	err := r.db.Model(&entities.Book{}).Where("author_id = ?", authorID).Count(&count).Error
	return count, err
}

// Rename updates the author's name only.
func (r *Repository) Rename(id uint, name string) error {
	return r.db.Model(&entities.Author{}).Where("id = ?", id).Update("name", name).Error
}

func (r *Repository) Delete(id uint) error {
	return r.db.Delete(&entities.Author{}, id).Error
}
