// Package categories provides database operations for book categories.
package categories

import (
	"gorm.io/gorm"

	"github.com/mrlokans/bookstore/internal/entities"
)

// Repository handles all category database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new categories repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(category *entities.Category) error {
	return r.db.Create(category).Error
}

// GetByID returns gorm.ErrRecordNotFound for unknown ids.
func (r *Repository) GetByID(id uint) (*entities.Category, error) {
	var category entities.Category
	if err := r.db.First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// TypesExists reports whether a category with exactly this label exists.
func (r *Repository) TypesExists(types string) (bool, error) {
	var count int64
	err := r.db.Model(&entities.Category{}).Where("types = ?", types).Count(&count).Error
	return count > 0, err
}

// ListWithBookCounts returns every category, labelled as name, with its book count.
func (r *Repository) ListWithBookCounts() ([]entities.CategorySummary, error) {
	summaries := make([]entities.CategorySummary, 0)
	err := r.db.Model(&entities.Category{}).
		Select("categories.id, categories.types AS name, COUNT(books.id) AS book_count").
		Joins("LEFT JOIN books ON books.category_id = categories.id").
		Group("categories.id, categories.types").
		Order("categories.id").
		Scan(&summaries).Error
	return summaries, err
}

func (r *Repository) CountBooks(categoryID uint) (int64, error) {
	var count int64
	err := r.db.Model(&entities.Book{}).Where("category_id = ?", categoryID).Count(&count).Error
	return count, err
}

func (r *Repository) Delete(id uint) error {
	return r.db.Delete(&entities.Category{}, id).Error
}
