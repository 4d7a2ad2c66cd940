package catalog

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mrlokans/bookstore/internal/apperrors"
	"github.com/mrlokans/bookstore/internal/database"
	"github.com/mrlokans/bookstore/internal/database/categories"
	"github.com/mrlokans/bookstore/internal/entities"
)

var (
	ErrCategoryExists   = apperrors.Conflict("Category already exists")
	ErrCategoryNotFound = apperrors.NotFound("Category not exist")
	ErrCategoryHasBooks = apperrors.Conflict("This Category has books listed")
)

func (s *Service) AddCategory(ctx context.Context, types string) (*entities.Category, error) {
	if err := requireText("types", types, MaxCategoryTypeLength); err != nil {
		return nil, err
	}

	category := &entities.Category{Types: types}
	err := s.transaction(ctx, func(tx *gorm.DB) error {
		repo := categories.NewRepository(tx)

		exists, err := repo.TypesExists(types)
		if err != nil {
			return fmt.Errorf("failed to check category: %w", err)
		}
		if exists {
			return ErrCategoryExists
		}

		if err := repo.Create(category); err != nil {
			if database.IsUniqueViolation(err) {
				return ErrCategoryExists
			}
			return fmt.Errorf("failed to create category: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return category, nil
}

func (s *Service) ListCategories(ctx context.Context) ([]entities.CategorySummary, error) {
	summaries, err := categories.NewRepository(s.read(ctx)).ListWithBookCounts()
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return summaries, nil
}

// DeleteCategory removes a category that has no books.
func (s *Service) DeleteCategory(ctx context.Context, id uint) error {
	return s.transaction(ctx, func(tx *gorm.DB) error {
		repo := categories.NewRepository(tx)

		if _, err := repo.GetByID(id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCategoryNotFound
			}
			return fmt.Errorf("failed to get category: %w", err)
		}

		count, err := repo.CountBooks(id)
		if err != nil {
			return fmt.Errorf("failed to count category books: %w", err)
		}
		if count > 0 {
			return ErrCategoryHasBooks
		}

		if err := repo.Delete(id); err != nil {
			if database.IsForeignKeyViolation(err) {
				return ErrCategoryHasBooks
			}
			return fmt.Errorf("failed to delete category: %w", err)
		}
		return nil
	})
}
