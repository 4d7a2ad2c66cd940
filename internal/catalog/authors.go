package catalog

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mrlokans/bookstore/internal/apperrors"
	"github.com/mrlokans/bookstore/internal/database"
	"github.com/mrlokans/bookstore/internal/database/authors"
	"github.com/mrlokans/bookstore/internal/entities"
)

var (
	ErrAuthorExists   = apperrors.Conflict("Author already exists")
	ErrAuthorNotFound = apperrors.NotFound("Author not exist")
	ErrAuthorHasBooks = apperrors.Conflict("This Author has books listed")
)

func (s *Service) AddAuthor(ctx context.Context, name string) (*entities.Author, error) {
	if err := requireText("name", name, MaxAuthorNameLength); err != nil {
		return nil, err
	}

	author := &entities.Author{Name: name}
	err := s.transaction(ctx, func(tx *gorm.DB) error {
		repo := authors.NewRepository(tx)

		exists, err := repo.NameExists(name)
		if err != nil {
			return fmt.Errorf("failed to check author: %w", err)
		}
		if exists {
			return ErrAuthorExists
		}

		if err := repo.Create(author); err != nil {
			if database.IsUniqueViolation(err) {
				return ErrAuthorExists
			}
			return fmt.Errorf("failed to create author: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return author, nil
}

// ListAuthors returns every author with its book count.
func (s *Service) ListAuthors(ctx context.Context) ([]entities.AuthorSummary, error) {
	summaries, err := authors.NewRepository(s.read(ctx)).ListWithBookCounts()
	if err != nil {
		return nil, fmt.Errorf("failed to list authors: %w", err)
	}
	return summaries, nil
}

// GetAuthor returns the author with the id and title of each of its books.
func (s *Service) GetAuthor(ctx context.Context, id uint) (*entities.AuthorDetail, error) {
	repo := authors.NewRepository(s.read(ctx))

	author, err := getAuthor(repo, id)
	if err != nil {
		return nil, err
	}

	books, err := repo.ListBooks(id)
	if err != nil {
		return nil, fmt.Errorf("failed to list author books: %w", err)
	}

	return &entities.AuthorDetail{ID: author.ID, Name: author.Name, Books: books}, nil
}

// DeleteAuthor removes an author that has no books.
func (s *Service) DeleteAuthor(ctx context.Context, id uint) error {
	return s.transaction(ctx, func(tx *gorm.DB) error {
		repo := authors.NewRepository(tx)

		if _, err := getAuthor(repo, id); err != nil {
			return err
		}

		count, err := repo.CountBooks(id)
		if err != nil {
			return fmt.Errorf("failed to count author books: %w", err)
		}
		if count > 0 {
			return ErrAuthorHasBooks
		}

		if err := repo.Delete(id); err != nil {
			if database.IsForeignKeyViolation(err) {
				return ErrAuthorHasBooks
			}
			return fmt.Errorf("failed to delete author: %w", err)
		}
		return nil
	})
}

// UpdateAuthor renames an author. Books keep their reference.
func (s *Service) UpdateAuthor(ctx context.Context, id uint, name string) (*entities.Author, error) {
	var author *entities.Author
	err := s.transaction(ctx, func(tx *gorm.DB) error {
		repo := authors.NewRepository(tx)

		var err error
		author, err = getAuthor(repo, id)
		if err != nil {
			return err
		}

		if err := requireText("name", name, MaxAuthorNameLength); err != nil {
			return err
		}

		if err := repo.Rename(id, name); err != nil {
			if database.IsUniqueViolation(err) {
				return ErrAuthorExists
			}
			return fmt.Errorf("failed to update author: %w", err)
		}
		author.Name = name
		return nil
	})
	if err != nil {
		return nil, err
	}
	return author, nil
}

func getAuthor(repo *authors.Repository, id uint) (*entities.Author, error) {
	author, err := repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author: %w", err)
	}
	return author, nil
}
