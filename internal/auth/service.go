package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"gorm.io/gorm"

	"github.com/mrlokans/bookstore/internal/apperrors"
	"github.com/mrlokans/bookstore/internal/config"
	"github.com/mrlokans/bookstore/internal/database"
	"github.com/mrlokans/bookstore/internal/database/users"
	"github.com/mrlokans/bookstore/internal/entities"
)

var (
	ErrUsernameExists     = apperrors.Conflict("Username already exists")
	ErrEmailExists        = apperrors.Conflict("Email already exists")
	ErrInvalidCredentials = apperrors.Unauthorized("Invalid credentials")
)

const msgCredentialsRequired = "Email and Password are required"

// fallbackDummyHash is a valid cost 10 hash, used when the configured cost cannot produce one.
const fallbackDummyHash = "$2a$10$XajjQvNhvvRt5GSeFk1xFeyqRrsxkhBkUiQeg0dt.wU1qD4aFDcga"

// Service handles signup and login.
type Service struct {
	db     *gorm.DB
	tokens *TokenManager
	config config.Auth

	// hash compared against when the email is unknown, so both failure paths cost one bcrypt run
	dummyOnce sync.Once
	dummyHash string
}

// NewService creates a new authentication service.
func NewService(db *gorm.DB, tokens *TokenManager, cfg config.Auth) *Service {
	return &Service{
		db:     db,
		tokens: tokens,
		config: cfg,
	}
}

// Signup creates a user with a bcrypt-hashed password. It does not log the user in.
func (s *Service) Signup(ctx context.Context, username, email, password string) (*entities.User, error) {
	switch {
	case strings.TrimSpace(username) == "":
		return nil, apperrors.Validation("username", "username is required")
	case strings.TrimSpace(email) == "":
		return nil, apperrors.Validation("email", "email is required")
	case strings.TrimSpace(password) == "":
		return nil, apperrors.Validation("password", "password is required")
	}

	passwordHash, err := HashPassword(password, s.config.BcryptCost)
	if err != nil {
		if errors.Is(err, ErrPasswordTooLong) {
			return nil, apperrors.Validation("password", ErrPasswordTooLong.Error())
		}
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entities.User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := users.NewRepository(tx)

		if err := checkAvailable(repo, username, email); err != nil {
			return err
		}

		if err := repo.CreateUser(user); err != nil {
			if database.IsUniqueViolation(err) {
				// lost a race with a concurrent signup
				if err := checkAvailable(repo, username, email); err != nil {
					return err
				}
				return ErrUsernameExists
			}
			return fmt.Errorf("failed to create user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

func checkAvailable(repo *users.Repository, username, email string) error {
	taken, err := repo.UsernameExists(username)
	if err != nil {
		return fmt.Errorf("failed to check username: %w", err)
	}
	if taken {
		return ErrUsernameExists
	}

	taken, err = repo.EmailExists(email)
	if err != nil {
		return fmt.Errorf("failed to check email: %w", err)
	}
	if taken {
		return ErrEmailExists
	}
	return nil
}

// Login verifies credentials and issues an API token.
// Unknown email and wrong password fail with the same error.
func (s *Service) Login(ctx context.Context, email, password string) (*Token, *entities.User, error) {
	switch {
	case strings.TrimSpace(email) == "":
		return nil, nil, apperrors.Validation("email", msgCredentialsRequired)
	case password == "":
		return nil, nil, apperrors.Validation("password", msgCredentialsRequired)
	}

	user, err := users.NewRepository(s.db.WithContext(ctx)).GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			_ = CheckPassword(password, s.dummyPasswordHash())
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := CheckPassword(password, user.PasswordHash); err != nil {
		if errors.Is(err, ErrInvalidPassword) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("failed to check password: %w", err)
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, nil, err
	}
	return token, user, nil
}

// VerifyToken returns the user id carried by a bearer token.
func (s *Service) VerifyToken(raw string) (uint, error) {
	return s.tokens.Verify(raw)
}

func (s *Service) dummyPasswordHash() string {
	s.dummyOnce.Do(func() {
		hash, err := HashPassword("dummy-password-for-timing", s.config.BcryptCost)
		if err != nil {
			hash = fallbackDummyHash
		}
		s.dummyHash = hash
	})
	return s.dummyHash
}

