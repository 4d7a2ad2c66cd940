package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/bookstore/internal/auth"
	"github.com/mrlokans/bookstore/internal/catalog"
	"github.com/mrlokans/bookstore/internal/database"
	"github.com/mrlokans/bookstore/internal/http"
)

// =============================================================================
// Services
// =============================================================================

// AuthService implementations
var _ http.AuthService = (*auth.Service)(nil)

// Catalog implementations
var _ http.CatalogService = (*catalog.Service)(nil)
var _ http.AuthorService = (*catalog.Service)(nil)
var _ http.CategoryService = (*catalog.Service)(nil)
var _ http.BookService = (*catalog.Service)(nil)

// =============================================================================
// Authentication
// =============================================================================

// TokenVerifier implementations
var _ auth.TokenVerifier = (*auth.Service)(nil)

// =============================================================================
// Data Access Layer
// =============================================================================

// Pinger implementations
var _ http.Pinger = (*database.Database)(nil)
