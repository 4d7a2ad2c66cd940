// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Service Interfaces (internal/http/stores.go)
//
//   - AuthService: signup and login, implemented by auth.Service
//   - AuthorService, CategoryService, BookService: catalog operations,
//     combined as CatalogService and implemented by catalog.Service
//   - Pinger: store connectivity for /health, implemented by database.Database
//
// ## Authentication Interfaces
//
//   - TokenVerifier: resolves a bearer token to a user id (internal/auth/middleware.go)
//
// # Adding a New Catalog Entity
//
// To add a new entity (e.g., publishers):
//
//  1. Add the gorm model to internal/entities and register it in database.Migrate
//
//  2. Create sub-package internal/database/publishers/:
//
//     type Repository struct { db *gorm.DB }
//
//     func NewRepository(db *gorm.DB) *Repository
//
//  3. Add service methods to internal/catalog, one transaction per mutation:
//
//     func (s *Service) AddPublisher(ctx context.Context, name string) (*entities.Publisher, error) {
//         return ..., s.transaction(ctx, func(tx *gorm.DB) error {
//             repo := publishers.NewRepository(tx)
//             ...
//         })
//     }
//
//  4. Declare a PublisherService interface in internal/http/stores.go, add a
//     controller and register its routes in router.go
//
//  5. Add compile-time check:
//
//     var _ http.PublisherService = (*catalog.Service)(nil)
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather than runtime:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// This pattern is used throughout the codebase. See checks.go for examples.
package interfaces
