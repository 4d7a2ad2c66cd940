// Package database provides the data access layer for the catalog.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup (sqlite or mysql), migrations
//	├── constraints.go   # Driver-independent unique / foreign key error checks
//	├── users/           # Credential records
//	├── authors/         # Author rows and their book counts
//	├── categories/      # Category rows and their book counts
//	└── books/           # Book rows, listings and searches
//
// # Using Sub-packages
//
// Each sub-package provides a Repository bound to a *gorm.DB. Services build
// repositories on the transaction handle so every step of a mutation shares it:
//
//	db, err := database.NewDatabase(cfg.Database)
//
//	err = db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
//		repo := authors.NewRepository(tx)
//		return repo.Create(&entities.Author{Name: "Frank Herbert"})
//	})
//
// # Integrity
//
// Unique indexes (users.username, users.email, authors.name, categories.types) and
// RESTRICT foreign keys (books.author_id, books.category_id) are created by Migrate.
// Callers check first for a friendly error, then classify driver errors with
// IsUniqueViolation and IsForeignKeyViolation for the cases a concurrent request
// slips past the check.
package database
