package config

// Default paths for databases
const (
	// DefaultDatabasePath is the default path for the sqlite catalog database
	DefaultDatabasePath = "./library.db"

	// DefaultTokenIssuer is the "iss" claim of issued API tokens
	DefaultTokenIssuer = "bookstore"
)
