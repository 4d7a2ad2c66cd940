package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mrlokans/bookstore/internal/config"
	"github.com/mrlokans/bookstore/internal/database"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.NewConfig()

			// the schema is migrated on open
			db, err := openDatabase(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			target := cfg.Database.Path
			if db.Driver == config.DriverMySQL {
				target = "mysql"
			}
			cmd.Printf("Schema is up to date (%s)\n", target)
			return nil
		},
	}
}

// openDatabase is shared by commands that need the store.
func openDatabase(cfg *config.Config) (*database.Database, error) {
	db, err := database.NewDatabase(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}
