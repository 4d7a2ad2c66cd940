// Package cli defines the bookstore command line.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/mrlokans/bookstore/internal/config"
	"github.com/mrlokans/bookstore/internal/entrypoint"
)

// NewRootCommand builds the command tree. Running it without a sub-command
// starts the HTTP server.
func NewRootCommand(version string) *cobra.Command {
	serve := newServeCommand(version)

	root := &cobra.Command{
		Use:          "bookstore",
		Short:        "Bookstore catalog API",
		Long:         "Bookstore serves a JSON API over authors, categories and books.\nConfiguration is read from environment variables (PORT, DATABASE_PATH, AUTH_TOKEN_SECRET, ...).",
		Version:      version,
		SilenceUsage: true,
		RunE:         serve.RunE,
	}

	root.AddCommand(
		serve,
		newMigrateCommand(),
		newCreateUserCommand(),
		newVersionCommand(version),
	)
	return root
}

func newServeCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server (default if no command given)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return entrypoint.Run(config.NewConfig(), version)
		},
	}
}

func newVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("bookstore %s\n", version)
		},
	}
}
