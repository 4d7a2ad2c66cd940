package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mrlokans/bookstore/internal/auth"
	"github.com/mrlokans/bookstore/internal/config"
)

type createUserOptions struct {
	Username      string
	Email         string
	PasswordStdin bool
}

func newCreateUserCommand() *cobra.Command {
	opts := &createUserOptions{}

	cmd := &cobra.Command{
		Use:   "create-user",
		Short: "Create a user account from the terminal",
		Example: "  bookstore create-user --username admin --email admin@example.com\n" +
			"  echo \"$PASSWORD\" | bookstore create-user --username ci --email ci@example.com --password-stdin",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Username, "username", "", "Username (required)")
	cmd.Flags().StringVar(&opts.Email, "email", "", "Email used to log in (required)")
	cmd.Flags().BoolVar(&opts.PasswordStdin, "password-stdin", false, "Read the password from stdin instead of prompting")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func (opts *createUserOptions) run(cmd *cobra.Command) error {
	password, err := opts.readPassword(cmd)
	if err != nil {
		return err
	}

	cfg := config.NewConfig()
	db, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	// signup never issues tokens, so no token manager is needed
	service := auth.NewService(db.DB, nil, cfg.Auth)
	user, err := service.Signup(cmd.Context(), opts.Username, opts.Email, password)
	if err != nil {
		return err
	}

	cmd.Printf("Created user %q (id %d)\n", user.Username, user.ID)
	return nil
}

func (opts *createUserOptions) readPassword(cmd *cobra.Command) (string, error) {
	if opts.PasswordStdin {
		return readPasswordLine(cmd.InOrStdin())
	}

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errors.New("stdin is not a terminal; use --password-stdin")
	}

	cmd.Print("Password: ")
	password, err := term.ReadPassword(fd)
	cmd.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(password), nil
}

// readPasswordLine reads the first line of r without its line ending.
func readPasswordLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
