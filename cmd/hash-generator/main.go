// Command hash-generator prints password hashes in the format the gateway
// stores, suitable for GATEWAY_AUTH_ADMIN_PASSWORD style seeding.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/phrazzld/photos-gateway/internal/service/auth"
)

// readPassword is swapped out in tests.
var readPassword = func() ([]byte, error) {
	return term.ReadPassword(int(os.Stdin.Fd()))
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var algorithm string
	var plain bool

	cmd := &cobra.Command{
		Use:          "hash-generator [password]",
		Short:        "Hash a password the way the gateway stores it",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			hasher, err := auth.NewPasswordHasher(algorithm)
			if err != nil {
				return err
			}

			var password string
			if len(args) == 1 {
				password = args[0]
			} else {
				password, err = promptPassword(cmd.ErrOrStderr())
				if err != nil {
					return err
				}
			}
			if password == "" {
				return fmt.Errorf("password must not be empty")
			}

			hash, err := hasher.Hash(password)
			if err != nil {
				return fmt.Errorf("failed to hash password: %w", err)
			}

			if plain {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), hash)
				return err
			}
			label := color.New(color.FgGreen, color.Bold).Sprintf("%s:", strings.ToLower(algorithm))
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", label, hash)
			return err
		},
	}

	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "sha256", "hash algorithm: sha256 or bcrypt")
	cmd.Flags().BoolVar(&plain, "plain", false, "print only the hash")

	return cmd
}

func promptPassword(w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, "Password: "); err != nil {
		return "", err
	}
	pw, err := readPassword()
	_, _ = fmt.Fprintln(w)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(pw), nil
}
