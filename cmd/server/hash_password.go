package main

import (
	"fmt"
	"io"

	"github.com/phrazzld/taskboard-api/internal/service/auth"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

var hashCost int

// hashPasswordCmd prints bcrypt hashes for seeding users directly in the database.
var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password <password>...",
	Short: "Print bcrypt hashes for the given passwords",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeHashes(cmd.OutOrStdout(), auth.NewBcryptHasher(hashCost), args)
	},
}

func init() {
	hashPasswordCmd.Flags().IntVar(&hashCost, "cost", bcrypt.DefaultCost, "bcrypt cost factor")
	rootCmd.AddCommand(hashPasswordCmd)
}

func writeHashes(w io.Writer, hasher auth.PasswordHasher, passwords []string) error {
	for _, password := range passwords {
		hash, err := hasher.Hash(password)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		if _, err := fmt.Fprintln(w, hash); err != nil {
			return err
		}
	}
	return nil
}
