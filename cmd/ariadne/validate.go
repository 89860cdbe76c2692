package main

import (
	"fmt"
	"path/filepath"

	"github.com/aretw0/loam"
	"github.com/spf13/cobra"

	"github.com/aretw0/ariadne/internal/validator"
)

var validateCmd = &cobra.Command{
	Use:   "validate [dir]",
	Short: "Validate a directory of maze layout documents",
	Long: `Parses every layout document in the directory and reports malformed
grids, duplicate IDs and conflicting defaults, without starting a server.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) > 0 {
			dir = args[0]
		}

		absPath, err := filepath.Abs(dir)
		if err != nil {
			return fmt.Errorf("invalid path: %w", err)
		}

		repo, err := loam.Init(absPath,
			loam.WithStrict(true),
			loam.WithReadOnly(true),
		)
		if err != nil {
			return fmt.Errorf("failed to open maze directory: %w", err)
		}

		if err := validator.ValidateLayouts(repo); err != nil {
			return err
		}

		fmt.Printf("Layouts in %s are valid\n", dir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
