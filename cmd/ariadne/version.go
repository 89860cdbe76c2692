package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/ariadne"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of ariadne",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ariadne version %s\n", strings.TrimSpace(ariadne.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
