package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/ariadne/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "ariadne",
	Short: "Ariadne explores and solves remote mazes",
	Long: `Ariadne drives an agent through a maze served by a remote authority,
maps it with a backtracking depth-first search and walks the shortest
route to an exit.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("server", "", "Base URL of the maze authority")
	rootCmd.PersistentFlags().String("config", "", "Path to the config file (default: ariadne.yaml)")
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase log verbosity (-v info, -vv debug)")
}

// loadConfig resolves the effective configuration: file first, then any flags
// the user actually set.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	overrides := map[string]any{}
	if cmd.Flags().Changed("server") {
		overrides["server"], _ = cmd.Flags().GetString("server")
	}
	if cmd.Flags().Changed("player") {
		overrides["player"], _ = cmd.Flags().GetString("player")
	}
	if cmd.Flags().Changed("mode") {
		overrides["mode"], _ = cmd.Flags().GetString("mode")
	}
	if cmd.Flags().Changed("maze") {
		overrides["maze"], _ = cmd.Flags().GetString("maze")
	}
	if len(overrides) == 0 {
		return cfg, nil
	}
	return cfg, cfg.Apply(overrides)
}
