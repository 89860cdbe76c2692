package main

import (
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/ariadne"
	"github.com/aretw0/ariadne/internal/logging"
	"github.com/aretw0/ariadne/pkg/adapters/mcp"
	"github.com/aretw0/ariadne/pkg/adapters/remote"
	"github.com/aretw0/ariadne/pkg/domain"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts the solver as an MCP server over stdio, so AI agent hosts can
explore and solve mazes as tools.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		// Logs must not corrupt JSON-RPC on stdout.
		log.SetOutput(os.Stderr)
		verbosity, _ := cmd.Flags().GetCount("verbose")
		logger := logging.New(logging.Level(verbosity))
		slog.SetDefault(logger)

		gw := remote.New(cfg.Server,
			remote.WithTimeout(time.Duration(cfg.TimeoutSeconds)*time.Second),
			remote.WithMaze(cfg.Maze),
			remote.WithLogger(logger),
		)
		eng := ariadne.New(gw,
			ariadne.WithLogger(logger),
			ariadne.WithMode(domain.Mode(cfg.Mode)),
		)

		logger.Info("starting MCP server on stdio")
		return mcp.NewServer(eng).ServeStdio()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
