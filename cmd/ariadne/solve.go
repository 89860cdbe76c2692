package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/ariadne"
	"github.com/aretw0/ariadne/internal/logging"
	"github.com/aretw0/ariadne/internal/presentation/graph"
	"github.com/aretw0/ariadne/internal/presentation/tui"
	"github.com/aretw0/ariadne/pkg/adapters/remote"
	"github.com/aretw0/ariadne/pkg/domain"
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Explore a maze and walk the shortest route to an exit",
	Long: `Starts a session against the maze authority, explores it with the
configured strategy and replays the shortest discovered route. The discovered
grid and a run report are printed when done.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		verbosity, _ := cmd.Flags().GetCount("verbose")
		logger := logging.New(logging.Level(verbosity))

		gw := remote.New(cfg.Server,
			remote.WithTimeout(time.Duration(cfg.TimeoutSeconds)*time.Second),
			remote.WithMaze(cfg.Maze),
			remote.WithLogger(logger),
		)
		eng := ariadne.New(gw,
			ariadne.WithLogger(logger),
			ariadne.WithMode(domain.Mode(cfg.Mode)),
		)

		ctx := cmd.Context()
		if err := eng.Start(ctx, cfg.Player); err != nil {
			return err
		}

		paths, err := eng.Explore(ctx)
		if err != nil {
			return err
		}
		if len(paths) == 0 {
			fmt.Fprintln(os.Stderr, "no route to an exit was found")
		}

		mapOnly, _ := cmd.Flags().GetBool("map-only")
		if !mapOnly {
			status, err := eng.FollowShortestPath(ctx)
			if err != nil {
				return err
			}
			if status == domain.NavAborted {
				fmt.Fprintln(os.Stderr, "navigation aborted before reaching the exit")
			}
		}

		snap := eng.Snapshot()
		if asGraph, _ := cmd.Flags().GetBool("graph"); asGraph {
			fmt.Print(graph.GenerateMermaid(snap))
			return nil
		}

		fmt.Print(tui.RenderGrid(snap))
		render := tui.NewRenderer()
		fmt.Print(render(tui.BuildReport(snap)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().StringP("player", "p", "", "Player name for the session")
	solveCmd.Flags().StringP("mode", "m", "", "Exploration strategy: exhaustive or greedy")
	solveCmd.Flags().String("maze", "", "Layout to request from the authority")
	solveCmd.Flags().Bool("map-only", false, "Explore and map without walking to an exit")
	solveCmd.Flags().Bool("graph", false, "Print the discovered maze as a Mermaid flowchart")
}
