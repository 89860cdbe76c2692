package main

import (
	"context"
	"crypto/sha256"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	backend "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	authority "github.com/aretw0/ariadne/internal/adapters/http"
	loamAdapter "github.com/aretw0/ariadne/internal/adapters/loam"
	"github.com/aretw0/ariadne/internal/adapters/memory"
	redisAdapter "github.com/aretw0/ariadne/internal/adapters/redis"
	"github.com/aretw0/ariadne/internal/logging"
	"github.com/aretw0/ariadne/internal/maze"
	"github.com/aretw0/ariadne/pkg/ports"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the reference maze authority",
	Long: `Starts the reference maze authority: an HTTP service that owns the maze
layouts and reveals them to agents one discovery at a time.

Layouts come from a Loam directory of markdown mazes (--mazes) or from the
built-in default. Game state lives in memory, or in Redis with --redis.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		port, _ := cmd.Flags().GetString("port")
		mazesDir, _ := cmd.Flags().GetString("mazes")
		redisAddr, _ := cmd.Flags().GetString("redis")
		ttl, _ := cmd.Flags().GetDuration("game-ttl")

		verbosity, _ := cmd.Flags().GetCount("verbose")
		logger := logging.New(logging.Level(verbosity))

		var layouts maze.Source
		if mazesDir != "" {
			src, err := loamAdapter.Open(mazesDir)
			if err != nil {
				return fmt.Errorf("failed to open maze directory: %w", err)
			}
			layouts = src
		} else {
			layouts = memory.NewLayoutSource()
		}

		handlerOpts := []authority.Option{authority.WithLogger(logger)}

		var games ports.GameStore
		if redisAddr != "" {
			client := backend.NewClient(&backend.Options{Addr: redisAddr})
			defer client.Close()

			storeOpts := []redisAdapter.Option{redisAdapter.WithTTL(ttl)}
			if gameKey, _ := cmd.Flags().GetString("game-key"); gameKey != "" {
				key := sha256.Sum256([]byte(gameKey))
				storeOpts = append(storeOpts, redisAdapter.WithEncryption(
					redisAdapter.EncryptionConfig{ActiveKey: key[:]}))
			}

			games = redisAdapter.NewFromClient(client, storeOpts...)
			handlerOpts = append(handlerOpts,
				authority.WithLocker(redisAdapter.NewLocker(client, "ariadne:game:")))
		} else {
			games = memory.NewStore()
		}

		handler := authority.NewHandler(games, layouts, prometheus.NewRegistry(), handlerOpts...)

		srv := &http.Server{
			Addr:    ":" + port,
			Handler: handler,
		}

		serverErrors := make(chan error, 1)
		go func() {
			fmt.Printf("Maze authority listening on %s\n", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			return fmt.Errorf("server error: %w", err)

		case sig := <-shutdown:
			fmt.Printf("\nShutting down... signal: %v\n", sig)

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown did not complete: %v\n", err)
				if err := srv.Close(); err != nil {
					return fmt.Errorf("failed to stop server: %w", err)
				}
			}
			fmt.Println("Maze authority stopped")
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("port", "8078", "Port to listen on")
	serveCmd.Flags().String("mazes", "", "Directory of maze layout documents")
	serveCmd.Flags().String("redis", "", "Redis address for game state (host:port)")
	serveCmd.Flags().Duration("game-ttl", time.Hour, "Game expiration when backed by Redis")
	serveCmd.Flags().String("game-key", "", "Passphrase for encrypting game records at rest")
}
