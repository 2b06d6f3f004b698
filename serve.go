package main

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"jokeapi/src/app/server"
	"jokeapi/src/core/ports"
	"jokeapi/src/infra/config"
	"jokeapi/src/infra/db"
	"jokeapi/src/infra/repo"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve(ctx context.Context) error {

	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}
	log.Info("starting application",
		"port", cfg.Server.Port,
		"storage", cfg.Storage.Driver,
		"log_level", cfg.Log.Level,
	)

	var jokes ports.JokeRepository
	switch strings.ToLower(cfg.Storage.Driver) {
	case config.StorageMemory:
		log.Warn("using in-memory storage; jokes are lost on exit")
		jokes = repo.NewMemoryRepository()
	default:
		pg, err := db.New(ctx, cfg.Database, log)
		if err != nil {
			return err
		}
		defer pg.Close()

		if cfg.Database.AutoMigrate {
			migrator := db.NewMigrator(pg, log)
			_, err := migrator.Up(ctx)
			migrator.Close()
			if err != nil {
				return err
			}
		}
		jokes = repo.NewJokeRepository(pg, log)
	}

	// Run blocks until shutdown signal is received
	return server.New(cfg, log, jokes).Run()
}
