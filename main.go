package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"starwars-server/confs"
	"starwars-server/db"
	"starwars-server/logger"
	"starwars-server/server"
)

func main() {
	// load config
	cfg, err := confs.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	logg := logger.New(cfg.Logging)

	database, err := db.Connect(cfg.Database, logg)
	if err != nil {
		logg.Fatal().Err(err).Msg("Failed to connect to DB")
	}
	defer database.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// run server
	srv := server.NewServer(cfg, database, logg)
	if err := srv.Start(ctx); err != nil {
		logg.Error().Err(err).Msg("Server stopped with error")
		os.Exit(1)
	}
	logg.Info().Msg("Server stopped")
}
