package main

import (
	"context"
	"log"

	"github.com/dmitrijs2005/homelab-dashboard/internal/server"
	"github.com/dmitrijs2005/homelab-dashboard/internal/server/config"
	"github.com/joho/godotenv"
)

func main() {

	// Optional .env for local development; the deployed service gets its
	// environment from the orchestrator.
	_ = godotenv.Load()

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := server.NewApp(ctx, cfg)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
