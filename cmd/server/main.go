package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"nba-fit-service/internal/config"
	"nba-fit-service/internal/logging"
	"nba-fit-service/internal/server"
)

// appVersion is overridden at build time via -ldflags.
var appVersion = "dev"

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: "nba-fit-service",
		Version: appVersion,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server.New(cfg, logger).Run(ctx, stop)
}
