package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"

	"github.com/adrianliechti/docread/config"
	"github.com/adrianliechti/docread/pkg/otel"
	"github.com/adrianliechti/docread/server"

	"github.com/joho/godotenv"
)

var version = "dev"

func main() {
	configFlag := flag.String("config", "config.yaml", "configuration file")
	addressFlag := flag.String("address", "", "listen address")

	flag.Parse()

	godotenv.Load()

	ctx := context.Background()

	if err := otel.Setup(ctx, "docread", version); err != nil {
		slog.Error("telemetry setup failed", "error", err)
		os.Exit(1)
	}

	cfg, err := config.Parse(*configFlag)

	if err != nil {
		slog.Error("configuration invalid", "error", err)
		os.Exit(1)
	}

	if *addressFlag != "" {
		cfg.Address = *addressFlag
	}

	handler := server.New(cfg)

	slog.Info("starting server", "address", cfg.Address, "version", version)

	if err := http.ListenAndServe(cfg.Address, handler.Router()); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
