package main

import (
	"fmt"
	"log/slog"

	_ "github.com/andeanbank/corebank/docs"
	"github.com/andeanbank/corebank/infra/initializer"
	"github.com/andeanbank/corebank/pkg/app"
	"github.com/andeanbank/corebank/pkg/config"
	"github.com/andeanbank/corebank/webapi"
	log "github.com/charmbracelet/log"
)

// @title Corebank API
// @version 1.0.0
// @description Simulated retail banking ledger core
// @host localhost:3000
// @BasePath /
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description "Enter your Bearer token in the format: `Bearer {token}`"
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	a := app.New(deps)
	fiberApp := webapi.SetupApp(a)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	slog.Info("starting server", "env", cfg.Env, "address", addr)

	return fiberApp.Listen(addr)
}
