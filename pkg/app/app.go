// Package app assembles the service layer from its dependencies.
package app

import (
	"github.com/andeanbank/corebank/pkg/config"
	"github.com/andeanbank/corebank/pkg/service/auth"
	"github.com/andeanbank/corebank/pkg/service/directory"
	"github.com/andeanbank/corebank/pkg/service/ledger"
)

// App holds the wired services.
type App struct {
	Deps             config.Deps
	Config           *config.App
	AuthService      *auth.Service
	LedgerService    *ledger.Service
	DirectoryService *directory.Service
}

// New wires all services from the shared dependencies.
func New(deps config.Deps) *App {
	return &App{
		Deps:             deps,
		Config:           deps.Cfg,
		AuthService:      auth.NewWithJWT(deps),
		LedgerService:    ledger.New(deps),
		DirectoryService: directory.New(deps),
	}
}
