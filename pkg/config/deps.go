package config

import (
	"log/slog"

	"github.com/andeanbank/corebank/pkg/repository"
)

// Deps bundles the shared dependencies handed to services and the web
// layer, so constructors stay short and wiring lives in one place.
type Deps struct {
	Uow    repository.UnitOfWork
	Logger *slog.Logger
	Cfg    *App
}
