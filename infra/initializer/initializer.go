// Package initializer builds the dependency set the application runs
// with: logger, database connection, schema migration and unit of work.
package initializer

import (
	"fmt"

	"github.com/andeanbank/corebank/infra"
	infrarepo "github.com/andeanbank/corebank/infra/repository"
	"github.com/andeanbank/corebank/pkg/config"
)

// InitializeDependencies prepares everything the services need. The
// schema is migrated on startup; the tables are small and AutoMigrate is
// idempotent.
func InitializeDependencies(cfg *config.App) (config.Deps, error) {
	logger := setupLogger(cfg.Log)

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		return config.Deps{}, fmt.Errorf("connect database: %w", err)
	}
	if err := db.AutoMigrate(
		&infrarepo.Account{},
		&infrarepo.Movement{},
		&infrarepo.Transfer{},
		&infrarepo.Credit{},
		&infrarepo.Loan{},
	); err != nil {
		return config.Deps{}, fmt.Errorf("migrate schema: %w", err)
	}

	return config.Deps{
		Uow:    infrarepo.NewUoW(db),
		Logger: logger,
		Cfg:    cfg,
	}, nil
}
