package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"net/url"
	"salon/config"
	"slices"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

// Action is a migration command accepted by cmd/migrate.
type Action string

const (
	ActionUp     Action = "up"
	ActionDown   Action = "down"
	ActionStepUp Action = "step-up"
	ActionDrop   Action = "drop"
)

var ErrUnknownAction = errors.New("unknown migration action")

// Actions lists every accepted Action, in the order shown to operators.
func Actions() []Action {
	return []Action{ActionUp, ActionDown, ActionStepUp, ActionDrop}
}

// databaseURL builds the golang-migrate postgres URL for the write database.
func databaseURL(cfg *config.Config) string {
	extra := url.Values{}
	if cfg.DB.Postgres.MigrationTable != "" {
		extra.Set("x-migrations-table", cfg.DB.Postgres.MigrationTable)
	}

	return cfg.DB.Postgres.Write.DSN(cfg.DatabaseName(cfg.DB.Postgres.Write), extra)
}

// Run applies action against the write database and logs the schema version it leaves behind.
func Run(cfg *config.Config, action Action) error {
	if !slices.Contains(Actions(), action) {
		return fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}

	mig, err := migrate.New(cfg.DB.Postgres.MigrationPath, databaseURL(cfg))
	if err != nil {
		return fmt.Errorf("error creating migrate instance: %w", err)
	}

	defer mig.Close()

	switch action {
	case ActionUp:
		err = mig.Up()
	case ActionDown:
		err = mig.Steps(-1)
	case ActionStepUp:
		err = mig.Steps(1)
	case ActionDrop:
		err = mig.Down()
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running %s migration: %w", action, err)
	}

	version, dirty, err := mig.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("error reading schema version: %w", err)
	}

	log.Info().
		Str("action", string(action)).
		Uint("version", version).
		Bool("dirty", dirty).
		Msg("Database migration finished")

	return nil
}

// Up is run at startup when DB_POSTGRES_AUTO_MIGRATE is set.
func Up(cfg *config.Config) error {
	return Run(cfg, ActionUp)
}
