package postgres

//nolint:revive
import (
	"context"
	"fmt"
	"salon/config"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const driverName = "postgres"

// Connection splits traffic between a read replica and the primary. Both may point
// at the same server.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

func New(cfg *config.Config) *Connection {
	return &Connection{
		Read:  connect(cfg, "read", cfg.DB.Postgres.Read),
		Write: connect(cfg, "write", cfg.DB.Postgres.Write),
	}
}

// connect retries until the node answers and exits the process when it never does,
// since nothing in the service works without it.
func connect(cfg *config.Config, role string, node config.PostgresNode) *sqlx.DB {
	settings := cfg.DB.Postgres
	dbName := cfg.DatabaseName(node)

	logger := log.With().
		Str("role", role).
		Str("host", node.Host).
		Str("port", node.Port).
		Str("dbName", dbName).
		Logger()

	attempts := max(settings.MaxRetry, 1)

	var lastErr error

	for attempt := range attempts {
		db, err := sqlx.Connect(driverName, node.DSN(dbName, nil))
		if err == nil {
			db.SetMaxOpenConns(settings.MaxOpenConns)
			db.SetMaxIdleConns(settings.MaxIdleConns)
			db.SetConnMaxLifetime(time.Duration(settings.ConnMaxLifetimeSeconds) * time.Second)

			logger.Info().Msg("Connected to database")

			return db
		}

		lastErr = err

		logger.Error().Err(err).Int("attempt", attempt+1).Int("of", attempts).Msg("Failed connecting to database")

		if attempt < attempts-1 {
			time.Sleep(time.Duration(settings.RetryWaitTime) * time.Second)
		}
	}

	logger.Fatal().Err(lastErr).Msg("Giving up on database")

	return nil
}

// WithTransaction runs fn inside a write transaction, committing on success and rolling back otherwise.
func (c *Connection) WithTransaction(ctx context.Context, fn func(tx *sqlx.Tx) error) (err error) {
	tx, err := c.Write.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()

			panic(p)
		}

		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
