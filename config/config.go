package config

import (
	"fmt"
	"net"
	"net/url"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// PostgresNode is one side of the read/write split.
type PostgresNode struct {
	Host     string `envconfig:"HOST"     default:"localhost"`
	Port     string `envconfig:"PORT"     default:"5432"`
	Username string `envconfig:"USER"`
	Password string `envconfig:"PASSWORD"`
	Name     string `envconfig:"NAME"     default:"salon"`
	Timezone string `envconfig:"TIMEZONE"`
	SSLMode  string `envconfig:"SSL_MODE" default:"disable"`
}

// DSN renders a postgres URL for database dbName. Credentials are escaped, and extra
// is merged into the query after the node's own settings.
func (n PostgresNode) DSN(dbName string, extra url.Values) string {
	query := url.Values{}
	if n.SSLMode != "" {
		query.Set("sslmode", n.SSLMode)
	}

	if n.Timezone != "" {
		query.Set("timezone", n.Timezone)
	}

	for key, values := range extra {
		query[key] = values
	}

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(n.Username, n.Password),
		Host:     net.JoinHostPort(n.Host, n.Port),
		Path:     "/" + dbName,
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV"       default:"development"`
		LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
		Port     string `envconfig:"PORT"      default:"8080"`
		Host     string `envconfig:"HOST"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS" default:"5"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"   default:"10"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name     string `envconfig:"APP_NAME" default:"salon"`
		Timezone string `envconfig:"TIMEZONE" default:"UTC"`
		CORS     struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"`
			Enable           bool     `envconfig:"ENABLE"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS"`
		} `envconfig:"CORS"`
		RateLimiter struct {
			Enable        bool `envconfig:"ENABLE"`
			MaxRequests   int  `envconfig:"MAX_REQUESTS"   default:"120"`
			WindowSeconds int  `envconfig:"WINDOW_SECONDS" default:"60"`
		} `envconfig:"RATE_LIMITER"`
		// APIKey lets internal senders act as the system user. Empty disables it.
		APIKey string `envconfig:"API_KEY"`
	} `envconfig:"APP"`

	Scheduling struct {
		DefaultStepMinutes   int `envconfig:"DEFAULT_STEP_MINUTES" default:"15"`
		MaxRangeDays         int `envconfig:"MAX_RANGE_DAYS"       default:"31"`
		SlotCacheTTLSeconds  int `envconfig:"SLOT_CACHE_TTL"       default:"300"`
		MaxWaitlistMatches   int `envconfig:"MAX_WAITLIST_MATCHES" default:"20"`
		MaxHistoryPageLength int `envconfig:"MAX_HISTORY_PAGE"     default:"100"`
	} `envconfig:"SCHEDULING"`

	Cache struct {
		Redis struct {
			Primary struct {
				Host     string `envconfig:"HOST"     default:"localhost"`
				Port     string `envconfig:"PORT"     default:"6379"`
				Password string `envconfig:"PASSWORD"`
				DB       int    `envconfig:"DB"`
			} `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
		TTL int `envconfig:"TTL" default:"300"`
	} `envconfig:"CACHE"`

	JWT struct {
		AccessSecret string `envconfig:"ACCESS_SECRET"`
		Issuer       string `envconfig:"ISSUER"`
	} `envconfig:"JWT"`

	DB struct {
		Postgres struct {
			MaxRetry               int    `envconfig:"MAX_RETRY"                 default:"5"`
			RetryWaitTime          int    `envconfig:"RETRY_WAIT_TIME"           default:"2"`
			MaxOpenConns           int    `envconfig:"MAX_OPEN_CONNS"            default:"10"`
			MaxIdleConns           int    `envconfig:"MAX_IDLE_CONNS"            default:"10"`
			ConnMaxLifetimeSeconds int    `envconfig:"CONN_MAX_LIFETIME_SECONDS" default:"1800"`
			MigrationTable         string `envconfig:"MIGRATION_TABLE"`
			MigrationPath          string `envconfig:"MIGRATION_PATH"            default:"file://migrations/postgres"`
			AutoMigrate            bool   `envconfig:"AUTO_MIGRATE"`
			// Prefix is prepended to both database names, e.g. dev_ or test_.
			Prefix string       `envconfig:"PREFIX"`
			Read   PostgresNode `envconfig:"READ"`
			Write  PostgresNode `envconfig:"WRITE"`
		} `envconfig:"POSTGRES"`
	} `envconfig:"DB"`

	Kafka struct {
		Enable  bool     `envconfig:"ENABLE"`
		Brokers []string `envconfig:"BROKERS"`
		SASL    struct {
			Username string `envconfig:"USERNAME"`
			Password string `envconfig:"PASSWORD"`
		} `envconfig:"SASL"`
		Topic struct {
			AppointmentEvents string `envconfig:"APPOINTMENT_EVENTS" default:"salon.appointment.events"`
		} `envconfig:"TOPIC"`
	} `envconfig:"KAFKA"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
	}
}

// DatabaseName applies the configured prefix to a node's database name.
func (c *Config) DatabaseName(node PostgresNode) string {
	return c.DB.Postgres.Prefix + node.Name
}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

// Init loads .env when present and then reads the environment. A missing .env is
// reported but the environment still wins.
func Init() error {
	var err error

	once.Do(func() {
		if err = godotenv.Load(".env"); err != nil {
			log.Warn().Err(err).Msg("Could not load .env file, continuing with existing environment variables")
		}

		if processErr := envconfig.Process("", &conf); processErr != nil {
			log.Fatal().Err(processErr).Msg("Failed to process environment variables")
		}

		initialized = true

		log.Info().Str("env", conf.Server.Env).Str("app", conf.App.Name).Msg("Service configuration initialized")
	})

	if err != nil {
		return fmt.Errorf("loading .env file: %w", err)
	}

	return nil
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Warn().Err(err).Msg("Configuration initialized without .env file")
		}
	}

	return &conf
}
