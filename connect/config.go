// Package connect opens a database/sql handle from environment
// configuration and wraps it in a sqlrest Cursor for the matching dialect.
package connect

import (
	"errors"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config describes the database to open. For an in-memory sqlite DSN the
// pool settings are ignored and Open keeps a single connection.
type Config struct {
	Driver     string `env:"SQLREST_DRIVER" envDefault:"sqlite"`     // postgres, sqlite, mariadb, mysql or mssql.
	DSN        string `env:"SQLREST_DSN,required,notEmpty"`          // Driver-specific connection string.
	LogQueries bool   `env:"SQLREST_LOG_QUERIES" envDefault:"false"` // Log every command at debug level.

	MaxOpenConns    int           `env:"SQLREST_MAX_OPEN_CONNS" envDefault:"10"`
	MaxIdleConns    int           `env:"SQLREST_MAX_IDLE_CONNS" envDefault:"5"`
	MaxConnLifetime time.Duration `env:"SQLREST_MAX_CONN_LIFETIME" envDefault:"30m"`

	RetryAttempts int           `env:"SQLREST_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval time.Duration `env:"SQLREST_RETRY_INTERVAL" envDefault:"1s"`
}

// Load reads Config from the environment. A .env file in the working
// directory is loaded first if present; variables already set win.
func Load() (Config, error) {
	// The .env file is optional.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}
