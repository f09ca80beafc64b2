package config

import (
	"time"
)

// Store drivers accepted by DATABASE_DRIVER.
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
)

type DB struct {
	Driver          string        `envconfig:"DRIVER" default:"memory"`
	Url             string        `envconfig:"URL"`
	MaxOpenConns    int           `envconfig:"MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns    int           `envconfig:"MAX_IDLE_CONNS" default:"25"`
	ConnMaxLifetime time.Duration `envconfig:"CONN_MAX_LIFETIME" default:"1h"`
	Migrate         bool          `envconfig:"MIGRATE" default:"true"`
}

type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m"`
}

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"text"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[bankcore]"`
}

type Server struct {
	Scheme string `envconfig:"SCHEME" default:"http"`
	Host   string `envconfig:"HOST" default:"localhost"`
	Port   int    `envconfig:"PORT" default:"3000"`
}

// Seed controls loading of the demo accounts and bank into an empty store.
type Seed struct {
	Enabled bool `envconfig:"ENABLED" default:"true"`
}

type App struct {
	Env       string     `envconfig:"APP_ENV" default:"development"`
	Server    *Server    `envconfig:"SERVER"`
	Log       *Log       `envconfig:"LOG"`
	DB        *DB        `envconfig:"DATABASE"`
	RateLimit *RateLimit `envconfig:"RATE_LIMIT"`
	Seed      *Seed      `envconfig:"SEED"`
}
