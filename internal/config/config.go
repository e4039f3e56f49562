// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// Environment modes.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Database drivers registered by the store package.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// StructuredConfig is the top-level configuration container for the
// invoice tracker. It is populated by merging defaults, a dotenv file,
// environment variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env tag lookups (caarlos0/env).
//   - env: environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds session, password hashing and environment settings.
	App App `envPrefix:"APP_"`

	// Storage holds the relational database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the HTTP listener settings.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds outbound integration settings (mail delivery).
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds background worker settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file,
	// merged on top of every other source.
	// Env: CONFIG, flag: -c / -config.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration.
type App struct {
	// Environment is the run mode: "development" or "production".
	// Production turns on Secure/SameSite=None cookies, hides error
	// details and stops exposing confirmation tokens.
	// Env: APP_ENV
	Environment string `env:"ENV"`

	// SessionSecret signs session tokens. Required.
	// Env: APP_SESSION_SECRET
	SessionSecret string `env:"SESSION_SECRET"`

	// SessionIssuer is the "iss" claim of session tokens.
	// Env: APP_SESSION_ISSUER
	SessionIssuer string `env:"SESSION_ISSUER"`

	// SessionDuration is the lifetime of a login session.
	// Env: APP_SESSION_DURATION
	SessionDuration time.Duration `env:"SESSION_DURATION"`

	// BcryptCost is the work factor used when hashing passwords.
	// Env: APP_BCRYPT_COST
	BcryptCost int `env:"BCRYPT_COST"`

	// Version is reported by the /version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// FrontendOrigin is the only origin allowed by CORS.
	// Env: APP_FRONTEND_ORIGIN
	FrontendOrigin string `env:"FRONTEND_ORIGIN"`

	// ConfirmationURL is the base of the link mailed after registration.
	// The token is appended as the "token" query parameter.
	// Env: APP_CONFIRMATION_URL
	ConfirmationURL string `env:"CONFIRMATION_URL"`
}

// IsProduction reports whether the application runs in production mode.
func (a App) IsProduction() bool {
	return a.Environment == EnvProduction
}

// Storage groups the persistence configuration.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds connection and pool settings for the relational database.
type DB struct {
	// Driver is "pgx" (PostgreSQL) or "sqlite3".
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the data source name. Required.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// MaxOpenConns caps the pool size.
	// Env: STORAGE_DB_MAX_OPEN_CONNS
	MaxOpenConns int `env:"MAX_OPEN_CONNS"`

	// ConnMaxIdleTime closes connections idle for longer than this.
	// Env: STORAGE_DB_CONN_MAX_IDLE_TIME
	ConnMaxIdleTime time.Duration `env:"CONN_MAX_IDLE_TIME"`

	// ConnectTimeout bounds the startup ping.
	// Env: STORAGE_DB_CONNECT_TIMEOUT
	ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT"`
}

// Server holds network and timeout settings for the HTTP listener.
type Server struct {
	// HTTPAddress is the TCP listen address (e.g. ":5000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the handling of a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`

	// AuthRateLimit is the sustained number of register/login requests per
	// second allowed from one client address.
	// Env: SERVER_AUTH_RATE_LIMIT
	AuthRateLimit float64 `env:"AUTH_RATE_LIMIT"`

	// AuthRateBurst is the burst size of the auth limiter.
	// Env: SERVER_AUTH_RATE_BURST
	AuthRateBurst int `env:"AUTH_RATE_BURST"`
}

// Adapter holds configuration for outbound integrations.
type Adapter struct {
	Mail Mail `envPrefix:"MAIL_"`
}

// Mail configures the HTTP mail delivery API. When APIURL is empty,
// confirmation mails are only logged.
type Mail struct {
	// Env: ADAPTER_MAIL_API_URL
	APIURL string `env:"API_URL"`
	// Env: ADAPTER_MAIL_API_KEY
	APIKey string `env:"API_KEY"`
	// Env: ADAPTER_MAIL_FROM
	From string `env:"FROM"`
	// Env: ADAPTER_MAIL_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background workers.
type Workers struct {
	// SessionCleanupInterval is how often expired sessions are purged.
	// Env: WORKERS_SESSION_CLEANUP_INTERVAL
	SessionCleanupInterval time.Duration `env:"SESSION_CLEANUP_INTERVAL"`
}

// GetStructuredConfig loads, merges and validates the configuration from all
// sources in the following priority order (last source wins for non-zero
// fields):
//  1. Defaults
//  2. Environment variables, after loading `.env.<mode>.local` and `.env`
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
