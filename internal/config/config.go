// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// Device binding policies accepted by App.DevicePolicy.
const (
	DevicePolicyStrict  = "strict"
	DevicePolicyLenient = "lenient"
)

// Password comparison schemes accepted by App.PasswordScheme.
const (
	PasswordSchemePlain  = "plain"
	PasswordSchemeBcrypt = "bcrypt"
)

// Access window placement accepted by App.WindowCheck.
const (
	WindowCheckBeforePassword = "before_password"
	WindowCheckAfterPassword  = "after_password"
)

// StructuredConfig is the top-level configuration container of the access
// gate. It aggregates all sub-configurations and is populated by merging
// values from a JSON file, environment variables and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the authorization policy: allowed addresses, device binding,
	// access window and session lifetime.
	App App `envPrefix:"APP_"`

	// Storage holds the relational store connection settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the HTTP listener settings.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the CLI client settings.
	Adapter Adapter `envPrefix:"CLIENT_"`

	// Workers holds background job settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// Port is the bare listening port used when Server.HTTPAddress is empty.
	// Env: PORT
	Port string `env:"PORT"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds the authorization policy of the gate.
type App struct {
	// AllowedIPs lists the client addresses permitted to log in.
	// Env: APP_ALLOWED_IPS (comma separated)
	AllowedIPs []string `env:"ALLOWED_IPS" envSeparator:","`

	// DevicePolicy is either "strict" or "lenient".
	// Env: APP_DEVICE_POLICY
	DevicePolicy string `env:"DEVICE_POLICY"`

	// PasswordScheme is either "plain" (byte equality) or "bcrypt".
	// Env: APP_PASSWORD_SCHEME
	PasswordScheme string `env:"PASSWORD_SCHEME"`

	// SessionTTL is the validity window of an issued session (e.g. "8h").
	// Env: APP_SESSION_TTL
	SessionTTL time.Duration `env:"SESSION_TTL"`

	// WindowCheck places the access window check before or after the
	// password comparison.
	// Env: APP_WINDOW_CHECK
	WindowCheck string `env:"WINDOW_CHECK"`

	// Timezone is the IANA zone the access window is evaluated in.
	// Env: APP_TIMEZONE
	Timezone string `env:"TIMEZONE"`

	// WindowStartHour and WindowEndHour bound the access window as
	// [start, end) in local hours.
	// Env: APP_WINDOW_START_HOUR, APP_WINDOW_END_HOUR
	WindowStartHour int `env:"WINDOW_START_HOUR"`
	WindowEndHour   int `env:"WINDOW_END_HOUR"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// CORSOrigin is written to Access-Control-Allow-Origin.
	// Env: APP_CORS_ORIGIN
	CORSOrigin string `env:"CORS_ORIGIN"`

	// LoginRatePerMinute and LoginRateBurst limit login requests per client
	// address. A negative rate disables the limiter.
	// Env: APP_LOGIN_RATE_PER_MINUTE, APP_LOGIN_RATE_BURST
	LoginRatePerMinute int `env:"LOGIN_RATE_PER_MINUTE"`
	LoginRateBurst     int `env:"LOGIN_RATE_BURST"`
}

// Storage groups the configuration of the persistence backend.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the driver by scheme: "postgres://" and "postgresql://"
	// open PostgreSQL through pgx, "sqlite://" or "file:" open SQLite.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// QueryTimeout bounds every single store call.
	// Env: STORAGE_DB_QUERY_TIMEOUT
	QueryTimeout time.Duration `env:"QUERY_TIMEOUT"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:3000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the settings of the CLI client.
type Adapter struct {
	// ServerURL is the base URL of the gate (e.g. "http://localhost:3000").
	// Env: CLIENT_SERVER_URL
	ServerURL string `env:"SERVER_URL"`

	// RequestTimeout bounds every client request.
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// DeviceToken identifies this client installation.
	// Env: CLIENT_DEVICE_TOKEN
	DeviceToken string `env:"DEVICE_TOKEN"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SessionSweepInterval is how often expired sessions are deactivated.
	// Env: WORKERS_SESSION_SWEEP_INTERVAL
	SessionSweepInterval time.Duration `env:"SESSION_SWEEP_INTERVAL"`

	// AuditQueueSize is the capacity of the login attempt queue.
	// Env: WORKERS_AUDIT_QUEUE_SIZE
	AuditQueueSize int `env:"AUDIT_QUEUE_SIZE"`
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources. Command-line flags are read from os.Args.
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(".env").
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
