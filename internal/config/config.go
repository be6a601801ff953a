// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the raw, layered configuration container. Each source
// (flags, env, JSON, defaults) produces one StructuredConfig; they are merged
// by [configBuilder].
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds client behaviour switches: offline demo login, token expiry
	// checks and the log destination.
	App App `envPrefix:"APP_"`

	// Adapter holds the remote API location and request timeout.
	Adapter Adapter `envPrefix:"API_"`

	// Storage selects and configures the durable key-value backend that
	// keeps the session between restarts.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds background worker settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// Routes maps symbolic navigation targets to paths.
	Routes Routes `envPrefix:"ROUTES_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level switches.
type App struct {
	// OfflineDemoEnabled turns on the offline demo login. When connectivity
	// is down, login is checked against the demo credential pair and a
	// locally minted token is stored. Never enable it in production builds.
	// Env: APP_OFFLINE_DEMO_ENABLED
	OfflineDemoEnabled bool `env:"OFFLINE_DEMO_ENABLED"`

	// OfflineDemoEmail is the demo account e-mail.
	// Env: APP_OFFLINE_DEMO_EMAIL
	OfflineDemoEmail string `env:"OFFLINE_DEMO_EMAIL"`

	// OfflineDemoPassword is the demo account password.
	// Env: APP_OFFLINE_DEMO_PASSWORD
	OfflineDemoPassword string `env:"OFFLINE_DEMO_PASSWORD"`

	// VerifyTokenExpiry makes token validity checks decode the JWT "exp"
	// claim (unverified) instead of only checking presence.
	// Env: APP_VERIFY_TOKEN_EXPIRY
	VerifyTokenExpiry bool `env:"VERIFY_TOKEN_EXPIRY"`

	// LogFile is where JSON logs are appended.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Adapter configures the transport to the FitiPlus REST API.
type Adapter struct {
	// BaseURL is the API origin (e.g. "https://api.fitiplus.com").
	// Env: API_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// Version is the versioned path prefix appended to BaseURL (e.g. "v1").
	// Env: API_VERSION
	Version string `env:"VERSION"`

	// RequestTimeout bounds every request. Accepts Go durations ("10s") or
	// a bare number of milliseconds ("10000").
	// Env: API_TIMEOUT
	RequestTimeout Duration `env:"TIMEOUT"`
}

// Storage configures the durable key-value backend.
type Storage struct {
	// Driver is one of "sqlite", "badger" or "memory".
	// Env: STORAGE_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the SQLite database file path.
	// Env: STORAGE_DSN
	DSN string `env:"DSN"`

	// Dir is the Badger data directory.
	// Env: STORAGE_DIR
	Dir string `env:"DIR"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// ConnectivityInterval is how often the API reachability probe runs.
	// Env: WORKERS_CONNECTIVITY_INTERVAL
	ConnectivityInterval time.Duration `env:"CONNECTIVITY_INTERVAL"`
}

// Routes holds the navigation paths guards redirect to.
type Routes struct {
	Login        string `env:"LOGIN"`
	Register     string `env:"REGISTER"`
	Presentation string `env:"PRESENTATION"`
	Onboarding   string `env:"ONBOARDING"`
	Main         string `env:"MAIN"`
	Profile      string `env:"PROFILE"`
}

// GetStructuredConfig loads and merges the configuration from all available
// sources. args are the command-line arguments without the program name.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withFlags(args).
		withEnv().
		withJSON().
		withDefaults().
		build()
}
