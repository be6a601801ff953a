package config

import (
	"fmt"
	"strings"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// OfflineDemoEnabled allows the demo login when the API is unreachable.
	OfflineDemoEnabled bool
	// OfflineDemoEmail and OfflineDemoPassword are the accepted demo pair.
	OfflineDemoEmail    string
	OfflineDemoPassword string
	// VerifyTokenExpiry enables the "exp" claim check in token validity.
	VerifyTokenExpiry bool
	// LogFile is the JSON log destination; empty means a "logs" file next
	// to the executable.
	LogFile string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// BaseURL is the API origin without the version segment.
	BaseURL string
	// Version is the path segment appended to BaseURL.
	Version string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// APIRoot returns BaseURL joined with Version, e.g.
// "https://api.fitiplus.com/v1".
func (a ClientAdapter) APIRoot() string {
	base := strings.TrimRight(a.BaseURL, "/")
	version := strings.Trim(a.Version, "/")
	if version == "" {
		return base
	}
	return base + "/" + version
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// Driver is one of [DriverSQLite], [DriverBadger] or [DriverMemory].
	Driver string
	// DSN is the SQLite database path.
	DSN string
	// Dir is the Badger data directory.
	Dir string
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// ConnectivityInterval defines how often API reachability is probed.
	ConnectivityInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
	Routes  Routes
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// args are the command-line arguments without the program name.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := NewClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// NewClientConfig maps the fields relevant to the client runtime out of cfg.
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			OfflineDemoEnabled:  cfg.App.OfflineDemoEnabled,
			OfflineDemoEmail:    cfg.App.OfflineDemoEmail,
			OfflineDemoPassword: cfg.App.OfflineDemoPassword,
			VerifyTokenExpiry:   cfg.App.VerifyTokenExpiry,
			LogFile:             cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			BaseURL:        strings.TrimRight(cfg.Adapter.BaseURL, "/"),
			Version:        cfg.Adapter.Version,
			RequestTimeout: cfg.Adapter.RequestTimeout.Std(),
		},
		Storage: ClientStorage{
			Driver: strings.ToLower(cfg.Storage.Driver),
			DSN:    cfg.Storage.DSN,
			Dir:    cfg.Storage.Dir,
		},
		Workers: ClientWorkers{ConnectivityInterval: cfg.Workers.ConnectivityInterval},
		Routes:  cfg.Routes,
	}
}

// Default returns the client config built from defaults only. It is
// used by tests and by tools that do not read the environment.
func Default() *ClientConfig {
	return NewClientConfig(defaultConfig())
}
