package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"
)

// URLValue is a flag.Value that accepts absolute http(s) URLs only.
type URLValue struct {
	URL string
}

// ParseFlags parses configuration flags from args (without the program
// name). Unknown flags are an error.
//
// Flags:
//
//	-api-url API base URL (e.g. https://api.fitiplus.com)
//	-api-version versioned path prefix (e.g. v1)
//	-timeout request timeout (e.g. "10s", "2500ms")
//	-storage storage driver: sqlite, badger or memory
//	-d SQLite database path
//	-data-dir Badger data directory
//	-c/-config json file path with configs
//	-log-file log file path
//	-offline-demo enable the offline demo login
//	-verify-expiry check the token "exp" claim
//	-probe-interval connectivity probe interval (e.g. "30s")
func ParseFlags(args []string) (*StructuredConfig, error) {
	var apiURL URLValue
	var apiVersion string
	var requestTimeout time.Duration
	var storageDriver string
	var databaseDSN string
	var dataDir string
	var jsonConfigPath string
	var logFile string
	var offlineDemo bool
	var verifyExpiry bool
	var probeInterval time.Duration

	fs := flag.NewFlagSet("fitiplus", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&apiURL, "api-url", "API base URL")
	fs.StringVar(&apiVersion, "api-version", "", "API version path prefix")
	fs.DurationVar(&requestTimeout, "timeout", 0, "Request timeout (e.g., 10s)")
	fs.StringVar(&storageDriver, "storage", "", "Storage driver: sqlite, badger or memory")
	fs.StringVar(&databaseDSN, "d", "", "SQLite database path")
	fs.StringVar(&dataDir, "data-dir", "", "Badger data directory")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.BoolVar(&offlineDemo, "offline-demo", false, "Enable offline demo login")
	fs.BoolVar(&verifyExpiry, "verify-expiry", false, "Verify token expiry claim")
	fs.DurationVar(&probeInterval, "probe-interval", 0, "Connectivity probe interval (e.g., 30s)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			OfflineDemoEnabled: offlineDemo,
			VerifyTokenExpiry:  verifyExpiry,
			LogFile:            logFile,
		},
		Adapter: Adapter{
			BaseURL:        apiURL.String(),
			Version:        apiVersion,
			RequestTimeout: Duration(requestTimeout),
		},
		Storage: Storage{
			Driver: storageDriver,
			DSN:    databaseDSN,
			Dir:    dataDir,
		},
		Workers: Workers{
			ConnectivityInterval: probeInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func (u *URLValue) String() string {
	return u.URL
}

// Set validates s as an absolute http or https URL and stores it without a
// trailing slash.
func (u *URLValue) Set(s string) error {
	parsed, err := url.Parse(s)
	if err != nil {
		return err
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return errors.New("need URL with http or https scheme")
	}
	if parsed.Host == "" {
		return errors.New("need URL with a host")
	}

	u.URL = strings.TrimRight(s, "/")
	return nil
}
