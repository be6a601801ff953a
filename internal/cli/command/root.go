package command

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/MKhiriev/fitiplus/internal/client"
	"github.com/MKhiriev/fitiplus/internal/config"
	"github.com/MKhiriev/fitiplus/internal/logger"
	"github.com/MKhiriev/fitiplus/models"
)

const metaApp = "fitiplus"

// loadConfig reads the client configuration without command-line flags;
// fitictl flags are applied on top by [applyGlobalFlags].
var loadConfig = func() (*config.ClientConfig, error) {
	return config.GetClientConfig(nil)
}

// App creates the CLI application.
func App(build models.AppBuildInfo) *cli.App {
	return &cli.App{
		Name:    "fitictl",
		Usage:   "FitiPlus session command-line tool",
		Version: build.String(),
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			LoginCommand(),
			RegisterCommand(),
			LogoutCommand(),
			RefreshCommand(),
			WhoAmICommand(),
			ProfileCommand(),
			PasswdCommand(),
			ResetPasswordCommand(),
			OnboardingCommand(),
			RouteCommand(),
		},
		Before: before,
		After:  after,
	}
}

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "api",
			Aliases: []string{"a"},
			Usage:   "API origin (e.g., http://127.0.0.1:8080)",
		},
		&cli.DurationFlag{
			Name:    "timeout",
			Aliases: []string{"t"},
			Usage:   "Request timeout",
		},
		&cli.StringFlag{
			Name:  "storage",
			Usage: "Session storage driver: sqlite, badger, memory",
		},
		&cli.StringFlag{
			Name:  "dsn",
			Usage: "SQLite database path",
		},
		&cli.StringFlag{
			Name:  "dir",
			Usage: "Badger data directory",
		},
		&cli.BoolFlag{
			Name:  "offline",
			Usage: "Treat the API as unreachable without probing it",
		},
		&cli.BoolFlag{
			Name:  "offline-demo",
			Usage: "Allow the offline demo login",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: table, json",
			Value:   outputTable,
		},
		&cli.StringFlag{
			Name:  "log-file",
			Usage: "Append JSON logs to this file",
		},
	}
}

// applyGlobalFlags overrides cfg with the flags that were set.
func applyGlobalFlags(c *cli.Context, cfg *config.ClientConfig) {
	if c.IsSet("api") {
		cfg.Adapter.BaseURL = c.String("api")
	}
	if c.IsSet("timeout") {
		cfg.Adapter.RequestTimeout = c.Duration("timeout")
	}
	if c.IsSet("storage") {
		cfg.Storage.Driver = c.String("storage")
	}
	if c.IsSet("dsn") {
		cfg.Storage.DSN = c.String("dsn")
	}
	if c.IsSet("dir") {
		cfg.Storage.Dir = c.String("dir")
	}
	if c.IsSet("offline-demo") {
		cfg.App.OfflineDemoEnabled = c.Bool("offline-demo")
	}
	if c.IsSet("log-file") {
		cfg.App.LogFile = c.String("log-file")
	}
}

// before assembles the client runtime and probes connectivity once, unless
// --offline forces it down, so the offline demo and the offline session
// paths behave as in the TUI.
func before(c *cli.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return cli.Exit(fmt.Sprintf("configuration error: %v", err), exitUsage)
	}
	applyGlobalFlags(c, cfg)

	log := logger.NewClientLogger("fitictl", cfg.App.LogFile)
	app, err := client.NewApp(c.Context, cfg, log)
	if err != nil {
		return cli.Exit(fmt.Sprintf("startup error: %v", err), exitFailure)
	}

	if c.Bool("offline") {
		app.Connectivity.SetOnline(false)
	} else {
		probeCtx, cancel := context.WithTimeout(c.Context, probeTimeout(cfg))
		defer cancel()
		app.Connectivity.Probe(probeCtx)
	}

	c.App.Metadata[metaApp] = app
	return nil
}

func after(c *cli.Context) error {
	if app, ok := c.App.Metadata[metaApp].(*client.App); ok {
		return app.Close()
	}
	return nil
}

func probeTimeout(cfg *config.ClientConfig) time.Duration {
	if t := cfg.Adapter.RequestTimeout; t > 0 && t < 3*time.Second {
		return t
	}
	return 3 * time.Second
}

var errNoApp = errors.New("client runtime is not initialised")

// getApp retrieves the runtime created in before.
func getApp(c *cli.Context) (*client.App, error) {
	if app, ok := c.App.Metadata[metaApp].(*client.App); ok {
		return app, nil
	}
	return nil, errNoApp
}
