// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validate checks that the final merged [ClientConfig] is usable at
// startup. It returns the first failing group's sentinel, wrapped with the
// offending field.
func (cfg *ClientConfig) validate() error {
	if err := cfg.validateAdapter(); err != nil {
		return err
	}

	switch cfg.Storage.Driver {
	case DriverSQLite:
		if cfg.Storage.DSN == "" {
			return fmt.Errorf("%w: empty sqlite dsn", ErrInvalidStorageConfigs)
		}
	case DriverBadger:
		if cfg.Storage.Dir == "" {
			return fmt.Errorf("%w: empty badger dir", ErrInvalidStorageConfigs)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.Driver)
	}

	if cfg.Workers.ConnectivityInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.OfflineDemoEnabled && (cfg.App.OfflineDemoEmail == "" || cfg.App.OfflineDemoPassword == "") {
		return fmt.Errorf("%w: offline demo enabled without credentials", ErrInvalidAppConfigs)
	}

	for name, path := range map[string]string{
		"login":        cfg.Routes.Login,
		"register":     cfg.Routes.Register,
		"presentation": cfg.Routes.Presentation,
		"onboarding":   cfg.Routes.Onboarding,
		"main":         cfg.Routes.Main,
		"profile":      cfg.Routes.Profile,
	} {
		if !strings.HasPrefix(path, "/") {
			return fmt.Errorf("%w: %s route %q", ErrInvalidRoutesConfigs, name, path)
		}
	}

	return nil
}

func (cfg *ClientConfig) validateAdapter() error {
	if cfg.Adapter.BaseURL == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	u, err := url.Parse(cfg.Adapter.BaseURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("%w: bad base url %q", ErrInvalidAdapterConfigs, cfg.Adapter.BaseURL)
	}

	return nil
}
