// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Defaults mirror the values the web build shipped with.
const (
	DefaultAPIBaseURL           = "https://api.fitiplus.com"
	DefaultAPIVersion           = "v1"
	DefaultRequestTimeout       = 10 * time.Second
	DefaultStorageDriver        = DriverSQLite
	DefaultSQLiteDSN            = "fitiplus.db"
	DefaultBadgerDir            = "fitiplus-data"
	DefaultConnectivityInterval = 30 * time.Second

	// DefaultOfflineDemoEmail and DefaultOfflineDemoPassword are the single
	// demonstration pair accepted by the offline login. They are only
	// consulted when APP_OFFLINE_DEMO_ENABLED is set.
	DefaultOfflineDemoEmail    = "admin@fitiplus.com"
	DefaultOfflineDemoPassword = "admin123"
)

// Storage drivers accepted by STORAGE_DRIVER.
const (
	DriverSQLite = "sqlite"
	DriverBadger = "badger"
	DriverMemory = "memory"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			OfflineDemoEmail:    DefaultOfflineDemoEmail,
			OfflineDemoPassword: DefaultOfflineDemoPassword,
		},
		Adapter: Adapter{
			BaseURL:        DefaultAPIBaseURL,
			Version:        DefaultAPIVersion,
			RequestTimeout: Duration(DefaultRequestTimeout),
		},
		Storage: Storage{
			Driver: DefaultStorageDriver,
			DSN:    DefaultSQLiteDSN,
			Dir:    DefaultBadgerDir,
		},
		Workers: Workers{
			ConnectivityInterval: DefaultConnectivityInterval,
		},
		Routes: Routes{
			Login:        "/login",
			Register:     "/register-client",
			Presentation: "/presentation",
			Onboarding:   "/form",
			Main:         "/tabs/tab1",
			Profile:      "/profile",
		},
	}
}
