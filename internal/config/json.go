package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		OfflineDemoEnabled  bool   `json:"offline_demo_enabled"`
		OfflineDemoEmail    string `json:"offline_demo_email"`
		OfflineDemoPassword string `json:"offline_demo_password"`
		VerifyTokenExpiry   bool   `json:"verify_token_expiry"`
		LogFile             string `json:"log_file"`
	} `json:"app,omitempty"`

	API struct {
		BaseURL string   `json:"base_url"`
		Version string   `json:"version"`
		Timeout Duration `json:"timeout"`
	} `json:"api,omitempty"`

	Storage struct {
		Driver string `json:"driver"`
		DSN    string `json:"dsn"`
		Dir    string `json:"dir"`
	} `json:"storage,omitempty"`

	Workers struct {
		ConnectivityInterval Duration `json:"connectivity_interval"`
	} `json:"workers,omitempty"`

	Routes struct {
		Login        string `json:"login"`
		Register     string `json:"register"`
		Presentation string `json:"presentation"`
		Onboarding   string `json:"onboarding"`
		Main         string `json:"main"`
		Profile      string `json:"profile"`
	} `json:"routes,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			OfflineDemoEnabled:  jsonCfg.App.OfflineDemoEnabled,
			OfflineDemoEmail:    jsonCfg.App.OfflineDemoEmail,
			OfflineDemoPassword: jsonCfg.App.OfflineDemoPassword,
			VerifyTokenExpiry:   jsonCfg.App.VerifyTokenExpiry,
			LogFile:             jsonCfg.App.LogFile,
		},
		Adapter: Adapter{
			BaseURL:        jsonCfg.API.BaseURL,
			Version:        jsonCfg.API.Version,
			RequestTimeout: jsonCfg.API.Timeout,
		},
		Storage: Storage{
			Driver: jsonCfg.Storage.Driver,
			DSN:    jsonCfg.Storage.DSN,
			Dir:    jsonCfg.Storage.Dir,
		},
		Workers: Workers{
			ConnectivityInterval: time.Duration(jsonCfg.Workers.ConnectivityInterval),
		},
		Routes: Routes{
			Login:        jsonCfg.Routes.Login,
			Register:     jsonCfg.Routes.Register,
			Presentation: jsonCfg.Routes.Presentation,
			Onboarding:   jsonCfg.Routes.Onboarding,
			Main:         jsonCfg.Routes.Main,
			Profile:      jsonCfg.Routes.Profile,
		},
	}

	return cfg, nil
}
