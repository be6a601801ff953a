package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *ClientConfig)
		wantErr error
	}{
		{name: "defaults are valid", mutate: func(c *ClientConfig) {}},
		{name: "empty base url", mutate: func(c *ClientConfig) { c.Adapter.BaseURL = "" }, wantErr: ErrInvalidAdapterConfigs},
		{name: "non-http base url", mutate: func(c *ClientConfig) { c.Adapter.BaseURL = "ftp://x" }, wantErr: ErrInvalidAdapterConfigs},
		{name: "zero timeout", mutate: func(c *ClientConfig) { c.Adapter.RequestTimeout = 0 }, wantErr: ErrInvalidAdapterConfigs},
		{name: "unknown driver", mutate: func(c *ClientConfig) { c.Storage.Driver = "redis" }, wantErr: ErrInvalidStorageConfigs},
		{name: "sqlite without dsn", mutate: func(c *ClientConfig) { c.Storage.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "badger without dir", mutate: func(c *ClientConfig) {
			c.Storage.Driver = DriverBadger
			c.Storage.Dir = ""
		}, wantErr: ErrInvalidStorageConfigs},
		{name: "memory needs nothing", mutate: func(c *ClientConfig) {
			c.Storage.Driver = DriverMemory
			c.Storage.DSN = ""
			c.Storage.Dir = ""
		}},
		{name: "zero probe interval", mutate: func(c *ClientConfig) { c.Workers.ConnectivityInterval = 0 }, wantErr: ErrInvalidWorkerConfigs},
		{name: "demo without password", mutate: func(c *ClientConfig) {
			c.App.OfflineDemoEnabled = true
			c.App.OfflineDemoPassword = ""
		}, wantErr: ErrInvalidAppConfigs},
		{name: "relative route", mutate: func(c *ClientConfig) { c.Routes.Main = "tabs" }, wantErr: ErrInvalidRoutesConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClientAdapter_APIRoot(t *testing.T) {
	assert.Equal(t, "https://api.fitiplus.com/v1", ClientAdapter{BaseURL: "https://api.fitiplus.com/", Version: "/v1/"}.APIRoot())
	assert.Equal(t, "http://h", ClientAdapter{BaseURL: "http://h"}.APIRoot())
}
