package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURLValue_Set(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		expected    string
	}{
		{name: "https", input: "https://api.fitiplus.com", expected: "https://api.fitiplus.com"},
		{name: "trailing slash trimmed", input: "http://localhost:8080/", expected: "http://localhost:8080"},
		{name: "no scheme", input: "localhost:8080", expectError: true},
		{name: "ftp scheme", input: "ftp://files.local", expectError: true},
		{name: "no host", input: "http://", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var u URLValue
			err := u.Set(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, u.String())
		})
	}
}

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-api-url", "http://127.0.0.1:9000",
		"-api-version", "v2",
		"-timeout", "1500ms",
		"-storage", "badger",
		"-d", "client.db",
		"-data-dir", "/tmp/fiti",
		"-config", "cfg.json",
		"-log-file", "client.log",
		"-offline-demo",
		"-verify-expiry",
		"-probe-interval", "1m",
	})
	require.NoError(t, err)

	assert.Equal(t, "http://127.0.0.1:9000", cfg.Adapter.BaseURL)
	assert.Equal(t, "v2", cfg.Adapter.Version)
	assert.Equal(t, 1500*time.Millisecond, cfg.Adapter.RequestTimeout.Std())
	assert.Equal(t, "badger", cfg.Storage.Driver)
	assert.Equal(t, "client.db", cfg.Storage.DSN)
	assert.Equal(t, "/tmp/fiti", cfg.Storage.Dir)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
	assert.Equal(t, "client.log", cfg.App.LogFile)
	assert.True(t, cfg.App.OfflineDemoEnabled)
	assert.True(t, cfg.App.VerifyTokenExpiry)
	assert.Equal(t, time.Minute, cfg.Workers.ConnectivityInterval)
}

func TestParseFlags_Empty(t *testing.T) {
	cfg, err := ParseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	_, err := ParseFlags([]string{"-bogus"})
	assert.Error(t, err)
}
