package client

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/fitiplus/internal/config"
	"github.com/MKhiriev/fitiplus/internal/guard"
	"github.com/MKhiriev/fitiplus/internal/logger"
	"github.com/MKhiriev/fitiplus/internal/session"
	"github.com/MKhiriev/fitiplus/internal/store"
	"github.com/MKhiriev/fitiplus/internal/stubapi"
	"github.com/MKhiriev/fitiplus/models"
)

func testConfig(baseURL string) *config.ClientConfig {
	cfg := config.Default()
	cfg.Adapter.BaseURL = baseURL
	cfg.Adapter.RequestTimeout = 5 * time.Second
	cfg.Storage.Driver = config.DriverMemory
	return cfg
}

func TestNewApp_RestoresPersistedSession(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryKeyValueStore()

	// a previous run left a session behind
	previous := session.NewStore(kv, logger.Nop())
	require.NoError(t, previous.Set(ctx, &models.Identity{ID: "1", Email: "admin@fitiplus.com"}, "tok", "ref"))

	app, err := newApp(ctx, testConfig("http://127.0.0.1:1"), kv, logger.Nop())
	require.NoError(t, err)

	assert.True(t, app.Services.AuthService.IsAuthenticated())
	assert.Equal(t, "1", app.Session.Current().ID)

	path, d := app.Router.Follow(ctx, guard.RouteRoot)
	assert.Equal(t, guard.Allowed, d.State)
	assert.Equal(t, config.Default().Routes.Main, path)
}

func TestNewApp_InvalidAdapterConfig(t *testing.T) {
	cfg := testConfig("")
	_, err := NewApp(context.Background(), cfg, logger.Nop())
	assert.Error(t, err)
}

func TestApp_LoginAgainstStub(t *testing.T) {
	stub := stubapi.NewHandler(config.StubAPI{Version: "v1", SignKey: "k", AccessTokenTTL: time.Minute}, logger.Nop())
	srv := httptest.NewServer(stub.Init())
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app, err := NewApp(ctx, testConfig(srv.URL), logger.Nop())
	require.NoError(t, err)
	app.Start(ctx)
	defer func() { assert.NoError(t, app.Close()) }()

	require.Eventually(t, app.Connectivity.Online, time.Second, 10*time.Millisecond)

	res := app.Services.AuthService.Login(ctx, stubapi.SeedEmail, stubapi.SeedPassword)
	require.True(t, res.OK(), res.Message)

	path, _ := app.Router.Follow(ctx, config.Default().Routes.Login)
	assert.Equal(t, config.Default().Routes.Main, path)
}
