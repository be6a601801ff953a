// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package stubapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/fitiplus/internal/config"
	"github.com/MKhiriev/fitiplus/internal/logger"
	"github.com/MKhiriev/fitiplus/models"
)

func testConfig() config.StubAPI {
	return config.StubAPI{
		Address:        "127.0.0.1:0",
		Version:        "v1",
		SignKey:        "test-secret",
		AccessTokenTTL: time.Minute,
	}
}

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	return newHandler(testConfig(), logger.Nop(), bcrypt.MinCost)
}

// do sends body as JSON to the handler's router and returns the recorder.
func do(t *testing.T, h http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func loginSeed(t *testing.T, router http.Handler) models.AuthResponse {
	t.Helper()
	rec := do(t, router, http.MethodPost, "/v1/auth/login", "", models.LoginRequest{Email: SeedEmail, Password: SeedPassword})
	require.Equal(t, http.StatusOK, rec.Code)
	return decode[models.AuthResponse](t, rec)
}

func TestLogin(t *testing.T) {
	router := newTestHandler(t).Init()

	tests := []struct {
		name       string
		body       any
		wantStatus int
		wantMsg    string
	}{
		{"seeded account", models.LoginRequest{Email: SeedEmail, Password: SeedPassword}, http.StatusOK, msgLoginSucceeded},
		{"email is case insensitive", models.LoginRequest{Email: " ADMIN@fitiplus.com ", Password: SeedPassword}, http.StatusOK, msgLoginSucceeded},
		{"wrong password", models.LoginRequest{Email: SeedEmail, Password: "nope"}, http.StatusUnauthorized, msgInvalidCredentials},
		{"unknown email", models.LoginRequest{Email: "ghost@fitiplus.com", Password: SeedPassword}, http.StatusUnauthorized, msgInvalidCredentials},
		{"invalid json", "not an object", http.StatusBadRequest, msgInvalidJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, router, http.MethodPost, "/v1/auth/login", "", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			resp := decode[models.AuthResponse](t, rec)
			assert.Equal(t, tt.wantMsg, resp.Message)
			if tt.wantStatus == http.StatusOK {
				assert.NotEmpty(t, resp.AccessToken)
				assert.NotEmpty(t, resp.RefreshToken)
				require.NotNil(t, resp.User)
				assert.Equal(t, SeedUserID, resp.User.ID)
			}
		})
	}
}

func TestRegister(t *testing.T) {
	router := newTestHandler(t).Init()
	req := models.RegisterRequest{Name: "Ana Pérez", Email: "ana@fitiplus.com", Password: "secret1"}

	rec := do(t, router, http.MethodPost, "/v1/auth/register-client", "", req)
	require.Equal(t, http.StatusCreated, rec.Code)
	resp := decode[models.AuthResponse](t, rec)
	assert.NotEmpty(t, resp.AccessToken)
	require.NotNil(t, resp.User)
	assert.Equal(t, "Ana Pérez", resp.User.Name)

	t.Run("duplicate email", func(t *testing.T) {
		rec := do(t, router, http.MethodPost, "/v1/auth/register-client", "", req)
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, msgEmailTaken, decode[models.ErrorResponse](t, rec).Message)
	})

	t.Run("missing fields", func(t *testing.T) {
		rec := do(t, router, http.MethodPost, "/v1/auth/register-client", "", models.RegisterRequest{Email: "x@y.z"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, msgMissingFields, decode[models.ErrorResponse](t, rec).Message)
	})

	t.Run("new account can log in", func(t *testing.T) {
		rec := do(t, router, http.MethodPost, "/v1/auth/login", "", models.LoginRequest{Email: req.Email, Password: req.Password})
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRefresh_RotatesToken(t *testing.T) {
	router := newTestHandler(t).Init()
	first := loginSeed(t, router)

	rec := do(t, router, http.MethodPost, "/v1/auth/refresh", "", models.RefreshRequest{RefreshToken: first.RefreshToken})
	require.Equal(t, http.StatusOK, rec.Code)
	second := decode[models.AuthResponse](t, rec)
	assert.NotEmpty(t, second.AccessToken)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)

	// the consumed token is gone
	rec = do(t, router, http.MethodPost, "/v1/auth/refresh", "", models.RefreshRequest{RefreshToken: first.RefreshToken})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogout_RevokesTokens(t *testing.T) {
	router := newTestHandler(t).Init()
	auth := loginSeed(t, router)

	rec := do(t, router, http.MethodPost, "/v1/auth/logout", auth.AccessToken, models.LogoutRequest{RefreshToken: auth.RefreshToken})
	require.Equal(t, http.StatusOK, rec.Code)
	msg := decode[models.MessageResponse](t, rec)
	assert.True(t, msg.Success)

	rec = do(t, router, http.MethodGet, "/v1/user/profile", auth.AccessToken, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, router, http.MethodPost, "/v1/auth/refresh", "", models.RefreshRequest{RefreshToken: auth.RefreshToken})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestChangePassword(t *testing.T) {
	router := newTestHandler(t).Init()
	auth := loginSeed(t, router)

	tests := []struct {
		name       string
		req        models.ChangePasswordRequest
		wantStatus int
		wantMsg    string
	}{
		{"wrong current", models.ChangePasswordRequest{CurrentPassword: "bad", NewPassword: "secret2"}, http.StatusBadRequest, msgWrongPassword},
		{"too short", models.ChangePasswordRequest{CurrentPassword: SeedPassword, NewPassword: "abc"}, http.StatusBadRequest, msgPasswordTooShort},
		{"changed", models.ChangePasswordRequest{CurrentPassword: SeedPassword, NewPassword: "secret2"}, http.StatusOK, msgPasswordChanged},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, router, http.MethodPost, "/v1/auth/change-password", auth.AccessToken, tt.req)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMsg, decode[models.MessageResponse](t, rec).Message)
		})
	}

	rec := do(t, router, http.MethodPost, "/v1/auth/login", "", models.LoginRequest{Email: SeedEmail, Password: "secret2"})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestResetPassword(t *testing.T) {
	router := newTestHandler(t).Init()

	rec := do(t, router, http.MethodPost, "/v1/auth/reset-password", "", models.PasswordResetRequest{Email: "nobody@fitiplus.com"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, msgPasswordResetSent, decode[models.MessageResponse](t, rec).Message)

	rec = do(t, router, http.MethodPost, "/v1/auth/reset-password", "", models.PasswordResetRequest{Email: "  "})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProfileAndContent(t *testing.T) {
	router := newTestHandler(t).Init()
	auth := loginSeed(t, router)

	rec := do(t, router, http.MethodGet, "/v1/user/profile", auth.AccessToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	profile := decode[models.ProfileResponse](t, rec)
	require.NotNil(t, profile.User)
	assert.Equal(t, SeedEmail, profile.User.Email)

	rec = do(t, router, http.MethodGet, "/v1/onboarding/stages", auth.AccessToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[models.OnboardingStagesResponse](t, rec).Stages, 3)

	rec = do(t, router, http.MethodGet, "/v1/onboarding/goals", auth.AccessToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[models.GoalsResponse](t, rec).Goals, 3)

	rec = do(t, router, http.MethodGet, "/v1/welcome/cards", auth.AccessToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, decode[models.WelcomeCardsResponse](t, rec).Cards)

	rec = do(t, router, http.MethodGet, "/v1/onboarding/allergies", auth.AccessToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, decode[[]models.Allergy](t, rec))
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	h := newTestHandler(t)
	router := h.Init()

	other := testConfig()
	other.SignKey = "someone-else"
	foreign := newHandler(other, logger.Nop(), bcrypt.MinCost)
	foreignToken := loginSeed(t, foreign.Init()).AccessToken

	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"not bearer", "Basic abc"},
		{"garbage token", "Bearer abc.def.ghi"},
		{"wrong signing key", "Bearer " + foreignToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/user/profile", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, msgSessionExpired, decode[models.ErrorResponse](t, rec).Message)
		})
	}
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	cfg := testConfig()
	cfg.AccessTokenTTL = time.Millisecond
	h := newHandler(cfg, logger.Nop(), bcrypt.MinCost)
	router := h.Init()
	auth := loginSeed(t, router)

	// jwt expiry has one-second resolution
	time.Sleep(1100 * time.Millisecond)

	rec := do(t, router, http.MethodGet, "/v1/user/profile", auth.AccessToken, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
