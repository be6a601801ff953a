package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/fitiplus/internal/config"
	"github.com/MKhiriev/fitiplus/internal/logger"
	"github.com/MKhiriev/fitiplus/internal/utils"
	"github.com/MKhiriev/fitiplus/models"
)

type httpServerAdapter struct {
	client    *utils.HTTPClient
	healthURL string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the resty implementation of
// [ServerAdapter]. Requests go to cfg.APIRoot() and are bounded by
// cfg.RequestTimeout; retries are disabled so each call is one request.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, errors.New("invalid adapter config: empty base url")
	}
	if cfg.RequestTimeout <= 0 {
		return nil, errors.New("invalid adapter config: request timeout must be positive")
	}

	cfg.BaseURL = base
	return &httpServerAdapter{
		client:    utils.NewHTTPClient(cfg.APIRoot(), cfg.RequestTimeout),
		healthURL: base + pathHealth,
		logger:    logger,
	}, nil
}

// send issues one request and maps transport failures and non-2xx
// statuses to [*APIError].
func (h *httpServerAdapter) send(ctx context.Context, method, path, token string, body any) (*resty.Response, error) {
	req := h.client.R().SetContext(ctx)
	if token != "" {
		req.SetAuthToken(token)
	}
	if body != nil {
		req.SetBody(body)
	}

	started := time.Now()
	resp, err := req.Execute(method, path)
	if err != nil {
		mapped := mapTransportError(err)
		h.logger.Debug().Err(mapped).Str("method", method).Str("path", path).
			Dur("elapsed", time.Since(started)).Msg("request failed")
		return nil, mapped
	}

	h.logger.Debug().Str("method", method).Str("path", path).Int("status", resp.StatusCode()).
		Dur("elapsed", time.Since(started)).Msg("request done")

	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// do is send followed by decoding the 2xx body into out, if out is non-nil.
func (h *httpServerAdapter) do(ctx context.Context, method, path, token string, body, out any) error {
	resp, err := h.send(ctx, method, path, token, body)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if len(bytes.TrimSpace(resp.Body())) == 0 {
		return malformed(errors.New("empty body"))
	}
	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return malformed(err)
	}
	return nil
}

func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	var out models.AuthResponse
	if err := h.do(ctx, http.MethodPost, pathLogin, "", req, &out); err != nil {
		return models.AuthResponse{}, err
	}
	if !out.User.Valid() || out.Access() == "" {
		return models.AuthResponse{}, malformed(errors.New("login response without user or token"))
	}
	return out, nil
}

func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	var out models.AuthResponse
	if err := h.do(ctx, http.MethodPost, pathRegister, "", req, &out); err != nil {
		return models.AuthResponse{}, err
	}
	if out.Access() != "" && !out.User.Valid() {
		return models.AuthResponse{}, malformed(errors.New("register response with token but no user"))
	}
	return out, nil
}

func (h *httpServerAdapter) Logout(ctx context.Context, token string, req models.LogoutRequest) error {
	return h.do(ctx, http.MethodPost, pathLogout, token, req, nil)
}

func (h *httpServerAdapter) Refresh(ctx context.Context, req models.RefreshRequest) (models.AuthResponse, error) {
	var out models.AuthResponse
	if err := h.do(ctx, http.MethodPost, pathRefresh, "", req, &out); err != nil {
		return models.AuthResponse{}, err
	}
	if out.Access() == "" {
		return models.AuthResponse{}, malformed(errors.New("refresh response without token"))
	}
	return out, nil
}

func (h *httpServerAdapter) ChangePassword(ctx context.Context, token string, req models.ChangePasswordRequest) (models.MessageResponse, error) {
	return h.message(ctx, pathChangePassword, token, req)
}

func (h *httpServerAdapter) RequestPasswordReset(ctx context.Context, req models.PasswordResetRequest) (models.MessageResponse, error) {
	return h.message(ctx, pathResetPassword, "", req)
}

// message tolerates an empty 2xx body; these endpoints only acknowledge.
func (h *httpServerAdapter) message(ctx context.Context, path, token string, body any) (models.MessageResponse, error) {
	resp, err := h.send(ctx, http.MethodPost, path, token, body)
	if err != nil {
		return models.MessageResponse{}, err
	}

	raw := bytes.TrimSpace(resp.Body())
	if len(raw) == 0 {
		return models.MessageResponse{Success: true}, nil
	}

	var out models.MessageResponse
	if err = json.Unmarshal(raw, &out); err != nil {
		return models.MessageResponse{}, malformed(err)
	}
	return out, nil
}

// FetchProfile accepts both {"user": {...}} and a bare identity object.
func (h *httpServerAdapter) FetchProfile(ctx context.Context, token string) (*models.Identity, error) {
	var raw json.RawMessage
	if err := h.do(ctx, http.MethodGet, pathProfile, token, nil, &raw); err != nil {
		return nil, err
	}

	var wrapped models.ProfileResponse
	if err := json.Unmarshal(raw, &wrapped); err == nil && wrapped.User.Valid() {
		return wrapped.User, nil
	}
	var bare models.Identity
	if err := json.Unmarshal(raw, &bare); err != nil {
		return nil, malformed(err)
	}
	if !bare.Valid() {
		return nil, malformed(errors.New("profile without id or email"))
	}
	return &bare, nil
}

func (h *httpServerAdapter) WelcomeCards(ctx context.Context, token string) ([]models.WelcomeCard, error) {
	return getList[models.WelcomeCard](ctx, h, pathWelcomeCards, token, "cards")
}

func (h *httpServerAdapter) OnboardingStages(ctx context.Context, token string) ([]models.OnboardingStage, error) {
	return getList[models.OnboardingStage](ctx, h, pathStages, token, "stages")
}

func (h *httpServerAdapter) OnboardingGoals(ctx context.Context, token string) ([]models.Goal, error) {
	return getList[models.Goal](ctx, h, pathGoals, token, "goals")
}

func (h *httpServerAdapter) OnboardingAllergies(ctx context.Context, token string) ([]models.Allergy, error) {
	return getList[models.Allergy](ctx, h, pathAllergies, token, "allergies")
}

// getList decodes either a bare JSON array or an object holding the array
// under field.
func getList[T any](ctx context.Context, h *httpServerAdapter, path, token, field string) ([]T, error) {
	var raw json.RawMessage
	if err := h.do(ctx, http.MethodGet, path, token, nil, &raw); err != nil {
		return nil, err
	}

	var items []T
	if trimmed := bytes.TrimSpace(raw); len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, malformed(err)
		}
		return items, nil
	}

	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(raw, &wrapper); err != nil {
		return nil, malformed(err)
	}
	inner, ok := wrapper[field]
	if !ok {
		return nil, malformed(fmt.Errorf("missing %q in response", field))
	}
	if err := json.Unmarshal(inner, &items); err != nil {
		return nil, malformed(err)
	}
	return items, nil
}

func (h *httpServerAdapter) Ping(ctx context.Context) error {
	_, err := h.client.R().SetContext(ctx).Get(h.healthURL)
	if err != nil {
		return mapTransportError(err)
	}
	return nil
}

var _ ServerAdapter = (*httpServerAdapter)(nil)
