package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/fitiplus/internal/adapter"
	"github.com/MKhiriev/fitiplus/internal/app"
	"github.com/MKhiriev/fitiplus/internal/config"
	"github.com/MKhiriev/fitiplus/internal/logger"
	"github.com/MKhiriev/fitiplus/internal/session"
	"github.com/MKhiriev/fitiplus/internal/utils"
	"github.com/MKhiriev/fitiplus/models"
)

type clientAuthService struct {
	session      *session.Store
	adapter      adapter.ServerAdapter
	connectivity Connectivity
	offline      *offlineAuthenticator
	verifyExpiry bool
	now          func() time.Time
	logger       *logger.Logger
}

// NewClientAuthService builds the session gateway. It fails only when the
// offline demo credentials cannot be hashed.
func NewClientAuthService(
	sessionStore *session.Store,
	serverAdapter adapter.ServerAdapter,
	connectivity Connectivity,
	cfg config.ClientApp,
	log *logger.Logger,
) (ClientAuthService, error) {
	offline, err := newOfflineAuthenticator(cfg)
	if err != nil {
		return nil, fmt.Errorf("offline demo credentials: %w", err)
	}

	return &clientAuthService{
		session:      sessionStore,
		adapter:      serverAdapter,
		connectivity: connectivity,
		offline:      offline,
		verifyExpiry: cfg.VerifyTokenExpiry,
		now:          time.Now,
		logger:       log,
	}, nil
}

// online treats a missing monitor as online.
func (a *clientAuthService) online() bool {
	return a.connectivity == nil || a.connectivity.Online()
}

// Login implements [ClientAuthService]. Online it POSTs the credentials and
// stores the returned session; offline it falls back to the demo check.
func (a *clientAuthService) Login(ctx context.Context, email, password string) models.Result {
	if !a.online() {
		return a.offlineLogin(ctx, email, password)
	}

	resp, err := a.adapter.Login(ctx, models.LoginRequest{Email: email, Password: password})
	if err != nil {
		r := classify(err, app.MsgLoginFailed, app.MsgInvalidCredentials)
		a.logFailure("Login", r)
		return r
	}

	if err = a.session.Set(ctx, resp.User, resp.Access(), resp.RefreshToken); err != nil {
		return localFailure(fmt.Errorf("%w: %w", ErrNetwork, err), app.MsgMalformedResponse)
	}

	a.logger.Info().Str("func", "clientAuthService.Login").Str("user_id", resp.User.ID).Msg("logged in")
	return models.Result{
		Kind:                models.ResultSuccess,
		Identity:            resp.User.Clone(),
		OnboardingCompleted: resp.IsOnboardingCompleted,
		Message:             orDefault(resp.Message, app.MsgLoginSucceeded),
	}
}

func (a *clientAuthService) offlineLogin(ctx context.Context, email, password string) models.Result {
	if !a.offline.Enabled() {
		a.logger.Info().Str("func", "clientAuthService.Login").Msg("offline and demo mode disabled")
		return localFailure(fmt.Errorf("%w: %w", ErrNetwork, ErrOfflineUnavailable), app.MsgOffline)
	}

	identity, ok := a.offline.Authenticate(email, password)
	if !ok {
		return localFailure(ErrUnauthorized, app.MsgInvalidCredentials)
	}

	token, err := utils.MintOfflineToken(identity.ID)
	if err != nil {
		a.logger.Err(err).Str("func", "clientAuthService.Login").Msg("failed to mint offline token")
		return localFailure(fmt.Errorf("%w: %w", ErrOfflineUnavailable, err), app.MsgLoginFailed)
	}
	if err = a.session.Set(ctx, identity, token, ""); err != nil {
		return localFailure(err, app.MsgLoginFailed)
	}

	a.logger.Warn().Str("func", "clientAuthService.Login").Msg("offline demo session started")
	return models.Result{
		Kind:     models.ResultSuccess,
		Identity: identity,
		Offline:  true,
		Message:  app.MsgOfflineLoginSucceeded,
	}
}

// Register implements [ClientAuthService].
func (a *clientAuthService) Register(ctx context.Context, req models.RegisterRequest) models.Result {
	resp, err := a.adapter.Register(ctx, req)
	if err != nil {
		r := classify(err, app.MsgRegisterFailed, app.MsgRegisterFailed)
		a.logFailure("Register", r)
		return r
	}

	r := success(resp.User.Clone(), orDefault(resp.Message, app.MsgRegisterSucceeded))
	r.OnboardingCompleted = resp.IsOnboardingCompleted

	// No token means the account exists but the user still has to log in.
	if resp.Access() == "" {
		return r
	}
	if err = a.session.Set(ctx, resp.User, resp.Access(), resp.RefreshToken); err != nil {
		return localFailure(fmt.Errorf("%w: %w", ErrNetwork, err), app.MsgMalformedResponse)
	}
	return r
}

// Logout implements [ClientAuthService]. Locally minted sessions are never
// sent to the API.
func (a *clientAuthService) Logout(ctx context.Context) models.Result {
	snap := a.session.Snapshot()
	// sent even when connectivity looks down; the request timeout bounds it
	if snap.AccessToken != "" && !snap.Offline {
		err := a.adapter.Logout(ctx, snap.AccessToken, models.LogoutRequest{RefreshToken: snap.RefreshToken})
		if err != nil {
			a.logger.Warn().Err(err).Str("func", "clientAuthService.Logout").Msg("server logout failed, clearing locally")
		}
	}

	a.session.Clear(ctx)
	return success(nil, app.MsgLogoutSucceeded)
}

// Refresh implements [ClientAuthService]. New tokens are dropped when the
// session changed while the request was in flight.
func (a *clientAuthService) Refresh(ctx context.Context) models.Result {
	gen := a.session.Generation()
	refreshToken := a.session.RefreshToken()
	if refreshToken == "" {
		return localFailure(ErrNoRefreshToken, app.MsgNoRefreshToken)
	}

	resp, err := a.adapter.Refresh(ctx, models.RefreshRequest{RefreshToken: refreshToken})
	if err != nil {
		r := classify(err, app.MsgRefreshFailed, app.MsgRefreshFailed)
		a.logFailure("Refresh", r)
		return r
	}

	if !a.session.SetTokens(ctx, gen, resp.Access(), resp.RefreshToken) {
		return localFailure(ErrSessionChanged, app.MsgRefreshFailed)
	}
	return success(a.session.Current(), app.MsgRefreshSucceeded)
}

// ChangePassword implements [ClientAuthService].
func (a *clientAuthService) ChangePassword(ctx context.Context, currentPassword, newPassword string) models.Result {
	token := a.session.Token()
	if token == "" {
		return localFailure(ErrNotAuthenticated, app.MsgNotAuthenticated)
	}

	resp, err := a.adapter.ChangePassword(ctx, token, models.ChangePasswordRequest{
		CurrentPassword: currentPassword,
		NewPassword:     newPassword,
	})
	if err != nil {
		r := classify(err, app.MsgPasswordChangeFailed, app.MsgPasswordChangeFailed)
		a.logFailure("ChangePassword", r)
		return r
	}
	return success(nil, orDefault(resp.Message, app.MsgPasswordChanged))
}

// RequestPasswordReset implements [ClientAuthService]. It needs no session.
func (a *clientAuthService) RequestPasswordReset(ctx context.Context, email string) models.Result {
	resp, err := a.adapter.RequestPasswordReset(ctx, models.PasswordResetRequest{Email: email})
	if err != nil {
		r := classify(err, app.MsgPasswordResetFailed, app.MsgPasswordResetFailed)
		a.logFailure("RequestPasswordReset", r)
		return r
	}
	return success(nil, orDefault(resp.Message, app.MsgPasswordResetSent))
}

// FetchProfile implements [ClientAuthService]. Offline sessions return the
// stored identity without a request.
func (a *clientAuthService) FetchProfile(ctx context.Context) models.Result {
	gen := a.session.Generation()
	snap := a.session.Snapshot()
	if !snap.Authenticated() {
		return localFailure(ErrNotAuthenticated, app.MsgNotAuthenticated)
	}
	// the API doesn't know offline sessions
	if snap.Offline {
		r := success(snap.Identity, app.MsgProfileLoaded)
		r.Offline = true
		return r
	}

	identity, err := a.adapter.FetchProfile(ctx, snap.AccessToken)
	if err != nil {
		r := classify(err, app.MsgProfileLoadFailed, app.MsgNotAuthenticated)
		a.logFailure("FetchProfile", r)
		return r
	}

	if !a.session.SetIdentity(ctx, gen, identity) {
		return localFailure(ErrSessionChanged, app.MsgProfileLoadFailed)
	}
	return success(identity.Clone(), app.MsgProfileLoaded)
}

// IsTokenValid implements [ClientAuthService].
func (a *clientAuthService) IsTokenValid() bool {
	token := a.session.Token()
	if token == "" {
		return false
	}
	if !a.verifyExpiry {
		return true
	}

	exp, ok := utils.TokenExpiry(token)
	if !ok {
		// opaque or non-expiring tokens are only checked for presence
		return true
	}
	return a.now().Before(exp)
}

// IsAuthenticated implements [ClientAuthService].
func (a *clientAuthService) IsAuthenticated() bool {
	return a.session.IsAuthenticated()
}

// ClearSession implements [ClientAuthService].
func (a *clientAuthService) ClearSession(ctx context.Context) {
	a.session.Clear(ctx)
}

func (a *clientAuthService) logFailure(op string, r models.Result) {
	ev := a.logger.Warn()
	if errors.Is(r.Err, ErrServer) {
		ev = a.logger.Error()
	}
	ev.Str("func", "clientAuthService."+op).
		Str("kind", r.Kind.String()).
		Int("status", r.StatusCode).
		Err(r.Err).
		Msg("request failed")
}
