package guard

import (
	"context"
	"fmt"

	"github.com/MKhiriev/fitiplus/internal/logger"
	"github.com/MKhiriev/fitiplus/internal/service"
)

// Guard checks one screen mount.
type Guard interface {
	Check(ctx context.Context) Decision
}

// ProtectedGuard admits authenticated sessions with a usable token. A stale
// token gets one refresh attempt; if that fails the session is cleared.
type ProtectedGuard struct {
	auth       service.ClientAuthService
	loginRoute string
	logger     *logger.Logger
}

// NewProtectedGuard returns a guard that redirects to loginRoute on denial.
func NewProtectedGuard(auth service.ClientAuthService, loginRoute string, log *logger.Logger) *ProtectedGuard {
	return &ProtectedGuard{auth: auth, loginRoute: loginRoute, logger: log}
}

// Check implements [Guard]. A panic clears the session and denies.
func (g *ProtectedGuard) Check(ctx context.Context) (d Decision) {
	defer func() {
		if r := recover(); r != nil {
			g.logger.Error().Str("func", "ProtectedGuard.Check").Str("panic", fmt.Sprint(r)).
				Msg("session check panicked, clearing session")
			g.clear(ctx)
			d = deny(g.loginRoute)
		}
	}()

	if !g.auth.IsAuthenticated() {
		return deny(g.loginRoute)
	}
	if g.auth.IsTokenValid() {
		return allow()
	}

	r := g.auth.Refresh(ctx)
	if r.OK() {
		return allow()
	}
	g.logger.Info().Str("func", "ProtectedGuard.Check").Err(r.Err).Msg("stale session could not be refreshed")
	g.auth.ClearSession(ctx)
	return deny(g.loginRoute)
}

// clear must not let a second panic escape the recover above.
func (g *ProtectedGuard) clear(ctx context.Context) {
	defer func() { _ = recover() }()
	g.auth.ClearSession(ctx)
}

// LoginGuard sends already authenticated users away from the login and
// registration screens. It only checks presence; the API validates the token
// on the next request.
type LoginGuard struct {
	auth      service.ClientAuthService
	mainRoute string
	logger    *logger.Logger
}

// NewLoginGuard returns a guard that redirects to mainRoute when a session
// exists.
func NewLoginGuard(auth service.ClientAuthService, mainRoute string, log *logger.Logger) *LoginGuard {
	return &LoginGuard{auth: auth, mainRoute: mainRoute, logger: log}
}

// Check implements [Guard]. A panic allows the form.
func (g *LoginGuard) Check(_ context.Context) (d Decision) {
	defer func() {
		if r := recover(); r != nil {
			g.logger.Error().Str("func", "LoginGuard.Check").Str("panic", fmt.Sprint(r)).Msg("session check panicked")
			d = allow()
		}
	}()

	if g.auth.IsAuthenticated() {
		return deny(g.mainRoute)
	}
	return allow()
}
