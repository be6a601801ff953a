package guard

import (
	"context"
	"strings"

	"github.com/MKhiriev/fitiplus/internal/config"
	"github.com/MKhiriev/fitiplus/internal/logger"
	"github.com/MKhiriev/fitiplus/internal/service"
)

// maxRedirects bounds Follow in case of a misconfigured route table.
const maxRedirects = 4

// Router picks the guard for a path.
type Router struct {
	routes    *Routes
	protected Guard
	login     Guard
}

func NewRouter(auth service.ClientAuthService, cfg config.Routes, log *logger.Logger) *Router {
	return &Router{
		routes:    NewRoutes(cfg),
		protected: NewProtectedGuard(auth, cfg.Login, log),
		login:     NewLoginGuard(auth, cfg.Main, log),
	}
}

func (r *Router) Routes() *Routes {
	return r.routes
}

// Resolve runs the guard for path. Paths that are neither protected nor
// login/registration are allowed. The root and the bare tabs path redirect.
func (r *Router) Resolve(ctx context.Context, path string) Decision {
	path = normalize(path)

	switch {
	case path == RouteRoot:
		return deny(r.routes.Login)
	case path == RouteTabs:
		return deny(r.routes.Main)
	case r.routes.IsProtectedRoute(path):
		return r.protected.Check(ctx)
	case r.routes.IsAuthRoute(path):
		return r.login.Check(ctx)
	default:
		return allow()
	}
}

// Follow resolves path and keeps following redirects until a screen is
// allowed. It returns the path to render.
func (r *Router) Follow(ctx context.Context, path string) (string, Decision) {
	path = normalize(path)
	d := r.Resolve(ctx, path)
	for i := 0; d.State == Denied && i < maxRedirects; i++ {
		path = d.Redirect
		d = r.Resolve(ctx, path)
	}
	return path, d
}

func normalize(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return RouteRoot
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}
	return path
}
