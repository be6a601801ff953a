package guard

import (
	"slices"
	"strings"

	"github.com/MKhiriev/fitiplus/internal/config"
)

// Paths of screens that are not configurable.
const (
	RouteRoot                = "/"
	RouteTabs                = "/tabs"
	RouteRecipeDetail        = "/recipe/"
	RouteIngredientSelection = "/ingredient-selection"
	RouteMealRegistration    = "/meal-registration"
	RouteRecipeGeneration    = "/recipe-generation"
)

// Routes classifies paths. Protected routes match by prefix, public routes
// by exact path.
type Routes struct {
	config.Routes

	protected []string
	public    []string
}

func NewRoutes(cfg config.Routes) *Routes {
	r := &Routes{
		Routes: cfg,
		protected: []string{
			RouteTabs,
			cfg.Main,
			RouteRecipeDetail,
			RouteIngredientSelection,
			RouteMealRegistration,
			RouteRecipeGeneration,
			cfg.Profile,
		},
		public: []string{cfg.Login},
	}
	r.protected = slices.DeleteFunc(r.protected, func(p string) bool { return p == "" })
	return r
}

// IsProtectedRoute reports whether path needs a session.
func (r *Routes) IsProtectedRoute(path string) bool {
	for _, p := range r.protected {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// IsPublicRoute reports whether path is a public entry point.
func (r *Routes) IsPublicRoute(path string) bool {
	return slices.Contains(r.public, path)
}

// IsAuthRoute reports whether path is the login or the registration screen.
func (r *Routes) IsAuthRoute(path string) bool {
	return path == r.Login || path == r.Register
}
