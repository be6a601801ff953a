package stubapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/fitiplus/internal/utils"
)

// Init builds the router. Everything except /health sits under /<version>.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, h.withLatency, withGZip)
	// set before Route so the versioned subrouter inherits them
	router.NotFound(http.NotFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	router.Get("/health", h.health)

	router.Route("/"+h.cfg.Version, func(r chi.Router) {
		// routes without authorization
		r.Group(func(r chi.Router) {
			r.Post("/auth/login", h.login)
			r.Post("/auth/register-client", h.register)
			r.Post("/auth/refresh", h.refresh)
			r.Post("/auth/reset-password", h.resetPassword)
		})

		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Post("/auth/logout", h.logout)
			r.Post("/auth/change-password", h.changePassword)
			r.Get("/user/profile", h.profile)
			r.Get("/welcome/cards", h.welcomeCards)
			r.Get("/onboarding/stages", h.onboardingStages)
			r.Get("/onboarding/goals", h.onboardingGoals)
			r.Get("/onboarding/allergies", h.onboardingAllergies)
		})
	})

	return router
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	_, _ = utils.WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}
