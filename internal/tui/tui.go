// Package tui is the terminal front end: a bubbletea program whose pages are
// keyed by route path and opened only after the route guards allow them.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/fitiplus/internal/guard"
	"github.com/MKhiriev/fitiplus/internal/logger"
	"github.com/MKhiriev/fitiplus/internal/service"
	"github.com/MKhiriev/fitiplus/models"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	services  *service.ClientServices
	session   sessionView
	router    *guard.Router
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, session sessionView, router *guard.Router, buildInfo models.AppBuildInfo, log *logger.Logger) *TUI {
	return &TUI{
		services:  services,
		session:   session,
		router:    router,
		buildInfo: buildInfo,
		logger:    log,
	}
}

// Pages builds every page keyed by its route.
func (t *TUI) Pages(ctx context.Context) map[string]tea.Model {
	routes := t.router.Routes().Routes
	auth, content := t.services.AuthService, t.services.ContentService

	return map[string]tea.Model{
		routes.Login:        NewLoginModel(ctx, auth, routes),
		routes.Register:     NewRegisterModel(ctx, auth, routes),
		RouteResetPassword:  NewResetPasswordModel(ctx, auth, routes),
		routes.Presentation: NewPresentationModel(ctx, content, routes),
		routes.Onboarding:   NewOnboardingModel(ctx, content, routes),
		routes.Main:         NewHomeModel(ctx, auth, t.session, routes),
		routes.Profile:      NewProfileModel(ctx, auth, routes),
		RouteChangePassword: NewChangePasswordModel(ctx, auth, routes),
	}
}

// Run blocks until the user quits. It starts at the root route, which the
// guards turn into the login or the main page.
func (t *TUI) Run(ctx context.Context) error {
	root := NewRootModel(ctx, t.router, t.Pages(ctx), guard.RouteRoot, t.buildInfo)

	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	t.logger.Info().Str("last_route", result.Path()).Msg("tui closed")
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
