package guard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/fitiplus/internal/config"
	"github.com/MKhiriev/fitiplus/internal/logger"
	"github.com/MKhiriev/fitiplus/internal/mock"
	"github.com/MKhiriev/fitiplus/internal/service"
	"github.com/MKhiriev/fitiplus/models"
)

var (
	ok     = models.Result{Kind: models.ResultSuccess}
	failed = models.Result{Kind: models.ResultFailure, Err: service.ErrUnauthorized}
)

// ── ProtectedGuard ───────────────────────────────────────────────────────────

func TestProtectedGuard_Check(t *testing.T) {
	tests := []struct {
		name  string
		setup func(auth *mock.MockClientAuthService)
		want  Decision
	}{
		{
			name: "valid session",
			setup: func(auth *mock.MockClientAuthService) {
				auth.EXPECT().IsAuthenticated().Return(true)
				auth.EXPECT().IsTokenValid().Return(true)
			},
			want: Decision{State: Allowed},
		},
		{
			name: "no session",
			setup: func(auth *mock.MockClientAuthService) {
				auth.EXPECT().IsAuthenticated().Return(false)
			},
			want: Decision{State: Denied, Redirect: "/login"},
		},
		{
			name: "stale token refreshed",
			setup: func(auth *mock.MockClientAuthService) {
				auth.EXPECT().IsAuthenticated().Return(true)
				auth.EXPECT().IsTokenValid().Return(false)
				auth.EXPECT().Refresh(gomock.Any()).Return(ok)
			},
			want: Decision{State: Allowed},
		},
		{
			name: "stale token refresh fails",
			setup: func(auth *mock.MockClientAuthService) {
				gomock.InOrder(
					auth.EXPECT().IsAuthenticated().Return(true),
					auth.EXPECT().IsTokenValid().Return(false),
					auth.EXPECT().Refresh(gomock.Any()).Return(failed),
					auth.EXPECT().ClearSession(gomock.Any()),
				)
			},
			want: Decision{State: Denied, Redirect: "/login"},
		},
		{
			name: "panic clears session",
			setup: func(auth *mock.MockClientAuthService) {
				auth.EXPECT().IsAuthenticated().Return(true)
				auth.EXPECT().IsTokenValid().DoAndReturn(func() bool { panic("corrupt state") })
				auth.EXPECT().ClearSession(gomock.Any())
			},
			want: Decision{State: Denied, Redirect: "/login"},
		},
		{
			name: "panic while clearing is contained",
			setup: func(auth *mock.MockClientAuthService) {
				auth.EXPECT().IsAuthenticated().DoAndReturn(func() bool { panic("boom") })
				auth.EXPECT().ClearSession(gomock.Any()).Do(func(context.Context) { panic("again") })
			},
			want: Decision{State: Denied, Redirect: "/login"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			auth := mock.NewMockClientAuthService(ctrl)
			tt.setup(auth)

			g := NewProtectedGuard(auth, "/login", logger.Nop())
			var got Decision
			assert.NotPanics(t, func() { got = g.Check(context.Background()) })
			assert.Equal(t, tt.want, got)
			assert.NotEqual(t, Checking, got.State)
		})
	}
}

// ── LoginGuard ───────────────────────────────────────────────────────────────

func TestLoginGuard_Check(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockClientAuthService(ctrl)
	g := NewLoginGuard(auth, "/tabs/tab1", logger.Nop())
	ctx := context.Background()

	gomock.InOrder(
		auth.EXPECT().IsAuthenticated().Return(true),
		auth.EXPECT().IsAuthenticated().Return(false),
		auth.EXPECT().IsAuthenticated().DoAndReturn(func() bool { panic("boom") }),
	)

	assert.Equal(t, Decision{State: Denied, Redirect: "/tabs/tab1"}, g.Check(ctx))
	assert.Equal(t, Decision{State: Allowed}, g.Check(ctx))
	assert.Equal(t, Decision{State: Allowed}, g.Check(ctx), "panic renders the form")
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "checking", Checking.String())
	assert.Equal(t, "allowed", Allowed.String())
	assert.Equal(t, "denied", Denied.String())
	assert.Equal(t, "unknown", State(9).String())
}

// ── Routes ───────────────────────────────────────────────────────────────────

func TestRoutes(t *testing.T) {
	r := NewRoutes(config.Default().Routes)

	for _, p := range []string{"/tabs", "/tabs/tab1", "/tabs/tab3/history", "/profile", "/recipe/17", "/ingredient-selection", "/meal-registration", "/recipe-generation"} {
		assert.True(t, r.IsProtectedRoute(p), p)
	}
	for _, p := range []string{"/login", "/register-client", "/presentation", "/form", "/"} {
		assert.False(t, r.IsProtectedRoute(p), p)
	}

	assert.True(t, r.IsPublicRoute("/login"))
	assert.False(t, r.IsPublicRoute("/login/extra"), "public routes match exactly")
	assert.False(t, r.IsPublicRoute("/register-client"))

	assert.True(t, r.IsAuthRoute("/login"))
	assert.True(t, r.IsAuthRoute("/register-client"))
	assert.False(t, r.IsAuthRoute("/presentation"))
}

func TestRoutes_Configurable(t *testing.T) {
	cfg := config.Default().Routes
	cfg.Login = "/entrar"
	cfg.Main = "/inicio"
	r := NewRoutes(cfg)

	assert.True(t, r.IsPublicRoute("/entrar"))
	assert.False(t, r.IsPublicRoute("/login"))
	assert.True(t, r.IsProtectedRoute("/inicio"))
}

// ── Router ───────────────────────────────────────────────────────────────────

func TestRouter_Resolve(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockClientAuthService(ctrl)
	rt := NewRouter(auth, config.Default().Routes, logger.Nop())
	ctx := context.Background()

	auth.EXPECT().IsAuthenticated().Return(false).AnyTimes()

	assert.Equal(t, Decision{State: Denied, Redirect: "/login"}, rt.Resolve(ctx, "/tabs/tab1"))
	assert.Equal(t, Decision{State: Denied, Redirect: "/login"}, rt.Resolve(ctx, "profile/"))
	assert.Equal(t, Decision{State: Allowed}, rt.Resolve(ctx, "/login"))
	assert.Equal(t, Decision{State: Allowed}, rt.Resolve(ctx, "/presentation"))
	assert.Equal(t, Decision{State: Denied, Redirect: "/login"}, rt.Resolve(ctx, ""))
	assert.Equal(t, Decision{State: Denied, Redirect: "/tabs/tab1"}, rt.Resolve(ctx, "/tabs"))
}

func TestRouter_Follow(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockClientAuthService(ctrl)
	rt := NewRouter(auth, config.Default().Routes, logger.Nop())
	ctx := context.Background()

	t.Run("anonymous lands on login", func(t *testing.T) {
		auth.EXPECT().IsAuthenticated().Return(false).Times(2)
		path, d := rt.Follow(ctx, "/profile")
		assert.Equal(t, "/login", path)
		assert.Equal(t, Allowed, d.State)
	})

	t.Run("authenticated user on login goes to main", func(t *testing.T) {
		auth.EXPECT().IsAuthenticated().Return(true).Times(2)
		auth.EXPECT().IsTokenValid().Return(true)
		path, d := rt.Follow(ctx, "/")
		assert.Equal(t, "/tabs/tab1", path)
		assert.Equal(t, Allowed, d.State)
	})
}

func TestRouter_FollowStopsOnLoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockClientAuthService(ctrl)
	cfg := config.Default().Routes
	cfg.Login = "/" // misconfigured: the root redirects to itself
	rt := NewRouter(auth, cfg, logger.Nop())

	path, d := rt.Follow(context.Background(), "/")
	assert.Equal(t, "/", path)
	assert.Equal(t, Denied, d.State)
}
