package tui

import (
	"context"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/fitiplus/internal/app"
	"github.com/MKhiriev/fitiplus/internal/config"
	"github.com/MKhiriev/fitiplus/internal/guard"
	"github.com/MKhiriev/fitiplus/internal/mock"
	"github.com/MKhiriev/fitiplus/models"
)

type fakeNavigator struct {
	redirects map[string]string
	calls     []string
}

func (f *fakeNavigator) Follow(_ context.Context, path string) (string, guard.Decision) {
	f.calls = append(f.calls, path)
	if to, ok := f.redirects[path]; ok {
		return to, guard.Decision{State: guard.Allowed}
	}
	return path, guard.Decision{State: guard.Allowed}
}

// stubPage records what it receives.
type stubPage struct {
	name     string
	inits    int
	received []tea.Msg
}

func (p *stubPage) Init() tea.Cmd {
	p.inits++
	return nil
}

func (p *stubPage) View() string { return p.name }

func (p *stubPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	p.received = append(p.received, msg)
	return p, nil
}

// run executes cmd and feeds the messages it yields back into the model,
// expanding batches.
func run(t *testing.T, m tea.Model, cmd tea.Cmd) tea.Model {
	t.Helper()
	for queue := []tea.Cmd{cmd}; len(queue) > 0; {
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		msg := c()
		if batch, ok := msg.(tea.BatchMsg); ok {
			queue = append(queue, batch...)
			continue
		}
		// spinner ticks would loop forever
		if _, ok := msg.(spinner.TickMsg); ok {
			continue
		}
		var next tea.Cmd
		m, next = m.Update(msg)
		queue = append(queue, next)
	}
	return m
}

func TestRootModel_NavigatesThroughGuards(t *testing.T) {
	login := &stubPage{name: "login"}
	home := &stubPage{name: "home"}
	nav := &fakeNavigator{redirects: map[string]string{"/": "/login", "/tabs/tab1": "/login"}}

	root := NewRootModel(context.Background(), nav, map[string]tea.Model{
		"/login":     login,
		"/tabs/tab1": home,
	}, "/", models.AppBuildInfo{})

	m := run(t, root, func() tea.Msg { return NavigateTo{Page: "/"} })
	r := m.(RootModel)
	assert.Equal(t, "/login", r.Path())
	assert.Equal(t, "login", r.View())
	assert.Equal(t, 1, login.inits)

	// a protected page the guard bounces back to login
	m = run(t, r, navigate("/tabs/tab1", nil))
	assert.Equal(t, "/login", m.(RootModel).Path())
	assert.Zero(t, home.inits)

	delete(nav.redirects, "/tabs/tab1")
	m = run(t, m, navigate("/tabs/tab1", "hello"))
	assert.Equal(t, "/tabs/tab1", m.(RootModel).Path())
	assert.Contains(t, home.received, tea.Msg("hello"))
}

func TestRootModel_DeniedKeepsCurrentPage(t *testing.T) {
	page := &stubPage{name: "login"}
	root := NewRootModel(context.Background(), &fakeNavigator{}, map[string]tea.Model{"/login": page}, "/login", models.AppBuildInfo{})
	m := run(t, root, navigate("/login", nil))

	m, _ = m.Update(routeResolvedMsg{path: "/nowhere", decision: guard.Decision{State: guard.Denied, Redirect: "/x"}})
	assert.Equal(t, "/login", m.(RootModel).Path())
}

func TestRootModel_Notice(t *testing.T) {
	page := &stubPage{name: "login"}
	root := NewRootModel(context.Background(), &fakeNavigator{}, map[string]tea.Model{"/login": page}, "/login", models.AppBuildInfo{})
	m := run(t, root, navigate("/login", nil))

	m, _ = m.Update(noticeMsg{text: "Sesión cerrada"})
	assert.Contains(t, m.View(), "Sesión cerrada")

	// keys go to the notice, not the page
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	assert.Empty(t, page.received)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "login", m.View())
}

func TestRootModel_CtrlCQuits(t *testing.T) {
	root := NewRootModel(context.Background(), &fakeNavigator{}, map[string]tea.Model{}, "/", models.AppBuildInfo{})
	m, cmd := root.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.True(t, m.(RootModel).quitByUser)
}

func typeInto(m tea.Model, s string) tea.Model {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestLoginModel_ValidatesBeforeCalling(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockClientAuthService(ctrl)
	routes := config.Default().Routes

	m := tea.Model(NewLoginModel(context.Background(), auth, routes))

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), app.MsgEmailRequired)

	m = typeInto(m, "no-es-correo")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = typeInto(m, "secret1")
	m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), app.MsgEmailInvalid)
}

func TestLoginModel_SuccessNavigatesToMain(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockClientAuthService(ctrl)
	routes := config.Default().Routes

	auth.EXPECT().Login(gomock.Any(), "ana@fitiplus.com", "secret1").
		Return(models.Result{Kind: models.ResultSuccess, Message: app.MsgLoginSucceeded})

	m := tea.Model(NewLoginModel(context.Background(), auth, routes))
	m = typeInto(m, "ana@fitiplus.com")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = typeInto(m, "secret1")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	res := cmd()
	require.IsType(t, resultMsg{}, res)

	_, cmd = m.Update(res)
	require.NotNil(t, cmd)
	var navs []NavigateTo
	collect(cmd, func(msg tea.Msg) {
		if n, ok := msg.(NavigateTo); ok {
			navs = append(navs, n)
		}
	})
	require.Len(t, navs, 1)
	assert.Equal(t, routes.Main, navs[0].Page)
}

func TestLoginModel_FailureShowsMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockClientAuthService(ctrl)

	m := tea.Model(NewLoginModel(context.Background(), auth, config.Default().Routes))
	m, cmd := m.Update(resultMsg{op: opLogin, result: models.Result{Kind: models.ResultFailure, Message: "Credenciales inválidas"}})
	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "Credenciales inválidas")
}

func TestRegisterModel_PasswordsMustMatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockClientAuthService(ctrl)

	m := tea.Model(NewRegisterModel(context.Background(), auth, config.Default().Routes))
	for _, v := range []string{"Ana", "ana@fitiplus.com", "secret1", "secret2"} {
		m = typeInto(m, v)
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	}
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), app.MsgPasswordsMismatch)
}

func TestHomeModel_LogoutGoesToLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockClientAuthService(ctrl)
	routes := config.Default().Routes
	auth.EXPECT().Logout(gomock.Any()).Return(models.Result{Kind: models.ResultSuccess, Message: app.MsgLogoutSucceeded})

	home := NewHomeModel(context.Background(), auth, staticSession{}, routes)
	m := tea.Model(home)
	for range home.actions[1:] {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	_, cmd = m.Update(cmd())
	var got []tea.Msg
	collect(cmd, func(msg tea.Msg) { got = append(got, msg) })
	assert.Contains(t, got, tea.Msg(NavigateTo{Page: routes.Login}))
	assert.Contains(t, got, tea.Msg(noticeMsg{text: app.MsgLogoutSucceeded}))
}

func TestHomeModel_ShowsOfflineBadge(t *testing.T) {
	ctrl := gomock.NewController(t)
	home := NewHomeModel(context.Background(), mock.NewMockClientAuthService(ctrl), staticSession{s: models.Session{
		Identity:    &models.Identity{ID: "1", Email: "admin@fitiplus.com", Name: "Usuario Administrador"},
		AccessToken: "tok",
		Offline:     true,
	}}, config.Default().Routes)

	view := home.View()
	assert.Contains(t, view, "Usuario Administrador")
	assert.Contains(t, view, "sin conexión")
}

type staticSession struct{ s models.Session }

func (s staticSession) Snapshot() models.Session { return s.s }

func collect(cmd tea.Cmd, fn func(tea.Msg)) {
	if cmd == nil {
		return
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			collect(c, fn)
		}
		return
	}
	fn(msg)
}
