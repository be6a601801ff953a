package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/fitiplus/internal/config"
	"github.com/MKhiriev/fitiplus/internal/service"
	"github.com/MKhiriev/fitiplus/models"
)

const opLogout = "logout"

// sessionView is the read side of the session the home page displays.
type sessionView interface {
	Snapshot() models.Session
}

type homeAction struct {
	label string
	route string
}

// HomeModel is the main page: who is signed in, whether the session is
// offline, and the entry points to the other protected pages.
type HomeModel struct {
	ctx     context.Context
	auth    service.ClientAuthService
	session sessionView
	routes  config.Routes

	actions []homeAction
	idx     int
	status  string
	busy    bool
}

func NewHomeModel(ctx context.Context, auth service.ClientAuthService, session sessionView, routes config.Routes) *HomeModel {
	return &HomeModel{
		ctx:     ctx,
		auth:    auth,
		session: session,
		routes:  routes,
		actions: []homeAction{
			{label: "Mi perfil", route: routes.Profile},
			{label: "Cuestionario inicial", route: routes.Onboarding},
			{label: "Cambiar contraseña", route: RouteChangePassword},
			{label: "Cerrar sesión"},
		},
	}
}

func (m *HomeModel) Init() tea.Cmd {
	m.status = ""
	return nil
}

func (m *HomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case resultMsg:
		if msg.op != opLogout {
			return m, nil
		}
		m.busy = false
		return m, tea.Batch(notifyResult(msg.result), navigate(m.routes.Login, nil))
	case copiedMsg:
		m.status = "¡Token copiado!"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.KeyMsg:
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m *HomeModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	switch {
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.actions)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.copy):
		return m, m.cmdCopyToken()
	case key.Matches(msg, keys.enter):
		action := m.actions[m.idx]
		if action.route != "" {
			return m, navigate(action.route, nil)
		}
		m.busy = true
		ctx, auth := m.ctx, m.auth
		return m, func() tea.Msg {
			return resultMsg{op: opLogout, result: auth.Logout(ctx)}
		}
	}
	return m, nil
}

func (m *HomeModel) cmdCopyToken() tea.Cmd {
	token := m.session.Snapshot().AccessToken
	return func() tea.Msg {
		if token == "" {
			return noticeMsg{text: "No hay una sesión activa", failure: true}
		}
		if err := clipboard.WriteAll(token); err != nil {
			return noticeMsg{text: "No se pudo copiar: " + err.Error(), failure: true}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m *HomeModel) View() string {
	snap := m.session.Snapshot()

	var b strings.Builder
	if snap.Identity != nil {
		fmt.Fprintf(&b, "¡Hola, %s!\n", snap.Identity.DisplayName())
		fmt.Fprintf(&b, "%s", helpStyle.Render(snap.Identity.Email))
		if snap.Offline {
			b.WriteString("  ")
			b.WriteString(accentStyle.Render("[sin conexión]"))
		}
		b.WriteString("\n\n")
	}

	for i, a := range m.actions {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		b.WriteString(cursor + a.label + "\n")
	}
	if m.busy {
		b.WriteString("\nCerrando sesión...\n")
	}
	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	return renderPage("FITIPLUS", strings.TrimRight(b.String(), "\n"),
		"↑/↓: navegar │ enter: abrir │ c: copiar token")
}
