package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/fitiplus/internal/config"
	"github.com/MKhiriev/fitiplus/internal/service"
	"github.com/MKhiriev/fitiplus/models"
)

const opProfile = "profile"

// ProfileModel shows the identity from the last profile fetch. Opening the
// page fetches it again; r reloads.
type ProfileModel struct {
	ctx    context.Context
	auth   service.ClientAuthService
	routes config.Routes

	identity *models.Identity
	offline  bool
	loading  bool
	errMsg   string
}

func NewProfileModel(ctx context.Context, auth service.ClientAuthService, routes config.Routes) *ProfileModel {
	return &ProfileModel{ctx: ctx, auth: auth, routes: routes}
}

func (m *ProfileModel) Init() tea.Cmd {
	m.loading = true
	m.errMsg = ""
	ctx, auth := m.ctx, m.auth
	return func() tea.Msg {
		return resultMsg{op: opProfile, result: auth.FetchProfile(ctx)}
	}
}

func (m *ProfileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if res, ok := msg.(resultMsg); ok && res.op == opProfile {
		m.loading = false
		if !res.result.OK() {
			m.errMsg = res.result.Message
			if !m.auth.IsAuthenticated() {
				return m, navigate(m.routes.Login, nil)
			}
			return m, nil
		}
		m.identity = res.result.Identity
		m.offline = res.result.Offline
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return m, navigate(m.routes.Main, nil)
		case key.Matches(keyMsg, keys.reload):
			return m, m.Init()
		}
	}
	return m, nil
}

func (m *ProfileModel) View() string {
	var b strings.Builder
	switch {
	case m.loading:
		b.WriteString("Cargando perfil...")
	case m.identity != nil:
		id := m.identity
		rows := [][2]string{
			{"Nombre", id.DisplayName()},
			{"Correo", id.Email},
			{"Rol", valueOrDash(id.Role)},
			{"Teléfono", valueOrDash(id.Phone)},
			{"Nacimiento", valueOrDash(id.BirthDate)},
			{"Género", valueOrDash(id.Gender)},
		}
		if p := id.Preferences; p != nil {
			rows = append(rows,
				[2]string{"Objetivos", valueOrDash(strings.Join(p.FitnessGoals, ", "))},
				[2]string{"Alergias", valueOrDash(strings.Join(p.Allergies, ", "))},
				[2]string{"Actividad", valueOrDash(p.ActivityLevel)},
			)
		}
		for _, r := range rows {
			fmt.Fprintf(&b, "%-11s │ %s\n", r[0], fitText(r[1], 48))
		}
		if m.offline {
			b.WriteString("\n" + accentStyle.Render("Datos guardados localmente (sin conexión)") + "\n")
		}
	}
	b.WriteString(errorLine(m.errMsg))

	return renderPage("MI PERFIL", strings.TrimRight(b.String(), "\n"), "esc: volver │ r: recargar")
}
