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

// PresentationModel is the welcome carousel shown after registration.
type PresentationModel struct {
	ctx     context.Context
	content service.ClientContentService
	routes  config.Routes

	cards   []models.WelcomeCard
	idx     int
	loading bool
	errMsg  string
}

func NewPresentationModel(ctx context.Context, content service.ClientContentService, routes config.Routes) *PresentationModel {
	return &PresentationModel{ctx: ctx, content: content, routes: routes}
}

func (m *PresentationModel) Init() tea.Cmd {
	m.loading = true
	m.idx = 0
	ctx, content := m.ctx, m.content
	return func() tea.Msg {
		cards, res := content.WelcomeCards(ctx)
		return welcomeLoadedMsg{cards: cards, result: res}
	}
}

func (m *PresentationModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if loaded, ok := msg.(welcomeLoadedMsg); ok {
		m.loading = false
		m.cards = loaded.cards
		m.errMsg = ""
		if !loaded.result.OK() {
			m.errMsg = loaded.result.Message
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, keys.left):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.right):
		if m.idx < len(m.cards)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		return m, navigate(m.routes.Onboarding, nil)
	case key.Matches(keyMsg, keys.esc):
		return m, navigate(m.routes.Main, nil)
	}
	return m, nil
}

func (m *PresentationModel) View() string {
	var b strings.Builder
	switch {
	case m.loading:
		b.WriteString("Cargando...")
	case len(m.cards) == 0:
		b.WriteString("Bienvenido a FitiPlus")
	default:
		card := m.cards[m.idx]
		b.WriteString(titleStyle.Render(card.Title))
		b.WriteString("\n\n")
		b.WriteString(card.Description)
		b.WriteString("\n\n")
		dots := make([]string, len(m.cards))
		for i := range m.cards {
			dots[i] = "○"
			if i == m.idx {
				dots[i] = "●"
			}
		}
		b.WriteString(strings.Join(dots, " "))
		fmt.Fprintf(&b, "  %d/%d", m.idx+1, len(m.cards))
	}
	b.WriteString(errorLine(m.errMsg))

	return renderPage("BIENVENIDO", strings.TrimRight(b.String(), "\n"),
		"←/→: tarjetas │ enter: comenzar │ esc: omitir │ v: versión")
}
