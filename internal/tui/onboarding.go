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

// Content types of onboarding stages.
const (
	stageGoals             = "goals"
	stagePhysicalData      = "physical_data"
	stageMedicalConditions = "medical_conditions"
)

// OnboardingModel walks through the questionnaire stages and lists the
// options the API offers for each one.
type OnboardingModel struct {
	ctx     context.Context
	content service.ClientContentService
	routes  config.Routes

	stages    []models.OnboardingStage
	goals     []models.Goal
	allergies []models.Allergy
	step      int
	loading   bool
	errMsg    string
}

func NewOnboardingModel(ctx context.Context, content service.ClientContentService, routes config.Routes) *OnboardingModel {
	return &OnboardingModel{ctx: ctx, content: content, routes: routes}
}

func (m *OnboardingModel) Init() tea.Cmd {
	m.loading = true
	m.step = 0
	m.errMsg = ""
	ctx, content := m.ctx, m.content
	return func() tea.Msg {
		// Stages and goals come back with defaults on failure; report the
		// first problem only.
		stages, res := content.OnboardingStages(ctx)
		goals, goalsRes := content.OnboardingGoals(ctx)
		allergies, allergiesRes := content.OnboardingAllergies(ctx)
		for _, r := range []models.Result{goalsRes, allergiesRes} {
			if res.OK() && !r.OK() {
				res = r
			}
		}
		return contentLoadedMsg{stages: stages, goals: goals, allergies: allergies, result: res}
	}
}

func (m *OnboardingModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if loaded, ok := msg.(contentLoadedMsg); ok {
		m.loading = false
		m.stages, m.goals, m.allergies = loaded.stages, loaded.goals, loaded.allergies
		if !loaded.result.OK() {
			m.errMsg = loaded.result.Message
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.loading {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, keys.esc):
		return m, navigate(m.routes.Main, nil)
	case key.Matches(keyMsg, keys.left):
		if m.step > 0 {
			m.step--
		}
	case key.Matches(keyMsg, keys.right), key.Matches(keyMsg, keys.enter):
		if m.step >= len(m.stages)-1 {
			return m, navigate(m.routes.Main, nil)
		}
		m.step++
	}
	return m, nil
}

func (m *OnboardingModel) View() string {
	var b strings.Builder
	switch {
	case m.loading:
		b.WriteString("Cargando cuestionario...")
	case len(m.stages) == 0:
		b.WriteString("No hay pasos disponibles")
	default:
		st := m.stages[m.step]
		fmt.Fprintf(&b, "Paso %d de %d\n\n", m.step+1, len(m.stages))
		b.WriteString(titleStyle.Render(st.Title))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(st.Description))
		b.WriteString("\n\n")
		b.WriteString(m.stageBody(st.ContentType))
	}
	b.WriteString(errorLine(m.errMsg))

	return renderPage("CUESTIONARIO", strings.TrimRight(b.String(), "\n"),
		"←/→: paso │ enter: siguiente │ esc: salir")
}

func (m *OnboardingModel) stageBody(contentType string) string {
	var b strings.Builder
	switch contentType {
	case stageGoals:
		for _, g := range m.goals {
			fmt.Fprintf(&b, "• %s  %s\n", g.Name, helpStyle.Render(g.Description))
		}
	case stageMedicalConditions:
		if len(m.allergies) == 0 {
			b.WriteString("Sin alergias registradas\n")
		}
		for _, a := range m.allergies {
			fmt.Fprintf(&b, "• %s\n", a.Name)
		}
	case stagePhysicalData:
		b.WriteString("Peso, altura, edad y nivel de actividad\n")
	}
	return b.String()
}
