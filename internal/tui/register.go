package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/fitiplus/internal/config"
	"github.com/MKhiriev/fitiplus/internal/service"
	"github.com/MKhiriev/fitiplus/internal/validators"
	"github.com/MKhiriev/fitiplus/models"
)

const opRegister = "register"

// RegisterModel is the account creation screen. A successful registration
// that returned a session continues to the presentation page; otherwise the
// user is sent back to log in.
type RegisterModel struct {
	ctx       context.Context
	auth      service.ClientAuthService
	validator validators.Validator
	routes    config.Routes

	form       form
	submitting bool
	errMsg     string
}

func NewRegisterModel(ctx context.Context, auth service.ClientAuthService, routes config.Routes) *RegisterModel {
	return &RegisterModel{
		ctx:       ctx,
		auth:      auth,
		validator: validators.NewAuthFormValidator(),
		routes:    routes,
		form: newForm(
			field{label: "Nombre", placeholder: "nombre completo"},
			field{label: "Correo", placeholder: "tu@correo.com"},
			field{label: "Contraseña", placeholder: "mínimo 6 caracteres", secret: true},
			field{label: "Confirmar", placeholder: "repite la contraseña", secret: true},
		),
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	m.errMsg = ""
	return nil
}

func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if res, ok := msg.(resultMsg); ok && res.op == opRegister {
		m.submitting = false
		if !res.result.OK() {
			m.errMsg = res.result.Message
			return m, nil
		}
		m.errMsg = ""
		m.form.reset()

		next := m.routes.Login
		if m.auth.IsAuthenticated() {
			next = m.routes.Presentation
		}
		return m, tea.Batch(notifyResult(res.result), navigate(next, nil))
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, navigate(m.routes.Login, nil)
		case "tab":
			m.form.next()
			return m, nil
		case "shift+tab":
			m.form.prev()
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}
			f := models.RegisterForm{
				Name:            strings.TrimSpace(m.form.value(0)),
				Email:           strings.TrimSpace(m.form.value(1)),
				Password:        m.form.value(2),
				ConfirmPassword: m.form.value(3),
			}
			if err := m.validator.Validate(m.ctx, f); err != nil {
				m.errMsg = validators.Result(err).Message
				return m, nil
			}
			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister(f.Request())
		}
	}

	return m, m.form.update(msg)
}

func (m *RegisterModel) View() string {
	var b strings.Builder
	b.WriteString(m.form.view())
	b.WriteString(submitButton("Crear cuenta", m.submitting))
	b.WriteString(errorLine(m.errMsg))

	return renderPage("CREAR CUENTA", strings.TrimRight(b.String(), "\n"),
		"esc: ya tengo cuenta │ tab: sig. campo │ enter: registrarme")
}

func (m *RegisterModel) cmdRegister(req models.RegisterRequest) tea.Cmd {
	ctx, auth := m.ctx, m.auth
	return func() tea.Msg {
		return resultMsg{op: opRegister, result: auth.Register(ctx, req)}
	}
}
