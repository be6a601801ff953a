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

// RouteResetPassword is public; no guard applies to it.
const RouteResetPassword = "/reset-password"

const opReset = "reset"

type ResetPasswordModel struct {
	ctx       context.Context
	auth      service.ClientAuthService
	validator validators.Validator
	routes    config.Routes

	form       form
	submitting bool
	errMsg     string
}

func NewResetPasswordModel(ctx context.Context, auth service.ClientAuthService, routes config.Routes) *ResetPasswordModel {
	return &ResetPasswordModel{
		ctx:       ctx,
		auth:      auth,
		validator: validators.NewAuthFormValidator(),
		routes:    routes,
		form:      newForm(field{label: "Correo", placeholder: "tu@correo.com"}),
	}
}

func (m *ResetPasswordModel) Init() tea.Cmd {
	m.errMsg = ""
	return nil
}

func (m *ResetPasswordModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if res, ok := msg.(resultMsg); ok && res.op == opReset {
		m.submitting = false
		if !res.result.OK() {
			m.errMsg = res.result.Message
			return m, nil
		}
		m.form.reset()
		return m, tea.Batch(notifyResult(res.result), navigate(m.routes.Login, nil))
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, navigate(m.routes.Login, nil)
		case "enter":
			if m.submitting {
				return m, nil
			}
			req := models.PasswordResetRequest{Email: strings.TrimSpace(m.form.value(0))}
			if err := m.validator.Validate(m.ctx, req); err != nil {
				m.errMsg = validators.Result(err).Message
				return m, nil
			}
			m.errMsg = ""
			m.submitting = true
			ctx, auth := m.ctx, m.auth
			return m, func() tea.Msg {
				return resultMsg{op: opReset, result: auth.RequestPasswordReset(ctx, req.Email)}
			}
		}
	}

	return m, m.form.update(msg)
}

func (m *ResetPasswordModel) View() string {
	body := m.form.view() + submitButton("Enviar enlace", m.submitting) + errorLine(m.errMsg)
	return renderPage("RECUPERAR CONTRASEÑA", strings.TrimRight(body, "\n"), "esc: volver │ enter: enviar")
}
