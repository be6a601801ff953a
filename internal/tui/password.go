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

// RouteChangePassword sits under the profile route, so the protected guard
// covers it by prefix.
const RouteChangePassword = "/profile/password"

const opChangePassword = "change-password"

type ChangePasswordModel struct {
	ctx       context.Context
	auth      service.ClientAuthService
	validator validators.Validator
	routes    config.Routes

	form       form
	submitting bool
	errMsg     string
}

func NewChangePasswordModel(ctx context.Context, auth service.ClientAuthService, routes config.Routes) *ChangePasswordModel {
	return &ChangePasswordModel{
		ctx:       ctx,
		auth:      auth,
		validator: validators.NewAuthFormValidator(),
		routes:    routes,
		form: newForm(
			field{label: "Actual", placeholder: "contraseña actual", secret: true},
			field{label: "Nueva", placeholder: "mínimo 6 caracteres", secret: true},
			field{label: "Confirmar", placeholder: "repite la nueva", secret: true},
		),
	}
}

func (m *ChangePasswordModel) Init() tea.Cmd {
	m.errMsg = ""
	m.form.reset()
	return nil
}

func (m *ChangePasswordModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if res, ok := msg.(resultMsg); ok && res.op == opChangePassword {
		m.submitting = false
		if !res.result.OK() {
			m.errMsg = res.result.Message
			return m, nil
		}
		return m, tea.Batch(notifyResult(res.result), navigate(m.routes.Main, nil))
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, navigate(m.routes.Main, nil)
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
			f := models.ChangePasswordForm{
				CurrentPassword: m.form.value(0),
				NewPassword:     m.form.value(1),
				ConfirmPassword: m.form.value(2),
			}
			if err := m.validator.Validate(m.ctx, f); err != nil {
				m.errMsg = validators.Result(err).Message
				return m, nil
			}
			m.errMsg = ""
			m.submitting = true
			ctx, auth := m.ctx, m.auth
			return m, func() tea.Msg {
				return resultMsg{op: opChangePassword, result: auth.ChangePassword(ctx, f.CurrentPassword, f.NewPassword)}
			}
		}
	}

	return m, m.form.update(msg)
}

func (m *ChangePasswordModel) View() string {
	body := m.form.view() + submitButton("Guardar", m.submitting) + errorLine(m.errMsg)
	return renderPage("CAMBIAR CONTRASEÑA", strings.TrimRight(body, "\n"), "esc: cancelar │ tab: sig. campo │ enter: guardar")
}
