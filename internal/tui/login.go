// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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

const opLogin = "login"

// LoginModel is the login screen: e-mail and password inputs validated
// locally before Login is called. On success the root is asked for the main
// route; the guards decide what actually opens.
type LoginModel struct {
	ctx       context.Context
	auth      service.ClientAuthService
	validator validators.Validator
	routes    config.Routes

	form       form
	submitting bool
	errMsg     string
}

// NewLoginModel creates the login page. The e-mail field has focus.
func NewLoginModel(ctx context.Context, auth service.ClientAuthService, routes config.Routes) *LoginModel {
	return &LoginModel{
		ctx:       ctx,
		auth:      auth,
		validator: validators.NewAuthFormValidator(),
		routes:    routes,
		form: newForm(
			field{label: "Correo", placeholder: "tu@correo.com"},
			field{label: "Contraseña", placeholder: "contraseña", secret: true},
		),
	}
}

func (m *LoginModel) Init() tea.Cmd {
	m.errMsg = ""
	return nil
}

// Update handles:
//   - resultMsg      clears submitting; failures show inline, success moves on.
//   - tab/shift+tab  cycles the inputs.
//   - enter          validates and dispatches Login.
//   - ctrl+n         opens registration, ctrl+r the password reset.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if res, ok := msg.(resultMsg); ok && res.op == opLogin {
		m.submitting = false
		if !res.result.OK() {
			m.errMsg = res.result.Message
			return m, nil
		}
		m.errMsg = ""
		m.form.reset()
		var cmd tea.Cmd
		if res.result.Offline {
			cmd = notify(res.result.Message, false)
		}
		return m, tea.Batch(cmd, navigate(m.routes.Main, nil))
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "tab":
			m.form.next()
			return m, nil
		case "shift+tab":
			m.form.prev()
			return m, nil
		case "ctrl+n":
			return m, navigate(m.routes.Register, nil)
		case "ctrl+r":
			return m, navigate(RouteResetPassword, nil)
		case "enter":
			if m.submitting {
				return m, nil
			}
			req := models.LoginRequest{
				Email:    strings.TrimSpace(m.form.value(0)),
				Password: m.form.value(1),
			}
			if err := m.validator.Validate(m.ctx, req); err != nil {
				m.errMsg = validators.Result(err).Message
				return m, nil
			}
			m.errMsg = ""
			m.submitting = true
			return m, m.cmdLogin(req)
		}
	}

	return m, m.form.update(msg)
}

func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString(m.form.view())
	b.WriteString(submitButton("Iniciar sesión", m.submitting))
	b.WriteString(errorLine(m.errMsg))

	return renderPage("INICIAR SESIÓN", strings.TrimRight(b.String(), "\n"),
		"tab: sig. campo │ enter: entrar │ ctrl+n: crear cuenta │ ctrl+r: olvidé mi contraseña")
}

func (m *LoginModel) cmdLogin(req models.LoginRequest) tea.Cmd {
	ctx, auth := m.ctx, m.auth
	return func() tea.Msg {
		return resultMsg{op: opLogin, result: auth.Login(ctx, req.Email, req.Password)}
	}
}
