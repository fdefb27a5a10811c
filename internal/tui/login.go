// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type authMode int

const (
	authModeLogin authMode = iota
	authModeSignUp
)

const (
	inputEmail = iota
	inputPassword
	inputConfirm
)

// AuthModel is the Bubble Tea model for the login and sign-up screen. It
// renders an email and a master password input, plus a confirmation input
// when signing up, and dispatches the matching async command on submit.
// On success a sessionStartedMsg is produced and handled by [RootModel].
type AuthModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	mode       authMode
	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
	notice     string
}

// NewAuthModel creates an [AuthModel] in login mode with the email input
// focused. Password inputs use masked echo.
func NewAuthModel(ctx context.Context, auth service.ClientAuthService) *AuthModel {
	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 254
	email.Width = 40
	email.Focus()

	password := newSecretInput("master password")
	confirm := newSecretInput("repeat master password")

	return &AuthModel{
		ctx:    ctx,
		auth:   auth,
		inputs: []textinput.Model{email, password, confirm},
	}
}

func newSecretInput(placeholder string) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = 256
	in.Width = 40
	in.EchoMode = textinput.EchoPassword
	in.EchoCharacter = '*'
	return in
}

// Init implements [tea.Model]. Starts the cursor-blink animation.
func (m *AuthModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - noticeMsg: shows a notice and wipes the password inputs.
//   - authResultMsg: on success starts the session, otherwise shows the error.
//   - ctrl+r: switches between login and sign-up.
//   - tab, shift+tab, up, down: move focus.
//   - enter: validates the inputs and submits.
//
// All other key events are forwarded to the focused input.
func (m *AuthModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case noticeMsg:
		m.notice = msg.text
		m.errMsg = ""
		m.submitting = false
		m.clearSecrets()
		return m, nil

	case authResultMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.notice = ""
		m.clearSecrets()
		session := msg.session
		return m, func() tea.Msg { return sessionStartedMsg{session: session} }

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.switchMode):
			m.toggleMode()
			return m, nil
		case key.Matches(msg, keys.nextField):
			m.setFocus(m.focus + 1)
			return m, nil
		case key.Matches(msg, keys.prevField):
			m.setFocus(m.focus - 1)
			return m, nil
		case key.Matches(msg, keys.enter):
			return m, m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *AuthModel) View() string {
	var b strings.Builder

	if m.notice != "" {
		b.WriteString(statusStyle.Render(m.notice))
		b.WriteString("\n\n")
	}

	b.WriteString("Email     │ [")
	b.WriteString(m.inputs[inputEmail].View())
	b.WriteString("]\n")
	b.WriteString("Password  │ [")
	b.WriteString(m.inputs[inputPassword].View())
	b.WriteString("]\n")
	if m.mode == authModeSignUp {
		b.WriteString("Repeat    │ [")
		b.WriteString(m.inputs[inputConfirm].View())
		b.WriteString("]\n")
	}

	action := "Log in"
	if m.mode == authModeSignUp {
		action = "Sign up"
	}
	if m.submitting {
		b.WriteString("\n[" + action + "...]")
	} else {
		b.WriteString("\n[" + action + "]")
	}

	renderMessages(&b, "", m.errMsg)

	title, other := "LOG IN", "sign up"
	if m.mode == authModeSignUp {
		title, other = "SIGN UP", "log in"
	}
	return renderPage(title, b.String(), "enter: submit │ tab: next field │ ctrl+r: "+other+" │ f1: version")
}

func (m *AuthModel) submit() tea.Cmd {
	if m.submitting {
		return nil
	}

	email := strings.TrimSpace(m.inputs[inputEmail].Value())
	password := m.inputs[inputPassword].Value()
	if email == "" || password == "" {
		m.errMsg = "Email and master password are required"
		return nil
	}
	if m.mode == authModeSignUp && password != m.inputs[inputConfirm].Value() {
		m.errMsg = "Master passwords do not match"
		return nil
	}

	m.errMsg = ""
	m.submitting = true

	ctx, auth, mode := m.ctx, m.auth, m.mode
	return func() tea.Msg {
		if mode == authModeSignUp {
			session, err := auth.SignUp(ctx, email, password)
			return authResultMsg{session: session, err: err}
		}
		session, err := auth.Login(ctx, email, password)
		return authResultMsg{session: session, err: err}
	}
}

func (m *AuthModel) toggleMode() {
	if m.mode == authModeLogin {
		m.mode = authModeSignUp
	} else {
		m.mode = authModeLogin
		m.inputs[inputConfirm].SetValue("")
	}
	m.errMsg = ""
	m.setFocus(m.focus)
}

func (m *AuthModel) visibleInputs() int {
	if m.mode == authModeSignUp {
		return 3
	}
	return 2
}

func (m *AuthModel) setFocus(i int) {
	n := m.visibleInputs()
	m.inputs[m.focus].Blur()
	m.focus = (i%n + n) % n
	m.inputs[m.focus].Focus()
}

func (m *AuthModel) clearSecrets() {
	m.inputs[inputPassword].SetValue("")
	m.inputs[inputConfirm].SetValue("")
}
