// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-stock-keeper/internal/service"
	"github.com/MKhiriev/go-stock-keeper/models"
)

const (
	minUsernameLength = 4
	maxUsernameLength = 32
	minPasswordLength = 3
)

// loginResult carries the outcome of the async login command.
type loginResult struct {
	session models.LocalSession
	err     error
}

// LoginModel is the Bubble Tea model of the login prompt: a username and a
// masked password input. Enter validates and submits; a successful login
// quits the program with the new session in Session.
type LoginModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string

	session *models.LocalSession
	quit    bool
}

// NewLoginModel creates a [LoginModel]. username pre-fills the first input;
// focus starts on the first empty field.
func NewLoginModel(ctx context.Context, auth service.ClientAuthService, username string) *LoginModel {
	usernameInput := textinput.New()
	usernameInput.Placeholder = "username"
	usernameInput.CharLimit = maxUsernameLength
	usernameInput.Width = 32
	usernameInput.SetValue(username)

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 32
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	m := &LoginModel{
		ctx:    ctx,
		auth:   auth,
		inputs: []textinput.Model{usernameInput, passwordInput},
	}
	if username != "" {
		m.focus = 1
	}
	m.inputs[m.focus].Focus()

	return m
}

// Init implements [tea.Model].
func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled keys: esc and ctrl+c cancel, tab and
// shift+tab move focus, enter submits. Everything else goes to the focused
// input.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(loginResult); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = HumanizeError(result.err)
			return m, nil
		}
		m.session = &result.session
		return m, tea.Quit
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc", "ctrl+c":
			m.quit = true
			return m, tea.Quit
		case "tab":
			m.moveFocus(1)
			return m, nil
		case "shift+tab":
			m.moveFocus(-1)
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}

			username := strings.TrimSpace(m.inputs[0].Value())
			password := m.inputs[1].Value()
			if msg := validateCredentials(username, password); msg != "" {
				m.errMsg = msg
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdLogin(username, password)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString("Username │ ")
	b.WriteString(m.inputs[0].View())
	b.WriteString("\nPassword │ ")
	b.WriteString(m.inputs[1].View())

	if m.submitting {
		b.WriteString("\n\nSigning in...")
	}
	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(ErrorStyle.Render("Error: " + m.errMsg))
	}

	return renderPage("SIGN IN", b.String(), "tab: next field │ enter: submit")
}

// Session returns the session of a successful login.
func (m *LoginModel) Session() (models.LocalSession, bool) {
	if m.session == nil {
		return models.LocalSession{}, false
	}
	return *m.session, true
}

func (m *LoginModel) cmdLogin(username, password string) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		session, err := auth.Login(ctx, models.Credentials{Username: username, Password: password})
		return loginResult{session: session, err: err}
	}
}

func (m *LoginModel) moveFocus(step int) {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + step + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

// validateCredentials applies the login form rules: 4..32 character
// username and a password of at least 3 characters.
func validateCredentials(username, password string) string {
	if n := utf8.RuneCountInString(username); n < minUsernameLength || n > maxUsernameLength {
		return "username must be 4 to 32 characters long"
	}
	if utf8.RuneCountInString(password) < minPasswordLength {
		return "password must be at least 3 characters long"
	}
	return ""
}
