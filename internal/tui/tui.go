package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-stock-keeper/internal/service"
	"github.com/MKhiriev/go-stock-keeper/models"
)

type TUI struct {
	auth   service.ClientAuthService
	input  io.Reader
	output io.Writer
}

// New creates the terminal UI bound to in and out.
func New(auth service.ClientAuthService, in io.Reader, out io.Writer) *TUI {
	return &TUI{auth: auth, input: in, output: out}
}

// PromptLogin runs the interactive login prompt until the user logs in or
// cancels. A cancel returns [ErrUserQuit].
func (t *TUI) PromptLogin(ctx context.Context, username string) (models.LocalSession, error) {
	model := NewLoginModel(ctx, t.auth, username)

	finalModel, err := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(t.input),
		tea.WithOutput(t.output),
	).Run()
	if err != nil {
		return models.LocalSession{}, err
	}

	result, ok := finalModel.(*LoginModel)
	if !ok {
		return models.LocalSession{}, tea.ErrProgramKilled
	}

	session, ok := result.Session()
	if !ok {
		return models.LocalSession{}, ErrUserQuit
	}
	return session, nil
}
