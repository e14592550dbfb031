// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package prompt

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-token-agent/internal/secret"
)

var (
	promptStyle = lipgloss.NewStyle().Bold(true)
	hintStyle   = lipgloss.NewStyle().Faint(true)
)

// TUI asks for passwords with a single-field Bubble Tea form.
type TUI struct {
	in  io.Reader
	out io.Writer
}

// NewTUI returns a [TUI] bound to stdin and stderr.
func NewTUI() *TUI {
	return &TUI{in: os.Stdin, out: os.Stderr}
}

// PromptPassword implements [Prompter].
func (t *TUI) PromptPassword(ctx context.Context, message string) (*secret.Buffer, error) {
	program := tea.NewProgram(
		newPasswordModel(message),
		tea.WithContext(ctx),
		tea.WithInput(t.in),
		tea.WithOutput(t.out),
	)

	final, err := program.Run()
	if err != nil {
		return nil, fmt.Errorf("run password prompt: %w", err)
	}

	m, ok := final.(*passwordModel)
	if !ok {
		return nil, fmt.Errorf("unexpected prompt model %T", final)
	}
	return m.result()
}

// passwordModel is the Bubble Tea model of the password form. The entered
// value is handed out once through result and the input is reset.
type passwordModel struct {
	message   string
	input     textinput.Model
	submitted bool
	cancelled bool
}

func newPasswordModel(message string) *passwordModel {
	input := textinput.New()
	input.Placeholder = "password"
	input.CharLimit = 1024
	input.Width = 40
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '*'
	input.Focus()

	return &passwordModel{message: strings.TrimSpace(message), input: input}
}

// Init implements [tea.Model].
func (m *passwordModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Enter submits, esc and ctrl+c cancel; every
// other message goes to the input widget.
func (m *passwordModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEnter:
			m.submitted = true
			return m, tea.Quit
		case tea.KeyEsc, tea.KeyCtrlC:
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *passwordModel) View() string {
	if m.submitted || m.cancelled {
		return ""
	}
	return promptStyle.Render(m.message) + " " + m.input.View() + "\n" +
		hintStyle.Render("enter: confirm │ esc: cancel") + "\n"
}

func (m *passwordModel) result() (*secret.Buffer, error) {
	defer m.input.Reset()
	if !m.submitted {
		return nil, ErrCancelled
	}
	return secret.FromString(m.input.Value()), nil
}
