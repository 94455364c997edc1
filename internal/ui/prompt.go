// Package ui holds the interactive terminal components of the CLI. The REPL
// prompt is a one-line bubbletea program: it reads a single line with
// editing support and hands control back, so interpreter output keeps
// flowing through the ordinary stdout path between lines.
package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)

// PromptModel reads one REPL line.
type PromptModel struct {
	input textinput.Model
	done  bool
	eof   bool
}

// NewPromptModel creates the line editor with the ">> " prompt.
func NewPromptModel() PromptModel {
	input := textinput.New()
	input.Prompt = promptStyle.Render(">> ")
	input.Focus()
	return PromptModel{input: input}
}

func (m PromptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m PromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlD:
			if m.input.Value() == "" {
				m.eof = true
				return m, tea.Quit
			}
		case tea.KeyCtrlC:
			m.eof = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m PromptModel) View() string {
	if m.done || m.eof {
		// финальный кадр остаётся в скроллбэке как введённая строка
		return m.input.Prompt + m.input.Value() + "\n"
	}
	return m.input.View()
}

// Value returns the entered line.
func (m PromptModel) Value() string {
	return m.input.Value()
}

// EOF reports whether the user closed the session (ctrl-d / ctrl-c).
func (m PromptModel) EOF() bool {
	return m.eof
}

// ReadLine runs the prompt program and returns the entered line.
// eof is true when the user asked to leave the REPL.
func ReadLine() (line string, eof bool, err error) {
	program := tea.NewProgram(NewPromptModel())
	final, err := program.Run()
	if err != nil {
		return "", true, err
	}
	model, ok := final.(PromptModel)
	if !ok {
		return "", true, nil
	}
	return model.Value(), model.EOF(), nil
}
