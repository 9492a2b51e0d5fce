package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/clockboard/internal/theme"
)

// confirmScreen is a yes/no gate in front of destructive operations.
type confirmScreen struct {
	title  string
	prompt string
	onYes  func() tea.Msg
	th     theme.Theme
}

func newConfirmScreen(title, prompt string, th theme.Theme, onYes func() tea.Msg) *confirmScreen {
	return &confirmScreen{title: title, prompt: prompt, th: th, onYes: onYes}
}

func (s *confirmScreen) Title() string { return s.title }
func (s *confirmScreen) Scope() string { return scopeConfirm }

func (s *confirmScreen) Update(msg tea.Msg) (Screen, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil, false
	}
	switch keyMsg.String() {
	case "y", "Y", "enter":
		if s.onYes != nil {
			return s, func() tea.Msg { return s.onYes() }, true
		}
		return s, nil, true
	case "n", "N", "esc":
		return s, nil, true
	}
	return s, nil, false
}

func (s *confirmScreen) View(width, height int) string {
	titleStyle := lipgloss.NewStyle().Foreground(s.th.Warning).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(s.th.Muted)
	return strings.Join([]string{
		titleStyle.Render(s.title),
		"",
		s.prompt,
		"",
		mutedStyle.Render("y confirm · n cancel"),
	}, "\n")
}

// inputScreen asks for one line of text, optionally validated before
// it is accepted.
type inputScreen struct {
	title    string
	input    textinput.Model
	validate func(string) error
	onSubmit func(string) tea.Msg
	errText  string
	th       theme.Theme
}

func newInputScreen(title, placeholder, initial string, th theme.Theme, validate func(string) error, onSubmit func(string) tea.Msg) *inputScreen {
	inp := textinput.New()
	inp.Placeholder = placeholder
	inp.Prompt = "> "
	inp.CharLimit = 64
	inp.SetValue(initial)
	inp.CursorEnd()
	inp.Focus()
	return &inputScreen{title: title, input: inp, th: th, validate: validate, onSubmit: onSubmit}
}

func (s *inputScreen) Title() string { return s.title }
func (s *inputScreen) Scope() string { return scopeInput }

func (s *inputScreen) Update(msg tea.Msg) (Screen, tea.Cmd, bool) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return s, nil, true
		case "enter":
			text := strings.TrimSpace(s.input.Value())
			if s.validate != nil {
				if err := s.validate(text); err != nil {
					s.errText = err.Error()
					return s, nil, false
				}
			}
			if s.onSubmit != nil {
				return s, func() tea.Msg { return s.onSubmit(text) }, true
			}
			return s, nil, true
		}
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd, false
}

func (s *inputScreen) View(width, height int) string {
	titleStyle := lipgloss.NewStyle().Foreground(s.th.Accent).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(s.th.Muted)
	errStyle := lipgloss.NewStyle().Foreground(s.th.Error)
	lines := []string{
		titleStyle.Render(s.title),
		"",
		s.input.View(),
	}
	if s.errText != "" {
		lines = append(lines, "", errStyle.Render(s.errText))
	}
	lines = append(lines, "", mutedStyle.Render("enter save · esc cancel"))
	return strings.Join(lines, "\n")
}
