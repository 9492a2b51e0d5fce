package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// paletteOption adapts a command search result to the bubbles list.
type paletteOption struct {
	id       string
	name     string
	desc     string
	disabled bool
	reason   string
}

func (o paletteOption) Title() string {
	if o.disabled && o.reason != "" {
		return fmt.Sprintf("%s (%s)", o.name, o.reason)
	}
	return o.name
}
func (o paletteOption) Description() string { return o.desc }
func (o paletteOption) FilterValue() string { return o.name + " " + o.desc + " " + o.id }

// paletteScreen is the command palette: a search input over the
// scoped command registry. Selecting an entry emits a
// commandExecuteMsg for the app to run.
type paletteScreen struct {
	search func(query string) []CommandResult
	input  textinput.Model
	list   list.Model
}

func newPaletteScreen(search func(query string) []CommandResult) *paletteScreen {
	inp := textinput.New()
	inp.Placeholder = "Search commands"
	inp.Prompt = "cmd> "
	inp.Focus()
	lst := list.New(nil, list.NewDefaultDelegate(), 64, 14)
	lst.SetShowStatusBar(false)
	lst.SetFilteringEnabled(false)
	lst.SetShowHelp(false)
	lst.SetShowTitle(false)
	s := &paletteScreen{search: search, input: inp, list: lst}
	s.refresh()
	return s
}

func (s *paletteScreen) Title() string { return "Commands" }
func (s *paletteScreen) Scope() string { return scopeCommand }

func (s *paletteScreen) Update(msg tea.Msg) (Screen, tea.Cmd, bool) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return s, nil, true
		case "enter":
			if opt, ok := s.list.SelectedItem().(paletteOption); ok {
				if opt.disabled {
					return s, statusCmd(opt.reason), true
				}
				id := opt.id
				return s, func() tea.Msg { return commandExecuteMsg{id: id} }, true
			}
			return s, nil, false
		}
	}
	var inputCmd tea.Cmd
	s.input, inputCmd = s.input.Update(msg)
	s.refresh()
	var listCmd tea.Cmd
	s.list, listCmd = s.list.Update(msg)
	return s, tea.Batch(inputCmd, listCmd), false
}

func (s *paletteScreen) refresh() {
	results := s.search(strings.TrimSpace(s.input.Value()))
	items := make([]list.Item, 0, len(results))
	for _, r := range results {
		items = append(items, paletteOption{
			id:       r.CommandID,
			name:     r.Name,
			desc:     r.Desc,
			disabled: r.Disabled,
			reason:   r.Reason,
		})
	}
	_ = s.list.SetItems(items)
}

func (s *paletteScreen) View(width, height int) string {
	s.list.SetWidth(width)
	s.list.SetHeight(max(6, height-2))
	return s.input.View() + "\n" + s.list.View()
}
