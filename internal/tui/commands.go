package tui

import (
	"cmp"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Command is one palette entry. Disabled commands still appear in
// search results, greyed out with the reason, so users learn why an
// action is unavailable instead of wondering where it went.
type Command struct {
	ID          string
	Name        string
	Description string
	Scopes      []string
	Execute     func(a *App) tea.Cmd
	Disabled    func(a *App) (bool, string)
}

type CommandResult struct {
	CommandID string
	Name      string
	Desc      string
	Disabled  bool
	Reason    string
}

type CommandRegistry struct {
	commands map[string]Command
}

func NewCommandRegistry(cmds []Command) *CommandRegistry {
	reg := &CommandRegistry{commands: map[string]Command{}}
	for _, c := range cmds {
		reg.Register(c)
	}
	return reg
}

func (r *CommandRegistry) Register(c Command) {
	if c.ID == "" {
		return
	}
	r.commands[c.ID] = c
}

// Search lists commands matching query in scope, enabled first, then
// alphabetical. The palette applies its own fuzzy ranking on top, so
// this stays a plain substring filter.
func (r *CommandRegistry) Search(query, scope string, a *App) []CommandResult {
	q := strings.ToLower(strings.TrimSpace(query))
	results := make([]CommandResult, 0, len(r.commands))
	for _, c := range r.commands {
		if !scopeMatch(scope, c.Scopes) {
			continue
		}
		haystack := strings.ToLower(c.Name + " " + c.Description + " " + c.ID)
		if q != "" && !strings.Contains(haystack, q) {
			continue
		}
		disabled := false
		reason := ""
		if c.Disabled != nil {
			disabled, reason = c.Disabled(a)
		}
		results = append(results, CommandResult{
			CommandID: c.ID,
			Name:      c.Name,
			Desc:      c.Description,
			Disabled:  disabled,
			Reason:    reason,
		})
	}
	slices.SortFunc(results, func(x, y CommandResult) int {
		if x.Disabled != y.Disabled {
			if !x.Disabled {
				return -1
			}
			return 1
		}
		return cmp.Compare(x.Name, y.Name)
	})
	return results
}

func (r *CommandRegistry) Execute(id string, a *App) tea.Cmd {
	c, ok := r.commands[id]
	if !ok {
		return statusCmd("unknown command: " + id)
	}
	if c.Disabled != nil {
		if disabled, reason := c.Disabled(a); disabled {
			if reason == "" {
				reason = "command is disabled"
			}
			return statusCmd(reason)
		}
	}
	if c.Execute == nil {
		return nil
	}
	return c.Execute(a)
}

// DefaultCommands is the stock palette. Every builder operation lives
// here so keyboard shortcuts are a convenience, not a requirement.
func DefaultCommands() []Command {
	needsWidget := func(a *App) (bool, string) {
		if len(a.items) == 0 {
			return true, "no widgets on this dashboard"
		}
		return false, ""
	}
	needsOtherDashboard := func(a *App) (bool, string) {
		if len(a.items) == 0 {
			return true, "no widgets on this dashboard"
		}
		if len(a.dashboards) < 2 {
			return true, "no other dashboard to move to"
		}
		return false, ""
	}
	return []Command{
		{
			ID: "widget.add", Name: "Add widget",
			Description: "Pick a clock kind for this dashboard",
			Execute:     func(a *App) tea.Cmd { return a.openAddWidget() },
		},
		{
			ID: "widget.edit", Name: "Edit widget",
			Description: "Open the selected widget's settings",
			Disabled:    needsWidget,
			Execute:     func(a *App) tea.Cmd { return a.openEditWidget() },
		},
		{
			ID: "widget.remove", Name: "Remove widget",
			Description: "Delete the selected widget",
			Disabled:    needsWidget,
			Execute:     func(a *App) tea.Cmd { return a.openRemoveWidget() },
		},
		{
			ID: "widget.move", Name: "Move widget to dashboard",
			Description: "Send the selected widget to another tab",
			Disabled:    needsOtherDashboard,
			Execute:     func(a *App) tea.Cmd { return a.openMoveWidget() },
		},
		{
			ID: "dashboard.new", Name: "New dashboard",
			Description: "Create a dashboard tab",
			Execute:     func(a *App) tea.Cmd { return a.openNewDashboard() },
		},
		{
			ID: "dashboard.rename", Name: "Rename dashboard",
			Description: "Rename the current tab",
			Execute:     func(a *App) tea.Cmd { return a.openRenameDashboard() },
		},
		{
			ID: "dashboard.delete", Name: "Delete dashboard",
			Description: "Delete the current tab and its widgets",
			Disabled: func(a *App) (bool, string) {
				if len(a.dashboards) < 2 {
					return true, "cannot delete the last dashboard"
				}
				return false, ""
			},
			Execute: func(a *App) tea.Cmd { return a.openDeleteDashboard() },
		},
		{
			ID: "dashboard.columns", Name: "Set columns",
			Description: "Change the grid column count",
			Execute:     func(a *App) tea.Cmd { return a.openSetColumns() },
		},
		{
			ID: "dashboard.next", Name: "Next dashboard",
			Description: "Switch to the next tab",
			Execute:     func(a *App) tea.Cmd { return a.stepDashboard(1) },
		},
		{
			ID: "dashboard.prev", Name: "Previous dashboard",
			Description: "Switch to the previous tab",
			Execute:     func(a *App) tea.Cmd { return a.stepDashboard(-1) },
		},
		{
			ID: "app.settings", Name: "Settings",
			Description: "Language, timezone, theme, rotation",
			Execute:     func(a *App) tea.Cmd { return a.openSettings() },
		},
		{
			ID: "rotation.toggle", Name: "Toggle rotation",
			Description: "Turn scheduled dashboard rotation on or off",
			Execute:     func(a *App) tea.Cmd { return a.toggleRotation() },
		},
		{
			ID: "app.quit", Name: "Quit",
			Description: "Leave clockboard",
			Execute: func(a *App) tea.Cmd {
				a.quitting = true
				return tea.Quit
			},
		},
	}
}
