package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/clockboard/internal/logx"
	"github.com/jask/clockboard/internal/rotation"
)

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		return a, nil

	case statusMsg:
		a.status = msg.text
		a.statusErr = msg.isErr
		return a, nil

	case errMsg:
		a.setError(msg.error)
		return a, nil

	case pushScreenMsg:
		a.screens.Push(msg.screen)
		return a, nil

	case commandExecuteMsg:
		return a, a.commands.Execute(msg.id, a)

	case rotation.Msg:
		a.log.Debug("rotation fired", logx.Time("at", msg.At))
		return a, a.stepDashboard(1)

	case ConfigReloadedMsg:
		return a, a.applyConfig(msg.Config)

	case dashboardsMsg:
		return a, a.applyDashboards(msg)

	case instancesMsg:
		if d, ok := a.activeDashboard(); !ok || d.ID != msg.dashboardID {
			return a, nil
		}
		a.rebuildWidgets(msg.items)
		return a, a.startTicks()

	case widgetTickMsg:
		return a, a.handleTick(msg)

	case widgetRepaintMsg:
		return a, a.handleRepaint(msg)

	case addWidgetMsg:
		return a, a.insertWidget(msg.kind, msg.values)

	case editWidgetMsg:
		return a, a.updateWidget(msg.id, msg.values)

	case removeWidgetMsg:
		return a, a.deleteWidget(msg.id)

	case moveWidgetMsg:
		return a, a.moveWidget(msg.id, msg.dashboardID)

	case createDashboardMsg:
		return a, a.createDashboard(msg.name)

	case renameDashboardMsg:
		return a, a.renameDashboard(msg.id, msg.name)

	case deleteDashboardMsg:
		return a, a.deleteDashboard(msg.id)

	case setColumnsMsg:
		return a, a.setColumns(msg.id, msg.columns)

	case settingsSavedMsg:
		return a, a.saveSettings(msg.cfg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			a.quitting = true
			return a, tea.Quit
		}
		if cmd, routed := a.routeToTop(msg); routed {
			return a, cmd
		}
		return a, a.handleGridKey(msg)
	}

	// Anything else (cursor blink, picker results) belongs to the top
	// screen, if one is open.
	if cmd, routed := a.routeToTop(msg); routed {
		return a, cmd
	}
	return a, nil
}

// routeToTop hands msg to the top modal screen. The second return is
// false when no screen is open.
func (a *App) routeToTop(msg tea.Msg) (tea.Cmd, bool) {
	top := a.screens.Top()
	if top == nil {
		return nil, false
	}
	next, cmd, pop := top.Update(msg)
	if pop {
		a.screens.Pop()
		return cmd, true
	}
	a.screens.setTop(next)
	return cmd, true
}

// applyDashboards installs a fresh tab list and decides which tab ends
// up active: the requested one, else the previously active one, else
// the first.
func (a *App) applyDashboards(msg dashboardsMsg) tea.Cmd {
	prevID := ""
	if d, ok := a.activeDashboard(); ok {
		prevID = d.ID
	}
	a.dashboards = msg.dashboards
	if len(a.dashboards) == 0 {
		a.active = 0
		a.items = nil
		a.gens = map[string]int{}
		return nil
	}
	want := msg.activateID
	if want == "" {
		want = prevID
	}
	next := 0
	for i, d := range a.dashboards {
		if d.ID == want {
			next = i
			break
		}
	}
	a.active = next
	return a.loadInstances(a.dashboards[next].ID)
}

func (a *App) handleGridKey(msg tea.KeyMsg) tea.Cmd {
	scope := a.activeScope()
	switch {
	case a.keys.IsAction(msg, "quit", scope):
		a.quitting = true
		return tea.Quit
	case a.keys.IsAction(msg, "open-command-palette", scope):
		return a.openPalette()
	case a.keys.IsAction(msg, "add-widget", scope):
		return a.openAddWidget()
	case a.keys.IsAction(msg, "edit-widget", scope):
		return a.openEditWidget()
	case a.keys.IsAction(msg, "remove-widget", scope):
		return a.openRemoveWidget()
	case a.keys.IsAction(msg, "move-widget", scope):
		return a.openMoveWidget()
	case a.keys.IsAction(msg, "grid-left", scope):
		a.moveSelection(-1, 0)
		return nil
	case a.keys.IsAction(msg, "grid-right", scope):
		a.moveSelection(1, 0)
		return nil
	case a.keys.IsAction(msg, "grid-up", scope):
		a.moveSelection(0, -1)
		return nil
	case a.keys.IsAction(msg, "grid-down", scope):
		a.moveSelection(0, 1)
		return nil
	case a.keys.IsAction(msg, "swap-left", scope):
		return a.swapWidget(-1)
	case a.keys.IsAction(msg, "swap-right", scope):
		return a.swapWidget(1)
	case a.keys.IsAction(msg, "next-dashboard", scope):
		return a.stepDashboard(1)
	case a.keys.IsAction(msg, "prev-dashboard", scope):
		return a.stepDashboard(-1)
	case a.keys.IsAction(msg, "new-dashboard", scope):
		return a.openNewDashboard()
	case a.keys.IsAction(msg, "rename-dashboard", scope):
		return a.openRenameDashboard()
	case a.keys.IsAction(msg, "set-columns", scope):
		return a.openSetColumns()
	case a.keys.IsAction(msg, "open-settings", scope):
		return a.openSettings()
	}
	for i := 0; i < maxNumberedTabs; i++ {
		if a.keys.IsAction(msg, fmt.Sprintf("switch-tab-%d", i+1), scope) {
			return a.switchDashboard(i)
		}
	}
	return nil
}
