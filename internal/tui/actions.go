package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/jask/clockboard/internal/database/repository"
	"github.com/jask/clockboard/internal/schema"
	"github.com/jask/clockboard/internal/widget"
)

// defaultColumns is the column count a freshly created dashboard gets.
const defaultColumns = 2

func (a *App) openPalette() tea.Cmd {
	scope := a.activeScope()
	a.screens.Push(newPaletteScreen(func(query string) []CommandResult {
		return a.commands.Search(query, scope, a)
	}))
	return nil
}

func (a *App) openAddWidget() tea.Cmd {
	if _, ok := a.activeDashboard(); !ok {
		return statusCmd("create a dashboard first")
	}
	kinds := widget.Kinds()
	items := make([]PickerItem, 0, len(kinds))
	for _, k := range kinds {
		items = append(items, PickerItem{ID: string(k), Label: widget.KindTitle(k), Section: "Clocks"})
	}
	th := a.th
	a.screens.Push(newPickerScreen("Add widget", items, th, func(item PickerItem) tea.Msg {
		kind := widget.Kind(item.ID)
		sch, ok := widget.SchemaFor(kind)
		if !ok {
			return statusMsg{text: "unknown widget kind: " + item.ID, isErr: true}
		}
		form := newFormScreen(widget.KindTitle(kind), sch, schema.Values{}, th, func(v schema.Values) tea.Msg {
			return addWidgetMsg{kind: kind, values: v}
		})
		return pushScreenMsg{screen: form}
	}))
	return nil
}

func (a *App) openEditWidget() tea.Cmd {
	item, ok := a.selectedItem()
	if !ok {
		return statusCmd("no widget selected")
	}
	kind := widget.Kind(item.inst.Kind)
	sch, ok := widget.SchemaFor(kind)
	if !ok {
		return statusCmd("unknown widget kind: " + item.inst.Kind)
	}
	id := item.inst.ID
	a.screens.Push(newFormScreen("Edit "+item.w.Title(), sch, schema.Values(item.inst.Options), a.th, func(v schema.Values) tea.Msg {
		return editWidgetMsg{id: id, values: v}
	}))
	return nil
}

func (a *App) openRemoveWidget() tea.Cmd {
	item, ok := a.selectedItem()
	if !ok {
		return statusCmd("no widget selected")
	}
	id := item.inst.ID
	prompt := fmt.Sprintf("Remove %q from this dashboard?", item.w.Title())
	a.screens.Push(newConfirmScreen("Remove widget", prompt, a.th, func() tea.Msg {
		return removeWidgetMsg{id: id}
	}))
	return nil
}

func (a *App) openMoveWidget() tea.Cmd {
	item, ok := a.selectedItem()
	if !ok {
		return statusCmd("no widget selected")
	}
	current, ok := a.activeDashboard()
	if !ok {
		return nil
	}
	targets := make([]PickerItem, 0, len(a.dashboards))
	for _, d := range a.dashboards {
		if d.ID == current.ID {
			continue
		}
		targets = append(targets, PickerItem{ID: d.ID, Label: d.Name, Section: "Dashboards"})
	}
	if len(targets) == 0 {
		return statusCmd("no other dashboard to move to")
	}
	id := item.inst.ID
	a.screens.Push(newPickerScreen("Move to dashboard", targets, a.th, func(picked PickerItem) tea.Msg {
		return moveWidgetMsg{id: id, dashboardID: picked.ID}
	}))
	return nil
}

func (a *App) openNewDashboard() tea.Cmd {
	a.screens.Push(newInputScreen("New dashboard", "Name", "", a.th, validateDashboardName, func(text string) tea.Msg {
		return createDashboardMsg{name: text}
	}))
	return nil
}

func (a *App) openRenameDashboard() tea.Cmd {
	d, ok := a.activeDashboard()
	if !ok {
		return nil
	}
	id := d.ID
	a.screens.Push(newInputScreen("Rename dashboard", "Name", d.Name, a.th, validateDashboardName, func(text string) tea.Msg {
		return renameDashboardMsg{id: id, name: text}
	}))
	return nil
}

func (a *App) openDeleteDashboard() tea.Cmd {
	d, ok := a.activeDashboard()
	if !ok {
		return nil
	}
	if len(a.dashboards) < 2 {
		return statusCmd("cannot delete the last dashboard")
	}
	id := d.ID
	prompt := fmt.Sprintf("Delete %q and all its widgets?", d.Name)
	a.screens.Push(newConfirmScreen("Delete dashboard", prompt, a.th, func() tea.Msg {
		return deleteDashboardMsg{id: id}
	}))
	return nil
}

func (a *App) openSetColumns() tea.Cmd {
	d, ok := a.activeDashboard()
	if !ok {
		return nil
	}
	id := d.ID
	initial := strconv.Itoa(clampColumns(d.Columns))
	a.screens.Push(newInputScreen("Set columns", "1-6", initial, a.th, validateColumns, func(text string) tea.Msg {
		n, _ := strconv.Atoi(strings.TrimSpace(text))
		return setColumnsMsg{id: id, columns: n}
	}))
	return nil
}

func validateDashboardName(text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("name cannot be empty")
	}
	return nil
}

func validateColumns(text string) error {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return fmt.Errorf("columns must be a number")
	}
	if n < minColumns || n > maxColumns {
		return fmt.Errorf("columns must be between %d and %d", minColumns, maxColumns)
	}
	return nil
}

// Mutations run as a Sequence so the reload only fires after the write
// lands; Batch would race them.

func (a *App) insertWidget(kind widget.Kind, values schema.Values) tea.Cmd {
	d, ok := a.activeDashboard()
	if !ok {
		return statusCmd("create a dashboard first")
	}
	inst := repository.Instance{
		ID:          uuid.NewString(),
		DashboardID: d.ID,
		Kind:        string(kind),
		Position:    len(a.items),
		Options:     map[string]string(values),
	}
	return tea.Sequence(
		func() tea.Msg {
			if err := a.repos.Instances.Insert(a.ctx, inst); err != nil {
				return errMsg{err}
			}
			return statusMsg{text: "Widget added"}
		},
		a.loadInstances(d.ID),
	)
}

func (a *App) updateWidget(id string, values schema.Values) tea.Cmd {
	d, ok := a.activeDashboard()
	if !ok {
		return nil
	}
	return tea.Sequence(
		func() tea.Msg {
			if err := a.repos.Instances.UpdateOptions(a.ctx, id, map[string]string(values)); err != nil {
				return errMsg{err}
			}
			return statusMsg{text: "Widget updated"}
		},
		a.loadInstances(d.ID),
	)
}

func (a *App) deleteWidget(id string) tea.Cmd {
	d, ok := a.activeDashboard()
	if !ok {
		return nil
	}
	return tea.Sequence(
		func() tea.Msg {
			if err := a.repos.Instances.Delete(a.ctx, id); err != nil {
				return errMsg{err}
			}
			return statusMsg{text: "Widget removed"}
		},
		a.loadInstances(d.ID),
	)
}

func (a *App) moveWidget(id, dashboardID string) tea.Cmd {
	d, ok := a.activeDashboard()
	if !ok {
		return nil
	}
	target := dashboardID
	for _, dash := range a.dashboards {
		if dash.ID == dashboardID {
			target = dash.Name
			break
		}
	}
	return tea.Sequence(
		func() tea.Msg {
			if err := a.repos.Instances.Move(a.ctx, id, dashboardID); err != nil {
				return errMsg{err}
			}
			return statusMsg{text: "Widget moved to " + target}
		},
		a.loadInstances(d.ID),
	)
}

// swapWidget exchanges the selected widget with its row-major
// neighbor. The selection follows the widget.
func (a *App) swapWidget(delta int) tea.Cmd {
	if len(a.items) < 2 {
		return nil
	}
	from := a.selected
	to := from + delta
	if to < 0 || to >= len(a.items) {
		return nil
	}
	d, ok := a.activeDashboard()
	if !ok {
		return nil
	}
	ids := make([]string, len(a.items))
	for i, item := range a.items {
		ids[i] = item.inst.ID
	}
	ids[from], ids[to] = ids[to], ids[from]
	a.selected = to
	return tea.Sequence(
		func() tea.Msg {
			if err := a.repos.Instances.Reorder(a.ctx, ids); err != nil {
				return errMsg{err}
			}
			return statusMsg{}
		},
		a.loadInstances(d.ID),
	)
}

func (a *App) createDashboard(name string) tea.Cmd {
	d := repository.Dashboard{
		ID:       uuid.NewString(),
		Name:     strings.TrimSpace(name),
		Columns:  defaultColumns,
		Position: len(a.dashboards),
	}
	return tea.Sequence(
		func() tea.Msg {
			if err := a.repos.Dashboards.Create(a.ctx, d); err != nil {
				return errMsg{err}
			}
			return statusMsg{text: "Dashboard created"}
		},
		a.loadDashboards(d.ID),
	)
}

func (a *App) renameDashboard(id, name string) tea.Cmd {
	return tea.Sequence(
		func() tea.Msg {
			if err := a.repos.Dashboards.Rename(a.ctx, id, strings.TrimSpace(name)); err != nil {
				return errMsg{err}
			}
			return statusMsg{text: "Dashboard renamed"}
		},
		a.loadDashboards(""),
	)
}

func (a *App) deleteDashboard(id string) tea.Cmd {
	return tea.Sequence(
		func() tea.Msg {
			if err := a.repos.Dashboards.Delete(a.ctx, id); err != nil {
				return errMsg{err}
			}
			return statusMsg{text: "Dashboard deleted"}
		},
		a.loadDashboards(""),
	)
}

func (a *App) setColumns(id string, columns int) tea.Cmd {
	return tea.Sequence(
		func() tea.Msg {
			if err := a.repos.Dashboards.SetColumns(a.ctx, id, clampColumns(columns)); err != nil {
				return errMsg{err}
			}
			return statusMsg{text: fmt.Sprintf("Columns set to %d", clampColumns(columns))}
		},
		a.loadDashboards(""),
	)
}
