// Package tui is the dashboard host: a bubbletea program that lays
// clock widgets out on persisted dashboard tabs, drives their aligned
// tick timers, and exposes the builder operations through keys and a
// command palette.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"

	"github.com/jask/clockboard/internal/config"
	"github.com/jask/clockboard/internal/database/repository"
	"github.com/jask/clockboard/internal/locale"
	"github.com/jask/clockboard/internal/logx"
	"github.com/jask/clockboard/internal/schema"
	"github.com/jask/clockboard/internal/theme"
	"github.com/jask/clockboard/internal/timezones"
	"github.com/jask/clockboard/internal/widget"
)

// Repos is the storage surface the host needs.
type Repos struct {
	Dashboards *repository.DashboardRepo
	Instances  *repository.InstanceRepo
}

// App is the bubbletea model. It owns the dashboard tabs, the live
// widgets of the active tab, their tick generations, and the modal
// screen stack.
type App struct {
	ctx     context.Context
	cfg     config.Config
	cfgPath string
	log     logx.Logger
	clock   clockwork.Clock
	repos   Repos

	width  int
	height int

	loc    *locale.Locale
	tz     *time.Location
	th     theme.Theme
	chrome chrome

	dashboards []repository.Dashboard
	active     int
	items      []gridItem
	selected   int
	gens       map[string]int

	screens  ScreenStack
	keys     *KeyRegistry
	commands *CommandRegistry

	status    string
	statusErr bool
	quitting  bool
}

func New(ctx context.Context, cfg config.Config, cfgPath string, repos Repos, log logx.Logger, clock clockwork.Clock) *App {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	th := theme.Named(cfg.UI.Theme)
	return &App{
		ctx:      ctx,
		cfg:      cfg,
		cfgPath:  cfgPath,
		log:      log,
		clock:    clock,
		repos:    repos,
		width:    100,
		height:   32,
		loc:      locale.Resolve(cfg.UI.Language),
		tz:       timezones.Locate(cfg.UI.Timezone),
		th:       th,
		chrome:   newChrome(th),
		gens:     map[string]int{},
		keys:     NewKeyRegistry(DefaultKeyBindings()),
		commands: NewCommandRegistry(DefaultCommands()),
		status:   "Ready",
	}
}

func (a *App) Init() tea.Cmd {
	return a.loadDashboards("")
}

// activeScope is the key/command scope of whatever has focus: the top
// modal screen, or the grid.
func (a *App) activeScope() string {
	if top := a.screens.Top(); top != nil {
		return top.Scope()
	}
	return scopeDashboard
}

func (a *App) activeDashboard() (repository.Dashboard, bool) {
	if len(a.dashboards) == 0 || a.active < 0 || a.active >= len(a.dashboards) {
		return repository.Dashboard{}, false
	}
	return a.dashboards[a.active], true
}

func (a *App) setError(err error) {
	if err == nil {
		a.status = ""
		a.statusErr = false
		return
	}
	a.status = err.Error()
	a.statusErr = true
	a.log.Error("ui error", logx.Err(err))
}

// widgetContext is the shared environment widgets format against.
func (a *App) widgetContext() widget.Context {
	return widget.Context{
		Locale:    a.loc,
		Location:  a.tz,
		HourCycle: a.cfg.UI.HourCycle,
	}
}

// loadDashboards refreshes the tab list. When activateID is set the
// matching tab becomes active once the list lands, which is how a
// freshly created dashboard gets focus.
func (a *App) loadDashboards(activateID string) tea.Cmd {
	return func() tea.Msg {
		list, err := a.repos.Dashboards.List(a.ctx)
		if err != nil {
			return errMsg{err}
		}
		return dashboardsMsg{dashboards: list, activateID: activateID}
	}
}

func (a *App) loadInstances(dashboardID string) tea.Cmd {
	return func() tea.Msg {
		items, err := a.repos.Instances.ListByDashboard(a.ctx, dashboardID)
		if err != nil {
			return errMsg{err}
		}
		return instancesMsg{dashboardID: dashboardID, items: items}
	}
}

// rebuildWidgets replaces the live grid with fresh widgets for the
// given instances. Every instance gets a new tick generation, so any
// timer armed for the previous build dies on arrival.
func (a *App) rebuildWidgets(instances []repository.Instance) {
	ctx := a.widgetContext()
	now := a.clock.Now()
	items := make([]gridItem, 0, len(instances))
	gens := make(map[string]int, len(instances))
	for _, inst := range instances {
		w, ok := widget.New(widget.Kind(inst.Kind), schema.Values(inst.Options), ctx)
		if !ok {
			a.log.Warn("skipping unknown widget kind",
				logx.String("instance", inst.ID),
				logx.String("kind", inst.Kind))
			continue
		}
		w.Advance(now)
		gens[inst.ID] = a.gens[inst.ID] + 1
		items = append(items, gridItem{inst: inst, w: w})
	}
	a.items = items
	a.gens = gens
	if a.selected >= len(items) {
		a.selected = max(0, len(items)-1)
	}
}

// rebuildCurrent re-creates the live widgets from their stored
// instances, picking up a changed locale, timezone, theme or hour
// cycle.
func (a *App) rebuildCurrent() {
	instances := make([]repository.Instance, 0, len(a.items))
	for _, item := range a.items {
		instances = append(instances, item.inst)
	}
	a.rebuildWidgets(instances)
}

// applyConfig swaps the resolved user environment and rebuilds the
// grid under it. Safe to call with an unchanged config.
func (a *App) applyConfig(cfg config.Config) tea.Cmd {
	a.cfg = cfg
	a.loc = locale.Resolve(cfg.UI.Language)
	a.tz = timezones.Locate(cfg.UI.Timezone)
	a.th = theme.Named(cfg.UI.Theme)
	a.chrome = newChrome(a.th)
	a.rebuildCurrent()
	a.log.Info("configuration applied",
		logx.String("language", a.loc.Tag),
		logx.String("timezone", a.tz.String()),
		logx.String("theme", a.th.Name))
	return a.startTicks()
}

// switchDashboard activates the tab at index. Out-of-range indexes are
// ignored; use stepDashboard for wrapping moves.
func (a *App) switchDashboard(index int) tea.Cmd {
	if index < 0 || index >= len(a.dashboards) || index == a.active {
		return nil
	}
	a.active = index
	a.selected = 0
	a.items = nil
	return a.loadInstances(a.dashboards[index].ID)
}

// stepDashboard moves delta tabs with wraparound. Rotation and
// next/prev use this.
func (a *App) stepDashboard(delta int) tea.Cmd {
	if len(a.dashboards) < 2 {
		return nil
	}
	next := (a.active + delta%len(a.dashboards) + len(a.dashboards)) % len(a.dashboards)
	return a.switchDashboard(next)
}
