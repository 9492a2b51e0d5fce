package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/jonboulle/clockwork"

	"github.com/jask/clockboard/internal/config"
	"github.com/jask/clockboard/internal/database"
	"github.com/jask/clockboard/internal/database/repository"
	"github.com/jask/clockboard/internal/logx"
	"github.com/jask/clockboard/internal/rotation"
	"github.com/jask/clockboard/internal/theme"
)

var testStart = time.Date(2026, 3, 3, 10, 15, 30, 0, time.UTC)

func newTestApp(t *testing.T) (*App, *clockwork.FakeClock) {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	ctx := context.Background()
	if err := database.SeedDefaults(ctx, db); err != nil {
		t.Fatalf("seed: %v", err)
	}

	cfg := config.Config{}
	cfg.UI.Language = "en"
	cfg.UI.Timezone = "UTC"
	cfg.UI.Theme = "blue"
	cfg.UI.HourCycle = config.HourCycleAuto
	cfg.Rotation.Schedule = "@every 5m"

	repos := Repos{
		Dashboards: repository.NewDashboardRepo(db),
		Instances:  repository.NewInstanceRepo(db),
	}
	clk := clockwork.NewFakeClockAt(testStart)
	return New(ctx, cfg, "", repos, logx.Nop(), clk), clk
}

// loadApp walks the startup message flow by hand: Init loads the tab
// list, which loads the active tab's instances. The tick batch the
// last step returns is discarded; tests inject tick messages directly.
func loadApp(t *testing.T, a *App) {
	t.Helper()
	msg := a.Init()()
	if err, ok := msg.(errMsg); ok {
		t.Fatalf("load dashboards: %v", err.error)
	}
	_, cmd := a.Update(msg)
	if cmd == nil {
		t.Fatalf("expected an instance load after the tab list")
	}
	msg = cmd()
	if err, ok := msg.(errMsg); ok {
		t.Fatalf("load instances: %v", err.error)
	}
	_, _ = a.Update(msg)
}

func TestStartupLoadsSeededDashboard(t *testing.T) {
	a, _ := newTestApp(t)
	loadApp(t, a)

	if len(a.dashboards) != 1 || a.dashboards[0].Name != "Home" {
		t.Fatalf("dashboards = %+v", a.dashboards)
	}
	if len(a.items) != 2 {
		t.Fatalf("seeded dashboard should carry two widgets, got %d", len(a.items))
	}
	if a.items[0].inst.Kind != "digital" || a.items[1].inst.Kind != "datetext" {
		t.Fatalf("unexpected widget kinds: %s, %s", a.items[0].inst.Kind, a.items[1].inst.Kind)
	}
	for id, gen := range a.gens {
		if gen != 1 {
			t.Fatalf("first build should arm generation 1 for %s, got %d", id, gen)
		}
	}
}

func TestTickAdvancesOnlyCurrentGeneration(t *testing.T) {
	a, clk := newTestApp(t)
	loadApp(t, a)

	item := a.items[0]
	id := item.inst.ID
	before := ansi.Strip(item.w.View(24, 2, a.th))
	if !strings.Contains(before, "10:15:30") {
		t.Fatalf("expected the build-time instant, got %q", before)
	}

	clk.Advance(time.Second)
	_, cmd := a.Update(widgetTickMsg{id: id, gen: a.gens[id]})
	if cmd == nil {
		t.Fatalf("a live tick should re-arm the timer")
	}
	after := ansi.Strip(item.w.View(24, 2, a.th))
	if !strings.Contains(after, "10:15:31") {
		t.Fatalf("tick should advance the clock face, got %q", after)
	}

	// A stale generation neither advances nor re-arms.
	clk.Advance(time.Second)
	_, cmd = a.Update(widgetTickMsg{id: id, gen: a.gens[id] - 1})
	if cmd != nil {
		t.Fatalf("stale tick must not re-arm")
	}
	if got := ansi.Strip(item.w.View(24, 2, a.th)); got != after {
		t.Fatalf("stale tick must not advance the widget: %q", got)
	}

	// Same for ticks addressed to widgets that no longer exist.
	_, cmd = a.Update(widgetTickMsg{id: "gone", gen: 1})
	if cmd != nil {
		t.Fatalf("tick for an unknown widget must not re-arm")
	}
}

func TestRepaintSettlesWithoutRescheduling(t *testing.T) {
	a, clk := newTestApp(t)
	loadApp(t, a)

	id := a.items[0].inst.ID
	clk.Advance(400 * time.Millisecond)
	_, cmd := a.Update(widgetRepaintMsg{id: id, gen: a.gens[id]})
	if cmd != nil {
		t.Fatalf("repaint must never schedule more work")
	}
}

func TestConfigReloadRebuildsUnderNewEnvironment(t *testing.T) {
	a, _ := newTestApp(t)
	loadApp(t, a)

	id := a.items[0].inst.ID
	oldGen := a.gens[id]

	cfg := a.cfg
	cfg.UI.Language = "de"
	cfg.UI.Theme = "green"
	_, cmd := a.Update(ConfigReloadedMsg{Config: cfg})
	if cmd == nil {
		t.Fatalf("reload should restart the tick chains")
	}
	if a.loc.Tag != "de" {
		t.Fatalf("locale = %q, want de", a.loc.Tag)
	}
	if a.th.Name != "green" {
		t.Fatalf("theme = %q, want green", a.th.Name)
	}
	if a.gens[id] != oldGen+1 {
		t.Fatalf("rebuild should bump the generation: %d -> %d", oldGen, a.gens[id])
	}

	// The old chain's next tick arrives and dies.
	if _, cmd := a.Update(widgetTickMsg{id: id, gen: oldGen}); cmd != nil {
		t.Fatalf("pre-reload tick should be dropped")
	}
}

func TestUnknownLanguageFallsBackSilently(t *testing.T) {
	a, _ := newTestApp(t)
	loadApp(t, a)

	cfg := a.cfg
	cfg.UI.Language = "tlh" // Klingon: parseable, not supported
	_, _ = a.Update(ConfigReloadedMsg{Config: cfg})
	if a.loc.Tag != "en" {
		t.Fatalf("unsupported language should fall back to English, got %q", a.loc.Tag)
	}
	if a.statusErr {
		t.Fatalf("fallback must not surface as an error")
	}
}

func addSecondDashboard(t *testing.T, a *App) {
	t.Helper()
	err := a.repos.Dashboards.Create(a.ctx, repository.Dashboard{
		ID: "d2", Name: "Office", Columns: 2, Position: 1,
	})
	if err != nil {
		t.Fatalf("create dashboard: %v", err)
	}
	msg := a.loadDashboards("")()
	_, cmd := a.Update(msg)
	if cmd != nil {
		msg = cmd()
		_, _ = a.Update(msg)
	}
}

func TestRotationMsgWrapsThroughTabs(t *testing.T) {
	a, _ := newTestApp(t)
	loadApp(t, a)
	addSecondDashboard(t, a)

	if a.active != 0 {
		t.Fatalf("active = %d after reload, want 0", a.active)
	}
	_, cmd := a.Update(rotation.Msg{At: testStart})
	if a.active != 1 {
		t.Fatalf("rotation should advance to tab 1, got %d", a.active)
	}
	if cmd != nil {
		_, _ = a.Update(cmd())
	}
	if len(a.items) != 0 {
		t.Fatalf("the new tab has no widgets, got %d", len(a.items))
	}
	_, _ = a.Update(rotation.Msg{At: testStart})
	if a.active != 0 {
		t.Fatalf("rotation should wrap back to tab 0, got %d", a.active)
	}
}

func TestRotationMsgIgnoredWithSingleTab(t *testing.T) {
	a, _ := newTestApp(t)
	loadApp(t, a)
	_, cmd := a.Update(rotation.Msg{At: testStart})
	if a.active != 0 || cmd != nil {
		t.Fatalf("a single tab cannot rotate")
	}
}

func TestNumberKeySwitchesTab(t *testing.T) {
	a, _ := newTestApp(t)
	loadApp(t, a)
	addSecondDashboard(t, a)

	_, cmd := a.Update(keyRunes("2"))
	if a.active != 1 {
		t.Fatalf("key 2 should activate the second tab, got %d", a.active)
	}
	if cmd == nil {
		t.Fatalf("switching should load the tab's instances")
	}
	_, _ = a.Update(keyRunes("9"))
	if a.active != 1 {
		t.Fatalf("a number with no tab should be ignored, got %d", a.active)
	}
}

func TestDashboardListActivatesRequestedID(t *testing.T) {
	a, _ := newTestApp(t)
	loadApp(t, a)
	err := a.repos.Dashboards.Create(a.ctx, repository.Dashboard{
		ID: "d2", Name: "Office", Columns: 2, Position: 1,
	})
	if err != nil {
		t.Fatalf("create dashboard: %v", err)
	}

	msg := a.loadDashboards("d2")()
	_, cmd := a.Update(msg)
	if a.active != 1 {
		t.Fatalf("requested tab should activate, got index %d", a.active)
	}
	if cmd == nil {
		t.Fatalf("activation should load instances")
	}
}

func TestScreenStackRoutesKeysAndPops(t *testing.T) {
	a, _ := newTestApp(t)
	loadApp(t, a)

	_, _ = a.Update(keyRunes("s"))
	if a.screens.Len() != 1 || a.activeScope() != scopeForm {
		t.Fatalf("s should open the settings form, scope %q", a.activeScope())
	}

	// Grid keys must not fire while a screen is open.
	_, _ = a.Update(keyRunes("a"))
	if a.screens.Len() != 1 {
		t.Fatalf("grid bindings leaked through a modal")
	}

	_, _ = a.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if a.screens.Len() != 0 {
		t.Fatalf("esc should close the settings form")
	}
}

func TestPaletteOpensAndExecutes(t *testing.T) {
	a, _ := newTestApp(t)
	loadApp(t, a)

	_, _ = a.Update(tea.KeyMsg{Type: tea.KeyCtrlK})
	if a.activeScope() != scopeCommand {
		t.Fatalf("ctrl+k should open the palette, scope %q", a.activeScope())
	}
	_, _ = a.Update(tea.KeyMsg{Type: tea.KeyEsc})

	_, cmd := a.Update(commandExecuteMsg{id: "dashboard.next"})
	if cmd != nil {
		t.Fatalf("next with one tab is a no-op")
	}
}

func TestQuitKeys(t *testing.T) {
	a, _ := newTestApp(t)
	loadApp(t, a)
	_, cmd := a.Update(keyRunes("q"))
	if !a.quitting || cmd == nil {
		t.Fatalf("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.Quit")
	}
	if !strings.Contains(a.View(), "Goodbye") {
		t.Fatalf("quitting view should say goodbye")
	}
}

func TestStatusAndErrorMessages(t *testing.T) {
	a, _ := newTestApp(t)
	_, _ = a.Update(statusMsg{text: "Widget added"})
	if a.status != "Widget added" || a.statusErr {
		t.Fatalf("status = %q err=%v", a.status, a.statusErr)
	}
	_, _ = a.Update(errMsg{context.DeadlineExceeded})
	if !a.statusErr {
		t.Fatalf("errMsg should flag the status bar")
	}
}

func TestViewRendersChrome(t *testing.T) {
	a, _ := newTestApp(t)
	loadApp(t, a)
	a.width, a.height = 100, 32

	out := ansi.Strip(a.View())
	for _, want := range []string{"clockboard", "1:Home", "Ready", "Digital clock", "Date text"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if lines := strings.Count(out, "\n") + 1; lines != 32 {
		t.Errorf("view should fill the terminal height: %d lines", lines)
	}
}

func TestViewOverlaysModal(t *testing.T) {
	a, _ := newTestApp(t)
	loadApp(t, a)
	a.width, a.height = 100, 32

	_, _ = a.Update(keyRunes("s"))
	out := ansi.Strip(a.View())
	if !strings.Contains(out, "Settings") || !strings.Contains(out, "Language") {
		t.Fatalf("settings form should render over the grid")
	}
}

func TestRotationIndicatorInStatusBar(t *testing.T) {
	a, _ := newTestApp(t)
	loadApp(t, a)
	a.width, a.height = 100, 32

	cfg := a.cfg
	cfg.Rotation.Enabled = true
	cfg.Rotation.Schedule = "@every 1m"
	_, _ = a.Update(ConfigReloadedMsg{Config: cfg})

	out := ansi.Strip(a.View())
	if !strings.Contains(out, "rotating @every 1m") {
		t.Fatalf("status bar should show the rotation schedule")
	}
}

func TestThemeFallsBackOnUnknownAccent(t *testing.T) {
	a, _ := newTestApp(t)
	cfg := a.cfg
	cfg.UI.Theme = "chartreuse"
	_, _ = a.Update(ConfigReloadedMsg{Config: cfg})
	if a.th.Name != theme.DefaultAccent {
		t.Fatalf("unknown accent should fall back to %q, got %q", theme.DefaultAccent, a.th.Name)
	}
}
