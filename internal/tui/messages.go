package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/clockboard/internal/config"
	"github.com/jask/clockboard/internal/database/repository"
	"github.com/jask/clockboard/internal/schema"
	"github.com/jask/clockboard/internal/widget"
)

// ConfigReloadedMsg enters through Program.Send when the config file
// changes on disk (or right after the settings screen saves it). The
// app re-resolves locale, timezone and theme and rebuilds its widgets.
type ConfigReloadedMsg struct {
	Config config.Config
}

type statusMsg struct {
	text  string
	isErr bool
}

func statusCmd(text string) tea.Cmd {
	return func() tea.Msg { return statusMsg{text: text} }
}

type errMsg struct{ error }

type dashboardsMsg struct {
	dashboards []repository.Dashboard
	activateID string
}

type instancesMsg struct {
	dashboardID string
	items       []repository.Instance
}

type pushScreenMsg struct{ screen Screen }

type commandExecuteMsg struct{ id string }

// widgetTickMsg is one boundary tick of one instance's timer chain.
// gen ties the message to the chain that scheduled it; a rebuilt or
// removed widget bumps the generation, so stale ticks fall through.
type widgetTickMsg struct {
	id  string
	gen int
}

// widgetRepaintMsg is the short follow-up after a tick, used to retire
// flip animation frames. It never reschedules anything.
type widgetRepaintMsg struct {
	id  string
	gen int
}

// formValueMsg carries a picker result back into the form that opened
// the picker.
type formValueMsg struct {
	key   string
	value string
}

type addWidgetMsg struct {
	kind   widget.Kind
	values schema.Values
}

type editWidgetMsg struct {
	id     string
	values schema.Values
}

type removeWidgetMsg struct{ id string }

type moveWidgetMsg struct {
	id          string
	dashboardID string
}

type createDashboardMsg struct{ name string }

type renameDashboardMsg struct {
	id   string
	name string
}

type deleteDashboardMsg struct{ id string }

type setColumnsMsg struct {
	id      string
	columns int
}

type settingsSavedMsg struct {
	cfg config.Config
}
