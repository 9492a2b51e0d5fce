package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/clockboard/internal/logx"
	"github.com/jask/clockboard/internal/widget"
)

// alignedDelay is the time until the next whole boundary of res, so a
// seconds clock ticks on :00 of every second and a minutes clock on
// :00 of every minute.
func alignedDelay(now time.Time, res time.Duration) time.Duration {
	next := now.Truncate(res).Add(res)
	return next.Sub(now)
}

// scheduleTick arms one instance's next boundary tick. The generation
// is captured here; if the widget is rebuilt before the tick lands,
// the stale message is dropped on arrival.
func (a *App) scheduleTick(id string, gen int, res time.Duration) tea.Cmd {
	delay := alignedDelay(a.clock.Now(), res)
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return widgetTickMsg{id: id, gen: gen}
	})
}

// startTicks arms a tick chain for every widget on the grid. Called
// after any rebuild; the generation bump makes the old chains inert.
func (a *App) startTicks() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(a.items))
	for _, item := range a.items {
		id := item.inst.ID
		cmds = append(cmds, a.scheduleTick(id, a.gens[id], item.w.Granularity()))
	}
	return tea.Batch(cmds...)
}

// handleTick advances one widget at its boundary and arms the next
// tick. Ticks for removed widgets or older generations fall through,
// which is how timer teardown works here: nothing to cancel, the chain
// just stops being re-armed.
func (a *App) handleTick(msg widgetTickMsg) tea.Cmd {
	item, ok := a.itemByID(msg.id)
	if !ok || a.gens[msg.id] != msg.gen {
		a.log.Trace("dropping stale tick", logx.String("instance", msg.id), logx.Int("gen", msg.gen))
		return nil
	}
	item.w.Advance(a.clock.Now())

	cmds := []tea.Cmd{a.scheduleTick(msg.id, msg.gen, item.w.Granularity())}
	if f, ok := item.w.(widget.FollowUp); ok {
		if delay, want := f.FollowUp(); want {
			id, gen := msg.id, msg.gen
			cmds = append(cmds, tea.Tick(delay, func(time.Time) tea.Msg {
				return widgetRepaintMsg{id: id, gen: gen}
			}))
		}
	}
	return tea.Batch(cmds...)
}

// handleRepaint runs the follow-up advance that settles a flip frame.
// It never schedules anything, so it cannot fork a second tick chain.
func (a *App) handleRepaint(msg widgetRepaintMsg) tea.Cmd {
	item, ok := a.itemByID(msg.id)
	if !ok || a.gens[msg.id] != msg.gen {
		return nil
	}
	item.w.Advance(a.clock.Now())
	return nil
}

func (a *App) itemByID(id string) (gridItem, bool) {
	for _, item := range a.items {
		if item.inst.ID == id {
			return item, true
		}
	}
	return gridItem{}, false
}
