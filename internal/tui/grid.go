package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/clockboard/internal/database/repository"
	"github.com/jask/clockboard/internal/render"
	"github.com/jask/clockboard/internal/theme"
	"github.com/jask/clockboard/internal/widget"
)

// Column bounds for a dashboard grid.
const (
	minColumns = 1
	maxColumns = 6
)

// gridItem pairs a stored instance with its live widget.
type gridItem struct {
	inst repository.Instance
	w    widget.Widget
}

// paneBox renders one widget inside pane chrome once the stacks have
// decided its cell size. The widget sees the inner content area.
type paneBox struct {
	item     gridItem
	selected bool
	th       theme.Theme
}

func (b paneBox) Render(width, height int) string {
	content := b.item.w.View(max(1, width-4), max(1, height-2), b.th)
	return render.Pane{
		Title:    b.item.w.Title(),
		Content:  content,
		Selected: b.selected,
		Center:   true,
		Colors: render.PaneColors{
			Border:   b.th.Border,
			Selected: b.th.BorderSelected,
			Focused:  b.th.BorderFocused,
			Title:    b.th.Fg,
		},
	}.Render(width, height)
}

// blankBox fills grid cells past the last widget so columns keep their
// width on a ragged final row.
type blankBox struct{}

func (blankBox) Render(width, height int) string { return "" }

func clampColumns(n int) int {
	if n < minColumns {
		return minColumns
	}
	if n > maxColumns {
		return maxColumns
	}
	return n
}

// columns is the active dashboard's configured column count.
func (a *App) columns() int {
	if len(a.dashboards) == 0 {
		return minColumns
	}
	return clampColumns(a.dashboards[a.active].Columns)
}

// renderGrid lays the active dashboard's widgets row-major into its
// column count.
func (a *App) renderGrid(width, height int) string {
	if len(a.items) == 0 {
		hint := lipgloss.NewStyle().Foreground(a.th.Muted).
			Render("No widgets here yet — press a to add a clock, ctrl+k for all commands.")
		return lipgloss.Place(max(1, width), max(1, height), lipgloss.Center, lipgloss.Center, hint)
	}

	cols := a.columns()
	rows := make([]render.Box, 0, (len(a.items)+cols-1)/cols)
	for start := 0; start < len(a.items); start += cols {
		end := min(start+cols, len(a.items))
		children := make([]render.Box, 0, cols)
		for i := start; i < end; i++ {
			children = append(children, paneBox{
				item:     a.items[i],
				selected: i == a.selected,
				th:       a.th,
			})
		}
		for len(children) < cols {
			children = append(children, blankBox{})
		}
		rows = append(rows, render.HStack{Children: children, Gap: 1})
	}
	return render.VStack{Children: rows}.Render(width, height)
}

// moveSelection shifts the grid cursor by one cell. Horizontal moves
// walk the row-major order; vertical moves jump a full row and clamp
// to the last widget.
func (a *App) moveSelection(dx, dy int) {
	if len(a.items) == 0 {
		a.selected = 0
		return
	}
	next := a.selected + dx + dy*a.columns()
	if next < 0 {
		next = 0
	}
	if next >= len(a.items) {
		if dy > 0 {
			next = len(a.items) - 1
		} else {
			next = a.selected
		}
	}
	a.selected = next
}

func (a *App) selectedItem() (gridItem, bool) {
	if a.selected < 0 || a.selected >= len(a.items) {
		return gridItem{}, false
	}
	return a.items[a.selected], true
}
