package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/clockboard/internal/schema"
	"github.com/jask/clockboard/internal/theme"
	"github.com/jask/clockboard/internal/timezones"
)

// formScreen edits a value set against a schema: selects cycle with
// left/right, toggles flip, text fields open an inline input, and
// timezone fields push the searchable zone picker. Enter on the save
// row validates and hands the values back.
type formScreen struct {
	title  string
	sch    schema.Schema
	values schema.Values
	check  func(schema.Values) error
	onSave func(schema.Values) tea.Msg
	th     theme.Theme

	cursor  int
	editing bool
	input   textinput.Model
	errText string
}

func newFormScreen(title string, sch schema.Schema, values schema.Values, th theme.Theme, onSave func(schema.Values) tea.Msg) *formScreen {
	inp := textinput.New()
	inp.Prompt = "> "
	inp.CharLimit = 64
	return &formScreen{
		title:  title,
		sch:    sch,
		values: sch.ApplyDefaults(values),
		th:     th,
		onSave: onSave,
		input:  inp,
	}
}

// setCheck adds validation beyond the schema's own, e.g. a cron
// expression check on the rotation schedule.
func (s *formScreen) setCheck(check func(schema.Values) error) *formScreen {
	s.check = check
	return s
}

func (s *formScreen) Title() string { return s.title }
func (s *formScreen) Scope() string { return scopeForm }

// rowCount is the visible fields plus the save row.
func (s *formScreen) rowCount() int {
	return len(s.sch.Visible(s.values)) + 1
}

func (s *formScreen) currentField() (schema.Field, bool) {
	visible := s.sch.Visible(s.values)
	if s.cursor >= len(visible) {
		return schema.Field{}, false
	}
	return visible[s.cursor], true
}

func (s *formScreen) clampCursor() {
	if n := s.rowCount(); s.cursor >= n {
		s.cursor = n - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}

func (s *formScreen) Update(msg tea.Msg) (Screen, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case formValueMsg:
		s.values[msg.key] = msg.value
		s.clampCursor()
		return s, nil, false
	case tea.KeyMsg:
		if s.editing {
			return s.updateEditing(msg)
		}
		return s.updateBrowsing(msg)
	}
	return s, nil, false
}

func (s *formScreen) updateEditing(msg tea.KeyMsg) (Screen, tea.Cmd, bool) {
	switch msg.String() {
	case "esc":
		s.editing = false
		return s, nil, false
	case "enter":
		if f, ok := s.currentField(); ok {
			s.values[f.Key] = strings.TrimSpace(s.input.Value())
		}
		s.editing = false
		s.errText = ""
		return s, nil, false
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd, false
}

func (s *formScreen) updateBrowsing(msg tea.KeyMsg) (Screen, tea.Cmd, bool) {
	switch msg.String() {
	case "esc":
		return s, nil, true
	case "up", "k", "shift+tab":
		if s.cursor > 0 {
			s.cursor--
		}
		return s, nil, false
	case "down", "j", "tab":
		if s.cursor < s.rowCount()-1 {
			s.cursor++
		}
		return s, nil, false
	case "left", "h":
		s.cycle(-1)
		return s, nil, false
	case "right", "l":
		s.cycle(1)
		return s, nil, false
	case "enter", " ":
		return s.activate(msg.String() == " ")
	}
	return s, nil, false
}

// cycle steps a select field (or flips a toggle) under the cursor.
func (s *formScreen) cycle(step int) {
	f, ok := s.currentField()
	if !ok {
		return
	}
	switch f.Kind {
	case schema.KindToggle:
		s.values[f.Key] = flipBool(s.values[f.Key])
	case schema.KindSelect:
		if len(f.Options) == 0 {
			return
		}
		idx := 0
		for i, opt := range f.Options {
			if opt.Value == s.values[f.Key] {
				idx = i
				break
			}
		}
		idx = (idx + step + len(f.Options)) % len(f.Options)
		s.values[f.Key] = f.Options[idx].Value
	}
	s.errText = ""
	s.clampCursor()
}

// activate handles enter (or space) on the current row.
func (s *formScreen) activate(space bool) (Screen, tea.Cmd, bool) {
	f, ok := s.currentField()
	if !ok {
		if space {
			return s, nil, false
		}
		return s.save()
	}
	switch f.Kind {
	case schema.KindToggle:
		s.values[f.Key] = flipBool(s.values[f.Key])
		s.errText = ""
	case schema.KindSelect:
		s.cycle(1)
	case schema.KindText:
		if space {
			return s, nil, false
		}
		s.input.SetValue(s.values[f.Key])
		s.input.CursorEnd()
		s.input.Focus()
		s.editing = true
	case schema.KindTimezone:
		if space {
			return s, nil, false
		}
		key := f.Key
		picker := newSearchPickerScreen("Timezone", timezoneSearch, s.th, func(item PickerItem) tea.Msg {
			return formValueMsg{key: key, value: item.ID}
		})
		return s, func() tea.Msg { return pushScreenMsg{screen: picker} }, false
	}
	return s, nil, false
}

func (s *formScreen) save() (Screen, tea.Cmd, bool) {
	if err := s.sch.Validate(s.values); err != nil {
		s.errText = err.Error()
		return s, nil, false
	}
	if s.check != nil {
		if err := s.check(s.values); err != nil {
			s.errText = err.Error()
			return s, nil, false
		}
	}
	if s.onSave == nil {
		return s, nil, true
	}
	values := s.values.Clone()
	return s, func() tea.Msg { return s.onSave(values) }, true
}

func (s *formScreen) View(width, height int) string {
	titleStyle := lipgloss.NewStyle().Foreground(s.th.Accent).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(s.th.Muted)
	valueStyle := lipgloss.NewStyle().Foreground(s.th.Fg)
	activeStyle := lipgloss.NewStyle().Foreground(s.th.Accent)
	errStyle := lipgloss.NewStyle().Foreground(s.th.Error)
	saveStyle := lipgloss.NewStyle().Foreground(s.th.Success).Bold(true)

	lines := []string{titleStyle.Render(s.title), ""}
	visible := s.sch.Visible(s.values)
	labelWidth := 0
	for _, f := range visible {
		if len(f.Label) > labelWidth {
			labelWidth = len(f.Label)
		}
	}
	for i, f := range visible {
		cursor := "  "
		if i == s.cursor {
			cursor = activeStyle.Render("▶ ")
		}
		label := labelStyle.Render(fmt.Sprintf("%-*s", labelWidth+2, f.Label))
		value := s.renderValue(f, i == s.cursor, valueStyle, activeStyle)
		lines = append(lines, cursor+label+value)
	}
	saveRow := "  "
	if s.cursor == len(visible) {
		saveRow = activeStyle.Render("▶ ")
	}
	lines = append(lines, "", saveRow+saveStyle.Render("[ Save ]"))
	if s.errText != "" {
		lines = append(lines, "", errStyle.Render(s.errText))
	}
	hint := "↑↓ field · ←→ change · enter edit/save · esc cancel"
	lines = append(lines, "", labelStyle.Render(hint))
	return clipHeight(strings.Join(lines, "\n"), max(6, height))
}

func (s *formScreen) renderValue(f schema.Field, active bool, valueStyle, activeStyle lipgloss.Style) string {
	if s.editing && active && (f.Kind == schema.KindText) {
		return s.input.View()
	}
	raw := s.values[f.Key]
	display := raw
	switch f.Kind {
	case schema.KindToggle:
		if raw == "true" {
			display = "on"
		} else {
			display = "off"
		}
	case schema.KindSelect:
		for _, opt := range f.Options {
			if opt.Value == raw {
				display = opt.Label
				break
			}
		}
	case schema.KindTimezone:
		if raw == "" {
			display = "(default)"
		}
	case schema.KindText:
		if raw == "" {
			display = "(empty)"
		}
	}
	if active && (f.Kind == schema.KindSelect || f.Kind == schema.KindToggle) {
		return activeStyle.Render("◂ " + display + " ▸")
	}
	return valueStyle.Render(display)
}

func flipBool(v string) string {
	if v == "true" {
		return "false"
	}
	return "true"
}

// timezoneSearch adapts the zone catalog for the picker: an empty
// query lists the whole catalog grouped by region, anything else runs
// the typo-tolerant search.
func timezoneSearch(query string) []PickerItem {
	var opts []timezones.Option
	if strings.TrimSpace(query) == "" {
		opts = timezones.Options()
	} else {
		opts = timezones.Search(query, 30)
	}
	items := make([]PickerItem, 0, len(opts)+1)
	if strings.TrimSpace(query) == "" {
		items = append(items, PickerItem{ID: "", Label: "Dashboard default", Section: "Default"})
	}
	for _, opt := range opts {
		items = append(items, PickerItem{
			ID:      opt.ID,
			Label:   opt.City,
			Section: opt.Region,
			Meta:    opt.ID,
		})
	}
	return items
}
