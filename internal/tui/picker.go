package tui

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/clockboard/internal/theme"
)

// PickerItem is one selectable row. Section groups rows under a
// heading; Search, when set, is matched instead of the label.
type PickerItem struct {
	ID      string
	Label   string
	Section string
	Meta    string
	Search  string
}

type pickerAction int

const (
	pickerNone pickerAction = iota
	pickerMoved
	pickerSelected
	pickerCancelled
)

type pickerResult struct {
	action pickerAction
	item   PickerItem
}

// Picker is an incremental-search list. With a static item set it
// fuzzy-filters locally; with a search callback (the timezone catalog)
// each keystroke re-queries instead.
type Picker struct {
	items    []PickerItem
	filtered []PickerItem
	search   func(query string) []PickerItem
	query    string
	cursor   int
}

func NewPicker(items []PickerItem) *Picker {
	p := &Picker{items: slicesClone(items)}
	p.rebuild()
	return p
}

// NewSearchPicker builds a picker backed by a query function. The
// initial item set is search("").
func NewSearchPicker(search func(query string) []PickerItem) *Picker {
	p := &Picker{search: search}
	p.rebuild()
	return p
}

func (p *Picker) Query() string       { return p.query }
func (p *Picker) Cursor() int         { return p.cursor }
func (p *Picker) Items() []PickerItem { return slicesClone(p.filtered) }

func (p *Picker) SetQuery(q string) {
	p.query = q
	p.rebuild()
}

func (p *Picker) Current() (PickerItem, bool) {
	if len(p.filtered) == 0 {
		return PickerItem{}, false
	}
	return p.filtered[p.cursor], true
}

// HandleKey advances the picker state by one key press. Printable
// characters extend the query; everything else navigates.
func (p *Picker) HandleKey(keyName string) pickerResult {
	switch keyName {
	case "up", "ctrl+p":
		if p.cursor > 0 {
			p.cursor--
			return pickerResult{action: pickerMoved}
		}
		return pickerResult{}
	case "down", "ctrl+n":
		if p.cursor < len(p.filtered)-1 {
			p.cursor++
			return pickerResult{action: pickerMoved}
		}
		return pickerResult{}
	case "enter":
		item, ok := p.Current()
		if !ok {
			return pickerResult{}
		}
		return pickerResult{action: pickerSelected, item: item}
	case "esc":
		return pickerResult{action: pickerCancelled}
	case "backspace":
		if p.query != "" {
			runes := []rune(p.query)
			p.SetQuery(string(runes[:len(runes)-1]))
		}
		return pickerResult{}
	default:
		if printableKey(keyName) {
			p.SetQuery(p.query + keyName)
		}
		return pickerResult{}
	}
}

func (p *Picker) rebuild() {
	if p.search != nil {
		p.filtered = p.search(p.query)
	} else {
		p.filtered = fuzzyFilter(p.items, p.query)
	}
	if p.cursor >= len(p.filtered) {
		p.cursor = len(p.filtered) - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}

type scoredItem struct {
	item  PickerItem
	score int
	index int
}

// fuzzyFilter keeps items whose search text contains the query as a
// subsequence, best matches first, preserving section grouping.
func fuzzyFilter(items []PickerItem, query string) []PickerItem {
	q := strings.TrimSpace(query)
	sections := make([]string, 0, 4)
	seen := map[string]bool{}
	bySection := map[string][]scoredItem{}
	for idx, item := range items {
		if !seen[item.Section] {
			seen[item.Section] = true
			sections = append(sections, item.Section)
		}
		text := item.Search
		if strings.TrimSpace(text) == "" {
			text = item.Label
		}
		ok, score := fuzzyScore(text, q)
		if !ok {
			continue
		}
		bySection[item.Section] = append(bySection[item.Section], scoredItem{item: item, score: score, index: idx})
	}
	out := make([]PickerItem, 0, len(items))
	for _, section := range sections {
		scored := bySection[section]
		sort.Slice(scored, func(i, j int) bool {
			if scored[i].score != scored[j].score {
				return scored[i].score > scored[j].score
			}
			return scored[i].index < scored[j].index
		})
		for _, row := range scored {
			out = append(out, row.item)
		}
	}
	return out
}

// fuzzyScore matches query as a case-insensitive subsequence of text.
// Prefix matches and runs of adjacent characters score higher, exact
// matches highest.
func fuzzyScore(text, query string) (bool, int) {
	if query == "" {
		return true, 0
	}
	t := strings.ToLower(text)
	q := strings.ToLower(query)

	positions := make([]int, 0, len(q))
	from := 0
	for i := 0; i < len(q); i++ {
		j := strings.IndexByte(t[from:], q[i])
		if j < 0 {
			return false, 0
		}
		positions = append(positions, from+j)
		from += j + 1
	}

	score := len(q)
	if positions[0] == 0 {
		score += 10
	}
	for i := 1; i < len(positions); i++ {
		if positions[i] == positions[i-1]+1 {
			score += 3
		}
	}
	if strings.EqualFold(strings.TrimSpace(text), strings.TrimSpace(query)) {
		score += 20
	}
	return true, score
}

func printableKey(keyName string) bool {
	if len(keyName) == 1 && keyName[0] >= 32 && keyName[0] < 127 {
		return true
	}
	// Multi-byte single runes (ö, 東) arrive as their own key name.
	runes := []rune(keyName)
	return len(runes) == 1 && runes[0] > 127
}

func slicesClone(items []PickerItem) []PickerItem {
	return append([]PickerItem(nil), items...)
}

// pickerScreen wraps a Picker as a modal layer.
type pickerScreen struct {
	title    string
	picker   *Picker
	onSelect func(item PickerItem) tea.Msg
	th       theme.Theme
}

func newPickerScreen(title string, items []PickerItem, th theme.Theme, onSelect func(PickerItem) tea.Msg) *pickerScreen {
	return &pickerScreen{title: title, picker: NewPicker(items), th: th, onSelect: onSelect}
}

func newSearchPickerScreen(title string, search func(string) []PickerItem, th theme.Theme, onSelect func(PickerItem) tea.Msg) *pickerScreen {
	return &pickerScreen{title: title, picker: NewSearchPicker(search), th: th, onSelect: onSelect}
}

func (s *pickerScreen) Title() string { return s.title }
func (s *pickerScreen) Scope() string { return scopePicker }

func (s *pickerScreen) Update(msg tea.Msg) (Screen, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil, false
	}
	result := s.picker.HandleKey(keyMsg.String())
	switch result.action {
	case pickerCancelled:
		return s, nil, true
	case pickerSelected:
		if s.onSelect != nil {
			item := result.item
			return s, func() tea.Msg { return s.onSelect(item) }, true
		}
		return s, nil, true
	default:
		return s, nil, false
	}
}

func (s *pickerScreen) View(width, height int) string {
	titleStyle := lipgloss.NewStyle().Foreground(s.th.Accent).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(s.th.Muted)
	sectionStyle := lipgloss.NewStyle().Foreground(s.th.Faint)
	cursorStyle := lipgloss.NewStyle().Foreground(s.th.Accent)

	query := s.picker.Query()
	if query == "" {
		query = mutedStyle.Render("(type to filter)")
	}
	lines := []string{titleStyle.Render(s.title), "› " + query, ""}

	items := s.picker.Items()
	if len(items) == 0 {
		lines = append(lines, mutedStyle.Render("  no matches"))
	}
	lastSection := ""
	for idx, item := range items {
		if item.Section != "" && item.Section != lastSection {
			lines = append(lines, sectionStyle.Render(item.Section))
			lastSection = item.Section
		}
		prefix := "  "
		label := item.Label
		if item.Meta != "" {
			label += mutedStyle.Render("  " + item.Meta)
		}
		if idx == s.picker.Cursor() {
			prefix = cursorStyle.Render("▶ ")
		}
		lines = append(lines, prefix+label)
	}
	lines = append(lines, "", mutedStyle.Render("enter select · esc cancel"))
	return clipHeight(strings.Join(lines, "\n"), max(6, height))
}
