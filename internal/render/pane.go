package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PaneColors picks the chrome colors for a Pane. Zero values take the
// package defaults so callers without a theme still get visible chrome.
type PaneColors struct {
	Border   lipgloss.Color
	Selected lipgloss.Color
	Focused  lipgloss.Color
	Title    lipgloss.Color
}

// Pane draws titled chrome around widget output. Selected marks the
// cursor position on the grid, Focused marks the pane receiving keys.
// Center puts the content in the middle of the pane, which is how
// clock faces are shown.
type Pane struct {
	Title    string
	Content  string
	Selected bool
	Focused  bool
	Center   bool
	Colors   PaneColors
}

func (p Pane) Render(width, height int) string {
	if width <= 0 {
		return ""
	}
	if width < 4 {
		width = 4
	}
	if height < 3 {
		height = 3
	}

	colors := p.Colors
	if colors.Border == "" {
		colors.Border = "#6c7086"
	}
	if colors.Selected == "" {
		colors.Selected = "#89b4fa"
	}
	if colors.Focused == "" {
		colors.Focused = "#a6e3a1"
	}
	if colors.Title == "" {
		colors.Title = "#cdd6f4"
	}
	border := colors.Border
	if p.Selected {
		border = colors.Selected
	}
	if p.Focused {
		border = colors.Focused
	}
	borderStyle := lipgloss.NewStyle().Foreground(border)
	titleStyle := lipgloss.NewStyle().Foreground(colors.Title).Bold(true)

	prefix := "  "
	if p.Selected {
		prefix = "▶ "
	}
	if p.Focused {
		prefix = "● "
	}

	innerWidth := width - 2
	contentWidth := innerWidth - 2
	if contentWidth < 1 {
		contentWidth = 1
		innerWidth = contentWidth + 2
		width = innerWidth + 2
	}

	title := strings.TrimSpace(prefix + p.Title)
	titleText := " " + title + " "
	if ansi.StringWidth(titleText) > innerWidth {
		titleText = " " + ansi.Truncate(title, max(1, innerWidth-2), "") + " "
	}
	dashes := innerWidth - ansi.StringWidth(titleText)
	if dashes < 0 {
		dashes = 0
	}
	leftDash := 1
	if leftDash > dashes {
		leftDash = dashes
	}
	rightDash := dashes - leftDash

	edge := borderStyle.Render("│")
	top := borderStyle.Render("╭") +
		borderStyle.Render(strings.Repeat("─", leftDash)) +
		titleStyle.Render(titleText) +
		borderStyle.Render(strings.Repeat("─", rightDash)) +
		borderStyle.Render("╮")
	bottom := borderStyle.Render("╰") + borderStyle.Render(strings.Repeat("─", innerWidth)) + borderStyle.Render("╯")

	innerHeight := height - 2
	content := contentLines(p.Content, contentWidth, innerHeight, p.Center)

	rows := make([]string, 0, height)
	rows = append(rows, top)
	for i := 0; i < innerHeight; i++ {
		line := ""
		if i < len(content) {
			line = content[i]
		}
		rows = append(rows, edge+" "+PadRight(line, contentWidth)+" "+edge)
	}
	rows = append(rows, bottom)
	return strings.Join(rows, "\n")
}

func contentLines(content string, width, height int, center bool) []string {
	var lines []string
	if strings.TrimSpace(content) != "" {
		lines = strings.Split(content, "\n")
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	for i := range lines {
		lines[i] = ansi.Truncate(lines[i], width, "")
	}
	if !center {
		return lines
	}
	offset := (height - len(lines)) / 2
	out := make([]string, 0, height)
	for i := 0; i < offset; i++ {
		out = append(out, "")
	}
	for _, line := range lines {
		pad := (width - ansi.StringWidth(line)) / 2
		if pad > 0 {
			line = strings.Repeat(" ", pad) + line
		}
		out = append(out, line)
	}
	return out
}
