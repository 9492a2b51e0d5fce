package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/clockboard/internal/render"
	"github.com/jask/clockboard/internal/theme"
)

// chrome is the frame styling around the grid. Rebuilt whenever the
// theme changes; widgets style themselves from the Theme directly.
type chrome struct {
	app          lipgloss.Style
	headerBar    lipgloss.Style
	headerApp    lipgloss.Style
	tabActive    lipgloss.Style
	tabInactive  lipgloss.Style
	tabSep       lipgloss.Style
	statusBar    lipgloss.Style
	statusErrBar lipgloss.Style
	footer       lipgloss.Style
}

func newChrome(th theme.Theme) chrome {
	return chrome{
		app:          lipgloss.NewStyle().Foreground(th.Fg),
		headerBar:    lipgloss.NewStyle().Background(theme.Mantle).Foreground(th.Fg),
		headerApp:    lipgloss.NewStyle().Foreground(th.Accent).Bold(true),
		tabActive:    lipgloss.NewStyle().Background(theme.Surface0).Foreground(th.Accent).Bold(true).Padding(0, 1),
		tabInactive:  lipgloss.NewStyle().Background(theme.Mantle).Foreground(th.TabOff).Padding(0, 1),
		tabSep:       lipgloss.NewStyle().Foreground(th.Border).Background(theme.Mantle),
		statusBar:    lipgloss.NewStyle().Foreground(th.Success).Background(theme.Surface0),
		statusErrBar: lipgloss.NewStyle().Foreground(th.Error).Background(theme.Surface0),
		footer:       lipgloss.NewStyle().Background(theme.Mantle),
	}
}

func (a *App) View() string {
	if a.quitting {
		return "Goodbye\n"
	}
	header := a.renderHeader()
	status := a.renderStatusBar()
	footer := a.renderFooter()
	available := a.height - lipgloss.Height(header) - lipgloss.Height(status) - lipgloss.Height(footer)
	if available < 0 {
		available = 0
	}
	bodyHeight := available
	var body string
	if bodyHeight > 0 {
		body = a.renderGrid(max(1, a.width-2), bodyHeight)
	}
	if top := a.screens.Top(); top != nil && bodyHeight > 0 {
		card := top.View(max(20, a.width-12), max(8, a.height-8))
		body = render.Popup(body, card, max(1, a.width-2), bodyHeight)
	}
	body = fitHeight(body, bodyHeight)
	main := strings.TrimSuffix(strings.Join([]string{header, status, body}, "\n"), "\n")
	main = fitHeight(main, lipgloss.Height(header)+lipgloss.Height(status)+available)
	view := strings.Join([]string{main, footer}, "\n")
	view = fitHeight(view, max(1, a.height))
	return a.chrome.app.Width(max(1, a.width)).MaxWidth(max(1, a.width)).Render(view)
}

// renderHeader is the app name on the left and the numbered dashboard
// tabs on the right.
func (a *App) renderHeader() string {
	tabs := make([]string, 0, len(a.dashboards))
	for i, d := range a.dashboards {
		label := fmt.Sprintf("%d:%s", i+1, d.Name)
		if i == a.active {
			tabs = append(tabs, a.chrome.tabActive.Render(label))
		} else {
			tabs = append(tabs, a.chrome.tabInactive.Render(label))
		}
	}
	left := a.chrome.headerApp.Render("clockboard")
	right := a.chrome.tabSep.Render(" ") + strings.Join(tabs, a.chrome.tabSep.Render("│"))
	right = ansi.Truncate(right, max(1, a.width), "")
	leftW := ansi.StringWidth(left)
	rightW := ansi.StringWidth(right)
	gap := 1
	if leftW+rightW+1 < a.width {
		gap = a.width - leftW - rightW
	}
	return renderHeaderBar(a.chrome.headerBar, max(1, a.width), left+strings.Repeat(" ", gap)+right)
}

func (a *App) renderStatusBar() string {
	msg := strings.TrimSpace(a.status)
	if msg == "" {
		msg = "Ready"
	}
	if a.cfg.Rotation.Enabled {
		msg += "  ·  rotating " + a.cfg.Rotation.Schedule
	}
	style := a.chrome.statusBar
	if a.statusErr {
		style = a.chrome.statusErrBar
	}
	return renderBar(style, max(1, a.width), msg, theme.Surface0)
}

// renderFooter shows the key hints for the active scope. Bindings with
// an empty description (grid movement, number keys) stay out of the
// bar; modal screens carry their own hint lines instead.
func (a *App) renderFooter() string {
	bindings := a.keys.BindingsForScope(a.activeScope())
	bg := theme.Mantle
	keyStyle := lipgloss.NewStyle().Foreground(a.th.Accent).Bold(true).Background(bg)
	descStyle := lipgloss.NewStyle().Foreground(a.th.Muted).Background(bg)
	space := lipgloss.NewStyle().Background(bg).Render(" ")
	sep := lipgloss.NewStyle().Background(bg).Render("  ")

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if len(b.Keys) == 0 || b.Description == "" {
			continue
		}
		kb := key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(b.Keys[0], b.Description))
		h := kb.Help()
		if h.Key == "" && h.Desc == "" {
			continue
		}
		parts = append(parts, keyStyle.Render(h.Key)+space+descStyle.Render(h.Desc))
	}
	line := strings.Join(parts, sep)
	if line == "" {
		line = descStyle.Render("esc close")
	}
	return renderBar(a.chrome.footer, max(1, a.width), line, bg)
}

// renderBar lays text into a full-width single-line bar.
func renderBar(style lipgloss.Style, width int, text string, bg lipgloss.TerminalColor) string {
	line := strings.ReplaceAll(text, "\n", " ")
	line = ansi.Truncate(line, width, "")
	lineW := ansi.StringWidth(line)
	if lineW < width {
		line += strings.Repeat(" ", width-lineW)
	}
	return style.
		Background(bg).
		Width(width).
		MaxWidth(width).
		Render(line)
}

func renderHeaderBar(style lipgloss.Style, width int, line string) string {
	line = ansi.Truncate(strings.ReplaceAll(line, "\n", " "), width, "")
	lineW := ansi.StringWidth(line)
	if lineW < width {
		line += strings.Repeat(" ", width-lineW)
	}
	return style.Width(width).MaxWidth(width).Render(line)
}

// fitHeight pads or truncates s to exactly height lines.
func fitHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// clipHeight truncates s to at most height lines without padding.
func clipHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}
