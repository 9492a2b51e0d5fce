// Package theme holds the Catppuccin Mocha palette and the resolved
// color set the host and widgets draw with. The accent is the only
// user-configurable slot; the rest of the palette stays fixed so every
// accent reads well against the same base.
package theme

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Catppuccin Mocha palette — true-color hex values.
// https://catppuccin.com/palette
const (
	Rosewater lipgloss.Color = "#f5e0dc"
	Flamingo  lipgloss.Color = "#f2cdcd"
	Pink      lipgloss.Color = "#f5c2e7"
	Mauve     lipgloss.Color = "#cba6f7"
	Red       lipgloss.Color = "#f38ba8"
	Maroon    lipgloss.Color = "#eba0ac"
	Peach     lipgloss.Color = "#fab387"
	Yellow    lipgloss.Color = "#f9e2af"
	Green     lipgloss.Color = "#a6e3a1"
	Teal      lipgloss.Color = "#94e2d5"
	Sky       lipgloss.Color = "#89dceb"
	Sapphire  lipgloss.Color = "#74c7ec"
	Blue      lipgloss.Color = "#89b4fa"
	Lavender  lipgloss.Color = "#b4befe"

	Text     lipgloss.Color = "#cdd6f4"
	Subtext1 lipgloss.Color = "#bac2de"
	Subtext0 lipgloss.Color = "#a6adc8"
	Overlay2 lipgloss.Color = "#9399b2"
	Overlay1 lipgloss.Color = "#7f849c"
	Overlay0 lipgloss.Color = "#6c7086"
	Surface2 lipgloss.Color = "#585b70"
	Surface1 lipgloss.Color = "#45475a"
	Surface0 lipgloss.Color = "#313244"
	Base     lipgloss.Color = "#1e1e2e"
	Mantle   lipgloss.Color = "#181825"
	Crust    lipgloss.Color = "#11111b"
)

// Theme is the semantic color set. Widgets take it by value at render
// time, so swapping the accent live never races a draw.
type Theme struct {
	Name   string
	Accent lipgloss.Color

	Fg     lipgloss.Color
	Muted  lipgloss.Color
	Faint  lipgloss.Color
	TabOff lipgloss.Color

	Border         lipgloss.Color
	BorderSelected lipgloss.Color
	BorderFocused  lipgloss.Color

	Success lipgloss.Color
	Error   lipgloss.Color
	Warning lipgloss.Color
}

var accents = map[string]lipgloss.Color{
	"rosewater": Rosewater,
	"flamingo":  Flamingo,
	"pink":      Pink,
	"mauve":     Mauve,
	"red":       Red,
	"maroon":    Maroon,
	"peach":     Peach,
	"yellow":    Yellow,
	"green":     Green,
	"teal":      Teal,
	"sky":       Sky,
	"sapphire":  Sapphire,
	"blue":      Blue,
	"lavender":  Lavender,
}

// DefaultAccent is used when the configured accent name is unknown.
const DefaultAccent = "blue"

// Named resolves an accent name (case-insensitive) into a full theme.
// Unknown names fall back to the default accent rather than erroring;
// a bad config value should never cost the user their dashboard.
func Named(accent string) Theme {
	name := strings.ToLower(strings.TrimSpace(accent))
	color, ok := accents[name]
	if !ok {
		name = DefaultAccent
		color = accents[name]
	}
	return Theme{
		Name:           name,
		Accent:         color,
		Fg:             Text,
		Muted:          Subtext0,
		Faint:          Overlay0,
		TabOff:         Overlay1,
		Border:         Overlay0,
		BorderSelected: color,
		BorderFocused:  Green,
		Success:        Green,
		Error:          Red,
		Warning:        Yellow,
	}
}

// Default returns the theme for DefaultAccent.
func Default() Theme {
	return Named(DefaultAccent)
}

// Accents lists the accent names in a stable order for the settings
// form and config validation.
func Accents() []string {
	names := make([]string, 0, len(accents))
	for name := range accents {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
