package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/clockboard/internal/config"
	"github.com/jask/clockboard/internal/locale"
	"github.com/jask/clockboard/internal/rotation"
	"github.com/jask/clockboard/internal/schema"
	"github.com/jask/clockboard/internal/theme"
)

// languageNames labels each supported tag in its own language, the way
// language menus usually do.
var languageNames = map[string]string{
	"en":    "English",
	"en-GB": "English (UK)",
	"de":    "Deutsch",
	"es":    "Español",
	"fr":    "Français",
	"it":    "Italiano",
	"ja":    "日本語",
	"ko":    "한국어",
	"nl":    "Nederlands",
	"pt":    "Português",
	"zh":    "中文",
}

// settingsSchema describes the app-level settings form. It reuses the
// widget option machinery, so settings get the same editing UX as
// widgets do.
func settingsSchema() schema.Schema {
	langs := locale.Supported()
	langOptions := make([]schema.Option, 0, len(langs))
	for _, tag := range langs {
		label := languageNames[tag]
		if label == "" {
			label = tag
		}
		langOptions = append(langOptions, schema.Option{Value: tag, Label: label})
	}
	accents := theme.Accents()
	themeOptions := make([]schema.Option, 0, len(accents))
	for _, name := range accents {
		themeOptions = append(themeOptions, schema.Option{Value: name, Label: name})
	}
	return schema.Schema{
		{Key: "language", Label: "Language", Kind: schema.KindSelect, Options: langOptions, Default: "en"},
		{Key: "timezone", Label: "Timezone", Kind: schema.KindTimezone},
		{Key: "theme", Label: "Theme", Kind: schema.KindSelect, Options: themeOptions, Default: theme.DefaultAccent},
		{Key: "hour_cycle", Label: "Hour cycle", Kind: schema.KindSelect, Options: []schema.Option{
			{Value: config.HourCycleAuto, Label: "Locale default"},
			{Value: config.HourCycle12, Label: "12-hour"},
			{Value: config.HourCycle24, Label: "24-hour"},
		}, Default: config.HourCycleAuto},
		{Key: "rotation_enabled", Label: "Rotate dashboards", Kind: schema.KindToggle, Default: "false"},
		{Key: "rotation_schedule", Label: "Rotation schedule", Kind: schema.KindText, Default: "@every 5m",
			ShowIf: func(v schema.Values) bool { return v.Bool("rotation_enabled") }},
	}
}

func settingsValues(cfg config.Config) schema.Values {
	enabled := "false"
	if cfg.Rotation.Enabled {
		enabled = "true"
	}
	return schema.Values{
		"language":          cfg.UI.Language,
		"timezone":          cfg.UI.Timezone,
		"theme":             cfg.UI.Theme,
		"hour_cycle":        cfg.UI.HourCycle,
		"rotation_enabled":  enabled,
		"rotation_schedule": cfg.Rotation.Schedule,
	}
}

// settingsApply folds the form values back over the current config,
// leaving fields the form doesn't cover (storage, logging) untouched.
func settingsApply(values schema.Values, cfg config.Config) config.Config {
	out := cfg
	out.UI.Language = values["language"]
	out.UI.Timezone = values["timezone"]
	out.UI.Theme = values["theme"]
	out.UI.HourCycle = values["hour_cycle"]
	out.Rotation.Enabled = values.Bool("rotation_enabled")
	out.Rotation.Schedule = values["rotation_schedule"]
	return out
}

// checkSettings rejects a rotation schedule cron cannot parse before
// the form closes, so the user fixes it in place.
func checkSettings(values schema.Values) error {
	if !values.Bool("rotation_enabled") {
		return nil
	}
	return rotation.Validate(values["rotation_schedule"])
}

func (a *App) openSettings() tea.Cmd {
	cfg := a.cfg
	form := newFormScreen("Settings", settingsSchema(), settingsValues(cfg), a.th, func(v schema.Values) tea.Msg {
		return settingsSavedMsg{cfg: settingsApply(v, cfg)}
	}).setCheck(checkSettings)
	a.screens.Push(form)
	return nil
}

// saveSettings persists the new config and applies it locally right
// away. The file watcher will deliver a second ConfigReloadedMsg when
// it notices the write; applyConfig is idempotent, so the duplicate is
// harmless.
func (a *App) saveSettings(cfg config.Config) tea.Cmd {
	return a.persistConfig(cfg, "Settings saved")
}

func (a *App) toggleRotation() tea.Cmd {
	cfg := a.cfg
	cfg.Rotation.Enabled = !cfg.Rotation.Enabled
	status := "Rotation off"
	if cfg.Rotation.Enabled {
		status = "Rotation on"
	}
	return a.persistConfig(cfg, status)
}

func (a *App) persistConfig(cfg config.Config, status string) tea.Cmd {
	return tea.Sequence(
		func() tea.Msg {
			if err := config.Save(cfg, a.cfgPath); err != nil {
				return errMsg{err}
			}
			return statusMsg{text: status}
		},
		func() tea.Msg { return ConfigReloadedMsg{Config: cfg} },
	)
}
