package widget

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/clockboard/internal/datefmt"
	"github.com/jask/clockboard/internal/schema"
	"github.com/jask/clockboard/internal/theme"
)

func datetextSchema() schema.Schema {
	custom := func(v schema.Values) bool { return v["mode"] == "custom" }
	return schema.Schema{
		labelField(),
		timezoneField(),
		{
			Key:   "mode",
			Label: "Mode",
			Kind:  schema.KindSelect,
			Options: []schema.Option{
				{Value: "preset", Label: "Preset"},
				{Value: "custom", Label: "Custom"},
			},
			Default: "preset",
		},
		{
			Key:   "preset",
			Label: "Preset",
			Kind:  schema.KindSelect,
			Options: []schema.Option{
				{Value: "full", Label: "Full"},
				{Value: "long", Label: "Long"},
				{Value: "medium", Label: "Medium"},
				{Value: "short", Label: "Short"},
				{Value: "iso", Label: "ISO"},
				{Value: "weekday", Label: "Weekday"},
				{Value: "monthday", Label: "Month and day"},
			},
			Default: "full",
			ShowIf:  func(v schema.Values) bool { return v["mode"] != "custom" },
		},
		{
			Key:   "weekday",
			Label: "Weekday",
			Kind:  schema.KindSelect,
			Options: []schema.Option{
				{Value: "none", Label: "None"},
				{Value: "long", Label: "Long"},
				{Value: "short", Label: "Short"},
			},
			Default: "long",
			ShowIf:  custom,
		},
		{
			Key:   "day",
			Label: "Day",
			Kind:  schema.KindSelect,
			Options: []schema.Option{
				{Value: "none", Label: "None"},
				{Value: "numeric", Label: "Numeric"},
				{Value: "two-digit", Label: "Two digit"},
				{Value: "ordinal", Label: "Ordinal"},
			},
			Default: "ordinal",
			ShowIf:  custom,
		},
		{
			Key:   "month",
			Label: "Month",
			Kind:  schema.KindSelect,
			Options: []schema.Option{
				{Value: "none", Label: "None"},
				{Value: "long", Label: "Long"},
				{Value: "short", Label: "Short"},
				{Value: "numeric", Label: "Numeric"},
				{Value: "two-digit", Label: "Two digit"},
			},
			Default: "long",
			ShowIf:  custom,
		},
		{
			Key:   "year",
			Label: "Year",
			Kind:  schema.KindSelect,
			Options: []schema.Option{
				{Value: "none", Label: "None"},
				{Value: "full", Label: "Full"},
				{Value: "two-digit", Label: "Two digit"},
			},
			Default: "full",
			ShowIf:  custom,
		},
		{
			Key:   "time",
			Label: "Time",
			Kind:  schema.KindSelect,
			Options: []schema.Option{
				{Value: "none", Label: "None"},
				{Value: "hm", Label: "Hours and minutes"},
				{Value: "hms", Label: "With seconds"},
			},
			Default: "none",
			ShowIf:  custom,
		},
		{
			Key:   "separator",
			Label: "Separator",
			Kind:  schema.KindSelect,
			Options: []schema.Option{
				{Value: "space", Label: "Space"},
				{Value: "comma", Label: "Comma"},
				{Value: "dash", Label: "Dash"},
				{Value: "slash", Label: "Slash"},
				{Value: "dot", Label: "Dot"},
				{Value: "newline", Label: "New line"},
			},
			Default: "space",
			ShowIf:  custom,
		},
	}
}

var separators = map[string]string{
	"space":   " ",
	"comma":   ", ",
	"dash":    " - ",
	"slash":   "/",
	"dot":     ".",
	"newline": "\n",
}

// datetext is the composable date line: either a locale preset or a
// per-unit custom arrangement, joined by a chosen separator.
type datetext struct {
	values schema.Values
	ctx    Context

	loc      *time.Location
	spec     datefmt.Spec
	withSecs bool

	text string
}

func newDatetext(v schema.Values, ctx Context) *datetext {
	d := &datetext{
		values: v,
		ctx:    ctx,
		loc:    ctx.zone(v),
	}
	if v["mode"] == "custom" {
		d.spec = d.customSpec(v)
	} else {
		id := datefmt.PresetID(v["preset"])
		spec, ok := datefmt.Preset(id, ctx.locale())
		if !ok {
			spec, _ = datefmt.Preset(datefmt.PresetFull, ctx.locale())
		}
		d.spec = spec
	}
	return d
}

// customSpec assembles the unit choices the toggles enable and lets
// datefmt.Custom order them, then appends the time readout if asked.
func (d *datetext) customSpec(v schema.Values) datefmt.Spec {
	loc := d.ctx.locale()
	sep := separators[v["separator"]]
	if sep == "" {
		sep = " "
	}

	var choices []datefmt.Choice
	if v["weekday"] != "none" {
		style := datefmt.StyleLong
		if v["weekday"] == "short" {
			style = datefmt.StyleShort
		}
		choices = append(choices, datefmt.Choice{Unit: datefmt.UnitWeekday, Style: style})
	}
	if v["day"] != "none" {
		style := datefmt.StyleOrdinal
		switch v["day"] {
		case "numeric":
			style = datefmt.StyleNumeric
		case "two-digit":
			style = datefmt.StyleTwoDigit
		}
		choices = append(choices, datefmt.Choice{Unit: datefmt.UnitDay, Style: style})
	}
	if v["month"] != "none" {
		style := datefmt.StyleLong
		switch v["month"] {
		case "short":
			style = datefmt.StyleShort
		case "numeric":
			style = datefmt.StyleNumeric
		case "two-digit":
			style = datefmt.StyleTwoDigit
		}
		choices = append(choices, datefmt.Choice{Unit: datefmt.UnitMonth, Style: style})
	}
	if v["year"] != "none" {
		style := datefmt.StyleNumeric
		if v["year"] == "two-digit" {
			style = datefmt.StyleTwoDigit
		}
		choices = append(choices, datefmt.Choice{Unit: datefmt.UnitYear, Style: style})
	}

	spec := datefmt.Custom(choices, sep, loc)

	if v["time"] != "none" {
		d.withSecs = v["time"] == "hms"
		twelve := d.ctx.twelveHour(v)
		timeSpec := datefmt.TimeSpec(loc, d.withSecs, twelve, false)
		if len(spec.Items) > 0 {
			spec.Items = append(spec.Items, datefmt.Sep(sep))
		}
		spec.Items = append(spec.Items, timeSpec.Items...)
		spec.TwelveHour = twelve
	}
	return spec
}

func (d *datetext) Kind() Kind            { return KindDatetext }
func (d *datetext) Title() string         { return titleOf(d.values, KindDatetext) }
func (d *datetext) Schema() schema.Schema { return datetextSchema() }

func (d *datetext) Granularity() time.Duration {
	if d.withSecs {
		return time.Second
	}
	return time.Minute
}

func (d *datetext) Advance(now time.Time) {
	d.text = datefmt.Format(now.In(d.loc), d.ctx.locale(), d.spec)
}

func (d *datetext) View(width, height int, th theme.Theme) string {
	style := lipgloss.NewStyle().Foreground(th.Fg).Bold(true)
	lines := strings.Split(d.text, "\n")
	if len(lines) > height && height > 0 {
		lines = lines[:height]
	}
	for i, line := range lines {
		lines[i] = style.Render(ansi.Truncate(line, width, ""))
	}
	return strings.Join(lines, "\n")
}
