package widget

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/clockboard/internal/datefmt"
	"github.com/jask/clockboard/internal/render"
	"github.com/jask/clockboard/internal/schema"
	"github.com/jask/clockboard/internal/theme"
)

func digitalSchema() schema.Schema {
	return schema.Schema{
		labelField(),
		timezoneField(),
		hourCycleField(),
		secondsField("true"),
		{Key: "blink", Label: "Blink colon", Kind: schema.KindToggle, Default: "false"},
		{
			Key:   "date",
			Label: "Date line",
			Kind:  schema.KindSelect,
			Options: []schema.Option{
				{Value: "none", Label: "None"},
				{Value: "full", Label: "Full"},
				{Value: "long", Label: "Long"},
				{Value: "medium", Label: "Medium"},
				{Value: "short", Label: "Short"},
				{Value: "iso", Label: "ISO"},
				{Value: "weekday", Label: "Weekday"},
				{Value: "monthday", Label: "Month and day"},
			},
			Default: "none",
		},
	}
}

// digital is the big-digit clock: oversized HH:MM[:SS], the day period
// when on a 12-hour dial, and an optional date caption.
type digital struct {
	values schema.Values
	ctx    Context

	loc      *time.Location
	twelve   bool
	seconds  bool
	blink    bool
	timeSpec datefmt.Spec // digits only; the period renders separately
	fullSpec datefmt.Spec // inline form for panes too small for glyphs
	dateSpec datefmt.Spec
	hasDate  bool

	// Parts recomputed by Advance. View reads only these, so two
	// Views without an Advance between them are byte-identical.
	timeText  string
	smallText string
	period    string
	dateText  string
	colonOn   bool
}

func newDigital(v schema.Values, ctx Context) *digital {
	d := &digital{
		values:  v,
		ctx:     ctx,
		loc:     ctx.zone(v),
		twelve:  ctx.twelveHour(v),
		seconds: v.Bool("seconds"),
		blink:   v.Bool("blink"),
		colonOn: true,
	}
	// Digits-only spec: hour values wrap to the 12-hour dial, but the
	// period item is left out since the caption carries it.
	d.timeSpec = datefmt.TimeSpec(nil, d.seconds, false, false)
	d.timeSpec.TwelveHour = d.twelve
	d.fullSpec = datefmt.TimeSpec(ctx.locale(), d.seconds, d.twelve, false)
	if id := datefmt.PresetID(v["date"]); id != "none" {
		if spec, ok := datefmt.Preset(id, ctx.locale()); ok {
			d.dateSpec = spec
			d.hasDate = true
		}
	}
	return d
}

func (d *digital) Kind() Kind            { return KindDigital }
func (d *digital) Title() string         { return titleOf(d.values, KindDigital) }
func (d *digital) Schema() schema.Schema { return digitalSchema() }

func (d *digital) Granularity() time.Duration {
	if d.seconds || d.blink {
		return time.Second
	}
	return time.Minute
}

func (d *digital) Advance(now time.Time) {
	local := now.In(d.loc)
	loc := d.ctx.locale()
	d.timeText = datefmt.Format(local, loc, d.timeSpec)
	d.smallText = datefmt.Format(local, loc, d.fullSpec)
	d.period = ""
	if d.twelve {
		d.period = loc.DayPeriod(local.Hour())
	}
	if d.hasDate {
		d.dateText = datefmt.Format(local, loc, d.dateSpec)
	}
	d.colonOn = !d.blink || local.Second()%2 == 0
}

func (d *digital) View(width, height int, th theme.Theme) string {
	digits := lipgloss.NewStyle().Foreground(th.Accent).Bold(true)
	muted := lipgloss.NewStyle().Foreground(th.Muted)

	caption := d.caption()
	big := render.BigTextLines(d.blinked(d.timeText))
	needH := render.GlyphRows
	if caption != "" {
		needH += 2
	}
	if height < needH || width < ansi.StringWidth(big[0]) {
		return d.viewSmall(width, height, th)
	}

	lines := make([]string, 0, needH)
	for _, row := range big {
		lines = append(lines, digits.Render(row))
	}
	if caption != "" {
		lines = append(lines, "", muted.Render(ansi.Truncate(caption, width, "")))
	}
	return strings.Join(lines, "\n")
}

// viewSmall is the one-line fallback when the pane cannot fit glyphs.
func (d *digital) viewSmall(width, height int, th theme.Theme) string {
	style := lipgloss.NewStyle().Foreground(th.Accent).Bold(true)
	muted := lipgloss.NewStyle().Foreground(th.Muted)
	lines := []string{style.Render(ansi.Truncate(d.blinked(d.smallText), width, ""))}
	if d.hasDate && height >= 2 {
		lines = append(lines, muted.Render(ansi.Truncate(d.dateText, width, "")))
	}
	return strings.Join(lines, "\n")
}

// blinked blanks the colons on off frames. The blank glyph is the same
// width as the colon glyph, so the digits never shift.
func (d *digital) blinked(text string) string {
	if d.colonOn {
		return text
	}
	return strings.ReplaceAll(text, ":", " ")
}

func (d *digital) caption() string {
	parts := make([]string, 0, 2)
	if d.period != "" {
		parts = append(parts, d.period)
	}
	if d.hasDate && d.dateText != "" {
		parts = append(parts, d.dateText)
	}
	return strings.Join(parts, " · ")
}
