package widget

import (
	"math"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/clockboard/internal/render"
	"github.com/jask/clockboard/internal/schema"
	"github.com/jask/clockboard/internal/theme"
)

func analogSchema() schema.Schema {
	return schema.Schema{
		labelField(),
		timezoneField(),
		secondsField("true"),
		{Key: "ticks", Label: "Tick marks", Kind: schema.KindToggle, Default: "true"},
		{
			Key:   "numerals",
			Label: "Numerals",
			Kind:  schema.KindSelect,
			Options: []schema.Option{
				{Value: "none", Label: "None"},
				{Value: "quarter", Label: "12, 3, 6, 9"},
				{Value: "all", Label: "All hours"},
			},
			Default: "quarter",
		},
	}
}

// analog draws a clock face on a rune canvas. The x axis is stretched
// by the terminal cell aspect so the dial reads as a circle.
type analog struct {
	values schema.Values
	ctx    Context

	loc      *time.Location
	seconds  bool
	ticks    bool
	numerals string

	now time.Time
}

func newAnalog(v schema.Values, ctx Context) *analog {
	return &analog{
		values:   v,
		ctx:      ctx,
		loc:      ctx.zone(v),
		seconds:  v.Bool("seconds"),
		ticks:    v.Bool("ticks"),
		numerals: v["numerals"],
	}
}

func (a *analog) Kind() Kind            { return KindAnalog }
func (a *analog) Title() string         { return titleOf(a.values, KindAnalog) }
func (a *analog) Schema() schema.Schema { return analogSchema() }

func (a *analog) Granularity() time.Duration {
	if a.seconds {
		return time.Second
	}
	return time.Minute
}

func (a *analog) Advance(now time.Time) {
	a.now = now.In(a.loc)
}

// Hand lengths as a fraction of the dial radius.
const (
	hourHandLen   = 0.55
	minuteHandLen = 0.85
	secondHandLen = 0.92
)

func (a *analog) View(width, height int, th theme.Theme) string {
	// Radius in rows; columns stretch by the cell aspect.
	radius := (height - 1) / 2
	if maxR := int(float64(width-1) / (2 * render.CellAspect)); maxR < radius {
		radius = maxR
	}
	if radius < 3 {
		return a.viewSmall(width, th)
	}

	w := int(float64(radius)*2*render.CellAspect) + 1
	h := radius*2 + 1
	canvas := render.NewCanvas(w, h)
	cx, cy := w/2, h/2

	if a.ticks {
		for i := 0; i < 12; i++ {
			mark := '·'
			if i%3 == 0 {
				mark = '●'
			}
			x, y := dialPoint(cx, cy, radius, float64(i)/12, 1.0)
			canvas.Set(x, y, mark)
		}
	}
	a.drawNumerals(canvas, cx, cy, radius)

	hour := float64(a.now.Hour()%12)/12 + float64(a.now.Minute())/(60*12)
	minute := float64(a.now.Minute())/60 + float64(a.now.Second())/3600
	if a.seconds {
		a.drawHand(canvas, cx, cy, radius, float64(a.now.Second())/60, secondHandLen, '·')
	}
	a.drawHand(canvas, cx, cy, radius, minute, minuteHandLen, '▒')
	a.drawHand(canvas, cx, cy, radius, hour, hourHandLen, '█')
	canvas.Set(cx, cy, '●')

	return lipgloss.NewStyle().Foreground(th.Accent).Render(canvas.String())
}

func (a *analog) drawHand(c *render.Canvas, cx, cy, radius int, frac, length float64, r rune) {
	x, y := dialPoint(cx, cy, radius, frac, length)
	c.Line(cx, cy, x, y, r)
}

func (a *analog) drawNumerals(c *render.Canvas, cx, cy, radius int) {
	if a.numerals == "none" || a.numerals == "" {
		return
	}
	step := 3
	if a.numerals == "all" {
		step = 1
	}
	for i := 0; i < 12; i += step {
		label := strconv.Itoa(i)
		if i == 0 {
			label = "12"
		}
		x, y := dialPoint(cx, cy, radius, float64(i)/12, 0.8)
		// center multi-rune labels on the dial point
		x -= (len(label) - 1) / 2
		for j, r := range label {
			c.Set(x+j, y, r)
		}
	}
}

// dialPoint maps a dial fraction (0 = 12 o'clock, clockwise) to canvas
// coordinates at the given fraction of the radius.
func dialPoint(cx, cy, radius int, frac, length float64) (int, int) {
	angle := frac * 2 * math.Pi
	x := cx + int(math.Round(math.Sin(angle)*float64(radius)*length*render.CellAspect))
	y := cy - int(math.Round(math.Cos(angle)*float64(radius)*length))
	return x, y
}

// viewSmall degrades to a text clock when the dial cannot fit.
func (a *analog) viewSmall(width int, th theme.Theme) string {
	style := lipgloss.NewStyle().Foreground(th.Accent).Bold(true)
	text := a.now.Format("15:04")
	if a.seconds {
		text = a.now.Format("15:04:05")
	}
	return style.Render(ansi.Truncate(text, width, ""))
}
