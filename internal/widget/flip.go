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

func flipSchema() schema.Schema {
	return schema.Schema{
		labelField(),
		timezoneField(),
		hourCycleField(),
		secondsField("false"),
	}
}

// flipDuration is how long the mid-flip frame stays up before the
// follow-up tick repaints the settled card.
const flipDuration = 150 * time.Millisecond

// flipRows is the glyph height: three rows per card half.
const flipRows = 6

// flipGlyphs are six-row digits split across the card hinge. Each half
// must be recognizable on its own, because a mid-flip frame pairs the
// new top half with the old bottom half.
var flipGlyphs = map[rune][flipRows]string{
	'0': {"███", "█ █", "█ █", "█ █", "█ █", "███"},
	'1': {" █ ", "██ ", " █ ", " █ ", " █ ", "███"},
	'2': {"███", "  █", "███", "█  ", "█  ", "███"},
	'3': {"███", "  █", "███", "  █", "  █", "███"},
	'4': {"█ █", "█ █", "███", "  █", "  █", "  █"},
	'5': {"███", "█  ", "███", "  █", "  █", "███"},
	'6': {"███", "█  ", "███", "█ █", "█ █", "███"},
	'7': {"███", "  █", "  █", " █ ", " █ ", " █ "},
	'8': {"███", "█ █", "███", "█ █", "█ █", "███"},
	'9': {"███", "█ █", "███", "  █", "  █", "███"},
}

// card is one split-flap cell. Between a digit change and the
// follow-up tick it shows the new top half over the old bottom half.
type card struct {
	r         rune
	prev      rune
	flipUntil time.Time
}

func (c card) flipping(now time.Time) bool {
	return c.prev != 0 && now.Before(c.flipUntil)
}

// flip is the split-flap clock. The digit layout is fixed-width
// (padded hour), so cards keep their positions across ticks and only
// changed cells animate.
type flip struct {
	values schema.Values
	ctx    Context

	loc     *time.Location
	twelve  bool
	seconds bool
	spec    datefmt.Spec

	cards  []card
	now    time.Time
	period string
}

func newFlip(v schema.Values, ctx Context) *flip {
	f := &flip{
		values:  v,
		ctx:     ctx,
		loc:     ctx.zone(v),
		twelve:  ctx.twelveHour(v),
		seconds: v.Bool("seconds"),
	}
	// Padded hour keeps the card count stable through the day.
	f.spec = datefmt.TimeSpec(nil, f.seconds, false, true)
	f.spec.TwelveHour = f.twelve
	return f
}

func (f *flip) Kind() Kind            { return KindFlip }
func (f *flip) Title() string         { return titleOf(f.values, KindFlip) }
func (f *flip) Schema() schema.Schema { return flipSchema() }

func (f *flip) Granularity() time.Duration {
	if f.seconds {
		return time.Second
	}
	return time.Minute
}

func (f *flip) Advance(now time.Time) {
	local := now.In(f.loc)
	text := datefmt.Format(local, f.ctx.locale(), f.spec)
	runes := []rune(text)

	if len(runes) != len(f.cards) {
		f.cards = make([]card, len(runes))
		for i, r := range runes {
			f.cards[i] = card{r: r}
		}
	} else {
		for i, r := range runes {
			if f.cards[i].r != r {
				f.cards[i].prev = f.cards[i].r
				f.cards[i].flipUntil = now.Add(flipDuration)
			}
			f.cards[i].r = r
		}
	}

	f.now = now
	f.period = ""
	if f.twelve {
		f.period = f.ctx.locale().DayPeriod(local.Hour())
	}
}

// FollowUp requests the short tick that retires mid-flip frames.
func (f *flip) FollowUp() (time.Duration, bool) {
	for _, c := range f.cards {
		if c.flipping(f.now) {
			return flipDuration, true
		}
	}
	return 0, false
}

// cardHeight is a full card: border, top half, hinge, bottom half,
// border.
const cardHeight = flipRows + 3

func (f *flip) View(width, height int, th theme.Theme) string {
	if len(f.cards) == 0 {
		return ""
	}
	border := lipgloss.NewStyle().Foreground(th.Border)
	face := lipgloss.NewStyle().Foreground(th.Accent).Bold(true)
	fading := lipgloss.NewStyle().Foreground(th.Muted)
	mutedCap := lipgloss.NewStyle().Foreground(th.Muted)

	columns := make([][]string, 0, len(f.cards))
	for _, c := range f.cards {
		if c.r == ':' {
			columns = append(columns, colonColumn(face))
			continue
		}
		columns = append(columns, f.renderCard(c, border, face, fading))
	}

	rows := make([]string, cardHeight)
	for i := 0; i < cardHeight; i++ {
		parts := make([]string, len(columns))
		for j, col := range columns {
			parts[j] = col[i]
		}
		rows[i] = strings.Join(parts, " ")
	}

	needH := cardHeight
	if f.period != "" {
		needH += 2
	}
	if height < needH || width < ansi.StringWidth(rows[0]) {
		return f.viewSmall(width, th)
	}
	if f.period != "" {
		rows = append(rows, "", mutedCap.Render(f.period))
	}
	return strings.Join(rows, "\n")
}

// renderCard draws one card's nine rows. Mid-flip the bottom half
// still shows the previous digit, dimmed, as if it had not fallen yet.
func (f *flip) renderCard(c card, border, face, fading lipgloss.Style) []string {
	top, bottom := c.r, c.r
	bottomStyle := face
	if c.flipping(f.now) {
		bottom = c.prev
		bottomStyle = fading
	}
	topGlyph, ok := flipGlyphs[top]
	if !ok {
		topGlyph = flipGlyphs['0']
	}
	bottomGlyph, ok := flipGlyphs[bottom]
	if !ok {
		bottomGlyph = flipGlyphs['0']
	}

	out := make([]string, 0, cardHeight)
	out = append(out, border.Render("╭───╮"))
	for i := 0; i < flipRows/2; i++ {
		out = append(out, border.Render("│")+face.Render(topGlyph[i])+border.Render("│"))
	}
	out = append(out, border.Render("├───┤"))
	for i := flipRows / 2; i < flipRows; i++ {
		out = append(out, border.Render("│")+bottomStyle.Render(bottomGlyph[i])+border.Render("│"))
	}
	out = append(out, border.Render("╰───╯"))
	return out
}

// colonColumn is the unframed dot pair between card groups.
func colonColumn(face lipgloss.Style) []string {
	col := make([]string, cardHeight)
	for i := range col {
		col[i] = " "
	}
	col[3] = face.Render("█")
	col[5] = face.Render("█")
	return col
}

// viewSmall falls back to plain text when the pane cannot fit cards.
func (f *flip) viewSmall(width int, th theme.Theme) string {
	style := lipgloss.NewStyle().Foreground(th.Accent).Bold(true)
	var b strings.Builder
	for _, c := range f.cards {
		b.WriteRune(c.r)
	}
	text := b.String()
	if f.period != "" {
		if f.ctx.locale().PeriodFirst {
			text = f.period + " " + text
		} else {
			text = text + " " + f.period
		}
	}
	return style.Render(ansi.Truncate(text, width, ""))
}
