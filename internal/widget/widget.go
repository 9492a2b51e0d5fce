// Package widget implements the clocks a dashboard hosts: digital,
// flip, analog, and datetext. A widget renders purely from its stored
// options plus the shared user context; the host drives it with
// Advance on each tick and View on each frame, so re-rendering without
// an intervening Advance always yields the identical string.
package widget

import (
	"strings"
	"time"

	"github.com/jask/clockboard/internal/locale"
	"github.com/jask/clockboard/internal/schema"
	"github.com/jask/clockboard/internal/theme"
	"github.com/jask/clockboard/internal/timezones"
)

// Kind identifies a widget implementation. Kinds are stored with the
// instance row, so the strings are part of the storage format.
type Kind string

const (
	KindDigital  Kind = "digital"
	KindFlip     Kind = "flip"
	KindAnalog   Kind = "analog"
	KindDatetext Kind = "datetext"
)

// Context is what every widget shares beyond its own options: the
// resolved locale, the dashboard's default timezone, and the app-level
// hour cycle ("auto", "12" or "24").
type Context struct {
	Locale    *locale.Locale
	Location  *time.Location
	HourCycle string
}

func (c Context) locale() *locale.Locale {
	if c.Locale != nil {
		return c.Locale
	}
	return locale.Default()
}

func (c Context) location() *time.Location {
	if c.Location != nil {
		return c.Location
	}
	return time.Local
}

// zone resolves the instance's timezone option against the context.
// A bad or missing id falls back to the dashboard default.
func (c Context) zone(v schema.Values) *time.Location {
	if id := strings.TrimSpace(v["timezone"]); id != "" {
		if loc, err := timezones.Load(id); err == nil {
			return loc
		}
	}
	return c.location()
}

// twelveHour resolves the hour cycle: instance option beats app
// setting beats the locale default.
func (c Context) twelveHour(v schema.Values) bool {
	switch v["hour_cycle"] {
	case "12":
		return true
	case "24":
		return false
	}
	switch c.HourCycle {
	case "12":
		return true
	case "24":
		return false
	}
	return c.locale().TwelveHour
}

// Widget is one live clock on the grid.
type Widget interface {
	Kind() Kind
	// Title is the pane caption: the instance label, or the kind's
	// display name when unlabeled.
	Title() string
	Schema() schema.Schema
	// Granularity is the tick interval the host aligns timers to:
	// time.Second or time.Minute.
	Granularity() time.Duration
	// Advance recomputes the widget's formatted parts for now.
	Advance(now time.Time)
	// View renders the current parts into a block no wider than width
	// and no taller than height.
	View(width, height int, th theme.Theme) string
}

// FollowUp is implemented by widgets that want one extra repaint
// shortly after a boundary tick. The flip clock uses it to clear its
// mid-flip frame.
type FollowUp interface {
	// FollowUp reports how long after the last Advance the extra tick
	// should fire, and whether one is wanted at all.
	FollowUp() (time.Duration, bool)
}

type builder struct {
	title  string
	schema func() schema.Schema
	build  func(values schema.Values, ctx Context) Widget
}

var registry = map[Kind]builder{
	KindDigital: {
		title:  "Digital clock",
		schema: digitalSchema,
		build: func(v schema.Values, ctx Context) Widget {
			return newDigital(v, ctx)
		},
	},
	KindFlip: {
		title:  "Flip clock",
		schema: flipSchema,
		build: func(v schema.Values, ctx Context) Widget {
			return newFlip(v, ctx)
		},
	},
	KindAnalog: {
		title:  "Analog clock",
		schema: analogSchema,
		build: func(v schema.Values, ctx Context) Widget {
			return newAnalog(v, ctx)
		},
	},
	KindDatetext: {
		title:  "Date text",
		schema: datetextSchema,
		build: func(v schema.Values, ctx Context) Widget {
			return newDatetext(v, ctx)
		},
	},
}

// Kinds lists the widget kinds in picker display order.
func Kinds() []Kind {
	return []Kind{KindDigital, KindFlip, KindAnalog, KindDatetext}
}

// KindTitle is the display name for a kind; empty for unknown kinds.
func KindTitle(k Kind) string {
	return registry[k].title
}

// SchemaFor returns the option schema for a kind.
func SchemaFor(k Kind) (schema.Schema, bool) {
	b, ok := registry[k]
	if !ok {
		return nil, false
	}
	return b.schema(), true
}

// New builds a widget of the given kind. Missing options are filled
// from the schema defaults; unknown kinds report false.
func New(k Kind, values schema.Values, ctx Context) (Widget, bool) {
	b, ok := registry[k]
	if !ok {
		return nil, false
	}
	return b.build(b.schema().ApplyDefaults(values), ctx), true
}

// titleOf picks the pane caption for a widget instance.
func titleOf(v schema.Values, kind Kind) string {
	if label := strings.TrimSpace(v["label"]); label != "" {
		return label
	}
	return KindTitle(kind)
}

// Fields shared by several widget schemas.

func labelField() schema.Field {
	return schema.Field{Key: "label", Label: "Label", Kind: schema.KindText}
}

func timezoneField() schema.Field {
	return schema.Field{Key: "timezone", Label: "Timezone", Kind: schema.KindTimezone}
}

func hourCycleField() schema.Field {
	return schema.Field{
		Key:   "hour_cycle",
		Label: "Hour cycle",
		Kind:  schema.KindSelect,
		Options: []schema.Option{
			{Value: "auto", Label: "Locale default"},
			{Value: "12", Label: "12-hour"},
			{Value: "24", Label: "24-hour"},
		},
		Default: "auto",
	}
}

func secondsField(def string) schema.Field {
	return schema.Field{Key: "seconds", Label: "Show seconds", Kind: schema.KindToggle, Default: def}
}
