package widget

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/jask/clockboard/internal/locale"
	"github.com/jask/clockboard/internal/render"
	"github.com/jask/clockboard/internal/schema"
	"github.com/jask/clockboard/internal/theme"
)

var tuesday = time.Date(2026, time.August, 25, 9, 5, 7, 0, time.UTC)

func utcContext(hourCycle string) Context {
	return Context{Locale: locale.English, Location: time.UTC, HourCycle: hourCycle}
}

func stripped(view string) []string {
	lines := strings.Split(view, "\n")
	for i, line := range lines {
		lines[i] = ansi.Strip(line)
	}
	return lines
}

func TestNewFillsDefaults(t *testing.T) {
	w, ok := New(KindDigital, nil, utcContext(""))
	if !ok {
		t.Fatal("digital should build")
	}
	if w.Granularity() != time.Second {
		t.Fatalf("seconds default on; granularity = %v", w.Granularity())
	}
	if w.Title() != "Digital clock" {
		t.Fatalf("unlabeled title = %q", w.Title())
	}
}

func TestUnknownKindRejected(t *testing.T) {
	if _, ok := New(Kind("sundial"), nil, utcContext("")); ok {
		t.Fatal("unknown kind should not build")
	}
}

func TestKindsAllBuild(t *testing.T) {
	for _, k := range Kinds() {
		if _, ok := SchemaFor(k); !ok {
			t.Fatalf("%s: no schema", k)
		}
		w, ok := New(k, nil, utcContext(""))
		if !ok {
			t.Fatalf("%s: did not build", k)
		}
		if w.Kind() != k {
			t.Fatalf("%s: Kind() = %s", k, w.Kind())
		}
		g := w.Granularity()
		if g != time.Second && g != time.Minute {
			t.Fatalf("%s: granularity %v", k, g)
		}
	}
}

func TestViewIsIdempotent(t *testing.T) {
	th := theme.Default()
	for _, k := range Kinds() {
		w, _ := New(k, nil, utcContext(""))
		w.Advance(tuesday)
		first := w.View(48, 14, th)
		if second := w.View(48, 14, th); second != first {
			t.Fatalf("%s: repeated View differs", k)
		}
		w.Advance(tuesday)
		if third := w.View(48, 14, th); third != first {
			t.Fatalf("%s: re-Advance at same instant changed the view", k)
		}
	}
}

func TestDigitalRendersBigDigits(t *testing.T) {
	w, _ := New(KindDigital, schema.Values{"seconds": "false", "hour_cycle": "24"}, utcContext(""))
	w.Advance(tuesday)
	lines := stripped(w.View(60, 12, theme.Default()))
	want := render.BigTextLines("9:05")
	if len(lines) < render.GlyphRows {
		t.Fatalf("only %d lines", len(lines))
	}
	for i := 0; i < render.GlyphRows; i++ {
		if lines[i] != want[i] {
			t.Fatalf("row %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestDigitalTwelveHourCaption(t *testing.T) {
	w, _ := New(KindDigital, schema.Values{"seconds": "false"}, utcContext(""))
	w.Advance(time.Date(2026, time.August, 25, 13, 0, 0, 0, time.UTC))
	view := ansi.Strip(w.View(60, 12, theme.Default()))
	if !strings.Contains(view, "PM") {
		t.Fatalf("12-hour view missing day period:\n%s", view)
	}
	if small := ansi.Strip(w.View(12, 1, theme.Default())); small != "1:00 PM" {
		t.Fatalf("hour 13 should wrap to 1 on the 12-hour dial, got %q", small)
	}
}

func TestDigitalBlinkTogglesColon(t *testing.T) {
	w, _ := New(KindDigital, schema.Values{"blink": "true", "hour_cycle": "24"}, utcContext(""))
	if w.Granularity() != time.Second {
		t.Fatal("blinking clock needs second ticks")
	}
	w.Advance(time.Date(2026, time.August, 25, 9, 5, 0, 0, time.UTC))
	even := w.View(60, 12, theme.Default())
	w.Advance(time.Date(2026, time.August, 25, 9, 5, 1, 0, time.UTC))
	odd := w.View(60, 12, theme.Default())
	if even == odd {
		t.Fatal("blink frames should differ")
	}
	if ansi.Strip(odd) == ansi.Strip(even) {
		t.Fatal("blink must change the glyph content, not just styling")
	}
}

func TestDigitalSmallPaneFallsBackToText(t *testing.T) {
	w, _ := New(KindDigital, schema.Values{"seconds": "false"}, utcContext(""))
	w.Advance(tuesday)
	view := ansi.Strip(w.View(12, 2, theme.Default()))
	if view != "9:05 AM" {
		t.Fatalf("small view = %q", view)
	}
}

func TestDigitalDateLine(t *testing.T) {
	w, _ := New(KindDigital, schema.Values{"date": "long", "hour_cycle": "24", "seconds": "false"}, utcContext(""))
	w.Advance(tuesday)
	view := ansi.Strip(w.View(60, 12, theme.Default()))
	if !strings.Contains(view, "August 25, 2026") {
		t.Fatalf("missing date caption:\n%s", view)
	}
}

func TestDigitalTimezoneOverride(t *testing.T) {
	w, _ := New(KindDigital, schema.Values{
		"timezone": "Asia/Tokyo", "hour_cycle": "24", "seconds": "false",
	}, utcContext(""))
	w.Advance(time.Date(2026, time.August, 25, 0, 30, 0, 0, time.UTC))
	view := ansi.Strip(w.View(12, 1, theme.Default()))
	if view != "9:30" {
		t.Fatalf("tokyo view = %q", view)
	}
}

func TestFlipCardGeometry(t *testing.T) {
	w, _ := New(KindFlip, schema.Values{"hour_cycle": "24"}, utcContext(""))
	w.Advance(tuesday)
	lines := stripped(w.View(80, 20, theme.Default()))
	if len(lines) != cardHeight {
		t.Fatalf("flip rows = %d, want %d", len(lines), cardHeight)
	}
	if !strings.Contains(lines[0], "╭───╮") {
		t.Fatalf("missing card top: %q", lines[0])
	}
	if !strings.Contains(lines[4], "├───┤") {
		t.Fatalf("missing hinge: %q", lines[4])
	}
}

func TestFlipGlyphsDistinguishable(t *testing.T) {
	seen := make(map[string]rune, 10)
	for r, g := range flipGlyphs {
		top := strings.Join(g[:flipRows/2], "|")
		full := strings.Join(g[:], "|")
		if prev, dup := seen[full]; dup {
			t.Fatalf("digits %c and %c share a glyph", prev, r)
		}
		seen[full] = r
		if g[0] == "" || top == "" {
			t.Fatalf("digit %c has empty rows", r)
		}
		for _, row := range g {
			if len([]rune(row)) != 3 {
				t.Fatalf("digit %c row %q is not 3 wide", r, row)
			}
		}
	}
	// 0 and 8 split at the hinge must not collapse into each other.
	if flipGlyphs['0'][2] == flipGlyphs['8'][2] {
		t.Fatal("0 and 8 top halves are identical at the hinge")
	}
}

func TestFlipAnimatesThenSettles(t *testing.T) {
	th := theme.Default()
	values := schema.Values{"hour_cycle": "24", "seconds": "true"}
	w, _ := New(KindFlip, values, utcContext(""))
	f := w.(*flip)

	t0 := time.Date(2026, time.August, 25, 9, 5, 0, 0, time.UTC)
	w.Advance(t0)
	if _, want := f.FollowUp(); want {
		t.Fatal("initial frame should not animate")
	}

	w.Advance(t0.Add(time.Second))
	delay, want := f.FollowUp()
	if !want {
		t.Fatal("digit change should request a follow-up tick")
	}
	if delay != flipDuration {
		t.Fatalf("follow-up delay = %v", delay)
	}
	mid := w.View(80, 20, th)

	w.Advance(t0.Add(time.Second + flipDuration))
	if _, still := f.FollowUp(); still {
		t.Fatal("flip should settle after the follow-up tick")
	}
	settled := w.View(80, 20, th)
	if mid == settled {
		t.Fatal("mid-flip frame should differ from the settled frame")
	}

	// The settled frame matches a widget that never animated.
	fresh, _ := New(KindFlip, values, utcContext(""))
	fresh.Advance(t0.Add(time.Second + flipDuration))
	if settled != fresh.View(80, 20, th) {
		t.Fatal("settled frame should equal a fresh render of the same instant")
	}
}

func TestAnalogDrawsDial(t *testing.T) {
	w, _ := New(KindAnalog, schema.Values{"seconds": "false", "numerals": "none", "ticks": "false"}, utcContext(""))
	w.Advance(time.Date(2026, time.August, 25, 3, 0, 0, 0, time.UTC))
	lines := stripped(w.View(41, 21, theme.Default()))
	if len(lines) != 21 {
		t.Fatalf("canvas height = %d", len(lines))
	}
	center := lines[10]
	if len([]rune(center)) < 21 || []rune(center)[20] != '●' {
		t.Fatalf("missing hub at center: %q", center)
	}
	if !strings.Contains(center[len("●")+20:], "█") {
		t.Fatalf("3 o'clock hour hand should extend right: %q", center)
	}
}

func TestAnalogNumerals(t *testing.T) {
	w, _ := New(KindAnalog, schema.Values{"seconds": "false", "numerals": "quarter"}, utcContext(""))
	w.Advance(tuesday)
	view := ansi.Strip(w.View(41, 21, theme.Default()))
	for _, numeral := range []string{"12", "3", "6", "9"} {
		if !strings.Contains(view, numeral) {
			t.Fatalf("missing numeral %s:\n%s", numeral, view)
		}
	}
}

func TestAnalogTinyPaneFallsBack(t *testing.T) {
	w, _ := New(KindAnalog, nil, utcContext(""))
	w.Advance(tuesday)
	view := ansi.Strip(w.View(9, 3, theme.Default()))
	if view != "9:05:07" {
		t.Fatalf("tiny analog = %q", view)
	}
}

func TestDatetextPreset(t *testing.T) {
	w, _ := New(KindDatetext, schema.Values{"preset": "full"}, utcContext(""))
	w.Advance(tuesday)
	view := ansi.Strip(w.View(60, 3, theme.Default()))
	if view != "Tuesday, August 25, 2026" {
		t.Fatalf("preset full = %q", view)
	}
}

func TestDatetextCustomNewlines(t *testing.T) {
	w, _ := New(KindDatetext, schema.Values{
		"mode": "custom", "weekday": "long", "day": "ordinal",
		"month": "long", "year": "none", "time": "none", "separator": "newline",
	}, utcContext(""))
	w.Advance(tuesday)
	lines := stripped(w.View(30, 5, theme.Default()))
	want := []string{"Tuesday", "August", "25th"}
	if len(lines) != len(want) {
		t.Fatalf("lines = %q", lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestDatetextTimeRaisesGranularity(t *testing.T) {
	w, _ := New(KindDatetext, schema.Values{"mode": "custom", "time": "hms"}, utcContext("24"))
	if w.Granularity() != time.Second {
		t.Fatalf("hms should tick per second, got %v", w.Granularity())
	}
	w.Advance(tuesday)
	if view := ansi.Strip(w.View(80, 2, theme.Default())); !strings.Contains(view, "9:05:07") {
		t.Fatalf("missing time part: %q", view)
	}
}

func TestContextFallbacks(t *testing.T) {
	var ctx Context
	if ctx.locale() == nil {
		t.Fatal("nil context locale")
	}
	if ctx.location() == nil {
		t.Fatal("nil context location")
	}
	if ctx.zone(schema.Values{"timezone": "Not/AZone"}) != ctx.location() {
		t.Fatal("bad timezone should fall back to the context zone")
	}
}
