package datefmt

import (
	"reflect"
	"strconv"
	"testing"
	"time"

	"github.com/jask/clockboard/internal/locale"
)

var tuesday = time.Date(2026, time.August, 25, 9, 5, 7, 0, time.UTC)

func TestOrdinalSuffixRule(t *testing.T) {
	spec := Spec{Items: []Item{Part(UnitDay, StyleOrdinal)}}
	for day := 1; day <= 31; day++ {
		instant := time.Date(2026, time.January, day, 0, 0, 0, 0, time.UTC)
		got := Format(instant, locale.English, spec)
		want := ordinalWant(day)
		if got != want {
			t.Fatalf("day %d: got %q, want %q", day, got, want)
		}
	}
}

// ordinalWant applies the English rule independently: 11-13 take th,
// everything else goes by last digit.
func ordinalWant(n int) string {
	suffix := "th"
	if n%100 < 11 || n%100 > 13 {
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(n) + suffix
}

func TestPresetGoldenEnglish(t *testing.T) {
	cases := []struct {
		id   PresetID
		want string
	}{
		{PresetFull, "Tuesday, August 25, 2026"},
		{PresetLong, "August 25, 2026"},
		{PresetMedium, "Aug 25, 2026"},
		{PresetShort, "8/25/2026"},
		{PresetISO, "2026-08-25"},
		{PresetWeekday, "Tuesday"},
		{PresetMonthDay, "August 25"},
	}
	for _, c := range cases {
		spec, ok := Preset(c.id, locale.English)
		if !ok {
			t.Fatalf("preset %s unknown", c.id)
		}
		if got := Format(tuesday, locale.English, spec); got != c.want {
			t.Fatalf("preset %s: got %q, want %q", c.id, got, c.want)
		}
	}
}

func TestPresetFollowsLocaleOrder(t *testing.T) {
	cases := []struct {
		loc  *locale.Locale
		id   PresetID
		want string
	}{
		{locale.BritishEnglish, PresetLong, "25 August 2026"},
		{locale.German, PresetShort, "25.8.2026"},
		{locale.German, PresetFull, "Dienstag, 25 August 2026"},
		{locale.French, PresetLong, "25 août 2026"},
		{locale.Japanese, PresetLong, "2026年8月25日"},
		{locale.Japanese, PresetFull, "2026年8月25日火曜日"},
		{locale.Korean, PresetMedium, "2026년 8월 25일"},
		{locale.Chinese, PresetShort, "2026/8/25"},
	}
	for _, c := range cases {
		spec, ok := Preset(c.id, c.loc)
		if !ok {
			t.Fatalf("preset %s unknown", c.id)
		}
		if got := Format(tuesday, c.loc, spec); got != c.want {
			t.Fatalf("%s/%s: got %q, want %q", c.loc.Tag, c.id, got, c.want)
		}
	}
}

func TestPresetsAreDeterministic(t *testing.T) {
	for _, id := range Presets() {
		for _, tag := range locale.Supported() {
			loc := locale.Resolve(tag)
			spec, ok := Preset(id, loc)
			if !ok {
				t.Fatalf("preset %s unknown", id)
			}
			first := Format(tuesday, loc, spec)
			if first == "" {
				t.Fatalf("%s/%s produced empty output", tag, id)
			}
			if again := Format(tuesday, loc, spec); again != first {
				t.Fatalf("%s/%s unstable: %q then %q", tag, id, first, again)
			}
		}
	}
}

func TestCustomFollowsLocaleOrder(t *testing.T) {
	choices := []Choice{
		{Unit: UnitWeekday, Style: StyleShort},
		{Unit: UnitDay, Style: StyleNumeric},
		{Unit: UnitMonth, Style: StyleShort},
		{Unit: UnitYear, Style: StyleNumeric},
	}
	cases := []struct {
		loc  *locale.Locale
		want string
	}{
		{locale.English, "Tue Aug 25 2026"},
		{locale.BritishEnglish, "Tue 25 Aug 2026"},
		{locale.Japanese, "火 2026 8月 25"},
	}
	for _, c := range cases {
		spec := Custom(choices, " ", c.loc)
		if got := Format(tuesday, c.loc, spec); got != c.want {
			t.Fatalf("%s: got %q, want %q", c.loc.Tag, got, c.want)
		}
	}
}

func TestCustomOmitsUnchosenUnits(t *testing.T) {
	spec := Custom([]Choice{
		{Unit: UnitMonth, Style: StyleLong},
		{Unit: UnitDay, Style: StyleOrdinal},
	}, " ", locale.English)
	if got := Format(tuesday, locale.English, spec); got != "August 25th" {
		t.Fatalf("got %q", got)
	}
}

func TestTwoDigitPadding(t *testing.T) {
	instant := time.Date(2026, time.February, 3, 4, 5, 6, 0, time.UTC)
	cases := []struct {
		item Item
		want string
	}{
		{Part(UnitMonth, StyleTwoDigit), "02"},
		{Part(UnitMonth, StyleNumeric), "2"},
		{Part(UnitDay, StyleTwoDigit), "03"},
		{Part(UnitDay, StyleNumeric), "3"},
		{Part(UnitHour, StyleTwoDigit), "04"},
		{Part(UnitMinute, StyleTwoDigit), "05"},
		{Part(UnitSecond, StyleTwoDigit), "06"},
		{Part(UnitYear, StyleTwoDigit), "26"},
	}
	for _, c := range cases {
		got := Format(instant, locale.English, Spec{Items: []Item{c.item}})
		if got != c.want {
			t.Fatalf("%s/%d: got %q, want %q", c.item.Unit, c.item.Style, got, c.want)
		}
	}
}

func TestTwelveHourMapping(t *testing.T) {
	spec := TimeSpec(locale.English, false, true, false)
	cases := []struct {
		hour int
		want string
	}{
		{0, "12:00 AM"},
		{1, "1:00 AM"},
		{11, "11:00 AM"},
		{12, "12:00 PM"},
		{13, "1:00 PM"},
		{23, "11:00 PM"},
	}
	for _, c := range cases {
		instant := time.Date(2026, time.August, 25, c.hour, 0, 0, 0, time.UTC)
		if got := Format(instant, locale.English, spec); got != c.want {
			t.Fatalf("hour %d: got %q, want %q", c.hour, got, c.want)
		}
	}
}

func TestDayPeriodLeadsInEastAsianLocales(t *testing.T) {
	cases := []struct {
		loc  *locale.Locale
		want string
	}{
		{locale.Japanese, "午前9:05"},
		{locale.Korean, "오전 9:05"},
		{locale.Chinese, "上午9:05"},
	}
	for _, c := range cases {
		spec := TimeSpec(c.loc, false, true, false)
		if got := Format(tuesday, c.loc, spec); got != c.want {
			t.Fatalf("%s: got %q, want %q", c.loc.Tag, got, c.want)
		}
	}
}

func TestTwentyFourHourPadding(t *testing.T) {
	spec := TimeSpec(locale.English, true, false, true)
	instant := time.Date(2026, time.August, 25, 5, 4, 3, 0, time.UTC)
	if got := Format(instant, locale.English, spec); got != "05:04:03" {
		t.Fatalf("got %q", got)
	}
}

func TestComposeIsPure(t *testing.T) {
	spec, _ := Preset(PresetFull, locale.German)
	first := Compose(tuesday, locale.German, spec)
	second := Compose(tuesday, locale.German, spec)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("identical inputs produced different tokens")
	}
}

func TestComposeUsesWallClock(t *testing.T) {
	spec := TimeSpec(locale.English, false, false, true)
	utc := time.Date(2026, time.August, 25, 23, 30, 0, 0, time.UTC)
	tokyo := utc.In(time.FixedZone("JST", 9*3600))
	if got := Format(utc, locale.English, spec); got != "23:30" {
		t.Fatalf("utc: got %q", got)
	}
	if got := Format(tokyo, locale.English, spec); got != "08:30" {
		t.Fatalf("tokyo: got %q", got)
	}
}

func TestSeparatorTokensAreMarked(t *testing.T) {
	spec, _ := Preset(PresetISO, locale.English)
	tokens := Compose(tuesday, locale.English, spec)
	if len(tokens) != 5 {
		t.Fatalf("expected 5 tokens, got %d", len(tokens))
	}
	for i, tok := range tokens {
		wantSep := i%2 == 1
		if tok.Sep != wantSep {
			t.Fatalf("token %d: sep = %v, want %v", i, tok.Sep, wantSep)
		}
	}
}

func TestUnknownPresetRejected(t *testing.T) {
	if _, ok := Preset("bogus", locale.English); ok {
		t.Fatalf("unknown preset should not resolve")
	}
}

func TestNilLocaleComposesEnglish(t *testing.T) {
	spec, _ := Preset(PresetLong, nil)
	if got := Format(tuesday, nil, spec); got != "August 25, 2026" {
		t.Fatalf("got %q", got)
	}
}
