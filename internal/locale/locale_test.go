package locale

import (
	"testing"
	"time"
)

func TestResolveFallsBackToEnglish(t *testing.T) {
	for _, tag := range []string{"", "   ", "!!not-a-tag!!", "xx", "zz-ZZ"} {
		if got := Resolve(tag); got != English {
			t.Fatalf("Resolve(%q) = %s, want en", tag, got.Tag)
		}
	}
}

func TestResolveMatchesRegionalVariants(t *testing.T) {
	cases := []struct {
		tag  string
		want string
	}{
		{"en", "en"},
		{"en-US", "en"},
		{"en-GB", "en-GB"},
		{"de-AT", "de"},
		{"fr-CA", "fr"},
		{"pt-BR", "pt"},
		{"zh-CN", "zh"},
		{"ja-JP", "ja"},
	}
	for _, c := range cases {
		if got := Resolve(c.tag); got.Tag != c.want {
			t.Fatalf("Resolve(%q) = %s, want %s", c.tag, got.Tag, c.want)
		}
	}
}

func TestDayPeriodBoundaries(t *testing.T) {
	if English.DayPeriod(0) != "AM" || English.DayPeriod(11) != "AM" {
		t.Fatalf("morning hours should be AM")
	}
	if English.DayPeriod(12) != "PM" || English.DayPeriod(23) != "PM" {
		t.Fatalf("afternoon hours should be PM")
	}
	if Japanese.DayPeriod(3) != "午前" {
		t.Fatalf("ja morning = %q", Japanese.DayPeriod(3))
	}
}

func TestHourCycles(t *testing.T) {
	for _, loc := range []*Locale{English, BritishEnglish, Korean, Chinese} {
		if !loc.TwelveHour {
			t.Fatalf("%s should default to a 12-hour cycle", loc.Tag)
		}
	}
	for _, loc := range []*Locale{German, French, Japanese} {
		if loc.TwelveHour {
			t.Fatalf("%s should default to a 24-hour cycle", loc.Tag)
		}
	}
	for _, loc := range []*Locale{Japanese, Korean, Chinese} {
		if !loc.PeriodFirst {
			t.Fatalf("%s writes the day period before the time", loc.Tag)
		}
	}
	if English.PeriodFirst {
		t.Fatalf("en writes the day period after the time")
	}
}

func TestUnitNameFallsBackToEnglish(t *testing.T) {
	if got := German.UnitName("hour"); got != "Stunde" {
		t.Fatalf("de hour = %q", got)
	}
	if got := German.UnitName("bogus"); got != "bogus" {
		t.Fatalf("unknown unit id should echo, got %q", got)
	}
}

func TestCalendarAccessors(t *testing.T) {
	if got := English.MonthLong(time.August); got != "August" {
		t.Fatalf("MonthLong(August) = %q", got)
	}
	if got := German.WeekdayShort(time.Sunday); got != "So" {
		t.Fatalf("de WeekdayShort(Sunday) = %q", got)
	}
	if got := Korean.MonthShort(time.January); got != "1월" {
		t.Fatalf("ko MonthShort(January) = %q", got)
	}
}

func TestTablesAreComplete(t *testing.T) {
	unitIDs := []string{"year", "month", "day", "weekday", "hour", "minute", "second", "dayperiod"}
	for _, tag := range Supported() {
		loc := registry[tag]
		if loc == nil {
			t.Fatalf("no table registered for %s", tag)
		}
		if loc.Tag != tag {
			t.Fatalf("table %s registered under %s", loc.Tag, tag)
		}
		for i, m := range loc.MonthsLong {
			if m == "" || loc.MonthsShort[i] == "" {
				t.Fatalf("%s: month %d missing", tag, i+1)
			}
		}
		for i, d := range loc.DaysLong {
			if d == "" || loc.DaysShort[i] == "" {
				t.Fatalf("%s: weekday %d missing", tag, i)
			}
		}
		if loc.AM == "" || loc.PM == "" {
			t.Fatalf("%s: day period labels missing", tag)
		}
		for _, id := range unitIDs {
			if loc.Units[id] == "" {
				t.Fatalf("%s: unit name %s missing", tag, id)
			}
		}
	}
}
