// Package locale carries the display tables behind every clock face:
// month and weekday names, day-period labels, date ordering, and the
// localized names of date units. Lookups never fail; unknown or
// malformed tags resolve to English.
package locale

import (
	"strings"
	"time"

	"golang.org/x/text/language"
)

// Order is the positional order of units in a numeric date.
type Order int

const (
	OrderMDY Order = iota
	OrderDMY
	OrderYMD
)

// DateMarks describes locales that mark date units with suffix
// characters (年月日) instead of arranging month names.
type DateMarks struct {
	Year   string
	Day    string
	Spaced bool
}

// Locale is one supported language. Months are 1-based and weekdays
// start at Sunday, matching time.Month and time.Weekday.
type Locale struct {
	Tag         string
	MonthsLong  [12]string
	MonthsShort [12]string
	DaysLong    [7]string
	DaysShort   [7]string
	AM, PM      string
	Order       Order
	NumSep      string
	Marks       *DateMarks
	Units       map[string]string

	// TwelveHour is the locale's default hour cycle; PeriodFirst puts
	// the day-period label before the time (오전 9:05) instead of
	// after it (9:05 AM).
	TwelveHour  bool
	PeriodFirst bool
}

func (l *Locale) MonthLong(m time.Month) string  { return l.MonthsLong[int(m)-1] }
func (l *Locale) MonthShort(m time.Month) string { return l.MonthsShort[int(m)-1] }

func (l *Locale) WeekdayLong(d time.Weekday) string  { return l.DaysLong[int(d)] }
func (l *Locale) WeekdayShort(d time.Weekday) string { return l.DaysShort[int(d)] }

// DayPeriod returns the localized AM/PM label for a 24-hour value.
func (l *Locale) DayPeriod(hour int) string {
	if hour < 12 {
		return l.AM
	}
	return l.PM
}

// UnitName returns the localized display name for a unit id such as
// "year" or "weekday". Unknown ids fall back to the English name.
func (l *Locale) UnitName(id string) string {
	if name, ok := l.Units[id]; ok {
		return name
	}
	if name, ok := English.Units[id]; ok {
		return name
	}
	return id
}

var matcher = language.NewMatcher(supportedTags())

func supportedTags() []language.Tag {
	tags := make([]language.Tag, len(supported))
	for i, s := range supported {
		tags[i] = language.MustParse(s)
	}
	return tags
}

// Supported lists the resolvable tags in display order.
func Supported() []string {
	return append([]string(nil), supported...)
}

// Default is the fallback locale used whenever resolution fails.
func Default() *Locale { return English }

// Resolve canonicalizes a BCP 47 tag and matches it against the
// supported set. Any parse failure or unmatched tag falls back to
// English without surfacing an error.
func Resolve(tag string) *Locale {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return Default()
	}
	parsed, err := language.Parse(tag)
	if err != nil {
		return Default()
	}
	_, idx, conf := matcher.Match(parsed)
	if conf == language.No || idx < 0 || idx >= len(supported) {
		return Default()
	}
	return registry[supported[idx]]
}
