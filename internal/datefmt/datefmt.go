// Package datefmt turns an instant into an ordered sequence of display
// tokens: formatted unit values interleaved with literal separators.
// Composition is pure. The same instant, locale, and spec always yield
// the same tokens, so widgets may re-render from cached output.
package datefmt

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/jask/clockboard/internal/locale"
)

// Unit is one addressable date/time component.
type Unit int

const (
	UnitYear Unit = iota
	UnitMonth
	UnitDay
	UnitWeekday
	UnitHour
	UnitMinute
	UnitSecond
	UnitDayPeriod
)

func (u Unit) String() string {
	switch u {
	case UnitYear:
		return "year"
	case UnitMonth:
		return "month"
	case UnitDay:
		return "day"
	case UnitWeekday:
		return "weekday"
	case UnitHour:
		return "hour"
	case UnitMinute:
		return "minute"
	case UnitSecond:
		return "second"
	case UnitDayPeriod:
		return "dayperiod"
	}
	return "unknown"
}

// Style selects how a unit value renders. Styles that do not apply to
// a unit degrade to the numeric form, so every spec is total.
type Style int

const (
	StyleNumeric Style = iota
	StyleTwoDigit
	StyleOrdinal
	StyleShort
	StyleLong
)

// Item is one entry of a format spec: a unit with a style, or a
// literal separator when Sep is non-empty.
type Item struct {
	Unit  Unit
	Style Style
	Sep   string
}

func Part(u Unit, s Style) Item { return Item{Unit: u, Style: s} }
func Sep(s string) Item         { return Item{Sep: s} }

// Spec is a resolved format: the item sequence plus the hour cycle
// applied to hour values.
type Spec struct {
	Items      []Item
	TwelveHour bool
}

// Token is one displayable output piece.
type Token struct {
	Unit Unit
	Text string
	Sep  bool
}

// Compose formats the wall clock of t (convert with t.In beforehand to
// apply a timezone) against spec, using loc's display tables. A nil
// locale composes in English.
func Compose(t time.Time, loc *locale.Locale, spec Spec) []Token {
	if loc == nil {
		loc = locale.Default()
	}
	out := make([]Token, 0, len(spec.Items))
	for _, item := range spec.Items {
		if item.Sep != "" {
			out = append(out, Token{Text: item.Sep, Sep: true})
			continue
		}
		out = append(out, Token{Unit: item.Unit, Text: unitText(t, loc, item, spec.TwelveHour)})
	}
	return out
}

// Join concatenates token texts into the final display string.
func Join(tokens []Token) string {
	var b strings.Builder
	for _, tok := range tokens {
		b.WriteString(tok.Text)
	}
	return b.String()
}

// Format is Compose followed by Join.
func Format(t time.Time, loc *locale.Locale, spec Spec) string {
	return Join(Compose(t, loc, spec))
}

func unitText(t time.Time, loc *locale.Locale, item Item, twelveHour bool) string {
	switch item.Unit {
	case UnitYear:
		if item.Style == StyleTwoDigit {
			return fmt.Sprintf("%02d", t.Year()%100)
		}
		return strconv.Itoa(t.Year())
	case UnitMonth:
		switch item.Style {
		case StyleLong:
			return loc.MonthLong(t.Month())
		case StyleShort:
			return loc.MonthShort(t.Month())
		case StyleTwoDigit:
			return fmt.Sprintf("%02d", int(t.Month()))
		default:
			return strconv.Itoa(int(t.Month()))
		}
	case UnitDay:
		switch item.Style {
		case StyleOrdinal:
			return humanize.Ordinal(t.Day())
		case StyleTwoDigit:
			return fmt.Sprintf("%02d", t.Day())
		default:
			return strconv.Itoa(t.Day())
		}
	case UnitWeekday:
		if item.Style == StyleShort {
			return loc.WeekdayShort(t.Weekday())
		}
		return loc.WeekdayLong(t.Weekday())
	case UnitHour:
		h := t.Hour()
		if twelveHour {
			h = hour12(h)
		}
		if item.Style == StyleTwoDigit {
			return fmt.Sprintf("%02d", h)
		}
		return strconv.Itoa(h)
	case UnitMinute:
		if item.Style == StyleTwoDigit {
			return fmt.Sprintf("%02d", t.Minute())
		}
		return strconv.Itoa(t.Minute())
	case UnitSecond:
		if item.Style == StyleTwoDigit {
			return fmt.Sprintf("%02d", t.Second())
		}
		return strconv.Itoa(t.Second())
	case UnitDayPeriod:
		return loc.DayPeriod(t.Hour())
	}
	return ""
}

// hour12 maps a 24-hour value onto the 12-hour dial: 0 becomes 12,
// 13 through 23 wrap to 1 through 11.
func hour12(h int) int {
	h %= 12
	if h == 0 {
		return 12
	}
	return h
}
