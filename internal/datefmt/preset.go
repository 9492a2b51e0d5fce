package datefmt

import (
	"github.com/jask/clockboard/internal/locale"
)

// PresetID names a predefined date arrangement. Presets resolve
// against a locale, so the same id yields locale-appropriate unit
// order and separators.
type PresetID string

const (
	PresetFull     PresetID = "full"
	PresetLong     PresetID = "long"
	PresetMedium   PresetID = "medium"
	PresetShort    PresetID = "short"
	PresetISO      PresetID = "iso"
	PresetWeekday  PresetID = "weekday"
	PresetMonthDay PresetID = "monthday"
)

// Presets lists the known ids in display order.
func Presets() []PresetID {
	return []PresetID{
		PresetFull, PresetLong, PresetMedium, PresetShort,
		PresetISO, PresetWeekday, PresetMonthDay,
	}
}

// Preset resolves a named arrangement against loc. The second return
// is false for unknown ids.
func Preset(id PresetID, loc *locale.Locale) (Spec, bool) {
	if loc == nil {
		loc = locale.Default()
	}
	switch id {
	case PresetISO:
		return Spec{Items: []Item{
			Part(UnitYear, StyleNumeric), Sep("-"),
			Part(UnitMonth, StyleTwoDigit), Sep("-"),
			Part(UnitDay, StyleTwoDigit),
		}}, true
	case PresetShort:
		return Spec{Items: numericDate(loc)}, true
	case PresetMedium:
		return Spec{Items: namedDate(loc, StyleShort, false)}, true
	case PresetLong:
		return Spec{Items: namedDate(loc, StyleLong, false)}, true
	case PresetFull:
		return Spec{Items: namedDate(loc, StyleLong, true)}, true
	case PresetWeekday:
		return Spec{Items: []Item{Part(UnitWeekday, StyleLong)}}, true
	case PresetMonthDay:
		return Spec{Items: monthDay(loc)}, true
	}
	return Spec{}, false
}

// Choice pairs a unit with its display style for Custom arrangements.
type Choice struct {
	Unit  Unit
	Style Style
}

// Custom composes an explicit unit selection: the weekday leads, the
// remaining date units follow loc's order, and sep sits between every
// adjacent pair. Units absent from choices are left out; choice order
// does not matter.
func Custom(choices []Choice, sep string, loc *locale.Locale) Spec {
	if loc == nil {
		loc = locale.Default()
	}
	styles := make(map[Unit]Style, len(choices))
	picked := make(map[Unit]bool, len(choices))
	for _, c := range choices {
		styles[c.Unit] = c.Style
		picked[c.Unit] = true
	}
	var order []Unit
	switch loc.Order {
	case locale.OrderDMY:
		order = []Unit{UnitWeekday, UnitDay, UnitMonth, UnitYear}
	case locale.OrderYMD:
		order = []Unit{UnitWeekday, UnitYear, UnitMonth, UnitDay}
	default:
		order = []Unit{UnitWeekday, UnitMonth, UnitDay, UnitYear}
	}
	var items []Item
	for _, u := range order {
		if !picked[u] {
			continue
		}
		if len(items) > 0 {
			items = append(items, Sep(sep))
		}
		items = append(items, Part(u, styles[u]))
	}
	return Spec{Items: items}
}

// TimeSpec builds the item sequence for a clock readout. Minutes and
// seconds are always two-digit; the hour pads only when padHour is
// set, which is the norm on a 24-hour dial. On a 12-hour dial the
// locale decides where the day period goes: ja/ko/zh put it before
// the digits, everyone else after.
func TimeSpec(loc *locale.Locale, withSeconds, twelveHour, padHour bool) Spec {
	if loc == nil {
		loc = locale.Default()
	}
	hourStyle := StyleNumeric
	if padHour {
		hourStyle = StyleTwoDigit
	}
	items := []Item{Part(UnitHour, hourStyle), Sep(":"), Part(UnitMinute, StyleTwoDigit)}
	if withSeconds {
		items = append(items, Sep(":"), Part(UnitSecond, StyleTwoDigit))
	}
	if twelveHour {
		if loc.PeriodFirst {
			head := []Item{Part(UnitDayPeriod, StyleLong)}
			if loc.Marks != nil && loc.Marks.Spaced {
				head = append(head, Sep(" "))
			}
			items = append(head, items...)
		} else {
			items = append(items, Sep(" "), Part(UnitDayPeriod, StyleLong))
		}
	}
	return Spec{Items: items, TwelveHour: twelveHour}
}

func numericDate(loc *locale.Locale) []Item {
	sep := loc.NumSep
	if sep == "" {
		sep = "/"
	}
	switch loc.Order {
	case locale.OrderDMY:
		return []Item{
			Part(UnitDay, StyleNumeric), Sep(sep),
			Part(UnitMonth, StyleNumeric), Sep(sep),
			Part(UnitYear, StyleNumeric),
		}
	case locale.OrderYMD:
		return []Item{
			Part(UnitYear, StyleNumeric), Sep(sep),
			Part(UnitMonth, StyleNumeric), Sep(sep),
			Part(UnitDay, StyleNumeric),
		}
	default:
		return []Item{
			Part(UnitMonth, StyleNumeric), Sep(sep),
			Part(UnitDay, StyleNumeric), Sep(sep),
			Part(UnitYear, StyleNumeric),
		}
	}
}

func namedDate(loc *locale.Locale, monthStyle Style, withWeekday bool) []Item {
	if loc.Marks != nil {
		return markedDate(loc, withWeekday)
	}
	var items []Item
	if withWeekday {
		items = append(items, Part(UnitWeekday, StyleLong), Sep(", "))
	}
	if loc.Order == locale.OrderMDY {
		return append(items,
			Part(UnitMonth, monthStyle), Sep(" "),
			Part(UnitDay, StyleNumeric), Sep(", "),
			Part(UnitYear, StyleNumeric),
		)
	}
	return append(items,
		Part(UnitDay, StyleNumeric), Sep(" "),
		Part(UnitMonth, monthStyle), Sep(" "),
		Part(UnitYear, StyleNumeric),
	)
}

// markedDate arranges year/month/day with the locale's unit markers,
// e.g. 2026年8月25日. Month tables in marked locales already carry the
// month character, so only year and day need explicit marks.
func markedDate(loc *locale.Locale, withWeekday bool) []Item {
	m := loc.Marks
	items := []Item{Part(UnitYear, StyleNumeric), Sep(m.Year)}
	if m.Spaced {
		items = append(items, Sep(" "))
	}
	items = append(items, Part(UnitMonth, StyleShort))
	if m.Spaced {
		items = append(items, Sep(" "))
	}
	items = append(items, Part(UnitDay, StyleNumeric), Sep(m.Day))
	if withWeekday {
		if m.Spaced {
			items = append(items, Sep(" "))
		}
		items = append(items, Part(UnitWeekday, StyleLong))
	}
	return items
}

func monthDay(loc *locale.Locale) []Item {
	if loc.Marks != nil {
		m := loc.Marks
		items := []Item{Part(UnitMonth, StyleShort)}
		if m.Spaced {
			items = append(items, Sep(" "))
		}
		return append(items, Part(UnitDay, StyleNumeric), Sep(m.Day))
	}
	if loc.Order == locale.OrderMDY {
		return []Item{Part(UnitMonth, StyleLong), Sep(" "), Part(UnitDay, StyleNumeric)}
	}
	return []Item{Part(UnitDay, StyleNumeric), Sep(" "), Part(UnitMonth, StyleLong)}
}
