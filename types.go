package moment

import (
	"fmt"
	"strings"
)

// LongDateKey identifies a locale long-date preset token.
type LongDateKey string

const (
	FormatLT   LongDateKey = "LT"
	FormatL    LongDateKey = "L"
	FormatLL   LongDateKey = "LL"
	FormatLLL  LongDateKey = "LLL"
	FormatLLLL LongDateKey = "LLLL"
)

var longDateKeys = []LongDateKey{FormatLT, FormatL, FormatLL, FormatLLL, FormatLLLL}

// RelativeKey identifies a unit class of the relative-time phrase table.
type RelativeKey string

const (
	RelativeSeconds RelativeKey = "seconds"
	RelativeMinute  RelativeKey = "minute"
	RelativeMinutes RelativeKey = "minutes"
	RelativeHour    RelativeKey = "hour"
	RelativeHours   RelativeKey = "hours"
	RelativeDay     RelativeKey = "day"
	RelativeDays    RelativeKey = "days"
	RelativeMonth   RelativeKey = "month"
	RelativeMonths  RelativeKey = "months"
	RelativeYear    RelativeKey = "year"
	RelativeYears   RelativeKey = "years"
)

var relativeKeys = []RelativeKey{
	RelativeSeconds,
	RelativeMinute, RelativeMinutes,
	RelativeHour, RelativeHours,
	RelativeDay, RelativeDays,
	RelativeMonth, RelativeMonths,
	RelativeYear, RelativeYears,
}

// CalendarKey identifies a calendar phrase slot.
type CalendarKey string

const (
	CalendarSameDay  CalendarKey = "sameDay"
	CalendarNextDay  CalendarKey = "nextDay"
	CalendarLastDay  CalendarKey = "lastDay"
	CalendarNextWeek CalendarKey = "nextWeek"
	CalendarLastWeek CalendarKey = "lastWeek"
	CalendarSameElse CalendarKey = "sameElse"
)

var calendarKeys = []CalendarKey{
	CalendarSameDay, CalendarNextDay, CalendarLastDay,
	CalendarNextWeek, CalendarLastWeek, CalendarSameElse,
}

type PluralCategory string

const (
	PluralZero  PluralCategory = "zero"
	PluralOne   PluralCategory = "one"
	PluralTwo   PluralCategory = "two"
	PluralFew   PluralCategory = "few"
	PluralMany  PluralCategory = "many"
	PluralOther PluralCategory = "other"
)

func parsePluralCategory(raw string) (PluralCategory, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "zero":
		return PluralZero, nil
	case "one":
		return PluralOne, nil
	case "two":
		return PluralTwo, nil
	case "few":
		return PluralFew, nil
	case "many":
		return PluralMany, nil
	case "other":
		return PluralOther, nil
	default:
		return "", fmt.Errorf("unknown plural category %q", raw)
	}
}

// Unit names a span used by Diff and the unit-keyed arithmetic helpers.
type Unit string

const (
	UnitMilliseconds Unit = "milliseconds"
	UnitSeconds      Unit = "seconds"
	UnitMinutes      Unit = "minutes"
	UnitHours        Unit = "hours"
	UnitDays         Unit = "days"
	UnitWeeks        Unit = "weeks"
	UnitMonths       Unit = "months"
	UnitYears        Unit = "years"
)

var unitAliases = map[string]Unit{
	"ms": UnitMilliseconds, "millisecond": UnitMilliseconds, "milliseconds": UnitMilliseconds,
	"s": UnitSeconds, "second": UnitSeconds, "seconds": UnitSeconds,
	"m": UnitMinutes, "minute": UnitMinutes, "minutes": UnitMinutes,
	"h": UnitHours, "hour": UnitHours, "hours": UnitHours,
	"d": UnitDays, "day": UnitDays, "days": UnitDays,
	"w": UnitWeeks, "week": UnitWeeks, "weeks": UnitWeeks,
	"M": UnitMonths, "month": UnitMonths, "months": UnitMonths,
	"y": UnitYears, "year": UnitYears, "years": UnitYears,
}

// ParseUnit resolves a unit key. Single letter keys are case sensitive
// ("m" is minutes, "M" is months); spelled out names are not.
func ParseUnit(key string) (Unit, bool) {
	key = strings.TrimSpace(key)
	if unit, ok := unitAliases[key]; ok {
		return unit, true
	}
	if len(key) > 1 {
		unit, ok := unitAliases[strings.ToLower(key)]
		return unit, ok
	}
	return "", false
}

// Delta enumerates calendar and clock amounts applied by Add and Subtract.
type Delta struct {
	Years        int
	Months       int
	Weeks        int
	Days         int
	Hours        int
	Minutes      int
	Seconds      int
	Milliseconds int
}

// DeltaOf returns a Delta holding amount in the given unit. Unknown units
// produce an empty Delta.
func DeltaOf(unit string, amount int) Delta {
	var d Delta
	resolved, ok := ParseUnit(unit)
	if !ok {
		return d
	}
	d.set(resolved, amount)
	return d
}

// DeltaFrom builds a Delta from unit keyed amounts, e.g. {"d": 1, "M": 2}.
// Unrecognised keys are ignored.
func DeltaFrom(values map[string]int) Delta {
	var d Delta
	for key, amount := range values {
		if unit, ok := ParseUnit(key); ok {
			d.set(unit, amount)
		}
	}
	return d
}

func (d *Delta) set(unit Unit, amount int) {
	switch unit {
	case UnitMilliseconds:
		d.Milliseconds += amount
	case UnitSeconds:
		d.Seconds += amount
	case UnitMinutes:
		d.Minutes += amount
	case UnitHours:
		d.Hours += amount
	case UnitDays:
		d.Days += amount
	case UnitWeeks:
		d.Weeks += amount
	case UnitMonths:
		d.Months += amount
	case UnitYears:
		d.Years += amount
	}
}

func (d Delta) spanMillis() int64 {
	return int64(d.Milliseconds) +
		int64(d.Seconds)*1e3 +
		int64(d.Minutes)*6e4 +
		int64(d.Hours)*36e5
}

func (d Delta) days() int {
	return d.Days + d.Weeks*7
}

func (d Delta) months() int {
	return d.Months + d.Years*12
}

// IsZero reports whether the delta changes nothing.
func (d Delta) IsZero() bool {
	return d == Delta{}
}
