package moment

import (
	"fmt"
	"math"
	"time"
)

// NowFunc is the clock used by Now and FromNow.
var NowFunc = time.Now

// Moment is an instant with an optional bound locale. The zero value is the
// zero time.Time, valid, formatted with the current locale. Every method
// returns a new Moment and leaves the receiver untouched.
type Moment struct {
	t      time.Time
	err    error
	locale *Locale
}

// Now returns the current instant in the default location.
func Now() Moment {
	return FromTime(NowFunc().In(DefaultLocation()))
}

// FromTime wraps t, keeping its location.
func FromTime(t time.Time) Moment {
	return Moment{t: t}
}

// FromUnixMilli returns the instant ms milliseconds after the Unix epoch.
func FromUnixMilli(ms int64) Moment {
	return Moment{t: time.UnixMilli(ms).In(DefaultLocation())}
}

// FromFields builds a moment from year, zero-based month, date, hours, minutes,
// seconds and milliseconds in the default location. Trailing fields may be
// omitted: the date defaults to 1, everything else to 0. Out of range values
// normalize.
func FromFields(fields ...int) Moment {
	values := [7]int{0, 0, 1, 0, 0, 0, 0}
	if len(fields) > len(values) {
		return invalid(fmt.Errorf("%w: %d fields, want at most 7", ErrInvalidInput, len(fields)))
	}
	copy(values[:], fields)
	return Moment{t: dateFromFields(values, DefaultLocation())}
}

// FromValues is FromFields for dynamically typed input. Any value that is not
// an integer (or an integral float) makes the moment invalid.
func FromValues(values ...any) Moment {
	fields := make([]int, 0, len(values))
	for i, value := range values {
		n, ok := integerValue(value)
		if !ok {
			return invalid(fmt.Errorf("%w: field %d is %T", ErrInvalidInput, i, value))
		}
		fields = append(fields, n)
	}
	return FromFields(fields...)
}

func integerValue(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int8:
		return int(v), true
	case int16:
		return int(v), true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case uint8:
		return int(v), true
	case uint16:
		return int(v), true
	case uint32:
		return int(v), true
	case uint:
		return unsignedValue(uint64(v))
	case uint64:
		return unsignedValue(v)
	case uintptr:
		return unsignedValue(uint64(v))
	case float32:
		return integerValue(float64(v))
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
			return 0, false
		}
		return int(v), true
	default:
		return 0, false
	}
}

// unsignedValue rejects values past the int range rather than wrapping.
func unsignedValue(v uint64) (int, bool) {
	if v > math.MaxInt {
		return 0, false
	}
	return int(v), true
}

func dateFromFields(f [7]int, loc *time.Location) time.Time {
	return time.Date(f[0], time.Month(f[1]+1), f[2], f[3], f[4], f[5], f[6]*int(time.Millisecond), loc)
}

func invalid(err error) Moment {
	return Moment{err: err}
}

// Clone returns an independent copy of m.
func (m Moment) Clone() Moment {
	return m
}

// IsValid reports whether m holds a usable instant.
func (m Moment) IsValid() bool {
	return m.err == nil
}

// Err returns why m is invalid, or nil.
func (m Moment) Err() error {
	return m.err
}

// Time returns the wrapped instant. Invalid moments return the zero time.
func (m Moment) Time() time.Time {
	if !m.IsValid() {
		return time.Time{}
	}
	return m.t
}

// Value returns milliseconds since the Unix epoch, or NaN when invalid.
func (m Moment) Value() float64 {
	if !m.IsValid() {
		return math.NaN()
	}
	return float64(m.t.UnixMilli())
}

func (m Moment) UnixMilli() int64 {
	if !m.IsValid() {
		return 0
	}
	return m.t.UnixMilli()
}

func (m Moment) Unix() int64 {
	if !m.IsValid() {
		return 0
	}
	return m.t.Unix()
}

// In returns m presented in loc.
func (m Moment) In(loc *time.Location) Moment {
	if !m.IsValid() || loc == nil {
		return m
	}
	m.t = m.t.In(loc)
	return m
}

func (m Moment) UTC() Moment {
	return m.In(time.UTC)
}

// Local returns m presented in the default location.
func (m Moment) Local() Moment {
	return m.In(DefaultLocation())
}

// Location returns the location calendar fields are derived in.
func (m Moment) Location() *time.Location {
	return m.t.Location()
}

// WithLocale binds the default registry's table for id to m.
func (m Moment) WithLocale(id string) Moment {
	m.locale = DefaultRegistry().Locale(id)
	return m
}

// WithLocaleTable binds locale to m. A nil table unbinds it.
func (m Moment) WithLocaleTable(locale *Locale) Moment {
	m.locale = locale
	return m
}

// Locale returns the table used to format m.
func (m Moment) Locale() *Locale {
	if m.locale != nil {
		return m.locale
	}
	return DefaultRegistry().Current()
}

func (m Moment) Year() int {
	if !m.IsValid() {
		return 0
	}
	return m.t.Year()
}

// Month returns the zero-based month (0 is January).
func (m Moment) Month() int {
	if !m.IsValid() {
		return 0
	}
	return int(m.t.Month()) - 1
}

// Date returns the day of the month.
func (m Moment) Date() int {
	if !m.IsValid() {
		return 0
	}
	return m.t.Day()
}

// Day returns the day of the week, 0 being Sunday.
func (m Moment) Day() int {
	if !m.IsValid() {
		return 0
	}
	return int(m.t.Weekday())
}

func (m Moment) Hours() int {
	if !m.IsValid() {
		return 0
	}
	return m.t.Hour()
}

func (m Moment) Minutes() int {
	if !m.IsValid() {
		return 0
	}
	return m.t.Minute()
}

func (m Moment) Seconds() int {
	if !m.IsValid() {
		return 0
	}
	return m.t.Second()
}

func (m Moment) Milliseconds() int {
	if !m.IsValid() {
		return 0
	}
	return m.t.Nanosecond() / int(time.Millisecond)
}

// Weekday returns the day of the week counted from the locale's first day.
func (m Moment) Weekday() int {
	if !m.IsValid() {
		return 0
	}
	return (m.Day() - int(m.Locale().FirstDayOfWeek) + 7) % 7
}

func (m Moment) fields() [7]int {
	return [7]int{m.Year(), m.Month(), m.Date(), m.Hours(), m.Minutes(), m.Seconds(), m.Milliseconds()}
}

// withFields rebuilds the instant from edited calendar fields, keeping the
// sub-millisecond part.
func (m Moment) withFields(edit func(f *[7]int)) Moment {
	if !m.IsValid() {
		return m
	}
	f := m.fields()
	edit(&f)
	sub := m.t.Nanosecond() % int(time.Millisecond)
	m.t = dateFromFields(f, m.t.Location()).Add(time.Duration(sub))
	return m
}

func (m Moment) SetYear(year int) Moment {
	return m.withFields(func(f *[7]int) { f[0] = year })
}

// SetMonth sets the zero-based month; 12 is January of the next year.
func (m Moment) SetMonth(month int) Moment {
	return m.withFields(func(f *[7]int) { f[1] = month })
}

func (m Moment) SetDate(date int) Moment {
	return m.withFields(func(f *[7]int) { f[2] = date })
}

// SetDay moves to day n of the current Sunday-based week. Values outside
// 0-6 move into neighbouring weeks.
func (m Moment) SetDay(day int) Moment {
	current := m.Day()
	return m.withFields(func(f *[7]int) { f[2] += day - current })
}

// SetWeekday is SetDay counted from the locale's first day of the week.
func (m Moment) SetWeekday(day int) Moment {
	current := m.Weekday()
	return m.withFields(func(f *[7]int) { f[2] += day - current })
}

func (m Moment) SetHours(hours int) Moment {
	return m.withFields(func(f *[7]int) { f[3] = hours })
}

func (m Moment) SetMinutes(minutes int) Moment {
	return m.withFields(func(f *[7]int) { f[4] = minutes })
}

func (m Moment) SetSeconds(seconds int) Moment {
	return m.withFields(func(f *[7]int) { f[5] = seconds })
}

func (m Moment) SetMilliseconds(ms int) Moment {
	return m.withFields(func(f *[7]int) { f[6] = ms })
}

// IsLeapYear reports whether m falls in a Gregorian leap year.
func (m Moment) IsLeapYear() bool {
	if !m.IsValid() {
		return false
	}
	return isLeapYear(m.Year())
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days of m's month.
func (m Moment) DaysInMonth() int {
	if !m.IsValid() {
		return 0
	}
	return daysIn(m.Year(), m.Month())
}

func daysIn(year, month int) int {
	return time.Date(year, time.Month(month+2), 0, 0, 0, 0, 0, time.UTC).Day()
}

// StartOfDay returns 00:00:00.000 of m's day.
func (m Moment) StartOfDay() Moment {
	return m.withFields(func(f *[7]int) {
		f[3], f[4], f[5], f[6] = 0, 0, 0, 0
	}).truncateSubMillis()
}

// EndOfDay returns 23:59:59.999 of m's day.
func (m Moment) EndOfDay() Moment {
	return m.withFields(func(f *[7]int) {
		f[3], f[4], f[5], f[6] = 23, 59, 59, 999
	}).truncateSubMillis()
}

func (m Moment) truncateSubMillis() Moment {
	if !m.IsValid() {
		return m
	}
	m.t = m.t.Truncate(time.Millisecond)
	return m
}
