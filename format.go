package moment

import (
	"strconv"
	"strings"
)

const (
	// DefaultFormat is used when Format receives an empty layout.
	DefaultFormat = "YYYY-MM-DDTHH:mm:ssZ"
	// InvalidDate is rendered for invalid moments.
	InvalidDate = "Invalid date"

	stringLayout = "ddd MMM DD YYYY HH:mm:ss [GMT]ZZ"
)

// Format renders m with the layout tokens described in the package
// documentation, using m's locale.
func (m Moment) Format(layout string) string {
	return m.Locale().Format(m, layout)
}

// Format renders m with l's names and presets, ignoring m's bound locale.
func (l *Locale) Format(m Moment, layout string) string {
	if !m.IsValid() {
		return InvalidDate
	}
	l = l.table()
	if layout == "" {
		layout = DefaultFormat
	}

	var b strings.Builder
	for _, tok := range compiledLayout(l, layout) {
		l.writeToken(&b, m, tok)
	}
	return b.String()
}

// String renders m in English, e.g. "Sun Feb 14 2010 15:25:50 GMT-0800".
func (m Moment) String() string {
	return englishLocale().Format(m, stringLayout)
}

func (l *Locale) writeToken(b *strings.Builder, m Moment, tok token) {
	switch tok.kind {
	case tokLiteral:
		b.WriteString(tok.text)

	case tokMonth:
		b.WriteString(strconv.Itoa(m.Month() + 1))
	case tokMonthOrdinal:
		b.WriteString(l.ordinal(m.Month() + 1))
	case tokMonthPadded:
		b.WriteString(zeroPad(m.Month()+1, 2))
	case tokMonthShort:
		b.WriteString(l.monthName(m.Month(), true))
	case tokMonthLong:
		b.WriteString(l.monthName(m.Month(), false))

	case tokDate:
		b.WriteString(strconv.Itoa(m.Date()))
	case tokDateOrdinal:
		b.WriteString(l.ordinal(m.Date()))
	case tokDatePadded:
		b.WriteString(zeroPad(m.Date(), 2))

	case tokDayOfYear:
		b.WriteString(strconv.Itoa(m.t.YearDay()))
	case tokDayOfYearOrdinal:
		b.WriteString(l.ordinal(m.t.YearDay()))
	case tokDayOfYearPadded:
		b.WriteString(zeroPad(m.t.YearDay(), 3))

	case tokWeekday:
		b.WriteString(strconv.Itoa(m.Day()))
	case tokWeekdayOrdinal:
		b.WriteString(l.ordinal(m.Day()))
	case tokWeekdayShort:
		b.WriteString(l.weekdayName(m.Day(), true))
	case tokWeekdayLong:
		b.WriteString(l.weekdayName(m.Day(), false))

	case tokWeek:
		b.WriteString(strconv.Itoa(isoWeek(m)))
	case tokWeekOrdinal:
		b.WriteString(l.ordinal(isoWeek(m)))
	case tokWeekPadded:
		b.WriteString(zeroPad(isoWeek(m), 2))

	case tokYearShort:
		year := m.Year()
		if year < 0 {
			year = -year
		}
		b.WriteString(zeroPad(year%100, 2))
	case tokYear:
		year := m.Year()
		if year < 0 {
			b.WriteByte('-')
			year = -year
		}
		b.WriteString(zeroPad(year, 4))

	case tokMeridiemLower:
		b.WriteString(l.meridiem(m.Hours(), m.Minutes(), true))
	case tokMeridiemUpper:
		b.WriteString(l.meridiem(m.Hours(), m.Minutes(), false))

	case tokHour:
		b.WriteString(strconv.Itoa(m.Hours()))
	case tokHourPadded:
		b.WriteString(zeroPad(m.Hours(), 2))
	case tokHour12:
		b.WriteString(strconv.Itoa(hour12(m.Hours())))
	case tokHour12Padded:
		b.WriteString(zeroPad(hour12(m.Hours()), 2))

	case tokMinute:
		b.WriteString(strconv.Itoa(m.Minutes()))
	case tokMinutePadded:
		b.WriteString(zeroPad(m.Minutes(), 2))
	case tokSecond:
		b.WriteString(strconv.Itoa(m.Seconds()))
	case tokSecondPadded:
		b.WriteString(zeroPad(m.Seconds(), 2))

	case tokFraction1:
		b.WriteString(strconv.Itoa(m.Milliseconds() / 100))
	case tokFraction2:
		b.WriteString(zeroPad(m.Milliseconds()/10, 2))
	case tokFraction3:
		b.WriteString(zeroPad(m.Milliseconds(), 3))

	case tokZoneAbbr:
		name, _ := m.t.Zone()
		b.WriteString(name)
	case tokOffsetColon:
		writeOffset(b, -m.Zone(), ":")
	case tokOffset:
		writeOffset(b, -m.Zone(), "")
	}
}

// writeOffset writes minutes east of UTC as ±HH<sep>mm.
func writeOffset(b *strings.Builder, minutes int, sep string) {
	sign := byte('+')
	if minutes < 0 {
		sign = '-'
		minutes = -minutes
	}
	b.WriteByte(sign)
	b.WriteString(zeroPad(minutes/60, 2))
	b.WriteString(sep)
	b.WriteString(zeroPad(minutes%60, 2))
}

func isoWeek(m Moment) int {
	_, week := m.t.ISOWeek()
	return week
}

func hour12(hour int) int {
	if hour %= 12; hour == 0 {
		return 12
	}
	return hour
}

func zeroPad(n, width int) string {
	s := strconv.Itoa(n)
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}
