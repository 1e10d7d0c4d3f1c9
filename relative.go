package moment

import (
	"math"
	"strings"
)

// From describes m relative to other, e.g. "in 2 hours" or "3 days ago".
// withoutSuffix drops the future/past wrapper ("2 hours").
func (m Moment) From(other Moment, withoutSuffix bool) string {
	return m.Locale().From(m, other, withoutSuffix)
}

// FromNow is From relative to NowFunc.
func (m Moment) FromNow(withoutSuffix bool) string {
	return m.From(Now(), withoutSuffix)
}

// From describes m relative to other with l's phrases.
func (l *Locale) From(m, other Moment, withoutSuffix bool) string {
	if !m.IsValid() || !other.IsValid() {
		return InvalidDate
	}
	l = l.table()
	diff := m.Diff(other, UnitMilliseconds, true)
	return l.humanize(diff, withoutSuffix)
}

// roundHalfUp rounds .5 upward.
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

// humanize renders a signed millisecond span.
func (l *Locale) humanize(ms float64, withoutSuffix bool) string {
	future := ms > 0
	seconds := roundHalfUp(math.Abs(ms) / 1000)
	minutes := roundHalfUp(float64(seconds) / 60)
	hours := roundHalfUp(float64(minutes) / 60)
	days := roundHalfUp(float64(hours) / 24)
	years := roundHalfUp(float64(days) / 365)

	key, count := RelativeYears, years
	switch {
	case seconds < 45:
		key, count = RelativeSeconds, seconds
	case minutes == 1:
		key, count = RelativeMinute, 1
	case minutes < 45:
		key, count = RelativeMinutes, minutes
	case hours == 1:
		key, count = RelativeHour, 1
	case hours < 22:
		key, count = RelativeHours, hours
	case days == 1:
		key, count = RelativeDay, 1
	case days <= 25:
		key, count = RelativeDays, days
	case days <= 45:
		key, count = RelativeMonth, 1
	case days < 345:
		key, count = RelativeMonths, roundHalfUp(float64(days)/30)
	case years == 1:
		key, count = RelativeYear, 1
	}

	phrase := l.relativePhrase(key)(count, withoutSuffix, key, future)
	if withoutSuffix {
		return phrase
	}
	return strings.Replace(l.relativeWrapper(future), "%s", phrase, 1)
}

// Calendar describes m relative to the current day, e.g. "Tomorrow at 2:00 PM".
func (m Moment) Calendar() string {
	return m.CalendarFrom(Now())
}

// CalendarFrom describes m relative to the day of reference.
func (m Moment) CalendarFrom(reference Moment) string {
	return m.Locale().CalendarFrom(m, reference)
}

// CalendarFrom picks the calendar phrase of l for m seen from reference's day and
// formats m with it.
func (l *Locale) CalendarFrom(m, reference Moment) string {
	if !m.IsValid() || !reference.IsValid() {
		return InvalidDate
	}
	l = l.table()
	diff := m.Diff(reference.In(m.Location()).StartOfDay(), UnitDays, true)

	var key CalendarKey
	switch {
	case diff < -6:
		key = CalendarSameElse
	case diff < -1:
		key = CalendarLastWeek
	case diff < 0:
		key = CalendarLastDay
	case diff < 1:
		key = CalendarSameDay
	case diff < 2:
		key = CalendarNextDay
	case diff < 7:
		key = CalendarNextWeek
	default:
		key = CalendarSameElse
	}
	return l.Format(m, l.calendarPhrase(key)(m))
}
