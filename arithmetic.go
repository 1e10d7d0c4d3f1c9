package moment

import (
	"math"
	"time"
)

const (
	millisPerSecond = 1e3
	millisPerMinute = 6e4
	millisPerHour   = 36e5
	millisPerDay    = 864e5
	millisPerWeek   = 6048e5
)

// Add applies d to m. Clock spans are added to the instant, days and weeks
// keep the wall-clock time across offset changes, and months and years clamp
// the date to the last day of the target month.
func (m Moment) Add(d Delta) Moment {
	return m.apply(d, 1)
}

// Subtract applies the negation of d to m.
func (m Moment) Subtract(d Delta) Moment {
	return m.apply(d, -1)
}

// AddUnit adds amount of the named unit ("d", "days", "M", "months"...).
// Unknown units leave m unchanged.
func (m Moment) AddUnit(unit string, amount int) Moment {
	return m.Add(DeltaOf(unit, amount))
}

func (m Moment) SubtractUnit(unit string, amount int) Moment {
	return m.Subtract(DeltaOf(unit, amount))
}

func (m Moment) apply(d Delta, sign int) Moment {
	if !m.IsValid() || d.IsZero() {
		return m
	}
	if span := d.spanMillis(); span != 0 {
		m.t = m.t.Add(time.Duration(int64(sign)*span) * time.Millisecond)
	}
	if days := d.days(); days != 0 {
		m.t = m.t.AddDate(0, 0, sign*days)
	}
	if months := d.months(); months != 0 {
		target := m.Month() + sign*months
		date := min(m.Date(), daysIn(m.Year(), target))
		m = m.withFields(func(f *[7]int) {
			f[1], f[2] = target, date
		})
	}
	return m
}

// Diff returns m minus other in unit. Months and years compare calendar
// fields, days and weeks discount offset changes between the two instants,
// and the clock units use the raw instant difference. An empty or unknown
// unit yields milliseconds. Unless precise is set the result is truncated
// toward zero. Either operand being invalid yields NaN.
func (m Moment) Diff(other Moment, unit Unit, precise bool) float64 {
	if !m.IsValid() || !other.IsValid() {
		return math.NaN()
	}

	delta := float64(m.t.UnixMilli() - other.t.UnixMilli())
	var out float64
	switch unit {
	case UnitYears, UnitMonths:
		other = other.In(m.Location())
		months := (m.Year()-other.Year())*12 + m.Month() - other.Month()
		days := float64(m.Date()-other.Date()) + (millisOfDay(m)-millisOfDay(other))/millisPerDay
		out = float64(months) + days/30
		if unit == UnitYears {
			out /= 12
		}
	case UnitWeeks, UnitDays:
		zoneDelta := float64(m.Zone()-other.Zone()) * millisPerMinute
		size := millisPerDay
		if unit == UnitWeeks {
			size = millisPerWeek
		}
		out = (delta - zoneDelta) / size
	case UnitHours:
		out = delta / millisPerHour
	case UnitMinutes:
		out = delta / millisPerMinute
	case UnitSeconds:
		out = delta / millisPerSecond
	default:
		out = delta
	}

	if !precise {
		out = math.Trunc(out)
	}
	if out == 0 {
		// normalizes -0
		out = 0
	}
	return out
}

func millisOfDay(m Moment) float64 {
	return float64(((m.Hours()*60+m.Minutes())*60+m.Seconds())*1000 + m.Milliseconds())
}
