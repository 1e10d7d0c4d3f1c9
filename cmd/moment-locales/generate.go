package main

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	cldr "golang.org/x/text/unicode/cldr"
)

// localeDocument mirrors the locale file schema read by moment.DecodeLocale.
type localeDocument struct {
	Locale         string            `yaml:"locale"`
	FirstDayOfWeek int               `yaml:"first_day_of_week,omitempty"`
	Months         []string          `yaml:"months,flow,omitempty"`
	MonthsShort    []string          `yaml:"months_short,flow,omitempty"`
	Weekdays       []string          `yaml:"weekdays,flow,omitempty"`
	WeekdaysShort  []string          `yaml:"weekdays_short,flow,omitempty"`
	Meridiem       *meridiemDocument `yaml:"meridiem,omitempty"`
	LongDateFormat map[string]string `yaml:"long_date_format,omitempty"`
}

type meridiemDocument struct {
	AM      string `yaml:"am"`
	PM      string `yaml:"pm"`
	AMUpper string `yaml:"am_upper,omitempty"`
	PMUpper string `yaml:"pm_upper,omitempty"`
}

var weekdayKeys = []string{"sun", "mon", "tue", "wed", "thu", "fri", "sat"}

var emptyRegion language.Region

func buildDocument(data *cldr.CLDR, spec localeSpec) (localeDocument, error) {
	doc := localeDocument{Locale: spec.Locale}

	calendars := gregorianChain(data, spec.Locale)
	if len(calendars) == 0 {
		return doc, fmt.Errorf("missing gregorian calendar data")
	}

	doc.Months = firstComplete(calendars, 12, func(c *cldr.Calendar) []string { return monthNames(c, "wide") })
	doc.MonthsShort = firstComplete(calendars, 12, func(c *cldr.Calendar) []string { return monthNames(c, "abbreviated") })
	doc.Weekdays = firstComplete(calendars, 7, func(c *cldr.Calendar) []string { return dayNames(c, "wide") })
	doc.WeekdaysShort = firstComplete(calendars, 7, func(c *cldr.Calendar) []string { return dayNames(c, "abbreviated") })
	if doc.Months == nil || doc.Weekdays == nil {
		return doc, fmt.Errorf("incomplete month or weekday names")
	}

	for _, c := range calendars {
		if am, pm := dayPeriods(c); am != "" && pm != "" {
			doc.Meridiem = &meridiemDocument{
				AM:      strings.ToLower(am),
				PM:      strings.ToLower(pm),
				AMUpper: am,
				PMUpper: pm,
			}
			break
		}
	}

	doc.LongDateFormat = longDateFormats(calendars)
	doc.FirstDayOfWeek = firstDayOfWeek(data.Supplemental(), territoryOf(spec))
	return doc, nil
}

// gregorianChain returns the gregorian calendars of locale and its ancestors,
// closest first, ending with root.
func gregorianChain(data *cldr.CLDR, locale string) []*cldr.Calendar {
	if data == nil {
		return nil
	}
	var out []*cldr.Calendar
	for _, id := range ldmlCandidates(locale) {
		ldml := data.RawLDML(id)
		if ldml == nil || ldml.Dates == nil || ldml.Dates.Calendars == nil {
			continue
		}
		for _, c := range ldml.Dates.Calendars.Calendar {
			if c != nil && c.Type == "gregorian" {
				out = append(out, c)
			}
		}
	}
	return out
}

func ldmlCandidates(locale string) []string {
	candidate := strings.ReplaceAll(locale, "-", "_")
	if tag, err := language.Parse(locale); err == nil {
		candidate = strings.ReplaceAll(tag.String(), "-", "_")
	}

	var out []string
	for candidate != "" {
		out = append(out, candidate)
		idx := strings.LastIndex(candidate, "_")
		if idx < 0 {
			break
		}
		candidate = candidate[:idx]
	}
	return append(out, "root")
}

func firstComplete(calendars []*cldr.Calendar, size int, names func(*cldr.Calendar) []string) []string {
	for _, c := range calendars {
		if list := names(c); len(list) == size && !slices.Contains(list, "") {
			return list
		}
	}
	return nil
}

// monthNames prefers the stand-alone forms, which are the nominative ones in
// inflected languages.
func monthNames(c *cldr.Calendar, width string) []string {
	if c.Months == nil {
		return nil
	}
	for _, context := range []string{"stand-alone", "format"} {
		names := make([]string, 12)
		for _, mc := range c.Months.MonthContext {
			if mc == nil || mc.Type != context {
				continue
			}
			for _, mw := range mc.MonthWidth {
				if mw == nil || mw.Type != width {
					continue
				}
				for _, m := range mw.Month {
					if m == nil || m.Alt != "" || m.Yeartype != "" {
						continue
					}
					if n, err := strconv.Atoi(m.Type); err == nil && n >= 1 && n <= 12 {
						names[n-1] = m.Data()
					}
				}
			}
		}
		if !slices.Contains(names, "") {
			return names
		}
	}
	return nil
}

func dayNames(c *cldr.Calendar, width string) []string {
	if c.Days == nil {
		return nil
	}
	for _, context := range []string{"stand-alone", "format"} {
		names := make([]string, 7)
		for _, dc := range c.Days.DayContext {
			if dc == nil || dc.Type != context {
				continue
			}
			for _, dw := range dc.DayWidth {
				if dw == nil || dw.Type != width {
					continue
				}
				for _, d := range dw.Day {
					if d == nil || d.Alt != "" {
						continue
					}
					if idx := slices.Index(weekdayKeys, d.Type); idx >= 0 {
						names[idx] = d.Data()
					}
				}
			}
		}
		if !slices.Contains(names, "") {
			return names
		}
	}
	return nil
}

func dayPeriods(c *cldr.Calendar) (am, pm string) {
	if c.DayPeriods == nil {
		return "", ""
	}
	for _, width := range []string{"abbreviated", "wide"} {
		for _, ctx := range c.DayPeriods.DayPeriodContext {
			if ctx == nil || ctx.Type != "format" {
				continue
			}
			for _, w := range ctx.DayPeriodWidth {
				if w == nil || w.Type != width {
					continue
				}
				for _, p := range w.DayPeriod {
					if p == nil || p.Alt != "" {
						continue
					}
					switch p.Type {
					case "am":
						am = p.Data()
					case "pm":
						pm = p.Data()
					}
				}
			}
		}
		if am != "" && pm != "" {
			return am, pm
		}
	}
	return "", ""
}

func longDateFormats(calendars []*cldr.Calendar) map[string]string {
	var timeShort, dateShort, dateLong, dateFull string
	for _, c := range calendars {
		if timeShort == "" {
			timeShort = timePattern(c, "short")
		}
		if dateShort == "" {
			dateShort = datePattern(c, "short")
		}
		if dateLong == "" {
			dateLong = datePattern(c, "long")
		}
		if dateFull == "" {
			dateFull = datePattern(c, "full")
		}
	}

	out := make(map[string]string, 5)
	if timeShort != "" {
		out["LT"] = convertPattern(timeShort)
	}
	if dateShort != "" {
		out["L"] = convertPattern(dateShort)
	}
	if dateLong != "" {
		out["LL"] = convertPattern(dateLong)
		out["LLL"] = out["LL"] + " LT"
	}
	if dateFull != "" {
		out["LLLL"] = convertPattern(dateFull) + " LT"
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func datePattern(c *cldr.Calendar, length string) string {
	if c.DateFormats == nil {
		return ""
	}
	for _, l := range c.DateFormats.DateFormatLength {
		if l == nil || l.Type != length {
			continue
		}
		for _, f := range l.DateFormat {
			if f == nil {
				continue
			}
			for _, p := range f.Pattern {
				if p != nil && p.Alt == "" {
					return p.Data()
				}
			}
		}
	}
	return ""
}

func timePattern(c *cldr.Calendar, length string) string {
	if c.TimeFormats == nil {
		return ""
	}
	for _, l := range c.TimeFormats.TimeFormatLength {
		if l == nil || l.Type != length {
			continue
		}
		for _, f := range l.TimeFormat {
			if f == nil {
				continue
			}
			for _, p := range f.Pattern {
				if p != nil && p.Alt == "" {
					return p.Data()
				}
			}
		}
	}
	return ""
}

// convertPattern rewrites a CLDR date pattern ("d MMMM y", "h:mm a") into
// moment tokens ("D MMMM YYYY", "h:mm A"). Quoted text becomes a bracketed
// literal and fields without a moment token are dropped.
func convertPattern(pattern string) string {
	var b strings.Builder
	runes := []rune(pattern)
	for i := 0; i < len(runes); {
		r := runes[i]

		if r == '\'' {
			if i+1 < len(runes) && runes[i+1] == '\'' {
				b.WriteRune('\'')
				i += 2
				continue
			}
			end := i + 1
			for end < len(runes) && runes[end] != '\'' {
				end++
			}
			if end > i+1 {
				b.WriteString("[" + string(runes[i+1:end]) + "]")
			}
			i = end + 1
			continue
		}

		if !isPatternLetter(r) {
			if r == '[' || r == ']' || r == '\\' {
				b.WriteRune('\\')
			}
			b.WriteRune(r)
			i++
			continue
		}

		n := 1
		for i+n < len(runes) && runes[i+n] == r {
			n++
		}
		b.WriteString(patternToken(r, n))
		i += n
	}
	return strings.TrimSpace(b.String())
}

func isPatternLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func patternToken(r rune, n int) string {
	switch r {
	case 'y', 'Y', 'u':
		if n == 2 {
			return "YY"
		}
		return "YYYY"
	case 'M', 'L':
		return strings.Repeat("M", min(n, 4))
	case 'd':
		return strings.Repeat("D", min(n, 2))
	case 'D':
		if n >= 3 {
			return "DDDD"
		}
		return "DDD"
	case 'E', 'c', 'e':
		if n >= 4 {
			return "dddd"
		}
		return "ddd"
	case 'H', 'k':
		return strings.Repeat("H", min(n, 2))
	case 'h', 'K':
		return strings.Repeat("h", min(n, 2))
	case 'm':
		return strings.Repeat("m", min(n, 2))
	case 's':
		return strings.Repeat("s", min(n, 2))
	case 'S':
		return strings.Repeat("S", min(n, 3))
	case 'a', 'b', 'B':
		return "A"
	case 'w':
		return strings.Repeat("w", min(n, 2))
	case 'z', 'v':
		return "z"
	case 'Z', 'x', 'X', 'O':
		return "Z"
	default:
		return ""
	}
}

func territoryOf(spec localeSpec) string {
	if spec.Territory != "" {
		return spec.Territory
	}
	if tag, err := language.Parse(spec.Locale); err == nil {
		if region, _ := tag.Region(); region != emptyRegion {
			return region.String()
		}
	}
	return ""
}

// firstDayOfWeek returns 0 for Sunday through 6 for Saturday. Territories
// without an entry use the world default.
func firstDayOfWeek(supplemental *cldr.SupplementalData, territory string) int {
	if supplemental == nil || supplemental.WeekData == nil {
		return 1
	}

	world := -1
	for _, entry := range supplemental.WeekData.FirstDay {
		if entry == nil || entry.Alt != "" {
			continue
		}
		day := slices.Index(weekdayKeys, entry.Day)
		if day < 0 {
			continue
		}
		territories := strings.Fields(entry.Territories)
		if territory != "" && slices.Contains(territories, territory) {
			return day
		}
		if slices.Contains(territories, "001") {
			world = day
		}
	}
	if world < 0 {
		return 1
	}
	return world
}
