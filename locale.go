package moment

import (
	"fmt"
	"maps"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
)

// RelativePhrase renders one unit class of a relative-time phrase. count is the
// scaled amount, withoutSuffix is true when the future/past wrapper is omitted
// and future reports the direction of the difference.
type RelativePhrase func(count int, withoutSuffix bool, key RelativeKey, future bool) string

// CalendarPhrase returns the format template used by Calendar for a moment.
type CalendarPhrase func(m Moment) string

// OrdinalFunc returns the suffix appended to n by ordinal tokens.
type OrdinalFunc func(n int) string

// MeridiemFunc returns the meridiem marker for a time of day.
type MeridiemFunc func(hour, minute int, lower bool) string

// RelativeTimeTable holds the relative-time phrases of a locale.
// Future and Past wrap the unit phrase through a %s placeholder.
type RelativeTimeTable struct {
	Future string
	Past   string
	Units  map[RelativeKey]RelativePhrase
}

// Locale is the table of names, phrases and presets used to format, parse and
// humanize moments. Tables are treated as immutable once registered.
type Locale struct {
	ID string
	// Tag selects plural rules and case mapping. Derived from ID when empty.
	Tag            language.Tag
	Months         []string
	MonthsShort    []string
	Weekdays       []string
	WeekdaysShort  []string
	Ordinal        OrdinalFunc
	Meridiem       MeridiemFunc
	LongDateFormat map[LongDateKey]string
	RelativeTime   RelativeTimeTable
	Calendar       map[CalendarKey]CalendarPhrase
	FirstDayOfWeek time.Weekday
}

// Phrase returns a constant relative phrase; "%d" is replaced by the count.
func Phrase(template string) RelativePhrase {
	return func(count int, _ bool, _ RelativeKey, _ bool) string {
		return expandCount(template, count)
	}
}

// PluralPhrase selects a template by the CLDR cardinal category of the count.
// Missing categories fall back to PluralOther.
func PluralPhrase(tag language.Tag, forms map[PluralCategory]string) RelativePhrase {
	forms = maps.Clone(forms)
	return func(count int, _ bool, _ RelativeKey, _ bool) string {
		return expandCount(selectPluralForm(tag, count, forms), count)
	}
}

// CalendarLayout returns a constant calendar phrase.
func CalendarLayout(layout string) CalendarPhrase {
	return func(Moment) string {
		return layout
	}
}

// SuffixOrdinal returns an ordinal function appending the same suffix to every number.
func SuffixOrdinal(suffix string) OrdinalFunc {
	return func(int) string {
		return suffix
	}
}

// MeridiemWords returns a meridiem function switching at noon.
func MeridiemWords(am, pm, amUpper, pmUpper string) MeridiemFunc {
	return func(hour, _ int, lower bool) string {
		switch {
		case hour < 12 && lower:
			return am
		case hour < 12:
			return amUpper
		case lower:
			return pm
		default:
			return pmUpper
		}
	}
}

func expandCount(template string, count int) string {
	if !strings.Contains(template, "%d") {
		return template
	}
	return strings.ReplaceAll(template, "%d", strconv.Itoa(count))
}

func pluralCategory(tag language.Tag, n int) PluralCategory {
	if n < 0 {
		n = -n
	}
	switch plural.Cardinal.MatchPlural(tag, n, 0, 0, 0, 0) {
	case plural.Zero:
		return PluralZero
	case plural.One:
		return PluralOne
	case plural.Two:
		return PluralTwo
	case plural.Few:
		return PluralFew
	case plural.Many:
		return PluralMany
	default:
		return PluralOther
	}
}

func selectPluralForm(tag language.Tag, n int, forms map[PluralCategory]string) string {
	if form, ok := forms[pluralCategory(tag, n)]; ok {
		return form
	}
	if form, ok := forms[PluralOther]; ok {
		return form
	}
	for _, category := range []PluralCategory{PluralMany, PluralFew, PluralTwo, PluralOne, PluralZero} {
		if form, ok := forms[category]; ok {
			return form
		}
	}
	return ""
}

func (l *Locale) validate() error {
	if l == nil {
		return fmt.Errorf("%w: nil table", ErrInvalidLocale)
	}
	checks := []struct {
		name  string
		names []string
		want  int
	}{
		{"months", l.Months, 12},
		{"months_short", l.MonthsShort, 12},
		{"weekdays", l.Weekdays, 7},
		{"weekdays_short", l.WeekdaysShort, 7},
	}
	for _, check := range checks {
		if len(check.names) != 0 && len(check.names) != check.want {
			return fmt.Errorf("%w: %s has %d entries, want %d", ErrInvalidLocale, check.name, len(check.names), check.want)
		}
	}
	for key := range l.LongDateFormat {
		if !isLongDateKey(key) {
			return fmt.Errorf("%w: unknown long date format %q", ErrInvalidLocale, key)
		}
	}
	if l.FirstDayOfWeek < time.Sunday || l.FirstDayOfWeek > time.Saturday {
		return fmt.Errorf("%w: first day of week %d", ErrInvalidLocale, l.FirstDayOfWeek)
	}
	return nil
}

// withDefaults returns a copy of l where every omitted entry is taken from base.
func (l *Locale) withDefaults(id string, base *Locale) *Locale {
	out := &Locale{
		ID:             id,
		Tag:            l.Tag,
		Months:         pickNames(l.Months, base.Months),
		MonthsShort:    pickNames(l.MonthsShort, base.MonthsShort),
		Weekdays:       pickNames(l.Weekdays, base.Weekdays),
		WeekdaysShort:  pickNames(l.WeekdaysShort, base.WeekdaysShort),
		Ordinal:        l.Ordinal,
		Meridiem:       l.Meridiem,
		FirstDayOfWeek: l.FirstDayOfWeek,
		LongDateFormat: make(map[LongDateKey]string, len(longDateKeys)),
		Calendar:       make(map[CalendarKey]CalendarPhrase, len(calendarKeys)),
		RelativeTime: RelativeTimeTable{
			Future: l.RelativeTime.Future,
			Past:   l.RelativeTime.Past,
			Units:  make(map[RelativeKey]RelativePhrase, len(relativeKeys)),
		},
	}
	if out.Tag == language.Und {
		out.Tag = localeTag(id)
	}
	if out.Ordinal == nil {
		out.Ordinal = base.Ordinal
	}
	if out.Meridiem == nil {
		out.Meridiem = base.Meridiem
	}
	if out.RelativeTime.Future == "" {
		out.RelativeTime.Future = base.RelativeTime.Future
	}
	if out.RelativeTime.Past == "" {
		out.RelativeTime.Past = base.RelativeTime.Past
	}
	for _, key := range longDateKeys {
		if layout, ok := l.LongDateFormat[key]; ok && layout != "" {
			out.LongDateFormat[key] = layout
		} else {
			out.LongDateFormat[key] = base.LongDateFormat[key]
		}
	}
	for _, key := range relativeKeys {
		if phrase := l.RelativeTime.Units[key]; phrase != nil {
			out.RelativeTime.Units[key] = phrase
		} else {
			out.RelativeTime.Units[key] = base.RelativeTime.Units[key]
		}
	}
	for _, key := range calendarKeys {
		if phrase := l.Calendar[key]; phrase != nil {
			out.Calendar[key] = phrase
		} else {
			out.Calendar[key] = base.Calendar[key]
		}
	}
	return out
}

func pickNames(names, fallback []string) []string {
	if len(names) == 0 {
		names = fallback
	}
	return append([]string(nil), names...)
}

func isLongDateKey(key LongDateKey) bool {
	for _, known := range longDateKeys {
		if key == known {
			return true
		}
	}
	return false
}

// table returns l, or the built-in English table for nil receivers.
func (l *Locale) table() *Locale {
	if l == nil {
		return englishLocale()
	}
	return l
}

func (l *Locale) monthName(month int, short bool) string {
	names := l.Months
	if short {
		names = l.MonthsShort
	}
	if month < 0 || month >= len(names) {
		return englishLocale().monthName(((month%12)+12)%12, short)
	}
	return names[month]
}

func (l *Locale) weekdayName(day int, short bool) string {
	names := l.Weekdays
	if short {
		names = l.WeekdaysShort
	}
	if day < 0 || day >= len(names) {
		return englishLocale().weekdayName(((day%7)+7)%7, short)
	}
	return names[day]
}

func (l *Locale) ordinal(n int) string {
	fn := l.Ordinal
	if fn == nil {
		fn = englishOrdinal
	}
	return strconv.Itoa(n) + fn(n)
}

func (l *Locale) meridiem(hour, minute int, lower bool) string {
	fn := l.Meridiem
	if fn == nil {
		fn = englishMeridiem
	}
	return fn(hour, minute, lower)
}

func (l *Locale) longDateFormat(key LongDateKey) string {
	if layout, ok := l.LongDateFormat[key]; ok && layout != "" {
		return layout
	}
	if l != englishLocale() {
		return englishLocale().longDateFormat(key)
	}
	return ""
}

func (l *Locale) relativePhrase(key RelativeKey) RelativePhrase {
	if phrase := l.RelativeTime.Units[key]; phrase != nil {
		return phrase
	}
	return englishLocale().RelativeTime.Units[key]
}

func (l *Locale) relativeWrapper(future bool) string {
	template := l.RelativeTime.Past
	if future {
		template = l.RelativeTime.Future
	}
	if template == "" {
		english := englishLocale().RelativeTime
		template = english.Past
		if future {
			template = english.Future
		}
	}
	return template
}

func (l *Locale) calendarPhrase(key CalendarKey) CalendarPhrase {
	if phrase := l.Calendar[key]; phrase != nil {
		return phrase
	}
	return englishLocale().Calendar[key]
}

func (l *Locale) tag() language.Tag {
	if l.Tag == language.Und {
		return localeTag(l.ID)
	}
	return l.Tag
}

// matchName finds the longest entry of the name lists that prefixes input,
// comparing with the locale's lowercase mapping. It returns the entry index
// and the number of bytes consumed.
func (l *Locale) matchName(input string, lists ...[]string) (int, int) {
	if input == "" {
		return -1, 0
	}
	lower := cases.Lower(l.tag())
	bestIndex, bestSize, bestRunes := -1, 0, 0
	for _, names := range lists {
		for index, name := range names {
			runes := utf8.RuneCountInString(name)
			if runes == 0 || runes <= bestRunes {
				continue
			}
			prefix, ok := runePrefix(input, runes)
			if !ok {
				continue
			}
			if lower.String(prefix) == lower.String(name) {
				bestIndex, bestSize, bestRunes = index, len(prefix), runes
			}
		}
	}
	return bestIndex, bestSize
}

func (l *Locale) matchMonth(input string) (int, int) {
	return l.matchName(input, l.Months, l.MonthsShort)
}

func (l *Locale) matchWeekday(input string) (int, int) {
	return l.matchName(input, l.Weekdays, l.WeekdaysShort)
}

// matchMeridiem reports whether input starts with a post-meridiem marker.
func (l *Locale) matchMeridiem(input string) (pm bool, size int) {
	markers := []string{
		l.meridiem(0, 0, true), l.meridiem(0, 0, false),
		l.meridiem(12, 0, true), l.meridiem(12, 0, false),
		"am", "pm",
	}
	index, size := l.matchName(input, markers)
	if index < 0 {
		return false, 0
	}
	return index == 2 || index == 3 || index == 5, size
}

// matchOrdinalSuffix returns the bytes of the ordinal suffix of n found at input.
func (l *Locale) matchOrdinalSuffix(input string, n int) int {
	fn := l.Ordinal
	if fn == nil {
		fn = englishOrdinal
	}
	suffix := fn(n)
	if suffix == "" {
		return 0
	}
	if _, size := l.matchName(input, []string{suffix}); size > 0 {
		return size
	}
	return 0
}

func runePrefix(input string, runes int) (string, bool) {
	offset := 0
	for i := 0; i < runes; i++ {
		if offset >= len(input) {
			return "", false
		}
		_, size := utf8.DecodeRuneInString(input[offset:])
		offset += size
	}
	return input[:offset], true
}
