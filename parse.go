package moment

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// TwoDigitYearPivot is the largest YY value read as 20YY. Larger values are
// read as 19YY.
var TwoDigitYearPivot = 68

// Parse builds a moment from input in the default location using the current
// locale's names. Without layouts the input is read as /Date(ms)/, a common
// timestamp layout or a natural language expression. With one or more layouts
// the best matching layout wins, ties going to the earliest one.
func Parse(input string, layouts ...string) Moment {
	return parseIn(DefaultRegistry().Current(), input, layouts, DefaultLocation())
}

// ParseInLocation is Parse with fields interpreted in loc.
func ParseInLocation(input string, loc *time.Location, layouts ...string) Moment {
	if loc == nil {
		loc = DefaultLocation()
	}
	return parseIn(DefaultRegistry().Current(), input, layouts, loc)
}

// Parse is the package Parse with l's names, returning a moment bound to l.
func (l *Locale) Parse(input string, layouts ...string) Moment {
	l = l.table()
	return parseIn(l, input, layouts, DefaultLocation()).WithLocaleTable(l)
}

// ParseInLocation is Parse with l's names and fields interpreted in loc.
func (l *Locale) ParseInLocation(input string, loc *time.Location, layouts ...string) Moment {
	l = l.table()
	if loc == nil {
		loc = DefaultLocation()
	}
	return parseIn(l, input, layouts, loc).WithLocaleTable(l)
}

func parseIn(l *Locale, input string, layouts []string, loc *time.Location) Moment {
	if len(layouts) == 0 {
		return parseFreeText(input, loc)
	}

	var (
		best       parseResult
		bestLayout string
		bestScore  = -1
	)
	for _, layout := range layouts {
		result := parseLayout(l, input, layout)
		if score := result.score(); bestScore < 0 || score < bestScore {
			best, bestLayout, bestScore = result, layout, score
		}
	}

	Logger().Debug("moment: parse layout selected",
		logKeyInput, input,
		logKeyLayout, bestLayout,
		logKeyScore, bestScore,
		logKeyLocale, l.ID,
	)

	// Without tokens a layout is satisfied only when its literals consume the
	// whole input.
	if best.matched == 0 && (best.tokens > 0 || best.leftover+best.missed > 0) {
		return invalid(fmt.Errorf("%w: %q does not match %q", ErrInvalidInput, input, bestLayout))
	}
	return Moment{t: best.instant(loc)}
}

const (
	meridiemNone = iota
	meridiemAM
	meridiemPM
)

type parseResult struct {
	fields    [7]int
	dayOfYear int
	meridiem  int
	offset    int // minutes east of UTC
	hasOffset bool

	tokens   int
	matched  int
	missed   int
	leftover int
}

// parseLayout matches input against layout. Unmatched tokens and literals are
// counted rather than aborting so layouts can be ranked.
func parseLayout(l *Locale, input, layout string) parseResult {
	r := parseResult{fields: [7]int{0, 0, 1, 0, 0, 0, 0}}
	rest := input
	for _, tok := range compiledLayout(l, layout) {
		if tok.kind == tokLiteral {
			rest = r.matchLiteral(rest, tok.text)
			continue
		}
		r.tokens++
		if size := r.matchToken(l, tok, rest); size > 0 {
			r.matched++
			rest = rest[size:]
		}
	}
	r.leftover = utf8.RuneCountInString(rest)
	return r
}

// matchLiteral consumes the runes of literal present in input. Letters compare
// case-insensitively; every missing rune is a penalty.
func (r *parseResult) matchLiteral(input, literal string) string {
	for _, want := range literal {
		got, size := utf8.DecodeRuneInString(input)
		if size > 0 && (got == want || unicode.ToLower(got) == unicode.ToLower(want)) {
			input = input[size:]
			continue
		}
		r.missed++
	}
	return input
}

func (r *parseResult) matchToken(l *Locale, tok token, input string) int {
	switch tok.kind {
	case tokMonth, tokMonthPadded:
		return r.number(input, 1, 2, func(n int) { r.fields[1] = n - 1 })
	case tokMonthOrdinal:
		return r.ordinal(l, input, 2, func(n int) { r.fields[1] = n - 1 })
	case tokMonthShort, tokMonthLong:
		index, size := l.matchMonth(input)
		if index >= 0 {
			r.fields[1] = index
		}
		return size

	case tokDate, tokDatePadded:
		return r.number(input, 1, 2, func(n int) { r.fields[2] = n })
	case tokDateOrdinal:
		return r.ordinal(l, input, 2, func(n int) { r.fields[2] = n })

	case tokDayOfYear, tokDayOfYearPadded:
		return r.number(input, 1, 3, func(n int) { r.dayOfYear = n })
	case tokDayOfYearOrdinal:
		return r.ordinal(l, input, 3, func(n int) { r.dayOfYear = n })

	// Weekday and week numbers are validated for shape only; the date comes
	// from the other fields.
	case tokWeekday, tokWeek, tokWeekPadded:
		return r.number(input, 1, 2, func(int) {})
	case tokWeekdayOrdinal, tokWeekOrdinal:
		return r.ordinal(l, input, 2, func(int) {})
	case tokWeekdayShort, tokWeekdayLong:
		_, size := l.matchWeekday(input)
		return size

	case tokYearShort:
		return r.number(input, 1, 2, func(n int) {
			if n <= TwoDigitYearPivot {
				r.fields[0] = 2000 + n
			} else {
				r.fields[0] = 1900 + n
			}
		})
	case tokYear:
		if strings.HasPrefix(input, "-") {
			size := r.number(input[1:], 1, 4, func(n int) { r.fields[0] = -n })
			if size == 0 {
				return 0
			}
			return size + 1
		}
		return r.number(input, 1, 4, func(n int) { r.fields[0] = n })

	case tokMeridiemLower, tokMeridiemUpper:
		pm, size := l.matchMeridiem(input)
		if size > 0 {
			r.meridiem = meridiemAM
			if pm {
				r.meridiem = meridiemPM
			}
		}
		return size

	case tokHour, tokHourPadded, tokHour12, tokHour12Padded:
		return r.number(input, 1, 2, func(n int) { r.fields[3] = n })
	case tokMinute, tokMinutePadded:
		return r.number(input, 1, 2, func(n int) { r.fields[4] = n })
	case tokSecond, tokSecondPadded:
		return r.number(input, 1, 2, func(n int) { r.fields[5] = n })

	case tokFraction1, tokFraction2, tokFraction3:
		width := len(tok.text)
		value, size := leadingDigits(input, width)
		if size == 0 {
			return 0
		}
		for i := size; i < 3; i++ {
			value *= 10
		}
		r.fields[6] = value
		return size

	case tokOffset, tokOffsetColon:
		offset, size := matchOffset(input)
		if size > 0 {
			r.offset, r.hasOffset = offset, true
		}
		return size

	case tokZoneAbbr:
		size := 0
		for size < len(input) && isASCIILetter(input[size]) {
			size++
		}
		switch strings.ToUpper(input[:size]) {
		case "GMT", "UTC", "Z":
			r.offset, r.hasOffset = 0, true
		}
		return size
	}
	return 0
}

func (r *parseResult) number(input string, minDigits, maxDigits int, set func(int)) int {
	value, size := leadingDigits(input, maxDigits)
	if size < minDigits {
		return 0
	}
	set(value)
	return size
}

// ordinal reads digits followed by the locale's suffix for that number, when
// present.
func (r *parseResult) ordinal(l *Locale, input string, maxDigits int, set func(int)) int {
	value, size := leadingDigits(input, maxDigits)
	if size == 0 {
		return 0
	}
	set(value)
	return size + l.matchOrdinalSuffix(input[size:], value)
}

func leadingDigits(input string, max int) (int, int) {
	value, size := 0, 0
	for size < len(input) && size < max && input[size] >= '0' && input[size] <= '9' {
		value = value*10 + int(input[size]-'0')
		size++
	}
	return value, size
}

// matchOffset reads "Z", "±HH:mm" or "±HHmm" and returns minutes east of UTC.
func matchOffset(input string) (int, int) {
	if input == "" {
		return 0, 0
	}
	if input[0] == 'Z' || input[0] == 'z' {
		return 0, 1
	}
	if input[0] != '+' && input[0] != '-' {
		return 0, 0
	}
	hours, size := leadingDigits(input[1:], 2)
	if size != 2 {
		return 0, 0
	}
	pos := 1 + size
	if pos < len(input) && input[pos] == ':' {
		pos++
	}
	minutes, size := leadingDigits(input[pos:], 2)
	if size != 2 {
		return 0, 0
	}
	offset := hours*60 + minutes
	if input[0] == '-' {
		offset = -offset
	}
	return offset, pos + size
}

func isASCIILetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// overflow counts fields outside their calendar range.
func (r parseResult) overflow() int {
	n := 0
	month := r.fields[1]
	if month < 0 || month > 11 {
		n++
	}
	if r.dayOfYear > 0 {
		if r.dayOfYear > 366 {
			n++
		}
	} else if date := r.fields[2]; date < 1 || (month >= 0 && month <= 11 && date > daysIn(r.fields[0], month)) {
		n++
	}
	if r.fields[3] > 24 {
		n++
	}
	if r.fields[4] > 59 {
		n++
	}
	if r.fields[5] > 59 {
		n++
	}
	return n
}

func (r parseResult) score() int {
	return (r.tokens - r.matched) + r.missed + r.leftover + r.overflow()
}

func (r parseResult) instant(loc *time.Location) time.Time {
	f := r.fields
	switch {
	case r.meridiem == meridiemPM && f[3] < 12:
		f[3] += 12
	case r.meridiem == meridiemAM && f[3] == 12:
		f[3] = 0
	}
	if r.dayOfYear > 0 {
		f[1], f[2] = 0, r.dayOfYear
	}
	if r.hasOffset {
		utc := dateFromFields(f, time.UTC)
		return utc.Add(-time.Duration(r.offset) * time.Minute).In(loc)
	}
	return dateFromFields(f, loc)
}
