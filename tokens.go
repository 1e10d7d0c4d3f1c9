package moment

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"github.com/patrickmn/go-cache"
)

type tokenKind int

const (
	tokLiteral tokenKind = iota
	tokMonth
	tokMonthOrdinal
	tokMonthPadded
	tokMonthShort
	tokMonthLong
	tokDate
	tokDateOrdinal
	tokDatePadded
	tokDayOfYear
	tokDayOfYearOrdinal
	tokDayOfYearPadded
	tokWeekday
	tokWeekdayOrdinal
	tokWeekdayShort
	tokWeekdayLong
	tokWeek
	tokWeekOrdinal
	tokWeekPadded
	tokYearShort
	tokYear
	tokMeridiemLower
	tokMeridiemUpper
	tokHour
	tokHourPadded
	tokHour12
	tokHour12Padded
	tokMinute
	tokMinutePadded
	tokSecond
	tokSecondPadded
	tokFraction1
	tokFraction2
	tokFraction3
	tokZoneAbbr
	tokOffsetColon
	tokOffset
)

// tokenTable is ordered so the longest token sharing a prefix comes first.
var tokenTable = []struct {
	text string
	kind tokenKind
}{
	{"MMMM", tokMonthLong}, {"MMM", tokMonthShort}, {"Mo", tokMonthOrdinal}, {"MM", tokMonthPadded}, {"M", tokMonth},
	{"DDDD", tokDayOfYearPadded}, {"DDDo", tokDayOfYearOrdinal}, {"DDD", tokDayOfYear},
	{"Do", tokDateOrdinal}, {"DD", tokDatePadded}, {"D", tokDate},
	{"dddd", tokWeekdayLong}, {"ddd", tokWeekdayShort}, {"do", tokWeekdayOrdinal}, {"d", tokWeekday},
	{"wo", tokWeekOrdinal}, {"ww", tokWeekPadded}, {"w", tokWeek},
	{"YYYY", tokYear}, {"YY", tokYearShort},
	{"a", tokMeridiemLower}, {"A", tokMeridiemUpper},
	{"HH", tokHourPadded}, {"H", tokHour}, {"hh", tokHour12Padded}, {"h", tokHour12},
	{"mm", tokMinutePadded}, {"m", tokMinute},
	{"ss", tokSecondPadded}, {"s", tokSecond},
	{"SSS", tokFraction3}, {"SS", tokFraction2}, {"S", tokFraction1},
	{"zz", tokZoneAbbr}, {"z", tokZoneAbbr},
	{"ZZ", tokOffset}, {"Z", tokOffsetColon},
}

// maxLongDateDepth bounds recursive expansion of presets referring to presets.
const maxLongDateDepth = 5

type token struct {
	kind tokenKind
	text string
}

func compileLayout(l *Locale, layout string) []token {
	return appendLayoutTokens(nil, l, layout, 0)
}

func appendLayoutTokens(dst []token, l *Locale, layout string, depth int) []token {
	for i := 0; i < len(layout); {
		switch c := layout[i]; {
		case c == '[':
			if end := strings.IndexByte(layout[i+1:], ']'); end >= 0 {
				dst = appendLiteral(dst, layout[i+1:i+1+end])
				i += end + 2
				continue
			}
			dst = appendLiteral(dst, "[")
			i++
			continue
		case c == '\\' && i+1 < len(layout):
			_, size := utf8.DecodeRuneInString(layout[i+1:])
			dst = appendLiteral(dst, layout[i+1:i+1+size])
			i += 1 + size
			continue
		case c == 'L' && depth < maxLongDateDepth:
			if key, ok := longDatePrefix(layout[i:]); ok {
				dst = appendLayoutTokens(dst, l, l.longDateFormat(key), depth+1)
				i += len(key)
				continue
			}
		}

		if tok, ok := tokenPrefix(layout[i:]); ok {
			dst = append(dst, tok)
			i += len(tok.text)
			continue
		}

		_, size := utf8.DecodeRuneInString(layout[i:])
		dst = appendLiteral(dst, layout[i:i+size])
		i += size
	}
	return dst
}

func longDatePrefix(layout string) (LongDateKey, bool) {
	for _, key := range []LongDateKey{FormatLLLL, FormatLLL, FormatLL, FormatLT, FormatL} {
		if strings.HasPrefix(layout, string(key)) {
			return key, true
		}
	}
	return "", false
}

func tokenPrefix(layout string) (token, bool) {
	for _, entry := range tokenTable {
		if strings.HasPrefix(layout, entry.text) {
			return token{kind: entry.kind, text: entry.text}, true
		}
	}
	return token{}, false
}

func appendLiteral(dst []token, text string) []token {
	if text == "" {
		return dst
	}
	if n := len(dst); n > 0 && dst[n-1].kind == tokLiteral {
		dst[n-1].text += text
		return dst
	}
	return append(dst, token{kind: tokLiteral, text: text})
}

const (
	defaultLayoutCacheTTL     = 30 * time.Minute
	defaultLayoutCacheCleanup = 10 * time.Minute
)

var layoutCache atomic.Pointer[cache.Cache]

func init() {
	layoutCache.Store(cache.New(defaultLayoutCacheTTL, defaultLayoutCacheCleanup))
}

// configureLayoutCache replaces the compiled-layout cache. A negative ttl
// keeps entries until the next flush.
func configureLayoutCache(ttl, cleanup time.Duration) {
	if ttl < 0 {
		ttl = cache.NoExpiration
	}
	layoutCache.Store(cache.New(ttl, cleanup))
}

func flushLayoutCache() {
	layoutCache.Load().Flush()
}

// compiledLayout returns the tokens of layout for l, compiling on a miss.
func compiledLayout(l *Locale, layout string) []token {
	key := fmt.Sprintf("%s\x00%p\x00%s", l.ID, l, layout)
	c := layoutCache.Load()
	if cached, ok := c.Get(key); ok {
		if tokens, ok := cached.([]token); ok {
			return tokens
		}
	}
	tokens := compileLayout(l, layout)
	c.SetDefault(key, tokens)
	return tokens
}
