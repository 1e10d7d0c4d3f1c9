package moment

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// aspNetDate matches "Date(1318781876406)" and "/Date(1318781876406-0700)/".
var aspNetDate = regexp.MustCompile(`(?i)^/?Date\((-?\d+)([+-]\d{4})?\)/?$`)

// freeTextLayouts are tried in order when Parse receives no layout.
var freeTextLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.000Z0700",
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"Mon Jan 02 2006 15:04:05 GMT-0700",
	time.RFC1123Z,
	time.RFC1123,
	time.RFC850,
	time.RFC822Z,
	time.RFC822,
	time.ANSIC,
	time.UnixDate,
	time.RubyDate,
	"January 2, 2006 15:04:05",
	"January 2, 2006",
	"Jan 2, 2006",
	"Jan 2 2006",
	"2 January 2006",
	"2 Jan 2006",
	"01/02/2006 15:04:05",
	"01/02/2006",
	"2006/01/02",
}

var naturalParser = sync.OnceValue(func() *when.Parser {
	parser := when.New(nil)
	parser.Add(en.All...)
	parser.Add(common.All...)
	return parser
})

func parseFreeText(input string, loc *time.Location) Moment {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return invalid(fmt.Errorf("%w: empty input", ErrInvalidInput))
	}

	if match := aspNetDate.FindStringSubmatch(trimmed); match != nil {
		return parseASPNetDate(match, loc)
	}

	for _, layout := range freeTextLayouts {
		if t, err := time.ParseInLocation(layout, trimmed, loc); err == nil {
			Logger().Debug("moment: free text layout matched", logKeyInput, input, logKeyLayout, layout)
			return FromTime(t.In(loc))
		}
	}

	result, err := naturalParser().Parse(trimmed, NowFunc().In(loc))
	if err == nil && result != nil && strings.EqualFold(strings.TrimSpace(result.Text), trimmed) {
		Logger().Debug("moment: natural language match", logKeyInput, input, "text", result.Text)
		return FromTime(result.Time.In(loc))
	}
	return invalid(fmt.Errorf("%w: %q", ErrInvalidInput, input))
}

// parseASPNetDate keeps the encoded instant and presents it in the encoded
// offset when one is given.
func parseASPNetDate(match []string, loc *time.Location) Moment {
	ms, err := strconv.ParseInt(match[1], 10, 64)
	if err != nil {
		return invalid(fmt.Errorf("%w: %v", ErrInvalidInput, err))
	}
	t := time.UnixMilli(ms).In(loc)
	if raw := match[2]; raw != "" {
		offset, _ := matchOffset(raw)
		t = t.In(time.FixedZone("", offset*60))
	}
	return FromTime(t)
}
