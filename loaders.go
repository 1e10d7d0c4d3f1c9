package moment

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Loader produces locale tables for registration.
type Loader interface {
	Load() ([]*Locale, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func() ([]*Locale, error)

func (f LoaderFunc) Load() ([]*Locale, error) {
	if f == nil {
		return nil, nil
	}
	return f()
}

// FileLoader reads one locale table per YAML or JSON file.
type FileLoader struct {
	paths []string
}

func NewFileLoader(paths ...string) *FileLoader {
	return &FileLoader{paths: append([]string(nil), paths...)}
}

func (l *FileLoader) Load() ([]*Locale, error) {
	if l == nil || len(l.paths) == 0 {
		return nil, errors.New("moment: no loader paths configured")
	}

	locales := make([]*Locale, 0, len(l.paths))
	for _, p := range l.paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("moment: read %s: %w", p, err)
		}
		locale, err := DecodeLocale(p, data)
		if err != nil {
			return nil, fmt.Errorf("moment: decode %s: %w", p, err)
		}
		locales = append(locales, locale)
	}
	return locales, nil
}

// LoadLocaleDir decodes every .yaml, .yml and .json file of dir in name order.
// Other files are skipped.
func LoadLocaleDir(dir string) ([]*Locale, error) {
	return loadLocaleFS(os.DirFS(dir), ".", dir)
}

func loadLocaleFS(fsys fs.FS, dir, label string) ([]*Locale, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("moment: read locale dir %s: %w", label, err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	var locales []*Locale
	for _, entry := range entries {
		if entry.IsDir() || !isLocaleFile(entry.Name()) {
			continue
		}
		name := path.Join(dir, entry.Name())
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("moment: read %s: %w", filepath.Join(label, entry.Name()), err)
		}
		locale, err := DecodeLocale(entry.Name(), data)
		if err != nil {
			return nil, fmt.Errorf("moment: decode %s: %w", filepath.Join(label, entry.Name()), err)
		}
		Logger().Debug("moment: decoded locale file",
			logKeyPath, filepath.Join(label, entry.Name()),
			logKeyLocale, locale.ID,
		)
		locales = append(locales, locale)
	}
	return locales, nil
}

func isLocaleFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}

// DecodeLocale decodes a locale table. The extension of name selects the
// decoder; the identifier is read from the "locale" key or, when absent, from
// the file name without extension.
func DecodeLocale(name string, data []byte) (*Locale, error) {
	var raw localeFile
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("yaml parse error: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: extension %q", ErrUnsupportedLocaleFile, ext)
	}

	if raw.Locale == "" {
		base := filepath.Base(name)
		raw.Locale = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return raw.build()
}

type localeFile struct {
	Locale         string                `yaml:"locale" json:"locale"`
	Tag            string                `yaml:"tag" json:"tag"`
	FirstDayOfWeek int                   `yaml:"first_day_of_week" json:"first_day_of_week"`
	Months         []string              `yaml:"months" json:"months"`
	MonthsShort    []string              `yaml:"months_short" json:"months_short"`
	Weekdays       []string              `yaml:"weekdays" json:"weekdays"`
	WeekdaysShort  []string              `yaml:"weekdays_short" json:"weekdays_short"`
	Ordinal        *ordinalSpec          `yaml:"ordinal" json:"ordinal"`
	Meridiem       *meridiemSpec         `yaml:"meridiem" json:"meridiem"`
	LongDateFormat map[string]string     `yaml:"long_date_format" json:"long_date_format"`
	RelativeTime   map[string]phraseSpec `yaml:"relative_time" json:"relative_time"`
	Calendar       map[string]string     `yaml:"calendar" json:"calendar"`
}

type ordinalSpec struct {
	System string  `yaml:"system" json:"system"`
	Suffix *string `yaml:"suffix" json:"suffix"`
}

type meridiemSpec struct {
	AM      string `yaml:"am" json:"am"`
	PM      string `yaml:"pm" json:"pm"`
	AMUpper string `yaml:"am_upper" json:"am_upper"`
	PMUpper string `yaml:"pm_upper" json:"pm_upper"`
}

// phraseSpec is either a single template or a map of plural categories.
type phraseSpec struct {
	single string
	forms  map[PluralCategory]string
}

func (p *phraseSpec) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		return node.Decode(&p.single)
	case yaml.MappingNode:
		var raw map[string]string
		if err := node.Decode(&raw); err != nil {
			return err
		}
		return p.setForms(raw)
	default:
		return fmt.Errorf("unsupported phrase value at line %d", node.Line)
	}
}

func (p *phraseSpec) UnmarshalJSON(data []byte) error {
	if err := json.Unmarshal(data, &p.single); err == nil {
		return nil
	}
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("unsupported phrase payload")
	}
	return p.setForms(raw)
}

func (p *phraseSpec) setForms(raw map[string]string) error {
	if len(raw) == 0 {
		return errors.New("no plural forms defined")
	}
	p.forms = make(map[PluralCategory]string, len(raw))
	for category, template := range raw {
		cat, err := parsePluralCategory(category)
		if err != nil {
			return err
		}
		p.forms[cat] = template
	}
	return nil
}

func (p phraseSpec) phrase(tag language.Tag) RelativePhrase {
	if len(p.forms) > 0 {
		return PluralPhrase(tag, p.forms)
	}
	return Phrase(p.single)
}

func (p phraseSpec) text() string {
	if p.single != "" {
		return p.single
	}
	return p.forms[PluralOther]
}

func (raw localeFile) build() (*Locale, error) {
	id := normalizeLocale(raw.Locale)
	if id == "" {
		return nil, fmt.Errorf("%w: empty locale identifier", ErrInvalidLocale)
	}

	locale := &Locale{
		ID:             id,
		Tag:            localeTag(id),
		Months:         raw.Months,
		MonthsShort:    raw.MonthsShort,
		Weekdays:       raw.Weekdays,
		WeekdaysShort:  raw.WeekdaysShort,
		FirstDayOfWeek: time.Weekday(raw.FirstDayOfWeek),
	}
	if raw.Tag != "" {
		tag, err := language.Parse(raw.Tag)
		if err != nil {
			return nil, fmt.Errorf("%w: tag %q: %v", ErrInvalidLocale, raw.Tag, err)
		}
		locale.Tag = tag
	}

	if raw.Ordinal != nil {
		ordinal, err := raw.Ordinal.build()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", id, err)
		}
		locale.Ordinal = ordinal
	}
	if m := raw.Meridiem; m != nil {
		if m.AM == "" || m.PM == "" {
			return nil, fmt.Errorf("%w: %s: meridiem needs am and pm", ErrInvalidLocale, id)
		}
		amUpper, pmUpper := m.AMUpper, m.PMUpper
		if amUpper == "" {
			amUpper = strings.ToUpper(m.AM)
		}
		if pmUpper == "" {
			pmUpper = strings.ToUpper(m.PM)
		}
		locale.Meridiem = MeridiemWords(m.AM, m.PM, amUpper, pmUpper)
	}

	if len(raw.LongDateFormat) > 0 {
		locale.LongDateFormat = make(map[LongDateKey]string, len(raw.LongDateFormat))
		for key, layout := range raw.LongDateFormat {
			locale.LongDateFormat[LongDateKey(key)] = layout
		}
	}

	if len(raw.RelativeTime) > 0 {
		locale.RelativeTime.Units = make(map[RelativeKey]RelativePhrase, len(relativeKeys))
		for key, spec := range raw.RelativeTime {
			switch key {
			case "future":
				locale.RelativeTime.Future = spec.text()
			case "past":
				locale.RelativeTime.Past = spec.text()
			default:
				if !isRelativeKey(RelativeKey(key)) {
					return nil, fmt.Errorf("%w: %s: unknown relative time key %q", ErrInvalidLocale, id, key)
				}
				locale.RelativeTime.Units[RelativeKey(key)] = spec.phrase(locale.Tag)
			}
		}
	}

	if len(raw.Calendar) > 0 {
		locale.Calendar = make(map[CalendarKey]CalendarPhrase, len(raw.Calendar))
		for key, layout := range raw.Calendar {
			if !isCalendarKey(CalendarKey(key)) {
				return nil, fmt.Errorf("%w: %s: unknown calendar key %q", ErrInvalidLocale, id, key)
			}
			locale.Calendar[CalendarKey(key)] = CalendarLayout(layout)
		}
	}

	if err := locale.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", id, err)
	}
	return locale, nil
}

func (o ordinalSpec) build() (OrdinalFunc, error) {
	if o.Suffix != nil {
		return SuffixOrdinal(*o.Suffix), nil
	}
	system := strings.ToLower(strings.TrimSpace(o.System))
	if fn, ok := ordinalSystems[system]; ok {
		return fn, nil
	}
	return nil, fmt.Errorf("%w: unknown ordinal system %q", ErrInvalidLocale, o.System)
}

var ordinalSystems = map[string]OrdinalFunc{
	"english": englishOrdinal,
	"french":  frenchOrdinal,
	"dutch":   dutchOrdinal,
	"swedish": swedishOrdinal,
}

func frenchOrdinal(n int) string {
	if n == 1 {
		return "er"
	}
	return "ème"
}

func dutchOrdinal(n int) string {
	if n == 1 || n == 8 || n >= 20 {
		return "ste"
	}
	return "de"
}

func swedishOrdinal(n int) string {
	if n < 0 {
		n = -n
	}
	if (n%100)/10 == 1 {
		return "e"
	}
	if last := n % 10; last == 1 || last == 2 {
		return "a"
	}
	return "e"
}

func isRelativeKey(key RelativeKey) bool {
	for _, known := range relativeKeys {
		if key == known {
			return true
		}
	}
	return false
}

func isCalendarKey(key CalendarKey) bool {
	for _, known := range calendarKeys {
		if key == known {
			return true
		}
	}
	return false
}
