package main

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	moment "github.com/goliatone/go-moment"
)

func testCLDRPath() string {
	return filepath.Join("testdata", "cldr")
}

func TestParseLocaleSpec(t *testing.T) {
	spec, err := parseLocaleSpec(" pt_BR : br ")
	require.NoError(t, err)
	assert.Equal(t, localeSpec{Locale: "pt-br", Territory: "BR"}, spec)

	spec, err = parseLocaleSpec("eo")
	require.NoError(t, err)
	assert.Equal(t, localeSpec{Locale: "eo"}, spec)

	_, err = parseLocaleSpec("  ")
	assert.Error(t, err)
	_, err = parseLocaleSpec(":US")
	assert.Error(t, err)
}

func TestParseFlags(t *testing.T) {
	fs := flag.NewFlagSet("moment-locales", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg, err := parseFlags(fs, []string{"-cldr", "data", "-locale", "eo,hr:HR", "-locale", "fr", "-out", "dist"})
	require.NoError(t, err)

	assert.Equal(t, "data", cfg.cldrPath)
	assert.Equal(t, "dist", cfg.out)
	assert.Equal(t, []localeSpec{
		{Locale: "eo"},
		{Locale: "hr", Territory: "HR"},
		{Locale: "fr"},
	}, cfg.locales)

	fs = flag.NewFlagSet("moment-locales", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	_, err = parseFlags(fs, []string{"-cldr", "data"})
	assert.Error(t, err)

	t.Setenv("CLDR_CORE_DIR", "")
	fs = flag.NewFlagSet("moment-locales", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	_, err = parseFlags(fs, []string{"-locale", "eo"})
	assert.Error(t, err)
}

func TestConvertPattern(t *testing.T) {
	cases := map[string]string{
		"HH:mm":              "HH:mm",
		"h:mm a":             "h:mm A",
		"d MMMM y":           "D MMMM YYYY",
		"dd.MM.yy":           "DD.MM.YY",
		"EEEE, d. MMMM y":    "dddd, D. MMMM YYYY",
		"EEE d MMM":          "ddd D MMM",
		"d 'de' MMMM 'de' y": "D [de] MMMM [de] YYYY",
		"H 'h' mm":           "H [h] mm",
		"h:mm:ss a zzzz":     "h:mm:ss A z",
		"y'年'M'月'd'日'":       "YYYY[年]M[月]D[日]",
		"G y MMMM d":         "YYYY MMMM D",
		"[d] MMM":            `\[D\] MMM`,
		"ccc, LLL d":         "ddd, MMM D",
		"HH:mm:ss.SSSS":      "HH:mm:ss.SSS",
		"''":                 "'",
	}
	for pattern, want := range cases {
		assert.Equal(t, want, convertPattern(pattern), "pattern %q", pattern)
	}
}

func TestBuildDocument(t *testing.T) {
	data, err := loadCLDR(testCLDRPath())
	require.NoError(t, err)

	doc, err := buildDocument(data, localeSpec{Locale: "eo"})
	require.NoError(t, err)

	assert.Equal(t, "eo", doc.Locale)
	assert.Equal(t, 1, doc.FirstDayOfWeek)
	require.Len(t, doc.Months, 12)
	assert.Equal(t, "februaro", doc.Months[1])
	assert.Equal(t, "aŭg.", doc.MonthsShort[7])
	assert.Equal(t, "dimanĉo", doc.Weekdays[0])
	assert.Equal(t, "ĵa", doc.WeekdaysShort[4])
	require.NotNil(t, doc.Meridiem)
	assert.Equal(t, "atm", doc.Meridiem.AM)
	assert.Equal(t, map[string]string{
		"LT":   "HH:mm",
		"L":    "YY-MM-DD",
		"LL":   "YYYY-MMMM-DD",
		"LLL":  "YYYY-MMMM-DD LT",
		"LLLL": "dddd, D-[a] [de] MMMM YYYY LT",
	}, doc.LongDateFormat)

	us, err := buildDocument(data, localeSpec{Locale: "eo", Territory: "US"})
	require.NoError(t, err)
	assert.Equal(t, 0, us.FirstDayOfWeek)

	_, err = buildDocument(data, localeSpec{Locale: "hr"})
	assert.Error(t, err)
}

func TestRunWritesLoadableLocale(t *testing.T) {
	out := t.TempDir()
	err := run(generatorConfig{
		out:      out,
		cldrPath: testCLDRPath(),
		locales:  []localeSpec{{Locale: "eo"}},
	})
	require.NoError(t, err)

	payload, err := os.ReadFile(filepath.Join(out, "eo.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(payload), "DO NOT EDIT")

	locale, err := moment.DecodeLocale("eo.yaml", payload)
	require.NoError(t, err)

	registry := moment.NewRegistry()
	require.NoError(t, registry.Register(locale.ID, locale))

	m := moment.FromFields(2010, 1, 14, 15, 25).WithLocaleTable(registry.Locale("eo"))
	assert.Equal(t, "dimanĉo, 14-a de februaro 2010 15:25", m.Format("LLLL"))
	assert.Equal(t, "3:25 ptm", m.Format("h:mm a"))
}

func TestLoadCLDRErrors(t *testing.T) {
	_, err := loadCLDR(filepath.Join("testdata", "missing"))
	assert.Error(t, err)

	_, err = loadCLDR(filepath.Join("testdata", "cldr", "main", "eo.xml"))
	assert.Error(t, err)
}
