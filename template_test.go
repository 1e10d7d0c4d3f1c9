package moment

import (
	"bytes"
	"testing"
	"text/template"
	"time"
)

func TestTemplateHelpersFormatInferredLocale(t *testing.T) {
	registry := NewRegistry()
	helpers := TemplateHelpers(registry, HelperConfig{LocaleKey: "current_locale"})

	format, ok := helpers["moment_format"].(func(any, any, string) string)
	if !ok {
		t.Fatalf("moment_format helper signature mismatch: %T", helpers["moment_format"])
	}

	value := time.Date(2010, time.February, 14, 15, 25, 0, 0, time.UTC)
	ctx := map[string]any{"current_locale": "fr"}

	if got := format(ctx, value, "D MMMM"); got != "14 février" {
		t.Fatalf("moment_format inferred locale = %q", got)
	}
	if got := format("de", value, "D. MMMM"); got != "14. Februar" {
		t.Fatalf("moment_format explicit locale = %q", got)
	}
	if got := format(map[string]string{"current_locale": "es"}, value, "MMMM"); got != "Febrero" {
		t.Fatalf("moment_format string map = %q", got)
	}
	if got := format(nil, value, "MMMM"); got != "February" {
		t.Fatalf("moment_format current locale = %q", got)
	}
}

func TestTemplateHelpersValues(t *testing.T) {
	helpers := TemplateHelpers(NewRegistry(), HelperConfig{DefaultLayout: "YYYY-MM-DD"})
	format := helpers["moment_format"].(func(any, any, string) string)

	m := FromFields(2010, 1, 14)
	value := m.Time()
	cases := []struct {
		name  string
		value any
		want  string
	}{
		{"moment", m, "2010-02-14"},
		{"moment pointer", &m, "2010-02-14"},
		{"time", value, "2010-02-14"},
		{"time pointer", &value, "2010-02-14"},
		{"millis", m.UnixMilli(), "2010-02-14"},
		{"int", 0, "1970-01-01"},
		{"string", "2010-02-14T00:00:00Z", "2010-02-14"},
		{"unsupported", 3.5, InvalidDate},
		{"nil moment", (*Moment)(nil), InvalidDate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := format("en", tc.value, ""); got != tc.want {
				t.Fatalf("moment_format = %q; want %q", got, tc.want)
			}
		})
	}
}

func TestTemplateHelpersRelative(t *testing.T) {
	withClock(t, time.Date(2010, time.February, 14, 12, 0, 0, 0, time.UTC))
	helpers := TemplateHelpers(NewRegistry(), HelperConfig{})

	fromNow := helpers["moment_from_now"].(func(any, any) string)
	calendar := helpers["moment_calendar"].(func(any, any) string)

	value := time.Date(2010, time.February, 14, 9, 0, 0, 0, time.UTC)
	if got := fromNow("en", value); got != "3 hours ago" {
		t.Fatalf("moment_from_now = %q", got)
	}
	if got := fromNow(map[string]any{"locale": "fr"}, value); got != "il y a 3 heures" {
		t.Fatalf("moment_from_now fr = %q", got)
	}
	if got := calendar("en", value.AddDate(0, 0, 1)); got != "Tomorrow at 9:00 AM" {
		t.Fatalf("moment_calendar = %q", got)
	}
}

func TestTemplateHelpersInTemplate(t *testing.T) {
	helpers := TemplateHelpers(NewRegistry(), HelperConfig{})

	tmpl, err := template.New("page").
		Funcs(template.FuncMap(helpers)).
		Parse(`{{ moment_format . .When "dddd LL" }}`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	data := map[string]any{
		"locale": "de",
		"When":   time.Date(2010, time.February, 14, 0, 0, 0, 0, time.UTC),
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got := buf.String(); got != "Sonntag 14. Februar 2010" {
		t.Fatalf("rendered %q", got)
	}
}
