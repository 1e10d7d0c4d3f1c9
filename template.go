package moment

import (
	"time"
)

// HelperConfig configures template helper exports
type HelperConfig struct {
	// LocaleKey names the entry holding the locale when a helper receives a
	// template data map instead of a locale identifier.
	LocaleKey string
	// DefaultLayout is used by moment_format when the layout is empty.
	DefaultLayout string
}

// TemplateHelpers exposes moment helpers for text/template and html/template.
// Each helper takes a locale (an identifier or a data map) followed by the
// value, which may be a Moment, a time.Time, epoch milliseconds or a string.
func TemplateHelpers(registry *Registry, cfg HelperConfig) map[string]any {
	if registry == nil {
		registry = DefaultRegistry()
	}
	if cfg.LocaleKey == "" {
		cfg.LocaleKey = "locale"
	}

	locale := func(localeOrCtx any) *Locale {
		switch v := localeOrCtx.(type) {
		case string:
			if v != "" {
				return registry.Locale(v)
			}
		case map[string]any:
			if id, ok := v[cfg.LocaleKey].(string); ok && id != "" {
				return registry.Locale(id)
			}
		case map[string]string:
			if id := v[cfg.LocaleKey]; id != "" {
				return registry.Locale(id)
			}
		}
		return registry.Current()
	}

	return map[string]any{
		"moment_format": func(localeOrCtx any, value any, layout string) string {
			if layout == "" {
				layout = cfg.DefaultLayout
			}
			return locale(localeOrCtx).Format(helperMoment(value), layout)
		},
		"moment_from_now": func(localeOrCtx any, value any) string {
			return locale(localeOrCtx).From(helperMoment(value), Now(), false)
		},
		"moment_calendar": func(localeOrCtx any, value any) string {
			return locale(localeOrCtx).CalendarFrom(helperMoment(value), Now())
		},
	}
}

func helperMoment(value any) Moment {
	switch v := value.(type) {
	case Moment:
		return v
	case *Moment:
		if v != nil {
			return *v
		}
	case time.Time:
		return FromTime(v)
	case *time.Time:
		if v != nil {
			return FromTime(*v)
		}
	case int64:
		return FromUnixMilli(v)
	case int:
		return FromUnixMilli(int64(v))
	case string:
		return Parse(v)
	}
	return invalid(ErrInvalidInput)
}
