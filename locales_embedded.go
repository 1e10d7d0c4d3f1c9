package moment

import (
	"embed"
	"fmt"
	"sync"
)

//go:embed locales/*.yaml
var embeddedLocaleFiles embed.FS

var (
	embeddedOnce   sync.Once
	embeddedTables []*Locale
)

// embeddedLocales decodes the locale files shipped with the package.
func embeddedLocales() []*Locale {
	embeddedOnce.Do(func() {
		tables, err := loadLocaleFS(embeddedLocaleFiles, "locales", "locales")
		if err != nil {
			panic(fmt.Sprintf("moment: embedded locales: %v", err))
		}
		embeddedTables = tables
	})
	return embeddedTables
}

// builtinLocales lists every table registered by NewRegistry, English first.
func builtinLocales() []*Locale {
	locales := make([]*Locale, 0, len(codedLocales)+len(embeddedLocales()))
	for _, build := range codedLocales {
		locales = append(locales, build())
	}
	return append(locales, embeddedLocales()...)
}
