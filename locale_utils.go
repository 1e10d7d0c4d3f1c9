package moment

import (
	"strings"

	"golang.org/x/text/language"
)

// legacyLocaleTags maps identifiers kept for compatibility onto their BCP 47 language.
var legacyLocaleTags = map[string]language.Tag{
	"kr": language.Korean,
}

func localeParentTag(locale string) string {
	if locale == "" {
		return ""
	}

	tag, err := language.Parse(locale)
	if err == nil {
		parent := tag.Parent()
		if parent == language.Und {
			return ""
		}
		value := normalizeLocale(parent.String())
		if value == "" || value == "und" {
			return ""
		}
		return value
	}

	if idx := strings.LastIndex(locale, "-"); idx > 0 {
		return locale[:idx]
	}

	return ""
}

func localeParentChain(locale string) []string {
	if locale == "" {
		return nil
	}

	var chain []string
	seen := make(map[string]struct{}, 4)

	if tag, err := language.Parse(locale); err == nil {
		for parent := tag.Parent(); parent != language.Und; parent = parent.Parent() {
			parentValue := normalizeLocale(parent.String())
			if parentValue == "" || parentValue == "und" {
				break
			}
			if _, exists := seen[parentValue]; exists {
				break
			}
			seen[parentValue] = struct{}{}
			chain = append(chain, parentValue)
		}
	}

	for current := localeParentTag(locale); current != ""; current = localeParentTag(current) {
		if _, exists := seen[current]; exists {
			continue
		}
		seen[current] = struct{}{}
		chain = append(chain, current)
	}

	return chain
}

// localeCandidates lists the identifiers tried when resolving locale, closest first.
func localeCandidates(locale string, resolver FallbackResolver) []string {
	locale = normalizeLocale(locale)
	if locale == "" {
		return nil
	}

	candidates := []string{locale}
	if resolver != nil {
		candidates = append(candidates, resolver.Resolve(locale)...)
	}
	candidates = append(candidates, localeParentChain(locale)...)

	seen := make(map[string]struct{}, len(candidates))
	result := candidates[:0]
	for _, candidate := range candidates {
		candidate = normalizeLocale(candidate)
		if candidate == "" {
			continue
		}
		if _, exists := seen[candidate]; exists {
			continue
		}
		seen[candidate] = struct{}{}
		result = append(result, candidate)
	}
	return result
}

// localeTag returns the language tag used for plural rules and case folding.
func localeTag(locale string) language.Tag {
	locale = normalizeLocale(locale)
	if tag, ok := legacyLocaleTags[locale]; ok {
		return tag
	}
	if tag, err := language.Parse(locale); err == nil {
		return tag
	}
	return language.English
}

// normalizeLocale normalizes a single locale identifier by replacing
// underscores with hyphens, trimming whitespace and lowercasing.
func normalizeLocale(locale string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(locale), "_", "-"))
}
