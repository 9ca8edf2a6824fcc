// Package translate fans a base-locale record out into one translation row
// per supported locale, filling gaps from the base locale.
package translate

import (
	"sort"
	"strings"
)

// Fields is a mapping of translatable column name to value.
type Fields map[string]string

// Translation is a locale-scoped projection of an entity's human-readable
// fields, ready to be persisted under an (entity, locale) composite key.
type Translation struct {
	Locale string
	Slug   string
	Fields Fields
}

// ParseLocales splits a comma-separated locale list from configuration.
// Empty entries are dropped, duplicates collapsed, first-seen order kept.
// The base locale is always included, listed first regardless of where,
// or whether, it appears in the raw string.
func ParseLocales(raw, base string) []string {
	seen := map[string]bool{base: true}
	locales := []string{base}

	for _, part := range strings.Split(raw, ",") {
		loc := strings.TrimSpace(part)
		if loc == "" || seen[loc] {
			continue
		}
		seen[loc] = true
		locales = append(locales, loc)
	}

	return locales
}

// FanOut produces one Translation per locale. Field values resolve in
// order: the locale-specific source, the base-locale source, then the base
// record itself, so a field is never left empty when the base had a value.
//
// Slug handling: the base locale keeps the canonical slug; other locales
// get a locale-qualified slug (canonical + "-" + locale) unless their
// source supplies an explicit "slug" field.
func FanOut(base Fields, canonicalSlug, baseLocale string, locales []string, perLocale map[string]Fields) []Translation {
	baseSource := perLocale[baseLocale]

	out := make([]Translation, 0, len(locales))
	for _, locale := range locales {
		source := perLocale[locale]

		fields := make(Fields, len(base))
		for _, key := range fieldKeys(base, baseSource, source) {
			if key == "slug" {
				continue
			}
			switch {
			case source[key] != "":
				fields[key] = source[key]
			case baseSource[key] != "":
				fields[key] = baseSource[key]
			case base[key] != "":
				fields[key] = base[key]
			}
		}

		slug := canonicalSlug
		switch {
		case source["slug"] != "":
			slug = source["slug"]
		case locale != baseLocale && canonicalSlug != "":
			slug = canonicalSlug + "-" + locale
		}

		out = append(out, Translation{
			Locale: locale,
			Slug:   slug,
			Fields: fields,
		})
	}

	return out
}

// fieldKeys returns the union of keys across the given field maps in a
// stable order: each map's keys sorted, base record keys first, then any
// source-only keys.
func fieldKeys(maps ...Fields) []string {
	seen := make(map[string]bool)
	var keys []string
	for _, m := range maps {
		for _, key := range sortedKeys(m) {
			if !seen[key] {
				seen[key] = true
				keys = append(keys, key)
			}
		}
	}
	return keys
}

func sortedKeys(m Fields) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
