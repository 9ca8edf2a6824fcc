package slug

import (
	"regexp"
	"strings"
)

var slugRegexp = regexp.MustCompile(`[^a-z0-9]+`)

// Generate creates a URL-friendly slug from the given name.
// Supports Lithuanian characters by transliterating them to ASCII equivalents.
//
// Examples:
//   - "Statybinės medžiagos" → "statybines-medziagos"
//   - "Vonios įranga" → "vonios-iranga"
//   - "Hello   World!" → "hello-world"
func Generate(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))

	// Transliterate Lithuanian characters to ASCII
	replacer := strings.NewReplacer(
		"ą", "a", "č", "c", "ę", "e", "ė", "e", "į", "i",
		"š", "s", "ų", "u", "ū", "u", "ž", "z",
	)
	slug = replacer.Replace(slug)

	// Replace any non-alphanumeric characters with hyphens
	slug = slugRegexp.ReplaceAllString(slug, "-")

	// Trim leading and trailing hyphens
	slug = strings.Trim(slug, "-")

	// Collapse consecutive hyphens into single hyphens
	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}

	return slug
}
