package deck

import "strings"

// Locale identifies a label language.
type Locale string

const (
	LocaleFR Locale = "fr"
	LocaleEN Locale = "en"
	LocaleES Locale = "es"
)

// AllLocales lists the supported locales in their default fallback order.
var AllLocales = []Locale{LocaleFR, LocaleEN, LocaleES}

// DefaultFallback is the label resolution order applied when the wanted
// locale has no text for an item.
var DefaultFallback = []Locale{LocaleFR, LocaleEN, LocaleES}

// NormalizeLocale maps arbitrary input to a supported locale, defaulting to fr.
func NormalizeLocale(s string) Locale {
	switch Locale(strings.ToLower(strings.TrimSpace(s))) {
	case LocaleEN:
		return LocaleEN
	case LocaleES:
		return LocaleES
	default:
		return LocaleFR
	}
}

// ResolveLabel returns the label for want, walking order when that locale is
// blank. Returns "" when no locale has text.
func ResolveLabel(labels map[Locale]string, want Locale, order []Locale) string {
	if v := strings.TrimSpace(labels[want]); v != "" {
		return v
	}
	for _, l := range order {
		if v := strings.TrimSpace(labels[l]); v != "" {
			return v
		}
	}
	return ""
}
