package output

// Translator exposes a minimal i18n contract for user-facing messages.
// Implementations provide message lookup + templating for a given locale.
type T interface {
	// T renders the message identified by key for the given locale.
	// data is an optional map used for {{placeholder}} substitution (may be nil).
	T(locale, key string, data map[string]any) string
}

// Locales negotiates the locale a user receives.
type Locales interface {
	// Match maps any BCP 47 tag (e.g. "fr-CA") to a supported locale.
	Match(tag string) string
	// Direction returns "rtl" or "ltr".
	Direction(locale string) string
}
