package i18n

import (
	"sort"

	"golang.org/x/text/language"
)

// Match maps a BCP 47 tag such as "fr-CA" or a Discord locale such as
// "en-US" to a loaded locale. Unknown or malformed tags get the default.
func (t *Translator) Match(tag string) string {
	parsed, err := language.Parse(tag)
	if err != nil {
		return t.defaultLocale
	}
	_, idx, conf := t.matcher.Match(parsed)
	if conf == language.No || idx < 0 || idx >= len(t.tags) {
		return t.defaultLocale
	}
	return t.tags[idx].String()
}

// Direction reads meta.direction from the locale's own table.
func (t *Translator) Direction(locale string) string {
	if v, ok := walk(t.tables[t.resolveLocale(locale)], "meta.direction"); ok {
		if s, _ := v.(string); s == "rtl" {
			return "rtl"
		}
	}
	return "ltr"
}

// Coverage lists, per locale, the message ids present in the default locale
// but missing from that locale. Complete locales are omitted.
func (t *Translator) Coverage() map[string][]string {
	base := t.ids[t.defaultLocale]
	out := map[string][]string{}
	for locale, ids := range t.ids {
		if locale == t.defaultLocale {
			continue
		}
		var missing []string
		for id := range base {
			if _, ok := ids[id]; !ok {
				missing = append(missing, id)
			}
		}
		if len(missing) > 0 {
			sort.Strings(missing)
			out[locale] = missing
		}
	}
	return out
}
