package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"log"
	"regexp"
	"sort"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"sitedesk/internal/ports/output"
)

//go:embed active.*.toml
var localeFS embed.FS

// Embedded returns the locale files compiled into the binary.
func Embedded() fs.FS { return localeFS }

// Ensure Translator implements the output ports.
var (
	_ output.T       = (*Translator)(nil)
	_ output.Locales = (*Translator)(nil)
)

// DefaultLocale is used when a key is missing from the requested locale.
const DefaultLocale = "en"

// placeholder matches {{name}}; name is any run without braces or spaces.
var placeholder = regexp.MustCompile(`\{\{([^{}\s]+)\}\}`)

// table is one locale's nested mapping; leaves are strings.
type table map[string]any

// Translator resolves dotted keys against per-locale nested tables.
type Translator struct {
	tables        map[string]table
	ids           map[string]map[string]struct{} // locale -> flattened message ids
	defaultLocale string
	tags          []language.Tag
	matcher       language.Matcher
}

// NewTranslator builds a Translator from the embedded active.*.toml files
// using the given default locale (e.g. "en"). Files that fail to load are
// logged and skipped.
func NewTranslator(defaultLocale string) *Translator {
	t, err := NewTranslatorFS(localeFS, defaultLocale)
	if err != nil {
		log.Printf("i18n: %v", err)
	}
	return t
}

// NewTranslatorFS loads every active.<locale>.toml at the root of fsys. The
// returned Translator is usable even when err reports a broken file.
func NewTranslatorFS(fsys fs.FS, defaultLocale string) (*Translator, error) {
	if defaultLocale == "" {
		defaultLocale = DefaultLocale
	}
	t := &Translator{
		tables:        map[string]table{},
		ids:           map[string]map[string]struct{}{},
		defaultLocale: defaultLocale,
	}

	paths, err := fs.Glob(fsys, "active.*.toml")
	if err != nil {
		return t, fmt.Errorf("glob locale files: %w", err)
	}
	sort.Strings(paths)

	var errs []string
	for _, path := range paths {
		if err := t.load(fsys, path); err != nil {
			errs = append(errs, err.Error())
		}
	}
	t.buildMatcher()

	if _, ok := t.tables[defaultLocale]; !ok {
		errs = append(errs, fmt.Sprintf("default locale %q not loaded", defaultLocale))
	}
	if len(errs) > 0 {
		return t, fmt.Errorf("load locales: %s", strings.Join(errs, "; "))
	}
	return t, nil
}

func (t *Translator) load(fsys fs.FS, path string) error {
	buf, err := fs.ReadFile(fsys, path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	// go-i18n derives the locale from the file name and flattens nested
	// tables into dotted message ids.
	mf, err := i18n.ParseMessageFileBytes(buf, path, map[string]i18n.UnmarshalFunc{"toml": toml.Unmarshal})
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	var tbl table
	if err := toml.Unmarshal(buf, &tbl); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	locale := mf.Tag.String()
	ids := make(map[string]struct{}, len(mf.Messages))
	for _, m := range mf.Messages {
		ids[m.ID] = struct{}{}
	}
	t.tables[locale] = tbl
	t.ids[locale] = ids
	return nil
}

// buildMatcher puts the default locale first so unmatched tags resolve to it.
func (t *Translator) buildMatcher() {
	t.tags = t.tags[:0]
	if _, ok := t.tables[t.defaultLocale]; ok {
		t.tags = append(t.tags, language.Make(t.defaultLocale))
	}
	for _, l := range t.Locales() {
		if l != t.defaultLocale {
			t.tags = append(t.tags, language.Make(l))
		}
	}
	if len(t.tags) == 0 {
		t.tags = append(t.tags, language.Make(t.defaultLocale))
	}
	t.matcher = language.NewMatcher(t.tags)
}

// Locales returns the loaded locales, sorted.
func (t *Translator) Locales() []string {
	out := make([]string, 0, len(t.tables))
	for l := range t.tables {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

// Lookup walks key through locale's table, then through the default
// locale's. The node is returned as stored: a string leaf or a nested table.
func (t *Translator) Lookup(locale, key string) (any, bool) {
	if tbl, ok := t.tables[t.resolveLocale(locale)]; ok {
		if v, ok := walk(tbl, key); ok {
			return v, true
		}
	}
	if tbl, ok := t.tables[t.defaultLocale]; ok {
		return walk(tbl, key)
	}
	return nil, false
}

// T renders the message identified by key for the given locale.
// If the key/locale is not found, it falls back to the default locale,
// then finally to the key itself.
func (t *Translator) T(locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}
	node, ok := t.Lookup(locale, key)
	if !ok {
		log.Printf("i18n: missing key (key=%s, locale=%s)", key, locale)
		return key
	}
	s, ok := node.(string)
	if !ok {
		log.Printf("i18n: key is not a message (key=%s, locale=%s)", key, locale)
		return key
	}
	return Interpolate(s, data)
}

// resolveLocale keeps exact table names and negotiates anything else.
func (t *Translator) resolveLocale(locale string) string {
	if _, ok := t.tables[locale]; ok {
		return locale
	}
	return t.Match(locale)
}

func walk(tbl table, key string) (any, bool) {
	var node any = map[string]any(tbl)
	for _, seg := range strings.Split(key, ".") {
		m, ok := node.(map[string]any)
		if !ok {
			return nil, false
		}
		node, ok = m[seg]
		if !ok {
			return nil, false
		}
	}
	return node, true
}

// Interpolate replaces every {{name}} with data[name]. Placeholders without a
// value are left untouched.
func Interpolate(s string, data map[string]any) string {
	if len(data) == 0 || !strings.Contains(s, "{{") {
		return s
	}
	return placeholder.ReplaceAllStringFunc(s, func(m string) string {
		v, ok := data[m[2:len(m)-2]]
		if !ok {
			return m
		}
		return fmt.Sprint(v)
	})
}
