// Command i18ncheck reports translation keys missing from non-default
// locales. It exits with status 1 when a locale file fails to load or a key
// is missing.
package main

import (
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"sort"

	"sitedesk/internal/infrastructure/i18n"
)

func main() {
	dir := flag.String("dir", "", "directory holding active.*.toml (defaults to the embedded files)")
	def := flag.String("default", i18n.DefaultLocale, "reference locale")
	flag.Parse()

	var fsys fs.FS = i18n.Embedded()
	if *dir != "" {
		fsys = os.DirFS(*dir)
	}

	tr, err := i18n.NewTranslatorFS(fsys, *def)
	if err != nil {
		log.Printf("❌ %v", err)
		os.Exit(1)
	}

	gaps := tr.Coverage()
	if len(gaps) == 0 {
		fmt.Printf("✅ %d locales, aucune clé manquante\n", len(tr.Locales()))
		return
	}
	locales := make([]string, 0, len(gaps))
	for l := range gaps {
		locales = append(locales, l)
	}
	sort.Strings(locales)
	for _, l := range locales {
		fmt.Printf("⚠️ %s: %d clé(s) manquante(s)\n", l, len(gaps[l]))
		for _, key := range gaps[l] {
			fmt.Printf("  - %s\n", key)
		}
	}
	os.Exit(1)
}
