// Package locale holds the message catalogs for the game's narrative text.
// English strings are the message ids, so English needs no catalog.
package locale

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/leonelquinteros/gotext"
)

// DefaultLanguage is the language the message ids are written in.
const DefaultLanguage = "en"

//go:embed *.po
var catalogFS embed.FS

// Catalog translates messages for one language.
type Catalog struct {
	lang string
	po   *gotext.Po
}

// Languages returns every supported language code, sorted.
func Languages() []string {
	langs := []string{DefaultLanguage}
	entries, _ := catalogFS.ReadDir(".")
	for _, e := range entries {
		if name := e.Name(); path.Ext(name) == ".po" {
			langs = append(langs, strings.TrimSuffix(name, ".po"))
		}
	}
	sort.Strings(langs)
	return langs
}

// Normalize turns locale names such as "fr_FR.UTF-8" into a bare language code.
func Normalize(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if i := strings.IndexAny(lang, "_-.@"); i >= 0 {
		lang = lang[:i]
	}
	if lang == "" || lang == "c" || lang == "posix" {
		return DefaultLanguage
	}
	return lang
}

// Load returns the catalog for lang.
func Load(lang string) (*Catalog, error) {
	lang = Normalize(lang)

	po := gotext.NewPo()
	if lang == DefaultLanguage {
		return &Catalog{lang: lang, po: po}, nil
	}

	buf, err := catalogFS.ReadFile(lang + ".po")
	if err != nil {
		return nil, fmt.Errorf("unsupported language %q (available: %s)", lang, strings.Join(Languages(), ", "))
	}
	po.Parse(buf)

	return &Catalog{lang: lang, po: po}, nil
}

// Default returns the English catalog.
func Default() *Catalog {
	return &Catalog{lang: DefaultLanguage, po: gotext.NewPo()}
}

// Language returns the catalog's language code.
func (c *Catalog) Language() string {
	return c.lang
}

// Get translates msg and formats it with args.
// Untranslated messages are formatted as-is.
func (c *Catalog) Get(msg string, args ...any) string {
	return c.po.Get(msg, args...)
}
