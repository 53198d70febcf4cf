// Package i18n holds the closed set of user-facing message keys and their
// translations.  Lookups go through golang.org/x/text/message so that the
// language negotiation and the catalog share one implementation.
//
// Arguments are always pre-formatted strings (%s); numbers are rendered by
// the caller so output does not depend on locale digit grouping.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Lang is a supported UI language.
type Lang string

const (
	English Lang = "en"
	Chinese Lang = "zh"
	Spanish Lang = "es"
)

// DefaultLang is used when nothing better matches.
const DefaultLang = English

// Languages lists every supported language; the first is the default.
var Languages = []Lang{English, Chinese, Spanish}

var langTags = map[Lang]language.Tag{
	English: language.English,
	Chinese: language.SimplifiedChinese,
	Spanish: language.Spanish,
}

// Tag returns the BCP 47 tag of l.
func (l Lang) Tag() language.Tag {
	if t, ok := langTags[l]; ok {
		return t
	}
	return language.English
}

// IsValid reports whether l is supported.
func (l Lang) IsValid() bool {
	_, ok := langTags[l]
	return ok
}

var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.SimplifiedChinese,
	language.Spanish,
})

// Match resolves a language code or an Accept-Language header value to the
// closest supported language.  Garbage input yields DefaultLang.
func Match(code string) Lang {
	code = strings.TrimSpace(code)
	if code == "" {
		return DefaultLang
	}
	tags, _, err := language.ParseAcceptLanguage(code)
	if err != nil || len(tags) == 0 {
		return DefaultLang
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return DefaultLang
	}
	return Languages[idx]
}

var cat = buildCatalog()

func buildCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for lang, table := range translations {
		tag := lang.Tag()
		for key, msg := range table {
			// SetString only fails on malformed tags, which the closed Lang
			// set rules out.
			_ = b.SetString(tag, string(key), msg)
		}
	}
	return b
}

// Printer renders messages in one language.
type Printer struct {
	lang Lang
	p    *message.Printer
}

// NewPrinter returns a Printer for lang; unsupported values use DefaultLang.
func NewPrinter(lang Lang) *Printer {
	if !lang.IsValid() {
		lang = DefaultLang
	}
	return &Printer{lang: lang, p: message.NewPrinter(lang.Tag(), message.Catalog(cat))}
}

// Lang returns the language the printer renders.
func (p *Printer) Lang() Lang { return p.lang }

// T renders key with string arguments.
func (p *Printer) T(key Key, args ...string) string {
	vals := make([]interface{}, len(args))
	for i, a := range args {
		vals[i] = a
	}
	return p.p.Sprintf(string(key), vals...)
}

// T is a one-shot lookup.
func T(lang Lang, key Key, args ...string) string {
	return NewPrinter(lang).T(key, args...)
}

//Personal.AI order the ending
