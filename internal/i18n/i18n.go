// Package i18n provides translation lookup for the embedded locale
// catalogs. Keys are dotted paths into nested JSON objects; a missing
// key echoes back the key itself so untranslated strings stay visible
// instead of blank.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// DefaultLang is used when no supported language matches.
const DefaultLang = "en"

var supported = []language.Tag{
	language.English, // first tag is the fallback
	language.German,
}

var matcher = language.NewMatcher(supported)

var catalogs map[string]map[string]any

func init() {
	catalogs = make(map[string]map[string]any)
	for _, tag := range supported {
		lang := tag.String()
		data, err := localeFS.ReadFile("locales/" + lang + ".json")
		if err != nil {
			panic(fmt.Sprintf("i18n: missing locale file for %s: %v", lang, err))
		}
		var catalog map[string]any
		if err := json.Unmarshal(data, &catalog); err != nil {
			panic(fmt.Sprintf("i18n: invalid locale file for %s: %v", lang, err))
		}
		catalogs[lang] = catalog
	}
}

// Match normalizes a requested language code against the supported
// locales. Unknown or malformed codes fall back to DefaultLang.
func Match(requested string) string {
	if requested == "" {
		return DefaultLang
	}
	tag, err := language.Parse(requested)
	if err != nil {
		return DefaultLang
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return DefaultLang
	}
	return supported[idx].String()
}

// Supported reports whether lang is exactly one of the shipped locales.
func Supported(lang string) bool {
	_, ok := catalogs[lang]
	return ok
}

// T resolves a dotted key in the catalog for lang. Missing keys and
// non-leaf lookups return the key unchanged.
func T(lang, key string) string {
	catalog, ok := catalogs[lang]
	if !ok {
		catalog = catalogs[DefaultLang]
	}

	var current any = map[string]any(catalog)
	for _, part := range strings.Split(key, ".") {
		node, ok := current.(map[string]any)
		if !ok {
			return key
		}
		current, ok = node[part]
		if !ok {
			return key
		}
	}

	if s, ok := current.(string); ok {
		return s
	}
	return key
}

// Translator binds a language so views can call a single-argument
// lookup.
type Translator struct {
	Lang string
}

// NewTranslator returns a Translator for the given (already matched)
// language code.
func NewTranslator(lang string) Translator {
	if !Supported(lang) {
		lang = DefaultLang
	}
	return Translator{Lang: lang}
}

// T resolves a dotted key in the bound language.
func (tr Translator) T(key string) string {
	return T(tr.Lang, key)
}
