// Package i18n holds the static UI dictionaries and picks a locale for a
// request.
package i18n

import (
	"maps"
	"slices"

	"golang.org/x/text/language"
)

// Locale is a supported dictionary key.
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleZH Locale = "zh"

	// DefaultLocale backs every missing key.
	DefaultLocale = LocaleEN
)

// CookieName is the cookie that remembers an explicit locale choice.
const CookieName = "locale"

// supported is ordered; the first tag is the matcher's fallback.
var supported = []language.Tag{language.English, language.Chinese}

var matcher = language.NewMatcher(supported)

// Supported returns the known locales.
func Supported() []Locale {
	return []Locale{LocaleEN, LocaleZH}
}

// Parse returns the supported locale for s, or false when s is not one.
// Region and script subtags are accepted: "zh-CN" and "zh-Hans" map to zh.
func Parse(s string) (Locale, bool) {
	tag, err := language.Parse(s)
	if err != nil {
		return "", false
	}
	_, idx, conf := matcher.Match(tag)
	if conf < language.High {
		return "", false
	}
	return localeAt(idx), true
}

// Negotiate picks the locale for a request: an explicit query value wins,
// then the cookie, then the Accept-Language header, then DefaultLocale.
func Negotiate(query, cookie, acceptLanguage string) Locale {
	for _, candidate := range []string{query, cookie} {
		if candidate == "" {
			continue
		}
		if l, ok := Parse(candidate); ok {
			return l
		}
	}
	if acceptLanguage != "" {
		tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
		if err == nil && len(tags) > 0 {
			_, idx, conf := matcher.Match(tags...)
			if conf != language.No {
				return localeAt(idx)
			}
		}
	}
	return DefaultLocale
}

func localeAt(idx int) Locale {
	base, _ := supported[idx].Base()
	return Locale(base.String())
}

// Lookup returns the translation of key, falling back to English and then to
// the key itself.
func Lookup(locale Locale, key string) string {
	if v, ok := dictionaries[locale][key]; ok {
		return v
	}
	if v, ok := dictionaries[DefaultLocale][key]; ok {
		return v
	}
	return key
}

// Dictionary returns a copy of the full dictionary for locale with English
// entries filling any gaps. Unknown locales get the English dictionary.
func Dictionary(locale Locale) map[string]string {
	out := maps.Clone(dictionaries[DefaultLocale])
	maps.Copy(out, dictionaries[locale])
	return out
}

// Keys returns every English key in sorted order.
func Keys() []string {
	return slices.Sorted(maps.Keys(dictionaries[DefaultLocale]))
}

// Translator binds a locale for templates.
type Translator struct {
	Locale Locale
}

// T translates key in the bound locale.
func (t Translator) T(key string) string {
	return Lookup(t.Locale, key)
}
