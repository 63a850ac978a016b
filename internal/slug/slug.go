// Package slug converts team names to URL slugs and back. The reverse
// direction is lossy, so callers treat its output as a best-effort lookup key.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ToTitle recovers a display name from a slug: tokens split on '-' are
// title-cased and joined with single spaces. "la-lakers" becomes "La Lakers".
// Empty tokens are dropped on purpose, so "la--lakers" and "-la-lakers-" give
// the same name; a doubled space would only weaken the substring lookup.
func ToTitle(s string) string {
	caser := cases.Title(language.Und)
	tokens := strings.FieldsFunc(s, func(r rune) bool { return r == '-' })
	for i, tok := range tokens {
		tokens[i] = caser.String(tok)
	}
	return strings.Join(tokens, " ")
}

// Make builds the slug of a display name: accents are folded, every run of
// characters other than letters and digits becomes a single '-', and the
// result is lowercase. "Atlético Madrid" and "St. Louis" become
// "atletico-madrid" and "st-louis".
func Make(name string) string {
	folded := Fold(name)

	var b strings.Builder
	b.Grow(len(folded))
	pendingDash := false
	for _, r := range folded {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
			continue
		}
		pendingDash = true
	}
	return b.String()
}

// Fold lowercases name and strips combining marks.
func Fold(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, name)
	if err != nil {
		out = name
	}
	return strings.ToLower(out)
}
