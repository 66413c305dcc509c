package common

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var deaccenter = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// StripAccents removes combining diacritical marks, so "até" becomes "ate".
func StripAccents(s string) string {
	out, _, err := transform.String(deaccenter, s)
	if err != nil {
		return s
	}
	return out
}

// NormalizeText lowercases, strips accents and trims surrounding whitespace.
// This is the shared first step for every dictionary lookup in the engine.
func NormalizeText(s string) string {
	return strings.TrimSpace(strings.ToLower(StripAccents(s)))
}

// NormalizeKey collapses a name into a dictionary key: normalized text with
// hyphens and inner whitespace removed, so "HB 20 S" and "hb20s" collide.
func NormalizeKey(s string) string {
	s = NormalizeText(s)
	s = strings.ReplaceAll(s, "-", "")
	return strings.Join(strings.Fields(s), "")
}

// TitleWords title-cases each hyphen- or space-delimited word, preserving
// the delimiters: "onix plus" -> "Onix Plus", "t-cross" -> "T-Cross".
func TitleWords(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	upperNext := true
	for _, r := range s {
		switch {
		case r == ' ' || r == '-':
			upperNext = true
			b.WriteRune(r)
		case upperNext:
			b.WriteRune(unicode.ToUpper(r))
			upperNext = false
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
