// Package textnorm holds the text normalization primitives shared by the
// parsing pipeline: slugification, noise stripping, and whitespace handling.
package textnorm

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	reURL     = regexp.MustCompile(`(?i)\bhttps?://[^\s]+|\bwww\.[^\s]+`)
	reEmail   = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	reHandle  = regexp.MustCompile(`(^|\s)[@#][\p{L}\p{N}_]+`)
	reSpace   = regexp.MustCompile(`\s+`)
	reBracket = regexp.MustCompile(`[\[\]{}()"'` + "`" + `]`)
)

// Slugify converts free text to its canonical slug: lowercase, with every run
// of non-letter/non-digit characters collapsed into a single underscore and
// leading/trailing underscores trimmed. Unicode letters survive, so "Köfte
// Ekmek" becomes "köfte_ekmek". Slugify is idempotent.
func Slugify(s string) string {
	s = strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(s))
	lastSep := true // suppress a leading separator
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastSep = false
			continue
		}
		if !lastSep {
			b.WriteByte('_')
			lastSep = true
		}
	}

	return strings.Trim(b.String(), "_")
}

// StripNoise removes URLs, e-mail addresses, @handles and #hashtags.
func StripNoise(s string) string {
	s = reURL.ReplaceAllString(s, " ")
	s = reEmail.ReplaceAllString(s, " ")
	s = reHandle.ReplaceAllString(s, " ")
	return Condense(s)
}

// StripBrackets removes bracket, quote and backtick characters, leaving the
// enclosed text in place.
func StripBrackets(s string) string {
	return reBracket.ReplaceAllString(s, " ")
}

// Condense collapses whitespace runs to a single space and trims the ends.
func Condense(s string) string {
	return strings.TrimSpace(reSpace.ReplaceAllString(s, " "))
}

// FirstURL returns the first URL found in s, or "".
func FirstURL(s string) string {
	return reURL.FindString(s)
}

// foldTransformer strips combining marks after NFD decomposition, which turns
// "é" into "e", "ş" into "s", and so on.
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// foldSpecials covers letters that do not decompose into base+mark.
var foldSpecials = strings.NewReplacer(
	"ı", "i",
	"ø", "o",
	"æ", "ae",
	"œ", "oe",
	"ß", "ss",
	"ð", "d",
	"þ", "th",
	"ł", "l",
)

// Fold lowercases s and strips diacritics, for accent-insensitive matching
// against keyword lexicons ("Şubat" → "subat", "März" → "marz").
func Fold(s string) string {
	s = strings.ToLower(s)
	if out, _, err := transform.String(foldTransformer, s); err == nil {
		s = out
	}
	return foldSpecials.Replace(s)
}
