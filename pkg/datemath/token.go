package datemath

import (
	"regexp"
	"strings"

	"lifelog-engine/pkg/textnorm"
)

// Word tokens keep apostrophe suffixes attached so Turkish forms like "5'te"
// and French "aujourd'hui" arrive as single tokens. Offsets index into the
// original string so matched spans can be stripped later.
var reToken = regexp.MustCompile(`[\p{L}\p{N}]+(?:['’][\p{L}]+)*`)

type token struct {
	raw   string
	fold  string
	start int
	end   int
}

func tokenize(text string) []token {
	idx := reToken.FindAllStringIndex(text, -1)
	toks := make([]token, 0, len(idx))
	for _, pos := range idx {
		raw := text[pos[0]:pos[1]]
		toks = append(toks, token{raw: raw, fold: textnorm.Fold(raw), start: pos[0], end: pos[1]})
	}
	return toks
}

// foldGram joins the folded text of toks[i:i+n] with single spaces, so
// multi-word lexicon phrases ("bu akşam", "por la noche") can be looked up.
func foldGram(toks []token, i, n int) (string, bool) {
	if n <= 0 || i+n > len(toks) {
		return "", false
	}
	if n == 1 {
		return toks[i].fold, true
	}
	parts := make([]string, n)
	for k := 0; k < n; k++ {
		parts[k] = toks[i+k].fold
	}
	return strings.Join(parts, " "), true
}

// spanOf returns the original substring covering toks[i] through toks[j].
func spanOf(text string, toks []token, i, j int) string {
	return text[toks[i].start:toks[j].end]
}

// trimApostrophe drops an attached suffix such as "'ta" from a folded token.
func trimApostrophe(folded string) string {
	if i := strings.IndexAny(folded, "'’"); i > 0 {
		return folded[:i]
	}
	return folded
}

// digitPrefix parses the leading decimal digits of a token, tolerating
// ordinal ("15th") and apostrophe ("7'de") suffixes. The second return is
// false when the token does not start with a digit or the remainder is not a
// recognized suffix.
func digitPrefix(folded string) (int, bool) {
	i := 0
	for i < len(folded) && folded[i] >= '0' && folded[i] <= '9' {
		i++
	}
	if i == 0 || i > 4 {
		return 0, false
	}
	rest := trimApostropheRest(folded[i:])
	switch rest {
	case "", "st", "nd", "rd", "th":
	default:
		return 0, false
	}
	n := 0
	for _, c := range folded[:i] {
		n = n*10 + int(c-'0')
	}
	return n, true
}

// trimApostropheRest reduces an apostrophe suffix to empty so "7'de" parses
// as the digit 7.
func trimApostropheRest(rest string) string {
	if strings.HasPrefix(rest, "'") || strings.HasPrefix(rest, "’") {
		return ""
	}
	return rest
}
