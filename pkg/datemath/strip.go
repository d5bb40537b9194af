package datemath

import (
	"regexp"
	"strings"

	"lifelog-engine/pkg/textnorm"
)

var (
	commandPrefixSet = buildPhraseSet(commandPrefixes)
	courtesySet      = buildPhraseSet(courtesyPhrases)
	connectorSet     = buildPhraseSet(connectorWords)
)

func buildPhraseSet(phrases []string) map[string]struct{} {
	set := make(map[string]struct{}, len(phrases))
	for _, p := range phrases {
		set[textnorm.Fold(p)] = struct{}{}
	}
	return set
}

// StripTemporal removes the matched date and time spans of a sanitization
// pass from the text, plus any leftover synonyms of a relative day label, so
// titles do not repeat what the day and time fields already say.
func StripTemporal(text string, res Result) string {
	out := text
	if res.MatchedDay != "" {
		out = cutSpan(out, res.MatchedDay)
	}
	if res.MatchedTime != "" && res.MatchedTime != res.MatchedDay {
		out = cutSpan(out, res.MatchedTime)
	}
	if res.Day != nil {
		out = cutPhrases(out, labelVariants(*res.Day))
	}
	return textnorm.Condense(out)
}

// cutSpan removes the first occurrence of span, falling back to a
// case-insensitive match when the verbatim slice is not present (the span
// may have come from the translated text).
func cutSpan(text, span string) string {
	start := strings.Index(text, span)
	end := start + len(span)
	if start < 0 {
		re, err := regexp.Compile(`(?i)` + regexp.QuoteMeta(span))
		if err != nil {
			return text
		}
		loc := re.FindStringIndex(text)
		if loc == nil {
			return text
		}
		start, end = loc[0], loc[1]
	}
	return text[:widenConnector(text, start)] + " " + text[end:]
}

// widenConnector backs a cut up over one linking word, so removing "3pm"
// from "meeting at 3pm" takes the "at" with it.
func widenConnector(text string, start int) int {
	left := strings.TrimRight(text[:start], " \t")
	if left == "" {
		return start
	}
	i := strings.LastIndexAny(left, " \t")
	if _, ok := connectorSet[textnorm.Fold(left[i+1:])]; ok {
		return i + 1
	}
	return start
}

// labelVariants lists every lexicon word that denotes the given relative day
// label, folded.
func labelVariants(label string) map[string]struct{} {
	out := make(map[string]struct{})
	add := func(words []string) {
		for _, w := range words {
			out[textnorm.Fold(w)] = struct{}{}
		}
	}
	switch label {
	case LabelToday:
		add(todayWords)
		add(tonightWords)
	case LabelTomorrow:
		add(tomorrowWords)
	default:
		wd, _, ok := parseWeekdayLabel(label)
		if !ok {
			return out
		}
		for name, w := range weekdayNames {
			if w == wd {
				out[name] = struct{}{}
			}
		}
	}
	return out
}

// cutPhrases removes every token n-gram present in the phrase set.
func cutPhrases(text string, phrases map[string]struct{}) string {
	if len(phrases) == 0 {
		return text
	}
	toks := tokenize(text)
	var cuts [][2]int
	for i := 0; i < len(toks); {
		matched := 0
		for n := 3; n >= 1; n-- {
			gram, ok := foldGram(toks, i, n)
			if !ok {
				continue
			}
			if _, hit := phrases[gram]; hit {
				cuts = append(cuts, [2]int{toks[i].start, toks[i+n-1].end})
				matched = n
				break
			}
		}
		if matched == 0 {
			// weekday tokens may carry apostrophe suffixes
			if _, hit := phrases[trimApostrophe(toks[i].fold)]; hit {
				cuts = append(cuts, [2]int{toks[i].start, toks[i].end})
				matched = 1
			}
		}
		if matched == 0 {
			matched = 1
		}
		i += matched
	}
	if len(cuts) == 0 {
		return text
	}
	var b strings.Builder
	prev := 0
	for _, c := range cuts {
		b.WriteString(text[prev:c[0]])
		b.WriteString(" ")
		prev = c[1]
	}
	b.WriteString(text[prev:])
	return b.String()
}

// StripCommandPrefix removes leading command phrases ("remind me to", "bana
// hatırlat") and any courtesy words around them, repeatedly, so the title
// starts at the real content.
func StripCommandPrefix(text string) string {
	out := strings.TrimSpace(text)
	for {
		trimmed := stripLeadingPhrase(out, courtesySet)
		trimmed = stripLeadingPhrase(trimmed, commandPrefixSet)
		if trimmed == out {
			break
		}
		out = trimmed
	}
	return textnorm.Condense(out)
}

// StripCourtesy removes trailing courtesy phrases ("please", "lütfen",
// "danke") repeatedly.
func StripCourtesy(text string) string {
	out := strings.TrimSpace(text)
	for {
		trimmed := stripTrailingPhrase(out, courtesySet)
		if trimmed == out {
			break
		}
		out = trimmed
	}
	return textnorm.Condense(out)
}

func stripLeadingPhrase(text string, phrases map[string]struct{}) string {
	toks := tokenize(text)
	if len(toks) == 0 {
		return text
	}
	for n := 4; n >= 1; n-- {
		gram, ok := foldGram(toks, 0, n)
		if !ok {
			continue
		}
		if _, hit := phrases[gram]; hit {
			rest := text[toks[n-1].end:]
			return strings.TrimLeft(rest, " \t:,.;!?-")
		}
	}
	return text
}

func stripTrailingPhrase(text string, phrases map[string]struct{}) string {
	toks := tokenize(text)
	if len(toks) == 0 {
		return text
	}
	for n := 3; n >= 1; n-- {
		start := len(toks) - n
		if start < 0 {
			continue
		}
		gram, ok := foldGram(toks, start, n)
		if !ok {
			continue
		}
		if _, hit := phrases[gram]; hit {
			head := text[:toks[start].start]
			return strings.TrimRight(head, " \t:,.;!?-")
		}
	}
	return text
}
