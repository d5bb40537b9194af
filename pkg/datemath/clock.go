package datemath

import (
	"regexp"
	"strings"

	"lifelog-engine/pkg/textnorm"
)

var (
	reColonTime = regexp.MustCompile(`(?i)\b(\d{1,2}):(\d{2})(?:\s*(am|pm)\b)?`)
	reAmPmHour  = regexp.MustCompile(`(?i)\b(\d{1,2})\s*(am|pm)\b`)
	reAtSign    = regexp.MustCompile(`@(\d{1,2})(?::(\d{2}))?\b`)
	// Turkish locative suffix on an hour: 5'te, 17'de, 9'da.
	reHourSuffix = regexp.MustCompile(`(?i)\b(\d{1,2})['’][dt][ae]\b`)
)

type periodKind int

const (
	periodMorning periodKind = iota
	periodNoon
	periodEvening
	periodNight
	periodMidnight
)

// Period phrase → kind, folded. Longer phrases are matched before shorter
// ones by the n-gram scan.
var periodPhrases = buildPeriodPhrases()

func buildPeriodPhrases() map[string]periodKind {
	m := make(map[string]periodKind)
	add := func(words []string, kind periodKind) {
		for _, w := range words {
			m[textnorm.Fold(w)] = kind
		}
	}
	add(morningWords, periodMorning)
	add(noonWords, periodNoon)
	add(eveningWords, periodEvening)
	add(nightWords, periodNight)
	add(midnightWords, periodMidnight)
	return m
}

// Standalone period defaults.
var periodDefaults = map[periodKind]string{
	periodMorning:  "08:00",
	periodNoon:     "12:00",
	periodEvening:  "20:00",
	periodNight:    "00:00",
	periodMidnight: "00:00",
}

// findTime runs the clock detectors in priority order. Period-adjacent hours
// go first so "akşam 7'de" reads as 19:00 before the bare suffix detector
// could read it as 07:00. Only the colon and am/pm forms report invalid
// input; the looser forms skip implausible hours instead, since a number
// next to "at" is not always a time.
func (s *Sanitizer) findTime(text string) (clock, matched, invalid string) {
	toks := tokenize(text)
	if clock, matched = findPeriodHour(text, toks); clock != "" {
		return clock, matched, ""
	}
	if clock, matched, invalid = findColonTime(text); clock != "" || invalid != "" {
		return clock, matched, invalid
	}
	if clock, matched, invalid = findAmPmHour(text); clock != "" || invalid != "" {
		return clock, matched, invalid
	}
	if clock, matched = findHourPrefix(text, toks); clock != "" {
		return clock, matched, ""
	}
	if clock, matched = findHourSuffix(text); clock != "" {
		return clock, matched, ""
	}
	if clock, matched = findStandalonePeriod(text, toks); clock != "" {
		return clock, matched, ""
	}
	return "", "", ""
}

// periodAt looks up a period phrase starting at toks[i], longest first.
func periodAt(toks []token, i int) (periodKind, int, bool) {
	for n := 3; n >= 1; n-- {
		gram, ok := foldGram(toks, i, n)
		if !ok {
			continue
		}
		if kind, hit := periodPhrases[gram]; hit {
			return kind, n, true
		}
	}
	return 0, 0, false
}

// applyPeriod converts an hour through its period reading: "akşam 7" means
// 19:00, "gece 2" stays 02:00, "öğlen 1" means 13:00. Hours outside the
// period's natural band pass through literally.
func applyPeriod(kind periodKind, h int) int {
	switch kind {
	case periodMorning:
		return h
	case periodNoon:
		if h >= 1 && h <= 5 {
			return h + 12
		}
		return h
	case periodEvening:
		if h >= 1 && h <= 11 {
			return h + 12
		}
		if h == 12 {
			return 0
		}
		return h
	case periodNight:
		if h >= 6 && h <= 11 {
			return h + 12
		}
		if h == 12 {
			return 0
		}
		return h
	case periodMidnight:
		if h == 12 {
			return 0
		}
		return h
	}
	return h
}

// findPeriodHour matches a period keyword directly before an hour, with an
// optional "saat" link and optional ":MM" minutes: "akşam 7", "sabah saat 9",
// "morning 9:30".
func findPeriodHour(text string, toks []token) (clock, matched string) {
	for i := range toks {
		kind, n, ok := periodAt(toks, i)
		if !ok {
			continue
		}
		j := i + n
		if j < len(toks) && toks[j].fold == "saat" {
			j++
		}
		if j >= len(toks) {
			continue
		}
		h, ok := digitPrefix(toks[j].fold)
		if !ok {
			continue
		}
		end := toks[j].end
		minutes := 0
		if rest := text[end:]; len(rest) >= 3 && rest[0] == ':' && isASCIIDigit(rest[1]) && isASCIIDigit(rest[2]) {
			minutes = int(rest[1]-'0')*10 + int(rest[2]-'0')
			end += 3
		}
		h = applyPeriod(kind, h)
		if !validClock(h, minutes) {
			continue
		}
		return formatClock(h, minutes), text[toks[i].start:end]
	}
	return "", ""
}

func findColonTime(text string) (clock, matched, invalid string) {
	m := reColonTime.FindStringSubmatchIndex(text)
	if m == nil {
		return "", "", ""
	}
	raw := text[m[0]:m[1]]
	h := atoi(text[m[2]:m[3]])
	minutes := atoi(text[m[4]:m[5]])
	if m[6] >= 0 {
		suffix := strings.ToLower(text[m[6]:m[7]])
		if h < 1 || h > 12 {
			return "", "", raw
		}
		if suffix == "pm" && h < 12 {
			h += 12
		}
		if suffix == "am" && h == 12 {
			h = 0
		}
	}
	if !validClock(h, minutes) {
		return "", "", raw
	}
	return formatClock(h, minutes), text[extendPrefix(text, m[0]):m[1]], ""
}

func findAmPmHour(text string) (clock, matched, invalid string) {
	m := reAmPmHour.FindStringSubmatchIndex(text)
	if m == nil {
		return "", "", ""
	}
	raw := text[m[0]:m[1]]
	h := atoi(text[m[2]:m[3]])
	suffix := strings.ToLower(text[m[4]:m[5]])
	if h < 1 || h > 12 {
		return "", "", raw
	}
	if suffix == "pm" && h < 12 {
		h += 12
	}
	if suffix == "am" && h == 12 {
		h = 0
	}
	return formatClock(h, 0), text[extendPrefix(text, m[0]):m[1]], ""
}

// extendPrefix widens a matched time span backwards over an "at"-style
// keyword so stripping the span does not leave a dangling preposition.
func extendPrefix(text string, start int) int {
	i := start
	for i > 0 && text[i-1] == ' ' {
		i--
	}
	j := i
	for j > 0 && text[j-1] != ' ' {
		j--
	}
	if j < i && contains(hourPrefixSet, textnorm.Fold(text[j:i])) {
		return j
	}
	return start
}

var hourPrefixSet = wordSet(hourPrefixWords)

// findHourPrefix matches a bare hour after an "at"-style keyword, or an
// @-prefixed hour. A period keyword later in the line shifts an ambiguous
// hour: "at 7 in the evening" reads as 19:00.
func findHourPrefix(text string, toks []token) (clock, matched string) {
	if m := reAtSign.FindStringSubmatchIndex(text); m != nil {
		h := atoi(text[m[2]:m[3]])
		minutes := 0
		if m[4] >= 0 {
			minutes = atoi(text[m[4]:m[5]])
		}
		if validClock(h, minutes) {
			return formatClock(h, minutes), text[m[0]:m[1]]
		}
	}
	for i := range toks {
		n := 0
		if gram, ok := foldGram(toks, i, 2); ok && contains(hourPrefixSet, gram) {
			n = 2
		} else if contains(hourPrefixSet, toks[i].fold) {
			n = 1
		}
		if n == 0 {
			continue
		}
		j := i + n
		if j >= len(toks) {
			continue
		}
		h, ok := digitPrefix(toks[j].fold)
		if !ok || h > 23 {
			continue
		}
		if kind, _, ok := periodNear(toks, j+1); ok && h >= 1 && h <= 11 {
			h = applyPeriod(kind, h)
		}
		return formatClock(h, 0), spanOf(text, toks, i, j)
	}
	return "", ""
}

// periodNear scans a few tokens ahead for a period phrase, to catch trailing
// qualifiers like "in the evening".
func periodNear(toks []token, from int) (periodKind, int, bool) {
	limit := from + 4
	if limit > len(toks) {
		limit = len(toks)
	}
	for i := from; i < limit; i++ {
		if kind, n, ok := periodAt(toks, i); ok {
			return kind, n, true
		}
	}
	return 0, 0, false
}

func findHourSuffix(text string) (clock, matched string) {
	m := reHourSuffix.FindStringSubmatchIndex(text)
	if m == nil {
		return "", ""
	}
	h := atoi(text[m[2]:m[3]])
	if h > 23 {
		return "", ""
	}
	return formatClock(h, 0), text[extendPrefix(text, m[0]):m[1]]
}

// Lead-in words folded into a standalone period span: "in the morning",
// "at night", "bu akşam".
var periodLeadSet = wordSet([]string{"in", "the", "at", "this", "bu", "im", "am", "por", "la", "de", "da"})

func findStandalonePeriod(text string, toks []token) (clock, matched string) {
	for i := range toks {
		kind, n, ok := periodAt(toks, i)
		if !ok {
			continue
		}
		first := i
		for first > 0 && contains(periodLeadSet, toks[first-1].fold) {
			first--
		}
		return periodDefaults[kind], spanOf(text, toks, first, i+n-1)
	}
	return "", ""
}

func isASCIIDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
