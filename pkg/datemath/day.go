package datemath

import (
	"regexp"
	"time"
	"unicode/utf8"
)

// Numeric dates: 15/8, 15.08, 15/8/2026. Times never use these separators.
var reNumericDate = regexp.MustCompile(`\b(\d{1,2})([./])(\d{1,2})(?:[./](\d{4}|\d{2}))?\b`)

// Tokens that mark a dot-separated number as money rather than a date.
var currencyHints = wordSet([]string{
	"usd", "eur", "try", "tl", "gbp", "jpy", "chf",
	"dollar", "dollars", "euro", "euros", "lira", "pound", "pounds",
})

var (
	todaySet    = wordSet(todayWords)
	tomorrowSet = wordSet(tomorrowWords)
	tonightSet  = wordSet(tonightWords)

	nextBeforeSet = wordSet(nextAliasBefore)
	nextAfterSet  = wordSet(nextAliasAfter)

	// Words that turn "mañana"/"morgen" into a time-of-day mention rather
	// than tomorrow: "por la mañana", "am Morgen", "guten Morgen".
	tomorrowGuardSet = wordSet([]string{"la", "de", "da", "esta", "am", "guten", "jeden", "buenos"})
)

// findDay runs the day detectors in priority order: numeric dates, month
// names, weekday names, relative-day keywords. The first hit wins. A date
// mention that fails validation short-circuits as invalid.
func (s *Sanitizer) findDay(text string, base time.Time) (day, matched, invalid string) {
	toks := tokenize(text)
	if day, matched, invalid = s.findNumericDate(text, toks, base); day != "" || invalid != "" {
		return day, matched, invalid
	}
	if day, matched, invalid = s.findMonthDay(text, toks, base); day != "" || invalid != "" {
		return day, matched, invalid
	}
	if day, matched = findWeekdayMention(text, toks); day != "" {
		return day, matched, ""
	}
	if day, matched = findRelativeDay(text, toks); day != "" {
		return day, matched, ""
	}
	return "", "", ""
}

// findNumericDate validates slash and dot dates with a month-swap fallback
// for inputs like 8/15. Dot forms that fail validation are ignored rather
// than reported, so decimal amounts ("10.50") pass through untouched; a
// currency symbol or code next to the match disables date reading entirely.
func (s *Sanitizer) findNumericDate(text string, toks []token, base time.Time) (day, matched, invalid string) {
	for _, m := range reNumericDate.FindAllStringSubmatchIndex(text, -1) {
		start, end := m[0], m[1]
		if precededByCurrencySymbol(text, start) || followedByCurrencyWord(toks, end) {
			continue
		}
		raw := text[start:end]
		a := atoi(text[m[2]:m[3]])
		sep := text[m[4]:m[5]]
		b := atoi(text[m[6]:m[7]])

		d, mo := a, b
		if !s.dayFirst {
			d, mo = b, a
		}
		if mo > 12 && d <= 12 {
			d, mo = mo, d
		}

		year := base.Year()
		if m[8] >= 0 {
			year = atoi(text[m[8]:m[9]])
			if year < 100 {
				year += 2000
			}
		}

		if !validCalendarDate(year, mo, d) {
			if sep == "." {
				continue
			}
			return "", "", raw
		}
		t := time.Date(year, time.Month(mo), d, 0, 0, 0, 0, s.location)
		return t.Format(DateLayout), raw, ""
	}
	return "", "", ""
}

// findMonthDay matches "15 August", "15 de agosto", "Ağustos 15" and the
// year-suffixed forms via the month lexicon.
func (s *Sanitizer) findMonthDay(text string, toks []token, base time.Time) (day, matched, invalid string) {
	for i := range toks {
		// day before month
		if d, ok := digitPrefix(toks[i].fold); ok {
			j := i + 1
			if j < len(toks) && isDayMonthLink(toks[j].fold) {
				j++
			}
			if j < len(toks) {
				if mo, ok := lookupMonth(trimApostrophe(toks[j].fold)); ok {
					last := j
					year := base.Year()
					if j+1 < len(toks) && len(toks[j+1].fold) == 4 && allDigits(toks[j+1].fold) {
						year = atoi(toks[j+1].fold)
						last = j + 1
					}
					return s.buildMonthDay(text, toks, i, last, year, mo, d)
				}
			}
		}
		// month before day
		if mo, ok := lookupMonth(trimApostrophe(toks[i].fold)); ok {
			j := i + 1
			if j < len(toks) {
				if d, ok := digitPrefix(toks[j].fold); ok {
					last := j
					year := base.Year()
					if j+1 < len(toks) && len(toks[j+1].fold) == 4 && allDigits(toks[j+1].fold) {
						year = atoi(toks[j+1].fold)
						last = j + 1
					}
					return s.buildMonthDay(text, toks, i, last, year, mo, d)
				}
			}
		}
	}
	return "", "", ""
}

func (s *Sanitizer) buildMonthDay(text string, toks []token, first, last, year int, mo time.Month, d int) (day, matched, invalid string) {
	raw := spanOf(text, toks, first, last)
	if !validCalendarDate(year, int(mo), d) {
		return "", "", raw
	}
	t := time.Date(year, mo, d, 0, 0, 0, 0, s.location)
	return t.Format(DateLayout), raw, ""
}

func isDayMonthLink(fold string) bool {
	switch fold {
	case "of", "de", "del":
		return true
	}
	return false
}

// Connectives folded into a matched day span so stripping it does not leave
// a dangling "on" or "günü" in the title.
var (
	weekdayLeadSet  = wordSet([]string{"on", "am", "le", "el", "em", "o"})
	weekdayTrailSet = wordSet([]string{"gunu", "günü", "gunleri", "günleri"})
)

// findWeekdayMention matches weekday names in any supported language,
// promoting them to next_<weekday> when a "next" alias sits beside them.
func findWeekdayMention(text string, toks []token) (day, matched string) {
	for i, tok := range toks {
		wd, ok := lookupWeekday(trimApostrophe(tok.fold))
		if !ok {
			continue
		}
		first, last := i, i
		if last+1 < len(toks) && toks[last+1].fold == "feira" {
			last++
		}
		next := false
		if i > 0 {
			if _, hit := nextBeforeSet[toks[i-1].fold]; hit {
				next = true
				first = i - 1
			}
		}
		if !next && last+1 < len(toks) {
			if _, hit := nextAfterSet[toks[last+1].fold]; hit {
				next = true
				last++
			} else if gram, ok := foldGram(toks, last+1, 2); ok {
				if _, hit := nextAfterSet[gram]; hit {
					next = true
					last += 2
				}
			}
		}
		if first > 0 && contains(weekdayLeadSet, toks[first-1].fold) {
			first--
		}
		if last+1 < len(toks) && contains(weekdayTrailSet, toks[last+1].fold) {
			last++
		}
		return weekdayLabel(wd, next), spanOf(text, toks, first, last)
	}
	return "", ""
}

// findRelativeDay matches the today/tomorrow/tonight keyword families.
// Tonight counts as today; the clock detectors pick up its evening reading
// separately.
func findRelativeDay(text string, toks []token) (day, matched string) {
	for i := range toks {
		for n := 3; n >= 1; n-- {
			gram, ok := foldGram(toks, i, n)
			if !ok {
				continue
			}
			label := ""
			switch {
			case contains(todaySet, gram), contains(tonightSet, gram):
				label = LabelToday
			case contains(tomorrowSet, gram):
				if n == 1 && guardedTomorrow(toks, i, gram) {
					continue
				}
				label = LabelTomorrow
			default:
				continue
			}
			return label, spanOf(text, toks, i, i+n-1)
		}
	}
	return "", ""
}

// guardedTomorrow suppresses the tomorrow reading of words that double as
// time-of-day nouns when a telltale word precedes them.
func guardedTomorrow(toks []token, i int, gram string) bool {
	if gram != "manana" && gram != "morgen" {
		return false
	}
	if i == 0 {
		return false
	}
	_, hit := tomorrowGuardSet[toks[i-1].fold]
	return hit
}

func contains(set map[string]struct{}, key string) bool {
	_, ok := set[key]
	return ok
}

func precededByCurrencySymbol(text string, start int) bool {
	if start == 0 {
		return false
	}
	r, _ := utf8.DecodeLastRuneInString(text[:start])
	switch r {
	case '$', '€', '£', '₺', '¥':
		return true
	}
	return false
}

func followedByCurrencyWord(toks []token, end int) bool {
	for _, tok := range toks {
		if tok.start < end {
			continue
		}
		_, hit := currencyHints[tok.fold]
		return hit
	}
	return false
}

func validCalendarDate(year, month, day int) bool {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t.Year() == year && int(t.Month()) == month && t.Day() == day
}

func atoi(s string) int {
	n := 0
	for _, c := range s {
		n = n*10 + int(c-'0')
	}
	return n
}
