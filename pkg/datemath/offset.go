package datemath

import (
	"math"
	"time"
)

var (
	offsetPrefixSet = wordSet(offsetPrefixWords)
	offsetSuffixSet = wordSet(offsetSuffixWords)
)

// findOffset matches relative offsets like "in 20 minutes", "two hours
// later", "3 gün sonra", "yarım saat içinde". A bare quantity+unit with no
// marker word is not an offset; it would otherwise swallow durations like
// "ran 2 hours". Minute and hour offsets resolve to an absolute day plus a
// clock value; day, week and month offsets resolve to a day only and reject
// fractional quantities.
func (s *Sanitizer) findOffset(text string, base time.Time) (day, clock, matched, invalid string) {
	toks := tokenize(text)
	for i := range toks {
		v, last, ok := parseQuantityAt(text, toks, i)
		if !ok {
			continue
		}
		unitIdx := last + 1
		if unitIdx >= len(toks) {
			continue
		}
		unit, ok := lookupOffsetUnit(toks[unitIdx].fold)
		if !ok {
			continue
		}

		first, lastIdx := i, unitIdx
		hasPrefix := false
		if i > 0 && contains(offsetPrefixSet, toks[i-1].fold) {
			hasPrefix = true
			first = i - 1
		}
		hasSuffix := false
		if unitIdx+1 < len(toks) {
			if gram, ok := foldGram(toks, unitIdx+1, 2); ok && contains(offsetSuffixSet, gram) {
				hasSuffix = true
				lastIdx = unitIdx + 2
			} else if contains(offsetSuffixSet, toks[unitIdx+1].fold) {
				hasSuffix = true
				lastIdx = unitIdx + 1
			}
		}
		if !hasPrefix && !hasSuffix {
			continue
		}

		span := spanOf(text, toks, first, lastIdx)
		switch unit {
		case unitMinute, unitHour:
			d := time.Duration(v * float64(time.Minute))
			if unit == unitHour {
				d = time.Duration(v * float64(time.Hour))
			}
			target := base.Add(d).In(s.location)
			return target.Format(DateLayout), target.Format(ClockLayout), span, ""
		case unitDay, unitWeek, unitMonth:
			if v != math.Trunc(v) {
				return "", "", "", span
			}
			n := int(v)
			var target time.Time
			switch unit {
			case unitDay:
				target = base.AddDate(0, 0, n)
			case unitWeek:
				target = base.AddDate(0, 0, n*7)
			default:
				target = base.AddDate(0, n, 0)
			}
			return target.In(s.location).Format(DateLayout), "", span, ""
		}
	}
	return "", "", "", ""
}

// parseQuantityAt reads a quantity starting at toks[i]: plain digits, a
// digit pair joined by a decimal separator, or a number word. "half" may be
// followed by an article ("half an hour").
func parseQuantityAt(text string, toks []token, i int) (v float64, last int, ok bool) {
	tok := toks[i]
	if allDigits(tok.fold) {
		v = float64(atoi(tok.fold))
		last = i
		if i+1 < len(toks) && toks[i+1].start == tok.end+1 && allDigits(toks[i+1].fold) &&
			tok.end < len(text) && (text[tok.end] == '.' || text[tok.end] == ',') {
			frac := toks[i+1].fold
			den := 1.0
			for range frac {
				den *= 10
			}
			v += float64(atoi(frac)) / den
			last = i + 1
		}
		return v, last, true
	}
	if gram, gOK := foldGram(toks, i, 2); gOK {
		if n, hit := lookupNumberWord(gram); hit {
			return n, i + 1, true
		}
	}
	n, hit := lookupNumberWord(tok.fold)
	if !hit {
		return 0, 0, false
	}
	last = i
	if n == 0.5 && i+1 < len(toks) && (toks[i+1].fold == "a" || toks[i+1].fold == "an") {
		last = i + 1
	}
	return n, last, true
}
