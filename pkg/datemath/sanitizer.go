package datemath

import (
	"fmt"
	"strings"
	"time"

	"lifelog-engine/pkg/textnorm"
)

// Day labels emitted for relative dates. Weekday labels are the lowercase
// English names, optionally prefixed with "next_"; absolute days use the
// "2006-01-02" layout.
const (
	LabelToday    = "today"
	LabelTomorrow = "tomorrow"

	nextLabelPrefix = "next_"

	// DateLayout is the wire format for absolute day values.
	DateLayout = "2006-01-02"
	// ClockLayout is the wire format for time values.
	ClockLayout = "15:04"
)

// Config controls sanitizer behavior.
type Config struct {
	// Timezone is an IANA timezone string, e.g. "Europe/Istanbul".
	Timezone string
	// DayFirst selects the d/m reading for ambiguous numeric dates.
	DayFirst bool
	// Now overrides the reference clock, used by tests.
	Now func() time.Time
}

// Sanitizer normalizes free-text date and time mentions in several languages
// into canonical day labels and HH:MM clock values.
type Sanitizer struct {
	location *time.Location
	dayFirst bool
	now      func() time.Time
}

// NewSanitizer creates a sanitizer for the given config.
func NewSanitizer(cfg Config) (*Sanitizer, error) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", cfg.Timezone, err)
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Sanitizer{location: loc, dayFirst: cfg.DayFirst, now: now}, nil
}

// Result is the outcome of one sanitization pass. Exactly one of Day and
// InvalidDayInput is set. At most one of Time and InvalidTimeInput is set;
// both stay nil when the input carries no time at all.
type Result struct {
	// Day is a relative label ("today", "tomorrow", "monday", "next_friday")
	// or an absolute "2006-01-02" date.
	Day *string
	// Time is a 24h "15:04" clock value.
	Time *string
	// InvalidDayInput carries the raw text of a date mention that failed
	// validation, e.g. "32/13".
	InvalidDayInput *string
	// InvalidTimeInput carries the raw text of a time mention that failed
	// validation, e.g. "13pm" or "25:70".
	InvalidTimeInput *string

	// MatchedDay and MatchedTime are the raw substrings the values were
	// derived from, used to strip temporal words out of titles. Empty when
	// the value came from a model candidate rather than the text.
	MatchedDay  string
	MatchedTime string
}

// Sanitize scans the original text first, then the translated text, then the
// model-proposed candidates, and returns the first validated day and time it
// finds on each side. When nothing day-like is found the current day is
// returned as an absolute date, so the day side always resolves unless the
// text contained an invalid date.
func (s *Sanitizer) Sanitize(original, translated, candidateDay, candidateTime string) Result {
	base := s.now().In(s.location)
	var res Result

	day, dayMatch, dayInv := s.findDay(original, base)
	clock, clockMatch, clockInv := s.findTime(original)

	scanTranslated := translated != "" && !strings.EqualFold(strings.TrimSpace(translated), strings.TrimSpace(original))
	if day == "" && dayInv == "" && scanTranslated {
		day, dayMatch, dayInv = s.findDay(translated, base)
	}
	if clock == "" && clockInv == "" && scanTranslated {
		clock, clockMatch, clockInv = s.findTime(translated)
	}

	// Relative offsets ("in 20 minutes", "3 gün sonra") only apply when no
	// explicit day or time matched.
	if day == "" && dayInv == "" && clock == "" && clockInv == "" {
		day, clock, dayMatch, dayInv = s.findOffset(original, base)
		if day == "" && dayInv == "" && scanTranslated {
			day, clock, dayMatch, dayInv = s.findOffset(translated, base)
		}
		clockMatch = dayMatch
	}

	if day == "" && dayInv == "" {
		day, dayInv = s.resolveCandidateDay(candidateDay, base)
	}
	if clock == "" && clockInv == "" {
		clock, clockInv = s.resolveCandidateTime(candidateTime)
	}

	if day == "" && dayInv == "" {
		day = base.Format(DateLayout)
	}

	if dayInv != "" {
		res.InvalidDayInput = &dayInv
	} else {
		res.Day = &day
	}
	if clockInv != "" {
		res.InvalidTimeInput = &clockInv
	} else if clock != "" {
		res.Time = &clock
	}
	res.MatchedDay = dayMatch
	res.MatchedTime = clockMatch
	return res
}

// resolveCandidateDay normalizes a model-proposed day. Canonical labels and
// absolute dates pass through; anything else goes through the full detector
// set, and what still does not resolve is reported as invalid.
func (s *Sanitizer) resolveCandidateDay(candidate string, base time.Time) (day, invalid string) {
	c := strings.TrimSpace(candidate)
	if isEmptyCandidate(c) {
		return "", ""
	}
	folded := textnorm.Fold(c)
	if folded == LabelToday || folded == LabelTomorrow {
		return folded, ""
	}
	if wd, next, ok := parseWeekdayLabel(folded); ok {
		return weekdayLabel(wd, next), ""
	}
	if t, err := time.ParseInLocation(DateLayout, c, s.location); err == nil {
		return t.Format(DateLayout), ""
	}
	if day, _, inv := s.findDay(c, base); day != "" || inv != "" {
		return day, inv
	}
	if day, _, _, inv := s.findOffset(c, base); day != "" || inv != "" {
		return day, inv
	}
	return "", c
}

// resolveCandidateTime normalizes a model-proposed time.
func (s *Sanitizer) resolveCandidateTime(candidate string) (clock, invalid string) {
	c := strings.TrimSpace(candidate)
	if isEmptyCandidate(c) {
		return "", ""
	}
	if h, m, ok := splitClock(c); ok {
		if validClock(h, m) {
			return formatClock(h, m), ""
		}
		return "", c
	}
	if len(c) == 4 && allDigits(c) {
		h := int(c[0]-'0')*10 + int(c[1]-'0')
		m := int(c[2]-'0')*10 + int(c[3]-'0')
		if validClock(h, m) {
			return formatClock(h, m), ""
		}
		return "", c
	}
	if clock, _, inv := s.findTime(c); clock != "" || inv != "" {
		return clock, inv
	}
	return "", c
}

func isEmptyCandidate(c string) bool {
	switch strings.ToLower(c) {
	case "", "null", "none", "nil", "n/a", "-", "unknown":
		return true
	}
	return false
}

// ResolveDayLabel converts a day label or absolute date into midnight of the
// day it denotes. Weekday labels resolve to the next upcoming occurrence,
// never the current day.
func (s *Sanitizer) ResolveDayLabel(label string, base time.Time) (time.Time, error) {
	switch label {
	case LabelToday:
		return s.StartOfDay(base), nil
	case LabelTomorrow:
		return s.StartOfDay(base.AddDate(0, 0, 1)), nil
	}
	if wd, _, ok := parseWeekdayLabel(label); ok {
		return s.UpcomingWeekdayDate(wd, base), nil
	}
	if t, err := time.ParseInLocation(DateLayout, label, s.location); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("unrecognized day label %q", label)
}

// UpcomingWeekdayDate returns midnight of the next occurrence of the target
// weekday strictly after the base day.
func (s *Sanitizer) UpcomingWeekdayDate(target time.Weekday, base time.Time) time.Time {
	base = base.In(s.location)
	daysUntil := int(target - base.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return s.StartOfDay(base.AddDate(0, 0, daysUntil))
}

// StartOfDay returns midnight at the start of the given day in the
// sanitizer's timezone.
func (s *Sanitizer) StartOfDay(t time.Time) time.Time {
	t = t.In(s.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, s.location)
}

// EndOfDay returns 23:59:59 at the end of the given start-of-day time.
func (s *Sanitizer) EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}

// Location exposes the sanitizer's timezone for callers that format
// resolved days.
func (s *Sanitizer) Location() *time.Location {
	return s.location
}

// Now returns the reference clock in the sanitizer's timezone, honoring a
// test override.
func (s *Sanitizer) Now() time.Time {
	return s.now().In(s.location)
}

// parseWeekdayLabel accepts canonical weekday labels: "monday", "next_monday"
// and the spaced "next monday" form.
func parseWeekdayLabel(label string) (time.Weekday, bool, bool) {
	next := false
	switch {
	case strings.HasPrefix(label, nextLabelPrefix):
		next = true
		label = strings.TrimPrefix(label, nextLabelPrefix)
	case strings.HasPrefix(label, "next "):
		next = true
		label = strings.TrimPrefix(label, "next ")
	}
	for wd, name := range weekdayLabels {
		if name == label {
			return wd, next, true
		}
	}
	return 0, false, false
}

func weekdayLabel(wd time.Weekday, next bool) string {
	if next {
		return nextLabelPrefix + weekdayLabels[wd]
	}
	return weekdayLabels[wd]
}

func formatClock(h, m int) string {
	return fmt.Sprintf("%02d:%02d", h, m)
}

func validClock(h, m int) bool {
	return h >= 0 && h <= 23 && m >= 0 && m <= 59
}

func splitClock(c string) (h, m int, ok bool) {
	i := strings.IndexByte(c, ':')
	if i <= 0 || i > 2 || i+1 >= len(c) {
		return 0, 0, false
	}
	hh, mm := c[:i], c[i+1:]
	if !allDigits(hh) || !allDigits(mm) || len(mm) != 2 {
		return 0, 0, false
	}
	for _, ch := range hh {
		h = h*10 + int(ch-'0')
	}
	for _, ch := range mm {
		m = m*10 + int(ch-'0')
	}
	return h, m, true
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
