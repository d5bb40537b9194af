package units

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reGrams    = regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s*(kg|kilograms?|kilo|grams?|gr|g|oz|ounces?|lbs?|pounds?)\b`)
	reDistance = regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s*(km|kilometers?|kilometres?|k\b|mi\b|miles?|meters?|metres?|m\b)`)
	reKcal     = regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s*(kcal|calories?|cal|kalori)\b`)
)

// GramsFromText parses an explicit weight mention ("200g", "1.5 kg",
// "8 oz") into grams. The matched substring is returned so callers can
// strip it from the term.
func GramsFromText(s string) (grams float64, matched string, ok bool) {
	m := reGrams.FindStringSubmatch(s)
	if m == nil {
		return 0, "", false
	}
	v := parseDecimal(m[1])
	switch strings.ToLower(m[2])[0:1] {
	case "k":
		v *= 1000
	case "o":
		v *= 28.3495
	case "l", "p":
		v *= 453.592
	}
	return v, m[0], true
}

// DistanceFromText parses an explicit distance mention ("10km", "5k",
// "400m", "3 miles") into kilometers.
func DistanceFromText(s string) (km float64, matched string, ok bool) {
	m := reDistance.FindStringSubmatch(s)
	if m == nil {
		return 0, "", false
	}
	v := parseDecimal(m[1])
	unit := strings.ToLower(m[2])
	switch {
	case strings.HasPrefix(unit, "mi"):
		v *= 1.60934
	case unit == "m" || strings.HasPrefix(unit, "met"):
		v /= 1000
	}
	return v, m[0], true
}

// CaloriesFromText parses an explicit calorie mention ("100 kcal",
// "250cal").
func CaloriesFromText(s string) (kcal float64, matched string, ok bool) {
	m := reKcal.FindStringSubmatch(s)
	if m == nil {
		return 0, "", false
	}
	return parseDecimal(m[1]), m[0], true
}

// parseDecimal accepts both decimal separators.
func parseDecimal(s string) float64 {
	v, _ := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	return v
}
