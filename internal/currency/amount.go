package currency

import (
	"regexp"
	"strconv"
	"strings"
)

var reAmount = regexp.MustCompile(`\d+(?:[.,]\d+)*`)

// ParseAmount reads the first number in s. A comma followed by exactly three
// digits is a thousands separator ("1,200" is 1200), otherwise a decimal
// mark ("45,50" is 45.5).
func ParseAmount(s string) (float64, bool) {
	m := reAmount.FindString(s)
	if m == "" {
		return 0, false
	}
	if strings.Contains(m, ".") {
		m = strings.ReplaceAll(m, ",", "")
	} else if i := strings.LastIndex(m, ","); i >= 0 {
		if len(m)-i-1 == 3 {
			m = strings.ReplaceAll(m, ",", "")
		} else {
			m = strings.ReplaceAll(m, ",", ".")
		}
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
