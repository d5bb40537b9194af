package currency

import (
	"strings"
	"unicode"

	"lifelog-engine/pkg/textnorm"
)

// Symbols in match order; multi-rune symbols come first so "R$" is not read
// as "$".
var symbolCodes = []struct {
	symbol string
	code   string
}{
	{"R$", "BRL"},
	{"$", "USD"},
	{"€", "EUR"},
	{"£", "GBP"},
	{"₺", "TRY"},
	{"¥", "JPY"},
	{"₹", "INR"},
	{"₩", "KRW"},
	{"₽", "RUB"},
}

// ISO codes accepted in any letter case.
var plainCodes = map[string]string{
	"usd": "USD", "eur": "EUR", "gbp": "GBP", "jpy": "JPY", "chf": "CHF",
	"cad": "CAD", "aud": "AUD", "inr": "INR", "krw": "KRW", "cny": "CNY",
	"rub": "RUB", "brl": "BRL", "mxn": "MXN", "sek": "SEK", "nok": "NOK",
	"dkk": "DKK", "pln": "PLN", "aed": "AED", "sar": "SAR", "tl": "TRY",
}

// Codes that collide with everyday words match only when written in
// uppercase ("TRY 100" yes, "try sushi" no).
var uppercaseOnlyCodes = map[string]string{
	"try": "TRY",
}

// Currency words, matched exactly against folded tokens. Deliberately no
// stems or prefixes: "euros" is listed, "europe" must not match.
var currencyWords = map[string]string{
	"dollar": "USD", "dollars": "USD", "dolar": "USD", "dolares": "USD",
	"buck": "USD", "bucks": "USD",
	"euro": "EUR", "euros": "EUR",
	"lira": "TRY", "liras": "TRY", "lirasi": "TRY",
	"pound": "GBP", "pounds": "GBP", "quid": "GBP", "sterling": "GBP",
	"yen":   "JPY",
	"franc": "CHF", "francs": "CHF", "franken": "CHF",
	"rupee": "INR", "rupees": "INR",
	"yuan": "CNY", "rmb": "CNY",
	"ruble": "RUB", "rubles": "RUB", "rublo": "RUB", "rublos": "RUB",
	"reais": "BRL",
	"peso":  "MXN", "pesos": "MXN",
}

// Detect finds the first currency mention in text and returns its ISO code.
// Symbols win over codes, codes over currency words.
func Detect(text string) (string, bool) {
	for _, sc := range symbolCodes {
		if strings.Contains(text, sc.symbol) {
			return sc.code, true
		}
	}

	tokens := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	for _, tok := range tokens {
		lower := strings.ToLower(tok)
		if code, ok := plainCodes[lower]; ok {
			return code, true
		}
		if code, ok := uppercaseOnlyCodes[lower]; ok && tok == strings.ToUpper(tok) {
			return code, true
		}
	}
	for _, tok := range tokens {
		if code, ok := currencyWords[textnorm.Fold(tok)]; ok {
			return code, true
		}
	}
	return "", false
}

// Normalize maps a model-reported currency value ("$", "dollars", "usd") to
// its ISO code, falling back to the uppercased input when it already looks
// like a code.
func Normalize(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	if code, ok := Detect(raw); ok {
		return code, true
	}
	if len(raw) == 3 && isLetters(raw) {
		return strings.ToUpper(raw), true
	}
	return "", false
}

func isLetters(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
