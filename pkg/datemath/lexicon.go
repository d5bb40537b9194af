package datemath

import (
	"strings"
	"time"

	"lifelog-engine/pkg/textnorm"
)

// Month name lexicon. Keys are diacritic-folded lowercase names covering
// English, Turkish, French, German, Spanish and Portuguese, plus English
// three-letter abbreviations. Accented spellings ("Ağustos", "août") reach
// these entries through folding at lookup time.
var monthNames = map[string]time.Month{
	// English (full + 3-letter)
	"january": time.January, "february": time.February, "march": time.March,
	"april": time.April, "may": time.May, "june": time.June, "july": time.July,
	"august": time.August, "september": time.September, "october": time.October,
	"november": time.November, "december": time.December,
	"jan": time.January, "feb": time.February, "mar": time.March, "apr": time.April,
	"jun": time.June, "jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
	// Turkish
	"ocak": time.January, "subat": time.February, "mart": time.March,
	"nisan": time.April, "mayis": time.May, "haziran": time.June,
	"temmuz": time.July, "agustos": time.August, "eylul": time.September,
	"ekim": time.October, "kasim": time.November, "aralik": time.December,
	// French
	"janvier": time.January, "fevrier": time.February, "mars": time.March,
	"avril": time.April, "mai": time.May, "juin": time.June, "juillet": time.July,
	"aout": time.August, "septembre": time.September, "octobre": time.October,
	"novembre": time.November, "decembre": time.December,
	// German
	"januar": time.January, "februar": time.February, "marz": time.March,
	"juni": time.June, "juli": time.July, "oktober": time.October, "dezember": time.December,
	// Spanish
	"enero": time.January, "febrero": time.February, "marzo": time.March,
	"abril": time.April, "mayo": time.May, "junio": time.June, "julio": time.July,
	"agosto": time.August, "septiembre": time.September, "octubre": time.October,
	"noviembre": time.November, "diciembre": time.December,
	// Portuguese
	"janeiro": time.January, "fevereiro": time.February, "marco": time.March,
	"maio": time.May, "junho": time.June, "julho": time.July,
	"setembro": time.September, "outubro": time.October, "novembro": time.November,
	"dezembro": time.December,
}

// Weekday name lexicon, folded lowercase → weekday.
var weekdayNames = map[string]time.Weekday{
	// English
	"monday": time.Monday, "tuesday": time.Tuesday, "wednesday": time.Wednesday,
	"thursday": time.Thursday, "friday": time.Friday, "saturday": time.Saturday,
	"sunday": time.Sunday,
	// Turkish
	"pazartesi": time.Monday, "sali": time.Tuesday, "carsamba": time.Wednesday,
	"persembe": time.Thursday, "cuma": time.Friday, "cumartesi": time.Saturday,
	"pazar": time.Sunday,
	// German
	"montag": time.Monday, "dienstag": time.Tuesday, "mittwoch": time.Wednesday,
	"donnerstag": time.Thursday, "freitag": time.Friday, "samstag": time.Saturday,
	"sonntag": time.Sunday,
	// French
	"lundi": time.Monday, "mardi": time.Tuesday, "mercredi": time.Wednesday,
	"jeudi": time.Thursday, "vendredi": time.Friday, "samedi": time.Saturday,
	"dimanche": time.Sunday,
	// Spanish
	"lunes": time.Monday, "martes": time.Tuesday, "miercoles": time.Wednesday,
	"jueves": time.Thursday, "viernes": time.Friday, "sabado": time.Saturday,
	"domingo": time.Sunday,
	// Portuguese
	"segunda": time.Monday, "terca": time.Tuesday, "quarta": time.Wednesday,
	"quinta": time.Thursday, "sexta": time.Friday,
}

// English weekday label per time.Weekday, used for DayLabel construction.
var weekdayLabels = map[time.Weekday]string{
	time.Monday:    "monday",
	time.Tuesday:   "tuesday",
	time.Wednesday: "wednesday",
	time.Thursday:  "thursday",
	time.Friday:    "friday",
	time.Saturday:  "saturday",
	time.Sunday:    "sunday",
}

// "next <weekday>" markers that appear before the weekday name.
var nextAliasBefore = []string{
	"next", "gelecek", "onumuzdeki", "önümüzdeki", "haftaya",
	"nachsten", "nächsten", "nachste", "nächste",
	"el proximo", "el próximo", "proximo", "próximo", "proxima", "próxima",
}

// "next" markers that follow the weekday name (French style: "lundi prochain").
var nextAliasAfter = []string{"prochain", "prochaine", "que viene"}

// Relative-day keywords, folded lowercase. "Tonight" and friends map to today;
// the clock detectors independently assign an evening time for them.
var todayWords = []string{"today", "bugun", "bugün", "aujourd'hui", "aujourdhui", "heute", "hoy", "hoje"}
var tomorrowWords = []string{"tomorrow", "tmrw", "yarin", "yarın", "demain", "morgen", "manana", "mañana", "amanha", "amanhã"}
var tonightWords = []string{"tonight", "bu aksam", "bu akşam", "bu gece", "ce soir", "heute abend", "esta noche", "esta noite"}

// Period keywords by family, folded lowercase. These drive both standalone
// time-of-day defaults and AM/PM disambiguation when an hour follows.
var morningWords = []string{"morning", "sabah", "sabahleyin", "matin", "morgens", "vormittag", "por la manana", "de manha", "da manha", "this morning"}
var eveningWords = []string{"evening", "tonight", "aksam", "akşam", "akşamleyin", "aksamleyin", "soir", "abend", "abends", "am abend", "por la tarde", "tarde", "a noite", "à noite"}
var nightWords = []string{"night", "gece", "geceleyin", "nuit", "nachts", "noche", "noite", "por la noche", "madrugada", "de noite"}
var noonWords = []string{"noon", "midday", "oglen", "öğlen", "ogle", "öğle", "midi", "mittag", "mittags", "mediodia", "mediodía", "meio-dia", "meio dia"}
var midnightWords = []string{"midnight", "gece yarisi", "gece yarısı", "minuit", "mitternacht", "medianoche", "meia-noite", "meia noite"}

// Keywords that introduce an explicit hour ("at 5", "saat 17", "um 5").
var hourPrefixWords = []string{"at", "saat", "um", "a las", "as", "às", "a la", "alle"}

// Number words accepted wherever a digit quantity is, including 0.5 via "half".
var numberWords = map[string]float64{
	"half": 0.5, "a": 1, "an": 1,
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5, "six": 6,
	"seven": 7, "eight": 8, "nine": 9, "ten": 10, "eleven": 11, "twelve": 12,
	"yarim": 0.5, "yarım": 0.5,
	"bir": 1, "iki": 2, "uc": 3, "üç": 3, "dort": 4, "dört": 4, "bes": 5, "beş": 5,
	"alti": 6, "altı": 6, "yedi": 7, "sekiz": 8, "dokuz": 9, "on": 10,
	"on bir": 11, "on iki": 12,
}

type offsetUnit int

const (
	unitMinute offsetUnit = iota
	unitHour
	unitDay
	unitWeek
	unitMonth
)

// Offset unit words, folded lowercase.
var offsetUnits = map[string]offsetUnit{
	"minute": unitMinute, "minutes": unitMinute, "min": unitMinute, "mins": unitMinute,
	"dakika": unitMinute, "dk": unitMinute,
	"minuten": unitMinute, "minuto": unitMinute, "minutos": unitMinute,
	"hour": unitHour, "hours": unitHour, "hr": unitHour, "hrs": unitHour,
	"saat": unitHour, "stunde": unitHour, "stunden": unitHour,
	"heure": unitHour, "heures": unitHour, "hora": unitHour, "horas": unitHour,
	"day": unitDay, "days": unitDay, "gun": unitDay, "gün": unitDay,
	"tag": unitDay, "tage": unitDay, "tagen": unitDay,
	"jour": unitDay, "jours": unitDay, "dia": unitDay, "dias": unitDay, "día": unitDay, "días": unitDay,
	"week": unitWeek, "weeks": unitWeek, "hafta": unitWeek,
	"woche": unitWeek, "wochen": unitWeek, "semaine": unitWeek, "semaines": unitWeek,
	"semana": unitWeek, "semanas": unitWeek,
	"month": unitMonth, "months": unitMonth, "ay": unitMonth,
	"monat": unitMonth, "monate": unitMonth, "monaten": unitMonth, "mois": unitMonth,
	"mes": unitMonth, "meses": unitMonth, "mês": unitMonth,
}

// Offset markers. "in 10 minutes", "10 minutes later", "10 dakika sonra".
var offsetPrefixWords = []string{"in", "dans", "en", "em"}
var offsetSuffixWords = []string{"later", "sonra", "icinde", "içinde", "später", "spater", "plus tard", "despues", "después", "depois"}

// Command prefixes stripped from the start of a line before title extraction.
// Folded lowercase; longest match wins, applied repeatedly.
var commandPrefixes = []string{
	// English
	"remind me to", "remind me about", "remind me", "remember to", "set a reminder to",
	"set a reminder for", "note to", "note down", "add a reminder to", "don't forget to", "dont forget to",
	// Turkish
	"bana hatirlat", "bana hatırlat", "hatirlat", "hatırlat", "not al", "unutma",
	"hatirlatir misin", "hatırlatır mısın",
	// German
	"erinnere mich an", "erinnere mich", "erinnern sie mich an",
	// French
	"rappelle-moi de", "rappelle moi de", "rappelle-moi", "rappelle moi", "rappeler de",
	// Spanish
	"recuerdame", "recuérdame", "recordarme", "no olvides",
	// Portuguese
	"lembre-me de", "lembre me de", "lembra-me de", "me lembre de", "me lembra de",
	// Italian
	"ricordami di", "ricordami",
	// Dutch
	"herinner me aan", "herinner mij aan", "herinner me",
	// Russian
	"напомни мне", "напомните мне",
	// Polish
	"przypomnij mi",
	// Swedish
	"paminn mig om", "påminn mig om",
	// Danish / Norwegian
	"mind mig om", "minn meg om", "minn meg pa", "minn meg på",
	// Finnish
	"muistuta minua",
	// Indonesian
	"ingatkan saya", "ingatkan aku",
	// Arabic (transliterated script kept as typed)
	"ذكرني",
}

// Connector words eaten together with an adjacent temporal span: "at 3pm",
// "um 15 Uhr", "a las 3", "o 15:00".
var connectorWords = []string{
	"at", "on", "in", "um", "am", "a", "à", "las", "alle", "às", "as",
	"saat", "kl", "om", "klo", "o", "de", "den",
}

// Courtesy phrases stripped from the end of a line.
var courtesyPhrases = []string{
	"please", "thanks", "thank you", "thx", "pls", "plz",
	"lutfen", "lütfen", "tesekkurler", "teşekkürler", "tesekkur ederim", "teşekkür ederim", "sagol", "sağol",
	"bitte", "danke", "danke schon", "danke schön",
	"merci", "s'il te plait", "s'il te plaît", "s'il vous plait", "s'il vous plaît", "stp", "svp",
	"por favor", "gracias", "obrigado", "obrigada",
	"grazie", "per favore",
	"alsjeblieft", "dank je",
	"пожалуйста", "спасибо",
}

// lookupMonth resolves a matched month name through diacritic folding.
func lookupMonth(name string) (time.Month, bool) {
	m, ok := monthNames[textnorm.Fold(name)]
	return m, ok
}

// lookupWeekday resolves a matched weekday name through diacritic folding.
// Portuguese "-feira" suffixes are accepted.
func lookupWeekday(name string) (time.Weekday, bool) {
	folded := textnorm.Fold(name)
	folded = strings.TrimSuffix(folded, "-feira")
	wd, ok := weekdayNames[folded]
	return wd, ok
}

// lookupNumberWord resolves a quantity word ("half", "two", "yarım").
func lookupNumberWord(word string) (float64, bool) {
	n, ok := numberWords[textnorm.Fold(strings.TrimSpace(word))]
	return n, ok
}

// lookupOffsetUnit resolves a duration unit word.
func lookupOffsetUnit(word string) (offsetUnit, bool) {
	u, ok := offsetUnits[textnorm.Fold(strings.TrimSpace(word))]
	return u, ok
}

func wordSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[textnorm.Fold(w)] = struct{}{}
	}
	return set
}
