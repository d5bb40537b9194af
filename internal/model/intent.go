package model

// Intent labels the life-logging category of a parsed line.
type Intent string

const (
	IntentMeal              Intent = "meal"
	IntentExpense           Intent = "expense"
	IntentIncome            Intent = "income"
	IntentEvent             Intent = "event"
	IntentReminder          Intent = "reminder"
	IntentActivity          Intent = "activity"
	IntentWorkStart         Intent = "work_start"
	IntentWorkEnd           Intent = "work_end"
	IntentCalorieAdjustment Intent = "calorie_adjustment"
	IntentJournal           Intent = "journal"
	IntentNone              Intent = "none"
)

// Intents lists every classifiable intent, in the order the classifier
// prompt presents them. IntentNone is the fallback and not part of the list.
func Intents() []Intent {
	return []Intent{
		IntentMeal,
		IntentExpense,
		IntentIncome,
		IntentEvent,
		IntentReminder,
		IntentActivity,
		IntentWorkStart,
		IntentWorkEnd,
		IntentCalorieAdjustment,
		IntentJournal,
	}
}

// ParseIntent maps a classifier label onto a known intent. Unknown labels
// report false so callers can fall back to IntentNone.
func ParseIntent(s string) (Intent, bool) {
	switch Intent(s) {
	case IntentMeal, IntentExpense, IntentIncome, IntentEvent, IntentReminder,
		IntentActivity, IntentWorkStart, IntentWorkEnd, IntentCalorieAdjustment,
		IntentJournal, IntentNone:
		return Intent(s), true
	}
	return IntentNone, false
}
