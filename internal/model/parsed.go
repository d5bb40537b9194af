package model

// ParsedResult aggregates the optional slots one line can yield. Which
// fields are populated depends on the intent; the reminder/event day and
// time pairs are mutually exclusive, selected by intent.
type ParsedResult struct {
	Intent *Slot[Intent]
	Object *Slot[string]

	ReminderDay  *Slot[string] // day label or absolute date
	ReminderTime *Slot[string] // "15:04"
	EventDay     *Slot[string]
	EventTime    *Slot[string]
	InvalidDay   *Slot[string] // raw text of an unparseable date mention
	InvalidTime  *Slot[string] // raw text of an unparseable time mention

	Currency *Slot[string]
	Amount   *Slot[float64]
	Duration *Slot[float64] // minutes
	Distance *Slot[float64] // kilometers
	Reps     *Slot[int]

	MealGrams    *Slot[float64]
	MealCalories *Slot[float64]
	MealIsMenu   *Slot[bool]

	Mood     *Slot[string] // emoji
	Location *Slot[string]
	URL      *Slot[string]
}

// Day returns the populated day slot for the result's intent, reminder
// first.
func (p *ParsedResult) Day() *Slot[string] {
	if p.ReminderDay != nil {
		return p.ReminderDay
	}
	return p.EventDay
}

// Time returns the populated time slot for the result's intent.
func (p *ParsedResult) Time() *Slot[string] {
	if p.ReminderTime != nil {
		return p.ReminderTime
	}
	return p.EventTime
}
