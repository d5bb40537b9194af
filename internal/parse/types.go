package parse

import "lifelog-engine/internal/model"

// ParseInput carries one line and its per-request overrides.
type ParseInput struct {
	Text         string
	BaseCurrency string // ISO code, empty falls back to the engine default
}

// ParseOutput is the display-ready outcome of one parse.
type ParseOutput struct {
	Intent  model.Intent
	State   State // terminal state: StateDone, or StateFailed when a collaborator degraded the result
	Items   []model.ResultItem
	Sources []model.CalorieSource // calorie provenance, meal results only
}

// State tracks pipeline progress for one line.
type State string

const (
	StateIdle        State = "idle"
	StateClassifying State = "classifying"
	StateExtracting  State = "extracting"
	StateValidating  State = "validating"
	StateDone        State = "done"
	StateFailed      State = "failed"
)

// Result item field names, emitted in the fixed per-handler orders with the
// intent item always first.
const (
	FieldIntent        = "intent"
	FieldSubject       = "subject"
	FieldAmount        = "amount"
	FieldDay           = "day"
	FieldTime          = "time"
	FieldDuration      = "duration"
	FieldDistance      = "distance"
	FieldCalories      = "calories"
	FieldQuantity      = "quantity"
	FieldTotalCalories = "total_calories"
	FieldMenu          = "menu"
	FieldMood          = "mood"
	FieldLocation      = "location"
	FieldURL           = "url"
)
