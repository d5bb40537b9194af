package model

// SlotSource tells where a slot value came from.
type SlotSource string

const (
	SlotPattern SlotSource = "deterministic-pattern"
	SlotModel   SlotSource = "model-derived"
	SlotManual  SlotSource = "manually-entered"
)

// Slot is an extracted value with provenance and an optional confidence.
// Slots are immutable once produced; reparsing a line builds a fresh set.
type Slot[T any] struct {
	Value      T
	Confidence *float64 // 0.0–1.0 when the source reports one
	Source     SlotSource
}

// NewSlot builds a slot without a confidence figure, the usual case for
// deterministic detectors.
func NewSlot[T any](value T, source SlotSource) *Slot[T] {
	return &Slot[T]{Value: value, Source: source}
}

// NewModelSlot builds a model-derived slot carrying the model's confidence.
func NewModelSlot[T any](value T, confidence float64) *Slot[T] {
	return &Slot[T]{Value: value, Confidence: &confidence, Source: SlotModel}
}
