package model

// ResultItem is the sole output type of the parsing core: one display-ready
// field of the final record. Ordering matters; handlers emit the intent item
// first and their remaining fields in a fixed order.
type ResultItem struct {
	Field        string
	Value        string // display-ready
	IsValid      bool
	ErrorMessage *string
	RawValue     *string
	Confidence   *float64
}

// ValidItem builds a trusted item.
func ValidItem(field, value string) ResultItem {
	return ResultItem{Field: field, Value: value, IsValid: true}
}

// InvalidItem builds a rejected item carrying its error message and the raw
// value that failed.
func InvalidItem(field, raw, message string) ResultItem {
	return ResultItem{Field: field, Value: raw, IsValid: false, ErrorMessage: &message, RawValue: &raw}
}

// CalorieSource records where a calorie figure came from, attached to meal
// results as auxiliary payload.
type CalorieSource struct {
	Name     string
	URL      *string
	Calories float64
}
