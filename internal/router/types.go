package router

import "lifelog-engine/internal/model"

// Output is the structured response from the semantic classifier
type Output struct {
	Intent     model.Intent `json:"intent"`
	Confidence float64      `json:"confidence"` // 0..1
	Reasoning  string       `json:"reasoning"`  // Optional: why this intent was chosen
}

// wireOutput carries the raw label before it is mapped onto a known intent
type wireOutput struct {
	Intent     string  `json:"intent"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
}
