package profile

import "lifelog-engine/internal/model"

// UpdateInput carries a partial profile update. Nil fields keep their
// current value.
type UpdateInput struct {
	WeightKg *float64
	HeightCm *float64
	Age      *int
	Sex      *model.Sex
}
