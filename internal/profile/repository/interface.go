package repository

import (
	"context"

	"lifelog-engine/internal/model"
)

// ProfileRepository is the interface for profile persistence.
type ProfileRepository interface {
	Get(ctx context.Context) (model.Profile, error)
	Save(ctx context.Context, p model.Profile) error
}
