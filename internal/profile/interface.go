package profile

import (
	"context"

	"lifelog-engine/internal/model"
)

// UseCase defines the business logic interface for the health profile.
// The profile is a single record; parsing reads it, the HTTP API edits it.
type UseCase interface {
	Get(ctx context.Context) (model.Profile, error)
	Update(ctx context.Context, input UpdateInput) (model.Profile, error)
}
