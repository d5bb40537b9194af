package memory

import (
	"context"
	"sync"

	"lifelog-engine/internal/model"
	"lifelog-engine/internal/profile/repository"
)

type implRepository struct {
	mu      sync.RWMutex
	profile model.Profile
}

var _ repository.ProfileRepository = (*implRepository)(nil)

// New creates an in-memory profile repository.
func New() repository.ProfileRepository {
	return &implRepository{}
}

func (r *implRepository) Get(ctx context.Context) (model.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.profile, nil
}

func (r *implRepository) Save(ctx context.Context, p model.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profile = p
	return nil
}
