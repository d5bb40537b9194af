package usecase

import (
	"lifelog-engine/internal/profile/repository"
	pkgLog "lifelog-engine/pkg/log"
)

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.ProfileRepository
}

// New creates a new profile UseCase instance.
func New(l pkgLog.Logger, repo repository.ProfileRepository) *implUseCase {
	return &implUseCase{
		l:    l,
		repo: repo,
	}
}
