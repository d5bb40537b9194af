package usecase

import (
	"lifelog-engine/internal/currency"
	"lifelog-engine/internal/profile"
	"lifelog-engine/internal/vars/repository"
	pkgLog "lifelog-engine/pkg/log"
)

type implUseCase struct {
	l         pkgLog.Logger
	repo      repository.VariableRepository
	converter currency.Converter
	profile   profile.UseCase
}

// New creates a new vars UseCase instance.
func New(l pkgLog.Logger, repo repository.VariableRepository, converter currency.Converter, prof profile.UseCase) *implUseCase {
	return &implUseCase{
		l:         l,
		repo:      repo,
		converter: converter,
		profile:   prof,
	}
}
