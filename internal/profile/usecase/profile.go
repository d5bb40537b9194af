package usecase

import (
	"context"

	"lifelog-engine/internal/model"
	"lifelog-engine/internal/profile"
)

var _ profile.UseCase = (*implUseCase)(nil)

func (uc *implUseCase) Get(ctx context.Context) (model.Profile, error) {
	p, err := uc.repo.Get(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "profile.Get: %v", err)
		return model.Profile{}, err
	}
	return p, nil
}

// Update applies a partial update; nil input fields keep their stored value.
func (uc *implUseCase) Update(ctx context.Context, input profile.UpdateInput) (model.Profile, error) {
	p, err := uc.repo.Get(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "profile.Update Get: %v", err)
		return model.Profile{}, err
	}

	if input.WeightKg != nil {
		p.WeightKg = input.WeightKg
	}
	if input.HeightCm != nil {
		p.HeightCm = input.HeightCm
	}
	if input.Age != nil {
		p.Age = input.Age
	}
	if input.Sex != nil {
		p.Sex = *input.Sex
	}

	if err := uc.repo.Save(ctx, p); err != nil {
		uc.l.Errorf(ctx, "profile.Update Save: %v", err)
		return model.Profile{}, err
	}
	return p, nil
}
