package usecase

import (
	"context"
	"strings"

	"lifelog-engine/internal/model"
	"lifelog-engine/internal/vars"
	"lifelog-engine/internal/vars/repository"
	"lifelog-engine/pkg/textnorm"
)

var _ vars.UseCase = (*implUseCase)(nil)

func (uc *implUseCase) Define(ctx context.Context, input vars.DefineInput) (model.Variable, error) {
	name := textnorm.Slugify(input.Name)
	if name == "" {
		return model.Variable{}, vars.ErrEmptyName
	}

	typ, derived, cur, err := deriveValue(input.Type, input.RawValue, input.Currency)
	if err != nil {
		return model.Variable{}, err
	}

	if !input.Overwrite {
		existing, err := uc.repo.GetOne(ctx, repository.GetOneOptions{Name: name, Type: typ})
		if err != nil {
			uc.l.Errorf(ctx, "vars.Define GetOne: %v", err)
			return model.Variable{}, err
		}
		if existing.ID != "" {
			return model.Variable{}, vars.ErrVariableExists
		}
	}

	v := model.Variable{
		Name:     name,
		Type:     typ,
		RawValue: strings.TrimSpace(input.RawValue),
		Currency: cur,
		Derived:  derived,
	}
	out, err := uc.repo.Create(ctx, v)
	if err != nil {
		uc.l.Errorf(ctx, "vars.Define Create: %v", err)
		return model.Variable{}, err
	}
	return out, nil
}

func (uc *implUseCase) Update(ctx context.Context, input vars.UpdateInput) (model.Variable, error) {
	name := textnorm.Slugify(input.Name)
	if name == "" {
		return model.Variable{}, vars.ErrEmptyName
	}

	existing, err := uc.repo.GetOne(ctx, repository.GetOneOptions{Name: name})
	if err != nil {
		uc.l.Errorf(ctx, "vars.Update GetOne: %v", err)
		return model.Variable{}, err
	}
	if existing.ID == "" {
		return model.Variable{}, vars.ErrVariableNotFound
	}

	typ := existing.Type
	if input.Type != "" {
		typ = input.Type
	}
	raw := input.RawValue
	if raw == "" {
		raw = existing.RawValue
	}

	typ, derived, cur, err := deriveValue(typ, raw, input.Currency)
	if err != nil {
		return model.Variable{}, err
	}

	// a type change moves the variable between namespaces
	if typ != existing.Type {
		if _, err := uc.repo.Delete(ctx, repository.DeleteOptions{Name: name, Type: existing.Type}); err != nil {
			uc.l.Errorf(ctx, "vars.Update Delete: %v", err)
			return model.Variable{}, err
		}
	}

	out, err := uc.repo.Update(ctx, model.Variable{
		Name:     name,
		Type:     typ,
		RawValue: strings.TrimSpace(raw),
		Currency: cur,
		Derived:  derived,
	})
	if err != nil {
		uc.l.Errorf(ctx, "vars.Update Update: %v", err)
		return model.Variable{}, err
	}
	return out, nil
}

func (uc *implUseCase) Delete(ctx context.Context, name string) error {
	slug := textnorm.Slugify(name)
	if slug == "" {
		return vars.ErrEmptyName
	}

	removed, err := uc.repo.Delete(ctx, repository.DeleteOptions{Name: slug})
	if err != nil {
		uc.l.Errorf(ctx, "vars.Delete: %v", err)
		return err
	}
	if removed == 0 {
		return vars.ErrVariableNotFound
	}
	return nil
}

func (uc *implUseCase) List(ctx context.Context) ([]model.Variable, error) {
	out, err := uc.repo.List(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "vars.List: %v", err)
		return nil, err
	}
	return out, nil
}

func (uc *implUseCase) Get(ctx context.Context, name string) (model.Variable, error) {
	slug := textnorm.Slugify(name)
	if slug == "" {
		return model.Variable{}, vars.ErrVariableNotFound
	}

	v, err := uc.repo.GetOne(ctx, repository.GetOneOptions{Name: slug})
	if err != nil {
		uc.l.Errorf(ctx, "vars.Get: %v", err)
		return model.Variable{}, err
	}
	if v.ID == "" {
		return model.Variable{}, vars.ErrVariableNotFound
	}
	return v, nil
}
