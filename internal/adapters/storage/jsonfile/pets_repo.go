package jsonfile

import (
	"context"
	"errors"

	"petresq/internal/domain/pets"
)

type PetsRepo struct {
	store *Store[pets.Pet]
}

func NewPetsRepo(path string) *PetsRepo {
	return &PetsRepo{store: NewStore[pets.Pet](path)}
}

func (r *PetsRepo) List(ctx context.Context) ([]pets.Pet, error) {
	return r.store.LoadAll(ctx)
}

func (r *PetsRepo) GetByID(ctx context.Context, id pets.ID) (pets.Pet, error) {
	items, err := r.store.LoadAll(ctx)
	if err != nil {
		return pets.Pet{}, err
	}
	for _, p := range items {
		if p.ID == id {
			return p, nil
		}
	}
	return pets.Pet{}, pets.ErrNotFound
}

func (r *PetsRepo) Update(ctx context.Context, id pets.ID, patch map[string]any) (pets.Pet, error) {
	p, err := r.store.UpdateFirst(ctx,
		func(p pets.Pet) bool { return p.ID == id },
		func(p *pets.Pet) { p.Apply(patch) },
	)
	if errors.Is(err, ErrNotFound) {
		return pets.Pet{}, pets.ErrNotFound
	}
	return p, err
}
