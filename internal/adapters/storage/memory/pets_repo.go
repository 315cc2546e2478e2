// Package memory holds in-memory repositories for dev mode
// (DATA_DIR=:memory:) and tests. Records live in insertion order, like
// the files they stand in for.
package memory

import (
	"context"
	"sync"

	"petresq/internal/domain/pets"
)

type PetsRepo struct {
	mu    sync.RWMutex
	items []pets.Pet
}

// NewPetsRepo starts from the given seed, which may be nil.
func NewPetsRepo(seed []pets.Pet) *PetsRepo {
	return &PetsRepo{items: append([]pets.Pet(nil), seed...)}
}

func (r *PetsRepo) List(ctx context.Context) ([]pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pets.Pet, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *PetsRepo) GetByID(ctx context.Context, id pets.ID) (pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.items {
		if p.ID == id {
			return p, nil
		}
	}
	return pets.Pet{}, pets.ErrNotFound
}

func (r *PetsRepo) Update(ctx context.Context, id pets.ID, patch map[string]any) (pets.Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID != id {
			continue
		}
		r.items[i].Apply(patch)
		return r.items[i], nil
	}
	return pets.Pet{}, pets.ErrNotFound
}
