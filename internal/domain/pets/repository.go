package pets

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("pet not found")

type Repository interface {
	List(ctx context.Context) ([]Pet, error)
	GetByID(ctx context.Context, id ID) (Pet, error)

	// Update shallow-merges patch into the pet with the given id and
	// persists the result. Returns ErrNotFound without writing when the
	// id is absent.
	Update(ctx context.Context, id ID, patch map[string]any) (Pet, error)
}
