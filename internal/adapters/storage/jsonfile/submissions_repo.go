package jsonfile

import (
	"context"

	"petresq/internal/domain/submissions"
)

// SubmissionsRepo backs one submission collection (adoptions, volunteers
// or donations); each gets its own instance over its own file.
type SubmissionsRepo struct {
	store *Store[submissions.Application]
}

func NewSubmissionsRepo(path string) *SubmissionsRepo {
	return &SubmissionsRepo{store: NewStore[submissions.Application](path)}
}

func (r *SubmissionsRepo) List(ctx context.Context) ([]submissions.Application, error) {
	return r.store.LoadAll(ctx)
}

func (r *SubmissionsRepo) Append(ctx context.Context, a submissions.Application) error {
	return r.store.Append(ctx, a)
}
