package memory

import (
	"context"
	"sync"

	"petresq/internal/domain/submissions"
)

type SubmissionsRepo struct {
	mu    sync.RWMutex
	items []submissions.Application
}

func NewSubmissionsRepo() *SubmissionsRepo {
	return &SubmissionsRepo{}
}

func (r *SubmissionsRepo) List(ctx context.Context) ([]submissions.Application, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]submissions.Application, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *SubmissionsRepo) Append(ctx context.Context, a submissions.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append(r.items, a)
	return nil
}
