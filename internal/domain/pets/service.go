package pets

import "context"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Pet, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id ID) (Pet, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, id ID, patch map[string]any) (Pet, error) {
	return s.repo.Update(ctx, id, patch)
}

// MarkPending flips a pet to the pending state. Used by the adoption
// workflow when an application names a pet.
func (s *Service) MarkPending(ctx context.Context, id ID) (Pet, error) {
	return s.repo.Update(ctx, id, map[string]any{"status": string(StatusPending)})
}
