package submissions

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository

	now   func() time.Time
	newID func() string
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:  repo,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Submit stamps the form fields with a fresh id, the server clock and the
// pending status, and appends the record to the collection. The generated
// fields always win over anything the client posted under the same names.
func (s *Service) Submit(ctx context.Context, fields map[string]any) (Application, error) {
	kept := make(map[string]any, len(fields))
	for k, v := range fields {
		switch k {
		case "id", "submittedAt", "status":
			// server-assigned
		default:
			kept[k] = v
		}
	}

	a := Application{
		ID:          s.newID(),
		Status:      StatusPending,
		SubmittedAt: s.now().UTC(),
		Fields:      kept,
	}

	if err := s.repo.Append(ctx, a); err != nil {
		return Application{}, err
	}
	return a, nil
}

func (s *Service) List(ctx context.Context) ([]Application, error) {
	return s.repo.List(ctx)
}
