// Package adoptions implements adoption submission: a regular form
// submission plus a best-effort status flip on the pet the applicant
// asked about.
package adoptions

import (
	"context"
	"errors"

	"petresq/internal/domain/pets"
	"petresq/internal/domain/submissions"
	"petresq/internal/platform/logger"
)

type Service struct {
	apps *submissions.Service
	pets *pets.Service
	log  logger.Logger
}

func NewService(apps *submissions.Service, petsSvc *pets.Service, log logger.Logger) *Service {
	return &Service{apps: apps, pets: petsSvc, log: log}
}

// Submit saves the adoption application. When the form names a pet, that
// pet is marked pending first; any failure there (unknown id, storage
// error) is logged and deliberately ignored so that the application itself
// is never lost. The two files can therefore diverge after a storage
// failure, which is the accepted trade-off.
func (s *Service) Submit(ctx context.Context, fields map[string]any) (submissions.Application, error) {
	if petID := pets.ParseID(fields["petInterest"]); petID != "" {
		if _, err := s.pets.MarkPending(ctx, petID); err != nil {
			lvl := s.log.Error
			if errors.Is(err, pets.ErrNotFound) {
				lvl = s.log.Warn
			}
			lvl("updating pet status for adoption", map[string]any{
				"petId": petID,
				"error": err,
			})
		}
	}

	return s.apps.Submit(ctx, fields)
}

func (s *Service) List(ctx context.Context) ([]submissions.Application, error) {
	return s.apps.List(ctx)
}
