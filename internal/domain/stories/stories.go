// Package stories serves the success-story collection. Stories are
// read-only here: they are curated by hand in the data file and have no
// write path in the API.
package stories

import (
	"context"
	"net/http"

	"petresq/internal/platform/httpapi"
	"petresq/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// Story is an opaque document passed through verbatim.
type Story map[string]any

type Repository interface {
	List(ctx context.Context) ([]Story, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Story, error) {
	return s.repo.List(ctx)
}

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Get("/api/stories", func(w http.ResponseWriter, req *http.Request) {
		items, err := svc.List(req.Context())
		if err != nil {
			log.Error("reading stories collection", map[string]any{"error": err})
			httpapi.Error(w, http.StatusInternalServerError, "Unable to fetch stories")
			return
		}
		httpapi.WriteJSON(w, http.StatusOK, items)
	})
}
