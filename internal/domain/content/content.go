// Package content serves the static marketing endpoints: the stats
// counters shown on the landing page and the blog seed data.
package content

import (
	"context"
	"net/http"

	"petresq/internal/platform/httpapi"
	"petresq/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// Stats are the hand-maintained numbers behind the landing-page counters.
type Stats struct {
	PetsRescued         int `json:"petsRescued"`
	SuccessfulAdoptions int `json:"successfulAdoptions"`
	Volunteers          int `json:"volunteers"`
	Cities              int `json:"cities"`
}

// DefaultStats are the numbers the landing page has always shown.
var DefaultStats = Stats{
	PetsRescued:         1250,
	SuccessfulAdoptions: 890,
	Volunteers:          156,
	Cities:              24,
}

// BlogPost is an opaque document passed through verbatim.
type BlogPost map[string]any

type BlogRepository interface {
	List(ctx context.Context) ([]BlogPost, error)
}

func RegisterRoutes(r chi.Router, stats Stats, blog BlogRepository, log logger.Logger) {
	r.Get("/api/stats", func(w http.ResponseWriter, req *http.Request) {
		httpapi.WriteJSON(w, http.StatusOK, stats)
	})

	r.Get("/api/blog", func(w http.ResponseWriter, req *http.Request) {
		posts, err := blog.List(req.Context())
		if err != nil {
			log.Error("reading blog collection", map[string]any{"error": err})
			httpapi.Error(w, http.StatusInternalServerError, "Unable to fetch blog posts")
			return
		}
		httpapi.WriteJSON(w, http.StatusOK, posts)
	})
}
