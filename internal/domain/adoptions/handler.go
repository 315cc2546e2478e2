package adoptions

import (
	"encoding/json"
	"net/http"

	"petresq/internal/platform/httpapi"
	"petresq/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/api/adoptions", func(ar chi.Router) {
		ar.Post("/", submitAdoptionHandler(svc, log))
		ar.Get("/", listAdoptionsHandler(svc, log))
	})
}

func submitAdoptionHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dec := json.NewDecoder(r.Body)
		dec.UseNumber()
		var fields map[string]any
		if err := dec.Decode(&fields); err != nil {
			httpapi.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		a, err := svc.Submit(r.Context(), fields)
		if err != nil {
			log.Error("saving adoption application", map[string]any{"error": err})
			httpapi.Error(w, http.StatusInternalServerError, "Unable to submit application")
			return
		}

		httpapi.WriteJSON(w, http.StatusOK, map[string]string{
			"message":       "Adoption application submitted successfully",
			"applicationId": a.ID,
		})
	}
}

func listAdoptionsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			log.Error("reading adoptions collection", map[string]any{"error": err})
			httpapi.Error(w, http.StatusInternalServerError, "Unable to fetch adoptions")
			return
		}
		httpapi.WriteJSON(w, http.StatusOK, items)
	}
}
