package pets

import (
	"encoding/json"
	"errors"
	"net/http"

	"petresq/internal/platform/httpapi"
	"petresq/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/api/pets", func(pr chi.Router) {
		pr.Get("/", listPetsHandler(svc, log))
		pr.Get("/{petID}", getPetHandler(svc, log))
		pr.Put("/{petID}", updatePetHandler(svc, log))
	})
}

func listPetsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			log.Error("reading pets collection", map[string]any{"error": err})
			httpapi.Error(w, http.StatusInternalServerError, "Unable to fetch pets")
			return
		}
		httpapi.WriteJSON(w, http.StatusOK, items)
	}
}

func getPetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := ID(chi.URLParam(r, "petID"))

		p, err := svc.GetByID(r.Context(), id)
		if errors.Is(err, ErrNotFound) {
			httpapi.Error(w, http.StatusNotFound, "Pet not found")
			return
		}
		if err != nil {
			log.Error("reading pets collection", map[string]any{"petId": id, "error": err})
			httpapi.Error(w, http.StatusInternalServerError, "Unable to fetch pet")
			return
		}
		httpapi.WriteJSON(w, http.StatusOK, p)
	}
}

func updatePetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := ID(chi.URLParam(r, "petID"))

		dec := json.NewDecoder(r.Body)
		dec.UseNumber()
		var patch map[string]any
		if err := dec.Decode(&patch); err != nil {
			httpapi.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		p, err := svc.Update(r.Context(), id, patch)
		if errors.Is(err, ErrNotFound) {
			httpapi.Error(w, http.StatusNotFound, "Pet not found")
			return
		}
		if err != nil {
			log.Error("updating pet", map[string]any{"petId": id, "error": err})
			httpapi.Error(w, http.StatusInternalServerError, "Unable to update pet")
			return
		}
		httpapi.WriteJSON(w, http.StatusOK, p)
	}
}
