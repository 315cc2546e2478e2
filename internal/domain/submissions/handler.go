package submissions

import (
	"encoding/json"
	"net/http"

	"petresq/internal/platform/httpapi"
	"petresq/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// Routes configures the submit endpoint for one collection. Volunteers and
// donations are the same operation with different wording; adoptions has
// its own handler because of the pet side effect.
type Routes struct {
	Path       string // mount point, e.g. /api/volunteers
	Collection string // name used in log fields
	Message    string // success message in the response body
	IDField    string // response key carrying the generated id
	ErrMessage string // client-facing message on persistence failure
}

func RegisterRoutes(r chi.Router, routes Routes, svc *Service, log logger.Logger) {
	r.Post(routes.Path, submitHandler(routes, svc, log))
}

func submitHandler(routes Routes, svc *Service, log logger.Logger) http.HandlerFunc {
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
			log.Error("saving submission", map[string]any{
				"collection": routes.Collection,
				"error":      err,
			})
			httpapi.Error(w, http.StatusInternalServerError, routes.ErrMessage)
			return
		}

		httpapi.WriteJSON(w, http.StatusOK, map[string]string{
			"message":      routes.Message,
			routes.IDField: a.ID,
		})
	}
}
