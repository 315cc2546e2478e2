// Package submissions holds the shape shared by adoption, volunteer and
// donation applications: a server-assigned id and timestamp wrapped around
// whatever fields the form posted.
package submissions

import (
	"bytes"
	"encoding/json"
	"time"

	"petresq/internal/domain/pets"
)

// StatusPending is the only status in-scope code ever assigns; review
// happens outside this service.
const StatusPending = "pending"

// Application is one submitted form. Form fields are stored flattened
// alongside the generated fields, exactly as the files have always been
// written.
type Application struct {
	ID          string
	Status      string
	SubmittedAt time.Time
	Fields      map[string]any
}

// PetInterest returns the pet id the applicant asked about, if any.
// The form may post it as a string or a number.
func (a Application) PetInterest() (pets.ID, bool) {
	id := pets.ParseID(a.Fields["petInterest"])
	return id, id != ""
}

func (a Application) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(a.Fields)+3)
	for k, v := range a.Fields {
		out[k] = v
	}
	out["id"] = a.ID
	out["submittedAt"] = a.SubmittedAt.UTC().Format(time.RFC3339)
	out["status"] = a.Status
	return json.Marshal(out)
}

func (a *Application) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	raw := map[string]any{}
	if err := dec.Decode(&raw); err != nil {
		return err
	}

	if s, ok := raw["id"].(string); ok {
		a.ID = s
		delete(raw, "id")
	}
	if s, ok := raw["status"].(string); ok {
		a.Status = s
		delete(raw, "status")
	}
	if s, ok := raw["submittedAt"].(string); ok {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			a.SubmittedAt = t
			delete(raw, "submittedAt")
		}
	}

	a.Fields = raw
	return nil
}
