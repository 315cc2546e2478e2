package pets

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Status is the adoption state of a pet.
type Status string

const (
	StatusAvailable Status = "available"
	StatusPending   Status = "pending"
	StatusAdopted   Status = "adopted"
)

// ID identifies a pet. Seed data uses numeric ids while anything generated
// by this service uses UUID strings, so an ID accepts both JSON forms and
// re-encodes numeric ids as numbers to keep the files byte-compatible.
// Lookups compare canonical string forms, which preserves the coercing
// id comparison clients depend on ("/api/pets/7" finds the pet stored
// with id 7).
type ID string

// ParseID normalizes a JSON-decoded value into an ID.
func ParseID(v any) ID {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return ID(t)
	case json.Number:
		return ID(t.String())
	case float64:
		return ID(strconv.FormatFloat(t, 'f', -1, 64))
	case int:
		return ID(strconv.Itoa(t))
	default:
		return ""
	}
}

func (id ID) String() string { return string(id) }

func (id *ID) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

func (id ID) MarshalJSON() ([]byte, error) {
	// json.Valid rejects non-number forms like "007" or "1e", so this
	// only emits a bare literal for ids that round-trip as numbers.
	if len(id) > 0 && (id[0] == '-' || (id[0] >= '0' && id[0] <= '9')) && json.Valid([]byte(id)) {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

// Pet is one record in the pets collection. The seed files predate this
// service and are not uniformly shaped, so only the fields the service
// actually reads are typed; everything else (name, type, breed, age,
// location, image, ...) rides along untouched in Fields.
type Pet struct {
	ID     ID
	Status Status
	Fields map[string]any
}

func (p Pet) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(p.Fields)+2)
	for k, v := range p.Fields {
		out[k] = v
	}
	out["id"] = p.ID
	if p.Status != "" {
		out["status"] = string(p.Status)
	}
	return json.Marshal(out)
}

func (p *Pet) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber() // keeps ages etc. as exact literals across rewrites

	raw := map[string]any{}
	if err := dec.Decode(&raw); err != nil {
		return err
	}

	p.ID = ParseID(raw["id"])
	delete(raw, "id")

	if s, ok := raw["status"].(string); ok {
		p.Status = Status(s)
		delete(raw, "status")
	}

	p.Fields = raw
	return nil
}

// Apply shallow-merges patch into the pet, last write wins. Unknown keys
// are kept verbatim.
func (p *Pet) Apply(patch map[string]any) {
	for k, v := range patch {
		switch k {
		case "id":
			p.ID = ParseID(v)
		case "status":
			if s, ok := v.(string); ok {
				p.Status = Status(s)
				continue
			}
			fallthrough
		default:
			if p.Fields == nil {
				p.Fields = map[string]any{}
			}
			p.Fields[k] = v
		}
	}
}
