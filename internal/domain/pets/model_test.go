package pets

import (
	"encoding/json"
	"testing"
)

func TestID_UnmarshalNumberAndString(t *testing.T) {
	var p Pet
	if err := json.Unmarshal([]byte(`{"id": 7, "name": "Luna"}`), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if p.ID != "7" {
		t.Fatalf("numeric id: got %q, want %q", p.ID, "7")
	}

	if err := json.Unmarshal([]byte(`{"id": "a1b2"}`), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if p.ID != "a1b2" {
		t.Fatalf("string id: got %q, want %q", p.ID, "a1b2")
	}
}

func TestID_MarshalKeepsNumericForm(t *testing.T) {
	b, err := json.Marshal(ID("7"))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != "7" {
		t.Fatalf("numeric id re-encoded as %s, want 7", b)
	}

	b, err = json.Marshal(ID("6e4a2f"))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"6e4a2f"` {
		t.Fatalf("uuid-ish id re-encoded as %s, want quoted", b)
	}
}

func TestPet_RoundTripPreservesUnknownFields(t *testing.T) {
	src := []byte(`{"id": 3, "name": "Max", "age": 4, "microchipped": true, "status": "available"}`)

	var p Pet
	if err := json.Unmarshal(src, &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if p.Status != StatusAvailable {
		t.Fatalf("status: got %q", p.Status)
	}

	out, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatalf("re-unmarshal: %v", err)
	}
	if got["id"] != float64(3) {
		t.Fatalf("id lost numeric form: %v (%T)", got["id"], got["id"])
	}
	if got["age"] != float64(4) {
		t.Fatalf("age changed: %v", got["age"])
	}
	if got["microchipped"] != true {
		t.Fatalf("unknown field dropped: %v", got)
	}
	if got["status"] != "available" {
		t.Fatalf("status changed: %v", got["status"])
	}
}

func TestPet_ApplyShallowMerge(t *testing.T) {
	var p Pet
	if err := json.Unmarshal([]byte(`{"id": 7, "name": "Luna", "status": "available"}`), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	p.Apply(map[string]any{"status": "adopted", "adopter": "Dan"})

	if p.ID != "7" {
		t.Fatalf("id changed: %q", p.ID)
	}
	if p.Status != StatusAdopted {
		t.Fatalf("status: got %q", p.Status)
	}
	if p.Fields["name"] != "Luna" {
		t.Fatalf("untouched field changed: %v", p.Fields["name"])
	}
	if p.Fields["adopter"] != "Dan" {
		t.Fatalf("new field missing: %v", p.Fields)
	}
}
