package submissions

import (
	"context"
	"errors"
	"testing"
	"time"
)

type testRepo struct {
	items     []Application
	appendErr error
}

func (r *testRepo) List(ctx context.Context) ([]Application, error) {
	return r.items, nil
}

func (r *testRepo) Append(ctx context.Context, a Application) error {
	if r.appendErr != nil {
		return r.appendErr
	}
	r.items = append(r.items, a)
	return nil
}

func TestService_Submit_GeneratesServerFields(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo)

	now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	a, err := svc.Submit(context.Background(), map[string]any{
		"name":  "Priya",
		"email": "priya@example.com",
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if a.ID == "" {
		t.Fatal("missing generated id")
	}
	if a.Status != StatusPending {
		t.Fatalf("status: got %q", a.Status)
	}
	if !a.SubmittedAt.Equal(now) {
		t.Fatalf("submittedAt: got %v, want %v", a.SubmittedAt, now)
	}
	if a.Fields["name"] != "Priya" || a.Fields["email"] != "priya@example.com" {
		t.Fatalf("form fields not preserved: %v", a.Fields)
	}
	if len(repo.items) != 1 {
		t.Fatalf("expected 1 stored record, got %d", len(repo.items))
	}
}

func TestService_Submit_UniqueIDs(t *testing.T) {
	svc := NewService(&testRepo{})

	seen := map[string]bool{}
	for i := 0; i < 10; i++ {
		a, err := svc.Submit(context.Background(), map[string]any{"name": "x"})
		if err != nil {
			t.Fatalf("submit: %v", err)
		}
		if seen[a.ID] {
			t.Fatalf("duplicate id %q", a.ID)
		}
		seen[a.ID] = true
	}
}

func TestService_Submit_ClientCannotSetServerFields(t *testing.T) {
	svc := NewService(&testRepo{})
	svc.newID = func() string { return "generated" }

	a, err := svc.Submit(context.Background(), map[string]any{
		"id":          "forged",
		"status":      "approved",
		"submittedAt": "1999-01-01T00:00:00Z",
		"name":        "x",
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if a.ID != "generated" {
		t.Fatalf("client id won: %q", a.ID)
	}
	if a.Status != StatusPending {
		t.Fatalf("client status won: %q", a.Status)
	}
	if _, ok := a.Fields["submittedAt"]; ok {
		t.Fatal("client submittedAt kept in fields")
	}
}

func TestService_Submit_PropagatesRepoError(t *testing.T) {
	repo := &testRepo{appendErr: errors.New("disk full")}
	svc := NewService(repo)

	_, err := svc.Submit(context.Background(), map[string]any{"name": "x"})
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestApplication_PetInterest_LooseForms(t *testing.T) {
	a := Application{Fields: map[string]any{"petInterest": "7"}}
	if id, ok := a.PetInterest(); !ok || id != "7" {
		t.Fatalf("string form: got %q ok=%v", id, ok)
	}

	a = Application{Fields: map[string]any{"petInterest": float64(7)}}
	if id, ok := a.PetInterest(); !ok || id != "7" {
		t.Fatalf("number form: got %q ok=%v", id, ok)
	}

	a = Application{Fields: map[string]any{}}
	if _, ok := a.PetInterest(); ok {
		t.Fatal("absent petInterest reported present")
	}
}
