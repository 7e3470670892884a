package activitylogs

import (
	"context"
	"errors"
	"testing"
)

// -------------------------
// Fakes
// -------------------------

type testRepo struct {
	nextID int64
	byID   map[int64]Log

	// createErr simula lo que devuelve el store en la escritura (p.ej. FK).
	createErr error
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[int64]Log{}}
}

func (r *testRepo) Create(ctx context.Context, l Log) (Log, error) {
	if r.createErr != nil {
		return Log{}, r.createErr
	}
	r.nextID++
	l.ID = r.nextID
	r.byID[l.ID] = l
	return l, nil
}

func (r *testRepo) Update(ctx context.Context, l Log) error {
	if _, ok := r.byID[l.ID]; !ok {
		return ErrNotFound
	}
	r.byID[l.ID] = l
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id int64) (Entry, error) {
	l, ok := r.byID[id]
	if !ok {
		return Entry{}, ErrNotFound
	}
	return Entry{Log: l}, nil
}

func (r *testRepo) List(ctx context.Context) ([]Entry, error) {
	out := make([]Entry, 0, len(r.byID))
	for _, l := range r.byID {
		out = append(out, Entry{Log: l})
	}
	return out, nil
}

func (r *testRepo) ListByPet(ctx context.Context, petID int64) ([]Entry, error) {
	out := make([]Entry, 0)
	for _, l := range r.byID {
		if l.PetID == petID {
			out = append(out, Entry{Log: l})
		}
	}
	return out, nil
}

func (r *testRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

type petSet map[int64]bool

func (s petSet) Exists(ctx context.Context, id int64) (bool, error) { return s[id], nil }

type brokenPets struct{}

func (brokenPets) Exists(ctx context.Context, id int64) (bool, error) {
	return false, errors.New("disk I/O error")
}

// -------------------------
// Tests
// -------------------------

func TestService_Create_RequiredFields(t *testing.T) {
	svc := NewService(newTestRepo(), petSet{1: true})

	for _, in := range []Input{
		{PetID: 1, Activity: "Walk"},
		{Date: "2025-01-01", Activity: "Walk"},
		{Date: "2025-01-01", PetID: 1, Activity: " "},
	} {
		_, err := svc.Create(context.Background(), in)
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %+v, got %v", in, err)
		}
		if err.Error() != "Date, pet_id, and activity are required" {
			t.Fatalf("unexpected message %q", err.Error())
		}
	}
}

func TestService_Create_RejectsBadDate(t *testing.T) {
	svc := NewService(newTestRepo(), petSet{1: true})

	_, err := svc.Create(context.Background(), Input{Date: "yesterday", PetID: 1, Activity: "Walk"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestService_Create_UnknownPet(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, petSet{1: true})

	_, err := svc.Create(context.Background(), Input{Date: "2025-01-01", PetID: 999, Activity: "Walk"})
	if !errors.Is(err, ErrPetNotFound) {
		t.Fatalf("expected ErrPetNotFound, got %v", err)
	}
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("ErrPetNotFound must classify as invalid input")
	}
	if err.Error() != "Pet not found" {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if len(repo.byID) != 0 {
		t.Fatalf("no row should be created")
	}
}

func TestService_Create_StoreForeignKeyWins(t *testing.T) {
	// La mascota existía al chequear pero se borró antes del INSERT.
	repo := newTestRepo()
	repo.createErr = ErrPetNotFound
	svc := NewService(repo, petSet{1: true})

	_, err := svc.Create(context.Background(), Input{Date: "2025-01-01", PetID: 1, Activity: "Walk"})
	if !errors.Is(err, ErrPetNotFound) {
		t.Fatalf("expected ErrPetNotFound from store, got %v", err)
	}
}

func TestService_Create_PetCheckFailureIsNotValidation(t *testing.T) {
	svc := NewService(newTestRepo(), brokenPets{})

	_, err := svc.Create(context.Background(), Input{Date: "2025-01-01", PetID: 1, Activity: "Walk"})
	if err == nil || errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected storage error, got %v", err)
	}
}

func TestService_Update_FullReplace(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, petSet{1: true, 2: true})
	ctx := context.Background()

	l, err := svc.Create(ctx, Input{Date: "2025-10-01", PetID: 1, Activity: "Walk", Note: "park"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Update(ctx, l.ID, Input{Date: "2025-10-02", PetID: 2, Activity: "Meal"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Note != nil {
		t.Fatalf("note should be null after replace, got %q", *updated.Note)
	}
	if repo.byID[l.ID].PetID != 2 {
		t.Fatalf("pet reference not replaced")
	}
}

func TestService_Update_Errors(t *testing.T) {
	svc := NewService(newTestRepo(), petSet{1: true})
	ctx := context.Background()

	if _, err := svc.Update(ctx, 5, Input{Date: "2025-10-02", PetID: 1, Activity: "Meal"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := svc.Update(ctx, 5, Input{Date: "2025-10-02", PetID: 7, Activity: "Meal"}); !errors.Is(err, ErrPetNotFound) {
		t.Fatalf("expected ErrPetNotFound, got %v", err)
	}
}

func TestService_Delete(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, petSet{1: true})
	ctx := context.Background()

	if err := svc.Delete(ctx, 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	l, _ := svc.Create(ctx, Input{Date: "2025-10-01", PetID: 1, Activity: "Walk"})
	if err := svc.Delete(ctx, l.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.GetByID(ctx, l.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected log gone, got %v", err)
	}
}
