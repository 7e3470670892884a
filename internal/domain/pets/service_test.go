package pets

import (
	"context"
	"errors"
	"sort"
	"testing"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	nextID int64
	byID   map[int64]Pet
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[int64]Pet{}}
}

func (r *testRepo) Create(ctx context.Context, p Pet) (Pet, error) {
	r.nextID++
	p.ID = r.nextID
	r.byID[p.ID] = p
	return p, nil
}

func (r *testRepo) Update(ctx context.Context, p Pet) error {
	if _, ok := r.byID[p.ID]; !ok {
		return ErrNotFound
	}
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id int64) (Pet, error) {
	p, ok := r.byID[id]
	if !ok {
		return Pet{}, ErrNotFound
	}
	return p, nil
}

func (r *testRepo) List(ctx context.Context) ([]Pet, error) {
	out := make([]Pet, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *testRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *testRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.byID)), nil
}

func strp(s string) *string { return &s }

// -------------------------
// Tests
// -------------------------

func TestService_Create_RequiresNameAndSpecies(t *testing.T) {
	svc := NewService(newTestRepo())

	for _, in := range []Input{
		{Species: "Dog"},
		{Name: "Rex"},
		{Name: "   ", Species: "Dog"},
	} {
		_, err := svc.Create(context.Background(), in)
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %+v, got %v", in, err)
		}
		if err.Error() != "Name and species are required" {
			t.Fatalf("unexpected message %q", err.Error())
		}
	}
}

func TestService_Create_TrimsAndNullsEmptyOptionals(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	p, err := svc.Create(context.Background(), Input{Name: " Rex ", Species: "Dog", Breed: "  "})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if p.Name != "Rex" {
		t.Fatalf("expected trimmed name, got %q", p.Name)
	}
	if p.Breed != nil || p.Birthday != nil || p.Photo != nil {
		t.Fatalf("expected nil optionals, got %+v", p)
	}
}

func TestService_Create_ValidatesBirthdayAndPhoto(t *testing.T) {
	svc := NewService(newTestRepo())
	ctx := context.Background()

	if _, err := svc.Create(ctx, Input{Name: "Rex", Species: "Dog", Birthday: "10/06/2020"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid birthday, got %v", err)
	}
	if _, err := svc.Create(ctx, Input{Name: "Rex", Species: "Dog", Photo: "rex.jpg"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid photo, got %v", err)
	}
	if _, err := svc.Create(ctx, Input{Name: "Rex", Species: "Dog", Photo: "ftp://example.com/rex.jpg"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected non-http photo rejected, got %v", err)
	}

	p, err := svc.Create(ctx, Input{Name: "Rex", Species: "Dog", Birthday: "2020-06-10", Photo: "https://example.com/rex.jpg"})
	if err != nil {
		t.Fatalf("valid pet rejected: %v", err)
	}
	if *p.Birthday != "2020-06-10" || *p.Photo != "https://example.com/rex.jpg" {
		t.Fatalf("unexpected optionals %+v", p)
	}
}

func TestService_Update_IsFullReplace(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)
	ctx := context.Background()

	p, _ := svc.Create(ctx, Input{Name: "Bella", Species: "Dog", Breed: "Golden Retriever", Birthday: "2020-06-10"})

	updated, err := svc.Update(ctx, p.ID, Input{Name: "Bella", Species: "Dog"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Breed != nil || updated.Birthday != nil {
		t.Fatalf("omitted fields should become null, got %+v", updated)
	}

	stored, _ := repo.GetByID(ctx, p.ID)
	if stored.Breed != nil {
		t.Fatalf("stored breed should be null, got %v", *stored.Breed)
	}
}

func TestService_Update_NotFound(t *testing.T) {
	svc := NewService(newTestRepo())

	_, err := svc.Update(context.Background(), 99, Input{Name: "Ghost", Species: "Cat"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_Delete_ChecksExistence(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)
	ctx := context.Background()

	if err := svc.Delete(ctx, 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	p, _ := svc.Create(ctx, Input{Name: "Milo", Species: "Cat", Breed: "Siamese"})
	if err := svc.Delete(ctx, p.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if ok, _ := svc.Exists(ctx, p.ID); ok {
		t.Fatalf("pet should be gone")
	}
}

func TestService_Exists(t *testing.T) {
	repo := newTestRepo()
	repo.byID[3] = Pet{ID: 3, Name: "Luna", Species: "Cat", Breed: strp("Persian")}
	svc := NewService(repo)

	ok, err := svc.Exists(context.Background(), 3)
	if err != nil || !ok {
		t.Fatalf("expected pet 3 to exist, ok=%v err=%v", ok, err)
	}
	ok, err = svc.Exists(context.Background(), 4)
	if err != nil || ok {
		t.Fatalf("expected pet 4 missing, ok=%v err=%v", ok, err)
	}
}
