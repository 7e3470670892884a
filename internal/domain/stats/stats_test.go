package stats

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

type testRepo struct {
	rows []Row
	err  error
}

func (r testRepo) ActivityCounts(ctx context.Context) ([]Row, error) { return r.rows, r.err }

func strp(s string) *string { return &s }

func TestSummary_FoldsRowsAndKeepsPetsWithoutLogs(t *testing.T) {
	svc := NewService(testRepo{rows: []Row{
		{PetName: "Bella", Activity: strp("Meal"), Count: 2},
		{PetName: "Bella", Activity: strp("Walk"), Count: 1},
		{PetName: "Ghost", Activity: nil, Count: 1},
		{PetName: "Milo", Activity: strp(""), Count: 1},
	}})

	got, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("summary: %v", err)
	}

	want := Summary{
		"Bella": {"Meal": 2, "Walk": 1},
		"Ghost": {},
		"Milo":  {},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v want %#v", got, want)
	}
}

func TestSummary_Empty(t *testing.T) {
	got, err := NewService(testRepo{}).Summary(context.Background())
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil summary, got %#v", got)
	}
}

func TestSummary_PropagatesStoreError(t *testing.T) {
	boom := errors.New("boom")
	if _, err := NewService(testRepo{err: boom}).Summary(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected store error, got %v", err)
	}
}
