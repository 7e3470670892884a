package postgres

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"petrecord/internal/domain/activitylogs"
	"petrecord/internal/domain/pets"
	"petrecord/internal/platform/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Requiere una base real: PETRECORD_TEST_PG_DSN=postgres://...
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := os.Getenv("PETRECORD_TEST_PG_DSN")
	if dsn == "" {
		t.Skip("PETRECORD_TEST_PG_DSN not set")
	}

	db, err := Open(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	ctx := context.Background()
	require.NoError(t, RunMigrations(ctx, db, logger.Discard()))
	require.NoError(t, Reset(ctx, db))
	return db
}

func TestPostgres_PetsAndLogs(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	petsRepo := NewPetsRepo(db)
	logsRepo := NewLogsRepo(db)

	breed := "Siamese"
	p, err := petsRepo.Create(ctx, pets.Pet{Name: "Milo", Species: "Cat", Breed: &breed})
	require.NoError(t, err)

	got, err := petsRepo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Milo", got.Name)
	assert.Nil(t, got.Photo)

	_, err = logsRepo.Create(ctx, activitylogs.Log{Date: "2025-10-02", PetID: p.ID + 1000, Activity: "Vet Visit"})
	assert.ErrorIs(t, err, activitylogs.ErrPetNotFound)

	l, err := logsRepo.Create(ctx, activitylogs.Log{Date: "2025-10-02", PetID: p.ID, Activity: "Vet Visit"})
	require.NoError(t, err)

	e, err := logsRepo.GetByID(ctx, l.ID)
	require.NoError(t, err)
	require.NotNil(t, e.PetName)
	assert.Equal(t, "Milo", *e.PetName)

	rows, err := NewStatsRepo(db).ActivityCounts(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.EqualValues(t, 1, rows[0].Count)

	require.NoError(t, petsRepo.Delete(ctx, p.ID))
	_, err = logsRepo.GetByID(ctx, l.ID)
	assert.ErrorIs(t, err, activitylogs.ErrNotFound)
}
