package storage

import (
	"context"
	"path/filepath"
	"testing"

	"petrecord/internal/domain/pets"
	"petrecord/internal/platform/config"
	"petrecord/internal/platform/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_DefaultsToSQLite(t *testing.T) {
	ctx := context.Background()
	cfg := config.Config{DBPath: filepath.Join(t.TempDir(), "db", "petrecord.db")}

	st, err := Open(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	assert.Equal(t, DriverSQLite, st.Driver)
	require.NoError(t, st.Migrate(ctx, logger.Discard()))

	_, err = st.Pets.Create(ctx, pets.Pet{Name: "Bella", Species: "Dog"})
	require.NoError(t, err)

	require.NoError(t, st.Reset(ctx))
	n, err := st.Pets.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}
