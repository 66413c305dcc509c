package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendedor-ai/carmatch/internal/common"
	"github.com/vendedor-ai/carmatch/internal/model"
	"github.com/vendedor-ai/carmatch/internal/testutil"
)

func setupStorage(t *testing.T) *SQLiteStorage {
	t.Helper()

	store, err := NewSQLiteStorage(filepath.Join(t.TempDir(), "inventory.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Migrate(context.Background()))
	return store
}

func TestSaveAndListVehicles(t *testing.T) {
	store := setupStorage(t)
	ctx := context.Background()

	vehicles := testutil.SmallInventory()
	require.NoError(t, store.SaveVehicles(ctx, vehicles))

	all, err := store.ListVehicles(ctx)
	require.NoError(t, err)
	assert.Len(t, all, len(vehicles))

	available, err := store.ListAvailable(ctx)
	require.NoError(t, err)
	assert.Len(t, available, len(vehicles)-1, "one fixture vehicle is unavailable")
	for _, v := range available {
		assert.True(t, v.Available)
	}
}

func TestSaveVehiclesUpserts(t *testing.T) {
	store := setupStorage(t)
	ctx := context.Background()

	v := testutil.Vehicle("v1")
	require.NoError(t, store.SaveVehicles(ctx, []model.Vehicle{v}))

	v.Price = 59000
	v.Mileage = 50000
	require.NoError(t, store.SaveVehicles(ctx, []model.Vehicle{v}))

	got, err := store.GetVehicle(ctx, "v1")
	require.NoError(t, err)
	assert.Equal(t, 59000.0, got.Price)
	assert.Equal(t, 50000, got.Mileage)

	all, err := store.ListVehicles(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestSaveVehiclesValidation(t *testing.T) {
	store := setupStorage(t)
	ctx := context.Background()

	tests := []struct {
		mutate func(*model.Vehicle)
		name   string
	}{
		{name: "missing id", mutate: func(v *model.Vehicle) { v.ID = "" }},
		{name: "missing brand", mutate: func(v *model.Vehicle) { v.Brand = "" }},
		{name: "missing model", mutate: func(v *model.Vehicle) { v.Model = "" }},
		{name: "zero year", mutate: func(v *model.Vehicle) { v.Year = 0 }},
		{name: "negative mileage", mutate: func(v *model.Vehicle) { v.Mileage = -1 }},
		{name: "negative price", mutate: func(v *model.Vehicle) { v.Price = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := testutil.Vehicle("bad")
			tt.mutate(&v)

			err := store.SaveVehicles(ctx, []model.Vehicle{v})
			require.Error(t, err)
			assert.ErrorIs(t, err, common.ErrInvalidRecord)
		})
	}
}

func TestGetVehicleNotFound(t *testing.T) {
	store := setupStorage(t)

	_, err := store.GetVehicle(context.Background(), "ghost")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestSetAvailability(t *testing.T) {
	store := setupStorage(t)
	ctx := context.Background()

	require.NoError(t, store.SaveVehicles(ctx, []model.Vehicle{testutil.Vehicle("v1")}))

	require.NoError(t, store.SetAvailability(ctx, "v1", false))
	got, err := store.GetVehicle(ctx, "v1")
	require.NoError(t, err)
	assert.False(t, got.Available)

	assert.ErrorIs(t, store.SetAvailability(ctx, "ghost", true), common.ErrNotFound)
}

func TestMigrateIsIdempotent(t *testing.T) {
	store := setupStorage(t)

	require.NoError(t, store.Migrate(context.Background()))
	require.NoError(t, store.Migrate(context.Background()))
}

func TestMigrateRejectsNewerSchema(t *testing.T) {
	store := setupStorage(t)
	ctx := context.Background()

	_, err := store.db.ExecContext(ctx, `INSERT INTO schema_version (version) VALUES (?)`, ExpectedSchemaVersion+1)
	require.NoError(t, err)

	assert.ErrorIs(t, store.Migrate(ctx), common.ErrDatabaseCorrupted)
}
