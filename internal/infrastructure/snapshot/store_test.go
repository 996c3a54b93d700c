package snapshot_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-ledger/internal/domain"
	"github.com/jhoicas/pos-ledger/internal/infrastructure/snapshot"
	"github.com/jhoicas/pos-ledger/internal/seed"
)

func TestStore_DirectorioVacioRetornaErrNoSnapshot(t *testing.T) {
	store := snapshot.NewStore(t.TempDir())
	_, err := store.Load()
	assert.ErrorIs(t, err, domain.ErrNoSnapshot,
		"sin slots en disco el llamador debe sembrar los datos iniciales")
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store := snapshot.NewStore(dir)

	snap := seed.Snapshot()
	require.NoError(t, store.Save(snap))

	// Los tres slots quedan en disco.
	for _, slot := range []string{"products.json", "orders.json", "stock_movements.json"} {
		_, err := os.Stat(filepath.Join(dir, slot))
		assert.NoError(t, err, "el slot %s debe existir tras Save", slot)
	}

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, snap.Products, loaded.Products)
	assert.Equal(t, snap.Orders, loaded.Orders)

	// Los decimales no comparan por DeepEqual tras el round-trip JSON
	// (el exponente interno puede variar), así que se comparan por valor.
	require.Len(t, loaded.Movements, len(snap.Movements))
	for i, want := range snap.Movements {
		got := loaded.Movements[i]
		assert.Equal(t, want.ID, got.ID)
		assert.Equal(t, want.ProductID, got.ProductID)
		assert.Equal(t, want.Type, got.Type)
		assert.Equal(t, want.Quantity, got.Quantity)
		assert.Equal(t, want.PreviousStock, got.PreviousStock)
		assert.Equal(t, want.CurrentStock, got.CurrentStock)
		assert.True(t, want.Date.Equal(got.Date))
		assert.True(t, want.UnitCost.Equal(got.UnitCost))
	}
}

func TestStore_SlotAusenteCargaComoListaVacia(t *testing.T) {
	dir := t.TempDir()
	store := snapshot.NewStore(dir)
	require.NoError(t, store.Save(seed.Snapshot()))

	// Si falta un slot pero existen los demás, no es ErrNoSnapshot.
	require.NoError(t, os.Remove(filepath.Join(dir, "orders.json")))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Len(t, loaded.Products, 8)
	assert.Empty(t, loaded.Orders, "el slot ausente carga como lista vacía")
	assert.Len(t, loaded.Movements, 4)
}

func TestStore_SlotMalformadoEsError(t *testing.T) {
	dir := t.TempDir()
	store := snapshot.NewStore(dir)
	require.NoError(t, store.Save(seed.Snapshot()))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "products.json"), []byte("{truncado"), 0o644))

	_, err := store.Load()
	assert.Error(t, err, "un slot corrupto no debe cargar en silencio")
	assert.NotErrorIs(t, err, domain.ErrNoSnapshot)
}

func TestStore_SaveCreaElDirectorio(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "anidado", "data")
	store := snapshot.NewStore(dir)

	require.NoError(t, store.Save(seed.Snapshot()))
	_, err := os.Stat(dir)
	assert.NoError(t, err)
}

func TestStore_ResetVuelveAFabrica(t *testing.T) {
	dir := t.TempDir()
	store := snapshot.NewStore(dir)
	require.NoError(t, store.Save(seed.Snapshot()))

	require.NoError(t, store.Reset())

	_, err := store.Load()
	assert.ErrorIs(t, err, domain.ErrNoSnapshot)

	// Reset sobre un directorio ya vacío es idempotente.
	assert.NoError(t, store.Reset())
}
