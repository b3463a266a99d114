package jsonstore_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/infrastructure/jsonstore"
)

func TestSnapshot_ArchivoAusente_ColeccionVacia(t *testing.T) {
	store, err := jsonstore.New(t.TempDir())
	require.NoError(t, err)

	items, err := store.Items.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items, "sin archivo, la colección debe leerse vacía")
}

func TestReplaceYSnapshot_ConservaCamposDelEsquema(t *testing.T) {
	dir := t.TempDir()
	store, err := jsonstore.New(dir)
	require.NoError(t, err)
	ctx := context.Background()

	in := []entity.InventoryItem{{
		ID:           "itm-1",
		Name:         "Tornillo 3/8",
		Quantity:     40,
		ReorderLevel: 15,
		Price:        decimal.NewFromFloat(0.75),
		LastUpdated:  "2026-09-01",
	}}
	require.NoError(t, store.Items.Replace(ctx, in))

	out, err := store.Items.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "itm-1", out[0].ID)
	assert.Equal(t, 40, out[0].Quantity)
	assert.Equal(t, 15, out[0].ReorderLevel)
	assert.True(t, out[0].Price.Equal(decimal.NewFromFloat(0.75)))

	// El archivo usa los nombres de campo del esquema persistido
	data, err := os.ReadFile(filepath.Join(dir, "inventory.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"reorderLevel"`)
	assert.Contains(t, string(data), `"lastUpdated"`)
}

func TestSnapshot_JSONCorrupto_ErrorDeAlmacen(t *testing.T) {
	dir := t.TempDir()
	store, err := jsonstore.New(dir)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "orders.json"), []byte("{no es un arreglo"), 0o644))

	_, err = store.Orders.Snapshot(context.Background())
	assert.ErrorIs(t, err, domain.ErrStorageIO)
}

func TestReplace_NilSePersisteComoArregloVacio(t *testing.T) {
	dir := t.TempDir()
	store, err := jsonstore.New(dir)
	require.NoError(t, err)
	require.NoError(t, store.Suppliers.Replace(context.Background(), nil))

	data, err := os.ReadFile(filepath.Join(dir, "suppliers.json"))
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(data))
}
