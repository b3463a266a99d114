package audit_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/audit"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/infrastructure/memstore"
)

func TestRecord_AsignaIDYTimestampYConservaPrevias(t *testing.T) {
	store := memstore.New()
	rec := audit.NewRecorder(store.Changelog)
	ctx := context.Background()

	require.NoError(t, rec.Record(ctx, entity.ChangeLogEntry{
		ItemID: "itm-1", Type: entity.ChangeTypeInventoryCount, PreviousQuantity: 1, NewQuantity: 2,
	}))
	require.NoError(t, rec.Record(ctx, entity.ChangeLogEntry{
		ItemID: "itm-2", Type: entity.ChangeTypeOrderReceived, PreviousQuantity: 5, NewQuantity: 9,
	}))

	entries, err := store.Changelog.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2, "las entradas previas nunca se pierden")
	assert.NotEmpty(t, entries[0].ID)
	assert.NotEqual(t, entries[0].ID, entries[1].ID)
	assert.False(t, entries[0].Timestamp.IsZero())
}

func TestList_OrdenDescendentePorTimestamp(t *testing.T) {
	store := memstore.New()
	rec := audit.NewRecorder(store.Changelog)
	ctx := context.Background()

	// Sembrar con timestamps conocidos, en orden de inserción ascendente
	base := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	seed := []entity.ChangeLogEntry{
		{ID: "log-1", ItemID: "a", Timestamp: base},
		{ID: "log-2", ItemID: "b", Timestamp: base.Add(time.Hour)},
		{ID: "log-3", ItemID: "c", Timestamp: base.Add(2 * time.Hour)},
	}
	require.NoError(t, store.Changelog.Replace(ctx, seed))

	out, err := rec.List(ctx)
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, "log-3", out[0].ID, "la más reciente primero")
	assert.Equal(t, "log-2", out[1].ID)
	assert.Equal(t, "log-1", out[2].ID)
}

func TestRecord_SinEntradas_NoEscribe(t *testing.T) {
	store := memstore.New()
	rec := audit.NewRecorder(store.Changelog)

	require.NoError(t, rec.Record(context.Background()))
	entries, _ := store.Changelog.Snapshot(context.Background())
	assert.Empty(t, entries)
}
