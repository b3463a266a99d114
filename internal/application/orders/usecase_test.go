package orders_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/audit"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/orders"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/infrastructure/lock"
	"github.com/jhoicas/almacen-api/internal/infrastructure/memstore"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

func newOrders(t *testing.T, items ...entity.InventoryItem) (*orders.UseCase, *memstore.Store) {
	t.Helper()
	store := memstore.New()
	require.NoError(t, store.Items.Replace(context.Background(), items))
	uc := orders.New(store.Orders, store.Items, lock.NewManager(time.Second),
		audit.NewRecorder(store.Changelog), logger.Nop())
	return uc, store
}

func line(name string, qty int) dto.OrderLineRequest {
	return dto.OrderLineRequest{ItemName: name, Quantity: qty}
}

func TestCreateReplenishment_EstadoInicialYFecha(t *testing.T) {
	uc, store := newOrders(t)
	ctx := context.Background()

	o, err := uc.CreateReplenishment(ctx, dto.CreateOrderRequest{
		Supplier: "Ferretería Central",
		Items:    []dto.OrderLineRequest{line("Tornillo", 50)},
	})
	require.NoError(t, err)
	assert.Equal(t, "ORD-001", o.ID)
	assert.Equal(t, entity.StatusLowStock, o.Status)
	assert.Equal(t, time.Now().Format(time.DateOnly), o.OrderDate)
	assert.Empty(t, o.ExpectedDate, "expectedDate solo se asigna al pasar a order-placed")
	assert.True(t, o.TotalValue.IsZero(), "sin totalValue explícito el total es 0")

	// El inventario no se toca al crear el pedido
	items, _ := store.Items.Snapshot(ctx)
	assert.Empty(t, items)
}

func TestCreateReplenishment_IDsUnicosSecuenciales(t *testing.T) {
	uc, _ := newOrders(t)
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 5; i++ {
		o, err := uc.CreateReplenishment(ctx, dto.CreateOrderRequest{
			Supplier: "Proveedor",
			Items:    []dto.OrderLineRequest{line("Tuerca", 10)},
		})
		require.NoError(t, err)
		assert.False(t, seen[o.ID], "los IDs de pedido deben ser únicos: %s", o.ID)
		seen[o.ID] = true
	}

	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 5)
}

func TestCreateReplenishment_Validacion(t *testing.T) {
	uc, _ := newOrders(t)
	ctx := context.Background()

	cases := []struct {
		name string
		in   dto.CreateOrderRequest
	}{
		{"sin proveedor", dto.CreateOrderRequest{Items: []dto.OrderLineRequest{line("A", 1)}}},
		{"sin líneas", dto.CreateOrderRequest{Supplier: "P"}},
		{"cantidad cero", dto.CreateOrderRequest{Supplier: "P", Items: []dto.OrderLineRequest{line("A", 0)}}},
		{"cantidad negativa", dto.CreateOrderRequest{Supplier: "P", Items: []dto.OrderLineRequest{line("A", -3)}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.CreateReplenishment(ctx, tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestUpdateStatus_OrderPlaced_AsignaFechaEsperada(t *testing.T) {
	uc, _ := newOrders(t)
	ctx := context.Background()
	o, err := uc.CreateReplenishment(ctx, dto.CreateOrderRequest{
		Supplier: "P", Items: []dto.OrderLineRequest{line("A", 1)},
	})
	require.NoError(t, err)

	updated, skipped, err := uc.UpdateStatus(ctx, o.ID, "order-placed")
	require.NoError(t, err)
	assert.Zero(t, skipped)
	assert.Equal(t, entity.StatusPlaced, updated.Status)
	assert.Equal(t, time.Now().Format(time.DateOnly), updated.OrderDate)
	assert.Equal(t, time.Now().AddDate(0, 0, 3).Format(time.DateOnly), updated.ExpectedDate,
		"expectedDate debe ser la fecha de transición + 3 días")
}

func TestUpdateStatus_OrderReceived_SumaInventarioYAudita(t *testing.T) {
	uc, store := newOrders(t, entity.InventoryItem{ID: "itm-1", Name: "Tornillo", Quantity: 4})
	ctx := context.Background()
	o, err := uc.CreateReplenishment(ctx, dto.CreateOrderRequest{
		Supplier: "Ferretería Central",
		Items:    []dto.OrderLineRequest{line("TORNILLO", 20)}, // coincide sin distinguir mayúsculas
	})
	require.NoError(t, err)

	updated, skipped, err := uc.UpdateStatus(ctx, o.ID, "order-received")
	require.NoError(t, err)
	assert.Zero(t, skipped)
	assert.Equal(t, entity.StatusReceived, updated.Status)

	items, _ := store.Items.Snapshot(ctx)
	assert.Equal(t, 24, items[0].Quantity)
	assert.Equal(t, time.Now().Format(time.DateOnly), items[0].LastUpdated)

	entries, _ := store.Changelog.Snapshot(ctx)
	require.Len(t, entries, 1)
	assert.Equal(t, entity.ChangeTypeOrderReceived, entries[0].Type)
	assert.Equal(t, 4, entries[0].PreviousQuantity)
	assert.Equal(t, 24, entries[0].NewQuantity)
	assert.Equal(t, o.ID, entries[0].OrderID)
	assert.Equal(t, "Ferretería Central", entries[0].Supplier)
	assert.Equal(t, "System", entries[0].User)
}

// Recibir dos veces el mismo pedido solo aplica la suma una vez.
func TestUpdateStatus_RecepcionIdempotente(t *testing.T) {
	uc, store := newOrders(t, entity.InventoryItem{ID: "itm-1", Name: "Tornillo", Quantity: 4})
	ctx := context.Background()
	o, _ := uc.CreateReplenishment(ctx, dto.CreateOrderRequest{
		Supplier: "P", Items: []dto.OrderLineRequest{line("Tornillo", 20)},
	})

	_, _, err := uc.UpdateStatus(ctx, o.ID, "order-received")
	require.NoError(t, err)
	_, _, err = uc.UpdateStatus(ctx, o.ID, "order-received")
	require.NoError(t, err)

	items, _ := store.Items.Snapshot(ctx)
	assert.Equal(t, 24, items[0].Quantity, "la segunda recepción no debe volver a sumar")

	entries, _ := store.Changelog.Snapshot(ctx)
	assert.Len(t, entries, 1)
}

// De dos líneas solo una coincide: se suma esa, la otra se omite sin error.
func TestUpdateStatus_LineaSinArticulo_SeOmiteYSeCuenta(t *testing.T) {
	uc, store := newOrders(t, entity.InventoryItem{ID: "itm-1", Name: "Tornillo", Quantity: 4})
	ctx := context.Background()
	o, _ := uc.CreateReplenishment(ctx, dto.CreateOrderRequest{
		Supplier: "P",
		Items:    []dto.OrderLineRequest{line("Tornillo", 6), line("Artículo Fantasma", 99)},
	})

	_, skipped, err := uc.UpdateStatus(ctx, o.ID, "order-received")
	require.NoError(t, err, "la línea sin artículo no debe producir error")
	assert.Equal(t, 1, skipped)

	items, _ := store.Items.Snapshot(ctx)
	assert.Equal(t, 10, items[0].Quantity)

	entries, _ := store.Changelog.Snapshot(ctx)
	assert.Len(t, entries, 1, "exactamente una entrada: la de la línea que coincidió")
}

func TestUpdateStatus_EstadoOpaco_SinEfectos(t *testing.T) {
	uc, store := newOrders(t, entity.InventoryItem{ID: "itm-1", Name: "Tornillo", Quantity: 4})
	ctx := context.Background()
	o, _ := uc.CreateReplenishment(ctx, dto.CreateOrderRequest{
		Supplier: "P", Items: []dto.OrderLineRequest{line("Tornillo", 6)},
	})

	updated, skipped, err := uc.UpdateStatus(ctx, o.ID, "en-aduana")
	require.NoError(t, err)
	assert.Zero(t, skipped)
	assert.Equal(t, entity.OrderStatus("en-aduana"), updated.Status, "el estado se guarda tal cual")
	assert.Empty(t, updated.ExpectedDate)

	items, _ := store.Items.Snapshot(ctx)
	assert.Equal(t, 4, items[0].Quantity)
	entries, _ := store.Changelog.Snapshot(ctx)
	assert.Empty(t, entries)
}

func TestUpdateStatus_PedidoInexistente(t *testing.T) {
	uc, _ := newOrders(t)
	_, _, err := uc.UpdateStatus(context.Background(), "ORD-404", "order-placed")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
