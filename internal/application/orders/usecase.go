// Package orders implementa el ciclo de vida de los pedidos y sus efectos
// sobre el inventario y el changelog. Es el orquestador del motor: cada
// operación corre completa dentro de una sección crítica del Locker.
//
// Dos flujos de creación deliberadamente separados: el pedido de reposición
// (low-stock → order-placed → order-received, la entrada de mercancía ocurre
// al recibir) y el pedido directo (descuento inmediato de existencia, todo o
// nada). Codifican semánticas de negocio distintas y no deben unificarse.
package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/application/audit"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/pkg/ident"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

// actorSystem atribución fija de los cambios causados por pedidos.
const actorSystem = "System"

// expectedDays plazo de entrega estimado al pasar a order-placed.
const expectedDays = 3

// UseCase gestor del ciclo de vida de pedidos.
type UseCase struct {
	orders repository.OrderStore
	items  repository.ItemStore
	locks  repository.Locker
	audit  *audit.Recorder
	log    *logger.Logger
}

// New construye el caso de uso.
func New(orders repository.OrderStore, items repository.ItemStore, locks repository.Locker, rec *audit.Recorder, log *logger.Logger) *UseCase {
	return &UseCase{orders: orders, items: items, locks: locks, audit: rec, log: log}
}

// List devuelve todos los pedidos.
func (uc *UseCase) List(ctx context.Context) ([]entity.Order, error) {
	return uc.orders.Snapshot(ctx)
}

// CreateReplenishment crea un pedido de reposición contra un proveedor en
// estado inicial low-stock. No toca el inventario: la entrada de mercancía
// ocurre al pasar a order-received.
func (uc *UseCase) CreateReplenishment(ctx context.Context, in dto.CreateOrderRequest) (*entity.Order, error) {
	if in.Supplier == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	lines := make([]entity.OrderLine, 0, len(in.Items))
	for _, l := range in.Items {
		if l.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		lines = append(lines, entity.OrderLine{ItemName: l.ItemName, ItemID: l.Ref(), Quantity: l.Quantity})
	}
	total := decimal.Zero
	if in.TotalValue != nil {
		total = *in.TotalValue
	}

	release, err := uc.locks.Acquire(ctx, repository.CollectionOrders)
	if err != nil {
		return nil, err
	}
	defer release()

	existing, err := uc.orders.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	order := entity.Order{
		ID:         ident.Sequential("ORD", len(existing)),
		Supplier:   in.Supplier,
		Items:      lines,
		Status:     entity.StatusLowStock,
		OrderDate:  time.Now().Format(time.DateOnly),
		TotalValue: total,
	}
	if err := uc.orders.Replace(ctx, append(existing, order)); err != nil {
		return nil, err
	}
	uc.log.Info().Str("order_id", order.ID).Str("supplier", order.Supplier).Msg("pedido de reposición creado")
	return &order, nil
}

// PlaceDirect crea un pedido con descuento inmediato de existencia.
// Valida todas las líneas sobre el snapshot antes de aplicar cualquier
// mutación: si algún artículo no existe o no tiene existencia suficiente, la
// operación completa falla y el inventario queda intacto. El total se calcula
// como Σ precio × cantidad y el pedido se guarda ya en order-received (el
// efecto sobre la existencia ya ocurrió; la guarda idempotente de recepción
// lo deja inerte ante futuros cambios de estado).
func (uc *UseCase) PlaceDirect(ctx context.Context, in dto.CreateOrderRequest) (*entity.Order, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, l := range in.Items {
		if l.Ref() == "" || l.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
	}

	release, err := uc.locks.Acquire(ctx,
		repository.CollectionInventory, repository.CollectionChangelog, repository.CollectionOrders)
	if err != nil {
		return nil, err
	}
	defer release()

	items, err := uc.items.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]int, len(items))
	for i := range items {
		byID[items[i].ID] = i
	}

	// Fase 1: validar todas las líneas, sin mutar nada todavía. El total
	// solicitado se acumula por artículo: varias líneas sobre el mismo ID se
	// validan por su suma, no línea a línea.
	requested := make(map[string]int, len(in.Items))
	for _, l := range in.Items {
		idx, ok := byID[l.Ref()]
		if !ok {
			return nil, fmt.Errorf("%w: artículo %s", domain.ErrNotFound, l.Ref())
		}
		requested[l.Ref()] += l.Quantity
		if requested[l.Ref()] > items[idx].Quantity {
			return nil, fmt.Errorf("%w: artículo %s (disponible %d, solicitado %d)",
				domain.ErrInsufficientStock, items[idx].Name, items[idx].Quantity, requested[l.Ref()])
		}
	}

	// Fase 2: aplicar descuentos, total y auditoría
	today := time.Now().Format(time.DateOnly)
	total := decimal.Zero
	lines := make([]entity.OrderLine, 0, len(in.Items))
	entries := make([]entity.ChangeLogEntry, 0, len(in.Items))

	existing, err := uc.orders.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	orderID := ident.Sequential("ORD", len(existing))

	for _, l := range in.Items {
		idx := byID[l.Ref()]
		prev := items[idx].Quantity
		items[idx].Quantity = prev - l.Quantity
		items[idx].LastUpdated = today
		total = total.Add(items[idx].Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
		lines = append(lines, entity.OrderLine{ItemID: l.Ref(), Quantity: l.Quantity})
		entries = append(entries, entity.ChangeLogEntry{
			ItemID:           items[idx].ID,
			User:             actorSystem,
			Type:             entity.ChangeTypeInventoryCount,
			PreviousQuantity: prev,
			NewQuantity:      items[idx].Quantity,
			OrderID:          orderID,
		})
	}

	if err := uc.items.Replace(ctx, items); err != nil {
		return nil, err
	}
	if err := uc.audit.Record(ctx, entries...); err != nil {
		return nil, err
	}

	order := entity.Order{
		ID:         orderID,
		Items:      lines,
		Status:     entity.StatusReceived,
		OrderDate:  today,
		TotalValue: total,
	}
	if err := uc.orders.Replace(ctx, append(existing, order)); err != nil {
		return nil, err
	}
	uc.log.Info().Str("order_id", order.ID).Str("total", total.String()).Msg("pedido directo aplicado")
	return &order, nil
}
