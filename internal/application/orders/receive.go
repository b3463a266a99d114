package orders

import (
	"context"
	"time"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// UpdateStatus cambia el estado de un pedido. Los efectos secundarios solo se
// disparan en las dos aristas conocidas y cada una está protegida por una
// guarda idempotente (repetir el mismo estado no vuelve a aplicar efectos):
//
//   - order-placed: refresca orderDate y asigna expectedDate (+3 días).
//   - order-received: suma la cantidad de cada línea al artículo que coincida
//     (por nombre sin mayúsculas, o por ID) y registra una entrada
//     order-received por artículo afectado. Las líneas sin artículo se omiten
//     en silencio; skipped devuelve cuántas fueron, para quien necesite
//     detectarlas.
//
// Cualquier otro valor de estado se guarda tal cual, sin efectos.
func (uc *UseCase) UpdateStatus(ctx context.Context, id, status string) (order *entity.Order, skipped int, err error) {
	release, err := uc.locks.Acquire(ctx,
		repository.CollectionInventory, repository.CollectionChangelog, repository.CollectionOrders)
	if err != nil {
		return nil, 0, err
	}
	defer release()

	orderList, err := uc.orders.Snapshot(ctx)
	if err != nil {
		return nil, 0, err
	}
	idx := -1
	for i := range orderList {
		if orderList[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, 0, domain.ErrNotFound
	}

	o := orderList[idx]
	previous := o.Status
	next := entity.OrderStatus(status)
	o.Status = next

	today := time.Now().Format(time.DateOnly)

	if next == entity.StatusPlaced && previous != entity.StatusPlaced {
		o.OrderDate = today
		o.ExpectedDate = time.Now().AddDate(0, 0, expectedDays).Format(time.DateOnly)
	}

	if next == entity.StatusReceived && previous != entity.StatusReceived {
		skipped, err = uc.receive(ctx, &o, today)
		if err != nil {
			return nil, 0, err
		}
	}

	if !next.Known() {
		uc.log.Warn().Str("order_id", o.ID).Str("status", status).Msg("estado desconocido almacenado sin efectos")
	}

	orderList[idx] = o
	if err := uc.orders.Replace(ctx, orderList); err != nil {
		return nil, 0, err
	}
	return &o, skipped, nil
}

// receive aplica la entrada de mercancía de un pedido: una suma de existencia
// y una entrada de changelog por cada línea con artículo coincidente.
func (uc *UseCase) receive(ctx context.Context, o *entity.Order, today string) (int, error) {
	items, err := uc.items.Snapshot(ctx)
	if err != nil {
		return 0, err
	}

	skipped := 0
	entries := make([]entity.ChangeLogEntry, 0, len(o.Items))
	for _, line := range o.Items {
		idx := matchItem(items, line)
		if idx == -1 {
			skipped++
			continue
		}
		prev := items[idx].Quantity
		items[idx].Quantity = prev + line.Quantity
		items[idx].LastUpdated = today
		entries = append(entries, entity.ChangeLogEntry{
			ItemID:           items[idx].ID,
			User:             actorSystem,
			Type:             entity.ChangeTypeOrderReceived,
			PreviousQuantity: prev,
			NewQuantity:      items[idx].Quantity,
			OrderID:          o.ID,
			Supplier:         o.Supplier,
		})
	}

	if len(entries) > 0 {
		if err := uc.items.Replace(ctx, items); err != nil {
			return 0, err
		}
		if err := uc.audit.Record(ctx, entries...); err != nil {
			return 0, err
		}
	}
	if skipped > 0 {
		uc.log.Warn().
			Str("order_id", o.ID).
			Int("skipped", skipped).
			Msg("líneas del pedido sin artículo coincidente, omitidas")
	}
	return skipped, nil
}

// matchItem localiza el artículo de una línea: por nombre (sin distinguir
// mayúsculas) cuando la línea lo trae, si no por ID.
func matchItem(items []entity.InventoryItem, line entity.OrderLine) int {
	for i := range items {
		if line.ItemName != "" && items[i].MatchesName(line.ItemName) {
			return i
		}
		if line.ItemName == "" && line.ItemID != "" && items[i].ID == line.ItemID {
			return i
		}
	}
	return -1
}
