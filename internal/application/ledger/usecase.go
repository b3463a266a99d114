// Package ledger implementa la vista de existencias actuales del inventario:
// consultas de lista y bajo-stock, y actualizaciones puntuales por ID o nombre.
// Es el único escritor de quantity/lastUpdated de los artículos.
package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/almacen-api/internal/application/audit"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

// Actores registrados en el changelog según el punto de entrada.
// Sin contexto de autenticación, la atribución es fija.
const (
	actorByID   = "System/User"
	actorByName = "System/Agent"
)

// UseCase casos de uso del libro de inventario.
type UseCase struct {
	items repository.ItemStore
	locks repository.Locker
	audit *audit.Recorder
	log   *logger.Logger
}

// New construye el caso de uso.
func New(items repository.ItemStore, locks repository.Locker, rec *audit.Recorder, log *logger.Logger) *UseCase {
	return &UseCase{items: items, locks: locks, audit: rec, log: log}
}

// List devuelve el inventario completo sin filtrar.
func (uc *UseCase) List(ctx context.Context) ([]entity.InventoryItem, error) {
	return uc.items.Snapshot(ctx)
}

// LowStock devuelve los artículos con existencia estrictamente por debajo de su
// punto de reorden (10 si el artículo no define uno).
func (uc *UseCase) LowStock(ctx context.Context) ([]entity.InventoryItem, error) {
	items, err := uc.items.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	low := make([]entity.InventoryItem, 0)
	for _, it := range items {
		if it.IsLowStock() {
			low = append(low, it)
		}
	}
	return low, nil
}

// UpdateByID fusiona los campos presentes sobre el artículo con ese ID.
func (uc *UseCase) UpdateByID(ctx context.Context, id string, in dto.UpdateItemRequest) (*entity.InventoryItem, error) {
	return uc.update(ctx, in, actorByID, func(it entity.InventoryItem) bool {
		return it.ID == id
	})
}

// UpdateByName fusiona los campos presentes sobre el artículo con ese nombre
// (sin distinguir mayúsculas, espacios recortados).
func (uc *UseCase) UpdateByName(ctx context.Context, name string, in dto.UpdateItemRequest) (*entity.InventoryItem, error) {
	return uc.update(ctx, in, actorByName, func(it entity.InventoryItem) bool {
		return it.MatchesName(name)
	})
}

// update aplica la fusión bajo los candados de inventario y changelog: si la
// cantidad cambia se registra exactamente una entrada inventory-count antes de
// persistir el registro fusionado; lastUpdated se refresca siempre.
func (uc *UseCase) update(ctx context.Context, in dto.UpdateItemRequest, actor string, match func(entity.InventoryItem) bool) (*entity.InventoryItem, error) {
	if err := validate(in); err != nil {
		return nil, err
	}

	release, err := uc.locks.Acquire(ctx, repository.CollectionInventory, repository.CollectionChangelog)
	if err != nil {
		return nil, err
	}
	defer release()

	items, err := uc.items.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	idx := -1
	for i := range items {
		if match(items[i]) {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, domain.ErrNotFound
	}

	// Los nombres identifican artículos en la ruta por nombre: un renombre no
	// puede colisionar (sin distinguir mayúsculas) con otro artículo.
	if in.Name != nil {
		for i := range items {
			if i != idx && items[i].MatchesName(*in.Name) {
				return nil, fmt.Errorf("%w: ya existe un artículo llamado %q", domain.ErrDuplicate, items[i].Name)
			}
		}
	}

	it := items[idx]
	if in.Quantity != nil && *in.Quantity != it.Quantity {
		entry := entity.ChangeLogEntry{
			ItemID:           it.ID,
			User:             actor,
			Type:             entity.ChangeTypeInventoryCount,
			PreviousQuantity: it.Quantity,
			NewQuantity:      *in.Quantity,
		}
		if err := uc.audit.Record(ctx, entry); err != nil {
			return nil, err
		}
		uc.log.Info().
			Str("item_id", it.ID).
			Int("previous", it.Quantity).
			Int("new", *in.Quantity).
			Msg("ajuste de existencia registrado")
	}

	if in.Name != nil {
		it.Name = *in.Name
	}
	if in.Quantity != nil {
		it.Quantity = *in.Quantity
	}
	if in.ReorderLevel != nil {
		it.ReorderLevel = *in.ReorderLevel
	}
	if in.Price != nil {
		it.Price = *in.Price
	}
	it.LastUpdated = time.Now().Format(time.DateOnly)

	items[idx] = it
	if err := uc.items.Replace(ctx, items); err != nil {
		return nil, err
	}
	return &it, nil
}

func validate(in dto.UpdateItemRequest) error {
	if in.Quantity != nil && *in.Quantity < 0 {
		return domain.ErrInvalidInput
	}
	if in.ReorderLevel != nil && *in.ReorderLevel < 0 {
		return domain.ErrInvalidInput
	}
	if in.Price != nil && in.Price.IsNegative() {
		return domain.ErrInvalidInput
	}
	if in.Name != nil && *in.Name == "" {
		return domain.ErrInvalidInput
	}
	return nil
}
