package repository

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// ItemStore define el puerto de persistencia para la colección "inventory" (DIP).
// El almacén solo ofrece lectura de la colección completa (snapshot) y reemplazo
// completo; no garantiza atomicidad entre colecciones — eso es trabajo del motor.
type ItemStore interface {
	Snapshot(ctx context.Context) ([]entity.InventoryItem, error)
	Replace(ctx context.Context, items []entity.InventoryItem) error
}
