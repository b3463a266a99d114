package repository

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// OrderStore define el puerto de persistencia para la colección "orders" (DIP).
type OrderStore interface {
	Snapshot(ctx context.Context) ([]entity.Order, error)
	Replace(ctx context.Context, orders []entity.Order) error
}
