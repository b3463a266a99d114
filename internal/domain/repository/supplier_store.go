package repository

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// SupplierStore define el puerto de persistencia para la colección "suppliers" (DIP).
type SupplierStore interface {
	Snapshot(ctx context.Context) ([]entity.Supplier, error)
	Replace(ctx context.Context, suppliers []entity.Supplier) error
}
