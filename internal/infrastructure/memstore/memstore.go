// Package memstore implementa el almacén de colecciones en memoria.
// Se usa en tests y en el modo dry-run del seed; mismas garantías que los
// demás adaptadores: snapshot devuelve una copia, replace sustituye todo.
package memstore

import (
	"context"
	"sync"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// Collection colección en memoria tras un RWMutex.
type Collection[T any] struct {
	mu      sync.RWMutex
	records []T
}

// Snapshot devuelve una copia de la colección completa.
func (c *Collection[T]) Snapshot(_ context.Context) ([]T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.records))
	copy(out, c.records)
	return out, nil
}

// Replace sustituye la colección completa por una copia de records.
func (c *Collection[T]) Replace(_ context.Context, records []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(records))
	copy(out, records)
	c.records = out
	return nil
}

// Store agrupa las cuatro colecciones del sistema.
type Store struct {
	Items     *Collection[entity.InventoryItem]
	Orders    *Collection[entity.Order]
	Suppliers *Collection[entity.Supplier]
	Changelog *Collection[entity.ChangeLogEntry]
}

var (
	_ repository.ItemStore      = (*Collection[entity.InventoryItem])(nil)
	_ repository.OrderStore     = (*Collection[entity.Order])(nil)
	_ repository.SupplierStore  = (*Collection[entity.Supplier])(nil)
	_ repository.ChangelogStore = (*Collection[entity.ChangeLogEntry])(nil)
)

// New construye un Store vacío.
func New() *Store {
	return &Store{
		Items:     &Collection[entity.InventoryItem]{},
		Orders:    &Collection[entity.Order]{},
		Suppliers: &Collection[entity.Supplier]{},
		Changelog: &Collection[entity.ChangeLogEntry]{},
	}
}
