// Package jsonstore implementa el almacén de colecciones sobre archivos JSON.
//
// Cada colección vive en un archivo propio (inventory.json, orders.json,
// suppliers.json, changelog.json) como un arreglo de registros. Un archivo
// ausente se lee como colección vacía. La escritura es archivo temporal +
// rename para no dejar nunca un archivo a medias; la serialización de las
// secuencias leer-modificar-escribir es responsabilidad del Locker del motor.
package jsonstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// Collection colección respaldada por un archivo JSON.
type Collection[T any] struct {
	path string
	mu   sync.Mutex // evita escrituras de archivo entrelazadas
}

// Snapshot lee la colección completa. Archivo inexistente = colección vacía.
func (c *Collection[T]) Snapshot(_ context.Context) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []T{}, nil
		}
		return nil, fmt.Errorf("%w: leer %s: %w", domain.ErrStorageIO, c.path, err)
	}
	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: decodificar %s: %w", domain.ErrStorageIO, c.path, err)
	}
	return records, nil
}

// Replace sustituye la colección completa de forma atómica (tmp + rename).
func (c *Collection[T]) Replace(_ context.Context, records []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if records == nil {
		records = []T{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: codificar %s: %w", domain.ErrStorageIO, c.path, err)
	}
	tmp := c.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("%w: escribir %s: %w", domain.ErrStorageIO, tmp, err)
	}
	if err := os.Rename(tmp, c.path); err != nil {
		return fmt.Errorf("%w: renombrar %s: %w", domain.ErrStorageIO, tmp, err)
	}
	return nil
}

// Store agrupa las cuatro colecciones del sistema sobre un directorio de datos.
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

// New crea el directorio de datos si no existe y construye el Store.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: crear directorio %s: %w", domain.ErrStorageIO, dir, err)
	}
	return &Store{
		Items:     &Collection[entity.InventoryItem]{path: filepath.Join(dir, repository.CollectionInventory+".json")},
		Orders:    &Collection[entity.Order]{path: filepath.Join(dir, repository.CollectionOrders+".json")},
		Suppliers: &Collection[entity.Supplier]{path: filepath.Join(dir, repository.CollectionSuppliers+".json")},
		Changelog: &Collection[entity.ChangeLogEntry]{path: filepath.Join(dir, repository.CollectionChangelog+".json")},
	}, nil
}
