// Package postgres implementa el almacén de colecciones sobre PostgreSQL.
//
// Cada colección es una fila de la tabla collections(name, data): data guarda
// el arreglo completo de registros como JSONB. Snapshot = SELECT + unmarshal,
// Replace = upsert. El contrato es el mismo que el de jsonstore; la
// serialización de leer-modificar-escribir sigue a cargo del Locker del motor.
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// Collection colección respaldada por una fila JSONB.
type Collection[T any] struct {
	pool *pgxpool.Pool
	name string
}

// Snapshot lee la colección completa. Fila inexistente = colección vacía.
func (c *Collection[T]) Snapshot(ctx context.Context) ([]T, error) {
	var data []byte
	err := c.pool.QueryRow(ctx,
		`SELECT data FROM collections WHERE name = $1`, c.name,
	).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []T{}, nil
		}
		return nil, fmt.Errorf("%w: select %s: %w", domain.ErrStorageIO, c.name, err)
	}
	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: decodificar %s: %w", domain.ErrStorageIO, c.name, err)
	}
	return records, nil
}

// Replace sustituye la colección completa (upsert de la fila).
func (c *Collection[T]) Replace(ctx context.Context, records []T) error {
	if records == nil {
		records = []T{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("%w: codificar %s: %w", domain.ErrStorageIO, c.name, err)
	}
	_, err = c.pool.Exec(ctx, `
		INSERT INTO collections (name, data, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (name) DO UPDATE SET data = EXCLUDED.data, updated_at = now()`,
		c.name, data,
	)
	if err != nil {
		return fmt.Errorf("%w: upsert %s: %w", domain.ErrStorageIO, c.name, err)
	}
	return nil
}

// Store agrupa las cuatro colecciones del sistema sobre un pool pgx.
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

// NewStore construye el Store y garantiza que la tabla collections exista.
func NewStore(ctx context.Context, pool *pgxpool.Pool) (*Store, error) {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS collections (
			name       text PRIMARY KEY,
			data       jsonb NOT NULL DEFAULT '[]'::jsonb,
			updated_at timestamptz NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return nil, fmt.Errorf("%w: crear tabla collections: %w", domain.ErrStorageIO, err)
	}
	return &Store{
		Items:     &Collection[entity.InventoryItem]{pool: pool, name: repository.CollectionInventory},
		Orders:    &Collection[entity.Order]{pool: pool, name: repository.CollectionOrders},
		Suppliers: &Collection[entity.Supplier]{pool: pool, name: repository.CollectionSuppliers},
		Changelog: &Collection[entity.ChangeLogEntry]{pool: pool, name: repository.CollectionChangelog},
	}, nil
}
