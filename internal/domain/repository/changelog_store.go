package repository

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// ChangelogStore define el puerto de persistencia para la colección "changelog" (DIP).
// La colección es de solo-añadir: Replace siempre recibe el contenido previo más
// las entradas nuevas, nunca menos.
type ChangelogStore interface {
	Snapshot(ctx context.Context) ([]entity.ChangeLogEntry, error)
	Replace(ctx context.Context, entries []entity.ChangeLogEntry) error
}
