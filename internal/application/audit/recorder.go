// Package audit implementa el registrador del changelog: el único escritor de
// la colección de auditoría. Las entradas son inmutables y solo se añaden.
package audit

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/pkg/ident"
)

// Recorder añade entradas al changelog y las lista para presentación.
type Recorder struct {
	store repository.ChangelogStore
}

// NewRecorder construye el registrador.
func NewRecorder(store repository.ChangelogStore) *Recorder {
	return &Recorder{store: store}
}

// Record asigna ID y timestamp a cada entrada y las añade a la colección en
// una sola escritura. El caller debe tener tomado el candado de changelog:
// Record forma parte de la sección crítica de la operación que causó el cambio.
func (r *Recorder) Record(ctx context.Context, entries ...entity.ChangeLogEntry) error {
	if len(entries) == 0 {
		return nil
	}
	existing, err := r.store.Snapshot(ctx)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	for _, e := range entries {
		e.ID = ident.Timestamped("log")
		e.Timestamp = now
		existing = append(existing, e)
	}
	return r.store.Replace(ctx, existing)
}

// List devuelve todas las entradas ordenadas por timestamp descendente
// (contrato de presentación; el orden de almacenamiento es el de inserción).
func (r *Recorder) List(ctx context.Context) ([]entity.ChangeLogEntry, error) {
	entries, err := r.store.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})
	return entries, nil
}
