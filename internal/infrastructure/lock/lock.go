// Package lock implementa el Locker de colecciones con semáforos binarios.
//
// Cada colección tiene un candado propio; Acquire los toma siempre en el orden
// global fijo inventory < changelog < orders < suppliers, de modo que dos
// operaciones que toquen pares de colecciones (recepción de pedido, pedido
// directo) no puedan interbloquearse. La espera es acotada: pasado el plazo se
// devuelve domain.ErrBusy y se liberan los candados ya tomados.
package lock

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// rank orden global de adquisición por colección.
var rank = map[string]int{
	repository.CollectionInventory: 0,
	repository.CollectionChangelog: 1,
	repository.CollectionOrders:    2,
	repository.CollectionSuppliers: 3,
}

// Manager implementa repository.Locker.
type Manager struct {
	wait time.Duration
	sems map[string]chan struct{}
}

var _ repository.Locker = (*Manager)(nil)

// NewManager construye el manager. wait es la espera máxima por el conjunto
// completo de candados; 0 aplica el valor por defecto de 2s.
func NewManager(wait time.Duration) *Manager {
	if wait <= 0 {
		wait = 2 * time.Second
	}
	sems := make(map[string]chan struct{}, len(rank))
	for name := range rank {
		sems[name] = make(chan struct{}, 1)
	}
	return &Manager{wait: wait, sems: sems}
}

// Acquire toma los candados de las colecciones indicadas en orden global fijo.
// Devuelve domain.ErrBusy si no se consiguen todos dentro del plazo.
func (m *Manager) Acquire(ctx context.Context, collections ...string) (func(), error) {
	if len(collections) == 0 {
		return nil, fmt.Errorf("%w: sin colecciones que bloquear", domain.ErrInvalidInput)
	}

	// Deduplicar y ordenar por rango global (el orden de los argumentos no importa)
	uniq := make([]string, 0, len(collections))
	seen := make(map[string]bool, len(collections))
	for _, name := range collections {
		if _, ok := rank[name]; !ok {
			return nil, fmt.Errorf("%w: colección desconocida %q", domain.ErrInvalidInput, name)
		}
		if !seen[name] {
			seen[name] = true
			uniq = append(uniq, name)
		}
	}
	sort.Slice(uniq, func(i, j int) bool { return rank[uniq[i]] < rank[uniq[j]] })

	deadline := time.NewTimer(m.wait)
	defer deadline.Stop()

	held := make([]chan struct{}, 0, len(uniq))
	releaseHeld := func() {
		for _, sem := range held {
			<-sem
		}
	}
	for _, name := range uniq {
		sem := m.sems[name]
		select {
		case sem <- struct{}{}:
			held = append(held, sem)
		case <-deadline.C:
			releaseHeld()
			return nil, fmt.Errorf("%w: %s", domain.ErrBusy, name)
		case <-ctx.Done():
			releaseHeld()
			return nil, ctx.Err()
		}
	}
	return releaseHeld, nil
}
