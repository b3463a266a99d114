package repository

import "context"

// Nombres de colección reconocidos por el almacén y el Locker.
const (
	CollectionInventory = "inventory"
	CollectionChangelog = "changelog"
	CollectionOrders    = "orders"
	CollectionSuppliers = "suppliers"
)

// Locker serializa las secuencias leer-modificar-escribir por colección.
// Acquire toma los candados de todas las colecciones indicadas en un orden
// global fijo (inventory < changelog < orders < suppliers) para evitar
// interbloqueos, con espera acotada: si no se consiguen a tiempo devuelve
// domain.ErrBusy sin retener ninguno. El release devuelto libera todos.
type Locker interface {
	Acquire(ctx context.Context, collections ...string) (release func(), err error)
}
