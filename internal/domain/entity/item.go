package entity

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultReorderLevel umbral de reposición cuando el artículo no define uno.
const DefaultReorderLevel = 10

// InventoryItem representa un artículo del inventario con su existencia actual.
// Quantity nunca es negativa; Price solo se usa para calcular el total de pedidos.
// Los registros se persisten tal cual en la colección "inventory".
type InventoryItem struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Quantity     int             `json:"quantity"`
	ReorderLevel int             `json:"reorderLevel,omitempty"`
	Price        decimal.Decimal `json:"price"`
	LastUpdated  string          `json:"lastUpdated,omitempty"` // fecha (YYYY-MM-DD) del último cambio
}

// Threshold devuelve el punto de reorden efectivo (por defecto 10 si no está definido).
func (i InventoryItem) Threshold() int {
	if i.ReorderLevel <= 0 {
		return DefaultReorderLevel
	}
	return i.ReorderLevel
}

// IsLowStock indica si la existencia está estrictamente por debajo del punto de reorden.
func (i InventoryItem) IsLowStock() bool {
	return i.Quantity < i.Threshold()
}

// MatchesName compara el nombre del artículo sin distinguir mayúsculas y con espacios recortados.
func (i InventoryItem) MatchesName(name string) bool {
	return strings.EqualFold(strings.TrimSpace(i.Name), strings.TrimSpace(name))
}
