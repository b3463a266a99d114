package entity

import "time"

// Tipos de entrada del registro de cambios.
const (
	ChangeTypeInventoryCount = "inventory-count" // ajuste manual de existencia
	ChangeTypeOrderReceived  = "order-received"  // entrada por recepción de pedido
)

// ChangeLogEntry entrada inmutable del registro de auditoría. Se crea si y solo
// si una cantidad cambió realmente; nunca se modifica ni se elimina.
type ChangeLogEntry struct {
	ID               string    `json:"id"`
	ItemID           string    `json:"itemId"`
	Timestamp        time.Time `json:"timestamp"`
	User             string    `json:"user"`
	Type             string    `json:"type"`
	PreviousQuantity int       `json:"previousQuantity"`
	NewQuantity      int       `json:"newQuantity"`
	OrderID          string    `json:"orderId,omitempty"`
	Supplier         string    `json:"supplier,omitempty"`
}
