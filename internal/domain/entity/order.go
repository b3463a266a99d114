package entity

import "github.com/shopspring/decimal"

// OrderStatus estado del ciclo de vida de un pedido. Los tres estados conocidos
// avanzan siempre hacia adelante; cualquier otro valor se conserva como estado
// opaco sin efectos secundarios.
type OrderStatus string

const (
	StatusLowStock OrderStatus = "low-stock"      // estado inicial al crear el pedido
	StatusPlaced   OrderStatus = "order-placed"   // pedido enviado al proveedor
	StatusReceived OrderStatus = "order-received" // mercancía recibida (terminal)
)

// Known indica si el estado pertenece al grafo de transiciones conocido.
func (s OrderStatus) Known() bool {
	switch s {
	case StatusLowStock, StatusPlaced, StatusReceived:
		return true
	}
	return false
}

// OrderLine línea de un pedido. Los pedidos de reposición referencian artículos
// por nombre (ItemName); los pedidos directos por ID (ItemID).
type OrderLine struct {
	ItemName string `json:"itemName,omitempty"`
	ItemID   string `json:"itemId,omitempty"`
	Quantity int    `json:"quantity"`
}

// Order representa un pedido contra un proveedor.
// ExpectedDate solo se asigna al entrar en order-placed.
type Order struct {
	ID           string          `json:"id"`
	Supplier     string          `json:"supplier,omitempty"`
	Items        []OrderLine     `json:"items"`
	Status       OrderStatus     `json:"status"`
	OrderDate    string          `json:"orderDate"`              // fecha (YYYY-MM-DD)
	ExpectedDate string          `json:"expectedDate,omitempty"` // fecha (YYYY-MM-DD)
	TotalValue   decimal.Decimal `json:"totalValue"`
}
