package dto

import "github.com/shopspring/decimal"

// OrderLineRequest línea de pedido. La variante de reposición usa itemName;
// la variante directa referencia el artículo por id (se acepta itemId o id).
type OrderLineRequest struct {
	ItemName string `json:"itemName"`
	ItemID   string `json:"itemId"`
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

// Ref devuelve el ID de artículo efectivo de la línea (itemId o id).
func (l OrderLineRequest) Ref() string {
	if l.ItemID != "" {
		return l.ItemID
	}
	return l.ID
}

// CreateOrderRequest creación de pedido. Con Supplier presente es un pedido de
// reposición (itemName por línea); sin Supplier es un pedido directo con
// descuento inmediato de existencia (id por línea).
type CreateOrderRequest struct {
	Supplier   string             `json:"supplier"`
	Items      []OrderLineRequest `json:"items"`
	TotalValue *decimal.Decimal   `json:"totalValue"`
}

// UpdateOrderStatusRequest cambio de estado de un pedido.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}
