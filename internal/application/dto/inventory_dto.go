package dto

import "github.com/shopspring/decimal"

// UpdateItemRequest actualización parcial de un artículo del inventario.
// Solo los campos presentes se fusionan sobre el registro existente.
type UpdateItemRequest struct {
	Name         *string          `json:"name"`
	Quantity     *int             `json:"quantity"`
	ReorderLevel *int             `json:"reorderLevel"`
	Price        *decimal.Decimal `json:"price"`
}
