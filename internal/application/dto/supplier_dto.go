package dto

import "encoding/json"

// CreateSupplierRequest alta de proveedor. Attributes acepta campos libres.
type CreateSupplierRequest struct {
	Name       string          `json:"name"`
	Contact    string          `json:"contact"`
	Phone      string          `json:"phone"`
	Address    string          `json:"address"`
	Attributes json.RawMessage `json:"attributes"`
}

// UpdateSupplierRequest actualización parcial de un proveedor.
type UpdateSupplierRequest struct {
	Name       *string         `json:"name"`
	Contact    *string         `json:"contact"`
	Phone      *string         `json:"phone"`
	Address    *string         `json:"address"`
	Attributes json.RawMessage `json:"attributes"`
}
