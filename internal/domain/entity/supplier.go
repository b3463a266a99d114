package entity

import "encoding/json"

// Supplier proveedor del directorio. Sin invariantes más allá de la unicidad del ID;
// Attributes conserva campos libres que el cliente quiera adjuntar.
type Supplier struct {
	ID         string          `json:"id"`
	Name       string          `json:"name,omitempty"`
	Contact    string          `json:"contact,omitempty"`
	Phone      string          `json:"phone,omitempty"`
	Address    string          `json:"address,omitempty"`
	Attributes json.RawMessage `json:"attributes,omitempty"`
}
