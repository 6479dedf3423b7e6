package entity

import "time"

// Estados válidos de Supplier.
const (
	SupplierStatusActive   = "active"
	SupplierStatusInactive = "inactive"
)

// Supplier representa un proveedor del almacén, asociado opcionalmente a una categoría.
type Supplier struct {
	ID         string
	Name       string
	Address    string
	Email      string // único
	Contact    string
	Status     string // active, inactive
	CategoryID string // vacío si no está asociado a una categoría
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
