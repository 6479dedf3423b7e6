package dto

import "time"

// CreateSupplierRequest entrada para registrar un proveedor.
type CreateSupplierRequest struct {
	Name       string `json:"name" validate:"required,min=1,max=200"`
	Address    string `json:"address"`
	Email      string `json:"email" validate:"required,email"`
	Contact    string `json:"contact"`
	Status     string `json:"status"`
	CategoryID string `json:"category_id"`
}

// UpdateSupplierRequest entrada para actualizar un proveedor.
type UpdateSupplierRequest struct {
	Name       *string `json:"name" validate:"omitempty,min=1,max=200"`
	Address    *string `json:"address"`
	Email      *string `json:"email" validate:"omitempty,email"`
	Contact    *string `json:"contact"`
	Status     *string `json:"status"`
	CategoryID *string `json:"category_id"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Address    string    `json:"address"`
	Email      string    `json:"email"`
	Contact    string    `json:"contact"`
	Status     string    `json:"status"`
	CategoryID string    `json:"category_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// SupplierListResponse lista paginada de proveedores.
type SupplierListResponse struct {
	Items []SupplierResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
