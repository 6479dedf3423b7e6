package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int64           `json:"stock" validate:"min=0"`
	CategoryID  string          `json:"category_id" validate:"required"`
	SupplierID  string          `json:"supplier_id" validate:"required"`
	Status      string          `json:"status"`
}

// UpdateProductRequest entrada para actualizar un producto.
// Stock aquí es la reposición directa del admin; las ventas lo mutan vía órdenes.
type UpdateProductRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int64           `json:"stock" validate:"omitempty,min=0"`
	CategoryID  *string          `json:"category_id"`
	SupplierID  *string          `json:"supplier_id"`
	Status      *string          `json:"status"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int64           `json:"stock"`
	CategoryID  string          `json:"category_id"`
	SupplierID  string          `json:"supplier_id"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
