package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlaceOrderRequest entrada para crear una orden. El customerID sale del token.
type PlaceOrderRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int64  `json:"quantity" validate:"required,min=1"`
}

// ChangeOrderStatusRequest entrada para cambiar el estado de una orden.
type ChangeOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// OrderResponse salida de una orden.
type OrderResponse struct {
	ID         string          `json:"id"`
	CustomerID string          `json:"customer_id"`
	ProductID  string          `json:"product_id"`
	Quantity   int64           `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
	Total      decimal.Decimal `json:"total"`
	Status     string          `json:"status"`
	OrderDate  time.Time       `json:"order_date"`
}

// OrderListResponse lista paginada de órdenes.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
