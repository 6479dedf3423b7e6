package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO resumen general del almacén para el panel de administración.
type DashboardSummaryDTO struct {
	TotalProducts int64           `json:"total_products"`
	TotalStock    int64           `json:"total_stock"`
	TotalOrders   int64           `json:"total_orders"`
	OrdersToday   int64           `json:"orders_today"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	OutOfStock    int64           `json:"out_of_stock"`
	LowStock      int64           `json:"low_stock"`
	TopProduct    *TopProductDTO  `json:"top_product,omitempty"`
}

// TopProductDTO producto con más unidades entregadas.
type TopProductDTO struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	UnitsSold int64  `json:"units_sold"`
}
