package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// AnalyticsRepository define las consultas de lectura del dashboard.
// Las implementaciones son read-only (no modifican datos).
type AnalyticsRepository interface {
	// CountProducts devuelve el número total de productos registrados.
	CountProducts(ctx context.Context) (int64, error)

	// TotalStock devuelve la suma del stock de todos los productos.
	// Usa COALESCE para devolver cero si no hay productos.
	TotalStock(ctx context.Context) (int64, error)

	// CountOrders devuelve el número total de órdenes.
	CountOrders(ctx context.Context) (int64, error)

	// CountOrdersBetween devuelve las órdenes creadas en el rango dado
	// (se usa para "órdenes de hoy").
	CountOrdersBetween(ctx context.Context, start, end time.Time) (int64, error)

	// TotalRevenue devuelve la suma de los registros financieros de tipo revenue.
	TotalRevenue(ctx context.Context) (decimal.Decimal, error)

	// CountOutOfStock devuelve el número de productos con stock cero.
	CountOutOfStock(ctx context.Context) (int64, error)

	// CountLowStock devuelve el número de productos con stock por debajo
	// del umbral (alerta de reposición).
	CountLowStock(ctx context.Context, threshold int64) (int64, error)

	// TopSellingProduct devuelve el producto con más unidades entregadas,
	// o nil si aún no hay órdenes entregadas.
	TopSellingProduct(ctx context.Context) (*ProductSales, error)
}

// ProductSales modelo de lectura: unidades entregadas de un producto.
type ProductSales struct {
	ProductID string
	Name      string
	UnitsSold int64
}
