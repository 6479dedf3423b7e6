package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/dstore/dsms-api/internal/domain/entity"
	"github.com/dstore/dsms-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas agregadas de solo lectura para el dashboard.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

func (r *AnalyticsRepo) CountProducts(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return count, nil
}

func (r *AnalyticsRepo) TotalStock(ctx context.Context) (int64, error) {
	var total int64
	err := r.pool.QueryRow(ctx, `SELECT COALESCE(SUM(stock), 0) FROM products`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("sum stock: %w", err)
	}
	return total, nil
}

func (r *AnalyticsRepo) CountOrders(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return count, nil
}

func (r *AnalyticsRepo) CountOrdersBetween(ctx context.Context, start, end time.Time) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM orders WHERE order_date >= $1 AND order_date < $2`,
		start, end,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count orders between: %w", err)
	}
	return count, nil
}

func (r *AnalyticsRepo) CountOutOfStock(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products WHERE stock = 0`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count out of stock: %w", err)
	}
	return count, nil
}

func (r *AnalyticsRepo) CountLowStock(ctx context.Context, threshold int64) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM products WHERE stock < $1`, threshold,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count low stock: %w", err)
	}
	return count, nil
}

// TopSellingProduct agrega las órdenes entregadas por producto y devuelve
// el de más unidades; nil si no hay entregas todavía.
func (r *AnalyticsRepo) TopSellingProduct(ctx context.Context) (*repository.ProductSales, error) {
	query := `
		SELECT o.product_id, p.name, SUM(o.quantity) AS units
		FROM orders o
		JOIN products p ON p.id = o.product_id
		WHERE o.status = 'delivered'
		GROUP BY o.product_id, p.name
		ORDER BY units DESC
		LIMIT 1`
	var ps repository.ProductSales
	err := r.pool.QueryRow(ctx, query).Scan(&ps.ProductID, &ps.Name, &ps.UnitsSold)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("top selling product: %w", err)
	}
	return &ps, nil
}

func (r *AnalyticsRepo) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM expenses WHERE type = $1`,
		entity.ExpenseTypeRevenue,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum revenue: %w", err)
	}
	return total, nil
}
