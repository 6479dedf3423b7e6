package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/dstore/dsms-api/internal/domain/entity"
	"github.com/dstore/dsms-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de persistencia para órdenes. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste una nueva orden.
func (r *OrderRepo) Create(ctx context.Context, order *entity.Order) error {
	query := `
		INSERT INTO orders (id, customer_id, product_id, quantity, price, total, status, order_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		order.ID, order.CustomerID, order.ProductID, order.Quantity,
		order.Price, order.Total, string(order.Status), order.OrderDate,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID obtiene una orden por ID.
func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	query := `
		SELECT id, customer_id, product_id, quantity, price, total, status, order_date
		FROM orders WHERE id = $1`
	var o entity.Order
	var status string
	err := r.q.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.CustomerID, &o.ProductID, &o.Quantity, &o.Price, &o.Total, &status, &o.OrderDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	o.Status = entity.OrderStatus(status)
	return &o, nil
}

// ListByCustomer lista las órdenes de un cliente con paginación.
func (r *OrderRepo) ListByCustomer(ctx context.Context, customerID string, limit, offset int) ([]*entity.Order, error) {
	query := `
		SELECT id, customer_id, product_id, quantity, price, total, status, order_date
		FROM orders WHERE customer_id = $1 ORDER BY order_date DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, customerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list orders by customer: %w", err)
	}
	defer rows.Close()
	return scanOrders(rows)
}

// ListAll lista todas las órdenes con paginación (vista admin).
func (r *OrderRepo) ListAll(ctx context.Context, limit, offset int) ([]*entity.Order, error) {
	query := `
		SELECT id, customer_id, product_id, quantity, price, total, status, order_date
		FROM orders ORDER BY order_date DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	return scanOrders(rows)
}

// UpdateStatus cambia el estado condicionado al estado actual: el WHERE
// `status = from` hace que de dos transiciones concurrentes sobre la misma
// orden solo una afecte la fila. RowsAffected cero significa que la orden
// ya no estaba en `from` y nada cambió.
func (r *OrderRepo) UpdateStatus(ctx context.Context, id string, from, to entity.OrderStatus) (bool, error) {
	cmd, err := r.q.Exec(ctx,
		`UPDATE orders SET status = $3 WHERE id = $1 AND status = $2`,
		id, string(from), string(to),
	)
	if err != nil {
		return false, fmt.Errorf("update order status: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Delete elimina una orden por ID.
func (r *OrderRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}

func scanOrders(rows pgx.Rows) ([]*entity.Order, error) {
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		var status string
		if err := rows.Scan(&o.ID, &o.CustomerID, &o.ProductID, &o.Quantity,
			&o.Price, &o.Total, &status, &o.OrderDate); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		o.Status = entity.OrderStatus(status)
		list = append(list, &o)
	}
	return list, rows.Err()
}
