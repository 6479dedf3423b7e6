package postgres

import (
	"context"
	"fmt"

	"github.com/dstore/dsms-api/internal/domain/entity"
	"github.com/dstore/dsms-api/internal/domain/repository"
)

var _ repository.ExpenseRepository = (*ExpenseRepo)(nil)

// ExpenseRepo implementación del puerto ExpenseRepository sobre PostgreSQL (usable con pool o tx).
type ExpenseRepo struct {
	q Querier
}

// NewExpenseRepository construye el adaptador de persistencia para gastos/ingresos. Pasar pool o tx (Querier).
func NewExpenseRepository(q Querier) *ExpenseRepo {
	return &ExpenseRepo{q: q}
}

// Create persiste un registro financiero.
func (r *ExpenseRepo) Create(ctx context.Context, expense *entity.Expense) error {
	query := `
		INSERT INTO expenses (id, description, amount, date, type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		expense.ID, expense.Description, expense.Amount, expense.Date, expense.Type, expense.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert expense: %w", err)
	}
	return nil
}

// ListByDateAsc devuelve todos los registros ordenados por fecha ascendente.
func (r *ExpenseRepo) ListByDateAsc(ctx context.Context) ([]*entity.Expense, error) {
	query := `
		SELECT id, description, amount, date, type, created_at
		FROM expenses ORDER BY date ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()
	var list []*entity.Expense
	for rows.Next() {
		var e entity.Expense
		if err := rows.Scan(&e.ID, &e.Description, &e.Amount, &e.Date, &e.Type, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
