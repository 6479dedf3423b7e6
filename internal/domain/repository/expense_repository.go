package repository

import (
	"context"

	"github.com/dstore/dsms-api/internal/domain/entity"
)

// ExpenseRepository define el puerto de persistencia para registros de gasto/ingreso.
type ExpenseRepository interface {
	Create(ctx context.Context, expense *entity.Expense) error
	// ListByDateAsc devuelve todos los registros ordenados por fecha ascendente
	// (insumo del resumen mensual de gastos/ingresos).
	ListByDateAsc(ctx context.Context) ([]*entity.Expense, error)
}
