package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/dstore/dsms-api/internal/application/dto"
	"github.com/dstore/dsms-api/internal/domain"
	"github.com/dstore/dsms-api/internal/domain/entity"
	"github.com/dstore/dsms-api/internal/domain/repository"
)

// ExpenseUseCase registro de gastos/ingresos y resumen financiero mensual.
type ExpenseUseCase struct {
	repo repository.ExpenseRepository
}

// NewExpenseUseCase construye el caso de uso.
func NewExpenseUseCase(repo repository.ExpenseRepository) *ExpenseUseCase {
	return &ExpenseUseCase{repo: repo}
}

// Add registra un gasto o ingreso. Amount debe ser > 0 y Type uno de expenses|revenue.
func (uc *ExpenseUseCase) Add(ctx context.Context, in dto.AddExpenseRequest) (*dto.ExpenseResponse, error) {
	if in.Description == "" || in.Date.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	if !in.Amount.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if in.Type != entity.ExpenseTypeExpense && in.Type != entity.ExpenseTypeRevenue {
		return nil, domain.ErrInvalidInput
	}
	expense := &entity.Expense{
		ID:          uuid.New().String(),
		Description: in.Description,
		Amount:      in.Amount,
		Date:        in.Date,
		Type:        in.Type,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(ctx, expense); err != nil {
		return nil, err
	}
	return &dto.ExpenseResponse{
		ID:          expense.ID,
		Description: expense.Description,
		Amount:      expense.Amount,
		Date:        expense.Date,
		Type:        expense.Type,
	}, nil
}

// MonthlySummary acumula los registros por mes calendario (1=enero … 12=diciembre).
// Profit y Loss se derivan en cada mes:
//
//	profit = max(0, revenue - expenses)
//	loss   = max(0, expenses - revenue)
func (uc *ExpenseUseCase) MonthlySummary(ctx context.Context) (dto.MonthlySummaryResponse, error) {
	list, err := uc.repo.ListByDateAsc(ctx)
	if err != nil {
		return nil, err
	}

	summary := make(dto.MonthlySummaryResponse)
	for _, e := range list {
		month := int(e.Date.Month())
		acc, ok := summary[month]
		if !ok {
			acc = dto.MonthSummary{
				Expenses: decimal.Zero,
				Revenue:  decimal.Zero,
				Profit:   decimal.Zero,
				Loss:     decimal.Zero,
			}
		}

		switch e.Type {
		case entity.ExpenseTypeExpense:
			acc.Expenses = acc.Expenses.Add(e.Amount)
		case entity.ExpenseTypeRevenue:
			acc.Revenue = acc.Revenue.Add(e.Amount)
		}

		diff := acc.Revenue.Sub(acc.Expenses)
		if diff.GreaterThan(decimal.Zero) {
			acc.Profit, acc.Loss = diff, decimal.Zero
		} else {
			acc.Profit, acc.Loss = decimal.Zero, diff.Neg()
		}

		summary[month] = acc
	}

	return summary, nil
}
