package usecase_test

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/dstore/dsms-api/internal/application/dto"
	"github.com/dstore/dsms-api/internal/application/usecase"
	"github.com/dstore/dsms-api/internal/domain"
	"github.com/dstore/dsms-api/internal/domain/entity"
)

// fakeExpenseRepo doble en memoria de ExpenseRepository.
type fakeExpenseRepo struct {
	expenses []*entity.Expense
}

func (f *fakeExpenseRepo) Create(_ context.Context, e *entity.Expense) error {
	f.expenses = append(f.expenses, e)
	return nil
}

func (f *fakeExpenseRepo) ListByDateAsc(_ context.Context) ([]*entity.Expense, error) {
	sorted := make([]*entity.Expense, len(f.expenses))
	copy(sorted, f.expenses)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })
	return sorted, nil
}

func fecha(mes time.Month, dia int) time.Time {
	return time.Date(2025, mes, dia, 12, 0, 0, 0, time.UTC)
}

func TestExpenseAdd_Valido(t *testing.T) {
	uc := usecase.NewExpenseUseCase(&fakeExpenseRepo{})

	out, err := uc.Add(context.Background(), dto.AddExpenseRequest{
		Description: "venta mostrador",
		Amount:      decimal.NewFromInt(1500),
		Date:        fecha(time.March, 10),
		Type:        entity.ExpenseTypeRevenue,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, entity.ExpenseTypeRevenue, out.Type)
}

func TestExpenseAdd_Invalido(t *testing.T) {
	uc := usecase.NewExpenseUseCase(&fakeExpenseRepo{})

	casos := []dto.AddExpenseRequest{
		{Description: "", Amount: decimal.NewFromInt(10), Date: fecha(time.March, 1), Type: entity.ExpenseTypeRevenue},
		{Description: "x", Amount: decimal.Zero, Date: fecha(time.March, 1), Type: entity.ExpenseTypeRevenue},
		{Description: "x", Amount: decimal.NewFromInt(-5), Date: fecha(time.March, 1), Type: entity.ExpenseTypeExpense},
		{Description: "x", Amount: decimal.NewFromInt(10), Date: time.Time{}, Type: entity.ExpenseTypeExpense},
		{Description: "x", Amount: decimal.NewFromInt(10), Date: fecha(time.March, 1), Type: "otro"},
	}
	for i, in := range casos {
		_, err := uc.Add(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "caso %d debe rechazarse", i)
	}
}

// El resumen acumula por mes calendario y deriva profit/loss:
// profit = max(0, revenue - expenses), loss = max(0, expenses - revenue).
func TestExpenseMonthlySummary(t *testing.T) {
	repo := &fakeExpenseRepo{expenses: []*entity.Expense{
		{Description: "ventas", Amount: decimal.NewFromInt(1000), Date: fecha(time.January, 5), Type: entity.ExpenseTypeRevenue},
		{Description: "arriendo", Amount: decimal.NewFromInt(400), Date: fecha(time.January, 10), Type: entity.ExpenseTypeExpense},
		{Description: "nómina", Amount: decimal.NewFromInt(800), Date: fecha(time.February, 1), Type: entity.ExpenseTypeExpense},
		{Description: "ventas", Amount: decimal.NewFromInt(300), Date: fecha(time.February, 20), Type: entity.ExpenseTypeRevenue},
	}}
	uc := usecase.NewExpenseUseCase(repo)

	summary, err := uc.MonthlySummary(context.Background())
	require.NoError(t, err)
	require.Len(t, summary, 2)

	enero := summary[1]
	assert.True(t, enero.Revenue.Equal(decimal.NewFromInt(1000)))
	assert.True(t, enero.Expenses.Equal(decimal.NewFromInt(400)))
	assert.True(t, enero.Profit.Equal(decimal.NewFromInt(600)), "enero con ganancia de 600")
	assert.True(t, enero.Loss.Equal(decimal.Zero))

	febrero := summary[2]
	assert.True(t, febrero.Revenue.Equal(decimal.NewFromInt(300)))
	assert.True(t, febrero.Expenses.Equal(decimal.NewFromInt(800)))
	assert.True(t, febrero.Profit.Equal(decimal.Zero))
	assert.True(t, febrero.Loss.Equal(decimal.NewFromInt(500)), "febrero con pérdida de 500")
}

func TestExpenseMonthlySummary_SinRegistros(t *testing.T) {
	uc := usecase.NewExpenseUseCase(&fakeExpenseRepo{})
	summary, err := uc.MonthlySummary(context.Background())
	require.NoError(t, err)
	assert.Empty(t, summary)
}
