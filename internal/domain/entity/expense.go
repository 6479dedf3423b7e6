package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de registro financiero.
const (
	ExpenseTypeExpense = "expenses"
	ExpenseTypeRevenue = "revenue"
)

// Expense representa un registro de gasto o ingreso del almacén.
type Expense struct {
	ID          string
	Description string
	Amount      decimal.Decimal // > 0
	Date        time.Time
	Type        string // expenses, revenue
	CreatedAt   time.Time
}
