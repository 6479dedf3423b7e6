package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AddExpenseRequest entrada para registrar un gasto o ingreso.
type AddExpenseRequest struct {
	Description string          `json:"description" validate:"required"`
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	Date        time.Time       `json:"date" validate:"required"`
	Type        string          `json:"type" validate:"required,oneof=expenses revenue"`
}

// ExpenseResponse salida de un registro financiero.
type ExpenseResponse struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Type        string          `json:"type"`
}

// MonthSummary acumulado financiero de un mes calendario.
// Profit y Loss se derivan: profit = max(0, revenue - expenses); loss = max(0, expenses - revenue).
type MonthSummary struct {
	Expenses decimal.Decimal `json:"expenses"`
	Revenue  decimal.Decimal `json:"revenue"`
	Profit   decimal.Decimal `json:"profit"`
	Loss     decimal.Decimal `json:"loss"`
}

// MonthlySummaryResponse resumen por mes (clave 1=enero … 12=diciembre).
type MonthlySummaryResponse map[int]MonthSummary
