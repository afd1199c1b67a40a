package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateExpenseRequest alta de un gasto.
type CreateExpenseRequest struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Date        string          `json:"date"` // YYYY-MM-DD o RFC3339
}

// UpdateExpenseRequest modificación de un gasto (mismos campos que el alta).
type UpdateExpenseRequest = CreateExpenseRequest

// ExpenseResponse proyección de un gasto.
type ExpenseResponse struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Date        time.Time       `json:"date"`
	AddedBy     string          `json:"addedBy"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ExpenseStatsResponse total y desglose por categoría.
type ExpenseStatsResponse struct {
	TotalAmount       decimal.Decimal        `json:"totalAmount"`
	CategoryBreakdown []ExpenseCategoryEntry `json:"categoryBreakdown"`
}

// ExpenseCategoryEntry gasto acumulado de una categoría.
type ExpenseCategoryEntry struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}
