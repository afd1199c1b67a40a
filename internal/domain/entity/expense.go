package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense representa un gasto operativo. Mutable y borrable de forma
// independiente; sin invariantes cruzadas con otras entidades.
type Expense struct {
	ID          string
	Description string
	Amount      decimal.Decimal // > 0
	Category    string
	Date        time.Time
	AddedBy     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
