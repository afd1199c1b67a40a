package repository

import (
	"time"

	"github.com/antiquehaven/antique-haven-api/internal/domain/entity"
)

// ExpenseFilter filtros opcionales para el listado de gastos.
// Category vacía o fechas nil = sin filtro.
type ExpenseFilter struct {
	Category  string
	StartDate *time.Time
	EndDate   *time.Time
}

// ExpenseRepository puerto de persistencia para gastos.
type ExpenseRepository interface {
	Create(expense *entity.Expense) error
	GetByID(id string) (*entity.Expense, error)
	List(filter ExpenseFilter) ([]*entity.Expense, error)
	Update(expense *entity.Expense) error
	Delete(id string) error
}
