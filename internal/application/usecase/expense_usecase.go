package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/antiquehaven/antique-haven-api/internal/application/dto"
	"github.com/antiquehaven/antique-haven-api/internal/domain"
	"github.com/antiquehaven/antique-haven-api/internal/domain/entity"
	"github.com/antiquehaven/antique-haven-api/internal/domain/repository"
)

// ExpenseUseCase CRUD de gastos operativos y estadísticas por categoría.
type ExpenseUseCase struct {
	expenseRepo repository.ExpenseRepository
	reportRepo  repository.ReportRepository
}

// NewExpenseUseCase construye el caso de uso.
func NewExpenseUseCase(expenseRepo repository.ExpenseRepository, reportRepo repository.ReportRepository) *ExpenseUseCase {
	return &ExpenseUseCase{expenseRepo: expenseRepo, reportRepo: reportRepo}
}

// Create registra un gasto a nombre del usuario autenticado.
func (uc *ExpenseUseCase) Create(in dto.CreateExpenseRequest, actorID string) (*dto.ExpenseResponse, error) {
	date, err := validateExpenseFields(in)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	expense := &entity.Expense{
		ID:          uuid.New().String(),
		Description: in.Description,
		Amount:      in.Amount,
		Category:    in.Category,
		Date:        date,
		AddedBy:     actorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.expenseRepo.Create(expense); err != nil {
		return nil, err
	}
	return toExpenseResponse(expense), nil
}

// List devuelve gastos con filtros opcionales de categoría y rango de fechas.
func (uc *ExpenseUseCase) List(filter repository.ExpenseFilter) ([]dto.ExpenseResponse, error) {
	expenses, err := uc.expenseRepo.List(filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, *toExpenseResponse(e))
	}
	return out, nil
}

// GetByID devuelve un gasto o nil si no existe.
func (uc *ExpenseUseCase) GetByID(id string) (*dto.ExpenseResponse, error) {
	expense, err := uc.expenseRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toExpenseResponse(expense), nil
}

// Update reemplaza los campos del gasto; AddedBy no cambia.
func (uc *ExpenseUseCase) Update(id string, in dto.UpdateExpenseRequest) (*dto.ExpenseResponse, error) {
	expense, err := uc.expenseRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, nil
	}
	date, err := validateExpenseFields(in)
	if err != nil {
		return nil, err
	}
	expense.Description = in.Description
	expense.Amount = in.Amount
	expense.Category = in.Category
	expense.Date = date
	expense.UpdatedAt = time.Now()

	if err := uc.expenseRepo.Update(expense); err != nil {
		return nil, err
	}
	return toExpenseResponse(expense), nil
}

// Delete elimina un gasto.
func (uc *ExpenseUseCase) Delete(id string) error {
	return uc.expenseRepo.Delete(id)
}

// Stats total del período y desglose por categoría.
func (uc *ExpenseUseCase) Stats(ctx context.Context, start, end time.Time) (*dto.ExpenseStatsResponse, error) {
	totals, err := uc.reportRepo.GetExpenseTotals(ctx, start, end)
	if err != nil {
		return nil, err
	}
	categories, err := uc.reportRepo.GetExpenseCategoryBreakdown(ctx, start, end)
	if err != nil {
		return nil, err
	}

	breakdown := make([]dto.ExpenseCategoryEntry, 0, len(categories))
	for _, c := range categories {
		breakdown = append(breakdown, dto.ExpenseCategoryEntry{
			Category: c.Category,
			Amount:   c.TotalAmount,
		})
	}
	return &dto.ExpenseStatsResponse{
		TotalAmount:       totals.TotalAmount,
		CategoryBreakdown: breakdown,
	}, nil
}

func validateExpenseFields(in dto.CreateExpenseRequest) (time.Time, error) {
	if in.Description == "" || in.Category == "" {
		return time.Time{}, domain.ErrInvalidInput
	}
	if !in.Amount.IsPositive() {
		return time.Time{}, domain.ErrInvalidInput
	}
	return parseExpenseDate(in.Date)
}

// parseExpenseDate acepta YYYY-MM-DD o RFC3339; vacío = hoy.
func parseExpenseDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Now(), nil
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Time{}, domain.ErrInvalidInput
}

func toExpenseResponse(e *entity.Expense) *dto.ExpenseResponse {
	if e == nil {
		return nil
	}
	return &dto.ExpenseResponse{
		ID:          e.ID,
		Description: e.Description,
		Amount:      e.Amount,
		Category:    e.Category,
		Date:        e.Date,
		AddedBy:     e.AddedBy,
		CreatedAt:   e.CreatedAt,
	}
}
