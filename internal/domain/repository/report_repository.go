package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Resultados de las consultas agregadas de reportería (solo lectura).

// SalesTotals totales y promedios de ventas en un período.
type SalesTotals struct {
	TotalRevenue  decimal.Decimal
	TotalProfit   decimal.Decimal
	TotalQuantity int64
	SaleCount     int64
	AvgProfit     decimal.Decimal
	AvgSaleValue  decimal.Decimal
}

// TopProductResult producto agrupado por unidades vendidas.
type TopProductResult struct {
	ItemID       string
	Name         string
	QuantitySold int64
	TotalProfit  decimal.Decimal
}

// AttendantPerformanceResult rendimiento por vendedor.
type AttendantPerformanceResult struct {
	AttendantID string
	Username    string
	FullName    string
	SaleCount   int64
	UnitsSold   int64
	TotalProfit decimal.Decimal
}

// DailyProfitResult utilidad e ingresos agrupados por día.
type DailyProfitResult struct {
	Day     time.Time
	Profit  decimal.Decimal
	Revenue decimal.Decimal
}

// CategoryProfitResult utilidad por categoría de pieza (sales JOIN inventory).
type CategoryProfitResult struct {
	Category     string
	TotalProfit  decimal.Decimal
	TotalRevenue decimal.Decimal
}

// InventoryTotals valor total del inventario a costo y a precio de lista.
type InventoryTotals struct {
	ItemCount   int64
	CostValue   decimal.Decimal
	RetailValue decimal.Decimal
}

// CategoryValueResult valor del inventario agrupado por categoría.
type CategoryValueResult struct {
	Category      string
	ItemCount     int64
	TotalQuantity int64
	CostValue     decimal.Decimal
	RetailValue   decimal.Decimal
}

// ExpenseTotals suma, promedio y conteo de gastos del período.
type ExpenseTotals struct {
	TotalAmount  decimal.Decimal
	AvgAmount    decimal.Decimal
	ExpenseCount int64
}

// CategoryExpenseResult gasto agrupado por categoría.
type CategoryExpenseResult struct {
	Category     string
	TotalAmount  decimal.Decimal
	ExpenseCount int64
}

// DailyExpenseResult gasto agrupado por día.
type DailyExpenseResult struct {
	Day         time.Time
	TotalAmount decimal.Decimal
}

// UserStatsResult actividad acumulada de un usuario (ventas y gastos).
type UserStatsResult struct {
	SaleCount     int64
	ItemsSold     int64
	TotalProfit   decimal.Decimal
	ExpenseCount  int64
	TotalExpenses decimal.Decimal
}

// ReportRepository consultas agregadas (sum, avg, count, group by) usadas por
// los endpoints de reportería. Todas son de solo lectura.
type ReportRepository interface {
	GetSalesTotals(ctx context.Context, start, end time.Time) (*SalesTotals, error)
	GetTopProducts(ctx context.Context, start, end time.Time, limit int) ([]TopProductResult, error)
	GetAttendantPerformance(ctx context.Context, start, end time.Time) ([]AttendantPerformanceResult, error)
	GetDailyProfitTrend(ctx context.Context, start, end time.Time) ([]DailyProfitResult, error)
	GetCategoryProfits(ctx context.Context, start, end time.Time) ([]CategoryProfitResult, error)

	GetInventoryTotals(ctx context.Context) (*InventoryTotals, error)
	GetCategoryValues(ctx context.Context) ([]CategoryValueResult, error)

	GetExpenseTotals(ctx context.Context, start, end time.Time) (*ExpenseTotals, error)
	GetExpenseCategoryBreakdown(ctx context.Context, start, end time.Time) ([]CategoryExpenseResult, error)
	GetDailyExpenseTrend(ctx context.Context, start, end time.Time) ([]DailyExpenseResult, error)

	GetUserStats(ctx context.Context, userID string) (*UserStatsResult, error)
}
