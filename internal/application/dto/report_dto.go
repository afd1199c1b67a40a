package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesSummaryDTO resumen de ventas de un período.
type SalesSummaryDTO struct {
	Period               PeriodDTO                 `json:"period"`
	Summary              SalesSummaryTotalsDTO     `json:"summary"`
	TopProducts          []TopProductDTO           `json:"topProducts"`
	AttendantPerformance []AttendantPerformanceDTO `json:"attendantPerformance"`
}

// PeriodDTO rango consultado.
type PeriodDTO struct {
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

// SalesSummaryTotalsDTO métricas globales del período.
type SalesSummaryTotalsDTO struct {
	TotalSales       decimal.Decimal `json:"totalSales"`
	TotalProfit      decimal.Decimal `json:"totalProfit"`
	TotalQuantity    int64           `json:"totalQuantity"`
	AverageProfit    decimal.Decimal `json:"averageProfit"`
	AverageSaleValue decimal.Decimal `json:"averageSaleValue"`
}

// ProfitAnalysisDTO análisis de utilidad: tendencia diaria, por categoría
// y gastos totales del período.
type ProfitAnalysisDTO struct {
	Period          PeriodDTO           `json:"period"`
	ProfitTrend     []DailyProfitDTO    `json:"profitTrend"`
	CategoryProfits []CategoryProfitDTO `json:"categoryProfits"`
	TotalExpenses   decimal.Decimal     `json:"totalExpenses"`
}

// DailyProfitDTO punto de la tendencia diaria.
type DailyProfitDTO struct {
	Date    time.Time       `json:"date"`
	Profit  decimal.Decimal `json:"profit"`
	Revenue decimal.Decimal `json:"revenue"`
}

// CategoryProfitDTO utilidad acumulada de una categoría.
type CategoryProfitDTO struct {
	Category     string          `json:"category"`
	TotalProfit  decimal.Decimal `json:"totalProfit"`
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
}

// InventoryValueDTO valor del inventario actual.
type InventoryValueDTO struct {
	CurrentValue  InventoryCurrentValueDTO `json:"currentValue"`
	CategoryValue []CategoryValueDTO       `json:"categoryValue"`
	LowStock      []LowStockItemDTO        `json:"lowStock"`
}

// InventoryCurrentValueDTO valor a costo y a precio de lista.
type InventoryCurrentValueDTO struct {
	Cost   decimal.Decimal `json:"cost"`
	Retail decimal.Decimal `json:"retail"`
}

// CategoryValueDTO valor del inventario de una categoría.
type CategoryValueDTO struct {
	Category      string          `json:"category"`
	ItemCount     int64           `json:"itemCount"`
	TotalQuantity int64           `json:"totalQuantity"`
	CostValue     decimal.Decimal `json:"costValue"`
	RetailValue   decimal.Decimal `json:"retailValue"`
}

// LowStockItemDTO pieza bajo el umbral de stock.
type LowStockItemDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Quantity int    `json:"quantity"`
}

// ExpenseSummaryDTO resumen de gastos de un período.
type ExpenseSummaryDTO struct {
	Period            PeriodDTO                 `json:"period"`
	Summary           ExpenseSummaryTotalsDTO   `json:"summary"`
	CategoryBreakdown []ExpenseCategoryStatsDTO `json:"categoryBreakdown"`
	Trend             []DailyExpenseDTO         `json:"trend"`
}

// ExpenseSummaryTotalsDTO métricas globales de gastos.
type ExpenseSummaryTotalsDTO struct {
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	AverageAmount decimal.Decimal `json:"averageAmount"`
	ExpenseCount  int64           `json:"expenseCount"`
}

// ExpenseCategoryStatsDTO gasto acumulado y conteo de una categoría.
type ExpenseCategoryStatsDTO struct {
	Category     string          `json:"category"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	ExpenseCount int64           `json:"expenseCount"`
}

// DailyExpenseDTO punto de la tendencia diaria de gastos.
type DailyExpenseDTO struct {
	Date        time.Time       `json:"date"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}
