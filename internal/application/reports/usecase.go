package reports

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/antiquehaven/antique-haven-api/internal/application/dto"
	"github.com/antiquehaven/antique-haven-api/internal/application/usecase"
	"github.com/antiquehaven/antique-haven-api/internal/domain/repository"
	"github.com/antiquehaven/antique-haven-api/pkg/logger"
)

const topProductsLimit = 10

// ReportUseCase orquesta los reportes agregados del negocio:
//   - Resumen de ventas (totales, top de productos, rendimiento por vendedor).
//   - Análisis de utilidad (tendencia diaria, por categoría, contra gastos).
//   - Valor del inventario (costo vs precio de lista, stock bajo).
//   - Resumen de gastos (totales, por categoría, tendencia diaria).
//
// Las respuestas se cachean por período; la caché es best-effort y su falla
// nunca tumba el reporte.
type ReportUseCase struct {
	reportRepo repository.ReportRepository
	itemRepo   repository.InventoryRepository
	cache      Cache
	pdf        SalesReportPDFGenerator
	log        *logger.Logger
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	reportRepo repository.ReportRepository,
	itemRepo repository.InventoryRepository,
	cache Cache,
	pdf SalesReportPDFGenerator,
	log *logger.Logger,
) *ReportUseCase {
	return &ReportUseCase{
		reportRepo: reportRepo,
		itemRepo:   itemRepo,
		cache:      cache,
		pdf:        pdf,
		log:        log,
	}
}

// SalesSummary resumen de ventas del período.
func (uc *ReportUseCase) SalesSummary(ctx context.Context, start, end time.Time) (*dto.SalesSummaryDTO, error) {
	key := cacheKey("sales-summary", start, end)
	var cached dto.SalesSummaryDTO
	if uc.cacheGet(ctx, key, &cached) {
		return &cached, nil
	}

	// Consultas independientes en paralelo
	type totalsResult struct {
		totals *repository.SalesTotals
		err    error
	}
	type topResult struct {
		rows []repository.TopProductResult
		err  error
	}
	type perfResult struct {
		rows []repository.AttendantPerformanceResult
		err  error
	}

	totalsCh := make(chan totalsResult, 1)
	topCh := make(chan topResult, 1)
	perfCh := make(chan perfResult, 1)

	go func() {
		t, err := uc.reportRepo.GetSalesTotals(ctx, start, end)
		totalsCh <- totalsResult{t, err}
	}()
	go func() {
		rows, err := uc.reportRepo.GetTopProducts(ctx, start, end, topProductsLimit)
		topCh <- topResult{rows, err}
	}()
	go func() {
		rows, err := uc.reportRepo.GetAttendantPerformance(ctx, start, end)
		perfCh <- perfResult{rows, err}
	}()

	tRes, topRes, pRes := <-totalsCh, <-topCh, <-perfCh
	if tRes.err != nil {
		return nil, fmt.Errorf("reports: totales de ventas: %w", tRes.err)
	}
	if topRes.err != nil {
		return nil, fmt.Errorf("reports: top de productos: %w", topRes.err)
	}
	if pRes.err != nil {
		return nil, fmt.Errorf("reports: rendimiento por vendedor: %w", pRes.err)
	}

	topProducts := make([]dto.TopProductDTO, 0, len(topRes.rows))
	for _, r := range topRes.rows {
		topProducts = append(topProducts, dto.TopProductDTO{
			ItemID:       r.ItemID,
			Name:         r.Name,
			QuantitySold: r.QuantitySold,
			TotalProfit:  r.TotalProfit,
		})
	}
	performance := make([]dto.AttendantPerformanceDTO, 0, len(pRes.rows))
	for _, r := range pRes.rows {
		performance = append(performance, dto.AttendantPerformanceDTO{
			AttendantID: r.AttendantID,
			Name:        r.FullName,
			TotalSales:  r.SaleCount,
			TotalProfit: r.TotalProfit,
		})
	}

	summary := &dto.SalesSummaryDTO{
		Period: dto.PeriodDTO{StartDate: start, EndDate: end},
		Summary: dto.SalesSummaryTotalsDTO{
			TotalSales:       tRes.totals.TotalRevenue,
			TotalProfit:      tRes.totals.TotalProfit,
			TotalQuantity:    tRes.totals.TotalQuantity,
			AverageProfit:    tRes.totals.AvgProfit,
			AverageSaleValue: tRes.totals.AvgSaleValue,
		},
		TopProducts:          topProducts,
		AttendantPerformance: performance,
	}
	uc.cacheSet(ctx, key, summary)
	return summary, nil
}

// SalesSummaryPDF genera el resumen de ventas como PDF.
func (uc *ReportUseCase) SalesSummaryPDF(ctx context.Context, start, end time.Time) ([]byte, error) {
	summary, err := uc.SalesSummary(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateSalesSummaryPDF(ctx, summary)
}

// ProfitAnalysis tendencia diaria de utilidad, utilidad por categoría y
// gastos totales del mismo período para contraste.
func (uc *ReportUseCase) ProfitAnalysis(ctx context.Context, start, end time.Time) (*dto.ProfitAnalysisDTO, error) {
	key := cacheKey("profit-analysis", start, end)
	var cached dto.ProfitAnalysisDTO
	if uc.cacheGet(ctx, key, &cached) {
		return &cached, nil
	}

	trend, err := uc.reportRepo.GetDailyProfitTrend(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("reports: tendencia de utilidad: %w", err)
	}
	categories, err := uc.reportRepo.GetCategoryProfits(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("reports: utilidad por categoría: %w", err)
	}
	expenses, err := uc.reportRepo.GetExpenseTotals(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("reports: gastos del período: %w", err)
	}

	trendDTO := make([]dto.DailyProfitDTO, 0, len(trend))
	for _, p := range trend {
		trendDTO = append(trendDTO, dto.DailyProfitDTO{
			Date:    p.Day,
			Profit:  p.Profit,
			Revenue: p.Revenue,
		})
	}
	categoryDTO := make([]dto.CategoryProfitDTO, 0, len(categories))
	for _, c := range categories {
		categoryDTO = append(categoryDTO, dto.CategoryProfitDTO{
			Category:     c.Category,
			TotalProfit:  c.TotalProfit,
			TotalRevenue: c.TotalRevenue,
		})
	}

	analysis := &dto.ProfitAnalysisDTO{
		Period:          dto.PeriodDTO{StartDate: start, EndDate: end},
		ProfitTrend:     trendDTO,
		CategoryProfits: categoryDTO,
		TotalExpenses:   expenses.TotalAmount,
	}
	uc.cacheSet(ctx, key, analysis)
	return analysis, nil
}

// InventoryValue valor actual del inventario, desglose por categoría y
// piezas bajo el umbral de stock.
func (uc *ReportUseCase) InventoryValue(ctx context.Context, lowStockThreshold int) (*dto.InventoryValueDTO, error) {
	if lowStockThreshold <= 0 {
		lowStockThreshold = usecase.DefaultLowStockThreshold
	}

	totals, err := uc.reportRepo.GetInventoryTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("reports: totales de inventario: %w", err)
	}
	categories, err := uc.reportRepo.GetCategoryValues(ctx)
	if err != nil {
		return nil, fmt.Errorf("reports: valor por categoría: %w", err)
	}
	lowStock, err := uc.itemRepo.ListLowStock(lowStockThreshold)
	if err != nil {
		return nil, fmt.Errorf("reports: stock bajo: %w", err)
	}

	categoryDTO := make([]dto.CategoryValueDTO, 0, len(categories))
	for _, c := range categories {
		categoryDTO = append(categoryDTO, dto.CategoryValueDTO{
			Category:      c.Category,
			ItemCount:     c.ItemCount,
			TotalQuantity: c.TotalQuantity,
			CostValue:     c.CostValue,
			RetailValue:   c.RetailValue,
		})
	}
	lowStockDTO := make([]dto.LowStockItemDTO, 0, len(lowStock))
	for _, it := range lowStock {
		lowStockDTO = append(lowStockDTO, dto.LowStockItemDTO{
			ID:       it.ID,
			Name:     it.Name,
			Category: it.Category,
			Quantity: it.Quantity,
		})
	}

	return &dto.InventoryValueDTO{
		CurrentValue: dto.InventoryCurrentValueDTO{
			Cost:   totals.CostValue,
			Retail: totals.RetailValue,
		},
		CategoryValue: categoryDTO,
		LowStock:      lowStockDTO,
	}, nil
}

// ExpenseSummary resumen de gastos del período.
func (uc *ReportUseCase) ExpenseSummary(ctx context.Context, start, end time.Time) (*dto.ExpenseSummaryDTO, error) {
	key := cacheKey("expense-summary", start, end)
	var cached dto.ExpenseSummaryDTO
	if uc.cacheGet(ctx, key, &cached) {
		return &cached, nil
	}

	totals, err := uc.reportRepo.GetExpenseTotals(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("reports: totales de gastos: %w", err)
	}
	categories, err := uc.reportRepo.GetExpenseCategoryBreakdown(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("reports: gastos por categoría: %w", err)
	}
	trend, err := uc.reportRepo.GetDailyExpenseTrend(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("reports: tendencia de gastos: %w", err)
	}

	categoryDTO := make([]dto.ExpenseCategoryStatsDTO, 0, len(categories))
	for _, c := range categories {
		categoryDTO = append(categoryDTO, dto.ExpenseCategoryStatsDTO{
			Category:     c.Category,
			TotalAmount:  c.TotalAmount,
			ExpenseCount: c.ExpenseCount,
		})
	}
	trendDTO := make([]dto.DailyExpenseDTO, 0, len(trend))
	for _, p := range trend {
		trendDTO = append(trendDTO, dto.DailyExpenseDTO{
			Date:        p.Day,
			TotalAmount: p.TotalAmount,
		})
	}

	summary := &dto.ExpenseSummaryDTO{
		Period: dto.PeriodDTO{StartDate: start, EndDate: end},
		Summary: dto.ExpenseSummaryTotalsDTO{
			TotalAmount:   totals.TotalAmount,
			AverageAmount: totals.AvgAmount,
			ExpenseCount:  totals.ExpenseCount,
		},
		CategoryBreakdown: categoryDTO,
		Trend:             trendDTO,
	}
	uc.cacheSet(ctx, key, summary)
	return summary, nil
}

// cacheGet intenta leer y decodificar; cualquier falla cuenta como miss.
func (uc *ReportUseCase) cacheGet(ctx context.Context, key string, dst any) bool {
	if uc.cache == nil {
		return false
	}
	raw, err := uc.cache.Get(ctx, key)
	if err != nil {
		uc.log.Warn().Err(err).Str("key", key).Msg("caché de reportes: lectura falló")
		return false
	}
	if raw == nil {
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		uc.log.Warn().Err(err).Str("key", key).Msg("caché de reportes: payload corrupto")
		return false
	}
	return true
}

// cacheSet best-effort; la falla se loguea y se sigue.
func (uc *ReportUseCase) cacheSet(ctx context.Context, key string, v any) {
	if uc.cache == nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := uc.cache.Set(ctx, key, raw); err != nil {
		uc.log.Warn().Err(err).Str("key", key).Msg("caché de reportes: escritura falló")
	}
}

func cacheKey(report string, start, end time.Time) string {
	return fmt.Sprintf("reports:%s:%d:%d", report, start.Unix(), end.Unix())
}
