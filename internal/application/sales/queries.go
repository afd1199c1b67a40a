package sales

import (
	"context"
	"time"

	"github.com/antiquehaven/antique-haven-api/internal/application/dto"
	"github.com/antiquehaven/antique-haven-api/internal/domain"
	"github.com/antiquehaven/antique-haven-api/internal/domain/repository"
)

// QueryUseCase lecturas de ventas: listados y agregados. Las ventas son
// inmutables, así que no hay updates ni deletes aquí.
type QueryUseCase struct {
	saleRepo   repository.SaleRepository
	reportRepo repository.ReportRepository
}

// NewQueryUseCase construye el caso de uso de lectura.
func NewQueryUseCase(saleRepo repository.SaleRepository, reportRepo repository.ReportRepository) *QueryUseCase {
	return &QueryUseCase{saleRepo: saleRepo, reportRepo: reportRepo}
}

// List devuelve todas las ventas con pieza y vendedor.
func (uc *QueryUseCase) List(ctx context.Context) ([]dto.SaleResponse, error) {
	rows, err := uc.saleRepo.List()
	if err != nil {
		return nil, err
	}
	return toSaleResponses(rows), nil
}

// ListByDateRange devuelve las ventas del rango [start, end].
func (uc *QueryUseCase) ListByDateRange(ctx context.Context, startDate, endDate string) ([]dto.SaleResponse, error) {
	start, end, err := ParsePeriod(startDate, endDate)
	if err != nil {
		return nil, err
	}
	rows, err := uc.saleRepo.ListByDateRange(start, end)
	if err != nil {
		return nil, err
	}
	return toSaleResponses(rows), nil
}

// Stats agrega todas las ventas históricas: totales, promedios, top de
// piezas y rendimiento por vendedor.
func (uc *QueryUseCase) Stats(ctx context.Context) (*dto.SaleStatsResponse, error) {
	start := time.Unix(0, 0)
	end := time.Now()

	totals, err := uc.reportRepo.GetSalesTotals(ctx, start, end)
	if err != nil {
		return nil, err
	}
	top, err := uc.reportRepo.GetTopProducts(ctx, start, end, 5)
	if err != nil {
		return nil, err
	}
	attendants, err := uc.reportRepo.GetAttendantPerformance(ctx, start, end)
	if err != nil {
		return nil, err
	}

	out := &dto.SaleStatsResponse{
		Totals: dto.SaleTotalsDTO{
			Profit:   totals.TotalProfit,
			Quantity: totals.TotalQuantity,
			Revenue:  totals.TotalRevenue,
		},
		Averages: dto.SaleAveragesDTO{
			Profit:    totals.AvgProfit,
			SaleValue: totals.AvgSaleValue,
		},
		TopProducts:          make([]dto.TopProductDTO, 0, len(top)),
		AttendantPerformance: make([]dto.AttendantPerformanceDTO, 0, len(attendants)),
	}
	for _, p := range top {
		out.TopProducts = append(out.TopProducts, dto.TopProductDTO{
			ItemID:       p.ItemID,
			Name:         p.Name,
			QuantitySold: p.QuantitySold,
			TotalProfit:  p.TotalProfit,
		})
	}
	for _, a := range attendants {
		out.AttendantPerformance = append(out.AttendantPerformance, dto.AttendantPerformanceDTO{
			AttendantID: a.AttendantID,
			Name:        a.FullName,
			TotalSales:  a.SaleCount,
			TotalProfit: a.TotalProfit,
		})
	}
	return out, nil
}

func toSaleResponses(rows []repository.SaleWithRefs) []dto.SaleResponse {
	out := make([]dto.SaleResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.SaleResponse{
			ID:           r.Sale.ID,
			ItemID:       r.Sale.ItemID,
			ItemName:     r.ItemName,
			Quantity:     r.Sale.Quantity,
			SellingPrice: r.Sale.SellingPrice,
			Profit:       r.Sale.Profit,
			AttendantID:  r.Sale.AttendantID,
			Attendant:    r.AttendantFullName,
			SaleDate:     r.Sale.SaleDate,
		})
	}
	return out
}

// ParsePeriod interpreta un rango de fechas (YYYY-MM-DD o RFC3339). La fecha
// final sin hora se extiende al fin del día. Rango vacío o invertido es
// entrada inválida.
func ParsePeriod(startDate, endDate string) (time.Time, time.Time, error) {
	if startDate == "" || endDate == "" {
		return time.Time{}, time.Time{}, domain.ErrInvalidInput
	}
	start, err := parseDate(startDate)
	if err != nil {
		return time.Time{}, time.Time{}, domain.ErrInvalidInput
	}
	end, err := parseDate(endDate)
	if err != nil {
		return time.Time{}, time.Time{}, domain.ErrInvalidInput
	}
	if len(endDate) == len("2006-01-02") {
		end = end.Add(24*time.Hour - time.Nanosecond)
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, domain.ErrInvalidInput
	}
	return start, end, nil
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
