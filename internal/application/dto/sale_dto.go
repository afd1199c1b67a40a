package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSaleRequest registro de una venta. El attendant sale del token.
type CreateSaleRequest struct {
	ItemID       string          `json:"itemId"`
	Quantity     int             `json:"quantity"`
	SellingPrice decimal.Decimal `json:"sellingPrice"`
}

// SaleResponse venta creada o listada. LowMargin/BelowCost son señales para
// el cliente (confirmación en UI); el backend nunca rechaza por margen.
type SaleResponse struct {
	ID           string          `json:"id"`
	ItemID       string          `json:"itemId"`
	ItemName     string          `json:"itemName,omitempty"`
	Quantity     int             `json:"quantity"`
	SellingPrice decimal.Decimal `json:"sellingPrice"`
	Profit       decimal.Decimal `json:"profit"`
	AttendantID  string          `json:"attendantId"`
	Attendant    string          `json:"attendant,omitempty"`
	SaleDate     time.Time       `json:"saleDate"`
	LowMargin    bool            `json:"lowMargin,omitempty"`
	BelowCost    bool            `json:"belowCost,omitempty"`
}

// SaleStatsResponse agregados de ventas (totales, promedios, rankings).
type SaleStatsResponse struct {
	Totals               SaleTotalsDTO             `json:"totals"`
	Averages             SaleAveragesDTO           `json:"averages"`
	TopProducts          []TopProductDTO           `json:"topProducts"`
	AttendantPerformance []AttendantPerformanceDTO `json:"attendantPerformance"`
}

// SaleTotalsDTO sumas del período.
type SaleTotalsDTO struct {
	Profit   decimal.Decimal `json:"profit"`
	Quantity int64           `json:"quantity"`
	Revenue  decimal.Decimal `json:"revenue"`
}

// SaleAveragesDTO promedios del período.
type SaleAveragesDTO struct {
	Profit    decimal.Decimal `json:"profit"`
	SaleValue decimal.Decimal `json:"saleValue"`
}

// TopProductDTO pieza más vendida.
type TopProductDTO struct {
	ItemID       string          `json:"itemId"`
	Name         string          `json:"name"`
	QuantitySold int64           `json:"quantitySold"`
	TotalProfit  decimal.Decimal `json:"totalProfit"`
}

// AttendantPerformanceDTO rendimiento por vendedor.
type AttendantPerformanceDTO struct {
	AttendantID string          `json:"attendantId"`
	Name        string          `json:"name"`
	TotalSales  int64           `json:"totalSales"`
	TotalProfit decimal.Decimal `json:"totalProfit"`
}
