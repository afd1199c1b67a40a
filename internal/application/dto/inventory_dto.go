package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInventoryItemRequest alta de una pieza de inventario.
type CreateInventoryItemRequest struct {
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Description  string          `json:"description"`
	BuyingPrice  decimal.Decimal `json:"buyingPrice"`
	SellingPrice decimal.Decimal `json:"sellingPrice"`
	Quantity     int             `json:"quantity"`
	ImageURL     string          `json:"imageUrl"`
}

// UpdateInventoryItemRequest modificación parcial. Campos nil = sin cambio.
// Quantity acá es una corrección administrativa; las ventas lo decrementan
// solo a través del coordinador transaccional.
type UpdateInventoryItemRequest struct {
	Name         *string          `json:"name"`
	Category     *string          `json:"category"`
	Description  *string          `json:"description"`
	BuyingPrice  *decimal.Decimal `json:"buyingPrice"`
	SellingPrice *decimal.Decimal `json:"sellingPrice"`
	Quantity     *int             `json:"quantity"`
	ImageURL     *string          `json:"imageUrl"`
}

// InventoryItemResponse proyección de una pieza.
type InventoryItemResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Description  string          `json:"description,omitempty"`
	BuyingPrice  decimal.Decimal `json:"buyingPrice"`
	SellingPrice decimal.Decimal `json:"sellingPrice"`
	Quantity     int             `json:"quantity"`
	ImageURL     string          `json:"imageUrl,omitempty"`
	ModifiedBy   string          `json:"modifiedBy,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// InventoryStatsResponse totales del inventario y desglose por categoría.
type InventoryStatsResponse struct {
	TotalItems        int64                    `json:"totalItems"`
	TotalBuyingValue  decimal.Decimal          `json:"totalBuyingValue"`
	TotalSellingValue decimal.Decimal          `json:"totalSellingValue"`
	CategoryBreakdown []CategoryBreakdownEntry `json:"categoryBreakdown"`
}

// CategoryBreakdownEntry desglose de inventario por categoría.
type CategoryBreakdownEntry struct {
	Category      string `json:"category"`
	ItemCount     int64  `json:"itemCount"`
	TotalQuantity int64  `json:"totalQuantity"`
}
