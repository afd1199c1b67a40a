package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem representa una pieza del inventario de la tienda.
// Quantity nunca baja de cero: el único camino legítimo de decremento es el
// coordinador de ventas (transacción Sale + decremento atómicos).
type InventoryItem struct {
	ID           string
	Name         string
	Category     string
	Description  string
	BuyingPrice  decimal.Decimal // costo de adquisición, >= 0
	SellingPrice decimal.Decimal // precio de lista, >= 0
	Quantity     int             // entero >= 0
	ImageURL     string          // opcional
	ModifiedBy   string          // último usuario que modificó la pieza
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
