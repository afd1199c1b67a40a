package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa una venta registrada. Inmutable una vez creada: no existe
// operación de update; solo creación (vía coordinador transaccional) y lectura.
// Profit = (SellingPrice - item.BuyingPrice) × Quantity, calculado al momento
// de la venta; borrar o editar la pieza después no lo recalcula.
type Sale struct {
	ID           string
	ItemID       string
	Quantity     int             // entero > 0
	SellingPrice decimal.Decimal // precio unitario al momento de la venta
	Profit       decimal.Decimal // puede ser negativo (venta bajo costo permitida)
	AttendantID  string
	SaleDate     time.Time // timestamp asignado por el servidor
}
