package sales

import (
	"context"

	"github.com/antiquehaven/antique-haven-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el coordinador de
// ventas: insert de la venta y decremento del inventario, juntos o ninguno.
//
// Si la BD detecta un conflicto de serialización, Run devuelve
// domain.ErrTransactionConflict y el coordinador reintenta.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		itemRepo repository.InventoryRepository,
	) error) error
}
