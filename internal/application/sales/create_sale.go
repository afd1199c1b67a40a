// Package sales contiene el coordinador transaccional de ventas: la única
// mutación multi-entidad del sistema (insert Sale + decremento de inventario).
package sales

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/antiquehaven/antique-haven-api/internal/domain"
	"github.com/antiquehaven/antique-haven-api/internal/domain/entity"
	"github.com/antiquehaven/antique-haven-api/internal/domain/repository"
)

// Config reglas de negocio del coordinador.
type Config struct {
	// LowMarginPct umbral de margen (%) bajo el cual la venta se marca con
	// advertencia. No bloquea la venta.
	LowMarginPct float64
	// MaxRetries reintentos ante domain.ErrTransactionConflict antes de
	// devolver el error transitorio al caller.
	MaxRetries int
}

// CreateSaleInput entrada para registrar una venta.
type CreateSaleInput struct {
	ItemID       string
	Quantity     int
	SellingPrice decimal.Decimal
	AttendantID  string
}

// CreateSaleResult venta persistida más las señales de margen para el caller.
// BelowCost y LowMargin son advertencias, nunca motivos de rechazo: la UI
// decide si pide confirmación.
type CreateSaleResult struct {
	Sale      entity.Sale
	ItemName  string
	BelowCost bool
	LowMargin bool
}

// CreateSaleUseCase ejecuta la venta con semántica todo-o-nada:
//
//  1. Bloquea la fila de la pieza (SELECT FOR UPDATE) dentro de la tx.
//  2. Verifica existencia (ErrNotFound) y stock suficiente
//     (ErrInsufficientStock) contra la cantidad ya bloqueada.
//  3. Calcula profit = (sellingPrice - buyingPrice) × quantity.
//  4. Inserta la venta y decrementa el inventario; Commit o Rollback.
//
// El bloqueo de fila serializa ventas concurrentes sobre la misma pieza: el
// chequeo y el decremento nunca se computan contra una cantidad obsoleta.
type CreateSaleUseCase struct {
	txRunner TxRunner
	cfg      Config
}

// NewCreateSaleUseCase construye el coordinador.
func NewCreateSaleUseCase(txRunner TxRunner, cfg Config) *CreateSaleUseCase {
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	return &CreateSaleUseCase{txRunner: txRunner, cfg: cfg}
}

// CreateSale valida la entrada y ejecuta la transacción, reintentando un
// número acotado de veces si la BD reporta conflicto de serialización.
func (uc *CreateSaleUseCase) CreateSale(ctx context.Context, input CreateSaleInput) (*CreateSaleResult, error) {
	if input.ItemID == "" || input.AttendantID == "" {
		return nil, domain.ErrInvalidInput
	}
	if input.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if !input.SellingPrice.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	var result *CreateSaleResult
	var err error
	for attempt := 0; attempt < uc.cfg.MaxRetries; attempt++ {
		result, err = uc.runOnce(ctx, input)
		if !errors.Is(err, domain.ErrTransactionConflict) {
			return result, err
		}
	}
	return nil, domain.ErrTransactionConflict
}

// runOnce ejecuta un intento completo de la transacción.
func (uc *CreateSaleUseCase) runOnce(ctx context.Context, input CreateSaleInput) (*CreateSaleResult, error) {
	var out CreateSaleResult

	err := uc.txRunner.Run(ctx, func(
		saleRepo repository.SaleRepository,
		itemRepo repository.InventoryRepository,
	) error {
		// Bloquea la fila de la pieza: serializa contra otras ventas y
		// contra updates directos de cantidad.
		item, err := itemRepo.GetForUpdate(input.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		if item.Quantity < input.Quantity {
			return domain.ErrInsufficientStock
		}

		qty := decimal.NewFromInt(int64(input.Quantity))
		profit := input.SellingPrice.Sub(item.BuyingPrice).Mul(qty)

		sale := entity.Sale{
			ID:           uuid.New().String(),
			ItemID:       item.ID,
			Quantity:     input.Quantity,
			SellingPrice: input.SellingPrice,
			Profit:       profit,
			AttendantID:  input.AttendantID,
			SaleDate:     time.Now(),
		}
		if err := saleRepo.Create(&sale); err != nil {
			return err
		}
		if err := itemRepo.DecrementQuantity(item.ID, input.Quantity); err != nil {
			return err
		}

		out.Sale = sale
		out.ItemName = item.Name
		out.BelowCost = profit.IsNegative()
		out.LowMargin = uc.isLowMargin(profit, input.SellingPrice.Mul(qty))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// isLowMargin evalúa si profit/revenue×100 cae bajo el umbral configurado.
// Revenue cero no ocurre (precio > 0 validado), pero se protege igual.
func (uc *CreateSaleUseCase) isLowMargin(profit, revenue decimal.Decimal) bool {
	if revenue.IsZero() {
		return profit.IsNegative()
	}
	marginPct := profit.Div(revenue).Mul(decimal.NewFromInt(100))
	return marginPct.LessThan(decimal.NewFromFloat(uc.cfg.LowMarginPct))
}
