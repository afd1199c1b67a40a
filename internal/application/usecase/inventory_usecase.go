package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/antiquehaven/antique-haven-api/internal/application/dto"
	"github.com/antiquehaven/antique-haven-api/internal/domain"
	"github.com/antiquehaven/antique-haven-api/internal/domain/entity"
	"github.com/antiquehaven/antique-haven-api/internal/domain/repository"
)

// DefaultLowStockThreshold umbral de alerta de stock bajo cuando el query
// param no lo especifica.
const DefaultLowStockThreshold = 5

// InventoryUseCase CRUD de piezas de inventario más consultas de stock bajo
// y estadísticas. El decremento por venta NO pasa por acá: eso es exclusivo
// del coordinador de ventas.
type InventoryUseCase struct {
	itemRepo   repository.InventoryRepository
	reportRepo repository.ReportRepository
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(itemRepo repository.InventoryRepository, reportRepo repository.ReportRepository) *InventoryUseCase {
	return &InventoryUseCase{itemRepo: itemRepo, reportRepo: reportRepo}
}

// Create da de alta una pieza.
func (uc *InventoryUseCase) Create(in dto.CreateInventoryItemRequest, actorID string) (*dto.InventoryItemResponse, error) {
	if err := validateItemFields(in.Name, in.Category, in.BuyingPrice, in.SellingPrice, in.Quantity); err != nil {
		return nil, err
	}
	now := time.Now()
	item := &entity.InventoryItem{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Category:     in.Category,
		Description:  in.Description,
		BuyingPrice:  in.BuyingPrice,
		SellingPrice: in.SellingPrice,
		Quantity:     in.Quantity,
		ImageURL:     in.ImageURL,
		ModifiedBy:   actorID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.itemRepo.Create(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// List devuelve todas las piezas.
func (uc *InventoryUseCase) List() ([]dto.InventoryItemResponse, error) {
	items, err := uc.itemRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.InventoryItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, *toItemResponse(it))
	}
	return out, nil
}

// GetByID devuelve una pieza o nil si no existe.
func (uc *InventoryUseCase) GetByID(id string) (*dto.InventoryItemResponse, error) {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// Update aplica una modificación parcial y registra quién la hizo.
// Quantity acá es corrección administrativa, no venta.
func (uc *InventoryUseCase) Update(id string, in dto.UpdateInventoryItemRequest, actorID string) (*dto.InventoryItemResponse, error) {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}

	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.Category != nil {
		item.Category = *in.Category
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	if in.BuyingPrice != nil {
		item.BuyingPrice = *in.BuyingPrice
	}
	if in.SellingPrice != nil {
		item.SellingPrice = *in.SellingPrice
	}
	if in.Quantity != nil {
		item.Quantity = *in.Quantity
	}
	if in.ImageURL != nil {
		item.ImageURL = *in.ImageURL
	}
	if err := validateItemFields(item.Name, item.Category, item.BuyingPrice, item.SellingPrice, item.Quantity); err != nil {
		return nil, err
	}
	item.ModifiedBy = actorID
	item.UpdatedAt = time.Now()

	if err := uc.itemRepo.Update(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// Delete elimina una pieza. El histórico de ventas conserva la referencia.
func (uc *InventoryUseCase) Delete(id string) error {
	return uc.itemRepo.Delete(id)
}

// ListLowStock piezas con cantidad <= threshold. threshold <= 0 usa el default.
func (uc *InventoryUseCase) ListLowStock(threshold int) ([]dto.InventoryItemResponse, error) {
	if threshold <= 0 {
		threshold = DefaultLowStockThreshold
	}
	items, err := uc.itemRepo.ListLowStock(threshold)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InventoryItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, *toItemResponse(it))
	}
	return out, nil
}

// Stats totales del inventario a costo y precio de lista, con desglose
// por categoría.
func (uc *InventoryUseCase) Stats(ctx context.Context) (*dto.InventoryStatsResponse, error) {
	totals, err := uc.reportRepo.GetInventoryTotals(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := uc.reportRepo.GetCategoryValues(ctx)
	if err != nil {
		return nil, err
	}

	breakdown := make([]dto.CategoryBreakdownEntry, 0, len(categories))
	for _, c := range categories {
		breakdown = append(breakdown, dto.CategoryBreakdownEntry{
			Category:      c.Category,
			ItemCount:     c.ItemCount,
			TotalQuantity: c.TotalQuantity,
		})
	}
	return &dto.InventoryStatsResponse{
		TotalItems:        totals.ItemCount,
		TotalBuyingValue:  totals.CostValue,
		TotalSellingValue: totals.RetailValue,
		CategoryBreakdown: breakdown,
	}, nil
}

func validateItemFields(name, category string, buying, selling decimal.Decimal, quantity int) error {
	if len(name) < 2 || category == "" {
		return domain.ErrInvalidInput
	}
	if buying.IsNegative() || selling.IsNegative() {
		return domain.ErrInvalidInput
	}
	if quantity < 0 {
		return domain.ErrInvalidInput
	}
	return nil
}

func toItemResponse(it *entity.InventoryItem) *dto.InventoryItemResponse {
	if it == nil {
		return nil
	}
	return &dto.InventoryItemResponse{
		ID:           it.ID,
		Name:         it.Name,
		Category:     it.Category,
		Description:  it.Description,
		BuyingPrice:  it.BuyingPrice,
		SellingPrice: it.SellingPrice,
		Quantity:     it.Quantity,
		ImageURL:     it.ImageURL,
		ModifiedBy:   it.ModifiedBy,
		CreatedAt:    it.CreatedAt,
		UpdatedAt:    it.UpdatedAt,
	}
}
