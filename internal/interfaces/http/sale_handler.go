package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/antiquehaven/antique-haven-api/internal/application/dto"
	"github.com/antiquehaven/antique-haven-api/internal/application/sales"
	"github.com/antiquehaven/antique-haven-api/internal/domain"
)

// SaleHandler maneja el registro y la consulta de ventas.
type SaleHandler struct {
	createUC *sales.CreateSaleUseCase
	queryUC  *sales.QueryUseCase
}

// NewSaleHandler construye el handler de ventas.
func NewSaleHandler(createUC *sales.CreateSaleUseCase, queryUC *sales.QueryUseCase) *SaleHandler {
	return &SaleHandler{createUC: createUC, queryUC: queryUC}
}

// Create godoc
// @Summary      Registrar venta
// @Description  Venta y decremento de stock son atómicos. lowMargin y
//               belowCost son señales para la UI, nunca motivo de rechazo.
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "itemId, quantity, sellingPrice"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	result, err := h.createUC.CreateSale(c.Context(), sales.CreateSaleInput{
		ItemID:       in.ItemID,
		Quantity:     in.Quantity,
		SellingPrice: in.SellingPrice,
		AttendantID:  GetUserID(c),
	})
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos de venta inválidos"})
		}
		if err == domain.ErrInsufficientStock {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente para la venta"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "pieza no encontrada"})
		}
		if err == domain.ErrTransactionConflict {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "TRANSIENT", Message: "conflicto de concurrencia; reintente"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SaleResponse{
		ID:           result.Sale.ID,
		ItemID:       result.Sale.ItemID,
		ItemName:     result.ItemName,
		Quantity:     result.Sale.Quantity,
		SellingPrice: result.Sale.SellingPrice,
		Profit:       result.Sale.Profit,
		AttendantID:  result.Sale.AttendantID,
		SaleDate:     result.Sale.SaleDate,
		LowMargin:    result.LowMargin,
		BelowCost:    result.BelowCost,
	})
}

// List godoc
// @Summary      Listar ventas
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.SaleResponse
// @Router       /api/sales [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	out, err := h.queryUC.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListByDateRange godoc
// @Summary      Ventas por rango de fechas
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        startDate  query  string  true  "YYYY-MM-DD o RFC3339"
// @Param        endDate    query  string  true  "YYYY-MM-DD o RFC3339"
// @Success      200  {array}   dto.SaleResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/sales/date-range [get]
func (h *SaleHandler) ListByDateRange(c *fiber.Ctx) error {
	out, err := h.queryUC.ListByDateRange(c.Context(), c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "rango de fechas inválido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Stats godoc
// @Summary      Estadísticas de ventas
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SaleStatsResponse
// @Router       /api/sales/stats [get]
func (h *SaleHandler) Stats(c *fiber.Ctx) error {
	out, err := h.queryUC.Stats(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
