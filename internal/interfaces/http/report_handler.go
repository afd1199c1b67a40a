package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/antiquehaven/antique-haven-api/internal/application/dto"
	"github.com/antiquehaven/antique-haven-api/internal/application/reports"
	"github.com/antiquehaven/antique-haven-api/internal/application/sales"
)

// ReportHandler maneja los reportes agregados del negocio.
type ReportHandler struct {
	uc *reports.ReportUseCase
}

// NewReportHandler construye el handler de reportes.
func NewReportHandler(uc *reports.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// SalesSummary godoc
// @Summary      Resumen de ventas del período
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        startDate  query  string  true  "YYYY-MM-DD o RFC3339"
// @Param        endDate    query  string  true  "YYYY-MM-DD o RFC3339"
// @Success      200  {object}  dto.SalesSummaryDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/sales-summary [get]
func (h *ReportHandler) SalesSummary(c *fiber.Ctx) error {
	start, end, err := sales.ParsePeriod(c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "rango de fechas inválido"})
	}
	out, err := h.uc.SalesSummary(c.Context(), start, end)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// SalesSummaryPDF godoc
// @Summary      Resumen de ventas en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        startDate  query  string  true  "YYYY-MM-DD o RFC3339"
// @Param        endDate    query  string  true  "YYYY-MM-DD o RFC3339"
// @Success      200  {file}    file
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/sales-summary/pdf [get]
func (h *ReportHandler) SalesSummaryPDF(c *fiber.Ctx) error {
	start, end, err := sales.ParsePeriod(c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "rango de fechas inválido"})
	}
	raw, err := h.uc.SalesSummaryPDF(c.Context(), start, end)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="resumen-ventas.pdf"`)
	return c.Send(raw)
}

// ProfitAnalysis godoc
// @Summary      Análisis de utilidad del período
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        startDate  query  string  true  "YYYY-MM-DD o RFC3339"
// @Param        endDate    query  string  true  "YYYY-MM-DD o RFC3339"
// @Success      200  {object}  dto.ProfitAnalysisDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/profit-analysis [get]
func (h *ReportHandler) ProfitAnalysis(c *fiber.Ctx) error {
	start, end, err := sales.ParsePeriod(c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "rango de fechas inválido"})
	}
	out, err := h.uc.ProfitAnalysis(c.Context(), start, end)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// InventoryValue godoc
// @Summary      Valor actual del inventario
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        threshold  query  int  false  "Umbral de stock bajo (default 5)"
// @Success      200  {object}  dto.InventoryValueDTO
// @Router       /api/reports/inventory-value [get]
func (h *ReportHandler) InventoryValue(c *fiber.Ctx) error {
	out, err := h.uc.InventoryValue(c.Context(), c.QueryInt("threshold"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ExpenseSummary godoc
// @Summary      Resumen de gastos del período
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        startDate  query  string  true  "YYYY-MM-DD o RFC3339"
// @Param        endDate    query  string  true  "YYYY-MM-DD o RFC3339"
// @Success      200  {object}  dto.ExpenseSummaryDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/expense-summary [get]
func (h *ReportHandler) ExpenseSummary(c *fiber.Ctx) error {
	start, end, err := sales.ParsePeriod(c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "rango de fechas inválido"})
	}
	out, err := h.uc.ExpenseSummary(c.Context(), start, end)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
