// Package pdf implementa el render del resumen de ventas como PDF
// descargable, pensado para imprimirse o enviarse al dueño.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Antique Haven  │  Período del reporte              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Ventas / Utilidad / Unidades / Promedios           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Piezas más vendidas                                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Rendimiento por vendedor                             │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/antiquehaven/antique-haven-api/internal/application/dto"
	"github.com/antiquehaven/antique-haven-api/internal/application/reports"
)

var (
	colorPrimary = &props.Color{Red: 92, Green: 64, Blue: 51}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ reports.SalesReportPDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa reports.SalesReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateSalesSummaryPDF genera el PDF del resumen de ventas y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateSalesSummaryPDF(_ context.Context, summary *dto.SalesSummaryDTO) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Resumen de Ventas", true).
		WithAuthor("Antique Haven", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(summary.Period))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(summary.Summary))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitleRow("PIEZAS MÁS VENDIDAS"))
	m.AddRows(topProductsHeaderRow())
	for _, r := range topProductRows(summary.TopProducts) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(sectionTitleRow("RENDIMIENTO POR VENDEDOR"))
	m.AddRows(performanceHeaderRow())
	for _, r := range performanceRows(summary.AttendantPerformance) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre de la tienda (izq) y período del reporte (der).
func headerRow(period dto.PeriodDTO) core.Row {
	rango := fmt.Sprintf("%s — %s",
		period.StartDate.Format("02/01/2006"),
		period.EndDate.Format("02/01/2006"),
	)
	return row.New(16).Add(
		col.New(7).Add(
			text.New("Antique Haven", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New("Resumen de ventas", props.Text{
				Size: 9, Top: 10, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("PERÍODO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(rango, props.Text{
				Size: 10, Align: align.Right, Top: 8,
			}),
		),
	)
}

// summaryRow: métricas globales del período en dos columnas.
func summaryRow(s dto.SalesSummaryTotalsDTO) core.Row {
	metric := func(label, value string, top float64) []core.Component {
		return []core.Component{
			text.New(label, props.Text{Style: fontstyle.Bold, Size: 8, Top: top, Color: colorGray}),
			text.New(value, props.Text{Size: 10, Top: top + 5}),
		}
	}
	left := append(
		metric("Ventas totales", "$"+s.TotalSales.StringFixed(2), 1),
		metric("Utilidad total", "$"+s.TotalProfit.StringFixed(2), 13)...,
	)
	right := append(
		metric("Unidades vendidas", fmt.Sprintf("%d", s.TotalQuantity), 1),
		metric("Utilidad promedio por venta", "$"+s.AverageProfit.StringFixed(2), 13)...,
	)
	return row.New(28).Add(col.New(6).Add(left...), col.New(6).Add(right...))
}

func sectionTitleRow(title string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2,
		}),
	))
}

func topProductsHeaderRow() core.Row {
	return row.New(7).Add(
		tableHeader("Pieza", 6, align.Left),
		tableHeader("Unidades", 3, align.Right),
		tableHeader("Utilidad", 3, align.Right),
	)
}

func topProductRows(products []dto.TopProductDTO) []core.Row {
	result := make([]core.Row, 0, len(products))
	for _, p := range products {
		result = append(result, row.New(6).Add(
			tableCell(p.Name, 6, align.Left),
			tableCell(fmt.Sprintf("%d", p.QuantitySold), 3, align.Right),
			tableCell("$"+p.TotalProfit.StringFixed(2), 3, align.Right),
		))
	}
	return result
}

func performanceHeaderRow() core.Row {
	return row.New(7).Add(
		tableHeader("Vendedor", 6, align.Left),
		tableHeader("Ventas", 3, align.Right),
		tableHeader("Utilidad", 3, align.Right),
	)
}

func performanceRows(performance []dto.AttendantPerformanceDTO) []core.Row {
	result := make([]core.Row, 0, len(performance))
	for _, p := range performance {
		result = append(result, row.New(6).Add(
			tableCell(p.Name, 6, align.Left),
			tableCell(fmt.Sprintf("%d", p.TotalSales), 3, align.Right),
			tableCell("$"+p.TotalProfit.StringFixed(2), 3, align.Right),
		))
	}
	return result
}

func tableHeader(label string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(label, props.Text{
		Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 1,
	}))
}

func tableCell(value string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(value, props.Text{
		Size: 8, Align: a, Top: 1,
	}))
}
