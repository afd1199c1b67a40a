package reports

import (
	"context"

	"github.com/antiquehaven/antique-haven-api/internal/application/dto"
)

// Cache almacén clave/valor con TTL para respuestas de reportería.
// Get devuelve (nil, nil) en cache miss. Una implementación nil-safe puede
// degradar a no-op cuando el backend no está configurado.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// SalesReportPDFGenerator render del resumen de ventas como PDF descargable.
type SalesReportPDFGenerator interface {
	GenerateSalesSummaryPDF(ctx context.Context, summary *dto.SalesSummaryDTO) ([]byte, error)
}
