package repository

import (
	"time"

	"github.com/antiquehaven/antique-haven-api/internal/domain/entity"
)

// SaleWithRefs venta enriquecida con los datos de la pieza y el vendedor
// que los listados devuelven al cliente.
type SaleWithRefs struct {
	Sale              entity.Sale
	ItemName          string
	ItemCategory      string
	AttendantUsername string
	AttendantFullName string
}

// SaleRepository puerto de persistencia para ventas. Las ventas son
// inmutables: solo creación y lectura, sin update ni delete.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByID(id string) (*entity.Sale, error)
	List() ([]SaleWithRefs, error)
	ListByDateRange(start, end time.Time) ([]SaleWithRefs, error)
}
