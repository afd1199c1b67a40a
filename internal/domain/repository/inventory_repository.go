package repository

import "github.com/antiquehaven/antique-haven-api/internal/domain/entity"

// InventoryRepository puerto de persistencia para piezas de inventario.
//
// GetForUpdate bloquea la fila (SELECT FOR UPDATE) y solo tiene sentido
// dentro de una transacción del coordinador de ventas; es la garantía de
// que chequeo de stock y decremento nunca ven una cantidad obsoleta.
type InventoryRepository interface {
	Create(item *entity.InventoryItem) error
	GetByID(id string) (*entity.InventoryItem, error)
	GetForUpdate(id string) (*entity.InventoryItem, error)
	List() ([]*entity.InventoryItem, error)
	ListLowStock(threshold int) ([]*entity.InventoryItem, error)
	Update(item *entity.InventoryItem) error
	DecrementQuantity(id string, by int) error
	Delete(id string) error
}
