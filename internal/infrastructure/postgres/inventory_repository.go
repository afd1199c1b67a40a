package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/antiquehaven/antique-haven-api/internal/domain"
	"github.com/antiquehaven/antique-haven-api/internal/domain/entity"
	"github.com/antiquehaven/antique-haven-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

const itemColumns = `id, name, category, description, buying_price, selling_price, quantity, image_url, modified_by, created_at, updated_at`

// InventoryRepo implementación de InventoryRepository sobre PostgreSQL
// (usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador de inventario. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Create persiste una nueva pieza.
func (r *InventoryRepo) Create(item *entity.InventoryItem) error {
	query := `
		INSERT INTO inventory_items (id, name, category, description, buying_price, selling_price, quantity, image_url, modified_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Category, item.Description,
		item.BuyingPrice, item.SellingPrice, item.Quantity,
		item.ImageURL, item.ModifiedBy, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert inventory item: %w", err)
	}
	return nil
}

// GetByID obtiene una pieza por ID. Devuelve nil si no existe.
func (r *InventoryRepo) GetByID(id string) (*entity.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE id = $1`
	return scanItem(r.q.QueryRow(context.Background(), query, id), "get inventory item")
}

// GetForUpdate obtiene la pieza y bloquea la fila (SELECT FOR UPDATE).
// Solo tiene sentido dentro de una transacción del coordinador de ventas.
func (r *InventoryRepo) GetForUpdate(id string) (*entity.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE id = $1 FOR UPDATE`
	return scanItem(r.q.QueryRow(context.Background(), query, id), "get inventory item for update")
}

// List devuelve todas las piezas ordenadas por nombre.
func (r *InventoryRepo) List() ([]*entity.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items ORDER BY name`
	return r.list(query)
}

// ListLowStock piezas con cantidad <= threshold, las más escasas primero.
func (r *InventoryRepo) ListLowStock(threshold int) ([]*entity.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE quantity <= $1 ORDER BY quantity, name`
	return r.list(query, threshold)
}

// Update reemplaza los campos mutables de la pieza.
func (r *InventoryRepo) Update(item *entity.InventoryItem) error {
	query := `
		UPDATE inventory_items
		SET name = $2, category = $3, description = $4, buying_price = $5,
		    selling_price = $6, quantity = $7, image_url = $8, modified_by = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Category, item.Description,
		item.BuyingPrice, item.SellingPrice, item.Quantity,
		item.ImageURL, item.ModifiedBy, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update inventory item: %w", err)
	}
	return nil
}

// DecrementQuantity descuenta stock. El WHERE quantity >= $2 es la última
// línea de defensa contra cantidades negativas; con el lock de GetForUpdate
// nunca debería fallar.
func (r *InventoryRepo) DecrementQuantity(id string, by int) error {
	query := `
		UPDATE inventory_items
		SET quantity = quantity - $2, updated_at = now()
		WHERE id = $1 AND quantity >= $2`
	tag, err := r.q.Exec(context.Background(), query, id, by)
	if err != nil {
		return fmt.Errorf("decrement inventory quantity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInsufficientStock
	}
	return nil
}

// Delete elimina una pieza. Las ventas históricas conservan su item_id.
func (r *InventoryRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM inventory_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete inventory item: %w", err)
	}
	return nil
}

func (r *InventoryRepo) list(query string, args ...any) ([]*entity.InventoryItem, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list inventory items: %w", err)
	}
	defer rows.Close()

	var list []*entity.InventoryItem
	for rows.Next() {
		var it entity.InventoryItem
		if err := rows.Scan(
			&it.ID, &it.Name, &it.Category, &it.Description,
			&it.BuyingPrice, &it.SellingPrice, &it.Quantity,
			&it.ImageURL, &it.ModifiedBy, &it.CreatedAt, &it.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan inventory item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

func scanItem(row pgx.Row, op string) (*entity.InventoryItem, error) {
	var it entity.InventoryItem
	err := row.Scan(
		&it.ID, &it.Name, &it.Category, &it.Description,
		&it.BuyingPrice, &it.SellingPrice, &it.Quantity,
		&it.ImageURL, &it.ModifiedBy, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &it, nil
}
