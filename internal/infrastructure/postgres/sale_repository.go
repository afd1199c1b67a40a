package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/antiquehaven/antique-haven-api/internal/domain/entity"
	"github.com/antiquehaven/antique-haven-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository sobre PostgreSQL (usable con
// pool o tx). Las ventas son inmutables: solo INSERT y SELECT.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste una venta. Solo lo invoca el coordinador transaccional.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, item_id, quantity, selling_price, profit, attendant_id, sale_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.ItemID, sale.Quantity, sale.SellingPrice,
		sale.Profit, sale.AttendantID, sale.SaleDate,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// GetByID obtiene una venta por ID. Devuelve nil si no existe.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `
		SELECT id, item_id, quantity, selling_price, profit, attendant_id, sale_date
		FROM sales WHERE id = $1`
	var s entity.Sale
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.ItemID, &s.Quantity, &s.SellingPrice, &s.Profit, &s.AttendantID, &s.SaleDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale by id: %w", err)
	}
	return &s, nil
}

// List devuelve todas las ventas con pieza y vendedor, las más recientes
// primero. LEFT JOIN: la pieza pudo haberse borrado después de la venta.
func (r *SaleRepo) List() ([]repository.SaleWithRefs, error) {
	query := saleWithRefsQuery + ` ORDER BY s.sale_date DESC`
	return r.listRefs(query)
}

// ListByDateRange ventas con sale_date dentro de [start, end].
func (r *SaleRepo) ListByDateRange(start, end time.Time) ([]repository.SaleWithRefs, error) {
	query := saleWithRefsQuery + ` WHERE s.sale_date BETWEEN $1 AND $2 ORDER BY s.sale_date DESC`
	return r.listRefs(query, start, end)
}

const saleWithRefsQuery = `
	SELECT s.id, s.item_id, s.quantity, s.selling_price, s.profit, s.attendant_id, s.sale_date,
	       COALESCE(i.name, ''), COALESCE(i.category, ''),
	       COALESCE(u.username, ''), COALESCE(u.full_name, '')
	FROM sales s
	LEFT JOIN inventory_items i ON i.id = s.item_id
	LEFT JOIN users u ON u.id = s.attendant_id`

func (r *SaleRepo) listRefs(query string, args ...any) ([]repository.SaleWithRefs, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var list []repository.SaleWithRefs
	for rows.Next() {
		var s repository.SaleWithRefs
		if err := rows.Scan(
			&s.Sale.ID, &s.Sale.ItemID, &s.Sale.Quantity, &s.Sale.SellingPrice,
			&s.Sale.Profit, &s.Sale.AttendantID, &s.Sale.SaleDate,
			&s.ItemName, &s.ItemCategory, &s.AttendantUsername, &s.AttendantFullName,
		); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}
