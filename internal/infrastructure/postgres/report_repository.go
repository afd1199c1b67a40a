package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/antiquehaven/antique-haven-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas agregadas de solo lectura para reportería. El profit
// viene precalculado en cada venta, así que los agregados son sumas simples.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportería.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// GetSalesTotals totales y promedios de ventas del período.
func (r *ReportRepo) GetSalesTotals(ctx context.Context, start, end time.Time) (*repository.SalesTotals, error) {
	const query = `
	SELECT
	    COALESCE(SUM(selling_price * quantity), 0) AS total_revenue,
	    COALESCE(SUM(profit), 0)                   AS total_profit,
	    COALESCE(SUM(quantity), 0)                 AS total_quantity,
	    COUNT(*)                                   AS sale_count,
	    COALESCE(AVG(profit), 0)                   AS avg_profit,
	    COALESCE(AVG(selling_price * quantity), 0) AS avg_sale_value
	FROM sales
	WHERE sale_date BETWEEN $1 AND $2`

	var t repository.SalesTotals
	err := r.pool.QueryRow(ctx, query, start, end).Scan(
		&t.TotalRevenue, &t.TotalProfit, &t.TotalQuantity,
		&t.SaleCount, &t.AvgProfit, &t.AvgSaleValue,
	)
	if err != nil {
		return nil, fmt.Errorf("reports.GetSalesTotals: %w", err)
	}
	return &t, nil
}

// GetTopProducts piezas más vendidas por unidades en el período.
func (r *ReportRepo) GetTopProducts(ctx context.Context, start, end time.Time, limit int) ([]repository.TopProductResult, error) {
	const query = `
	SELECT
	    s.item_id,
	    COALESCE(i.name, '')       AS name,
	    SUM(s.quantity)            AS quantity_sold,
	    COALESCE(SUM(s.profit), 0) AS total_profit
	FROM sales s
	LEFT JOIN inventory_items i ON i.id = s.item_id
	WHERE s.sale_date BETWEEN $1 AND $2
	GROUP BY s.item_id, i.name
	ORDER BY quantity_sold DESC
	LIMIT $3`

	rows, err := r.pool.Query(ctx, query, start, end, limit)
	if err != nil {
		return nil, fmt.Errorf("reports.GetTopProducts: %w", err)
	}
	defer rows.Close()

	var results []repository.TopProductResult
	for rows.Next() {
		var row repository.TopProductResult
		if err := rows.Scan(&row.ItemID, &row.Name, &row.QuantitySold, &row.TotalProfit); err != nil {
			return nil, fmt.Errorf("reports.GetTopProducts scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetAttendantPerformance ventas y utilidad acumulada por vendedor.
func (r *ReportRepo) GetAttendantPerformance(ctx context.Context, start, end time.Time) ([]repository.AttendantPerformanceResult, error) {
	const query = `
	SELECT
	    s.attendant_id,
	    COALESCE(u.username, '')   AS username,
	    COALESCE(u.full_name, '')  AS full_name,
	    COUNT(*)                   AS sale_count,
	    SUM(s.quantity)            AS units_sold,
	    COALESCE(SUM(s.profit), 0) AS total_profit
	FROM sales s
	LEFT JOIN users u ON u.id = s.attendant_id
	WHERE s.sale_date BETWEEN $1 AND $2
	GROUP BY s.attendant_id, u.username, u.full_name
	ORDER BY total_profit DESC`

	rows, err := r.pool.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("reports.GetAttendantPerformance: %w", err)
	}
	defer rows.Close()

	var results []repository.AttendantPerformanceResult
	for rows.Next() {
		var row repository.AttendantPerformanceResult
		if err := rows.Scan(
			&row.AttendantID, &row.Username, &row.FullName,
			&row.SaleCount, &row.UnitsSold, &row.TotalProfit,
		); err != nil {
			return nil, fmt.Errorf("reports.GetAttendantPerformance scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetDailyProfitTrend utilidad e ingresos agrupados por día.
func (r *ReportRepo) GetDailyProfitTrend(ctx context.Context, start, end time.Time) ([]repository.DailyProfitResult, error) {
	const query = `
	SELECT
	    date_trunc('day', sale_date)               AS day,
	    COALESCE(SUM(profit), 0)                   AS profit,
	    COALESCE(SUM(selling_price * quantity), 0) AS revenue
	FROM sales
	WHERE sale_date BETWEEN $1 AND $2
	GROUP BY day
	ORDER BY day`

	rows, err := r.pool.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("reports.GetDailyProfitTrend: %w", err)
	}
	defer rows.Close()

	var results []repository.DailyProfitResult
	for rows.Next() {
		var row repository.DailyProfitResult
		if err := rows.Scan(&row.Day, &row.Profit, &row.Revenue); err != nil {
			return nil, fmt.Errorf("reports.GetDailyProfitTrend scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetCategoryProfits utilidad por categoría de pieza. Las ventas de piezas
// borradas se consolidan en 'Sin categoría'.
func (r *ReportRepo) GetCategoryProfits(ctx context.Context, start, end time.Time) ([]repository.CategoryProfitResult, error) {
	const query = `
	SELECT
	    COALESCE(i.category, 'Sin categoría')        AS category,
	    COALESCE(SUM(s.profit), 0)                   AS total_profit,
	    COALESCE(SUM(s.selling_price * s.quantity), 0) AS total_revenue
	FROM sales s
	LEFT JOIN inventory_items i ON i.id = s.item_id
	WHERE s.sale_date BETWEEN $1 AND $2
	GROUP BY i.category
	ORDER BY total_profit DESC`

	rows, err := r.pool.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("reports.GetCategoryProfits: %w", err)
	}
	defer rows.Close()

	var results []repository.CategoryProfitResult
	for rows.Next() {
		var row repository.CategoryProfitResult
		if err := rows.Scan(&row.Category, &row.TotalProfit, &row.TotalRevenue); err != nil {
			return nil, fmt.Errorf("reports.GetCategoryProfits scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetInventoryTotals valor total del inventario a costo y a precio de lista.
func (r *ReportRepo) GetInventoryTotals(ctx context.Context) (*repository.InventoryTotals, error) {
	const query = `
	SELECT
	    COUNT(*)                                    AS item_count,
	    COALESCE(SUM(buying_price * quantity), 0)   AS cost_value,
	    COALESCE(SUM(selling_price * quantity), 0)  AS retail_value
	FROM inventory_items`

	var t repository.InventoryTotals
	if err := r.pool.QueryRow(ctx, query).Scan(&t.ItemCount, &t.CostValue, &t.RetailValue); err != nil {
		return nil, fmt.Errorf("reports.GetInventoryTotals: %w", err)
	}
	return &t, nil
}

// GetCategoryValues valor del inventario agrupado por categoría.
func (r *ReportRepo) GetCategoryValues(ctx context.Context) ([]repository.CategoryValueResult, error) {
	const query = `
	SELECT
	    category,
	    COUNT(*)                                   AS item_count,
	    COALESCE(SUM(quantity), 0)                 AS total_quantity,
	    COALESCE(SUM(buying_price * quantity), 0)  AS cost_value,
	    COALESCE(SUM(selling_price * quantity), 0) AS retail_value
	FROM inventory_items
	GROUP BY category
	ORDER BY retail_value DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("reports.GetCategoryValues: %w", err)
	}
	defer rows.Close()

	var results []repository.CategoryValueResult
	for rows.Next() {
		var row repository.CategoryValueResult
		if err := rows.Scan(
			&row.Category, &row.ItemCount, &row.TotalQuantity,
			&row.CostValue, &row.RetailValue,
		); err != nil {
			return nil, fmt.Errorf("reports.GetCategoryValues scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetExpenseTotals suma, promedio y conteo de gastos del período.
func (r *ReportRepo) GetExpenseTotals(ctx context.Context, start, end time.Time) (*repository.ExpenseTotals, error) {
	const query = `
	SELECT
	    COALESCE(SUM(amount), 0) AS total_amount,
	    COALESCE(AVG(amount), 0) AS avg_amount,
	    COUNT(*)                 AS expense_count
	FROM expenses
	WHERE expense_date BETWEEN $1 AND $2`

	var t repository.ExpenseTotals
	if err := r.pool.QueryRow(ctx, query, start, end).Scan(&t.TotalAmount, &t.AvgAmount, &t.ExpenseCount); err != nil {
		return nil, fmt.Errorf("reports.GetExpenseTotals: %w", err)
	}
	return &t, nil
}

// GetExpenseCategoryBreakdown gasto agrupado por categoría.
func (r *ReportRepo) GetExpenseCategoryBreakdown(ctx context.Context, start, end time.Time) ([]repository.CategoryExpenseResult, error) {
	const query = `
	SELECT
	    category,
	    COALESCE(SUM(amount), 0) AS total_amount,
	    COUNT(*)                 AS expense_count
	FROM expenses
	WHERE expense_date BETWEEN $1 AND $2
	GROUP BY category
	ORDER BY total_amount DESC`

	rows, err := r.pool.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("reports.GetExpenseCategoryBreakdown: %w", err)
	}
	defer rows.Close()

	var results []repository.CategoryExpenseResult
	for rows.Next() {
		var row repository.CategoryExpenseResult
		if err := rows.Scan(&row.Category, &row.TotalAmount, &row.ExpenseCount); err != nil {
			return nil, fmt.Errorf("reports.GetExpenseCategoryBreakdown scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetDailyExpenseTrend gasto agrupado por día.
func (r *ReportRepo) GetDailyExpenseTrend(ctx context.Context, start, end time.Time) ([]repository.DailyExpenseResult, error) {
	const query = `
	SELECT
	    date_trunc('day', expense_date) AS day,
	    COALESCE(SUM(amount), 0)        AS total_amount
	FROM expenses
	WHERE expense_date BETWEEN $1 AND $2
	GROUP BY day
	ORDER BY day`

	rows, err := r.pool.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("reports.GetDailyExpenseTrend: %w", err)
	}
	defer rows.Close()

	var results []repository.DailyExpenseResult
	for rows.Next() {
		var row repository.DailyExpenseResult
		if err := rows.Scan(&row.Day, &row.TotalAmount); err != nil {
			return nil, fmt.Errorf("reports.GetDailyExpenseTrend scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetUserStats actividad acumulada de un usuario: ventas atendidas y gastos
// registrados, sin filtro de período.
func (r *ReportRepo) GetUserStats(ctx context.Context, userID string) (*repository.UserStatsResult, error) {
	const query = `
	SELECT
	    (SELECT COUNT(*)                   FROM sales    WHERE attendant_id = $1) AS sale_count,
	    (SELECT COALESCE(SUM(quantity), 0) FROM sales    WHERE attendant_id = $1) AS items_sold,
	    (SELECT COALESCE(SUM(profit), 0)   FROM sales    WHERE attendant_id = $1) AS total_profit,
	    (SELECT COUNT(*)                   FROM expenses WHERE added_by = $1)     AS expense_count,
	    (SELECT COALESCE(SUM(amount), 0)   FROM expenses WHERE added_by = $1)     AS total_expenses`

	var s repository.UserStatsResult
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&s.SaleCount, &s.ItemsSold, &s.TotalProfit, &s.ExpenseCount, &s.TotalExpenses,
	)
	if err != nil {
		return nil, fmt.Errorf("reports.GetUserStats: %w", err)
	}
	return &s, nil
}
