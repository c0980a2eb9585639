package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/gastrosmart/gastrosmart-api/internal/domain/entity"
	"github.com/gastrosmart/gastrosmart-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el dashboard.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// GetDailySales agrega las ventas COMPLETED de la sucursal para el día dado.
// Usa COALESCE para devolver ceros si no hay ventas.
func (r *AnalyticsRepo) GetDailySales(locationID string, day time.Time) (*repository.DailySalesResult, error) {
	const query = `
	SELECT
	    COALESCE(SUM(s.total), 0)                                   AS total_sales,
	    COUNT(DISTINCT s.id)                                        AS sale_count,
	    COALESCE((
	        SELECT SUM(si.quantity)
	        FROM sale_items si
	        JOIN sales s2 ON s2.id = si.sale_id
	        WHERE s2.location_id = $1 AND s2.status = $2
	          AND s2.created_at >= $3 AND s2.created_at < $4
	    ), 0)                                                       AS dishes_sold
	FROM sales s
	WHERE s.location_id = $1 AND s.status = $2
	  AND s.created_at >= $3 AND s.created_at < $4`

	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	var result repository.DailySalesResult
	err := r.q.QueryRow(context.Background(), query,
		locationID, entity.SaleStatusCompleted, dayStart, dayEnd,
	).Scan(&result.TotalSales, &result.SaleCount, &result.DishesSold)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetDailySales: %w", err)
	}
	return &result, nil
}

// GetTopRecipes devuelve los platos más vendidos en el rango dado, por unidades.
func (r *AnalyticsRepo) GetTopRecipes(locationID string, from, to time.Time, limit int) ([]*repository.TopRecipeResult, error) {
	const query = `
	SELECT
	    si.recipe_id,
	    COALESCE(r.name, si.item_name)  AS recipe_name,
	    SUM(si.quantity)                AS units_sold,
	    SUM(si.total)                   AS revenue
	FROM sale_items si
	JOIN sales s ON s.id = si.sale_id
	LEFT JOIN recipes r ON r.id = si.recipe_id
	WHERE s.location_id = $1 AND s.status = $2
	  AND s.created_at >= $3 AND s.created_at <= $4
	  AND si.recipe_id IS NOT NULL
	GROUP BY si.recipe_id, COALESCE(r.name, si.item_name)
	ORDER BY units_sold DESC
	LIMIT $5`

	rows, err := r.q.Query(context.Background(), query,
		locationID, entity.SaleStatusCompleted, from, to, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetTopRecipes: %w", err)
	}
	defer rows.Close()

	var results []*repository.TopRecipeResult
	for rows.Next() {
		var row repository.TopRecipeResult
		if err := rows.Scan(&row.RecipeID, &row.RecipeName, &row.UnitsSold, &row.Revenue); err != nil {
			return nil, fmt.Errorf("analytics.GetTopRecipes scan: %w", err)
		}
		results = append(results, &row)
	}
	return results, rows.Err()
}

// CountCriticalStock cuenta los insumos con existencia <= stock mínimo.
func (r *AnalyticsRepo) CountCriticalStock(locationID string) (int, error) {
	const query = `
	SELECT COUNT(*)
	FROM inventory_items
	WHERE location_id = $1 AND quantity <= min_stock`

	var count int
	if err := r.q.QueryRow(context.Background(), query, locationID).Scan(&count); err != nil {
		return 0, fmt.Errorf("analytics.CountCriticalStock: %w", err)
	}
	return count, nil
}
