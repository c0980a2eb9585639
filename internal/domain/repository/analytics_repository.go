package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailySalesResult resultado crudo de la consulta de ventas del día.
// Lo produce la DB; el use case lo convierte en DTO.
type DailySalesResult struct {
	TotalSales decimal.Decimal // suma de totales de ventas COMPLETED
	SaleCount  int
	DishesSold int // suma de cantidades de items vendidos
}

// TopRecipeResult resultado crudo del ranking de platos más vendidos.
type TopRecipeResult struct {
	RecipeID   string
	RecipeName string
	UnitsSold  int
	Revenue    decimal.Decimal
}

// AnalyticsRepository define las consultas de lectura para el dashboard.
// Las implementaciones son read-only (no modifican datos).
type AnalyticsRepository interface {
	// GetDailySales agrega las ventas de la sucursal para el día dado.
	GetDailySales(locationID string, day time.Time) (*DailySalesResult, error)
	// GetTopRecipes devuelve los platos más vendidos en el rango dado.
	GetTopRecipes(locationID string, from, to time.Time, limit int) ([]*TopRecipeResult, error)
	// CountCriticalStock cuenta los insumos con existencia <= stock mínimo.
	CountCriticalStock(locationID string) (int, error)
}
