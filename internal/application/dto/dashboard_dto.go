package dto

import "github.com/shopspring/decimal"

// TodayStatsDTO métricas del día para el dashboard.
type TodayStatsDTO struct {
	TotalSales         decimal.Decimal `json:"total_sales"`
	SaleCount          int             `json:"count"`
	DishesSold         int             `json:"dishes_sold"`
	AverageTicket      decimal.Decimal `json:"average_ticket"`
	CriticalStockCount int             `json:"critical_stock_count"`
}

// TopRecipeDTO plato del ranking de más vendidos.
type TopRecipeDTO struct {
	RecipeID   string          `json:"recipe_id"`
	RecipeName string          `json:"recipe_name"`
	UnitsSold  int             `json:"units_sold"`
	Revenue    decimal.Decimal `json:"revenue"`
}
