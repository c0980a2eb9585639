package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Recipe representa un plato del menú con su receta (lote completo).
// Cost es derivado (suma de costos de ingredientes) y Margin se recalcula
// cada vez que cambian los ingredientes o el precio.
type Recipe struct {
	ID          string
	LocationID  string
	Name        string
	Description string
	Category    string
	Price       decimal.Decimal
	Cost        decimal.Decimal // suma de costos de ingredientes (snapshot)
	Margin      decimal.Decimal // (price - cost) / price * 100
	Servings    int             // porciones que rinde un lote completo de la receta
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Ingredients []RecipeIngredient
}

// RecipeIngredient es una línea de la receta. Quantity es el consumo del insumo
// por UN LOTE COMPLETO de la receta (es decir, por Servings porciones).
type RecipeIngredient struct {
	ID              string
	RecipeID        string
	InventoryItemID string // opcional: vacío si el ingrediente no está ligado al inventario
	Name            string
	Quantity        decimal.Decimal
	Unit            string
	Cost            decimal.Decimal // costo snapshot al guardar la receta
}
