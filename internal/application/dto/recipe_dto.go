package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecipeIngredientInput línea de ingrediente al crear/actualizar una receta.
// Quantity es el consumo por UN lote completo (servings porciones).
type RecipeIngredientInput struct {
	InventoryItemID string          `json:"inventory_item_id,omitempty"`
	Name            string          `json:"name" validate:"required"`
	Quantity        decimal.Decimal `json:"quantity" validate:"required"`
	Unit            string          `json:"unit" validate:"required"`
	Cost            decimal.Decimal `json:"cost"`
}

// CreateRecipeRequest body para crear una receta.
type CreateRecipeRequest struct {
	LocationID  string                  `json:"location_id" validate:"required,uuid"`
	Name        string                  `json:"name" validate:"required,min=1,max=200"`
	Description string                  `json:"description,omitempty"`
	Category    string                  `json:"category,omitempty"`
	Price       decimal.Decimal         `json:"price" validate:"required"`
	Servings    int                     `json:"servings" validate:"required,gt=0"`
	Ingredients []RecipeIngredientInput `json:"ingredients"`
}

// UpdateRecipeRequest parche explícito por campo (nil = sin cambio).
// Sustituye el patrón "set attribute if present" por un struct enumerado.
type UpdateRecipeRequest struct {
	Name        *string                  `json:"name,omitempty"`
	Description *string                  `json:"description,omitempty"`
	Category    *string                  `json:"category,omitempty"`
	Price       *decimal.Decimal         `json:"price,omitempty"`
	Servings    *int                     `json:"servings,omitempty"`
	Active      *bool                    `json:"active,omitempty"`
	Ingredients *[]RecipeIngredientInput `json:"ingredients,omitempty"`
}

// RecipeIngredientResponse línea de ingrediente persistida.
type RecipeIngredientResponse struct {
	ID              string          `json:"id"`
	InventoryItemID string          `json:"inventory_item_id,omitempty"`
	Name            string          `json:"name"`
	Quantity        decimal.Decimal `json:"quantity"`
	Unit            string          `json:"unit"`
	Cost            decimal.Decimal `json:"cost"`
}

// RecipeResponse salida de una receta con costo y margen derivados.
type RecipeResponse struct {
	ID          string                     `json:"id"`
	LocationID  string                     `json:"location_id"`
	Name        string                     `json:"name"`
	Description string                     `json:"description,omitempty"`
	Category    string                     `json:"category,omitempty"`
	Price       decimal.Decimal            `json:"price"`
	Cost        decimal.Decimal            `json:"cost"`
	Margin      decimal.Decimal            `json:"margin"`
	Servings    int                        `json:"servings"`
	Active      bool                       `json:"active"`
	CreatedAt   time.Time                  `json:"created_at"`
	UpdatedAt   time.Time                  `json:"updated_at"`
	Ingredients []RecipeIngredientResponse `json:"ingredients"`
}
