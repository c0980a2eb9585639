package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSaleItemRequest línea de venta enviada por el cliente.
type CreateSaleItemRequest struct {
	RecipeID  string          `json:"recipe_id,omitempty"`
	ItemName  string          `json:"item_name" validate:"required"`
	Quantity  int             `json:"quantity" validate:"required,gt=0"`
	UnitPrice decimal.Decimal `json:"unit_price" validate:"required"`
	Total     decimal.Decimal `json:"total" validate:"required"`
}

// CreateSaleRequest body para POST /api/sales.
// El waiter_id NO se acepta del cliente: el motor siempre asigna el usuario autenticado.
type CreateSaleRequest struct {
	LocationID      string                  `json:"location_id" validate:"required,uuid"`
	TableNumber     string                  `json:"table_number,omitempty"`
	SaleType        string                  `json:"sale_type" validate:"required,oneof=LOCAL DELIVERY TAKEAWAY"`
	DeliveryService string                  `json:"delivery_service,omitempty"`
	CustomerName    string                  `json:"customer_name,omitempty"`
	CustomerPhone   string                  `json:"customer_phone,omitempty"`
	Items           []CreateSaleItemRequest `json:"items" validate:"required,min=1"`
	Subtotal        decimal.Decimal         `json:"subtotal"`
	DiscountAmount  decimal.Decimal         `json:"discount_amount"`
	Tax             decimal.Decimal         `json:"tax"`
	Total           decimal.Decimal         `json:"total"`
	PaymentMethod   string                  `json:"payment_method" validate:"required,oneof=CASH CARD QR"`
	Notes           string                  `json:"notes,omitempty"`
}

// SaleItemResponse línea de venta persistida.
type SaleItemResponse struct {
	ID        string          `json:"id"`
	RecipeID  string          `json:"recipe_id,omitempty"`
	ItemName  string          `json:"item_name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Total     decimal.Decimal `json:"total"`
}

// SaleResponse salida de una venta con sus items.
type SaleResponse struct {
	ID              string             `json:"id"`
	SaleNumber      string             `json:"sale_number"`
	LocationID      string             `json:"location_id"`
	TableNumber     string             `json:"table_number,omitempty"`
	WaiterID        string             `json:"waiter_id"`
	SaleType        string             `json:"sale_type"`
	DeliveryService string             `json:"delivery_service,omitempty"`
	CustomerName    string             `json:"customer_name,omitempty"`
	Subtotal        decimal.Decimal    `json:"subtotal"`
	DiscountAmount  decimal.Decimal    `json:"discount_amount"`
	Tax             decimal.Decimal    `json:"tax"`
	Total           decimal.Decimal    `json:"total"`
	PaymentMethod   string             `json:"payment_method"`
	Notes           string             `json:"notes,omitempty"`
	Status          string             `json:"status"`
	CreatedAt       time.Time          `json:"created_at"`
	Items           []SaleItemResponse `json:"items"`
}
