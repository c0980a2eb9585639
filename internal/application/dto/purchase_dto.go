package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseOrderItemInput línea de una orden de compra.
type PurchaseOrderItemInput struct {
	InventoryItemID string          `json:"inventory_item_id" validate:"required,uuid"`
	Quantity        decimal.Decimal `json:"quantity" validate:"required"`
	UnitCost        decimal.Decimal `json:"unit_cost" validate:"required"`
}

// CreatePurchaseOrderRequest body para POST /api/purchase-orders.
type CreatePurchaseOrderRequest struct {
	LocationID string                   `json:"location_id" validate:"required,uuid"`
	SupplierID string                   `json:"supplier_id,omitempty"`
	Notes      string                   `json:"notes,omitempty"`
	Items      []PurchaseOrderItemInput `json:"items" validate:"required,min=1"`
}

// PurchaseOrderItemResponse línea persistida.
type PurchaseOrderItemResponse struct {
	ID              string          `json:"id"`
	InventoryItemID string          `json:"inventory_item_id"`
	Quantity        decimal.Decimal `json:"quantity"`
	UnitCost        decimal.Decimal `json:"unit_cost"`
	Total           decimal.Decimal `json:"total"`
}

// PurchaseOrderResponse salida de una orden de compra.
type PurchaseOrderResponse struct {
	ID          string                      `json:"id"`
	OrderNumber string                      `json:"order_number"`
	LocationID  string                      `json:"location_id"`
	SupplierID  string                      `json:"supplier_id,omitempty"`
	Status      string                      `json:"status"`
	Total       decimal.Decimal             `json:"total"`
	Notes       string                      `json:"notes,omitempty"`
	CreatedAt   time.Time                   `json:"created_at"`
	ReceivedAt  *time.Time                  `json:"received_at,omitempty"`
	Items       []PurchaseOrderItemResponse `json:"items"`
}
