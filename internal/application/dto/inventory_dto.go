package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInventoryItemRequest body para crear un insumo.
type CreateInventoryItemRequest struct {
	LocationID  string          `json:"location_id" validate:"required,uuid"`
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit" validate:"required"`
	MinStock    decimal.Decimal `json:"min_stock"`
	MaxStock    decimal.Decimal `json:"max_stock"`
	CostPerUnit decimal.Decimal `json:"cost_per_unit"`
	SupplierID  string          `json:"supplier_id,omitempty"`
}

// InventoryItemResponse salida de un insumo.
type InventoryItemResponse struct {
	ID          string          `json:"id"`
	LocationID  string          `json:"location_id"`
	Name        string          `json:"name"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit"`
	MinStock    decimal.Decimal `json:"min_stock"`
	MaxStock    decimal.Decimal `json:"max_stock"`
	CostPerUnit decimal.Decimal `json:"cost_per_unit"`
	SupplierID  string          `json:"supplier_id,omitempty"`
	Critical    bool            `json:"critical"`
	LastUpdated time.Time       `json:"last_updated"`
}

// RegisterMovementRequest body para POST /api/inventory/movements (movimiento manual).
type RegisterMovementRequest struct {
	InventoryItemID string `json:"inventory_item_id" validate:"required,uuid"`
	// ToInventoryItemID solo para TRANSFER: insumo equivalente en la sucursal destino.
	ToInventoryItemID string          `json:"to_inventory_item_id,omitempty"`
	Type              string          `json:"type" validate:"required,oneof=IN OUT ADJUST WASTE EXPIRY THEFT TRANSFER"`
	Quantity          decimal.Decimal `json:"quantity" validate:"required"`
	Notes             string          `json:"notes,omitempty"`
}

// MovementResponse salida de un movimiento del libro de inventario.
type MovementResponse struct {
	ID              string          `json:"id"`
	InventoryItemID string          `json:"inventory_item_id"`
	LocationID      string          `json:"location_id"`
	Type            string          `json:"type"`
	Quantity        decimal.Decimal `json:"quantity"`
	Unit            string          `json:"unit"`
	CostPerUnit     decimal.Decimal `json:"cost_per_unit"`
	ReferenceID     string          `json:"reference_id,omitempty"`
	ReferenceType   string          `json:"reference_type,omitempty"`
	ResultingQty    decimal.Decimal `json:"resulting_quantity"`
	Notes           string          `json:"notes,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}
