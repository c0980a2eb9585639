package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de compra.
const (
	PurchaseOrderPending   = "PENDING"
	PurchaseOrderReceived  = "RECEIVED"
	PurchaseOrderCancelled = "CANCELLED"
)

// PurchaseOrder representa una orden de compra a un proveedor.
// Al recibirla se aplican entradas (IN) al inventario y se recalcula el costo promedio.
type PurchaseOrder struct {
	ID          string
	OrderNumber string
	LocationID  string
	SupplierID  string
	Status      string
	Total       decimal.Decimal
	Notes       string
	CreatedBy   string
	CreatedAt   time.Time
	ReceivedAt  *time.Time
	Items       []PurchaseOrderItem
}

// PurchaseOrderItem es una línea de la orden de compra.
type PurchaseOrderItem struct {
	ID              string
	PurchaseOrderID string
	InventoryItemID string
	Quantity        decimal.Decimal
	UnitCost        decimal.Decimal
	Total           decimal.Decimal
}
