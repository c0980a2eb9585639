package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una venta.
const (
	SaleStatusCompleted = "COMPLETED"
	SaleStatusCancelled = "CANCELLED"
	SaleStatusRefunded  = "REFUNDED"
)

// Tipos de venta.
const (
	SaleTypeLocal    = "LOCAL"
	SaleTypeDelivery = "DELIVERY"
	SaleTypeTakeaway = "TAKEAWAY"
)

// Métodos de pago.
const (
	PaymentCash = "CASH"
	PaymentCard = "CARD"
	PaymentQR   = "QR"
)

// Sale representa una venta del punto de venta con sus items.
// Invariante: Total == Subtotal - DiscountAmount + Tax (tolerancia 0.01);
// se crea atómicamente junto con sus items y el descuento de inventario.
type Sale struct {
	ID              string
	SaleNumber      string // legible, único: V-YYYYMMDD-XXXXXXXX
	LocationID      string
	TableNumber     string
	WaiterID        string // usuario autenticado que vende; nunca el valor enviado por el cliente
	SaleType        string
	DeliveryService string
	CustomerName    string
	CustomerPhone   string
	Subtotal        decimal.Decimal
	DiscountAmount  decimal.Decimal
	Tax             decimal.Decimal
	Total           decimal.Decimal
	PaymentMethod   string
	Notes           string
	Status          string
	CreatedAt       time.Time
	Items           []SaleItem
}

// SaleItem es una línea de venta. Quantity cuenta porciones vendidas del plato.
type SaleItem struct {
	ID        string
	SaleID    string
	RecipeID  string // opcional: vacío para items fuera de carta
	ItemName  string
	Quantity  int
	UnitPrice decimal.Decimal
	Total     decimal.Decimal
}
