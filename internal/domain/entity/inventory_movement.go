package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de inventario.
const (
	MovementTypeIN       = "IN"       // entrada (compra, recepción)
	MovementTypeOUT      = "OUT"      // salida (venta, consumo)
	MovementTypeADJUST   = "ADJUST"   // ajuste manual
	MovementTypeWASTE    = "WASTE"    // merma
	MovementTypeEXPIRY   = "EXPIRY"   // caducidad
	MovementTypeTHEFT    = "THEFT"    // robo
	MovementTypeTRANSFER = "TRANSFER" // traslado entre sucursales
)

// Tipos de referencia que originan un movimiento.
const (
	ReferenceTypeSale     = "sale"
	ReferenceTypePurchase = "purchase"
	ReferenceTypeManual   = "manual"
)

// InventoryMovement es el registro de auditoría de cada delta aplicado al inventario.
// Append-only: nunca se modifica después de creado.
type InventoryMovement struct {
	ID              string
	InventoryItemID string
	LocationID      string
	Type            string
	Quantity        decimal.Decimal // con signo: negativo consumo, positivo entrada/restauración
	Unit            string
	CostPerUnit     decimal.Decimal // costo del insumo al momento del movimiento
	ReferenceID     string          // ID de la venta, orden de compra o acción manual que lo causó
	ReferenceType   string
	Notes           string
	CreatedAt       time.Time
	UserID          string
}
