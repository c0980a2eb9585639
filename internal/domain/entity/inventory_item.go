package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem representa un insumo del inventario de una sucursal.
// Quantity refleja la suma de todos los movimientos aplicados desde su creación;
// nunca se resetea directamente (toda mutación pasa por el libro de movimientos).
type InventoryItem struct {
	ID          string
	LocationID  string
	Name        string
	Quantity    decimal.Decimal // existencia actual; puede ser negativa si la configuración lo permite
	Unit        string          // código de unidad: kg, g, l, ml, unidad
	MinStock    decimal.Decimal
	MaxStock    decimal.Decimal
	CostPerUnit decimal.Decimal // costo promedio ponderado, actualizado al recibir compras
	SupplierID  string
	LastUpdated time.Time
	CreatedAt   time.Time
}

// IsCritical indica si el insumo está en stock crítico (existencia <= mínimo).
func (i *InventoryItem) IsCritical() bool {
	return i.Quantity.LessThanOrEqual(i.MinStock)
}
