package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gastrosmart/gastrosmart-api/internal/domain/entity"
)

// InventoryItemRepository define el puerto de persistencia para insumos de inventario.
// Usado dentro de transacciones para garantizar consistencia venta-inventario.
type InventoryItemRepository interface {
	GetByID(id string) (*entity.InventoryItem, error)
	// GetForUpdate bloquea la fila del insumo (SELECT FOR UPDATE) para serializar
	// la secuencia verificar-y-descontar por insumo.
	GetForUpdate(id string) (*entity.InventoryItem, error)
	List(locationID string, limit, offset int) ([]*entity.InventoryItem, error)
	// ListCritical devuelve los insumos con existencia <= stock mínimo.
	ListCritical(locationID string) ([]*entity.InventoryItem, error)
	Create(item *entity.InventoryItem) error
	UpdateQuantity(id string, quantity decimal.Decimal, at time.Time) error
	UpdateCost(id string, costPerUnit decimal.Decimal) error
}
