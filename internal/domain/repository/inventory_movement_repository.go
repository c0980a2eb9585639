package repository

import (
	"time"

	"github.com/gastrosmart/gastrosmart-api/internal/domain/entity"
)

// InventoryMovementRepository define el puerto de persistencia para el libro de
// movimientos de inventario (append-only).
type InventoryMovementRepository interface {
	Create(movement *entity.InventoryMovement) error
	GetByID(id string) (*entity.InventoryMovement, error)
	ListByItem(inventoryItemID string, from, to *time.Time, limit, offset int) ([]*entity.InventoryMovement, error)
	// ListByReference devuelve los movimientos causados por una venta, compra o acción manual.
	ListByReference(referenceType, referenceID string) ([]*entity.InventoryMovement, error)
}
