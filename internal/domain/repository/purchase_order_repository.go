package repository

import "github.com/gastrosmart/gastrosmart-api/internal/domain/entity"

// PurchaseOrderRepository define el puerto de persistencia para órdenes de compra.
type PurchaseOrderRepository interface {
	Create(order *entity.PurchaseOrder) error
	// GetByID devuelve la orden con sus items cargados, o nil si no existe.
	GetByID(id string) (*entity.PurchaseOrder, error)
	// GetForUpdate bloquea la fila de la orden (SELECT ... FOR UPDATE) para
	// serializar la transición de estado PENDING -> RECEIVED/CANCELLED.
	GetForUpdate(id string) (*entity.PurchaseOrder, error)
	List(locationID string, limit, offset int) ([]*entity.PurchaseOrder, error)
	// Update persiste el cambio de estado y la fecha de recepción.
	Update(order *entity.PurchaseOrder) error
}
