package purchasing

import (
	"context"

	"github.com/gastrosmart/gastrosmart-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción que incluye el
// repositorio de órdenes de compra y los de inventario. El cambio de estado de
// la orden, las entradas y los nuevos costos se confirman juntos o no se
// confirma ninguno.
type TxRunner interface {
	RunPurchase(ctx context.Context, fn func(
		orderRepo repository.PurchaseOrderRepository,
		itemRepo repository.InventoryItemRepository,
		movRepo repository.InventoryMovementRepository,
	) error) error
}
