package sales

import (
	"context"

	appinventory "github.com/gastrosmart/gastrosmart-api/internal/application/inventory"
	"github.com/gastrosmart/gastrosmart-api/internal/domain/entity"
	"github.com/gastrosmart/gastrosmart-api/internal/domain/repository"
)

// SalesTxRunner ejecuta una función dentro de una transacción que incluye los
// repositorios de ventas e inventario. La venta, sus items y todos los deltas
// de inventario se confirman juntos o no se confirma ninguno.
type SalesTxRunner interface {
	RunSale(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		itemRepo repository.InventoryItemRepository,
		movRepo repository.InventoryMovementRepository,
	) error) error
}

// Ledger puerto hacia el libro de inventario, ejecutado con los repositorios
// de la transacción del caller.
type Ledger interface {
	ApplyDeltaInTx(
		itemRepo repository.InventoryItemRepository,
		movRepo repository.InventoryMovementRepository,
		cmd appinventory.ApplyInventoryDelta,
	) (*appinventory.DeltaResult, error)
}

// ReceiptGenerator genera el recibo de una venta en PDF.
type ReceiptGenerator interface {
	GenerateReceiptPDF(ctx context.Context, sale *entity.Sale, location *entity.Location) ([]byte, error)
}
