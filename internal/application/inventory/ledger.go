package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gastrosmart/gastrosmart-api/internal/domain"
	"github.com/gastrosmart/gastrosmart-api/internal/domain/entity"
	"github.com/gastrosmart/gastrosmart-api/internal/domain/repository"
)

// ApplyInventoryDelta es el comando explícito de mutación del libro de inventario.
// Toda alteración de existencias (venta, compra, ajuste manual) pasa por aquí;
// nunca se asigna la cantidad de un item directamente.
type ApplyInventoryDelta struct {
	InventoryItemID string
	LocationID      string
	Delta           decimal.Decimal // con signo: negativo consumo, positivo entrada/restauración
	Type            string          // entity.MovementType*
	ReferenceID     string
	ReferenceType   string
	Notes           string
	UserID          string
}

// DeltaResult resultado de aplicar un delta: el movimiento registrado y la
// existencia resultante, para que el caller decida rechazar/rollback.
type DeltaResult struct {
	Movement          *entity.InventoryMovement
	PreviousQuantity  decimal.Decimal
	ResultingQuantity decimal.Decimal
}

// Ledger aplica deltas de inventario dentro de la transacción del caller.
// No impone la política de stock negativo: esa decisión es del caller (configurable),
// por eso siempre devuelve la cantidad resultante.
type Ledger struct {
	now func() time.Time
}

// NewLedger construye el servicio de libro de inventario.
func NewLedger() *Ledger {
	return &Ledger{now: time.Now}
}

// ApplyDeltaInTx bloquea la fila del insumo (SELECT FOR UPDATE), suma el delta a la
// existencia, registra el movimiento inmutable y actualiza last_updated.
// Los repositorios deben venir atados a la transacción del caller.
func (l *Ledger) ApplyDeltaInTx(
	itemRepo repository.InventoryItemRepository,
	movRepo repository.InventoryMovementRepository,
	cmd ApplyInventoryDelta,
) (*DeltaResult, error) {
	item, err := itemRepo.GetForUpdate(cmd.InventoryItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if cmd.LocationID != "" && item.LocationID != cmd.LocationID {
		return nil, domain.ErrNotFound
	}

	now := l.now()
	previous := item.Quantity
	resulting := previous.Add(cmd.Delta)
	if err := itemRepo.UpdateQuantity(item.ID, resulting, now); err != nil {
		return nil, err
	}

	mov := &entity.InventoryMovement{
		ID:              uuid.New().String(),
		InventoryItemID: item.ID,
		LocationID:      item.LocationID,
		Type:            cmd.Type,
		Quantity:        cmd.Delta,
		Unit:            item.Unit,
		CostPerUnit:     item.CostPerUnit,
		ReferenceID:     cmd.ReferenceID,
		ReferenceType:   cmd.ReferenceType,
		Notes:           cmd.Notes,
		CreatedAt:       now,
		UserID:          cmd.UserID,
	}
	if err := movRepo.Create(mov); err != nil {
		return nil, err
	}
	return &DeltaResult{Movement: mov, PreviousQuantity: previous, ResultingQuantity: resulting}, nil
}
