package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gastrosmart/gastrosmart-api/internal/application/dto"
	"github.com/gastrosmart/gastrosmart-api/internal/domain"
	"github.com/gastrosmart/gastrosmart-api/internal/domain/entity"
	"github.com/gastrosmart/gastrosmart-api/internal/domain/repository"
)

// RegisterMovementUseCase registra movimientos manuales de inventario de forma
// transaccional (IN, OUT, ADJUST, WASTE, EXPIRY, THEFT, TRANSFER) con bloqueo de
// fila y Commit/Rollback.
type RegisterMovementUseCase struct {
	txRunner      TxRunner
	itemRepo      repository.InventoryItemRepository
	ledger        *Ledger
	allowNegative bool
}

// NewRegisterMovementUseCase construye el caso de uso. allowNegative aplica la
// política de stock negativo de forma uniforme en la frontera del libro.
func NewRegisterMovementUseCase(txRunner TxRunner, itemRepo repository.InventoryItemRepository, ledger *Ledger, allowNegative bool) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{txRunner: txRunner, itemRepo: itemRepo, ledger: ledger, allowNegative: allowNegative}
}

// consumptionTypes movimientos que restan existencia.
var consumptionTypes = map[string]bool{
	entity.MovementTypeOUT:    true,
	entity.MovementTypeWASTE:  true,
	entity.MovementTypeEXPIRY: true,
	entity.MovementTypeTHEFT:  true,
}

// RegisterMovement valida el tipo, inicia una transacción y aplica el delta vía Ledger.
// Para TRANSFER resta del insumo origen y suma al insumo destino en la misma transacción.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, userID string, in dto.RegisterMovementRequest) (*dto.MovementResponse, error) {
	switch in.Type {
	case entity.MovementTypeIN, entity.MovementTypeOUT, entity.MovementTypeWASTE,
		entity.MovementTypeEXPIRY, entity.MovementTypeTHEFT:
		if in.InventoryItemID == "" || !in.Quantity.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
	case entity.MovementTypeADJUST:
		if in.InventoryItemID == "" || in.Quantity.IsZero() {
			return nil, domain.ErrInvalidInput
		}
	case entity.MovementTypeTRANSFER:
		if in.InventoryItemID == "" || in.ToInventoryItemID == "" ||
			in.InventoryItemID == in.ToInventoryItemID || !in.Quantity.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
	default:
		return nil, domain.ErrInvalidInput
	}

	item, err := uc.itemRepo.GetByID(in.InventoryItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	delta := in.Quantity
	if consumptionTypes[in.Type] || in.Type == entity.MovementTypeTRANSFER {
		delta = in.Quantity.Neg()
	}

	referenceID := uuid.New().String()
	var resp *dto.MovementResponse

	err = uc.txRunner.Run(ctx, func(
		itemRepo repository.InventoryItemRepository,
		movRepo repository.InventoryMovementRepository,
	) error {
		result, err := uc.ledger.ApplyDeltaInTx(itemRepo, movRepo, ApplyInventoryDelta{
			InventoryItemID: in.InventoryItemID,
			Delta:           delta,
			Type:            in.Type,
			ReferenceID:     referenceID,
			ReferenceType:   entity.ReferenceTypeManual,
			Notes:           in.Notes,
			UserID:          userID,
		})
		if err != nil {
			return err
		}
		if !uc.allowNegative && result.ResultingQuantity.LessThan(decimal.Zero) {
			return &domain.InsufficientStockError{Shortages: []domain.StockShortage{{
				ItemName:  item.Name,
				SaleItem:  item.Name,
				Required:  delta.Abs(),
				Available: result.PreviousQuantity,
				Unit:      item.Unit,
			}}}
		}

		if in.Type == entity.MovementTypeTRANSFER {
			if _, err := uc.ledger.ApplyDeltaInTx(itemRepo, movRepo, ApplyInventoryDelta{
				InventoryItemID: in.ToInventoryItemID,
				Delta:           in.Quantity,
				Type:            entity.MovementTypeTRANSFER,
				ReferenceID:     referenceID,
				ReferenceType:   entity.ReferenceTypeManual,
				Notes:           in.Notes,
				UserID:          userID,
			}); err != nil {
				return err
			}
		}

		resp = toMovementResponse(result)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func toMovementResponse(result *DeltaResult) *dto.MovementResponse {
	m := result.Movement
	return &dto.MovementResponse{
		ID:              m.ID,
		InventoryItemID: m.InventoryItemID,
		LocationID:      m.LocationID,
		Type:            m.Type,
		Quantity:        m.Quantity,
		Unit:            m.Unit,
		CostPerUnit:     m.CostPerUnit,
		ReferenceID:     m.ReferenceID,
		ReferenceType:   m.ReferenceType,
		ResultingQty:    result.ResultingQuantity,
		Notes:           m.Notes,
		CreatedAt:       m.CreatedAt,
	}
}

// ItemUseCase casos de uso CRUD para insumos de inventario. La existencia se
// mantiene vía movimientos; aquí solo se crea el insumo y se consulta.
type ItemUseCase struct {
	repo repository.InventoryItemRepository
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(repo repository.InventoryItemRepository) *ItemUseCase {
	return &ItemUseCase{repo: repo}
}

// Create crea un insumo con su existencia inicial.
func (uc *ItemUseCase) Create(in dto.CreateInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	if in.Name == "" || in.Unit == "" || in.LocationID == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	item := &entity.InventoryItem{
		ID:          uuid.New().String(),
		LocationID:  in.LocationID,
		Name:        in.Name,
		Quantity:    in.Quantity,
		Unit:        in.Unit,
		MinStock:    in.MinStock,
		MaxStock:    in.MaxStock,
		CostPerUnit: in.CostPerUnit,
		SupplierID:  in.SupplierID,
		LastUpdated: now,
		CreatedAt:   now,
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// List lista los insumos de una sucursal.
func (uc *ItemUseCase) List(locationID string, page dto.PageRequest) ([]*dto.InventoryItemResponse, error) {
	page.DefaultPage()
	items, err := uc.repo.List(locationID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InventoryItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, toItemResponse(item))
	}
	return out, nil
}

// ListCritical lista los insumos en stock crítico (existencia <= mínimo).
func (uc *ItemUseCase) ListCritical(locationID string) ([]*dto.InventoryItemResponse, error) {
	items, err := uc.repo.ListCritical(locationID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InventoryItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, toItemResponse(item))
	}
	return out, nil
}

func toItemResponse(item *entity.InventoryItem) *dto.InventoryItemResponse {
	return &dto.InventoryItemResponse{
		ID:          item.ID,
		LocationID:  item.LocationID,
		Name:        item.Name,
		Quantity:    item.Quantity,
		Unit:        item.Unit,
		MinStock:    item.MinStock,
		MaxStock:    item.MaxStock,
		CostPerUnit: item.CostPerUnit,
		SupplierID:  item.SupplierID,
		Critical:    item.IsCritical(),
		LastUpdated: item.LastUpdated,
	}
}
