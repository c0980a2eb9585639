package purchasing

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gastrosmart/gastrosmart-api/internal/application/dto"
	appinventory "github.com/gastrosmart/gastrosmart-api/internal/application/inventory"
	"github.com/gastrosmart/gastrosmart-api/internal/domain"
	"github.com/gastrosmart/gastrosmart-api/internal/domain/entity"
	dominventory "github.com/gastrosmart/gastrosmart-api/internal/domain/inventory"
	"github.com/gastrosmart/gastrosmart-api/internal/domain/repository"
)

// UseCase administra órdenes de compra. Recibir una orden aplica entradas (IN)
// al inventario y recalcula el costo promedio ponderado de cada insumo, todo en
// una transacción.
type UseCase struct {
	orderRepo repository.PurchaseOrderRepository
	itemRepo  repository.InventoryItemRepository
	txRunner  TxRunner
	ledger    *appinventory.Ledger
	now       func() time.Time
}

func NewUseCase(
	orderRepo repository.PurchaseOrderRepository,
	itemRepo repository.InventoryItemRepository,
	txRunner TxRunner,
	ledger *appinventory.Ledger,
) *UseCase {
	return &UseCase{
		orderRepo: orderRepo,
		itemRepo:  itemRepo,
		txRunner:  txRunner,
		ledger:    ledger,
		now:       time.Now,
	}
}

// Create registra una orden PENDING. No toca inventario.
func (uc *UseCase) Create(userID string, in dto.CreatePurchaseOrderRequest) (*dto.PurchaseOrderResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	now := uc.now()
	order := &entity.PurchaseOrder{
		ID:          uuid.New().String(),
		OrderNumber: "OC-" + now.Format("20060102") + "-" + strings.ToUpper(uuid.New().String()[:8]),
		LocationID:  in.LocationID,
		SupplierID:  in.SupplierID,
		Status:      entity.PurchaseOrderPending,
		Notes:       in.Notes,
		CreatedBy:   userID,
		CreatedAt:   now,
	}
	total := decimal.Zero
	for _, line := range in.Items {
		if !line.Quantity.GreaterThan(decimal.Zero) || line.UnitCost.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		item, err := uc.itemRepo.GetByID(line.InventoryItemID)
		if err != nil {
			return nil, err
		}
		if item == nil || item.LocationID != in.LocationID {
			return nil, domain.ErrNotFound
		}
		lineTotal := line.Quantity.Mul(line.UnitCost)
		order.Items = append(order.Items, entity.PurchaseOrderItem{
			ID:              uuid.New().String(),
			PurchaseOrderID: order.ID,
			InventoryItemID: line.InventoryItemID,
			Quantity:        line.Quantity,
			UnitCost:        line.UnitCost,
			Total:           lineTotal,
		})
		total = total.Add(lineTotal)
	}
	order.Total = total
	if err := uc.orderRepo.Create(order); err != nil {
		return nil, err
	}
	return toResponse(order), nil
}

// Receive marca la orden como RECEIVED aplicando, por cada línea, la entrada de
// inventario y el nuevo costo promedio ponderado. Todo ocurre en una transacción
// con la fila de la orden bloqueada: solo órdenes PENDING se reciben, y dos
// recepciones concurrentes terminan en un conflicto, no en una doble entrada.
func (uc *UseCase) Receive(ctx context.Context, userID, orderID string) (*dto.PurchaseOrderResponse, error) {
	var order *entity.PurchaseOrder
	err := uc.txRunner.RunPurchase(ctx, func(
		orderRepo repository.PurchaseOrderRepository,
		itemRepo repository.InventoryItemRepository,
		movRepo repository.InventoryMovementRepository,
	) error {
		var err error
		order, err = orderRepo.GetForUpdate(orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		if order.Status != entity.PurchaseOrderPending {
			return domain.ErrConflict
		}
		for _, line := range order.Items {
			// Bloquea la fila antes del delta para leer stock y costo consistentes.
			item, err := itemRepo.GetForUpdate(line.InventoryItemID)
			if err != nil {
				return err
			}
			if item == nil {
				return domain.ErrNotFound
			}
			newCost := dominventory.WeightedAverageCost(item.Quantity, item.CostPerUnit, line.Quantity, line.UnitCost)
			if _, err := uc.ledger.ApplyDeltaInTx(itemRepo, movRepo, appinventory.ApplyInventoryDelta{
				InventoryItemID: line.InventoryItemID,
				LocationID:      order.LocationID,
				Delta:           line.Quantity,
				Type:            entity.MovementTypeIN,
				ReferenceID:     order.ID,
				ReferenceType:   entity.ReferenceTypePurchase,
				Notes:           "Recepción de orden " + order.OrderNumber,
				UserID:          userID,
			}); err != nil {
				return err
			}
			if err := itemRepo.UpdateCost(line.InventoryItemID, newCost); err != nil {
				return err
			}
		}
		receivedAt := uc.now()
		order.Status = entity.PurchaseOrderReceived
		order.ReceivedAt = &receivedAt
		return orderRepo.Update(order)
	})
	if err != nil {
		return nil, err
	}
	return toResponse(order), nil
}

// Cancel anula una orden PENDING sin tocar inventario. Bloquea la fila para no
// anular una orden que otra transacción está recibiendo.
func (uc *UseCase) Cancel(ctx context.Context, orderID string) (*dto.PurchaseOrderResponse, error) {
	var order *entity.PurchaseOrder
	err := uc.txRunner.RunPurchase(ctx, func(
		orderRepo repository.PurchaseOrderRepository,
		_ repository.InventoryItemRepository,
		_ repository.InventoryMovementRepository,
	) error {
		var err error
		order, err = orderRepo.GetForUpdate(orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		if order.Status != entity.PurchaseOrderPending {
			return domain.ErrConflict
		}
		order.Status = entity.PurchaseOrderCancelled
		return orderRepo.Update(order)
	})
	if err != nil {
		return nil, err
	}
	return toResponse(order), nil
}

// GetByID devuelve la orden con sus líneas.
func (uc *UseCase) GetByID(orderID string) (*dto.PurchaseOrderResponse, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return toResponse(order), nil
}

// List devuelve las órdenes de la sucursal paginadas.
func (uc *UseCase) List(locationID string, page dto.PageRequest) ([]dto.PurchaseOrderResponse, error) {
	orders, err := uc.orderRepo.List(locationID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PurchaseOrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, *toResponse(o))
	}
	return out, nil
}

func toResponse(o *entity.PurchaseOrder) *dto.PurchaseOrderResponse {
	resp := &dto.PurchaseOrderResponse{
		ID:          o.ID,
		OrderNumber: o.OrderNumber,
		LocationID:  o.LocationID,
		SupplierID:  o.SupplierID,
		Status:      o.Status,
		Total:       o.Total,
		Notes:       o.Notes,
		CreatedAt:   o.CreatedAt,
		ReceivedAt:  o.ReceivedAt,
		Items:       make([]dto.PurchaseOrderItemResponse, 0, len(o.Items)),
	}
	for _, line := range o.Items {
		resp.Items = append(resp.Items, dto.PurchaseOrderItemResponse{
			ID:              line.ID,
			InventoryItemID: line.InventoryItemID,
			Quantity:        line.Quantity,
			UnitCost:        line.UnitCost,
			Total:           line.Total,
		})
	}
	return resp
}
