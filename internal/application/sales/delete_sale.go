package sales

import (
	"context"
	"time"

	"github.com/gastrosmart/gastrosmart-api/internal/application/dto"
	appinventory "github.com/gastrosmart/gastrosmart-api/internal/application/inventory"
	"github.com/gastrosmart/gastrosmart-api/internal/domain"
	"github.com/gastrosmart/gastrosmart-api/internal/domain/entity"
	"github.com/gastrosmart/gastrosmart-api/internal/domain/repository"
)

// DeleteSaleUseCase elimina una venta restaurando el inventario que consumió.
// La restauración reaplica la MISMA expansión de recetas que el descuento,
// con signo opuesto, en la misma transacción que el borrado.
type DeleteSaleUseCase struct {
	txRunner   SalesTxRunner
	ledger     Ledger
	saleRepo   repository.SaleRepository
	recipeRepo repository.RecipeRepository
	itemRepo   repository.InventoryItemRepository
}

// NewDeleteSaleUseCase construye el caso de uso de borrado de ventas.
func NewDeleteSaleUseCase(
	txRunner SalesTxRunner,
	ledger Ledger,
	saleRepo repository.SaleRepository,
	recipeRepo repository.RecipeRepository,
	itemRepo repository.InventoryItemRepository,
) *DeleteSaleUseCase {
	return &DeleteSaleUseCase{
		txRunner:   txRunner,
		ledger:     ledger,
		saleRepo:   saleRepo,
		recipeRepo: recipeRepo,
		itemRepo:   itemRepo,
	}
}

// DeleteSale borra la venta y devuelve al inventario cada ingrediente consumido.
// La restauración puede dejar stock por encima del máximo configurado: se acepta,
// porque la prioridad es que borrar y revender sea neutro para las existencias.
func (uc *DeleteSaleUseCase) DeleteSale(ctx context.Context, userID, saleID string) error {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return err
	}
	if sale == nil {
		return domain.ErrNotFound
	}

	refs := make([]saleLineRef, 0, len(sale.Items))
	for _, item := range sale.Items {
		refs = append(refs, saleLineRef{recipeID: item.RecipeID, itemName: item.ItemName, quantity: item.Quantity})
	}
	lines, err := expandLines(uc.recipeRepo, uc.itemRepo, sale.LocationID, refs)
	if err != nil {
		return err
	}

	return uc.txRunner.RunSale(ctx, func(
		saleRepo repository.SaleRepository,
		itemRepo repository.InventoryItemRepository,
		movRepo repository.InventoryMovementRepository,
	) error {
		for _, line := range lines {
			_, err := uc.ledger.ApplyDeltaInTx(itemRepo, movRepo, appinventory.ApplyInventoryDelta{
				InventoryItemID: line.item.ID,
				LocationID:      sale.LocationID,
				Delta:           line.required,
				Type:            entity.MovementTypeIN,
				ReferenceID:     sale.ID,
				ReferenceType:   entity.ReferenceTypeSale,
				Notes:           "Restauración por eliminación de venta " + sale.SaleNumber,
				UserID:          userID,
			})
			if err != nil {
				return err
			}
		}
		return saleRepo.Delete(sale.ID)
	})
}

// GetSaleUseCase consultas de lectura sobre ventas.
type GetSaleUseCase struct {
	saleRepo repository.SaleRepository
}

func NewGetSaleUseCase(saleRepo repository.SaleRepository) *GetSaleUseCase {
	return &GetSaleUseCase{saleRepo: saleRepo}
}

// GetByID devuelve una venta con sus items.
func (uc *GetSaleUseCase) GetByID(saleID string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	return toSaleResponse(sale), nil
}

// List devuelve las ventas de una sucursal paginadas, más recientes primero.
// from/to acotan por fecha de creación cuando no son nil.
func (uc *GetSaleUseCase) List(locationID string, from, to *time.Time, page dto.PageRequest) ([]dto.SaleResponse, error) {
	sales, err := uc.saleRepo.List(locationID, from, to, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(sales))
	for _, sale := range sales {
		out = append(out, *toSaleResponse(sale))
	}
	return out, nil
}
