package sales

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	appinventory "github.com/gastrosmart/gastrosmart-api/internal/application/inventory"
	"github.com/gastrosmart/gastrosmart-api/internal/application/dto"
	"github.com/gastrosmart/gastrosmart-api/internal/domain"
	"github.com/gastrosmart/gastrosmart-api/internal/domain/entity"
	"github.com/gastrosmart/gastrosmart-api/internal/domain/repository"
)

// Config reglas de negocio del motor de ventas.
type Config struct {
	OpenHour  int
	CloseHour int
	// BusinessDays días de atención, Lunes=0 ... Domingo=6.
	BusinessDays []int
	// AllowNegativeStock política única de stock negativo, aplicada en la frontera
	// del libro de inventario dentro de la transacción (no en los call sites).
	AllowNegativeStock bool
}

// weekdayNames nombres en español indexados con Lunes=0 (mismo convenio que BusinessDays).
var weekdayNames = []string{"Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado", "Domingo"}

// totalTolerance tolerancia de comparación de totales en moneda.
var totalTolerance = decimal.NewFromFloat(0.01)

// CreateSaleUseCase es el motor transaccional de ventas: valida precondiciones
// (caja abierta, horario, stock), verifica totales y persiste la venta junto con
// el descuento de inventario como una sola unidad de trabajo.
type CreateSaleUseCase struct {
	txRunner   SalesTxRunner
	ledger     Ledger
	cashRepo   repository.CashSessionRepository
	recipeRepo repository.RecipeRepository
	itemRepo   repository.InventoryItemRepository
	cfg        Config
	now        func() time.Time
}

// NewCreateSaleUseCase construye el motor de ventas.
func NewCreateSaleUseCase(
	txRunner SalesTxRunner,
	ledger Ledger,
	cashRepo repository.CashSessionRepository,
	recipeRepo repository.RecipeRepository,
	itemRepo repository.InventoryItemRepository,
	cfg Config,
) *CreateSaleUseCase {
	return &CreateSaleUseCase{
		txRunner:   txRunner,
		ledger:     ledger,
		cashRepo:   cashRepo,
		recipeRepo: recipeRepo,
		itemRepo:   itemRepo,
		cfg:        cfg,
		now:        time.Now,
	}
}

// consumptionLine consumo calculado de un ingrediente para la venta.
type consumptionLine struct {
	item         *entity.InventoryItem
	saleItemName string
	required     decimal.Decimal
}

// CreateSale ejecuta las compuertas en orden (caja, horario, items, stock, totales)
// y luego persiste venta + items + deltas de inventario en una transacción.
// La primera compuerta que falla aborta sin escritura alguna.
func (uc *CreateSaleUseCase) CreateSale(ctx context.Context, userID string, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	// 1) Compuerta de caja: el usuario debe tener una sesión abierta en la sucursal.
	session, err := uc.cashRepo.GetOpen(userID, in.LocationID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, domain.ErrNoOpenRegister
	}

	// 2) Compuerta de horario de atención.
	if err := uc.checkBusinessHours(); err != nil {
		return nil, err
	}

	// 3) Compuerta de venta no vacía.
	if len(in.Items) == 0 {
		return nil, domain.ErrEmptySale
	}
	for _, item := range in.Items {
		if item.ItemName == "" || item.Quantity <= 0 ||
			!item.UnitPrice.GreaterThan(decimal.Zero) || !item.Total.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
	}

	// 4) Compuerta de suficiencia de stock: expande cada receta a sus ingredientes
	// y acumula TODOS los faltantes. Corre siempre, también con stock negativo
	// permitido, porque protege contra sobreventas flagrantes.
	lines, err := uc.expandConsumption(in.LocationID, in.Items)
	if err != nil {
		return nil, err
	}
	var shortages []domain.StockShortage
	for _, line := range lines {
		if line.item.Quantity.LessThan(line.required) {
			shortages = append(shortages, domain.StockShortage{
				ItemName:  line.item.Name,
				SaleItem:  line.saleItemName,
				Required:  line.required,
				Available: line.item.Quantity,
				Unit:      line.item.Unit,
			})
		}
	}
	if len(shortages) > 0 {
		return nil, &domain.InsufficientStockError{Shortages: shortages}
	}

	// 5) Compuerta de consistencia de totales (tolerancia 0.01).
	expectedSubtotal := decimal.Zero
	for _, item := range in.Items {
		expectedSubtotal = expectedSubtotal.Add(item.Total)
	}
	if expectedSubtotal.Sub(in.Subtotal).Abs().GreaterThan(totalTolerance) {
		return nil, &domain.TotalMismatchError{Field: "subtotal", Expected: expectedSubtotal, Received: in.Subtotal}
	}
	expectedTotal := expectedSubtotal.Sub(in.DiscountAmount).Add(in.Tax)
	if expectedTotal.Sub(in.Total).Abs().GreaterThan(totalTolerance) {
		return nil, &domain.TotalMismatchError{Field: "total", Expected: expectedTotal, Received: in.Total}
	}

	// 6-8) Persistencia y descuento de inventario en una sola transacción.
	now := uc.now()
	sale := uc.buildSale(userID, now, in)

	err = uc.txRunner.RunSale(ctx, func(
		saleRepo repository.SaleRepository,
		itemRepo repository.InventoryItemRepository,
		movRepo repository.InventoryMovementRepository,
	) error {
		if err := saleRepo.Create(sale); err != nil {
			return err
		}
		for i := range sale.Items {
			if err := saleRepo.CreateItem(&sale.Items[i]); err != nil {
				return err
			}
		}
		// Descuento por ingrediente con bloqueo de fila. Si la política prohíbe
		// stock negativo y un delta dejaría existencia < 0 (p.ej. por una venta
		// concurrente que pasó la compuerta 4 con una lectura vieja), se aborta
		// la venta completa.
		for _, line := range lines {
			result, err := uc.ledger.ApplyDeltaInTx(itemRepo, movRepo, appinventory.ApplyInventoryDelta{
				InventoryItemID: line.item.ID,
				LocationID:      in.LocationID,
				Delta:           line.required.Neg(),
				Type:            entity.MovementTypeOUT,
				ReferenceID:     sale.ID,
				ReferenceType:   entity.ReferenceTypeSale,
				UserID:          userID,
			})
			if err != nil {
				return err
			}
			if !uc.cfg.AllowNegativeStock && result.ResultingQuantity.LessThan(decimal.Zero) {
				return &domain.InsufficientStockError{Shortages: []domain.StockShortage{{
					ItemName:  line.item.Name,
					SaleItem:  line.saleItemName,
					Required:  line.required,
					Available: result.PreviousQuantity,
					Unit:      line.item.Unit,
				}}}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale), nil
}

// checkBusinessHours valida día y hora contra la configuración.
func (uc *CreateSaleUseCase) checkBusinessHours() error {
	now := uc.now()
	mondayIdx := (int(now.Weekday()) + 6) % 7 // time.Weekday tiene Domingo=0; aquí Lunes=0
	dayOpen := false
	for _, d := range uc.cfg.BusinessDays {
		if d == mondayIdx {
			dayOpen = true
			break
		}
	}
	if !dayOpen {
		return &domain.BusinessClosedError{Weekday: weekdayNames[mondayIdx], DayClosed: true}
	}
	if now.Hour() < uc.cfg.OpenHour || now.Hour() >= uc.cfg.CloseHour {
		return &domain.BusinessClosedError{OpenHour: uc.cfg.OpenHour, CloseHour: uc.cfg.CloseHour}
	}
	return nil
}

// expandConsumption convierte los items con receta en líneas de consumo de inventario.
func (uc *CreateSaleUseCase) expandConsumption(locationID string, items []dto.CreateSaleItemRequest) ([]consumptionLine, error) {
	refs := make([]saleLineRef, 0, len(items))
	for _, item := range items {
		refs = append(refs, saleLineRef{recipeID: item.RecipeID, itemName: item.ItemName, quantity: item.Quantity})
	}
	return expandLines(uc.recipeRepo, uc.itemRepo, locationID, refs)
}

// buildSale arma la entidad venta. El waiter_id SIEMPRE es el usuario autenticado:
// el motor no confía en un vendedor enviado por el cliente (anti-suplantación).
func (uc *CreateSaleUseCase) buildSale(userID string, now time.Time, in dto.CreateSaleRequest) *entity.Sale {
	saleID := uuid.New().String()
	saleNumber := "V-" + now.Format("20060102") + "-" + strings.ToUpper(uuid.New().String()[:8])
	sale := &entity.Sale{
		ID:              saleID,
		SaleNumber:      saleNumber,
		LocationID:      in.LocationID,
		TableNumber:     in.TableNumber,
		WaiterID:        userID,
		SaleType:        in.SaleType,
		DeliveryService: in.DeliveryService,
		CustomerName:    in.CustomerName,
		CustomerPhone:   in.CustomerPhone,
		Subtotal:        in.Subtotal,
		DiscountAmount:  in.DiscountAmount,
		Tax:             in.Tax,
		Total:           in.Total,
		PaymentMethod:   in.PaymentMethod,
		Notes:           in.Notes,
		Status:          entity.SaleStatusCompleted,
		CreatedAt:       now,
	}
	for _, item := range in.Items {
		sale.Items = append(sale.Items, entity.SaleItem{
			ID:        uuid.New().String(),
			SaleID:    saleID,
			RecipeID:  item.RecipeID,
			ItemName:  item.ItemName,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Total:     item.Total,
		})
	}
	return sale
}

func toSaleResponse(sale *entity.Sale) *dto.SaleResponse {
	resp := &dto.SaleResponse{
		ID:              sale.ID,
		SaleNumber:      sale.SaleNumber,
		LocationID:      sale.LocationID,
		TableNumber:     sale.TableNumber,
		WaiterID:        sale.WaiterID,
		SaleType:        sale.SaleType,
		DeliveryService: sale.DeliveryService,
		CustomerName:    sale.CustomerName,
		Subtotal:        sale.Subtotal,
		DiscountAmount:  sale.DiscountAmount,
		Tax:             sale.Tax,
		Total:           sale.Total,
		PaymentMethod:   sale.PaymentMethod,
		Notes:           sale.Notes,
		Status:          sale.Status,
		CreatedAt:       sale.CreatedAt,
		Items:           make([]dto.SaleItemResponse, 0, len(sale.Items)),
	}
	for _, item := range sale.Items {
		resp.Items = append(resp.Items, dto.SaleItemResponse{
			ID:        item.ID,
			RecipeID:  item.RecipeID,
			ItemName:  item.ItemName,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Total:     item.Total,
		})
	}
	return resp
}
