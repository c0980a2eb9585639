package purchasing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gastrosmart/gastrosmart-api/internal/application/dto"
	appinventory "github.com/gastrosmart/gastrosmart-api/internal/application/inventory"
	"github.com/gastrosmart/gastrosmart-api/internal/domain"
	"github.com/gastrosmart/gastrosmart-api/internal/domain/entity"
	"github.com/gastrosmart/gastrosmart-api/internal/domain/repository"
)

type memOrderRepo struct {
	orders map[string]*entity.PurchaseOrder
}

func newMemOrderRepo() *memOrderRepo {
	return &memOrderRepo{orders: map[string]*entity.PurchaseOrder{}}
}

func (m *memOrderRepo) Create(order *entity.PurchaseOrder) error {
	m.orders[order.ID] = order
	return nil
}

func (m *memOrderRepo) GetByID(id string) (*entity.PurchaseOrder, error) {
	o, ok := m.orders[id]
	if !ok {
		return nil, nil
	}
	return o, nil
}

func (m *memOrderRepo) GetForUpdate(id string) (*entity.PurchaseOrder, error) {
	return m.GetByID(id)
}

func (m *memOrderRepo) List(locationID string, limit, offset int) ([]*entity.PurchaseOrder, error) {
	var out []*entity.PurchaseOrder
	for _, o := range m.orders {
		if o.LocationID == locationID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *memOrderRepo) Update(order *entity.PurchaseOrder) error {
	m.orders[order.ID] = order
	return nil
}

type memItemRepo struct {
	items map[string]*entity.InventoryItem
}

func (m *memItemRepo) GetByID(id string) (*entity.InventoryItem, error) {
	it, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	cp := *it
	return &cp, nil
}

func (m *memItemRepo) GetForUpdate(id string) (*entity.InventoryItem, error) { return m.GetByID(id) }
func (m *memItemRepo) List(string, int, int) ([]*entity.InventoryItem, error) {
	return nil, nil
}
func (m *memItemRepo) ListCritical(string) ([]*entity.InventoryItem, error) { return nil, nil }
func (m *memItemRepo) Create(item *entity.InventoryItem) error {
	m.items[item.ID] = item
	return nil
}

func (m *memItemRepo) UpdateQuantity(id string, quantity decimal.Decimal, at time.Time) error {
	it, ok := m.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	it.Quantity = quantity
	it.LastUpdated = at
	return nil
}

func (m *memItemRepo) UpdateCost(id string, costPerUnit decimal.Decimal) error {
	it, ok := m.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	it.CostPerUnit = costPerUnit
	return nil
}

type memMovRepo struct {
	movements []*entity.InventoryMovement
}

func (m *memMovRepo) Create(mov *entity.InventoryMovement) error {
	m.movements = append(m.movements, mov)
	return nil
}
func (m *memMovRepo) GetByID(string) (*entity.InventoryMovement, error) { return nil, nil }
func (m *memMovRepo) ListByItem(string, *time.Time, *time.Time, int, int) ([]*entity.InventoryMovement, error) {
	return nil, nil
}

func (m *memMovRepo) ListByReference(referenceType, referenceID string) ([]*entity.InventoryMovement, error) {
	var out []*entity.InventoryMovement
	for _, mov := range m.movements {
		if mov.ReferenceType == referenceType && mov.ReferenceID == referenceID {
			out = append(out, mov)
		}
	}
	return out, nil
}

// memTxRunner restaura el estado completo si fn o el commit fallan, emulando
// el rollback de la transacción.
type memTxRunner struct {
	orderRepo *memOrderRepo
	itemRepo  *memItemRepo
	movRepo   *memMovRepo
	commitErr error
}

func (r *memTxRunner) RunPurchase(ctx context.Context, fn func(
	orderRepo repository.PurchaseOrderRepository,
	itemRepo repository.InventoryItemRepository,
	movRepo repository.InventoryMovementRepository,
) error) error {
	ordersSnap := map[string]*entity.PurchaseOrder{}
	for id, o := range r.orderRepo.orders {
		cp := *o
		cp.Items = append([]entity.PurchaseOrderItem(nil), o.Items...)
		ordersSnap[id] = &cp
	}
	itemsSnap := map[string]*entity.InventoryItem{}
	for id, it := range r.itemRepo.items {
		cp := *it
		itemsSnap[id] = &cp
	}
	movSnap := append([]*entity.InventoryMovement(nil), r.movRepo.movements...)

	rollback := func() {
		r.orderRepo.orders = ordersSnap
		r.itemRepo.items = itemsSnap
		r.movRepo.movements = movSnap
	}
	if err := fn(r.orderRepo, r.itemRepo, r.movRepo); err != nil {
		rollback()
		return err
	}
	if r.commitErr != nil {
		rollback()
		return r.commitErr
	}
	return nil
}

const (
	testUser     = "user-1"
	testLocation = "loc-1"
)

type fixture struct {
	uc        *UseCase
	orderRepo *memOrderRepo
	itemRepo  *memItemRepo
	movRepo   *memMovRepo
	runner    *memTxRunner
}

// newFixture arma una sucursal con 10 kg de carne a costo 5.
func newFixture() *fixture {
	itemRepo := &memItemRepo{items: map[string]*entity.InventoryItem{
		"item-carne": {
			ID: "item-carne", LocationID: testLocation, Name: "Carne molida", Unit: "kg",
			Quantity: decimal.NewFromInt(10), CostPerUnit: decimal.NewFromInt(5),
		},
	}}
	movRepo := &memMovRepo{}
	orderRepo := newMemOrderRepo()
	runner := &memTxRunner{orderRepo: orderRepo, itemRepo: itemRepo, movRepo: movRepo}
	uc := NewUseCase(orderRepo, itemRepo, runner, appinventory.NewLedger())
	return &fixture{uc: uc, orderRepo: orderRepo, itemRepo: itemRepo, movRepo: movRepo, runner: runner}
}

func orderRequest() dto.CreatePurchaseOrderRequest {
	return dto.CreatePurchaseOrderRequest{
		LocationID: testLocation,
		Items: []dto.PurchaseOrderItemInput{{
			InventoryItemID: "item-carne",
			Quantity:        decimal.NewFromInt(10),
			UnitCost:        decimal.NewFromInt(7),
		}},
	}
}

func TestCreate_OrdenPendingConTotal(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Create(testUser, orderRequest())
	require.NoError(t, err)

	assert.Equal(t, entity.PurchaseOrderPending, resp.Status)
	assert.True(t, resp.Total.Equal(decimal.NewFromInt(70)), "total esperado 70, fue %s", resp.Total)
	assert.Contains(t, resp.OrderNumber, "OC-")

	// Crear la orden no toca el inventario.
	assert.True(t, f.itemRepo.items["item-carne"].Quantity.Equal(decimal.NewFromInt(10)))
	assert.Empty(t, f.movRepo.movements)
}

func TestCreate_SinLineas(t *testing.T) {
	f := newFixture()
	_, err := f.uc.Create(testUser, dto.CreatePurchaseOrderRequest{LocationID: testLocation})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_InsumoDeOtraSucursal(t *testing.T) {
	f := newFixture()
	f.itemRepo.items["item-carne"].LocationID = "loc-otra"
	_, err := f.uc.Create(testUser, orderRequest())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReceive_AplicaEntradaYCostoPromedio(t *testing.T) {
	f := newFixture()
	created, err := f.uc.Create(testUser, orderRequest())
	require.NoError(t, err)

	resp, err := f.uc.Receive(context.Background(), testUser, created.ID)
	require.NoError(t, err)

	assert.Equal(t, entity.PurchaseOrderReceived, resp.Status)
	require.NotNil(t, resp.ReceivedAt)

	// Stock: 10 + 10 = 20. Costo promedio: (10*5 + 10*7) / 20 = 6.
	item := f.itemRepo.items["item-carne"]
	assert.True(t, item.Quantity.Equal(decimal.NewFromInt(20)), "stock esperado 20, fue %s", item.Quantity)
	assert.True(t, item.CostPerUnit.Equal(decimal.NewFromInt(6)), "costo esperado 6, fue %s", item.CostPerUnit)

	// Queda rastro IN en el libro referenciando la orden.
	movs, err := f.movRepo.ListByReference(entity.ReferenceTypePurchase, created.ID)
	require.NoError(t, err)
	require.Len(t, movs, 1)
	assert.Equal(t, entity.MovementTypeIN, movs[0].Type)
	assert.Contains(t, movs[0].Notes, "Recepción de orden "+resp.OrderNumber)
}

func TestReceive_DosVecesEsConflicto(t *testing.T) {
	f := newFixture()
	created, err := f.uc.Create(testUser, orderRequest())
	require.NoError(t, err)

	_, err = f.uc.Receive(context.Background(), testUser, created.ID)
	require.NoError(t, err)

	_, err = f.uc.Receive(context.Background(), testUser, created.ID)
	assert.ErrorIs(t, err, domain.ErrConflict,
		"recibir dos veces no debe duplicar la entrada")

	// El stock sigue en 20, sin doble entrada.
	assert.True(t, f.itemRepo.items["item-carne"].Quantity.Equal(decimal.NewFromInt(20)))
}

func TestReceive_RollbackDejaLaOrdenPendiente(t *testing.T) {
	f := newFixture()
	created, err := f.uc.Create(testUser, orderRequest())
	require.NoError(t, err)

	// La transacción falla al confirmar: nada de lo escrito dentro sobrevive.
	f.runner.commitErr = errors.New("commit transaction: conexión perdida")
	_, err = f.uc.Receive(context.Background(), testUser, created.ID)
	require.Error(t, err)

	// La orden sigue PENDING junto con el stock y el costo originales.
	order, err := f.orderRepo.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PurchaseOrderPending, order.Status)
	assert.Nil(t, order.ReceivedAt)
	assert.True(t, f.itemRepo.items["item-carne"].Quantity.Equal(decimal.NewFromInt(10)))
	assert.True(t, f.itemRepo.items["item-carne"].CostPerUnit.Equal(decimal.NewFromInt(5)))
	assert.Empty(t, f.movRepo.movements)

	// Sin el fallo, la misma orden se recibe normalmente.
	f.runner.commitErr = nil
	resp, err := f.uc.Receive(context.Background(), testUser, created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PurchaseOrderReceived, resp.Status)
}

func TestCancel_SoloOrdenesPendientes(t *testing.T) {
	f := newFixture()
	created, err := f.uc.Create(testUser, orderRequest())
	require.NoError(t, err)

	resp, err := f.uc.Cancel(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PurchaseOrderCancelled, resp.Status)

	// Cancelada no se puede recibir.
	_, err = f.uc.Receive(context.Background(), testUser, created.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}
