package inventory

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gastrosmart/gastrosmart-api/internal/application/dto"
	"github.com/gastrosmart/gastrosmart-api/internal/domain"
	"github.com/gastrosmart/gastrosmart-api/internal/domain/entity"
	"github.com/gastrosmart/gastrosmart-api/internal/domain/repository"
)

type memItemRepo struct {
	items map[string]*entity.InventoryItem
}

func newMemItemRepo(items ...*entity.InventoryItem) *memItemRepo {
	m := &memItemRepo{items: map[string]*entity.InventoryItem{}}
	for _, it := range items {
		m.items[it.ID] = it
	}
	return m
}

func (m *memItemRepo) GetByID(id string) (*entity.InventoryItem, error) {
	it, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	cp := *it
	return &cp, nil
}

func (m *memItemRepo) GetForUpdate(id string) (*entity.InventoryItem, error) {
	return m.GetByID(id)
}

func (m *memItemRepo) List(locationID string, limit, offset int) ([]*entity.InventoryItem, error) {
	var out []*entity.InventoryItem
	for _, it := range m.items {
		if it.LocationID == locationID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (m *memItemRepo) ListCritical(locationID string) ([]*entity.InventoryItem, error) {
	var out []*entity.InventoryItem
	for _, it := range m.items {
		if it.LocationID == locationID && it.IsCritical() {
			out = append(out, it)
		}
	}
	return out, nil
}

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

func (m *memMovRepo) GetByID(id string) (*entity.InventoryMovement, error) { return nil, nil }

func (m *memMovRepo) ListByItem(itemID string, from, to *time.Time, limit, offset int) ([]*entity.InventoryMovement, error) {
	var out []*entity.InventoryMovement
	for _, mov := range m.movements {
		if mov.InventoryItemID == itemID {
			out = append(out, mov)
		}
	}
	return out, nil
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

// memTxRunner restaura el estado completo si fn falla, emulando el rollback.
type memTxRunner struct {
	itemRepo *memItemRepo
	movRepo  *memMovRepo
}

func (r *memTxRunner) Run(ctx context.Context, fn func(
	itemRepo repository.InventoryItemRepository,
	movRepo repository.InventoryMovementRepository,
) error) error {
	itemsSnap := map[string]*entity.InventoryItem{}
	for id, it := range r.itemRepo.items {
		cp := *it
		itemsSnap[id] = &cp
	}
	movSnap := append([]*entity.InventoryMovement(nil), r.movRepo.movements...)

	if err := fn(r.itemRepo, r.movRepo); err != nil {
		r.itemRepo.items = itemsSnap
		r.movRepo.movements = movSnap
		return err
	}
	return nil
}

const testUser = "user-1"

type movFixture struct {
	itemRepo *memItemRepo
	movRepo  *memMovRepo
}

func newMovUseCase(allowNegative bool, items ...*entity.InventoryItem) (*RegisterMovementUseCase, *movFixture) {
	f := &movFixture{itemRepo: newMemItemRepo(items...), movRepo: &memMovRepo{}}
	runner := &memTxRunner{itemRepo: f.itemRepo, movRepo: f.movRepo}
	return NewRegisterMovementUseCase(runner, f.itemRepo, NewLedger(), allowNegative), f
}

func harina(stock float64) *entity.InventoryItem {
	return &entity.InventoryItem{
		ID: "item-harina", LocationID: "loc-1", Name: "Harina", Unit: "kg",
		Quantity: decimal.NewFromFloat(stock), MinStock: decimal.NewFromInt(2),
		CostPerUnit: decimal.NewFromInt(3),
	}
}

func TestRegisterMovement_MermaDescuentaStock(t *testing.T) {
	uc, f := newMovUseCase(false, harina(10))

	resp, err := uc.RegisterMovement(context.Background(), testUser, dto.RegisterMovementRequest{
		InventoryItemID: "item-harina",
		Type:            entity.MovementTypeWASTE,
		Quantity:        decimal.NewFromInt(3),
		Notes:           "se humedeció el bulto",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.MovementTypeWASTE, resp.Type)
	assert.True(t, resp.Quantity.Equal(decimal.NewFromInt(-3)), "la merma se registra con delta negativo")
	assert.True(t, resp.ResultingQty.Equal(decimal.NewFromInt(7)))
	assert.True(t, f.itemRepo.items["item-harina"].Quantity.Equal(decimal.NewFromInt(7)))
	assert.Equal(t, entity.ReferenceTypeManual, resp.ReferenceType)
}

func TestRegisterMovement_EntradaSumaStock(t *testing.T) {
	uc, f := newMovUseCase(false, harina(10))

	resp, err := uc.RegisterMovement(context.Background(), testUser, dto.RegisterMovementRequest{
		InventoryItemID: "item-harina",
		Type:            entity.MovementTypeIN,
		Quantity:        decimal.NewFromInt(5),
	})
	require.NoError(t, err)
	assert.True(t, resp.ResultingQty.Equal(decimal.NewFromInt(15)))
	assert.True(t, f.itemRepo.items["item-harina"].Quantity.Equal(decimal.NewFromInt(15)))
}

func TestRegisterMovement_AjusteNegativoBloqueadoSinStock(t *testing.T) {
	uc, f := newMovUseCase(false, harina(2))

	_, err := uc.RegisterMovement(context.Background(), testUser, dto.RegisterMovementRequest{
		InventoryItemID: "item-harina",
		Type:            entity.MovementTypeADJUST,
		Quantity:        decimal.NewFromInt(-5),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Rollback: ni el stock ni el libro cambian.
	assert.True(t, f.itemRepo.items["item-harina"].Quantity.Equal(decimal.NewFromInt(2)))
	assert.Empty(t, f.movRepo.movements)
}

func TestRegisterMovement_AjusteNegativoPermitidoConPolitica(t *testing.T) {
	uc, f := newMovUseCase(true, harina(2))

	resp, err := uc.RegisterMovement(context.Background(), testUser, dto.RegisterMovementRequest{
		InventoryItemID: "item-harina",
		Type:            entity.MovementTypeADJUST,
		Quantity:        decimal.NewFromInt(-5),
	})
	require.NoError(t, err)
	assert.True(t, resp.ResultingQty.Equal(decimal.NewFromInt(-3)),
		"con la política laxa el stock puede quedar negativo")
	assert.True(t, f.itemRepo.items["item-harina"].Quantity.Equal(decimal.NewFromInt(-3)))
}

func TestRegisterMovement_TransferenciaMueveEntreSucursales(t *testing.T) {
	origen := harina(10)
	destino := &entity.InventoryItem{
		ID: "item-harina-sur", LocationID: "loc-2", Name: "Harina", Unit: "kg",
		Quantity: decimal.NewFromInt(1), MinStock: decimal.NewFromInt(2),
		CostPerUnit: decimal.NewFromInt(3),
	}
	uc, f := newMovUseCase(false, origen, destino)

	resp, err := uc.RegisterMovement(context.Background(), testUser, dto.RegisterMovementRequest{
		InventoryItemID:   "item-harina",
		ToInventoryItemID: "item-harina-sur",
		Type:              entity.MovementTypeTRANSFER,
		Quantity:          decimal.NewFromInt(4),
	})
	require.NoError(t, err)

	assert.True(t, f.itemRepo.items["item-harina"].Quantity.Equal(decimal.NewFromInt(6)))
	assert.True(t, f.itemRepo.items["item-harina-sur"].Quantity.Equal(decimal.NewFromInt(5)))

	// Ambas patas comparten la misma referencia para auditar el traslado completo.
	legs, err := f.movRepo.ListByReference(entity.ReferenceTypeManual, resp.ReferenceID)
	require.NoError(t, err)
	require.Len(t, legs, 2)
	assert.True(t, legs[0].Quantity.Add(legs[1].Quantity).IsZero(),
		"las dos patas del traslado deben sumar cero")
}

func TestRegisterMovement_TransferenciaAlMismoInsumo(t *testing.T) {
	uc, _ := newMovUseCase(false, harina(10))

	_, err := uc.RegisterMovement(context.Background(), testUser, dto.RegisterMovementRequest{
		InventoryItemID:   "item-harina",
		ToInventoryItemID: "item-harina",
		Type:              entity.MovementTypeTRANSFER,
		Quantity:          decimal.NewFromInt(4),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegisterMovement_TipoInvalido(t *testing.T) {
	uc, _ := newMovUseCase(false, harina(10))

	_, err := uc.RegisterMovement(context.Background(), testUser, dto.RegisterMovementRequest{
		InventoryItemID: "item-harina",
		Type:            "EVAPORACION",
		Quantity:        decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegisterMovement_InsumoInexistente(t *testing.T) {
	uc, _ := newMovUseCase(false, harina(10))

	_, err := uc.RegisterMovement(context.Background(), testUser, dto.RegisterMovementRequest{
		InventoryItemID: "item-fantasma",
		Type:            entity.MovementTypeIN,
		Quantity:        decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestItemUseCase_ListCritical(t *testing.T) {
	critical := harina(1) // min_stock 2
	ok := &entity.InventoryItem{
		ID: "item-azucar", LocationID: "loc-1", Name: "Azúcar", Unit: "kg",
		Quantity: decimal.NewFromInt(20), MinStock: decimal.NewFromInt(2),
	}
	uc := NewItemUseCase(newMemItemRepo(critical, ok))

	items, err := uc.ListCritical("loc-1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Harina", items[0].Name)
	assert.True(t, items[0].Critical)
}
