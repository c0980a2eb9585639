package sales

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gastrosmart/gastrosmart-api/internal/application/dto"
	appinventory "github.com/gastrosmart/gastrosmart-api/internal/application/inventory"
	"github.com/gastrosmart/gastrosmart-api/internal/domain"
	"github.com/gastrosmart/gastrosmart-api/internal/domain/entity"
	"github.com/gastrosmart/gastrosmart-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

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
	failAfter int // si > 0, Create falla a partir de la llamada N (para probar rollback)
	calls     int
}

func (m *memMovRepo) Create(mov *entity.InventoryMovement) error {
	m.calls++
	if m.failAfter > 0 && m.calls >= m.failAfter {
		return errors.New("fallo simulado del libro de movimientos")
	}
	m.movements = append(m.movements, mov)
	return nil
}

func (m *memMovRepo) GetByID(id string) (*entity.InventoryMovement, error) {
	for _, mov := range m.movements {
		if mov.ID == id {
			return mov, nil
		}
	}
	return nil, nil
}

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

type memSaleRepo struct {
	sales map[string]*entity.Sale
}

func newMemSaleRepo() *memSaleRepo {
	return &memSaleRepo{sales: map[string]*entity.Sale{}}
}

func (m *memSaleRepo) Create(sale *entity.Sale) error {
	cp := *sale
	cp.Items = nil
	m.sales[sale.ID] = &cp
	return nil
}

func (m *memSaleRepo) CreateItem(item *entity.SaleItem) error {
	sale, ok := m.sales[item.SaleID]
	if !ok {
		return domain.ErrNotFound
	}
	sale.Items = append(sale.Items, *item)
	return nil
}

func (m *memSaleRepo) GetByID(id string) (*entity.Sale, error) {
	sale, ok := m.sales[id]
	if !ok {
		return nil, nil
	}
	return sale, nil
}

func (m *memSaleRepo) List(locationID string, from, to *time.Time, limit, offset int) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range m.sales {
		if s.LocationID == locationID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *memSaleRepo) Delete(id string) error {
	if _, ok := m.sales[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.sales, id)
	return nil
}

func (m *memSaleRepo) SumCompletedTotals(userID, locationID string, from, to time.Time) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, s := range m.sales {
		if s.WaiterID == userID && s.LocationID == locationID && s.Status == entity.SaleStatusCompleted {
			total = total.Add(s.Total)
		}
	}
	return total, nil
}

type memCashRepo struct {
	open *entity.CashSession
}

func (m *memCashRepo) GetOpen(userID, locationID string) (*entity.CashSession, error) {
	if m.open != nil && m.open.UserID == userID && m.open.LocationID == locationID {
		return m.open, nil
	}
	return nil, nil
}

func (m *memCashRepo) GetByID(id string) (*entity.CashSession, error) {
	if m.open != nil && m.open.ID == id {
		return m.open, nil
	}
	return nil, nil
}

func (m *memCashRepo) Create(session *entity.CashSession) error { m.open = session; return nil }
func (m *memCashRepo) Update(session *entity.CashSession) error { return nil }
func (m *memCashRepo) List(locationID string, limit, offset int) ([]*entity.CashSession, error) {
	return nil, nil
}

type memRecipeRepo struct {
	recipes map[string]*entity.Recipe
}

func newMemRecipeRepo(recipes ...*entity.Recipe) *memRecipeRepo {
	m := &memRecipeRepo{recipes: map[string]*entity.Recipe{}}
	for _, r := range recipes {
		m.recipes[r.ID] = r
	}
	return m
}

func (m *memRecipeRepo) GetByID(id string) (*entity.Recipe, error) {
	r, ok := m.recipes[id]
	if !ok {
		return nil, nil
	}
	return r, nil
}

func (m *memRecipeRepo) List(locationID string, limit, offset int) ([]*entity.Recipe, error) {
	return nil, nil
}

func (m *memRecipeRepo) SearchByName(locationID, name string, limit int) ([]*entity.Recipe, error) {
	return nil, nil
}

func (m *memRecipeRepo) Create(recipe *entity.Recipe) error { m.recipes[recipe.ID] = recipe; return nil }
func (m *memRecipeRepo) Update(recipe *entity.Recipe) error { m.recipes[recipe.ID] = recipe; return nil }
func (m *memRecipeRepo) Delete(id string) error             { delete(m.recipes, id); return nil }

// memTxRunner emula la semántica transaccional: toma un snapshot del estado
// antes de ejecutar fn y lo restaura completo si fn retorna error.
type memTxRunner struct {
	saleRepo *memSaleRepo
	itemRepo *memItemRepo
	movRepo  *memMovRepo
}

func (r *memTxRunner) RunSale(ctx context.Context, fn func(
	saleRepo repository.SaleRepository,
	itemRepo repository.InventoryItemRepository,
	movRepo repository.InventoryMovementRepository,
) error) error {
	salesSnap := map[string]*entity.Sale{}
	for id, s := range r.saleRepo.sales {
		cp := *s
		cp.Items = append([]entity.SaleItem(nil), s.Items...)
		salesSnap[id] = &cp
	}
	itemsSnap := map[string]*entity.InventoryItem{}
	for id, it := range r.itemRepo.items {
		cp := *it
		itemsSnap[id] = &cp
	}
	movSnap := append([]*entity.InventoryMovement(nil), r.movRepo.movements...)

	if err := fn(r.saleRepo, r.itemRepo, r.movRepo); err != nil {
		r.saleRepo.sales = salesSnap
		r.itemRepo.items = itemsSnap
		r.movRepo.movements = movSnap
		return err
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenario base
// ──────────────────────────────────────────────────────────────────────────────

const (
	testLocation = "loc-1"
	testUser     = "user-1"
)

// martes 12:00, dentro del horario 8-22 con todos los días abiertos.
var tuesdayNoon = time.Date(2025, 3, 4, 12, 0, 0, 0, time.UTC)

func defaultConfig() Config {
	return Config{
		OpenHour:     8,
		CloseHour:    22,
		BusinessDays: []int{0, 1, 2, 3, 4, 5, 6},
	}
}

// fixture arma una sucursal con dos insumos y una receta "Bandeja Paisa":
// un lote rinde 4 porciones y consume 2 kg de carne y 1 kg de frijoles.
type fixture struct {
	itemRepo   *memItemRepo
	movRepo    *memMovRepo
	saleRepo   *memSaleRepo
	cashRepo   *memCashRepo
	recipeRepo *memRecipeRepo
	txRunner   *memTxRunner
	recipe     *entity.Recipe
	carne      *entity.InventoryItem
	frijoles   *entity.InventoryItem
}

func newFixture(carneStock, frijolStock float64) *fixture {
	carne := &entity.InventoryItem{
		ID: "item-carne", LocationID: testLocation, Name: "Carne molida",
		Quantity: decimal.NewFromFloat(carneStock), Unit: "kg",
		MinStock: decimal.NewFromInt(1), CostPerUnit: decimal.NewFromInt(12),
	}
	frijoles := &entity.InventoryItem{
		ID: "item-frijol", LocationID: testLocation, Name: "Frijoles",
		Quantity: decimal.NewFromFloat(frijolStock), Unit: "kg",
		MinStock: decimal.NewFromInt(1), CostPerUnit: decimal.NewFromInt(6),
	}
	recipe := &entity.Recipe{
		ID: "recipe-bandeja", LocationID: testLocation, Name: "Bandeja Paisa",
		Price: decimal.NewFromInt(30), Servings: 4, Active: true,
		Ingredients: []entity.RecipeIngredient{
			{ID: uuid.New().String(), RecipeID: "recipe-bandeja", InventoryItemID: "item-carne",
				Name: "Carne molida", Quantity: decimal.NewFromInt(2), Unit: "kg"},
			{ID: uuid.New().String(), RecipeID: "recipe-bandeja", InventoryItemID: "item-frijol",
				Name: "Frijoles", Quantity: decimal.NewFromInt(1), Unit: "kg"},
		},
	}
	f := &fixture{
		itemRepo:   newMemItemRepo(carne, frijoles),
		movRepo:    &memMovRepo{},
		saleRepo:   newMemSaleRepo(),
		cashRepo:   &memCashRepo{},
		recipeRepo: newMemRecipeRepo(recipe),
		recipe:     recipe,
		carne:      carne,
		frijoles:   frijoles,
	}
	f.txRunner = &memTxRunner{saleRepo: f.saleRepo, itemRepo: f.itemRepo, movRepo: f.movRepo}
	f.cashRepo.open = &entity.CashSession{
		ID: "session-1", LocationID: testLocation, UserID: testUser,
		State: entity.CashSessionOpen, OpeningAmount: decimal.NewFromInt(100),
		OpenedAt: tuesdayNoon.Add(-2 * time.Hour),
	}
	return f
}

func (f *fixture) createUseCase(cfg Config) *CreateSaleUseCase {
	uc := NewCreateSaleUseCase(f.txRunner, appinventory.NewLedger(), f.cashRepo, f.recipeRepo, f.itemRepo, cfg)
	uc.now = func() time.Time { return tuesdayNoon }
	return uc
}

// saleRequest venta de 2 bandejas paisas a 30 cada una.
func saleRequest() dto.CreateSaleRequest {
	return dto.CreateSaleRequest{
		LocationID: testLocation,
		SaleType:   "LOCAL",
		Items: []dto.CreateSaleItemRequest{{
			RecipeID:  "recipe-bandeja",
			ItemName:  "Bandeja Paisa",
			Quantity:  2,
			UnitPrice: decimal.NewFromInt(30),
			Total:     decimal.NewFromInt(60),
		}},
		Subtotal:      decimal.NewFromInt(60),
		Tax:           decimal.Zero,
		Total:         decimal.NewFromInt(60),
		PaymentMethod: "CASH",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Casos
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateSale_DescuentaInventarioPorReceta(t *testing.T) {
	f := newFixture(10, 10)
	uc := f.createUseCase(defaultConfig())

	resp, err := uc.CreateSale(context.Background(), testUser, saleRequest())
	require.NoError(t, err)
	require.NotNil(t, resp)

	// 2 porciones de una receta de 4: carne 2*2/4 = 1 kg, frijoles 1*2/4 = 0.5 kg
	assert.True(t, f.itemRepo.items["item-carne"].Quantity.Equal(decimal.NewFromInt(9)),
		"carne debe quedar en 9, quedó en %s", f.itemRepo.items["item-carne"].Quantity)
	assert.True(t, f.itemRepo.items["item-frijol"].Quantity.Equal(decimal.NewFromFloat(9.5)),
		"frijoles deben quedar en 9.5, quedaron en %s", f.itemRepo.items["item-frijol"].Quantity)

	// Venta persistida con el mesero del token y número con prefijo por fecha.
	assert.Equal(t, testUser, resp.WaiterID)
	assert.Equal(t, entity.SaleStatusCompleted, resp.Status)
	assert.Contains(t, resp.SaleNumber, "V-20250304-")
	assert.Len(t, resp.Items, 1)

	// El libro registra un movimiento OUT por ingrediente, referenciando la venta.
	movs, err := f.movRepo.ListByReference(entity.ReferenceTypeSale, resp.ID)
	require.NoError(t, err)
	require.Len(t, movs, 2)
	for _, mov := range movs {
		assert.Equal(t, entity.MovementTypeOUT, mov.Type)
		assert.True(t, mov.Quantity.LessThan(decimal.Zero), "el delta de venta debe ser negativo")
		assert.Equal(t, testUser, mov.UserID)
	}
}

func TestCreateSale_SinCajaAbierta(t *testing.T) {
	f := newFixture(10, 10)
	f.cashRepo.open = nil
	uc := f.createUseCase(defaultConfig())

	_, err := uc.CreateSale(context.Background(), testUser, saleRequest())
	assert.ErrorIs(t, err, domain.ErrNoOpenRegister)
	assert.Empty(t, f.saleRepo.sales, "no debe persistirse nada")
}

func TestCreateSale_FueraDeHorario(t *testing.T) {
	f := newFixture(10, 10)
	cfg := defaultConfig()
	cfg.OpenHour = 14 // el fixture corre a las 12:00
	uc := f.createUseCase(cfg)

	_, err := uc.CreateSale(context.Background(), testUser, saleRequest())
	var closed *domain.BusinessClosedError
	require.ErrorAs(t, err, &closed)
	assert.False(t, closed.DayClosed)
	assert.Equal(t, 14, closed.OpenHour)
}

func TestCreateSale_DiaCerrado(t *testing.T) {
	f := newFixture(10, 10)
	cfg := defaultConfig()
	cfg.BusinessDays = []int{0, 2, 3, 4, 5} // martes (índice 1) cerrado
	uc := f.createUseCase(cfg)

	_, err := uc.CreateSale(context.Background(), testUser, saleRequest())
	var closed *domain.BusinessClosedError
	require.ErrorAs(t, err, &closed)
	assert.True(t, closed.DayClosed)
	assert.Equal(t, "Martes", closed.Weekday)
}

func TestCreateSale_VentaVacia(t *testing.T) {
	f := newFixture(10, 10)
	uc := f.createUseCase(defaultConfig())

	req := saleRequest()
	req.Items = nil
	_, err := uc.CreateSale(context.Background(), testUser, req)
	assert.ErrorIs(t, err, domain.ErrEmptySale)
}

func TestCreateSale_ItemInvalido(t *testing.T) {
	f := newFixture(10, 10)
	uc := f.createUseCase(defaultConfig())

	req := saleRequest()
	req.Items[0].Quantity = 0
	_, err := uc.CreateSale(context.Background(), testUser, req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateSale_StockInsuficienteAgregaTodosLosFaltantes(t *testing.T) {
	// Carne y frijoles cortos a la vez: el error debe nombrar ambos, no solo el primero.
	f := newFixture(0.5, 0.2)
	uc := f.createUseCase(defaultConfig())

	_, err := uc.CreateSale(context.Background(), testUser, saleRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	var shortage *domain.InsufficientStockError
	require.ErrorAs(t, err, &shortage)
	require.Len(t, shortage.Shortages, 2)
	assert.Contains(t, err.Error(), "Carne molida")
	assert.Contains(t, err.Error(), "Frijoles")

	// Sin escritura alguna: el rechazo ocurre antes de la transacción.
	assert.Empty(t, f.saleRepo.sales)
	assert.Empty(t, f.movRepo.movements)
	assert.True(t, f.itemRepo.items["item-carne"].Quantity.Equal(decimal.NewFromFloat(0.5)))
}

func TestCreateSale_SubtotalInconsistente(t *testing.T) {
	f := newFixture(10, 10)
	uc := f.createUseCase(defaultConfig())

	req := saleRequest()
	req.Subtotal = decimal.NewFromInt(55) // los items suman 60
	_, err := uc.CreateSale(context.Background(), testUser, req)

	var mismatch *domain.TotalMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "subtotal", mismatch.Field)
}

func TestCreateSale_TotalInconsistenteConDescuentoEImpuesto(t *testing.T) {
	f := newFixture(10, 10)
	uc := f.createUseCase(defaultConfig())

	req := saleRequest()
	req.DiscountAmount = decimal.NewFromInt(10)
	req.Tax = decimal.NewFromInt(5)
	req.Total = decimal.NewFromInt(60) // debería ser 60 - 10 + 5 = 55
	_, err := uc.CreateSale(context.Background(), testUser, req)

	var mismatch *domain.TotalMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "total", mismatch.Field)
}

func TestCreateSale_ToleranciaDeCentavo(t *testing.T) {
	f := newFixture(10, 10)
	uc := f.createUseCase(defaultConfig())

	req := saleRequest()
	req.Subtotal = decimal.NewFromFloat(60.01) // dentro de la tolerancia de 0.01
	req.Total = decimal.NewFromFloat(60.01)
	_, err := uc.CreateSale(context.Background(), testUser, req)
	assert.NoError(t, err)
}

func TestCreateSale_RollbackCompletoSiFallaUnDelta(t *testing.T) {
	f := newFixture(10, 10)
	// El primer movimiento entra, el segundo falla: nada debe quedar escrito.
	f.movRepo.failAfter = 2
	uc := f.createUseCase(defaultConfig())

	_, err := uc.CreateSale(context.Background(), testUser, saleRequest())
	require.Error(t, err)

	assert.Empty(t, f.saleRepo.sales, "la venta no debe sobrevivir al rollback")
	assert.Empty(t, f.movRepo.movements, "los movimientos no deben sobrevivir al rollback")
	assert.True(t, f.itemRepo.items["item-carne"].Quantity.Equal(decimal.NewFromInt(10)),
		"el stock de carne debe volver a 10")
	assert.True(t, f.itemRepo.items["item-frijol"].Quantity.Equal(decimal.NewFromInt(10)),
		"el stock de frijoles debe volver a 10")
}

func TestCreateSale_ItemSinRecetaNoTocaInventario(t *testing.T) {
	f := newFixture(10, 10)
	uc := f.createUseCase(defaultConfig())

	req := dto.CreateSaleRequest{
		LocationID: testLocation,
		SaleType:   "LOCAL",
		Items: []dto.CreateSaleItemRequest{{
			ItemName:  "Gaseosa",
			Quantity:  3,
			UnitPrice: decimal.NewFromInt(2),
			Total:     decimal.NewFromInt(6),
		}},
		Subtotal:      decimal.NewFromInt(6),
		Total:         decimal.NewFromInt(6),
		PaymentMethod: "CASH",
	}
	resp, err := uc.CreateSale(context.Background(), testUser, req)
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Empty(t, f.movRepo.movements, "sin receta no hay consumo de inventario")
	assert.True(t, f.itemRepo.items["item-carne"].Quantity.Equal(decimal.NewFromInt(10)))
}

func TestCreateSale_RecetaInexistente(t *testing.T) {
	f := newFixture(10, 10)
	uc := f.createUseCase(defaultConfig())

	req := saleRequest()
	req.Items[0].RecipeID = "recipe-fantasma"
	_, err := uc.CreateSale(context.Background(), testUser, req)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// doubleLineRequest dos líneas de la misma receta: cada una consume 1 kg de carne.
// Individualmente ambas pasan la compuerta de stock con 1.4 kg disponibles; el
// descuento acumulado dentro de la transacción es el que cruza el cero.
func doubleLineRequest() dto.CreateSaleRequest {
	line := dto.CreateSaleItemRequest{
		RecipeID:  "recipe-bandeja",
		ItemName:  "Bandeja Paisa",
		Quantity:  2,
		UnitPrice: decimal.NewFromInt(30),
		Total:     decimal.NewFromInt(60),
	}
	return dto.CreateSaleRequest{
		LocationID:    testLocation,
		SaleType:      "LOCAL",
		Items:         []dto.CreateSaleItemRequest{line, line},
		Subtotal:      decimal.NewFromInt(120),
		Tax:           decimal.Zero,
		Total:         decimal.NewFromInt(120),
		PaymentMethod: "CASH",
	}
}

func TestCreateSale_AbortaSiElDescuentoCruzaElCero(t *testing.T) {
	f := newFixture(1.4, 10)
	uc := f.createUseCase(defaultConfig())

	_, err := uc.CreateSale(context.Background(), testUser, doubleLineRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	var shortage *domain.InsufficientStockError
	require.ErrorAs(t, err, &shortage)
	require.Len(t, shortage.Shortages, 1)
	assert.Equal(t, "Carne molida", shortage.Shortages[0].ItemName)

	// Rollback completo: ni la venta ni el primer descuento sobreviven.
	assert.Empty(t, f.saleRepo.sales)
	assert.Empty(t, f.movRepo.movements)
	assert.True(t, f.itemRepo.items["item-carne"].Quantity.Equal(decimal.NewFromFloat(1.4)),
		"la carne debe volver a 1.4, quedó en %s", f.itemRepo.items["item-carne"].Quantity)
	assert.True(t, f.itemRepo.items["item-frijol"].Quantity.Equal(decimal.NewFromInt(10)))
}

func TestCreateSale_StockNegativoPermitidoPorPolitica(t *testing.T) {
	f := newFixture(1.4, 10)
	cfg := defaultConfig()
	cfg.AllowNegativeStock = true
	uc := f.createUseCase(cfg)

	resp, err := uc.CreateSale(context.Background(), testUser, doubleLineRequest())
	require.NoError(t, err)
	require.NotNil(t, resp)

	// La venta se confirma y la existencia queda en negativo: 1.4 - 1 - 1 = -0.6.
	assert.Equal(t, entity.SaleStatusCompleted, resp.Status)
	assert.True(t, f.itemRepo.items["item-carne"].Quantity.Equal(decimal.NewFromFloat(-0.6)),
		"la carne debe quedar en -0.6, quedó en %s", f.itemRepo.items["item-carne"].Quantity)
	assert.True(t, f.itemRepo.items["item-frijol"].Quantity.Equal(decimal.NewFromInt(9)))

	// El libro registra los cuatro descuentos (dos ingredientes por línea).
	movs, err := f.movRepo.ListByReference(entity.ReferenceTypeSale, resp.ID)
	require.NoError(t, err)
	assert.Len(t, movs, 4)
}
