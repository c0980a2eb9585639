package recipes

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gastrosmart/gastrosmart-api/internal/application/dto"
	"github.com/gastrosmart/gastrosmart-api/internal/domain"
	"github.com/gastrosmart/gastrosmart-api/internal/domain/entity"
)

type memRecipeRepo struct {
	recipes map[string]*entity.Recipe
}

func newMemRecipeRepo() *memRecipeRepo {
	return &memRecipeRepo{recipes: map[string]*entity.Recipe{}}
}

func (m *memRecipeRepo) GetByID(id string) (*entity.Recipe, error) {
	r, ok := m.recipes[id]
	if !ok {
		return nil, nil
	}
	return r, nil
}

func (m *memRecipeRepo) List(locationID string, limit, offset int) ([]*entity.Recipe, error) {
	var out []*entity.Recipe
	for _, r := range m.recipes {
		if r.LocationID == locationID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memRecipeRepo) SearchByName(locationID, name string, limit int) ([]*entity.Recipe, error) {
	return nil, nil
}

func (m *memRecipeRepo) Create(recipe *entity.Recipe) error { m.recipes[recipe.ID] = recipe; return nil }
func (m *memRecipeRepo) Update(recipe *entity.Recipe) error { m.recipes[recipe.ID] = recipe; return nil }
func (m *memRecipeRepo) Delete(id string) error             { delete(m.recipes, id); return nil }

// stubItemRepo devuelve insumos con costo fijo para el snapshot de recetas.
type stubItemRepo struct {
	items map[string]*entity.InventoryItem
}

func (s *stubItemRepo) GetByID(id string) (*entity.InventoryItem, error) {
	return s.items[id], nil
}
func (s *stubItemRepo) GetForUpdate(id string) (*entity.InventoryItem, error) { return s.items[id], nil }
func (s *stubItemRepo) List(string, int, int) ([]*entity.InventoryItem, error) {
	return nil, nil
}
func (s *stubItemRepo) ListCritical(string) ([]*entity.InventoryItem, error) { return nil, nil }
func (s *stubItemRepo) Create(*entity.InventoryItem) error                   { return nil }
func (s *stubItemRepo) UpdateQuantity(string, decimal.Decimal, time.Time) error {
	return nil
}
func (s *stubItemRepo) UpdateCost(string, decimal.Decimal) error { return nil }

func newTestUseCase() *UseCase {
	items := &stubItemRepo{items: map[string]*entity.InventoryItem{
		"item-carne": {ID: "item-carne", Name: "Carne molida", CostPerUnit: decimal.NewFromInt(12)},
		"item-arroz": {ID: "item-arroz", Name: "Arroz", CostPerUnit: decimal.NewFromInt(2)},
	}}
	return NewUseCase(newMemRecipeRepo(), items)
}

func createRequest() dto.CreateRecipeRequest {
	return dto.CreateRecipeRequest{
		LocationID: "loc-1",
		Name:       "Bandeja Paisa",
		Category:   "Platos fuertes",
		Price:      decimal.NewFromInt(40),
		Servings:   4,
		Ingredients: []dto.RecipeIngredientInput{
			// ligado al inventario: costo = 12 * 2 = 24
			{InventoryItemID: "item-carne", Name: "Carne molida", Quantity: decimal.NewFromInt(2), Unit: "kg"},
			// sin ligar: se respeta el costo enviado
			{Name: "Hogao casero", Quantity: decimal.NewFromInt(1), Unit: "l", Cost: decimal.NewFromInt(3)},
		},
	}
}

func TestCreate_CalculaCostoYMargen(t *testing.T) {
	uc := newTestUseCase()

	resp, err := uc.Create(createRequest())
	require.NoError(t, err)

	// Costo: 24 (carne desde inventario) + 3 (costo manual) = 27.
	assert.True(t, resp.Cost.Equal(decimal.NewFromInt(27)), "costo esperado 27, fue %s", resp.Cost)
	// Margen: (40 - 27) / 40 * 100 = 32.5
	assert.True(t, resp.Margin.Equal(decimal.NewFromFloat(32.5)), "margen esperado 32.5, fue %s", resp.Margin)
	assert.True(t, resp.Active)
	require.Len(t, resp.Ingredients, 2)
	assert.True(t, resp.Ingredients[0].Cost.Equal(decimal.NewFromInt(24)),
		"el costo del ingrediente ligado sale del inventario")
}

func TestCreate_PrecioPorDebajoDelCosto(t *testing.T) {
	uc := newTestUseCase()

	req := createRequest()
	req.Price = decimal.NewFromInt(20) // costo 27
	_, err := uc.Create(req)
	assert.ErrorIs(t, err, domain.ErrPriceBelowCost)
}

func TestCreate_EntradaInvalida(t *testing.T) {
	uc := newTestUseCase()

	req := createRequest()
	req.Servings = 0
	_, err := uc.Create(req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	req = createRequest()
	req.Ingredients[0].Quantity = decimal.Zero
	_, err = uc.Create(req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_IngredienteLigadoInexistente(t *testing.T) {
	uc := newTestUseCase()

	req := createRequest()
	req.Ingredients[0].InventoryItemID = "item-fantasma"
	_, err := uc.Create(req)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdate_RecalculaMargenAlCambiarPrecio(t *testing.T) {
	uc := newTestUseCase()
	created, err := uc.Create(createRequest())
	require.NoError(t, err)

	newPrice := decimal.NewFromInt(54)
	resp, err := uc.Update(created.ID, dto.UpdateRecipeRequest{Price: &newPrice})
	require.NoError(t, err)

	// Margen: (54 - 27) / 54 * 100 = 50
	assert.True(t, resp.Margin.Equal(decimal.NewFromInt(50)), "margen esperado 50, fue %s", resp.Margin)
}

func TestUpdate_RechazaPrecioBajoCostoVigente(t *testing.T) {
	uc := newTestUseCase()
	created, err := uc.Create(createRequest())
	require.NoError(t, err)

	newPrice := decimal.NewFromInt(10)
	_, err = uc.Update(created.ID, dto.UpdateRecipeRequest{Price: &newPrice})
	assert.ErrorIs(t, err, domain.ErrPriceBelowCost)
}

func TestUpdate_ReemplazaIngredientesYRecalculaCosto(t *testing.T) {
	uc := newTestUseCase()
	created, err := uc.Create(createRequest())
	require.NoError(t, err)

	newIngredients := []dto.RecipeIngredientInput{
		{InventoryItemID: "item-arroz", Name: "Arroz", Quantity: decimal.NewFromInt(3), Unit: "kg"},
	}
	resp, err := uc.Update(created.ID, dto.UpdateRecipeRequest{Ingredients: &newIngredients})
	require.NoError(t, err)

	// Costo nuevo: 2 * 3 = 6.
	assert.True(t, resp.Cost.Equal(decimal.NewFromInt(6)), "costo esperado 6, fue %s", resp.Cost)
	require.Len(t, resp.Ingredients, 1)
	assert.Equal(t, "Arroz", resp.Ingredients[0].Name)
}

func TestUpdate_RecetaInexistente(t *testing.T) {
	uc := newTestUseCase()
	name := "Otra"
	_, err := uc.Update("recipe-fantasma", dto.UpdateRecipeRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete_EliminaLaReceta(t *testing.T) {
	uc := newTestUseCase()
	created, err := uc.Create(createRequest())
	require.NoError(t, err)

	require.NoError(t, uc.Delete(created.ID))
	_, err = uc.GetByID(created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
