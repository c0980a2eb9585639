package recipes

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gastrosmart/gastrosmart-api/internal/application/dto"
	"github.com/gastrosmart/gastrosmart-api/internal/domain"
	"github.com/gastrosmart/gastrosmart-api/internal/domain/entity"
	"github.com/gastrosmart/gastrosmart-api/internal/domain/repository"
)

// UseCase administra el catálogo de recetas del menú. El costo de la receta es
// un snapshot derivado de sus ingredientes y el margen se recalcula en cada
// escritura que toque precio o ingredientes.
type UseCase struct {
	recipeRepo repository.RecipeRepository
	itemRepo   repository.InventoryItemRepository
	now        func() time.Time
}

func NewUseCase(recipeRepo repository.RecipeRepository, itemRepo repository.InventoryItemRepository) *UseCase {
	return &UseCase{recipeRepo: recipeRepo, itemRepo: itemRepo, now: time.Now}
}

// Create registra una receta nueva. El precio debe superar el costo derivado.
func (uc *UseCase) Create(in dto.CreateRecipeRequest) (*dto.RecipeResponse, error) {
	if in.Name == "" || in.Servings <= 0 || !in.Price.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	ingredients, cost, err := uc.buildIngredients(in.Ingredients)
	if err != nil {
		return nil, err
	}
	if cost.GreaterThan(decimal.Zero) && !in.Price.GreaterThan(cost) {
		return nil, domain.ErrPriceBelowCost
	}

	now := uc.now()
	recipe := &entity.Recipe{
		ID:          uuid.New().String(),
		LocationID:  in.LocationID,
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		Price:       in.Price,
		Cost:        cost,
		Margin:      margin(in.Price, cost),
		Servings:    in.Servings,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
		Ingredients: ingredients,
	}
	for i := range recipe.Ingredients {
		recipe.Ingredients[i].RecipeID = recipe.ID
	}
	if err := uc.recipeRepo.Create(recipe); err != nil {
		return nil, err
	}
	return toResponse(recipe), nil
}

// Update aplica el parche campo a campo y recalcula costo y margen.
func (uc *UseCase) Update(id string, in dto.UpdateRecipeRequest) (*dto.RecipeResponse, error) {
	recipe, err := uc.recipeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if recipe == nil {
		return nil, domain.ErrNotFound
	}

	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		recipe.Name = *in.Name
	}
	if in.Description != nil {
		recipe.Description = *in.Description
	}
	if in.Category != nil {
		recipe.Category = *in.Category
	}
	if in.Price != nil {
		if !in.Price.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		recipe.Price = *in.Price
	}
	if in.Servings != nil {
		if *in.Servings <= 0 {
			return nil, domain.ErrInvalidInput
		}
		recipe.Servings = *in.Servings
	}
	if in.Active != nil {
		recipe.Active = *in.Active
	}
	if in.Ingredients != nil {
		ingredients, cost, err := uc.buildIngredients(*in.Ingredients)
		if err != nil {
			return nil, err
		}
		for i := range ingredients {
			ingredients[i].RecipeID = recipe.ID
		}
		recipe.Ingredients = ingredients
		recipe.Cost = cost
	}
	if recipe.Cost.GreaterThan(decimal.Zero) && !recipe.Price.GreaterThan(recipe.Cost) {
		return nil, domain.ErrPriceBelowCost
	}
	recipe.Margin = margin(recipe.Price, recipe.Cost)
	recipe.UpdatedAt = uc.now()

	if err := uc.recipeRepo.Update(recipe); err != nil {
		return nil, err
	}
	return toResponse(recipe), nil
}

// GetByID devuelve la receta con sus ingredientes.
func (uc *UseCase) GetByID(id string) (*dto.RecipeResponse, error) {
	recipe, err := uc.recipeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if recipe == nil {
		return nil, domain.ErrNotFound
	}
	return toResponse(recipe), nil
}

// List devuelve el catálogo de la sucursal paginado.
func (uc *UseCase) List(locationID string, page dto.PageRequest) ([]dto.RecipeResponse, error) {
	recipes, err := uc.recipeRepo.List(locationID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RecipeResponse, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, *toResponse(r))
	}
	return out, nil
}

// Search busca por nombre sin distinguir acentos ni mayúsculas.
func (uc *UseCase) Search(locationID, name string, limit int) ([]dto.RecipeResponse, error) {
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	recipes, err := uc.recipeRepo.SearchByName(locationID, name, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RecipeResponse, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, *toResponse(r))
	}
	return out, nil
}

// Delete elimina la receta y sus ingredientes.
func (uc *UseCase) Delete(id string) error {
	recipe, err := uc.recipeRepo.GetByID(id)
	if err != nil {
		return err
	}
	if recipe == nil {
		return domain.ErrNotFound
	}
	return uc.recipeRepo.Delete(id)
}

// buildIngredients arma las líneas de receta resolviendo el costo snapshot:
// si la línea viene ligada a un insumo, manda el costo actual del inventario;
// si no, se respeta el costo enviado.
func (uc *UseCase) buildIngredients(inputs []dto.RecipeIngredientInput) ([]entity.RecipeIngredient, decimal.Decimal, error) {
	ingredients := make([]entity.RecipeIngredient, 0, len(inputs))
	totalCost := decimal.Zero
	for _, in := range inputs {
		if in.Name == "" || in.Quantity.LessThanOrEqual(decimal.Zero) {
			return nil, decimal.Zero, domain.ErrInvalidInput
		}
		cost := in.Cost
		if in.InventoryItemID != "" {
			item, err := uc.itemRepo.GetByID(in.InventoryItemID)
			if err != nil {
				return nil, decimal.Zero, err
			}
			if item == nil {
				return nil, decimal.Zero, domain.ErrNotFound
			}
			cost = item.CostPerUnit.Mul(in.Quantity)
		}
		ingredients = append(ingredients, entity.RecipeIngredient{
			ID:              uuid.New().String(),
			InventoryItemID: in.InventoryItemID,
			Name:            in.Name,
			Quantity:        in.Quantity,
			Unit:            in.Unit,
			Cost:            cost,
		})
		totalCost = totalCost.Add(cost)
	}
	return ingredients, totalCost, nil
}

// margin calcula (precio - costo) / precio * 100, redondeado a 2 decimales.
func margin(price, cost decimal.Decimal) decimal.Decimal {
	if !price.GreaterThan(decimal.Zero) {
		return decimal.Zero
	}
	return price.Sub(cost).Div(price).Mul(decimal.NewFromInt(100)).Round(2)
}

func toResponse(r *entity.Recipe) *dto.RecipeResponse {
	resp := &dto.RecipeResponse{
		ID:          r.ID,
		LocationID:  r.LocationID,
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		Price:       r.Price,
		Cost:        r.Cost,
		Margin:      r.Margin,
		Servings:    r.Servings,
		Active:      r.Active,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
		Ingredients: make([]dto.RecipeIngredientResponse, 0, len(r.Ingredients)),
	}
	for _, ing := range r.Ingredients {
		resp.Ingredients = append(resp.Ingredients, dto.RecipeIngredientResponse{
			ID:              ing.ID,
			InventoryItemID: ing.InventoryItemID,
			Name:            ing.Name,
			Quantity:        ing.Quantity,
			Unit:            ing.Unit,
			Cost:            ing.Cost,
		})
	}
	return resp
}
