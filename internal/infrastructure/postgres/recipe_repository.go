package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/jackc/pgx/v5"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/gastrosmart/gastrosmart-api/internal/domain/entity"
	"github.com/gastrosmart/gastrosmart-api/internal/domain/repository"
)

var _ repository.RecipeRepository = (*RecipeRepo)(nil)

// RecipeRepo implementación de RecipeRepository sobre PostgreSQL (usable con pool o tx).
type RecipeRepo struct {
	q Querier
}

// NewRecipeRepository construye el adaptador de recetas. Pasar pool o tx (Querier).
func NewRecipeRepository(q Querier) *RecipeRepo {
	return &RecipeRepo{q: q}
}

const recipeColumns = `id, location_id, name, description, category, price, cost, margin, servings, active, created_at, updated_at`

// GetByID obtiene la receta con sus ingredientes cargados, o nil si no existe.
func (r *RecipeRepo) GetByID(id string) (*entity.Recipe, error) {
	query := `SELECT ` + recipeColumns + ` FROM recipes WHERE id = $1`
	recipe, err := scanRecipe(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get recipe: %w", err)
	}
	ingredients, err := r.listIngredients(recipe.ID)
	if err != nil {
		return nil, err
	}
	recipe.Ingredients = ingredients
	return recipe, nil
}

// List lista las recetas de una sucursal ordenadas por nombre (sin ingredientes).
func (r *RecipeRepo) List(locationID string, limit, offset int) ([]*entity.Recipe, error) {
	query := `
		SELECT ` + recipeColumns + `
		FROM recipes WHERE location_id = $1
		ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, locationID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	defer rows.Close()
	return scanRecipes(rows)
}

// SearchByName busca por nombre sin distinguir acentos ni mayúsculas.
// La normalización se hace en Go para no depender de extensiones de la DB.
func (r *RecipeRepo) SearchByName(locationID, name string, limit int) ([]*entity.Recipe, error) {
	query := `
		SELECT ` + recipeColumns + `
		FROM recipes WHERE location_id = $1
		ORDER BY name`
	rows, err := r.q.Query(context.Background(), query, locationID)
	if err != nil {
		return nil, fmt.Errorf("search recipes: %w", err)
	}
	defer rows.Close()
	all, err := scanRecipes(rows)
	if err != nil {
		return nil, err
	}
	needle := normalizeText(name)
	var list []*entity.Recipe
	for _, recipe := range all {
		if strings.Contains(normalizeText(recipe.Name), needle) {
			list = append(list, recipe)
			if len(list) >= limit {
				break
			}
		}
	}
	return list, nil
}

// normalizeText pasa a minúsculas y quita diacríticos ("Café" -> "cafe").
// El transformer se construye por llamada: no es seguro para uso concurrente.
func normalizeText(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}
	return out
}

// Create persiste la receta con sus ingredientes.
func (r *RecipeRepo) Create(recipe *entity.Recipe) error {
	query := `
		INSERT INTO recipes (` + recipeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		recipe.ID, recipe.LocationID, recipe.Name, recipe.Description, recipe.Category,
		recipe.Price, recipe.Cost, recipe.Margin, recipe.Servings, recipe.Active,
		recipe.CreatedAt, recipe.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create recipe: %w", err)
	}
	return r.insertIngredients(recipe.ID, recipe.Ingredients)
}

// Update reemplaza la cabecera y el conjunto completo de ingredientes.
func (r *RecipeRepo) Update(recipe *entity.Recipe) error {
	query := `
		UPDATE recipes
		SET name = $2, description = $3, category = $4, price = $5, cost = $6,
		    margin = $7, servings = $8, active = $9, updated_at = $10
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		recipe.ID, recipe.Name, recipe.Description, recipe.Category,
		recipe.Price, recipe.Cost, recipe.Margin, recipe.Servings, recipe.Active,
		recipe.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update recipe: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update recipe: receta %s no existe", recipe.ID)
	}
	if _, err := r.q.Exec(context.Background(), `DELETE FROM recipe_ingredients WHERE recipe_id = $1`, recipe.ID); err != nil {
		return fmt.Errorf("replace recipe ingredients: %w", err)
	}
	return r.insertIngredients(recipe.ID, recipe.Ingredients)
}

// Delete elimina la receta y sus ingredientes.
func (r *RecipeRepo) Delete(id string) error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM recipe_ingredients WHERE recipe_id = $1`, id); err != nil {
		return fmt.Errorf("delete recipe ingredients: %w", err)
	}
	tag, err := r.q.Exec(context.Background(), `DELETE FROM recipes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete recipe: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete recipe: receta %s no existe", id)
	}
	return nil
}

func (r *RecipeRepo) insertIngredients(recipeID string, ingredients []entity.RecipeIngredient) error {
	query := `
		INSERT INTO recipe_ingredients (id, recipe_id, inventory_item_id, name, quantity, unit, cost)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	for _, ing := range ingredients {
		_, err := r.q.Exec(context.Background(), query,
			ing.ID, recipeID, nullable(ing.InventoryItemID), ing.Name,
			ing.Quantity, ing.Unit, ing.Cost,
		)
		if err != nil {
			return fmt.Errorf("insert recipe ingredient: %w", err)
		}
	}
	return nil
}

func (r *RecipeRepo) listIngredients(recipeID string) ([]entity.RecipeIngredient, error) {
	query := `
		SELECT id, recipe_id, inventory_item_id, name, quantity, unit, cost
		FROM recipe_ingredients WHERE recipe_id = $1 ORDER BY name`
	rows, err := r.q.Query(context.Background(), query, recipeID)
	if err != nil {
		return nil, fmt.Errorf("list recipe ingredients: %w", err)
	}
	defer rows.Close()
	var ingredients []entity.RecipeIngredient
	for rows.Next() {
		var ing entity.RecipeIngredient
		var itemID *string
		if err := rows.Scan(&ing.ID, &ing.RecipeID, &itemID, &ing.Name,
			&ing.Quantity, &ing.Unit, &ing.Cost); err != nil {
			return nil, fmt.Errorf("scan recipe ingredient: %w", err)
		}
		if itemID != nil {
			ing.InventoryItemID = *itemID
		}
		ingredients = append(ingredients, ing)
	}
	return ingredients, rows.Err()
}

func scanRecipe(row pgx.Row) (*entity.Recipe, error) {
	var rcp entity.Recipe
	err := row.Scan(
		&rcp.ID, &rcp.LocationID, &rcp.Name, &rcp.Description, &rcp.Category,
		&rcp.Price, &rcp.Cost, &rcp.Margin, &rcp.Servings, &rcp.Active,
		&rcp.CreatedAt, &rcp.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rcp, nil
}

func scanRecipes(rows pgx.Rows) ([]*entity.Recipe, error) {
	var list []*entity.Recipe
	for rows.Next() {
		recipe, err := scanRecipe(rows)
		if err != nil {
			return nil, fmt.Errorf("scan recipe: %w", err)
		}
		list = append(list, recipe)
	}
	return list, rows.Err()
}
