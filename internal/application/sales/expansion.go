package sales

import (
	"github.com/gastrosmart/gastrosmart-api/internal/domain"
	dominventory "github.com/gastrosmart/gastrosmart-api/internal/domain/inventory"
	"github.com/gastrosmart/gastrosmart-api/internal/domain/repository"
)

// saleLineRef referencia mínima a una línea de venta para la expansión de recetas.
// La usan tanto la creación (desde el request) como el borrado (desde la entidad
// persistida), garantizando que descuento y restauración recorren el mismo camino.
type saleLineRef struct {
	recipeID string
	itemName string
	quantity int
}

// expandLines resuelve cada línea con receta a sus ingredientes ligados al
// inventario de la sucursal dada, con la fórmula
// cantidadPorLote * vendido / porciones. Items sin receta, ingredientes sin
// insumo ligado e insumos de otra sucursal se omiten en silencio.
func expandLines(
	recipeRepo repository.RecipeRepository,
	itemRepo repository.InventoryItemRepository,
	locationID string,
	refs []saleLineRef,
) ([]consumptionLine, error) {
	var lines []consumptionLine
	for _, ref := range refs {
		if ref.recipeID == "" {
			continue
		}
		recipe, err := recipeRepo.GetByID(ref.recipeID)
		if err != nil {
			return nil, err
		}
		if recipe == nil {
			return nil, domain.ErrNotFound
		}
		for _, ing := range recipe.Ingredients {
			if ing.InventoryItemID == "" {
				continue
			}
			invItem, err := itemRepo.GetByID(ing.InventoryItemID)
			if err != nil {
				return nil, err
			}
			if invItem == nil || invItem.LocationID != locationID {
				continue
			}
			lines = append(lines, consumptionLine{
				item:         invItem,
				saleItemName: ref.itemName,
				required:     dominventory.RequiredQuantity(ing.Quantity, ref.quantity, recipe.Servings),
			})
		}
	}
	return lines, nil
}
