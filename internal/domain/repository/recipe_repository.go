package repository

import "github.com/gastrosmart/gastrosmart-api/internal/domain/entity"

// RecipeRepository define el puerto de persistencia para recetas y sus ingredientes.
// El catálogo es de solo lectura para el motor de ventas.
type RecipeRepository interface {
	// GetByID devuelve la receta con sus ingredientes cargados, o nil si no existe.
	GetByID(id string) (*entity.Recipe, error)
	List(locationID string, limit, offset int) ([]*entity.Recipe, error)
	// SearchByName busca por nombre sin distinguir acentos ni mayúsculas.
	SearchByName(locationID, name string, limit int) ([]*entity.Recipe, error)
	Create(recipe *entity.Recipe) error
	// Update reemplaza la cabecera y el conjunto completo de ingredientes.
	Update(recipe *entity.Recipe) error
	Delete(id string) error
}
