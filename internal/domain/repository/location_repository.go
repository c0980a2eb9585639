package repository

import "github.com/gastrosmart/gastrosmart-api/internal/domain/entity"

// LocationRepository define el puerto de persistencia para sucursales.
type LocationRepository interface {
	GetByID(id string) (*entity.Location, error)
	List() ([]*entity.Location, error)
	Create(location *entity.Location) error
}
