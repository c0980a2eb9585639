package locations

import (
	"time"

	"github.com/google/uuid"

	"github.com/gastrosmart/gastrosmart-api/internal/application/dto"
	"github.com/gastrosmart/gastrosmart-api/internal/domain"
	"github.com/gastrosmart/gastrosmart-api/internal/domain/entity"
	"github.com/gastrosmart/gastrosmart-api/internal/domain/repository"
)

// UseCase administra las sucursales del restaurante.
type UseCase struct {
	locationRepo repository.LocationRepository
	now          func() time.Time
}

func NewUseCase(locationRepo repository.LocationRepository) *UseCase {
	return &UseCase{locationRepo: locationRepo, now: time.Now}
}

// Create registra una sucursal nueva.
func (uc *UseCase) Create(in dto.CreateLocationRequest) (*dto.LocationResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := uc.now()
	location := &entity.Location{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Address:   in.Address,
		Phone:     in.Phone,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.locationRepo.Create(location); err != nil {
		return nil, err
	}
	return toResponse(location), nil
}

// GetByID devuelve una sucursal.
func (uc *UseCase) GetByID(id string) (*dto.LocationResponse, error) {
	location, err := uc.locationRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, domain.ErrNotFound
	}
	return toResponse(location), nil
}

// List devuelve todas las sucursales.
func (uc *UseCase) List() ([]dto.LocationResponse, error) {
	locations, err := uc.locationRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.LocationResponse, 0, len(locations))
	for _, l := range locations {
		out = append(out, *toResponse(l))
	}
	return out, nil
}

func toResponse(l *entity.Location) *dto.LocationResponse {
	return &dto.LocationResponse{
		ID:        l.ID,
		Name:      l.Name,
		Address:   l.Address,
		Phone:     l.Phone,
		Active:    l.Active,
		CreatedAt: l.CreatedAt,
	}
}
