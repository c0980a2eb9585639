package repository

import "github.com/gastrosmart/gastrosmart-api/internal/domain/entity"

// CashSessionRepository define el puerto de persistencia para sesiones de caja.
type CashSessionRepository interface {
	// GetOpen devuelve la sesión OPEN del usuario en la sucursal, o nil si no hay.
	GetOpen(userID, locationID string) (*entity.CashSession, error)
	GetByID(id string) (*entity.CashSession, error)
	Create(session *entity.CashSession) error
	// Update persiste el cierre (montos, varianza, estado, closed_at).
	Update(session *entity.CashSession) error
	List(locationID string, limit, offset int) ([]*entity.CashSession, error)
}
