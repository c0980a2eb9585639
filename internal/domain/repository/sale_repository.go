package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gastrosmart/gastrosmart-api/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para ventas y sus items.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	CreateItem(item *entity.SaleItem) error
	// GetByID devuelve la venta con sus items cargados, o nil si no existe.
	GetByID(id string) (*entity.Sale, error)
	List(locationID string, from, to *time.Time, limit, offset int) ([]*entity.Sale, error)
	// Delete elimina la venta y sus items (cascade).
	Delete(id string) error
	// SumCompletedTotals suma los totales de ventas COMPLETED del usuario en la
	// sucursal dentro de la ventana dada (cuadre de caja).
	SumCompletedTotals(userID, locationID string, from, to time.Time) (decimal.Decimal, error)
}
