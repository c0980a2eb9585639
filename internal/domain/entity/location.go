package entity

import "time"

// Location representa una sucursal del restaurante donde hay inventario, caja y ventas.
type Location struct {
	ID        string
	Name      string
	Address   string
	Phone     string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
