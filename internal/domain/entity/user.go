package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin  = "ADMIN"
	RoleCajero = "CAJERO"
	RoleMesero = "MESERO"
)

// User representa un usuario del sistema, asignado a una sucursal.
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	Role         string
	LocationID   string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
