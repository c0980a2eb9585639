package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una sesión de caja. La transición OPEN -> CLOSED es terminal.
const (
	CashSessionOpen   = "OPEN"
	CashSessionClosed = "CLOSED"
)

// CashSession es la ventana de tiempo en la que las ventas de un operador
// se cuadran contra una caja física. A lo sumo una sesión OPEN por (usuario, sucursal).
type CashSession struct {
	ID            string
	LocationID    string
	UserID        string
	State         string
	OpeningAmount decimal.Decimal
	ClosingAmount *decimal.Decimal // monto declarado al cierre; nil hasta cerrar
	SystemAmount  *decimal.Decimal // apertura + ventas COMPLETED de la ventana; nil hasta cerrar
	Variance      *decimal.Decimal // declarado - sistema; nil hasta cerrar
	Comments      string
	OpenedAt      time.Time
	ClosedAt      *time.Time
}
