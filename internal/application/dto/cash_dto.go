package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OpenCashSessionRequest body para POST /api/cash/open.
type OpenCashSessionRequest struct {
	LocationID    string          `json:"location_id" validate:"required,uuid"`
	OpeningAmount decimal.Decimal `json:"opening_amount" validate:"required"`
	Comments      string          `json:"comments,omitempty"`
}

// CloseCashSessionRequest body para POST /api/cash/close/:id.
// ClosingAmount es el monto contado físicamente por el operador.
type CloseCashSessionRequest struct {
	ClosingAmount decimal.Decimal `json:"closing_amount" validate:"required"`
	Comments      string          `json:"comments,omitempty"`
}

// CashSessionResponse salida de una sesión de caja.
// SystemAmount y Variance vienen nulos hasta el cierre.
type CashSessionResponse struct {
	ID            string           `json:"id"`
	LocationID    string           `json:"location_id"`
	UserID        string           `json:"user_id"`
	State         string           `json:"state"`
	OpeningAmount decimal.Decimal  `json:"opening_amount"`
	ClosingAmount *decimal.Decimal `json:"closing_amount,omitempty"`
	SystemAmount  *decimal.Decimal `json:"system_amount,omitempty"`
	Variance      *decimal.Decimal `json:"variance,omitempty"`
	Comments      string           `json:"comments,omitempty"`
	OpenedAt      time.Time        `json:"opened_at"`
	ClosedAt      *time.Time       `json:"closed_at,omitempty"`
}
