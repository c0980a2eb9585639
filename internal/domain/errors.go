package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrNoOpenRegister     = errors.New("no hay una caja abierta para este usuario en esta sucursal")
	ErrRegisterOpen       = errors.New("ya tienes una caja abierta en esta sucursal")
	ErrRegisterClosed     = errors.New("esta caja ya está cerrada")
	ErrEmptySale          = errors.New("la venta debe tener al menos un item")
	ErrPriceBelowCost     = errors.New("el precio de venta debe ser mayor que el costo")
)

// BusinessClosedError indica que la venta llegó fuera del horario de atención.
// Incluye el horario configurado para que el mensaje sea accionable.
type BusinessClosedError struct {
	Weekday   string
	OpenHour  int
	CloseHour int
	DayClosed bool // true si el restaurante no abre ese día de la semana
}

func (e *BusinessClosedError) Error() string {
	if e.DayClosed {
		return fmt.Sprintf("el restaurante está cerrado los %s", e.Weekday)
	}
	return fmt.Sprintf("el restaurante está cerrado. Horario de atención: %d:00 - %d:00", e.OpenHour, e.CloseHour)
}

// StockShortage describe el faltante de un ingrediente concreto.
type StockShortage struct {
	ItemName  string
	SaleItem  string // nombre del plato que lo requiere
	Required  decimal.Decimal
	Available decimal.Decimal
	Unit      string
}

func (s StockShortage) String() string {
	return fmt.Sprintf("%s (requiere %s%s, disponible %s%s)",
		s.ItemName, s.Required.Round(2), s.Unit, s.Available.Round(2), s.Unit)
}

// InsufficientStockError agrupa TODOS los faltantes de la venta, no solo el primero,
// para que el cliente pueda corregir la orden en una sola ida y vuelta.
type InsufficientStockError struct {
	Shortages []StockShortage
}

func (e *InsufficientStockError) Error() string {
	byItem := make(map[string][]string)
	var order []string
	for _, s := range e.Shortages {
		if _, ok := byItem[s.SaleItem]; !ok {
			order = append(order, s.SaleItem)
		}
		byItem[s.SaleItem] = append(byItem[s.SaleItem], s.String())
	}
	parts := make([]string, 0, len(order))
	for _, item := range order {
		parts = append(parts, fmt.Sprintf("Stock insuficiente para %s: %s", item, strings.Join(byItem[item], ", ")))
	}
	return "Stock insuficiente para completar la venta. " + strings.Join(parts, " | ")
}

// Unwrap permite errors.Is(err, ErrInsufficientStock).
func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }

// TotalMismatchError indica que el total enviado por el cliente no coincide con el calculado.
type TotalMismatchError struct {
	Field    string // "subtotal" o "total"
	Expected decimal.Decimal
	Received decimal.Decimal
}

func (e *TotalMismatchError) Error() string {
	return fmt.Sprintf("el %s no coincide. Esperado: %s, Recibido: %s",
		e.Field, e.Expected.StringFixed(2), e.Received.StringFixed(2))
}
