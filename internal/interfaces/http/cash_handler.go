package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gastrosmart/gastrosmart-api/internal/application/cash"
	"github.com/gastrosmart/gastrosmart-api/internal/application/dto"
)

// CashHandler maneja apertura, cierre y consulta de sesiones de caja (protegido).
type CashHandler struct {
	uc *cash.UseCase
}

// NewCashHandler construye el handler.
func NewCashHandler(uc *cash.UseCase) *CashHandler {
	return &CashHandler{uc: uc}
}

// Open godoc
// @Summary      Abrir caja
// @Tags         cash
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OpenCashSessionRequest  true  "location_id y monto de apertura"
// @Success      201   {object}  dto.CashSessionResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/cash/open [post]
func (h *CashHandler) Open(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.OpenCashSessionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.LocationID == "" {
		in.LocationID = GetLocationID(c)
	}
	session, err := h.uc.Open(userID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(session)
}

// Close godoc
// @Summary      Cerrar caja
// @Description  Calcula el monto teórico desde las ventas COMPLETED de la sesión
//
//	y registra la diferencia contra el conteo físico declarado.
//
// @Tags         cash
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                       true  "ID de la sesión"
// @Param        body  body  dto.CloseCashSessionRequest  true  "monto contado"
// @Success      200   {object}  dto.CashSessionResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/cash/close/{id} [post]
func (h *CashHandler) Close(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CloseCashSessionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	session, err := h.uc.Close(userID, c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(session)
}

// Status godoc
// @Summary      Sesión de caja abierta del usuario
// @Tags         cash
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CashSessionResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/cash/status [get]
func (h *CashHandler) Status(c *fiber.Ctx) error {
	userID := GetUserID(c)
	locationID := GetLocationID(c)
	if userID == "" || locationID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	session, err := h.uc.Status(userID, locationID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(session)
}

// List godoc
// @Summary      Historial de sesiones de caja
// @Tags         cash
// @Security     Bearer
// @Produce      json
// @Param        location_id  query  string  false  "Sucursal (vacío = la del token)"
// @Success      200  {array}  dto.CashSessionResponse
// @Router       /api/cash [get]
func (h *CashHandler) List(c *fiber.Ctx) error {
	locationID := c.Query("location_id")
	if locationID == "" {
		locationID = GetLocationID(c)
	}
	if locationID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	out, err := h.uc.List(locationID, page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
