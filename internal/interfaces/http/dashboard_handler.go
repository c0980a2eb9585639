package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/gastrosmart/gastrosmart-api/internal/application/analytics"
	"github.com/gastrosmart/gastrosmart-api/internal/application/dto"
)

// DashboardHandler maneja los endpoints del módulo de Dashboard.
type DashboardHandler struct {
	uc *appanalytics.UseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.UseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// TodayStats devuelve las métricas del día para la sucursal.
// GET /api/dashboard/today
//
// Respuesta: TodayStatsDTO (total_sales, count, dishes_sold, average_ticket,
// critical_stock_count). Cacheado por un minuto.
func (h *DashboardHandler) TodayStats(c *fiber.Ctx) error {
	locationID := c.Query("location_id")
	if locationID == "" {
		locationID = GetLocationID(c)
	}
	if locationID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Code: "UNAUTHORIZED", Message: "location_id no encontrado en el token",
		})
	}
	stats, err := h.uc.TodayStats(c.Context(), locationID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stats)
}

// TopRecipes devuelve el ranking de platos más vendidos.
// GET /api/dashboard/top-recipes?days=7&limit=10
func (h *DashboardHandler) TopRecipes(c *fiber.Ctx) error {
	locationID := c.Query("location_id")
	if locationID == "" {
		locationID = GetLocationID(c)
	}
	if locationID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Code: "UNAUTHORIZED", Message: "location_id no encontrado en el token",
		})
	}
	days, _ := strconv.Atoi(c.Query("days"))
	limit, _ := strconv.Atoi(c.Query("limit"))
	top, err := h.uc.TopRecipes(c.Context(), locationID, days, limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(top)
}
