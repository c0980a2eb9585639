package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gastrosmart/gastrosmart-api/internal/application/chatbot"
	"github.com/gastrosmart/gastrosmart-api/internal/application/dto"
)

// ChatbotHandler maneja las consultas al asesor gastronómico de IA (protegido).
type ChatbotHandler struct {
	uc *chatbot.UseCase
}

// NewChatbotHandler construye el handler.
func NewChatbotHandler(uc *chatbot.UseCase) *ChatbotHandler {
	return &ChatbotHandler{uc: uc}
}

// Ask godoc
// @Summary      Consultar al asesor de IA
// @Description  Responde preguntas de gestión con el contexto operativo de la
//
//	sucursal (ventas del día, stock crítico, platos más vendidos).
//
// @Tags         chatbot
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ChatRequest  true  "pregunta"
// @Success      200   {object}  dto.AIAdviceDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/chatbot/ask [post]
func (h *ChatbotHandler) Ask(c *fiber.Ctx) error {
	locationID := GetLocationID(c)
	if locationID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.ChatRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	advice, err := h.uc.Ask(c.Context(), locationID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(advice)
}
