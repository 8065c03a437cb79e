package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/estoque-api/internal/application/usecase"
)

// MovementHandler maneja la consulta del libro de movimientos.
type MovementHandler struct {
	uc *usecase.MovementUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *usecase.MovementUseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// List GET /api/movimentacoes?dias=N — ventana de recencia, 30 días por defecto.
func (h *MovementHandler) List(c *fiber.Ctx) error {
	days := c.QueryInt("dias", 0)
	movements, err := h.uc.List(c.Context(), days)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(movements)
}
