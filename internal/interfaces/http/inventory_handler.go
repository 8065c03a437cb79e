package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/estoque-api/internal/application/inventory"
	"github.com/jhoicas/estoque-api/internal/application/usecase"
)

// InventoryHandler operaciones de mantenimiento sobre la tabla completa:
// unificación de duplicados y limpieza total.
type InventoryHandler struct {
	merge *inventory.MergeUseCase
	items *usecase.ItemUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(merge *inventory.MergeUseCase, items *usecase.ItemUseCase) *InventoryHandler {
	return &InventoryHandler{merge: merge, items: items}
}

// Merge POST /api/unificar-itens — consolida items duplicados por (nombre, serie).
func (h *InventoryHandler) Merge(c *fiber.Ctx) error {
	result, err := h.merge.Merge(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}

// ClearAll DELETE /api/limpar-tudo — vacía items y movimientos.
func (h *InventoryHandler) ClearAll(c *fiber.Ctx) error {
	if err := h.items.ClearAll(c.Context()); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}
