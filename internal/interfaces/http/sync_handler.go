package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	appsync "github.com/jhoicas/estoque-api/internal/application/sync"
)

// SyncHandler exportación e importación de snapshots entre instancias.
type SyncHandler struct {
	uc *appsync.SyncUseCase
}

// NewSyncHandler construye el handler.
func NewSyncHandler(uc *appsync.SyncUseCase) *SyncHandler {
	return &SyncHandler{uc: uc}
}

// Export GET /api/exportar-banco — snapshot completo (versao "1.0").
func (h *SyncHandler) Export(c *fiber.Ctx) error {
	snapshot, err := h.uc.Export(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(snapshot)
}

// Import POST /api/importar-banco — reconstrucción todo-o-nada desde un snapshot.
func (h *SyncHandler) Import(c *fiber.Ctx) error {
	var snapshot dto.Snapshot
	if err := c.BodyParser(&snapshot); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "corpo inválido"})
	}
	result, err := h.uc.Import(c.Context(), &snapshot)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}
