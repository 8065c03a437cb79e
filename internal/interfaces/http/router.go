package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/estoque-api/internal/application/inventory"
	appsync "github.com/jhoicas/estoque-api/internal/application/sync"
	"github.com/jhoicas/estoque-api/internal/application/usecase"
	"github.com/jhoicas/estoque-api/internal/domain"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ItemUC     *usecase.ItemUseCase
	MovementUC *usecase.MovementUseCase
	StockUC    *inventory.StockUseCase
	MergeUC    *inventory.MergeUseCase
	SyncUC     *appsync.SyncUseCase
}

// Router registra las rutas de la API. Los nombres de ruta conservan el
// vocabulario del front-end desplegado.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Items y stock
	itemHandler := NewItemHandler(deps.ItemUC, deps.StockUC)
	itens := api.Group("/itens")
	itens.Get("/", itemHandler.List)
	itens.Post("/", itemHandler.Create)
	itens.Get("/:id", itemHandler.GetByID)
	itens.Put("/:id", itemHandler.UpdateQuantity)
	itens.Delete("/:id", itemHandler.Delete)
	itens.Post("/:id/adicionar", itemHandler.AddStock)
	itens.Post("/:id/retirar", itemHandler.RetireStock)

	// Libro de movimientos
	movementHandler := NewMovementHandler(deps.MovementUC)
	api.Get("/movimentacoes", movementHandler.List)

	// Mantenimiento: unificación y limpieza
	inventoryHandler := NewInventoryHandler(deps.MergeUC, deps.ItemUC)
	api.Post("/unificar-itens", inventoryHandler.Merge)
	api.Delete("/limpar-tudo", inventoryHandler.ClearAll)

	// Sincronización entre instancias
	syncHandler := NewSyncHandler(deps.SyncUC)
	api.Get("/exportar-banco", syncHandler.Export)
	api.Post("/importar-banco", syncHandler.Import)
}

// parseID lee el :id de la ruta como identidad de secuencia del almacén.
func parseID(c *fiber.Ctx) (int64, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("id inválido: %w", domain.ErrInvalidInput)
	}
	return int64(id), nil
}
