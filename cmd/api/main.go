package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/estoque-api/internal/application/inventory"
	appsync "github.com/jhoicas/estoque-api/internal/application/sync"
	"github.com/jhoicas/estoque-api/internal/application/usecase"
	"github.com/jhoicas/estoque-api/internal/infrastructure/sqlite"
	httpRouter "github.com/jhoicas/estoque-api/internal/interfaces/http"
	"github.com/jhoicas/estoque-api/pkg/config"
	"github.com/jhoicas/estoque-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db", cfg.DB.Path).
		Msg("iniciando aplicación")

	db, err := sqlite.Open(cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacén SQLite")
	}
	defer db.Close()

	itemRepo := sqlite.NewItemRepository(db.SQL())
	movRepo := sqlite.NewMovementRepository(db.SQL())
	txRunner := sqlite.NewTxRunner(db)
	guard := inventory.NewRewriteGuard()

	itemUC := usecase.NewItemUseCase(itemRepo, txRunner)
	movementUC := usecase.NewMovementUseCase(movRepo, cfg.Inventory.MovementWindowDays)
	stockUC := inventory.NewStockUseCase(txRunner)
	mergeUC := inventory.NewMergeUseCase(txRunner, guard, log)
	syncUC := appsync.NewSyncUseCase(itemRepo, movRepo, txRunner, guard, cfg.Inventory.ExportWindowDays, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	// CORS abierto: el front-end se sirve desde otros dominios (comportamiento heredado).
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Content-Type,Authorization,X-Requested-With,Accept",
		MaxAge:       86400,
	}))
	app.Use(httpRouter.RequestLogger(log))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ItemUC:     itemUC,
		MovementUC: movementUC,
		StockUC:    stockUC,
		MergeUC:    mergeUC,
		SyncUC:     syncUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
