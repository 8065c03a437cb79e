package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estoque-api/internal/application/inventory"
	appsync "github.com/jhoicas/estoque-api/internal/application/sync"
	"github.com/jhoicas/estoque-api/internal/application/usecase"
	"github.com/jhoicas/estoque-api/internal/infrastructure/sqlite"
	apphttp "github.com/jhoicas/estoque-api/internal/interfaces/http"
	"github.com/jhoicas/estoque-api/pkg/config"
	"github.com/jhoicas/estoque-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp arma la aplicación Fiber completa sobre un almacén temporal.
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()
	db, err := sqlite.Open(config.DBConfig{
		Path:          filepath.Join(t.TempDir(), "estoque.db"),
		BusyTimeoutMS: 5000,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	log := logger.New(logger.Config{Env: "production", Level: "error"})
	itemRepo := sqlite.NewItemRepository(db.SQL())
	movRepo := sqlite.NewMovementRepository(db.SQL())
	txRunner := sqlite.NewTxRunner(db)
	guard := inventory.NewRewriteGuard()

	app := fiber.New()
	app.Use(recover.New())
	apphttp.Router(app, apphttp.RouterDeps{
		ItemUC:     usecase.NewItemUseCase(itemRepo, txRunner),
		MovementUC: usecase.NewMovementUseCase(movRepo, 30),
		StockUC:    inventory.NewStockUseCase(txRunner),
		MergeUC:    inventory.NewMergeUseCase(txRunner, guard, log),
		SyncUC:     appsync.NewSyncUseCase(itemRepo, movRepo, txRunner, guard, 365, log),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Rutas de items
// ──────────────────────────────────────────────────────────────────────────────

func TestItens_AltaYConsulta(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/itens", fiber.Map{
		"nome": "Cable", "serie": "A1", "quantidade": 5,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeBody(t, resp)
	assert.Equal(t, float64(1), created["id"])

	resp = doJSON(t, app, http.MethodGet, "/api/itens/1", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	item := decodeBody(t, resp)
	assert.Equal(t, "Cable", item["nome"])
	assert.Equal(t, float64(5), item["quantidade"])
}

func TestItens_IdentidadInexistenteRetorna404(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/itens/999", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.NotEmpty(t, body["error"], "el payload de error lleva el campo error")
}

func TestItens_NomeFaltanteRetorna400(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/itens", fiber.Map{"quantidade": 5})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestItens_RetiroInsuficienteRetorna400(t *testing.T) {
	app := buildTestApp(t)

	doJSON(t, app, http.MethodPost, "/api/itens", fiber.Map{"nome": "Cable", "quantidade": 2})

	resp := doJSON(t, app, http.MethodPost, "/api/itens/1/retirar", fiber.Map{"quantidade": 10})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "quantidade insuficiente em estoque", body["error"])

	// La cantidad queda intacta
	resp = doJSON(t, app, http.MethodGet, "/api/itens/1", nil)
	item := decodeBody(t, resp)
	assert.Equal(t, float64(2), item["quantidade"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Unificación y sincronización
// ──────────────────────────────────────────────────────────────────────────────

func TestUnificarItens_ConsolidaDuplicados(t *testing.T) {
	app := buildTestApp(t)

	doJSON(t, app, http.MethodPost, "/api/itens", fiber.Map{"nome": "Cable", "serie": "A1", "quantidade": 5, "infos": "old"})
	doJSON(t, app, http.MethodPost, "/api/itens", fiber.Map{"nome": "Cable", "serie": "A1", "quantidade": 3, "infos": "new"})

	resp := doJSON(t, app, http.MethodPost, "/api/unificar-itens", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, float64(1), body["total"])

	resp = doJSON(t, app, http.MethodGet, "/api/itens", nil)
	defer resp.Body.Close()
	var items []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&items))
	require.Len(t, items, 1)
	assert.Equal(t, float64(8), items[0]["quantidade"])
	assert.Equal(t, "old; new", items[0]["infos"])
}

func TestExportarBanco_FormatoDelSnapshot(t *testing.T) {
	app := buildTestApp(t)

	doJSON(t, app, http.MethodPost, "/api/itens", fiber.Map{"nome": "Cable", "quantidade": 5})

	resp := doJSON(t, app, http.MethodGet, "/api/exportar-banco", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "1.0", body["versao"])
	assert.NotEmpty(t, body["timestamp"])
	itens, ok := body["itens"].([]any)
	require.True(t, ok, "itens debe ser un array")
	assert.Len(t, itens, 1)
	assert.NotEmpty(t, body["movimentacoes"], "el movimiento inicial viaja en el snapshot")
}

func TestImportarBanco_SinItensRetorna400(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/importar-banco", fiber.Map{"versao": "1.0"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Contains(t, body["error"], "itens")
}

func TestRoundTrip_ExportarImportar(t *testing.T) {
	app := buildTestApp(t)

	doJSON(t, app, http.MethodPost, "/api/itens", fiber.Map{"nome": "Cable", "serie": "A1", "quantidade": 5})
	doJSON(t, app, http.MethodPost, "/api/itens", fiber.Map{"nome": "Monitor", "quantidade": 2})

	resp := doJSON(t, app, http.MethodGet, "/api/exportar-banco", nil)
	snapshot := decodeBody(t, resp)

	resp = doJSON(t, app, http.MethodPost, "/api/importar-banco", snapshot)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	result := decodeBody(t, resp)
	assert.Equal(t, float64(2), result["itens_importados"])

	resp = doJSON(t, app, http.MethodGet, "/api/itens", nil)
	defer resp.Body.Close()
	var items []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&items))
	require.Len(t, items, 2)
	assert.Equal(t, "Cable", items[0]["nome"])
	assert.Equal(t, float64(5), items[0]["quantidade"])
}

func TestLimparTudo(t *testing.T) {
	app := buildTestApp(t)

	doJSON(t, app, http.MethodPost, "/api/itens", fiber.Map{"nome": "Cable", "quantidade": 5})

	resp := doJSON(t, app, http.MethodDelete, "/api/limpar-tudo", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/movimentacoes", nil)
	defer resp.Body.Close()
	var movements []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&movements))
	assert.Empty(t, movements)
}
