package usecase_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/application/usecase"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/infrastructure/sqlite"
	"github.com/jhoicas/estoque-api/pkg/config"
)

func newTestStore(t *testing.T) *sqlite.DB {
	t.Helper()
	db, err := sqlite.Open(config.DBConfig{
		Path:          filepath.Join(t.TempDir(), "estoque.db"),
		BusyTimeoutMS: 5000,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newItemUC(db *sqlite.DB) *usecase.ItemUseCase {
	return usecase.NewItemUseCase(sqlite.NewItemRepository(db.SQL()), sqlite.NewTxRunner(db))
}

// El alta asigna identidad y registra el movimiento inicial de entrada.
func TestItemCreate_RegistraMovimientoInicial(t *testing.T) {
	db := newTestStore(t)
	ctx := context.Background()
	uc := newItemUC(db)

	minimo := int64(1)
	out, err := uc.Create(ctx, dto.CreateItemRequest{
		Nome:       "Cable",
		Serie:      "A1",
		Quantidade: 5,
		Minimo:     &minimo,
	})
	require.NoError(t, err)
	assert.Positive(t, out.ID, "el almacén asigna la identidad")
	assert.Equal(t, "Item cadastrado com sucesso", out.Message)

	item, err := uc.GetByID(ctx, out.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(5), item.Quantidade)
	assert.Equal(t, int64(1), item.Minimo)
	assert.Equal(t, int64(0), item.Ideal, "ideal ausente se normaliza a cero")
	assert.False(t, item.DataCadastro.IsZero(), "la fecha de alta la asigna el almacén")

	movements, err := sqlite.NewMovementRepository(db.SQL()).ListSince(ctx, 30)
	require.NoError(t, err)
	require.Len(t, movements, 1)
	assert.Equal(t, entity.MovementTypeIn, movements[0].Type)
	assert.Equal(t, "Cadastro inicial", movements[0].Description)
	assert.Equal(t, out.ID, movements[0].ItemID)
	assert.Equal(t, "Cable", movements[0].ItemName)
}

func TestItemCreate_NomeObligatorio(t *testing.T) {
	db := newTestStore(t)
	uc := newItemUC(db)

	_, err := uc.Create(context.Background(), dto.CreateItemRequest{Quantidade: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestItemGetByID_NoEncontrado(t *testing.T) {
	db := newTestStore(t)
	uc := newItemUC(db)

	_, err := uc.GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestItemUpdateQuantity(t *testing.T) {
	db := newTestStore(t)
	ctx := context.Background()
	uc := newItemUC(db)

	out, err := uc.Create(ctx, dto.CreateItemRequest{Nome: "Cable", Quantidade: 5})
	require.NoError(t, err)

	nueva := int64(9)
	require.NoError(t, uc.UpdateQuantity(ctx, out.ID, dto.UpdateItemRequest{Quantidade: &nueva}))

	item, err := uc.GetByID(ctx, out.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(9), item.Quantidade)

	// Sin cantidad en el body es entrada inválida
	assert.ErrorIs(t, uc.UpdateQuantity(ctx, out.ID, dto.UpdateItemRequest{}), domain.ErrInvalidInput)
	// Identidad inexistente
	assert.ErrorIs(t, uc.UpdateQuantity(ctx, 999, dto.UpdateItemRequest{Quantidade: &nueva}), domain.ErrNotFound)
}

func TestItemDelete_ConservaHistorial(t *testing.T) {
	db := newTestStore(t)
	ctx := context.Background()
	uc := newItemUC(db)

	out, err := uc.Create(ctx, dto.CreateItemRequest{Nome: "Cable", Quantidade: 5})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, out.ID))
	_, err = uc.GetByID(ctx, out.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	movements, err := sqlite.NewMovementRepository(db.SQL()).ListSince(ctx, 30)
	require.NoError(t, err)
	assert.Len(t, movements, 1, "borrar el item no borra su historial")

	assert.ErrorIs(t, uc.Delete(ctx, out.ID), domain.ErrNotFound)
}

func TestItemClearAll(t *testing.T) {
	db := newTestStore(t)
	ctx := context.Background()
	uc := newItemUC(db)

	_, err := uc.Create(ctx, dto.CreateItemRequest{Nome: "Cable", Quantidade: 5})
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.CreateItemRequest{Nome: "Monitor", Quantidade: 2})
	require.NoError(t, err)

	require.NoError(t, uc.ClearAll(ctx))

	items, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	movements, err := sqlite.NewMovementRepository(db.SQL()).ListSince(ctx, 30)
	require.NoError(t, err)
	assert.Empty(t, movements, "la limpieza total sí vacía el libro de movimientos")
}
