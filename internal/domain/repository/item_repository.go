package repository

import (
	"context"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

// ItemRepository puerto de persistencia para items.
type ItemRepository interface {
	// Create inserta un nuevo item y asigna su ID y CreatedAt desde el almacén.
	Create(ctx context.Context, item *entity.Item) error
	// GetByID devuelve domain.ErrNotFound si no existe la identidad.
	GetByID(ctx context.Context, id int64) (*entity.Item, error)
	// ListAll devuelve todos los items ordenados por nombre ascendente.
	ListAll(ctx context.Context) ([]*entity.Item, error)
	// UpdateQuantity fija la cantidad en mano; domain.ErrNotFound si no existe.
	UpdateQuantity(ctx context.Context, id int64, quantity int64) error
	// Delete elimina por ID; domain.ErrNotFound si no existe.
	Delete(ctx context.Context, id int64) error
	// DeleteAll vacía la tabla completa (unificación, importación, limpieza).
	DeleteAll(ctx context.Context) error
}
