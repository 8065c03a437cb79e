package repository

import (
	"context"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

// MovementRepository puerto de persistencia para el libro de movimientos.
// Las entradas son append-only: nunca se actualizan ni se borran de a una.
type MovementRepository interface {
	// Create inserta un movimiento y asigna su ID y Date desde el almacén.
	Create(ctx context.Context, movement *entity.Movement) error
	// ListSince devuelve los movimientos de los últimos `days` días,
	// ordenados por fecha descendente.
	ListSince(ctx context.Context, days int) ([]*entity.Movement, error)
	// DeleteAll vacía la tabla completa (importación, limpieza).
	DeleteAll(ctx context.Context) error
}
