package usecase

import (
	"context"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

// MovementUseCase consulta del libro de movimientos por ventana de recencia.
type MovementUseCase struct {
	movRepo           repository.MovementRepository
	defaultWindowDays int
}

// NewMovementUseCase construye el caso de uso. defaultWindowDays se aplica
// cuando el request no trae ?dias= (30 en configuración).
func NewMovementUseCase(movRepo repository.MovementRepository, defaultWindowDays int) *MovementUseCase {
	return &MovementUseCase{movRepo: movRepo, defaultWindowDays: defaultWindowDays}
}

// List devuelve los movimientos de los últimos `days` días, del más reciente
// al más antiguo.
func (uc *MovementUseCase) List(ctx context.Context, days int) ([]dto.MovementResponse, error) {
	if days <= 0 {
		days = uc.defaultWindowDays
	}
	list, err := uc.movRepo.ListSince(ctx, days)
	if err != nil {
		return nil, err
	}
	movements := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		movements = append(movements, dto.MovementResponse{
			ID:         m.ID,
			ItemID:     m.ItemID,
			ItemNome:   m.ItemName,
			Tipo:       m.Type,
			Quantidade: m.Quantity,
			Destino:    m.Destination,
			Descricao:  m.Description,
			Data:       m.Date,
		})
	}
	return movements, nil
}
