package inventory

import (
	"context"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

// StockUseCase entradas y salidas de stock. Cada operación actualiza la cantidad
// del item y registra el movimiento en la misma transacción: la cantidad en mano
// siempre refleja el efecto neto del libro de movimientos.
type StockUseCase struct {
	tx TxRunner
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(tx TxRunner) *StockUseCase {
	return &StockUseCase{tx: tx}
}

// Add registra una entrada de stock sobre un item existente.
func (uc *StockUseCase) Add(ctx context.Context, itemID int64, in dto.StockRequest) error {
	if in.Quantidade <= 0 {
		return domain.ErrInvalidInput
	}
	return uc.tx.Run(ctx, func(itemRepo repository.ItemRepository, movRepo repository.MovementRepository) error {
		item, err := itemRepo.GetByID(ctx, itemID)
		if err != nil {
			return err
		}
		if err := itemRepo.UpdateQuantity(ctx, itemID, item.Quantity+in.Quantidade); err != nil {
			return err
		}
		description := in.Observacao
		if description == "" {
			description = "Adição de estoque"
		}
		return movRepo.Create(ctx, &entity.Movement{
			ItemID:      itemID,
			ItemName:    item.Name,
			Type:        entity.MovementTypeIn,
			Quantity:    in.Quantidade,
			Description: description,
		})
	})
}

// Retire registra una salida de stock. Si la cantidad pedida supera la cantidad
// en mano devuelve domain.ErrInsufficientStock y no modifica nada.
func (uc *StockUseCase) Retire(ctx context.Context, itemID int64, in dto.StockRequest) error {
	if in.Quantidade <= 0 {
		return domain.ErrInvalidInput
	}
	return uc.tx.Run(ctx, func(itemRepo repository.ItemRepository, movRepo repository.MovementRepository) error {
		item, err := itemRepo.GetByID(ctx, itemID)
		if err != nil {
			return err
		}
		if item.Quantity < in.Quantidade {
			return domain.ErrInsufficientStock
		}
		if err := itemRepo.UpdateQuantity(ctx, itemID, item.Quantity-in.Quantidade); err != nil {
			return err
		}
		description := in.Observacao
		if description == "" {
			description = "Retirada de estoque"
		}
		return movRepo.Create(ctx, &entity.Movement{
			ItemID:      itemID,
			ItemName:    item.Name,
			Type:        entity.MovementTypeOut,
			Quantity:    in.Quantidade,
			Destination: in.Destino,
			Description: description,
		})
	})
}
