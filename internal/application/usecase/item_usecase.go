package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/application/inventory"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

// ItemUseCase casos de uso CRUD para items. Las altas registran el movimiento
// inicial en la misma transacción; la cantidad se modifica después solo vía
// movimientos de stock (o el PUT directo de cantidad que mantiene el front-end).
type ItemUseCase struct {
	itemRepo repository.ItemRepository
	tx       inventory.TxRunner
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(itemRepo repository.ItemRepository, tx inventory.TxRunner) *ItemUseCase {
	return &ItemUseCase{itemRepo: itemRepo, tx: tx}
}

// Create registra un item nuevo y su movimiento inicial de entrada ("Cadastro
// inicial"). El almacén asigna la identidad y la fecha de alta.
func (uc *ItemUseCase) Create(ctx context.Context, in dto.CreateItemRequest) (*dto.CreateItemResponse, error) {
	if in.Nome == "" {
		return nil, fmt.Errorf("nome é obrigatório: %w", domain.ErrInvalidInput)
	}
	if in.Quantidade < 0 {
		return nil, fmt.Errorf("quantidade não pode ser negativa: %w", domain.ErrInvalidInput)
	}
	var minimo, ideal int64
	if in.Minimo != nil {
		minimo = *in.Minimo
	}
	if in.Ideal != nil {
		ideal = *in.Ideal
	}

	item := &entity.Item{
		Name:        in.Nome,
		Serial:      in.Serie,
		Description: in.Descricao,
		Origin:      in.Origem,
		Destination: in.Destino,
		Value:       in.Valor,
		Invoice:     in.NF,
		Quantity:    in.Quantidade,
		Minimum:     minimo,
		Ideal:       ideal,
		Notes:       in.Infos,
	}
	err := uc.tx.Run(ctx, func(itemRepo repository.ItemRepository, movRepo repository.MovementRepository) error {
		if err := itemRepo.Create(ctx, item); err != nil {
			return err
		}
		return movRepo.Create(ctx, &entity.Movement{
			ItemID:      item.ID,
			ItemName:    item.Name,
			Type:        entity.MovementTypeIn,
			Quantity:    item.Quantity,
			Description: "Cadastro inicial",
		})
	})
	if err != nil {
		return nil, err
	}
	return &dto.CreateItemResponse{ID: item.ID, Message: "Item cadastrado com sucesso"}, nil
}

// GetByID obtiene un item por ID. Propaga domain.ErrNotFound si no existe.
func (uc *ItemUseCase) GetByID(ctx context.Context, id int64) (*dto.ItemResponse, error) {
	item, err := uc.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// List devuelve todos los items ordenados por nombre.
func (uc *ItemUseCase) List(ctx context.Context) ([]dto.ItemResponse, error) {
	list, err := uc.itemRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ItemResponse, 0, len(list))
	for _, item := range list {
		items = append(items, *toItemResponse(item))
	}
	return items, nil
}

// UpdateQuantity fija la cantidad en mano (PUT del front-end).
func (uc *ItemUseCase) UpdateQuantity(ctx context.Context, id int64, in dto.UpdateItemRequest) error {
	if in.Quantidade == nil || *in.Quantidade < 0 {
		return domain.ErrInvalidInput
	}
	return uc.itemRepo.UpdateQuantity(ctx, id, *in.Quantidade)
}

// Delete elimina un item por ID. El historial de movimientos no se toca.
func (uc *ItemUseCase) Delete(ctx context.Context, id int64) error {
	return uc.itemRepo.Delete(ctx, id)
}

// ClearAll vacía items y movimientos en una transacción (limpieza total).
func (uc *ItemUseCase) ClearAll(ctx context.Context) error {
	return uc.tx.Run(ctx, func(itemRepo repository.ItemRepository, movRepo repository.MovementRepository) error {
		if err := itemRepo.DeleteAll(ctx); err != nil {
			return err
		}
		return movRepo.DeleteAll(ctx)
	})
}

func toItemResponse(item *entity.Item) *dto.ItemResponse {
	if item == nil {
		return nil
	}
	return &dto.ItemResponse{
		ID:           item.ID,
		Nome:         item.Name,
		Serie:        item.Serial,
		Descricao:    item.Description,
		Origem:       item.Origin,
		Destino:      item.Destination,
		Valor:        item.Value,
		NF:           item.Invoice,
		Quantidade:   item.Quantity,
		Minimo:       item.Minimum,
		Ideal:        item.Ideal,
		Infos:        item.Notes,
		DataCadastro: item.CreatedAt,
	}
}
