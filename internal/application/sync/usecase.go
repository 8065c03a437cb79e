package sync

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/application/inventory"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
	"github.com/jhoicas/estoque-api/pkg/logger"
)

// SyncUseCase exporta el estado completo como snapshot portátil y lo reconstruye
// desde un snapshot de otra instancia. Comparte el RewriteGuard con la
// unificación: ambas reescriben la tabla de items y no deben solaparse.
type SyncUseCase struct {
	itemRepo         repository.ItemRepository
	movRepo          repository.MovementRepository
	tx               TxRunner
	guard            *inventory.RewriteGuard
	exportWindowDays int
	log              *logger.Logger
}

// NewSyncUseCase construye el caso de uso. exportWindowDays acota la ventana de
// movimientos del snapshot (365 por defecto en configuración).
func NewSyncUseCase(
	itemRepo repository.ItemRepository,
	movRepo repository.MovementRepository,
	tx TxRunner,
	guard *inventory.RewriteGuard,
	exportWindowDays int,
	log *logger.Logger,
) *SyncUseCase {
	return &SyncUseCase{
		itemRepo:         itemRepo,
		movRepo:          movRepo,
		tx:               tx,
		guard:            guard,
		exportWindowDays: exportWindowDays,
		log:              log,
	}
}

// Export produce un snapshot punto-en-el-tiempo: todos los items ordenados por
// nombre más los movimientos de la ventana reciente, del más nuevo al más viejo.
// Nunca muta el almacén.
func (uc *SyncUseCase) Export(ctx context.Context) (*dto.Snapshot, error) {
	items, err := uc.itemRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("exportar items: %w", err)
	}
	movements, err := uc.movRepo.ListSince(ctx, uc.exportWindowDays)
	if err != nil {
		return nil, fmt.Errorf("exportar movimientos: %w", err)
	}

	snapshot := &dto.Snapshot{
		Itens:         make([]dto.SnapshotItem, 0, len(items)),
		Movimentacoes: make([]dto.SnapshotMovement, 0, len(movements)),
		Timestamp:     time.Now(),
		Versao:        dto.SnapshotVersion,
	}
	for _, item := range items {
		snapshot.Itens = append(snapshot.Itens, dto.SnapshotItem{
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
		})
	}
	for _, m := range movements {
		snapshot.Movimentacoes = append(snapshot.Movimentacoes, dto.SnapshotMovement{
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
	return snapshot, nil
}

// Import reconstruye el almacén desde un snapshot en una única transacción
// todo-o-nada: borra movimientos, borra items, reinserta los items descartando
// identidad y fecha de alta (el almacén reasigna ambas) y reinserta los
// movimientos con su item_id original, sin traducirlo a las identidades nuevas.
// Si el campo itens no está presente falla con domain.ErrInvalidInput antes de
// tocar nada.
func (uc *SyncUseCase) Import(ctx context.Context, snapshot *dto.Snapshot) (*dto.ImportResult, error) {
	if snapshot == nil || snapshot.Itens == nil {
		return nil, fmt.Errorf("snapshot sem campo itens: %w", domain.ErrInvalidInput)
	}

	uc.guard.Lock()
	defer uc.guard.Unlock()

	result := &dto.ImportResult{}
	err := uc.tx.Run(ctx, func(itemRepo repository.ItemRepository, movRepo repository.MovementRepository) error {
		// Primero los movimientos: referencian items por id y así no queda
		// estado colgante transitorio dentro de la tx.
		if err := movRepo.DeleteAll(ctx); err != nil {
			return err
		}
		if err := itemRepo.DeleteAll(ctx); err != nil {
			return err
		}

		for _, in := range snapshot.Itens {
			item := &entity.Item{
				Name:        in.Nome,
				Serial:      in.Serie,
				Description: in.Descricao,
				Origin:      in.Origem,
				Destination: in.Destino,
				Value:       in.Valor,
				Invoice:     in.NF,
				Quantity:    in.Quantidade,
				Minimum:     in.Minimo,
				Ideal:       in.Ideal,
				Notes:       in.Infos,
			}
			if err := itemRepo.Create(ctx, item); err != nil {
				return err
			}
			result.ItensImportados++
		}

		for _, in := range snapshot.Movimentacoes {
			movement := &entity.Movement{
				ItemID:      in.ItemID, // tal cual el snapshot, sin remapear
				ItemName:    in.ItemNome,
				Type:        in.Tipo,
				Quantity:    in.Quantidade,
				Destination: in.Destino,
				Description: in.Descricao,
			}
			if err := movRepo.Create(ctx, movement); err != nil {
				return err
			}
			result.MovimentacoesImportadas++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Int("itens", result.ItensImportados).
		Int("movimentacoes", result.MovimentacoesImportadas).
		Msg("importación de snapshot completada")
	return result, nil
}
