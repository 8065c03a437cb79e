package inventory

import (
	"context"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
	"github.com/jhoicas/estoque-api/pkg/logger"
)

// MergeUseCase unifica items duplicados: agrupa por (nombre, serie), suma las
// cantidades, concatena las notas y reescribe la tabla de items completa con
// una fila nueva por grupo. El libro de movimientos no se toca: el historial
// queda apuntando a identidades que ya no existen, por diseño.
type MergeUseCase struct {
	tx    TxRunner
	guard *RewriteGuard
	log   *logger.Logger
}

// NewMergeUseCase construye el caso de uso.
func NewMergeUseCase(tx TxRunner, guard *RewriteGuard, log *logger.Logger) *MergeUseCase {
	return &MergeUseCase{tx: tx, guard: guard, log: log}
}

// Merge ejecuta la unificación dentro de una única transacción del almacén.
//
// El primer item de cada grupo es la semilla canónica: conserva descripción,
// origen, destino, valor, nf, mínimo e ideal; los siguientes solo aportan su
// cantidad (suma entera, sin guarda de overflow) y sus notas no vacías con
// separador "; ". La semilla pierde su identidad: toda fila reinsertada recibe
// ID y fecha de alta nuevos.
//
// Total cuenta los grupos distintos antes de reinsertar. Una fila que falla al
// reinsertarse se registra, se agrega a Descartados y NO aborta la unificación:
// un merge parcial es un resultado aceptado.
func (uc *MergeUseCase) Merge(ctx context.Context) (*dto.MergeResult, error) {
	uc.guard.Lock()
	defer uc.guard.Unlock()

	var result *dto.MergeResult
	err := uc.tx.Run(ctx, func(itemRepo repository.ItemRepository, movRepo repository.MovementRepository) error {
		all, err := itemRepo.ListAll(ctx)
		if err != nil {
			return err
		}

		// Orden de primera inserción de claves: determinista dentro de una corrida.
		groups := make(map[string]*entity.Item, len(all))
		var order []string
		for _, item := range all {
			key := item.GroupKey()
			canonical, ok := groups[key]
			if !ok {
				seed := *item
				groups[key] = &seed
				order = append(order, key)
				continue
			}
			canonical.Quantity += item.Quantity
			if item.Notes != "" {
				if canonical.Notes != "" {
					canonical.Notes += "; " + item.Notes
				} else {
					canonical.Notes = item.Notes
				}
			}
		}

		if err := itemRepo.DeleteAll(ctx); err != nil {
			return err
		}

		var skipped []string
		for _, key := range order {
			canonical := groups[key]
			canonical.ID = 0 // el almacén asigna identidad fresca
			if err := itemRepo.Create(ctx, canonical); err != nil {
				uc.log.Error().Err(err).Str("grupo", key).Msg("grupo omitido durante la unificación")
				skipped = append(skipped, key)
			}
		}

		result = &dto.MergeResult{OK: true, Total: len(order), Descartados: skipped}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().Int("grupos", result.Total).Int("descartados", len(result.Descartados)).Msg("unificación de items completada")
	return result, nil
}
