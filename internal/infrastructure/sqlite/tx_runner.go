package sqlite

import (
	"context"
	"fmt"

	"github.com/jhoicas/estoque-api/internal/application/inventory"
	appsync "github.com/jhoicas/estoque-api/internal/application/sync"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

// Ensure TxRunner implements the application ports.
var _ inventory.TxRunner = (*TxRunner)(nil)
var _ appsync.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción SQLite.
type TxRunner struct {
	db *DB
}

// NewTxRunner construye el runner con el handle del almacén.
func NewTxRunner(db *DB) *TxRunner {
	return &TxRunner{db: db}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	itemRepo repository.ItemRepository,
	movRepo repository.MovementRepository,
) error) error {
	tx, err := r.db.SQL().BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	itemRepo := NewItemRepository(tx)
	movRepo := NewMovementRepository(tx)

	if err := fn(itemRepo, movRepo); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
