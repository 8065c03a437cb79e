package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del puerto MovementRepository sobre SQLite (usable con DB o tx).
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar DB o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un movimiento. El almacén asigna ID y fecha.
func (r *MovementRepo) Create(ctx context.Context, movement *entity.Movement) error {
	query := `
		INSERT INTO movimentacoes (item_id, item_nome, tipo, quantidade, destino, descricao)
		VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.q.ExecContext(ctx, query,
		movement.ItemID, movement.ItemName, movement.Type,
		movement.Quantity, movement.Destination, movement.Description,
	)
	if err != nil {
		if isConstraintViolation(err) {
			return fmt.Errorf("insert movement: %w", domain.ErrInvalidInput)
		}
		return fmt.Errorf("insert movement: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("last insert id: %w", err)
	}
	movement.ID = id
	return nil
}

// ListSince devuelve los movimientos de los últimos `days` días, del más reciente al más antiguo.
func (r *MovementRepo) ListSince(ctx context.Context, days int) ([]*entity.Movement, error) {
	query := `
		SELECT id, item_id, item_nome, tipo, quantidade, destino, descricao, data
		FROM movimentacoes
		WHERE data >= datetime('now', ?)
		ORDER BY data DESC, id DESC`
	rows, err := r.q.QueryContext(ctx, query, fmt.Sprintf("-%d days", days))
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		var (
			m                  entity.Movement
			destino, descricao sql.NullString
			data               sql.NullTime
		)
		if err := rows.Scan(&m.ID, &m.ItemID, &m.ItemName, &m.Type, &m.Quantity, &destino, &descricao, &data); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		m.Destination = destino.String
		m.Description = descricao.String
		m.Date = data.Time
		list = append(list, &m)
	}
	return list, rows.Err()
}

// DeleteAll vacía el libro de movimientos (solo limpieza total o importación).
func (r *MovementRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.q.ExecContext(ctx, `DELETE FROM movimentacoes`); err != nil {
		return fmt.Errorf("delete all movements: %w", err)
	}
	return nil
}
