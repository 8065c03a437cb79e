package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

const itemColumns = "id, nome, serie, descricao, origem, destino, valor, nf, quantidade, minimo, ideal, infos, data_cadastro"

// ItemRepo implementación del puerto ItemRepository sobre SQLite (usable con DB o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador de persistencia para items. Pasar DB o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// Create persiste un nuevo item. El almacén asigna ID y data_cadastro.
func (r *ItemRepo) Create(ctx context.Context, item *entity.Item) error {
	query := `
		INSERT INTO itens (nome, serie, descricao, origem, destino, valor, nf, quantidade, minimo, ideal, infos)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.q.ExecContext(ctx, query,
		item.Name, item.Serial, item.Description, item.Origin, item.Destination,
		item.Value, item.Invoice, item.Quantity, item.Minimum, item.Ideal, item.Notes,
	)
	if err != nil {
		if isConstraintViolation(err) {
			return fmt.Errorf("insert item: %w", domain.ErrInvalidInput)
		}
		return fmt.Errorf("insert item: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("last insert id: %w", err)
	}
	item.ID = id
	return nil
}

// GetByID obtiene un item por ID. Devuelve domain.ErrNotFound si no existe.
func (r *ItemRepo) GetByID(ctx context.Context, id int64) (*entity.Item, error) {
	row := r.q.QueryRowContext(ctx, `SELECT `+itemColumns+` FROM itens WHERE id = ?`, id)
	item, err := scanItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return item, nil
}

// ListAll devuelve todos los items ordenados por nombre ascendente.
func (r *ItemRepo) ListAll(ctx context.Context) ([]*entity.Item, error) {
	rows, err := r.q.QueryContext(ctx, `SELECT `+itemColumns+` FROM itens ORDER BY nome`)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	var list []*entity.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, item)
	}
	return list, rows.Err()
}

// UpdateQuantity fija la cantidad en mano del item.
func (r *ItemRepo) UpdateQuantity(ctx context.Context, id int64, quantity int64) error {
	res, err := r.q.ExecContext(ctx, `UPDATE itens SET quantidade = ? WHERE id = ?`, quantity, id)
	if err != nil {
		return fmt.Errorf("update quantity: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un item por ID.
func (r *ItemRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM itens WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteAll vacía la tabla de items. Los movimientos no se tocan: el historial
// conserva item_id que pueden dejar de existir (traza histórica, no bug).
func (r *ItemRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.q.ExecContext(ctx, `DELETE FROM itens`); err != nil {
		return fmt.Errorf("delete all items: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanItem normaliza columnas NULL a cadena vacía / cero al materializar la entidad.
func scanItem(row rowScanner) (*entity.Item, error) {
	var (
		item                              entity.Item
		serie, descricao, origem, destino sql.NullString
		nf, infos                         sql.NullString
		valor                             decimal.NullDecimal
		quantidade, minimo, ideal         sql.NullInt64
		dataCadastro                      sql.NullTime
	)
	if err := row.Scan(
		&item.ID, &item.Name, &serie, &descricao, &origem, &destino,
		&valor, &nf, &quantidade, &minimo, &ideal, &infos, &dataCadastro,
	); err != nil {
		return nil, err
	}
	item.Serial = serie.String
	item.Description = descricao.String
	item.Origin = origem.String
	item.Destination = destino.String
	item.Value = valor.Decimal
	item.Invoice = nf.String
	item.Quantity = quantidade.Int64
	item.Minimum = minimo.Int64
	item.Ideal = ideal.Int64
	item.Notes = infos.String
	item.CreatedAt = dataCadastro.Time
	return &item, nil
}
