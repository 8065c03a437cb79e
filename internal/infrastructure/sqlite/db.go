package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/jhoicas/estoque-api/pkg/config"
)

// Esquema del almacén: dos tablas más los índices que mantienen eficientes la
// consulta por ventana de recencia y el escaneo de agrupación. movimentacoes no
// declara clave foránea: el libro sobrevive a sus itens (unificación, importación)
// y item_nome queda como etiqueta durable.
const schema = `
CREATE TABLE IF NOT EXISTS itens (
    id            INTEGER PRIMARY KEY AUTOINCREMENT,
    nome          TEXT NOT NULL,
    serie         TEXT,
    descricao     TEXT,
    origem        TEXT,
    destino       TEXT,
    valor         REAL DEFAULT 0,
    nf            TEXT,
    quantidade    INTEGER NOT NULL DEFAULT 0,
    minimo        INTEGER NOT NULL DEFAULT 0,
    ideal         INTEGER NOT NULL DEFAULT 0,
    infos         TEXT,
    data_cadastro DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS movimentacoes (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    item_id    INTEGER NOT NULL,
    item_nome  TEXT NOT NULL,
    tipo       TEXT NOT NULL CHECK (tipo IN ('entrada', 'saida')),
    quantidade INTEGER NOT NULL,
    destino    TEXT,
    descricao  TEXT,
    data       DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_itens_nome ON itens(nome);
CREATE INDEX IF NOT EXISTS idx_movimentacoes_item_id ON movimentacoes(item_id);
CREATE INDEX IF NOT EXISTS idx_movimentacoes_data ON movimentacoes(data);
`

// Querier abstrae *sql.DB y *sql.Tx: los repositorios funcionan igual sueltos
// o atados a una transacción.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// DB maneja la conexión al almacén SQLite de archivo único, con ciclo de vida
// explícito (Open/Close) e inyectado por referencia a cada componente.
type DB struct {
	db *sql.DB
}

// Open abre (o crea) el archivo del almacén, aplica pragmas y el esquema.
// SQLite admite un solo escritor: se limita el pool a una conexión para evitar
// SQLITE_BUSY entre operaciones concurrentes del propio proceso.
func Open(cfg config.DBConfig) (*DB, error) {
	db, err := sql.Open("sqlite3", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("abrir base: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping base: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		fmt.Sprintf("PRAGMA busy_timeout = %d", cfg.BusyTimeoutMS),
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("aplicar pragma %q: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("aplicar esquema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close cierra la conexión con el almacén.
func (d *DB) Close() error {
	if d.db == nil {
		return nil
	}
	return d.db.Close()
}

// SQL devuelve el *sql.DB subyacente (para transacciones y consultas directas).
func (d *DB) SQL() *sql.DB {
	return d.db
}
