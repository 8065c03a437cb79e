package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SnapshotVersion etiqueta de versión del formato de snapshot.
const SnapshotVersion = "1.0"

// Snapshot export portátil del estado completo: todos los items más la ventana
// reciente de movimientos. Artefacto de transporte entre instancias del almacén,
// nunca parte del estado persistente.
type Snapshot struct {
	Itens         []SnapshotItem     `json:"itens"`
	Movimentacoes []SnapshotMovement `json:"movimentacoes,omitempty"`
	Timestamp     time.Time          `json:"timestamp"`
	Versao        string             `json:"versao"`
}

// SnapshotItem item dentro del snapshot. ID y DataCadastro viajan por trazabilidad
// pero se descartan al importar: el almacén destino reasigna identidades.
type SnapshotItem struct {
	ID           int64           `json:"id,omitempty"`
	Nome         string          `json:"nome"`
	Serie        string          `json:"serie,omitempty"`
	Descricao    string          `json:"descricao,omitempty"`
	Origem       string          `json:"origem,omitempty"`
	Destino      string          `json:"destino,omitempty"`
	Valor        decimal.Decimal `json:"valor"`
	NF           string          `json:"nf,omitempty"`
	Quantidade   int64           `json:"quantidade"`
	Minimo       int64           `json:"minimo"`
	Ideal        int64           `json:"ideal"`
	Infos        string          `json:"infos,omitempty"`
	DataCadastro time.Time       `json:"data_cadastro,omitempty"`
}

// SnapshotMovement movimiento dentro del snapshot. ItemID se reinserta tal cual,
// sin traducir a las identidades nuevas (traza histórica, igual que la unificación).
type SnapshotMovement struct {
	ID         int64     `json:"id,omitempty"`
	ItemID     int64     `json:"item_id"`
	ItemNome   string    `json:"item_nome"`
	Tipo       string    `json:"tipo"`
	Quantidade int64     `json:"quantidade"`
	Destino    string    `json:"destino,omitempty"`
	Descricao  string    `json:"descricao,omitempty"`
	Data       time.Time `json:"data,omitempty"`
}

// ImportResult conteos de la importación de un snapshot.
type ImportResult struct {
	ItensImportados         int `json:"itens_importados"`
	MovimentacoesImportadas int `json:"movimentacoes_importadas"`
}
