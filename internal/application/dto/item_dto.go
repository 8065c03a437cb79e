package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateItemRequest body para POST /api/itens. Los nombres de campo conservan
// el vocabulario del front-end desplegado.
type CreateItemRequest struct {
	Nome       string          `json:"nome"`
	Serie      string          `json:"serie,omitempty"`
	Descricao  string          `json:"descricao,omitempty"`
	Origem     string          `json:"origem,omitempty"`
	Destino    string          `json:"destino,omitempty"`
	Valor      decimal.Decimal `json:"valor"`
	NF         string          `json:"nf,omitempty"`
	Quantidade int64           `json:"quantidade"`
	Minimo     *int64          `json:"minimo,omitempty"`
	Ideal      *int64          `json:"ideal,omitempty"`
	Infos      string          `json:"infos,omitempty"`
}

// CreateItemResponse respuesta de creación: identidad asignada por el almacén.
type CreateItemResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// UpdateItemRequest body para PUT /api/itens/:id (solo cantidad).
type UpdateItemRequest struct {
	Quantidade *int64 `json:"quantidade"`
}

// StockRequest body para adicionar/retirar stock.
type StockRequest struct {
	Quantidade int64  `json:"quantidade"`
	Destino    string `json:"destino,omitempty"`
	Observacao string `json:"observacao,omitempty"`
}

// ItemResponse representación HTTP de un item.
type ItemResponse struct {
	ID           int64           `json:"id"`
	Nome         string          `json:"nome"`
	Serie        string          `json:"serie"`
	Descricao    string          `json:"descricao"`
	Origem       string          `json:"origem"`
	Destino      string          `json:"destino"`
	Valor        decimal.Decimal `json:"valor"`
	NF           string          `json:"nf"`
	Quantidade   int64           `json:"quantidade"`
	Minimo       int64           `json:"minimo"`
	Ideal        int64           `json:"ideal"`
	Infos        string          `json:"infos"`
	DataCadastro time.Time       `json:"data_cadastro"`
}
