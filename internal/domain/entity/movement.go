package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeIn  = "entrada"
	MovementTypeOut = "saida"
)

// Movement es una entrada inmutable del libro de movimientos. ItemName es una
// copia desnormalizada del nombre al momento del movimiento: sobrevive a la
// eliminación o unificación del item, por lo que ItemID puede quedar apuntando
// a una identidad que ya no existe en la tabla de items.
type Movement struct {
	ID          int64
	ItemID      int64
	ItemName    string // item_nome
	Type        string // entrada | saida
	Quantity    int64  // siempre positiva
	Destination string // destino (semánticamente solo para salidas)
	Description string // descricao
	Date        time.Time
}
