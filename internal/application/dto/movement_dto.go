package dto

import "time"

// MovementResponse representación HTTP de un movimiento del libro.
// ItemNome es la copia desnormalizada: puede no corresponder ya a ningún item.
type MovementResponse struct {
	ID         int64     `json:"id"`
	ItemID     int64     `json:"item_id"`
	ItemNome   string    `json:"item_nome"`
	Tipo       string    `json:"tipo"`
	Quantidade int64     `json:"quantidade"`
	Destino    string    `json:"destino"`
	Descricao  string    `json:"descricao"`
	Data       time.Time `json:"data"`
}
