package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item representa una unidad de stock del almacén.
// Quantity refleja el efecto neto de todos los movimientos registrados desde su
// creación (o desde la última reescritura por unificación). La identidad la asigna
// el almacén al insertar y se descarta en cada unificación o importación.
type Item struct {
	ID          int64
	Name        string          // nome (obligatorio)
	Serial      string          // serie (opcional; vacío participa en la clave de agrupación)
	Description string          // descricao
	Origin      string          // origem
	Destination string          // destino
	Value       decimal.Decimal // valor monetario
	Invoice     string          // nf (referencia de factura)
	Quantity    int64           // quantidade en mano, nunca negativa
	Minimum     int64           // minimo
	Ideal       int64           // ideal
	Notes       string          // infos (texto libre auxiliar)
	CreatedAt   time.Time       // data_cadastro, inmutable
}

// GroupKey devuelve la clave de agrupación para la unificación de duplicados.
// Concatenación opaca de nombre y serie: dos items con el mismo nombre y ambos
// sin serie SÍ son duplicados.
func (i *Item) GroupKey() string {
	return i.Name + "||" + i.Serial
}
