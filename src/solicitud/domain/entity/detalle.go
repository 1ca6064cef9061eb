package entity

import (
	"github.com/shopspring/decimal"
)

// Detalle representa una línea dentro de una solicitud (Entity dentro del Aggregate).
// PrecioUnitario es un snapshot tomado al momento de crear la solicitud,
// independiente de cambios posteriores de precio en el item.
type Detalle struct {
	ID             int64           `json:"id"`
	SolicitudID    int64           `json:"solicitud_id"`
	ItemID         int64           `json:"item_id"`
	ItemNombre     string          `json:"item_nombre,omitempty"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
}

// NewDetalle crea una nueva línea de solicitud todavía sin precio:
// el snapshot de precio_unitario se completa dentro de la transacción
func NewDetalle(itemID int64, cantidad int) (*Detalle, error) {
	if itemID <= 0 {
		return nil, ErrItemIDRequerido
	}
	if cantidad <= 0 {
		return nil, ErrCantidadInvalida
	}

	return &Detalle{
		ItemID:   itemID,
		Cantidad: cantidad,
	}, nil
}

// Subtotal retorna cantidad × precio_unitario
func (d *Detalle) Subtotal() decimal.Decimal {
	return d.PrecioUnitario.Mul(decimal.NewFromInt(int64(d.Cantidad)))
}
