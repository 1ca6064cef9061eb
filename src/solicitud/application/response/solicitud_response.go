package response

import (
	"github.com/shopspring/decimal"
)

// CreateSolicitudResponse representa la respuesta de creación de una solicitud
type CreateSolicitudResponse struct {
	SolicitudID int64           `json:"solicitud_id"`
	Total       decimal.Decimal `json:"total"`
	Estado      string          `json:"estado"`
}

// DetalleResponse representa una línea en el listado
type DetalleResponse struct {
	ItemID         int64           `json:"item_id"`
	Nombre         string          `json:"nombre"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
}

// SolicitudListItem representa una solicitud en el listado (con cliente y detalles)
type SolicitudListItem struct {
	ID            int64             `json:"id"`
	ClienteID     int64             `json:"cliente_id"`
	ClienteNombre string            `json:"cliente_nombre"`
	Comentario    string            `json:"comentario,omitempty"`
	MetodoPago    string            `json:"metodo_pago"`
	Estado        string            `json:"estado"`
	Total         decimal.Decimal   `json:"total"`
	FechaCreacion string            `json:"fecha_creacion"`
	Detalles      []DetalleResponse `json:"detalles"`
}
