package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// EstadoFactura representa el estado de cobro de una factura
type EstadoFactura string

const (
	EstadoFacturaPendiente EstadoFactura = "pendiente"
	EstadoFacturaPagada    EstadoFactura = "pagada"
	EstadoFacturaAnulada   EstadoFactura = "anulada"
)

// IsValid verifica que el estado pertenezca al conjunto permitido
func (e EstadoFactura) IsValid() bool {
	switch e {
	case EstadoFacturaPendiente, EstadoFacturaPagada, EstadoFacturaAnulada:
		return true
	}
	return false
}

// Factura representa un registro de facturación derivado de una solicitud.
// Total y metodo_pago se copian de la solicitud al momento de emitir.
type Factura struct {
	ID            int64           `json:"id"`
	SolicitudID   int64           `json:"solicitud_id"`
	UserID        int64           `json:"user_id"`
	Fecha         time.Time       `json:"fecha"`
	Total         decimal.Decimal `json:"total"`
	MetodoPago    string          `json:"metodo_pago"`
	NumeroFactura string          `json:"numero_factura"`
	EstadoFactura EstadoFactura   `json:"estado_factura"`
}
