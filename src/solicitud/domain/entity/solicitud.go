package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estado representa el estado del ciclo de vida de una solicitud
type Estado string

const (
	EstadoPendiente Estado = "pendiente"
	EstadoAprobada  Estado = "aprobada"
	EstadoRechazada Estado = "rechazada"
	EstadoEntregada Estado = "entregada"
)

// IsValid verifica que el estado pertenezca al conjunto permitido
func (e Estado) IsValid() bool {
	switch e {
	case EstadoPendiente, EstadoAprobada, EstadoRechazada, EstadoEntregada:
		return true
	}
	return false
}

// MetodoPago representa el método de pago de una solicitud
type MetodoPago string

const (
	MetodoPagoEfectivo      MetodoPago = "efectivo"
	MetodoPagoTarjeta       MetodoPago = "tarjeta"
	MetodoPagoTransferencia MetodoPago = "transferencia"
)

// IsValid verifica que el método de pago pertenezca al conjunto permitido
func (m MetodoPago) IsValid() bool {
	switch m {
	case MetodoPagoEfectivo, MetodoPagoTarjeta, MetodoPagoTransferencia:
		return true
	}
	return false
}

// Solicitud representa una solicitud de compra (Aggregate Root)
// Una solicitud contiene uno o más Detalles con precio snapshot
type Solicitud struct {
	ID            int64           `json:"id"`
	ClienteID     int64           `json:"cliente_id"`
	ClienteNombre string          `json:"cliente_nombre,omitempty"`
	Comentario    string          `json:"comentario,omitempty"`
	MetodoPago    MetodoPago      `json:"metodo_pago"`
	Estado        Estado          `json:"estado"`
	Total         decimal.Decimal `json:"total"`
	FechaCreacion time.Time       `json:"fecha_creacion"`
	Detalles      []Detalle       `json:"detalles"`
}

// NewSolicitud crea una nueva solicitud en estado pendiente con total cero.
// El total definitivo lo calcula el repositorio al persistir los detalles,
// porque el precio se snapshotea dentro de la transacción.
func NewSolicitud(clienteID int64, comentario string, metodoPago MetodoPago, detalles []Detalle) (*Solicitud, error) {
	if clienteID <= 0 {
		return nil, ErrClienteIDRequerido
	}
	if !metodoPago.IsValid() {
		return nil, ErrMetodoPagoInvalido
	}
	if len(detalles) == 0 {
		return nil, ErrSolicitudSinItems
	}

	return &Solicitud{
		ClienteID:     clienteID,
		Comentario:    comentario,
		MetodoPago:    metodoPago,
		Estado:        EstadoPendiente,
		Total:         decimal.Zero,
		FechaCreacion: time.Now(),
		Detalles:      detalles,
	}, nil
}

// TotalDetalles retorna el número total de líneas
func (s *Solicitud) TotalDetalles() int {
	return len(s.Detalles)
}
