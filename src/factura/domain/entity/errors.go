package entity

import "errors"

var (
	ErrFacturaNoEncontrada   = errors.New("factura no encontrada")
	ErrEstadoFacturaInvalido = errors.New("estado de factura no válido")
	ErrSolicitudNoEncontrada = errors.New("solicitud no encontrada")
	ErrSolicitudYaFacturada  = errors.New("la solicitud ya tiene factura emitida")
)
