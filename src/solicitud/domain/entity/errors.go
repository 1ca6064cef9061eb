package entity

import (
	"errors"
	"fmt"
)

var (
	ErrClienteIDRequerido    = errors.New("cliente_id es requerido")
	ErrItemIDRequerido       = errors.New("item_id es requerido")
	ErrCantidadInvalida      = errors.New("cantidad debe ser mayor a 0")
	ErrMetodoPagoInvalido    = errors.New("método de pago no válido")
	ErrEstadoInvalido        = errors.New("estado no válido")
	ErrSolicitudSinItems     = errors.New("la solicitud debe tener al menos un item")
	ErrSolicitudNoEncontrada = errors.New("solicitud no encontrada")
)

// ItemNoExisteError indica que un item referenciado por la solicitud no existe.
// Lleva el id del item ofensor para que el controller lo exponga al cliente.
type ItemNoExisteError struct {
	ItemID int64
}

func (e *ItemNoExisteError) Error() string {
	return fmt.Sprintf("item con id %d no existe", e.ItemID)
}

// StockInsuficienteError indica que un item no tiene stock suficiente
// para la cantidad solicitada. Lleva el faltante para el payload de error.
type StockInsuficienteError struct {
	ItemID     int64
	Solicitado int
	Disponible int
}

func (e *StockInsuficienteError) Error() string {
	return fmt.Sprintf("stock insuficiente para el item %d: solicitado %d, disponible %d",
		e.ItemID, e.Solicitado, e.Disponible)
}
