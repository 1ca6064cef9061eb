package entity

import "errors"

var (
	ErrNombreRequerido  = errors.New("nombre es requerido")
	ErrPrecioInvalido   = errors.New("precio debe ser mayor o igual a 0")
	ErrStockInvalido    = errors.New("stock debe ser mayor o igual a 0")
	ErrItemNoEncontrado = errors.New("item no encontrado")
	ErrItemAgotado      = errors.New("el producto está agotado")
)
