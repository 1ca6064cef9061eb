package entity

import (
	"github.com/shopspring/decimal"
)

// Item representa un producto del catálogo con precio y stock
type Item struct {
	ID          int64           `json:"id"`
	Nombre      string          `json:"nombre"`
	Precio      decimal.Decimal `json:"precio"`
	Stock       int             `json:"stock"`
	Descripcion string          `json:"descripcion,omitempty"`
	Imagen      string          `json:"imagen,omitempty"`
}

// NewItem crea un nuevo item del catálogo
func NewItem(nombre string, precio decimal.Decimal, stock int, descripcion, imagen string) (*Item, error) {
	if nombre == "" {
		return nil, ErrNombreRequerido
	}
	if precio.LessThan(decimal.Zero) {
		return nil, ErrPrecioInvalido
	}
	if stock < 0 {
		return nil, ErrStockInvalido
	}

	return &Item{
		Nombre:      nombre,
		Precio:      precio,
		Stock:       stock,
		Descripcion: descripcion,
		Imagen:      imagen,
	}, nil
}
