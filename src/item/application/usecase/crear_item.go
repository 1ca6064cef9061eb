package usecase

import (
	"context"

	"almacen/src/item/domain/entity"
	"almacen/src/item/domain/port"

	"github.com/shopspring/decimal"
)

// CrearItemUseCase caso de uso para crear un item del catálogo
type CrearItemUseCase struct {
	itemRepo port.ItemRepository
}

// NewCrearItemUseCase crea una nueva instancia del caso de uso
func NewCrearItemUseCase(itemRepo port.ItemRepository) *CrearItemUseCase {
	return &CrearItemUseCase{
		itemRepo: itemRepo,
	}
}

// Execute valida y persiste el item; imagen es la ruta pública ya procesada
func (uc *CrearItemUseCase) Execute(ctx context.Context, nombre string, precio decimal.Decimal, stock int, descripcion, imagen string) (*entity.Item, error) {
	item, err := entity.NewItem(nombre, precio, stock, descripcion, imagen)
	if err != nil {
		return nil, err
	}

	if err := uc.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}
