package usecase

import (
	"context"

	"almacen/src/item/domain/entity"
	"almacen/src/item/domain/port"

	"github.com/shopspring/decimal"
)

// ActualizarItemUseCase caso de uso para actualizar un item
type ActualizarItemUseCase struct {
	itemRepo port.ItemRepository
}

// NewActualizarItemUseCase crea una nueva instancia del caso de uso
func NewActualizarItemUseCase(itemRepo port.ItemRepository) *ActualizarItemUseCase {
	return &ActualizarItemUseCase{
		itemRepo: itemRepo,
	}
}

// Execute actualiza los campos del item. Si imagen es "" se conserva la
// imagen existente (mismo comportamiento que el alta sin archivo).
func (uc *ActualizarItemUseCase) Execute(ctx context.Context, itemID int64, nombre string, precio decimal.Decimal, stock int, descripcion, imagen string) (*entity.Item, error) {
	existing, err := uc.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if imagen == "" {
		imagen = existing.Imagen
	}

	item, err := entity.NewItem(nombre, precio, stock, descripcion, imagen)
	if err != nil {
		return nil, err
	}
	item.ID = itemID

	if err := uc.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}
