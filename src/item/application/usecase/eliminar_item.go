package usecase

import (
	"context"

	"almacen/src/item/domain/port"
)

// EliminarItemUseCase caso de uso para eliminar un item del catálogo
type EliminarItemUseCase struct {
	itemRepo port.ItemRepository
}

// NewEliminarItemUseCase crea una nueva instancia del caso de uso
func NewEliminarItemUseCase(itemRepo port.ItemRepository) *EliminarItemUseCase {
	return &EliminarItemUseCase{
		itemRepo: itemRepo,
	}
}

// Execute elimina el item o retorna ErrItemNoEncontrado
func (uc *EliminarItemUseCase) Execute(ctx context.Context, itemID int64) error {
	return uc.itemRepo.Delete(ctx, itemID)
}
