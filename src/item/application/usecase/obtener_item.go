package usecase

import (
	"context"

	"almacen/src/item/domain/entity"
	"almacen/src/item/domain/port"
)

// ObtenerItemUseCase caso de uso para obtener un item por id
type ObtenerItemUseCase struct {
	itemRepo port.ItemRepository
}

// NewObtenerItemUseCase crea una nueva instancia del caso de uso
func NewObtenerItemUseCase(itemRepo port.ItemRepository) *ObtenerItemUseCase {
	return &ObtenerItemUseCase{
		itemRepo: itemRepo,
	}
}

// Execute retorna el item o ErrItemNoEncontrado
func (uc *ObtenerItemUseCase) Execute(ctx context.Context, itemID int64) (*entity.Item, error) {
	return uc.itemRepo.FindByID(ctx, itemID)
}
