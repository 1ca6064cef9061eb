package usecase

import (
	"context"

	"almacen/src/item/domain/entity"
	"almacen/src/item/domain/port"
)

// ListarItemsUseCase caso de uso para listar el catálogo completo
type ListarItemsUseCase struct {
	itemRepo port.ItemRepository
}

// NewListarItemsUseCase crea una nueva instancia del caso de uso
func NewListarItemsUseCase(itemRepo port.ItemRepository) *ListarItemsUseCase {
	return &ListarItemsUseCase{
		itemRepo: itemRepo,
	}
}

// Execute retorna todos los items
func (uc *ListarItemsUseCase) Execute(ctx context.Context) ([]*entity.Item, error) {
	return uc.itemRepo.List(ctx)
}
