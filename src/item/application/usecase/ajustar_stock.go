package usecase

import (
	"context"

	"almacen/src/item/domain/port"
)

// AjustarStockUseCase caso de uso para ajustes unitarios de stock
// (los descuentos por solicitud van por el workflow transaccional, no por acá)
type AjustarStockUseCase struct {
	itemRepo port.ItemRepository
}

// NewAjustarStockUseCase crea una nueva instancia del caso de uso
func NewAjustarStockUseCase(itemRepo port.ItemRepository) *AjustarStockUseCase {
	return &AjustarStockUseCase{
		itemRepo: itemRepo,
	}
}

// Decrementar descuenta una unidad; falla con ErrItemAgotado si el stock es 0
func (uc *AjustarStockUseCase) Decrementar(ctx context.Context, itemID int64) error {
	return uc.itemRepo.Decrementar(ctx, itemID)
}

// Incrementar suma una unidad
func (uc *AjustarStockUseCase) Incrementar(ctx context.Context, itemID int64) error {
	return uc.itemRepo.Incrementar(ctx, itemID)
}
