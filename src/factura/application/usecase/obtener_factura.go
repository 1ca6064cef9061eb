package usecase

import (
	"context"

	"almacen/src/factura/domain/entity"
	"almacen/src/factura/domain/port"
)

// ObtenerFacturaUseCase caso de uso para obtener una factura por id
type ObtenerFacturaUseCase struct {
	facturaRepo port.FacturaRepository
}

// NewObtenerFacturaUseCase crea una nueva instancia del caso de uso
func NewObtenerFacturaUseCase(facturaRepo port.FacturaRepository) *ObtenerFacturaUseCase {
	return &ObtenerFacturaUseCase{
		facturaRepo: facturaRepo,
	}
}

// Execute retorna la factura o ErrFacturaNoEncontrada
func (uc *ObtenerFacturaUseCase) Execute(ctx context.Context, facturaID int64) (*entity.Factura, error) {
	return uc.facturaRepo.FindByID(ctx, facturaID)
}
