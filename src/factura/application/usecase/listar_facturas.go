package usecase

import (
	"context"

	"almacen/src/factura/domain/entity"
	"almacen/src/factura/domain/port"
)

// ListarFacturasUseCase caso de uso para listar facturas
type ListarFacturasUseCase struct {
	facturaRepo port.FacturaRepository
}

// NewListarFacturasUseCase crea una nueva instancia del caso de uso
func NewListarFacturasUseCase(facturaRepo port.FacturaRepository) *ListarFacturasUseCase {
	return &ListarFacturasUseCase{
		facturaRepo: facturaRepo,
	}
}

// Execute retorna todas las facturas, más recientes primero
func (uc *ListarFacturasUseCase) Execute(ctx context.Context) ([]*entity.Factura, error) {
	return uc.facturaRepo.List(ctx)
}
