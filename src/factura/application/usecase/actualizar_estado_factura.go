package usecase

import (
	"context"

	"almacen/src/factura/domain/entity"
	"almacen/src/factura/domain/port"
)

// ActualizarEstadoFacturaUseCase caso de uso para cambiar el estado de una factura
type ActualizarEstadoFacturaUseCase struct {
	facturaRepo port.FacturaRepository
}

// NewActualizarEstadoFacturaUseCase crea una nueva instancia del caso de uso
func NewActualizarEstadoFacturaUseCase(facturaRepo port.FacturaRepository) *ActualizarEstadoFacturaUseCase {
	return &ActualizarEstadoFacturaUseCase{
		facturaRepo: facturaRepo,
	}
}

// Execute valida el estado contra el conjunto permitido y lo sobreescribe
func (uc *ActualizarEstadoFacturaUseCase) Execute(ctx context.Context, facturaID int64, estado string) error {
	nuevoEstado := entity.EstadoFactura(estado)
	if !nuevoEstado.IsValid() {
		return entity.ErrEstadoFacturaInvalido
	}

	return uc.facturaRepo.UpdateEstado(ctx, facturaID, nuevoEstado)
}
