package usecase

import (
	"context"

	"almacen/src/factura/domain/entity"
	"almacen/src/factura/domain/port"
)

// EmitirFacturaUseCase caso de uso para emitir la factura de una solicitud.
// Desacoplado del workflow de creación de solicitudes: emitir es una
// operación posterior e independiente.
type EmitirFacturaUseCase struct {
	facturaRepo port.FacturaRepository
}

// NewEmitirFacturaUseCase crea una nueva instancia del caso de uso
func NewEmitirFacturaUseCase(facturaRepo port.FacturaRepository) *EmitirFacturaUseCase {
	return &EmitirFacturaUseCase{
		facturaRepo: facturaRepo,
	}
}

// Execute emite la factura copiando total y metodo_pago de la solicitud
func (uc *EmitirFacturaUseCase) Execute(ctx context.Context, solicitudID int64) (*entity.Factura, error) {
	return uc.facturaRepo.CreateFromSolicitud(ctx, solicitudID)
}
