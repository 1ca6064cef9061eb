package usecase

import (
	"context"
	"fmt"

	"almacen/src/solicitud/application/request"
	"almacen/src/solicitud/application/response"
	"almacen/src/solicitud/domain/entity"
	"almacen/src/solicitud/domain/port"
)

// CrearSolicitudUseCase caso de uso para crear una solicitud de compra
type CrearSolicitudUseCase struct {
	solicitudRepo port.SolicitudRepository
}

// NewCrearSolicitudUseCase crea una nueva instancia del caso de uso
func NewCrearSolicitudUseCase(solicitudRepo port.SolicitudRepository) *CrearSolicitudUseCase {
	return &CrearSolicitudUseCase{
		solicitudRepo: solicitudRepo,
	}
}

// Execute ejecuta la creación de la solicitud:
// 1. Validar entrada ANTES de tocar persistencia (método de pago, cantidades)
// 2. Construir el aggregate en memoria
// 3. Delegar al repositorio la unidad atómica (header + detalles + stock + total)
// 4. Devolver id, total calculado y estado inicial
//
// Si cualquier línea falla (item inexistente o stock insuficiente) la
// transacción completa se revierte y se propaga el primer error encontrado.
func (uc *CrearSolicitudUseCase) Execute(ctx context.Context, req *request.CreateSolicitudRequest) (*response.CreateSolicitudResponse, error) {
	metodoPago := entity.MetodoPago(req.MetodoPago)
	if !metodoPago.IsValid() {
		return nil, entity.ErrMetodoPagoInvalido
	}

	var detalles []entity.Detalle
	for _, itemReq := range req.Items {
		detalle, err := entity.NewDetalle(itemReq.ItemID, itemReq.Cantidad)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", itemReq.ItemID, err)
		}
		detalles = append(detalles, *detalle)
	}

	solicitud, err := entity.NewSolicitud(req.ClienteID, req.Comentario, metodoPago, detalles)
	if err != nil {
		return nil, err
	}

	if err := uc.solicitudRepo.Create(ctx, solicitud); err != nil {
		return nil, err
	}

	return &response.CreateSolicitudResponse{
		SolicitudID: solicitud.ID,
		Total:       solicitud.Total,
		Estado:      string(solicitud.Estado),
	}, nil
}
