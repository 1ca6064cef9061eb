package usecase

import (
	"context"

	"almacen/src/solicitud/application/response"
	"almacen/src/solicitud/domain/port"
)

// ListarSolicitudesUseCase caso de uso para listar solicitudes (admin)
type ListarSolicitudesUseCase struct {
	solicitudRepo port.SolicitudRepository
}

// NewListarSolicitudesUseCase crea una nueva instancia del caso de uso
func NewListarSolicitudesUseCase(solicitudRepo port.SolicitudRepository) *ListarSolicitudesUseCase {
	return &ListarSolicitudesUseCase{
		solicitudRepo: solicitudRepo,
	}
}

// Execute retorna todas las solicitudes con nombre de cliente y detalles,
// ordenadas por fecha de creación descendente
func (uc *ListarSolicitudesUseCase) Execute(ctx context.Context) ([]response.SolicitudListItem, error) {
	solicitudes, err := uc.solicitudRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]response.SolicitudListItem, 0, len(solicitudes))
	for _, solicitud := range solicitudes {
		var detalles []response.DetalleResponse
		for _, detalle := range solicitud.Detalles {
			detalles = append(detalles, response.DetalleResponse{
				ItemID:         detalle.ItemID,
				Nombre:         detalle.ItemNombre,
				Cantidad:       detalle.Cantidad,
				PrecioUnitario: detalle.PrecioUnitario,
			})
		}

		items = append(items, response.SolicitudListItem{
			ID:            solicitud.ID,
			ClienteID:     solicitud.ClienteID,
			ClienteNombre: solicitud.ClienteNombre,
			Comentario:    solicitud.Comentario,
			MetodoPago:    string(solicitud.MetodoPago),
			Estado:        string(solicitud.Estado),
			Total:         solicitud.Total,
			FechaCreacion: solicitud.FechaCreacion.Format("2006-01-02T15:04:05Z07:00"),
			Detalles:      detalles,
		})
	}

	return items, nil
}
