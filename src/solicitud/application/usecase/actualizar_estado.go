package usecase

import (
	"context"

	"almacen/src/solicitud/domain/entity"
	"almacen/src/solicitud/domain/port"
)

// ActualizarEstadoUseCase caso de uso para cambiar el estado de una solicitud
type ActualizarEstadoUseCase struct {
	solicitudRepo port.SolicitudRepository
}

// NewActualizarEstadoUseCase crea una nueva instancia del caso de uso
func NewActualizarEstadoUseCase(solicitudRepo port.SolicitudRepository) *ActualizarEstadoUseCase {
	return &ActualizarEstadoUseCase{
		solicitudRepo: solicitudRepo,
	}
}

// Execute valida el estado contra el conjunto permitido antes de tocar
// almacenamiento y lo sobreescribe. No se restringe el grafo de transiciones.
func (uc *ActualizarEstadoUseCase) Execute(ctx context.Context, solicitudID int64, estado string) error {
	nuevoEstado := entity.Estado(estado)
	if !nuevoEstado.IsValid() {
		return entity.ErrEstadoInvalido
	}

	return uc.solicitudRepo.UpdateEstado(ctx, solicitudID, nuevoEstado)
}
