package port

import (
	"context"

	"almacen/src/solicitud/domain/entity"
)

// SolicitudRepository define los métodos para persistir Solicitudes.
// Create ejecuta la unidad atómica completa: header + detalles + descuento
// de stock + total, todo dentro de una sola transacción.
type SolicitudRepository interface {
	Create(ctx context.Context, solicitud *entity.Solicitud) error
	List(ctx context.Context) ([]*entity.Solicitud, error)
	UpdateEstado(ctx context.Context, solicitudID int64, estado entity.Estado) error
}
