package port

import (
	"context"

	"almacen/src/factura/domain/entity"
)

// FacturaRepository define los métodos para persistir Facturas.
// CreateFromSolicitud copia total y metodo_pago de la solicitud dentro
// de una transacción para que la factura refleje el estado al emitirla.
type FacturaRepository interface {
	CreateFromSolicitud(ctx context.Context, solicitudID int64) (*entity.Factura, error)
	FindByID(ctx context.Context, facturaID int64) (*entity.Factura, error)
	List(ctx context.Context) ([]*entity.Factura, error)
	UpdateEstado(ctx context.Context, facturaID int64, estado entity.EstadoFactura) error
}
