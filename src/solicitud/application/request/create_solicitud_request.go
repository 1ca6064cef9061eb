package request

// ItemSolicitudRequest representa una línea dentro de una solicitud
type ItemSolicitudRequest struct {
	ItemID   int64 `json:"item_id" binding:"required"`
	Cantidad int   `json:"cantidad" binding:"required,gt=0"`
}

// CreateSolicitudRequest representa la petición para crear una solicitud (multi-item)
type CreateSolicitudRequest struct {
	ClienteID  int64                  `json:"cliente_id" binding:"required"`
	Comentario string                 `json:"comentario,omitempty"`
	MetodoPago string                 `json:"metodo_pago" binding:"required,oneof=efectivo tarjeta transferencia"`
	Items      []ItemSolicitudRequest `json:"items" binding:"required,min=1,dive"`
}
