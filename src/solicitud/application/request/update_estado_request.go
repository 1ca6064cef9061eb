package request

// UpdateEstadoRequest representa la petición para cambiar el estado de una solicitud
type UpdateEstadoRequest struct {
	Estado string `json:"estado" binding:"required"`
}
