package request

// ItemRequest representa los campos de formulario para crear/actualizar un item.
// La imagen llega aparte como archivo multipart.
type ItemRequest struct {
	Nombre      string `form:"nombre" binding:"required"`
	Precio      string `form:"precio" binding:"required"`
	Cantidad    int    `form:"cantidad" binding:"gte=0"`
	Descripcion string `form:"descripcion"`
}
