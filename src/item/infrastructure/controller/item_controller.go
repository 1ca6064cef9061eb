package controller

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"almacen/src/item/application/request"
	"almacen/src/item/application/usecase"
	"almacen/src/item/domain/entity"
	"almacen/src/item/infrastructure/images"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ItemController maneja las peticiones HTTP para el catálogo de items
type ItemController struct {
	crearItemUC      *usecase.CrearItemUseCase
	listarItemsUC    *usecase.ListarItemsUseCase
	obtenerItemUC    *usecase.ObtenerItemUseCase
	actualizarItemUC *usecase.ActualizarItemUseCase
	eliminarItemUC   *usecase.EliminarItemUseCase
	ajustarStockUC   *usecase.AjustarStockUseCase
	imageProcessor   *images.Processor
}

// NewItemController crea una nueva instancia del controlador
func NewItemController(
	crearItemUC *usecase.CrearItemUseCase,
	listarItemsUC *usecase.ListarItemsUseCase,
	obtenerItemUC *usecase.ObtenerItemUseCase,
	actualizarItemUC *usecase.ActualizarItemUseCase,
	eliminarItemUC *usecase.EliminarItemUseCase,
	ajustarStockUC *usecase.AjustarStockUseCase,
	imageProcessor *images.Processor,
) *ItemController {
	return &ItemController{
		crearItemUC:      crearItemUC,
		listarItemsUC:    listarItemsUC,
		obtenerItemUC:    obtenerItemUC,
		actualizarItemUC: actualizarItemUC,
		eliminarItemUC:   eliminarItemUC,
		ajustarStockUC:   ajustarStockUC,
		imageProcessor:   imageProcessor,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *ItemController) RegisterRoutes(router *gin.RouterGroup) {
	items := router.Group("/items")
	{
		items.POST("", c.CrearItem)
		items.GET("", c.ListarItems)
		items.GET("/:id", c.ObtenerItem)
		items.PUT("/:id", c.ActualizarItem)
		items.DELETE("/:id", c.EliminarItem)
		items.PUT("/:id/decrementar", c.Decrementar)
		items.PUT("/:id/incrementar", c.Incrementar)
	}

	log.Println("Rutas Item disponibles:")
	log.Println("  POST   /api/items")
	log.Println("  GET    /api/items")
	log.Println("  GET    /api/items/:id")
	log.Println("  PUT    /api/items/:id")
	log.Println("  DELETE /api/items/:id")
	log.Println("  PUT    /api/items/:id/decrementar")
	log.Println("  PUT    /api/items/:id/incrementar")
}

// bindItemForm valida el formulario multipart y procesa la imagen si llegó archivo
func (c *ItemController) bindItemForm(ctx *gin.Context) (*request.ItemRequest, decimal.Decimal, string, bool) {
	var req request.ItemRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return nil, decimal.Zero, "", false
	}

	precio, err := decimal.NewFromString(req.Precio)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "precio inválido"})
		return nil, decimal.Zero, "", false
	}

	imagen := ""
	if file, err := ctx.FormFile("imagen"); err == nil && c.imageProcessor != nil {
		src, err := file.Open()
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "No se pudo leer la imagen"})
			return nil, decimal.Zero, "", false
		}
		defer src.Close()

		imagen, err = c.imageProcessor.Save(src, req.Nombre)
		if err != nil {
			log.Printf("Error processing image: %v", err)
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Imagen inválida"})
			return nil, decimal.Zero, "", false
		}
	}

	return &req, precio, imagen, true
}

// CrearItem maneja el alta de un item con imagen opcional
func (c *ItemController) CrearItem(ctx *gin.Context) {
	req, precio, imagen, ok := c.bindItemForm(ctx)
	if !ok {
		return
	}

	item, err := c.crearItemUC.Execute(ctx.Request.Context(), req.Nombre, precio, req.Cantidad, req.Descripcion, imagen)
	if err != nil {
		c.respondItemError(ctx, err, "Error al crear el producto")
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Producto creado correctamente",
		"item":    item,
	})
}

// ListarItems retorna el catálogo completo
func (c *ItemController) ListarItems(ctx *gin.Context) {
	items, err := c.listarItemsUC.Execute(ctx.Request.Context())
	if err != nil {
		log.Printf("Error listing items: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener los items"})
		return
	}

	ctx.JSON(http.StatusOK, items)
}

// ObtenerItem retorna un item por id
func (c *ItemController) ObtenerItem(ctx *gin.Context) {
	itemID, ok := c.parseID(ctx)
	if !ok {
		return
	}

	item, err := c.obtenerItemUC.Execute(ctx.Request.Context(), itemID)
	if err != nil {
		c.respondItemError(ctx, err, "Error al obtener el item")
		return
	}

	ctx.JSON(http.StatusOK, item)
}

// ActualizarItem actualiza un item; la imagen solo cambia si llega archivo nuevo
func (c *ItemController) ActualizarItem(ctx *gin.Context) {
	itemID, ok := c.parseID(ctx)
	if !ok {
		return
	}

	req, precio, imagen, ok := c.bindItemForm(ctx)
	if !ok {
		return
	}

	item, err := c.actualizarItemUC.Execute(ctx.Request.Context(), itemID, req.Nombre, precio, req.Cantidad, req.Descripcion, imagen)
	if err != nil {
		c.respondItemError(ctx, err, "Error al actualizar el producto")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Producto actualizado correctamente",
		"item":    item,
	})
}

// EliminarItem borra un item del catálogo
func (c *ItemController) EliminarItem(ctx *gin.Context) {
	itemID, ok := c.parseID(ctx)
	if !ok {
		return
	}

	if err := c.eliminarItemUC.Execute(ctx.Request.Context(), itemID); err != nil {
		c.respondItemError(ctx, err, "Error al eliminar el producto")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Item eliminado correctamente"})
}

// Decrementar descuenta una unidad de stock
func (c *ItemController) Decrementar(ctx *gin.Context) {
	itemID, ok := c.parseID(ctx)
	if !ok {
		return
	}

	if err := c.ajustarStockUC.Decrementar(ctx.Request.Context(), itemID); err != nil {
		if errors.Is(err, entity.ErrItemAgotado) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "El producto está agotado"})
			return
		}
		c.respondItemError(ctx, err, "Error en el servidor")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Cantidad decrementada correctamente"})
}

// Incrementar suma una unidad de stock
func (c *ItemController) Incrementar(ctx *gin.Context) {
	itemID, ok := c.parseID(ctx)
	if !ok {
		return
	}

	if err := c.ajustarStockUC.Incrementar(ctx.Request.Context(), itemID); err != nil {
		c.respondItemError(ctx, err, "Error en el servidor")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Cantidad incrementada correctamente"})
}

func (c *ItemController) parseID(ctx *gin.Context) (int64, bool) {
	itemID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "id inválido"})
		return 0, false
	}
	return itemID, true
}

func (c *ItemController) respondItemError(ctx *gin.Context, err error, generic string) {
	if errors.Is(err, entity.ErrItemNoEncontrado) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Item no encontrado"})
		return
	}
	if errors.Is(err, entity.ErrNombreRequerido) ||
		errors.Is(err, entity.ErrPrecioInvalido) ||
		errors.Is(err, entity.ErrStockInvalido) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log.Printf("%s: %v", generic, err)
	ctx.JSON(http.StatusInternalServerError, gin.H{"error": generic})
}
