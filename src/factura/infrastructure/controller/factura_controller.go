package controller

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"almacen/src/factura/application/usecase"
	"almacen/src/factura/domain/entity"

	"github.com/gin-gonic/gin"
)

// FacturaController maneja las peticiones HTTP para facturas
type FacturaController struct {
	emitirFacturaUC    *usecase.EmitirFacturaUseCase
	listarFacturasUC   *usecase.ListarFacturasUseCase
	obtenerFacturaUC   *usecase.ObtenerFacturaUseCase
	actualizarEstadoUC *usecase.ActualizarEstadoFacturaUseCase
}

// NewFacturaController crea una nueva instancia del controlador
func NewFacturaController(
	emitirFacturaUC *usecase.EmitirFacturaUseCase,
	listarFacturasUC *usecase.ListarFacturasUseCase,
	obtenerFacturaUC *usecase.ObtenerFacturaUseCase,
	actualizarEstadoUC *usecase.ActualizarEstadoFacturaUseCase,
) *FacturaController {
	return &FacturaController{
		emitirFacturaUC:    emitirFacturaUC,
		listarFacturasUC:   listarFacturasUC,
		obtenerFacturaUC:   obtenerFacturaUC,
		actualizarEstadoUC: actualizarEstadoUC,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *FacturaController) RegisterRoutes(router *gin.RouterGroup) {
	facturas := router.Group("/facturas")
	{
		facturas.POST("", c.EmitirFactura)
		facturas.GET("", c.ListarFacturas)
		facturas.GET("/:id", c.ObtenerFactura)
		facturas.PUT("/:id/estado", c.ActualizarEstado)
	}

	log.Println("Rutas Factura disponibles:")
	log.Println("  POST   /api/facturas")
	log.Println("  GET    /api/facturas")
	log.Println("  GET    /api/facturas/:id")
	log.Println("  PUT    /api/facturas/:id/estado")
}

// emitirFacturaRequest es el body para emitir una factura
type emitirFacturaRequest struct {
	SolicitudID int64 `json:"solicitud_id" binding:"required"`
}

// EmitirFactura emite la factura de una solicitud existente
func (c *FacturaController) EmitirFactura(ctx *gin.Context) {
	var req emitirFacturaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	factura, err := c.emitirFacturaUC.Execute(ctx.Request.Context(), req.SolicitudID)
	if err != nil {
		if errors.Is(err, entity.ErrSolicitudNoEncontrada) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Solicitud no encontrada"})
			return
		}
		if errors.Is(err, entity.ErrSolicitudYaFacturada) {
			ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error creating factura: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error al emitir la factura"})
		return
	}

	ctx.JSON(http.StatusCreated, factura)
}

// ListarFacturas retorna todas las facturas
func (c *FacturaController) ListarFacturas(ctx *gin.Context) {
	facturas, err := c.listarFacturasUC.Execute(ctx.Request.Context())
	if err != nil {
		log.Printf("Error listing facturas: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener facturas"})
		return
	}

	ctx.JSON(http.StatusOK, facturas)
}

// ObtenerFactura retorna una factura por id
func (c *FacturaController) ObtenerFactura(ctx *gin.Context) {
	facturaID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "id inválido"})
		return
	}

	factura, err := c.obtenerFacturaUC.Execute(ctx.Request.Context(), facturaID)
	if err != nil {
		if errors.Is(err, entity.ErrFacturaNoEncontrada) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Factura no encontrada"})
			return
		}
		log.Printf("Error getting factura: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener la factura"})
		return
	}

	ctx.JSON(http.StatusOK, factura)
}

// ActualizarEstado cambia el estado de una factura
func (c *FacturaController) ActualizarEstado(ctx *gin.Context) {
	facturaID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "id inválido"})
		return
	}

	var req struct {
		Estado string `json:"estado" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	if err := c.actualizarEstadoUC.Execute(ctx.Request.Context(), facturaID, req.Estado); err != nil {
		if errors.Is(err, entity.ErrEstadoFacturaInvalido) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Estado no válido"})
			return
		}
		if errors.Is(err, entity.ErrFacturaNoEncontrada) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Factura no encontrada"})
			return
		}
		log.Printf("Error updating estado_factura: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error al actualizar estado"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Estado actualizado correctamente"})
}
