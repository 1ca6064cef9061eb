package controller

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"almacen/src/shared/infrastructure/metrics"
	"almacen/src/solicitud/application/request"
	"almacen/src/solicitud/application/usecase"
	"almacen/src/solicitud/application/validation"
	"almacen/src/solicitud/domain/entity"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"
)

// SolicitudController maneja las peticiones HTTP para solicitudes
type SolicitudController struct {
	crearSolicitudUC    *usecase.CrearSolicitudUseCase
	listarSolicitudesUC *usecase.ListarSolicitudesUseCase
	actualizarEstadoUC  *usecase.ActualizarEstadoUseCase
	validate            *validatorv10.Validate
	solicitudMetrics    *metrics.SolicitudMetrics
}

// NewSolicitudController crea una nueva instancia del controlador
func NewSolicitudController(
	crearSolicitudUC *usecase.CrearSolicitudUseCase,
	listarSolicitudesUC *usecase.ListarSolicitudesUseCase,
	actualizarEstadoUC *usecase.ActualizarEstadoUseCase,
	solicitudMetrics *metrics.SolicitudMetrics,
) *SolicitudController {
	return &SolicitudController{
		crearSolicitudUC:    crearSolicitudUC,
		listarSolicitudesUC: listarSolicitudesUC,
		actualizarEstadoUC:  actualizarEstadoUC,
		validate:            validation.New(),
		solicitudMetrics:    solicitudMetrics,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *SolicitudController) RegisterRoutes(router *gin.RouterGroup) {
	solicitudes := router.Group("/solicitudes")
	{
		solicitudes.POST("", c.CrearSolicitud)
		solicitudes.GET("", c.ListarSolicitudes)
		solicitudes.PUT("/:id/estado", c.ActualizarEstado)
	}

	log.Println("Rutas Solicitud disponibles:")
	log.Println("  POST   /api/solicitudes")
	log.Println("  GET    /api/solicitudes")
	log.Println("  PUT    /api/solicitudes/:id/estado")
}

// CrearSolicitud maneja la creación de una solicitud con varios items
func (c *SolicitudController) CrearSolicitud(ctx *gin.Context) {
	// 1. Validar body
	var req request.CreateSolicitudRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	// 2. Validación estructural adicional (item_ids duplicados)
	if err := c.validate.Struct(req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":  "validation_failed",
			"fields": validation.ErrorsToMap(err),
		})
		return
	}

	// 3. Ejecutar use case
	resp, err := c.crearSolicitudUC.Execute(ctx.Request.Context(), &req)
	if err != nil {
		c.respondCrearError(ctx, err)
		return
	}

	// 4. Responder exitosamente con 201 Created
	if c.solicitudMetrics != nil {
		c.solicitudMetrics.Creadas.Inc()
	}
	ctx.JSON(http.StatusCreated, resp)
}

// respondCrearError mapea errores del workflow a códigos HTTP:
// validación → 400, item inexistente → 404, stock insuficiente → 409,
// errores de almacenamiento → 500 con mensaje genérico (detalle solo en logs)
func (c *SolicitudController) respondCrearError(ctx *gin.Context, err error) {
	var itemNoExiste *entity.ItemNoExisteError
	var stockInsuficiente *entity.StockInsuficienteError

	switch {
	case errors.As(err, &itemNoExiste):
		c.countRechazo("item_no_existe")
		ctx.JSON(http.StatusNotFound, gin.H{
			"error":   err.Error(),
			"item_id": itemNoExiste.ItemID,
		})
	case errors.As(err, &stockInsuficiente):
		c.countRechazo("stock_insuficiente")
		ctx.JSON(http.StatusConflict, gin.H{
			"error":      err.Error(),
			"item_id":    stockInsuficiente.ItemID,
			"solicitado": stockInsuficiente.Solicitado,
			"disponible": stockInsuficiente.Disponible,
		})
	case errors.Is(err, entity.ErrMetodoPagoInvalido),
		errors.Is(err, entity.ErrCantidadInvalida),
		errors.Is(err, entity.ErrClienteIDRequerido),
		errors.Is(err, entity.ErrSolicitudSinItems):
		c.countRechazo("entrada_invalida")
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Printf("Error creating solicitud: %v", err)
		c.countRechazo("error_interno")
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error al procesar la solicitud",
		})
	}
}

func (c *SolicitudController) countRechazo(motivo string) {
	if c.solicitudMetrics != nil {
		c.solicitudMetrics.Rechazadas.WithLabelValues(motivo).Inc()
	}
}

// ListarSolicitudes maneja el listado de todas las solicitudes (admin)
func (c *SolicitudController) ListarSolicitudes(ctx *gin.Context) {
	items, err := c.listarSolicitudesUC.Execute(ctx.Request.Context())
	if err != nil {
		log.Printf("Error listing solicitudes: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error al obtener solicitudes",
		})
		return
	}

	ctx.JSON(http.StatusOK, items)
}

// ActualizarEstado maneja el cambio de estado de una solicitud
func (c *SolicitudController) ActualizarEstado(ctx *gin.Context) {
	// 1. Obtener id del path
	solicitudID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "id inválido"})
		return
	}

	// 2. Validar body
	var req request.UpdateEstadoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	// 3. Ejecutar use case
	if err := c.actualizarEstadoUC.Execute(ctx.Request.Context(), solicitudID, req.Estado); err != nil {
		if errors.Is(err, entity.ErrEstadoInvalido) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Estado no válido"})
			return
		}
		if errors.Is(err, entity.ErrSolicitudNoEncontrada) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Solicitud no encontrada"})
			return
		}
		log.Printf("Error updating estado: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error al actualizar estado",
		})
		return
	}

	// 4. Responder exitosamente
	ctx.JSON(http.StatusOK, gin.H{"message": "Estado actualizado correctamente"})
}
