package controller

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"almacen/src/auth/application/request"
	"almacen/src/auth/application/usecase"
	"almacen/src/auth/domain/entity"
	"almacen/src/auth/domain/port"
	"almacen/src/auth/infrastructure/middleware"
	"almacen/src/auth/infrastructure/token"

	"github.com/gin-gonic/gin"
)

// AuthController maneja registro, login y rutas protegidas por token/rol
type AuthController struct {
	registrarUC *usecase.RegistrarUsuarioUseCase
	loginUC     *usecase.LoginUseCase
	userRepo    port.UserRepository
	jwtService  *token.JWTService
}

// NewAuthController crea una nueva instancia del controlador
func NewAuthController(
	registrarUC *usecase.RegistrarUsuarioUseCase,
	loginUC *usecase.LoginUseCase,
	userRepo port.UserRepository,
	jwtService *token.JWTService,
) *AuthController {
	return &AuthController{
		registrarUC: registrarUC,
		loginUC:     loginUC,
		userRepo:    userRepo,
		jwtService:  jwtService,
	}
}

// RegisterRoutes registra rutas públicas y protegidas
func (c *AuthController) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/register", c.Register)
		auth.POST("/login", c.Login)
	}

	authRequired := middleware.AuthRequired(c.jwtService)
	router.GET("/perfil", authRequired, c.Perfil)
	router.GET("/admin", authRequired, middleware.AuthorizeRoles(entity.RoleAdmin), c.Admin)
	router.GET("/cliente", authRequired, middleware.AuthorizeRoles(entity.RoleCliente), c.Cliente)
	router.GET("/users/:id", authRequired, c.ObtenerUsuario)

	log.Println("Rutas Auth disponibles:")
	log.Println("  POST   /api/auth/register")
	log.Println("  POST   /api/auth/login")
	log.Println("  GET    /api/perfil")
	log.Println("  GET    /api/admin")
	log.Println("  GET    /api/cliente")
	log.Println("  GET    /api/users/:id")
}

// Register maneja el registro de un usuario
func (c *AuthController) Register(ctx *gin.Context) {
	var req request.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	user, err := c.registrarUC.Execute(ctx.Request.Context(), req.Nombre, req.Email, req.Password, req.Role)
	if err != nil {
		if errors.Is(err, entity.ErrEmailYaRegistrado) || errors.Is(err, entity.ErrCamposRequeridos) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error registering user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno al registrar usuario"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Usuario registrado con éxito",
		"user":    user,
	})
}

// Login maneja el inicio de sesión
func (c *AuthController) Login(ctx *gin.Context) {
	var req request.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	resp, err := c.loginUC.Execute(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, entity.ErrCredencialesInvalidas) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error in login: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno al iniciar sesión"})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// Perfil retorna la identidad del token (ruta protegida)
func (c *AuthController) Perfil(ctx *gin.Context) {
	claims := middleware.ClaimsFrom(ctx)
	ctx.JSON(http.StatusOK, gin.H{
		"message": "Acceso permitido",
		"user": gin.H{
			"id":    claims.UserID,
			"email": claims.Email,
			"role":  claims.Role,
		},
	})
}

// Admin es la ruta exclusiva para administradores
func (c *AuthController) Admin(ctx *gin.Context) {
	claims := middleware.ClaimsFrom(ctx)
	ctx.JSON(http.StatusOK, gin.H{
		"message": "Bienvenido administrador",
		"user":    gin.H{"id": claims.UserID, "email": claims.Email},
	})
}

// Cliente es la ruta exclusiva para clientes
func (c *AuthController) Cliente(ctx *gin.Context) {
	claims := middleware.ClaimsFrom(ctx)
	ctx.JSON(http.StatusOK, gin.H{
		"message": "Bienvenido cliente",
		"user":    gin.H{"id": claims.UserID, "email": claims.Email},
	})
}

// ObtenerUsuario retorna un usuario (admin o cliente) por id, sin credenciales
func (c *AuthController) ObtenerUsuario(ctx *gin.Context) {
	userID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "id inválido"})
		return
	}

	user, err := c.userRepo.FindByID(ctx.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, entity.ErrUsuarioNoEncontrado) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Usuario no encontrado"})
			return
		}
		log.Printf("Error getting user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno del servidor"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"id":      user.ID,
		"nombre":  user.Nombre,
		"email":   user.Email,
		"role_id": user.RoleID,
	})
}
