package main

import (
	"database/sql"
	"log"
	"os"
	"time"

	authUseCase "almacen/src/auth/application/usecase"
	authController "almacen/src/auth/infrastructure/controller"
	authPersistence "almacen/src/auth/infrastructure/persistence"
	"almacen/src/auth/infrastructure/token"
	facturaUseCase "almacen/src/factura/application/usecase"
	facturaController "almacen/src/factura/infrastructure/controller"
	facturaPersistence "almacen/src/factura/infrastructure/persistence"
	itemUseCase "almacen/src/item/application/usecase"
	itemController "almacen/src/item/infrastructure/controller"
	"almacen/src/item/infrastructure/images"
	itemPersistence "almacen/src/item/infrastructure/persistence"
	sharedConfig "almacen/src/shared/infrastructure/config"
	"almacen/src/shared/infrastructure/metrics"
	solicitudUseCase "almacen/src/solicitud/application/usecase"
	solicitudController "almacen/src/solicitud/infrastructure/controller"
	solicitudPersistence "almacen/src/solicitud/infrastructure/persistence"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq" // Driver de PostgreSQL
)

// getEnv obtiene una variable de entorno o devuelve un valor por defecto
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func main() {
	log.Println("Almacén backend - Iniciando...")

	// Configurar el router con Gin
	router := gin.New()

	// Agregar middlewares básicos necesarios
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Configurar CORS y otros middlewares compartidos
	sharedCfg := sharedConfig.DefaultSharedConfig()
	sharedConfig.SetupSharedMiddleware(router, sharedCfg)

	// Configurar Prometheus metrics si está habilitado
	var solicitudMetrics *metrics.SolicitudMetrics
	if getEnv("PROMETHEUS_ENABLED", "false") == "true" {
		log.Println("Registering /metrics endpoint")
		solicitudMetrics = metrics.NewSolicitudMetrics()
		router.GET("/metrics", gin.WrapH(metrics.Handler()))
	} else {
		log.Println("Prometheus metrics disabled")
	}

	// Obtener configuración de la base de datos de variables de entorno
	dbHost := getEnv("DB_HOST", "localhost")
	dbPort := getEnv("DB_PORT", "5432")
	dbUser := getEnv("DB_USER", "postgres")
	dbPassword := getEnv("DB_PASSWORD", "postgres")
	dbName := getEnv("DB_NAME", "almacen_db")

	connStr := "postgres://" + dbUser + ":" + dbPassword + "@" + dbHost + ":" + dbPort + "/" + dbName + "?sslmode=disable"
	log.Printf("Intentando conectar a %s", dbName)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatalf("Error al conectar a la base de datos: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Error al verificar la conexión a la base de datos: %v", err)
	}
	log.Println("Conexión a la base de datos establecida con éxito")

	// Servir imágenes de items estáticamente
	imagesDir := getEnv("IMAGES_DIR", "public/images")
	router.Static("/images", imagesDir)

	// API grupo de rutas
	api := router.Group("/api")

	// Configurar módulos
	setupAuthModule(api, db)
	setupItemModule(api, db, imagesDir)
	setupSolicitudModule(api, db, solicitudMetrics)
	setupFacturaModule(api, db)

	// Health check
	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(200, gin.H{"status": "ok"})
	})

	// Iniciar el servidor
	port := getEnv("PORT", "3000")
	log.Printf("Servidor Almacén iniciado en http://localhost:%s", port)
	router.Run(":" + port)
}

// setupAuthModule configura el módulo Auth
func setupAuthModule(router *gin.RouterGroup, db *sql.DB) {
	log.Println("Configurando módulo Auth...")

	jwtSecret := getEnv("JWT_SECRET", "")
	if jwtSecret == "" {
		log.Println("Advertencia: JWT_SECRET vacío, los tokens no serán seguros")
	}
	jwtService := token.NewJWTService(jwtSecret, time.Hour)

	userRepo := authPersistence.NewUserPostgresRepository(db)
	registrarUC := authUseCase.NewRegistrarUsuarioUseCase(userRepo)
	loginUC := authUseCase.NewLoginUseCase(userRepo, jwtService)

	authCtrl := authController.NewAuthController(registrarUC, loginUC, userRepo, jwtService)
	authCtrl.RegisterRoutes(router)
}

// setupItemModule configura el módulo Item (catálogo)
func setupItemModule(router *gin.RouterGroup, db *sql.DB, imagesDir string) {
	log.Println("Configurando módulo Item...")

	imageProcessor, err := images.NewProcessor(imagesDir)
	if err != nil {
		log.Printf("Advertencia: no se pudo preparar el directorio de imágenes: %v", err)
		imageProcessor = nil
	}

	itemRepo := itemPersistence.NewItemPostgresRepository(db)
	itemCtrl := itemController.NewItemController(
		itemUseCase.NewCrearItemUseCase(itemRepo),
		itemUseCase.NewListarItemsUseCase(itemRepo),
		itemUseCase.NewObtenerItemUseCase(itemRepo),
		itemUseCase.NewActualizarItemUseCase(itemRepo),
		itemUseCase.NewEliminarItemUseCase(itemRepo),
		itemUseCase.NewAjustarStockUseCase(itemRepo),
		imageProcessor,
	)
	itemCtrl.RegisterRoutes(router)
}

// setupSolicitudModule configura el módulo Solicitud (núcleo transaccional)
func setupSolicitudModule(router *gin.RouterGroup, db *sql.DB, solicitudMetrics *metrics.SolicitudMetrics) {
	log.Println("Configurando módulo Solicitud...")

	solicitudRepo := solicitudPersistence.NewSolicitudPostgresRepository(db)
	solicitudCtrl := solicitudController.NewSolicitudController(
		solicitudUseCase.NewCrearSolicitudUseCase(solicitudRepo),
		solicitudUseCase.NewListarSolicitudesUseCase(solicitudRepo),
		solicitudUseCase.NewActualizarEstadoUseCase(solicitudRepo),
		solicitudMetrics,
	)
	solicitudCtrl.RegisterRoutes(router)
}

// setupFacturaModule configura el módulo Factura
func setupFacturaModule(router *gin.RouterGroup, db *sql.DB) {
	log.Println("Configurando módulo Factura...")

	facturaRepo := facturaPersistence.NewFacturaPostgresRepository(db)
	facturaCtrl := facturaController.NewFacturaController(
		facturaUseCase.NewEmitirFacturaUseCase(facturaRepo),
		facturaUseCase.NewListarFacturasUseCase(facturaRepo),
		facturaUseCase.NewObtenerFacturaUseCase(facturaRepo),
		facturaUseCase.NewActualizarEstadoFacturaUseCase(facturaRepo),
	)
	facturaCtrl.RegisterRoutes(router)
}
