package config

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SharedConfig contiene la configuración para los middlewares compartidos
type SharedConfig struct {
	EnableCORS       bool
	AllowedOrigins   []string
	AllowCredentials bool
}

// DefaultSharedConfig devuelve una configuración por defecto
func DefaultSharedConfig() SharedConfig {
	return SharedConfig{
		EnableCORS:     true,
		AllowedOrigins: []string{"*"},
	}
}

// SetupSharedMiddleware configura los middlewares compartidos
func SetupSharedMiddleware(router *gin.Engine, config SharedConfig) {
	if config.EnableCORS {
		corsCfg := cors.Config{
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			AllowCredentials: config.AllowCredentials,
			MaxAge:           12 * time.Hour,
		}
		if len(config.AllowedOrigins) == 1 && config.AllowedOrigins[0] == "*" {
			corsCfg.AllowAllOrigins = true
		} else {
			corsCfg.AllowOrigins = config.AllowedOrigins
		}
		router.Use(cors.New(corsCfg))
	}

	// Aquí se pueden agregar más middlewares compartidos en el futuro
}
