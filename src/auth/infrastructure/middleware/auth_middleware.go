package middleware

import (
	"net/http"
	"strings"

	"almacen/src/auth/infrastructure/token"

	"github.com/gin-gonic/gin"
)

const claimsKey = "auth_claims"

// AuthRequired valida el token Bearer y deja los claims en el contexto
func AuthRequired(jwtService *token.JWTService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Token requerido"})
			return
		}

		claims, err := jwtService.Verificar(parts[1])
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Token inválido o expirado"})
			return
		}

		ctx.Set(claimsKey, claims)
		ctx.Next()
	}
}

// AuthorizeRoles exige que el rol del token esté dentro del conjunto permitido
func AuthorizeRoles(roles ...string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		claims := ClaimsFrom(ctx)
		if claims == nil {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Token requerido"})
			return
		}

		for _, role := range roles {
			if claims.Role == role {
				ctx.Next()
				return
			}
		}

		ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Acceso denegado"})
	}
}

// ClaimsFrom recupera los claims dejados por AuthRequired (nil si no hay)
func ClaimsFrom(ctx *gin.Context) *token.Claims {
	v, ok := ctx.Get(claimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*token.Claims)
	return claims
}
