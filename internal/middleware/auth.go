package middleware

import (
	"net/http"
	"strings"

	"dentista-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware protege o grupo /admin: exige um JWT de sessão válido
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Pega o header Authorization
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.APIResponse(c, http.StatusUnauthorized, false, "Token não encontrado", nil)
			c.Abort()
			return
		}

		// 2. Formato precisa ser "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.APIResponse(c, http.StatusUnauthorized, false, "Formato de token inválido", nil)
			c.Abort()
			return
		}

		// 3. Valida o token
		token, err := utils.ValidateToken(parts[1])
		if err != nil || !token.Valid {
			utils.APIResponse(c, http.StatusUnauthorized, false, "Token inválido ou expirado", nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok || claims["role"] != "admin" {
			utils.APIResponse(c, http.StatusForbidden, false, "Acesso negado: somente admin", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
