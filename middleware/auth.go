package middleware

import (
	"strings"

	"desdeaca/response"
	"desdeaca/services"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware exige un Bearer token válido y, si se pasan tipos de
// cuenta, que el usuario sea de alguno de ellos.
func AuthMiddleware(userTypes ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			response.Unauthorized(c, "Token de autorización requerido")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		userInfo, err := services.ParseToken(tokenString)
		if err != nil {
			response.Unauthorized(c, "Token inválido o expirado")
			c.Abort()
			return
		}

		if len(userTypes) > 0 {
			allowed := false
			for _, t := range userTypes {
				if t == userInfo.UserType {
					allowed = true
					break
				}
			}
			if !allowed {
				response.Forbidden(c)
				c.Abort()
				return
			}
		}

		c.Set("userID", userInfo.UserID)
		c.Set("userEmail", userInfo.Email)
		c.Set("userType", userInfo.UserType)
		c.Next()
	}
}
