package middleware

import (
	"net/http"
	"strings"

	"staticmaps/internal/utils"
	"staticmaps/pkg/logger"

	"github.com/gin-gonic/gin"
)

// AuthRequired middleware validates the bearer token and sets the caller's
// subject and role on the context.
func AuthRequired(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.UnauthorizedResponse(c)
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			utils.UnauthorizedResponse(c)
			return
		}

		claims, err := utils.ValidateToken(tokenString, secret)
		if err != nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, utils.CodeInvalidToken, utils.ErrInvalidToken)
			return
		}

		c.Set(utils.ContextKeySubject, claims.Subject)
		c.Set(utils.ContextKeyRole, claims.Role)
		c.Request = c.Request.WithContext(logger.ContextWithSubject(c.Request.Context(), claims.Subject))

		c.Next()
	}
}

// AdminRequired middleware ensures the caller is an admin
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(utils.ContextKeyRole)
		if !exists {
			utils.UnauthorizedResponse(c)
			return
		}

		roleStr, ok := role.(string)
		if !ok || roleStr != utils.RoleAdmin {
			utils.ForbiddenResponse(c)
			return
		}

		c.Next()
	}
}
