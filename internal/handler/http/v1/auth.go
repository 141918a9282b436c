package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/fire_dispatch_system/pkg/token"
	"github.com/sirupsen/logrus"
)

// Ключ контекста gin с ID аутентифицированного субъекта
const subjectIDKey = "subjectID"

// AuthMiddleware - middleware для аутентификации по Bearer JWT.
// Пропускает только субъектов с требуемой ролью (society или station).
func AuthMiddleware(tokens *token.Manager, log *logrus.Logger, requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			log.Warn("Authorization token missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization token required"})
			return
		}

		subjectID, role, err := tokens.Parse(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			log.WithError(err).Warn("Invalid authorization token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization token"})
			return
		}

		if role != requiredRole {
			log.WithField("role", role).Warn("Token role mismatch")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization token"})
			return
		}

		c.Set(subjectIDKey, subjectID)
		c.Next()
	}
}
