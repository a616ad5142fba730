package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kipkemoi/tillprint-api/internal/presentation/http/dto/response"
	"github.com/kipkemoi/tillprint-api/pkg/utils"
)

// AuthMiddleware validates the station bearer token and stores the station
// ID in the request context.
func AuthMiddleware(jwtManager *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header required")
			c.Abort()
			return
		}

		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || tokenString == "" {
			response.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateToken(tokenString)
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("station_id", claims.StationID)
		c.Next()
	}
}
