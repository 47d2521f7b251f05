package middleware

import (
	"strings"

	"clickexpress-cms/helper"
	"clickexpress-cms/services"

	"github.com/gin-gonic/gin"
)

var HTTPHelper = helper.NewHTTPHelper()

// AuthMiddleware guards admin routes: it requires a bearer access token
// that parses, verifies, and has not expired.
func AuthMiddleware(authService services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			HTTPHelper.SendUnauthorizedError(c, "Authorization header required")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			HTTPHelper.SendUnauthorizedError(c, "Bearer token required")
			c.Abort()
			return
		}

		user, err := authService.VerifyAccessToken(tokenString)
		if err != nil {
			HTTPHelper.SendUnauthorizedError(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("user_id", user.ID)
		c.Set("username", user.Username)

		c.Next()
	}
}
