package transport

import (
	"net/http"

	"github.com/ITB-Innovators-Move/inmove-2022-exhibition-page/auth"
	"github.com/ITB-Innovators-Move/inmove-2022-exhibition-page/logging"
	"github.com/gin-gonic/gin"
)

// AdminAuthMiddleware gates a route group behind the admin slot. An
// invalid or absent token aborts with 401 before the handler runs.
func AdminAuthMiddleware(tokens *auth.Tokens) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := tokens.Validate(adminToken(c), auth.RoleAdmin)
		if err != nil {
			logging.Log.Warnf("ADMIN: unauthorized access attempt to %s", c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Set(sessionKey, claims)
		c.Next()
	}
}

// UserAuthMiddleware gates a route group behind the user slot.
func UserAuthMiddleware(tokens *auth.Tokens) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := tokens.Validate(userToken(c), auth.RoleUser)
		if err != nil {
			logging.Log.Warnf("USER: unauthorized access attempt to %s", c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Set(sessionKey, claims)
		c.Next()
	}
}
