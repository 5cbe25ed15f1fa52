// middlewares/auth_middleware.go
package middlewares

import (
	"errors"
	"net/http"

	"daily-diet/services"
	"daily-diet/utils"

	"github.com/gin-gonic/gin"
)

// IdentityCookieName is the cookie carrying the identity token.
const IdentityCookieName = "userId"

// CookieAuth resolves the identity cookie to an existing user before any
// meal operation runs. On success the owner id is available to handlers via
// c.Get("userID"); on failure the request is rejected with 401 and nothing
// downstream executes.
func CookieAuth(users *services.UserService, secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(IdentityCookieName)
		if err != nil || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		userID, err := utils.ParseIdentityToken(tokenString, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		user, err := users.FindByID(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.Set("userID", user.ID)
		c.Next()
	}
}
