package middleware

import (
	"net/http"
	"strings"

	"guest-portal/models"
	"guest-portal/services"
	"guest-portal/utils"

	"github.com/gin-gonic/gin"
)

const currentUserKey = "currentUser"

// RequireAuth resolves the Bearer token into a user and stores it on the
// context. Every lifecycle handler reads the caller from here instead of
// trusting ids in the request body.
func RequireAuth(userSvc *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ""
		if h := c.GetHeader("Authorization"); h != "" {
			parts := strings.SplitN(h, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				token = strings.TrimSpace(parts[1])
			}
		}
		if token == "" {
			utils.JSONError(c, http.StatusUnauthorized, "error.missingToken", "Authorization header with a Bearer token is required")
			c.Abort()
			return
		}

		user, err := userSvc.ResolveToken(token)
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "error.invalidOrExpiredToken", "Session is invalid or has expired, please log in again")
			c.Abort()
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// CurrentUser returns the authenticated caller set by RequireAuth.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}
