package middleware

import (
	"learnhub_backend/internal/model"
	"learnhub_backend/internal/service"
	"learnhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

const currentUserKey = "currentUser"

// RequireSession resolves the session pointer to a live user record and
// rejects the request when nobody is logged in.
func RequireSession(users *service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := users.GetLoggedIn(c.Request.Context())
		if !ok {
			util.Unauthorized(c)
			c.Abort()
			return
		}
		c.Set(currentUserKey, user)
		c.Next()
	}
}

// RequireRole gates a route on the resolved user's role. Must run after
// RequireSession.
func RequireRole(roles ...model.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}

		util.Forbidden(c)
		c.Abort()
	}
}

func CurrentUser(c *gin.Context) *model.User {
	v, exists := c.Get(currentUserKey)
	if !exists {
		return nil
	}
	user, ok := v.(*model.User)
	if !ok {
		return nil
	}
	return user
}
