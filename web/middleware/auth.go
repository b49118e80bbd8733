// Package middleware contains gin middleware for the blog API.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"blog-api/database/model"
	"blog-api/web/entity"
	"blog-api/web/service"
)

const principalKey = "principal"

// JwtAuth gates a route group behind bearer-token authentication and puts
// the resolved principal into the gin context.
func JwtAuth(authService *service.AuthService, userService *service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			abortUnauthenticated(c)
			return
		}

		id, err := authService.VerifyToken(token)
		if err != nil {
			abortUnauthenticated(c)
			return
		}
		user, err := userService.GetUser(id)
		if err != nil {
			abortUnauthenticated(c)
			return
		}

		c.Set(principalKey, user)
		c.Next()
	}
}

// CurrentUser returns the authenticated principal set by JwtAuth, or nil
// on unguarded routes.
func CurrentUser(c *gin.Context) *model.User {
	value, exists := c.Get(principalKey)
	if !exists {
		return nil
	}
	user, _ := value.(*model.User)
	return user
}

func abortUnauthenticated(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, entity.Response{
		Meta: entity.Meta{
			Code:    http.StatusUnauthorized,
			Status:  "error",
			Message: "Unauthenticated",
		},
		Data: nil,
	})
}
