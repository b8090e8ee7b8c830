package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/sellora/pos-gateway/internal/domain/entity"
	"github.com/sellora/pos-gateway/internal/domain/enum"
	"github.com/sellora/pos-gateway/internal/infrastructure/backend"
	"github.com/sellora/pos-gateway/internal/presentation/http/dto/response"
	"github.com/sellora/pos-gateway/pkg/session"
)

// SessionMiddleware gates a route group on a stored session and threads the
// upstream bearer token through the request context so every forwarded call
// carries it. The stored role is a routing hint only; real authorization is
// enforced by the upstream on each forwarded request.
func SessionMiddleware(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := store.Get(c)
		if !ok {
			response.Unauthorized(c, "Not signed in")
			c.Abort()
			return
		}

		c.Set("session", sess)
		c.Request = c.Request.WithContext(backend.WithToken(c.Request.Context(), sess.AccessToken))
		c.Next()
	}
}

// RequireRole creates a middleware that requires one of the given roles.
func RequireRole(roles ...enum.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessVal, exists := c.Get("session")
		if !exists {
			response.Forbidden(c, "Access denied")
			c.Abort()
			return
		}

		sess, ok := sessVal.(*entity.Session)
		if !ok {
			response.Forbidden(c, "Access denied")
			c.Abort()
			return
		}

		for _, role := range roles {
			if sess.Role == role {
				c.Next()
				return
			}
		}

		response.Forbidden(c, "Insufficient role privileges")
		c.Abort()
	}
}
