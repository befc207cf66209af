package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ratespot/ratespot/internal/domain/entity"
	"github.com/ratespot/ratespot/pkg/response"
)

// RequireRole narrows an authenticated request to the allowed roles.
// Must run after Auth; an anonymous request aborts with 401, a wrong
// role with 403.
func RequireRole(allowed ...entity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		u := CurrentUser(c)
		if u == nil {
			response.Error[any](c, http.StatusUnauthorized, "unauthorized", nil)
			c.Abort()
			return
		}
		for _, role := range allowed {
			if u.Role == role {
				c.Next()
				return
			}
		}
		response.Error[any](c, http.StatusForbidden, "forbidden", nil)
		c.Abort()
	}
}
