package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ratespot/ratespot/internal/domain/entity"
	repo "github.com/ratespot/ratespot/internal/domain/repository"
	"github.com/ratespot/ratespot/internal/session"
	"github.com/ratespot/ratespot/pkg/response"
)

// Context keys set by Auth on success.
const (
	CtxUserIDKey = "userID"
	CtxUserKey   = "user"
)

// CurrentUser returns the authenticated user placed in the context by
// Auth, or nil when the request is anonymous.
func CurrentUser(c *gin.Context) *entity.User {
	if v, ok := c.Get(CtxUserKey); ok {
		if u, ok := v.(*entity.User); ok {
			return u
		}
	}
	return nil
}

// Auth resolves the session cookie to a user. A missing or expired
// token, or a session pointing at a deleted user, aborts with 401.
func Auth(sessions session.Store, users repo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(session.CookieName)
		if err != nil || token == "" {
			response.Error[any](c, http.StatusUnauthorized, "unauthorized", nil)
			c.Abort()
			return
		}
		userID, err := sessions.Resolve(c.Request.Context(), token)
		if err != nil {
			response.Error[any](c, http.StatusUnauthorized, "unauthorized", nil)
			c.Abort()
			return
		}
		u, err := users.GetByID(c.Request.Context(), userID)
		if err != nil {
			response.Error[any](c, http.StatusUnauthorized, "unauthorized", nil)
			c.Abort()
			return
		}

		c.Set(CtxUserIDKey, u.ID)
		c.Set(CtxUserKey, u)
		c.Next()
	}
}
