package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/ratespot/ratespot/internal/domain/entity"
	repo "github.com/ratespot/ratespot/internal/domain/repository"
	handlers "github.com/ratespot/ratespot/internal/interface/http"
	"github.com/ratespot/ratespot/internal/interface/middleware"
	"github.com/ratespot/ratespot/internal/session"
)

// UserModule wires the admin-only user management routes:
// GET /api/users, POST /api/users
type UserModule struct {
	Handler  *handlers.UserHandler
	Sessions session.Store
	Users    repo.UserRepository
}

func NewUserModule(h *handlers.UserHandler, sessions session.Store, users repo.UserRepository) *UserModule {
	return &UserModule{Handler: h, Sessions: sessions, Users: users}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	admin := rg.Group("/users")
	admin.Use(middleware.Auth(m.Sessions, m.Users), middleware.RequireRole(entity.RoleAdmin))
	{
		admin.GET("", m.Handler.List)
		admin.POST("", m.Handler.Create)
	}
}
