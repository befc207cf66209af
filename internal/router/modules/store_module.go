package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/ratespot/ratespot/internal/domain/entity"
	repo "github.com/ratespot/ratespot/internal/domain/repository"
	handlers "github.com/ratespot/ratespot/internal/interface/http"
	"github.com/ratespot/ratespot/internal/interface/middleware"
	"github.com/ratespot/ratespot/internal/session"
)

// StoreModule wires the store routes.
// Session: GET /api/stores, GET /api/stores/search, GET /api/stores/:id/stats
// Admin: POST /api/stores, GET /api/stats
type StoreModule struct {
	Handler  *handlers.StoreHandler
	Sessions session.Store
	Users    repo.UserRepository
}

func NewStoreModule(h *handlers.StoreHandler, sessions session.Store, users repo.UserRepository) *StoreModule {
	return &StoreModule{Handler: h, Sessions: sessions, Users: users}
}

func (m *StoreModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Sessions, m.Users))
	{
		auth.GET("/stores", m.Handler.List)
		auth.GET("/stores/search", m.Handler.Search)
		// Ownership checked in the service: admin or the store's owner.
		auth.GET("/stores/:id/stats", m.Handler.Stats)
	}

	admin := rg.Group("/")
	admin.Use(middleware.Auth(m.Sessions, m.Users), middleware.RequireRole(entity.RoleAdmin))
	{
		admin.POST("/stores", m.Handler.Create)
		admin.GET("/stats", m.Handler.Summary)
	}
}
