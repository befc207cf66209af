package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	repo "github.com/ratespot/ratespot/internal/domain/repository"
	handlers "github.com/ratespot/ratespot/internal/interface/http"
	"github.com/ratespot/ratespot/internal/interface/middleware"
	"github.com/ratespot/ratespot/internal/session"
)

// AuthModule wires the auth endpoints.
// Public: POST /api/auth/login, POST /api/auth/register
// Protected: POST /api/auth/logout, GET /api/auth/user,
// POST /api/auth/update-password
type AuthModule struct {
	Handler  *handlers.AuthHandler
	Sessions session.Store
	Users    repo.UserRepository
	Redis    *redis.Client
}

func NewAuthModule(h *handlers.AuthHandler, sessions session.Store, users repo.UserRepository, rdb *redis.Client) *AuthModule {
	return &AuthModule{Handler: h, Sessions: sessions, Users: users, Redis: rdb}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	// Public with per-IP rate limits to slow down credential stuffing.
	loginLimiter := middleware.RateLimit(m.Redis, 10, time.Minute, middleware.KeyByIPAndPath())
	registerLimiter := middleware.RateLimit(m.Redis, 10, time.Minute, middleware.KeyByIPAndPath())

	rg.POST("/auth/login", loginLimiter, m.Handler.Login)
	rg.POST("/auth/register", registerLimiter, m.Handler.Register)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Sessions, m.Users))
	{
		auth.POST("/auth/logout", m.Handler.Logout)
		auth.GET("/auth/user", m.Handler.Me)
		auth.POST("/auth/update-password", m.Handler.UpdatePassword)
	}
}
