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

// RatingModule wires the rating routes, all session-protected:
// POST /api/ratings, GET /api/ratings/user, GET /api/ratings/store/:storeId
type RatingModule struct {
	Handler  *handlers.RatingHandler
	Sessions session.Store
	Users    repo.UserRepository
	Redis    *redis.Client
}

func NewRatingModule(h *handlers.RatingHandler, sessions session.Store, users repo.UserRepository, rdb *redis.Client) *RatingModule {
	return &RatingModule{Handler: h, Sessions: sessions, Users: users, Redis: rdb}
}

func (m *RatingModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/ratings")
	auth.Use(middleware.Auth(m.Sessions, m.Users))
	auth.Use(middleware.RateLimit(m.Redis, 120, time.Minute, middleware.KeyByUserID()))
	{
		auth.POST("", m.Handler.Submit)
		auth.GET("/user", m.Handler.MyRatings)
		auth.GET("/store/:storeId", m.Handler.StoreRatings)
	}
}
