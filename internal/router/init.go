package router

import (
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/ratespot/ratespot/config"
	"github.com/ratespot/ratespot/internal/application"
	repo "github.com/ratespot/ratespot/internal/domain/repository"
	handlers "github.com/ratespot/ratespot/internal/interface/http"
	"github.com/ratespot/ratespot/internal/router/modules"
	"github.com/ratespot/ratespot/internal/session"
	"github.com/ratespot/ratespot/pkg/helpers"
)

// Deps carries the constructed infrastructure the modules are wired
// from. Everything is passed explicitly; there are no hidden globals.
type Deps struct {
	Cfg      *config.Config
	Logger   *logrus.Logger
	Users    repo.UserRepository
	Stores   repo.StoreRepository
	Ratings  repo.RatingRepository
	Sessions session.Store

	// Optional infrastructure; nil disables the corresponding feature.
	Redis *redis.Client            // rate limiting
	Pub   *helpers.RabbitPublisher // welcome emails
	ES    *elasticsearch.Client    // store search index
}

// InitModules builds services and handlers from Deps and registers all
// feature modules with the router registry.
func InitModules(r *Registry, d Deps) {
	cookies := helpers.NewCookie(d.Cfg.CookieDomain, d.Cfg.CookieSecure, d.Cfg.SessionTTL)

	authSvc := application.NewAuthService(d.Users, d.Sessions, d.Logger, d.Cfg.BcryptCost)
	authSvc.Pub = d.Pub
	authSvc.MailEnabled = d.Cfg.MailSendEnabled

	userSvc := application.NewUserService(d.Users, d.Logger, d.Cfg.BcryptCost)

	storeSvc := application.NewStoreService(d.Stores, d.Users, d.Ratings, d.Logger)
	storeSvc.ES = d.ES
	storeSvc.ESStoresIndex = d.Cfg.ESStoresIndex

	ratingSvc := application.NewRatingService(d.Ratings, d.Stores, d.Logger)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, d.Logger, cookies), d.Sessions, d.Users, d.Redis))
	r.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc, d.Logger), d.Sessions, d.Users))
	r.Add(modules.NewStoreModule(handlers.NewStoreHandler(storeSvc, d.Logger), d.Sessions, d.Users))
	r.Add(modules.NewRatingModule(handlers.NewRatingHandler(ratingSvc, d.Logger), d.Sessions, d.Users, d.Redis))
}
