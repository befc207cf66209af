package application

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/ratespot/ratespot/internal/infrastructure/memory"
	"github.com/ratespot/ratespot/internal/session"
)

type fixture struct {
	Users    *memory.UserRepository
	Stores   *memory.StoreRepository
	Ratings  *memory.RatingRepository
	Sessions *session.Memory

	Auth      *AuthService
	StoreSvc  *StoreService
	RatingSvc *RatingService
	UserSvc   *UserService
}

func newFixture() *fixture {
	users := memory.NewUserRepository()
	ratings := memory.NewRatingRepository()
	stores := memory.NewStoreRepository(ratings)
	ratings.Users = users
	ratings.Stores = stores

	sessions := session.NewMemory(time.Hour)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return &fixture{
		Users:     users,
		Stores:    stores,
		Ratings:   ratings,
		Sessions:  sessions,
		Auth:      NewAuthService(users, sessions, logger, bcrypt.MinCost),
		StoreSvc:  NewStoreService(stores, users, ratings, logger),
		RatingSvc: NewRatingService(ratings, stores, logger),
		UserSvc:   NewUserService(users, logger, bcrypt.MinCost),
	}
}
