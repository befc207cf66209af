package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/ratespot/ratespot/internal/domain/entity"
	repo "github.com/ratespot/ratespot/internal/domain/repository"
	"github.com/ratespot/ratespot/pkg/helpers"
)

// UserService covers the admin-only user operations.
type UserService struct {
	Users      repo.UserRepository
	Logger     *logrus.Logger
	BcryptCost int
}

func NewUserService(users repo.UserRepository, logger *logrus.Logger, bcryptCost int) *UserService {
	return &UserService{Users: users, Logger: logger, BcryptCost: bcryptCost}
}

// List returns all users. Password hashes stay out of responses via the
// entity's json tags.
func (s *UserService) List(ctx context.Context) ([]entity.User, error) {
	return s.Users.List(ctx)
}

// Create adds a user with an admin-chosen role, same shape as
// registration but without opening a session.
func (s *UserService) Create(ctx context.Context, in RegisterInput) (*entity.User, error) {
	role := in.Role
	if role == "" {
		role = entity.RoleUser
	}
	if !role.Valid() {
		return nil, ErrForbidden
	}
	hash, err := helpers.HashPassword(in.Password, s.BcryptCost)
	if err != nil {
		return nil, err
	}
	u := &entity.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: hash,
		Role:     role,
		Address:  in.Address,
	}
	if err := s.Users.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return u, nil
}
