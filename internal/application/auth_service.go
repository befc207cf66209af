package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/ratespot/ratespot/internal/domain/entity"
	repo "github.com/ratespot/ratespot/internal/domain/repository"
	"github.com/ratespot/ratespot/internal/session"
	"github.com/ratespot/ratespot/pkg/helpers"
	"github.com/ratespot/ratespot/pkg/mailer"
)

// AuthService implements registration, login, logout and password
// updates on top of the user repository and the session store.
type AuthService struct {
	Users      repo.UserRepository
	Sessions   session.Store
	Logger     *logrus.Logger
	BcryptCost int

	// Pub is optional; when nil no welcome emails are published.
	Pub         *helpers.RabbitPublisher
	MailEnabled bool
}

func NewAuthService(users repo.UserRepository, sessions session.Store, logger *logrus.Logger, bcryptCost int) *AuthService {
	return &AuthService{Users: users, Sessions: sessions, Logger: logger, BcryptCost: bcryptCost}
}

// RegisterInput is the validated registration payload. Role defaults to
// user when empty.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Address  string
	Role     entity.Role
}

// Register creates the user, opens a session, and queues a welcome
// email. A duplicate email yields ErrEmailTaken and no row.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*entity.User, string, error) {
	role := in.Role
	if role == "" {
		role = entity.RoleUser
	}
	if !role.Valid() {
		return nil, "", ErrForbidden
	}

	hash, err := helpers.HashPassword(in.Password, s.BcryptCost)
	if err != nil {
		return nil, "", err
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
			return nil, "", ErrEmailTaken
		}
		return nil, "", err
	}

	token, err := s.Sessions.Create(ctx, u.ID)
	if err != nil {
		return nil, "", err
	}

	s.publishWelcome(ctx, u)
	return u, token, nil
}

// Login verifies credentials and opens a session. The same error covers
// unknown emails and wrong passwords.
func (s *AuthService) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil || u == nil {
		return nil, "", ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, "", ErrInvalidCredentials
	}
	token, err := s.Sessions.Create(ctx, u.ID)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// Logout revokes the session token. Unknown tokens are a no-op.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.Sessions.Destroy(ctx, token)
}

// CurrentUser resolves a user by ID for the "who am I" endpoint.
func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*entity.User, error) {
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, ErrNotFound
	}
	return u, nil
}

// UpdatePassword re-checks the current password before storing the new
// hash. A wrong current password reports the generic credentials error.
func (s *AuthService) UpdatePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil || u == nil {
		return ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(u.Password, currentPassword) {
		return ErrInvalidCredentials
	}
	hash, err := helpers.HashPassword(newPassword, s.BcryptCost)
	if err != nil {
		return err
	}
	return s.Users.UpdatePassword(ctx, userID, hash)
}

func (s *AuthService) publishWelcome(ctx context.Context, u *entity.User) {
	if s.Pub == nil || !s.MailEnabled {
		return
	}
	job := mailer.EmailJob{
		To:       u.Email,
		Template: mailer.TemplateWelcome,
		Data:     map[string]any{"Name": u.Name},
	}
	if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Warn("welcome email publish failed")
	}
}
