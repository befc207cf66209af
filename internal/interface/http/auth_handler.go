package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ratespot/ratespot/internal/application"
	"github.com/ratespot/ratespot/internal/domain/entity"
	"github.com/ratespot/ratespot/internal/interface/middleware"
	"github.com/ratespot/ratespot/internal/session"
	"github.com/ratespot/ratespot/pkg/helpers"
	"github.com/ratespot/ratespot/pkg/response"
	"github.com/ratespot/ratespot/pkg/validation"
)

// AuthHandler exposes login, registration, logout, the current-user
// endpoint and self-service password updates.
type AuthHandler struct {
	Svc     *application.AuthService
	Logger  *logrus.Logger
	Cookies *helpers.CookieManager
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger, cookies *helpers.CookieManager) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger, Cookies: cookies}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type registerRequest struct {
	Name     string `json:"name" binding:"required,min=20,max=60"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,userpwd"`
	Address  string `json:"address" binding:"max=400"`
	Role     string `json:"role" binding:"omitempty,oneof=admin user store_owner"`
}

type updatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,userpwd"`
}

func userView(u *entity.User) gin.H {
	return gin.H{"id": u.ID, "email": u.Email, "role": u.Role}
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, token, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.Error[any](c, http.StatusUnauthorized, "invalid credentials", nil)
		return
	}
	h.Cookies.SetSession(c, token)
	response.Success(c, http.StatusOK, gin.H{"user": userView(u)}, "login successful")
}

// Register POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, token, err := h.Svc.Register(c.Request.Context(), application.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Address:  req.Address,
		Role:     entity.Role(req.Role),
	})
	if err != nil {
		if errors.Is(err, application.ErrEmailTaken) {
			response.Error[any](c, http.StatusConflict, "email already registered", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "registration failed", nil)
		return
	}
	h.Cookies.SetSession(c, token)
	response.Success(c, http.StatusCreated, gin.H{"user": userView(u)}, "registration successful")
}

// Logout POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(session.CookieName); err == nil && token != "" {
		if err := h.Svc.Logout(c.Request.Context(), token); err != nil && h.Logger != nil {
			h.Logger.WithError(err).Warn("session destroy failed")
		}
	}
	h.Cookies.Clear(c)
	response.Success[any](c, http.StatusOK, nil, "logout successful")
}

// Me GET /api/auth/user
func (h *AuthHandler) Me(c *gin.Context) {
	u := middleware.CurrentUser(c)
	if u == nil {
		response.Error[any](c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"id":    u.ID,
		"email": u.Email,
		"role":  u.Role,
		"name":  u.Name,
	}, "current user")
}

// UpdatePassword POST /api/auth/update-password
func (h *AuthHandler) UpdatePassword(c *gin.Context) {
	var req updatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	uid := c.GetString(middleware.CtxUserIDKey)
	if err := h.Svc.UpdatePassword(c.Request.Context(), uid, req.CurrentPassword, req.NewPassword); err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			// Same generic message as login, no enumeration.
			response.Error[any](c, http.StatusBadRequest, "invalid credentials", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "password update failed", nil)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "password updated successfully")
}
