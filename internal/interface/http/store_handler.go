package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ratespot/ratespot/internal/application"
	"github.com/ratespot/ratespot/internal/interface/middleware"
	"github.com/ratespot/ratespot/pkg/response"
	"github.com/ratespot/ratespot/pkg/validation"
)

// StoreHandler exposes store listing, creation, search and the
// owner/admin stats view.
type StoreHandler struct {
	Svc    *application.StoreService
	Logger *logrus.Logger
}

func NewStoreHandler(svc *application.StoreService, logger *logrus.Logger) *StoreHandler {
	return &StoreHandler{Svc: svc, Logger: logger}
}

type createStoreRequest struct {
	Name    string `json:"name" binding:"required,max=100"`
	Email   string `json:"email" binding:"required,email"`
	Address string `json:"address" binding:"required,max=400"`
	OwnerID string `json:"ownerId" binding:"required,uuid"`
}

// List GET /api/stores — every store with its aggregate.
func (h *StoreHandler) List(c *gin.Context) {
	stores, err := h.Svc.ListWithAggregates(c.Request.Context())
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "failed to list stores", nil)
		return
	}
	response.Success(c, http.StatusOK, stores, "stores")
}

// Create POST /api/stores (admin)
func (h *StoreHandler) Create(c *gin.Context) {
	var req createStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	store, err := h.Svc.Create(c.Request.Context(), application.CreateInput{
		Name:    req.Name,
		Email:   req.Email,
		Address: req.Address,
		OwnerID: req.OwnerID,
	})
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			response.Error[any](c, http.StatusNotFound, "owner not found", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "store creation failed", nil)
		return
	}
	response.Success(c, http.StatusCreated, store, "store created")
}

// Stats GET /api/stores/:id/stats — admin or the store's owner only.
func (h *StoreHandler) Stats(c *gin.Context) {
	u := middleware.CurrentUser(c)
	if u == nil {
		response.Error[any](c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	stats, err := h.Svc.Stats(c.Request.Context(), u, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, application.ErrNotFound):
			response.Error[any](c, http.StatusNotFound, "store not found", nil)
		case errors.Is(err, application.ErrForbidden):
			response.Error[any](c, http.StatusForbidden, "access denied", nil)
		default:
			response.Error[any](c, http.StatusInternalServerError, "failed to load stats", nil)
		}
		return
	}
	response.Success(c, http.StatusOK, stats, "store stats")
}

// Search GET /api/stores/search?q=
func (h *StoreHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", map[string]string{"q": "is required"})
		return
	}
	stores, err := h.Svc.Search(c.Request.Context(), q)
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "search failed", nil)
		return
	}
	response.Success(c, http.StatusOK, stores, "stores")
}

// Summary GET /api/stats (admin)
func (h *StoreHandler) Summary(c *gin.Context) {
	summary, err := h.Svc.Summary(c.Request.Context())
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "failed to load stats", nil)
		return
	}
	response.Success(c, http.StatusOK, summary, "stats")
}
