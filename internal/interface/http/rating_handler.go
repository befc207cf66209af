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

// RatingHandler exposes rating submission and the rating listings.
type RatingHandler struct {
	Svc    *application.RatingService
	Logger *logrus.Logger
}

func NewRatingHandler(svc *application.RatingService, logger *logrus.Logger) *RatingHandler {
	return &RatingHandler{Svc: svc, Logger: logger}
}

type submitRatingRequest struct {
	StoreID string `json:"storeId" binding:"required"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
}

// Submit POST /api/ratings — upserts the caller's rating for a store.
// 201 on first submission, 200 on overwrite.
func (h *RatingHandler) Submit(c *gin.Context) {
	var req submitRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	uid := c.GetString(middleware.CtxUserIDKey)
	rating, created, err := h.Svc.Submit(c.Request.Context(), uid, req.StoreID, req.Rating)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrNotFound):
			response.Error[any](c, http.StatusNotFound, "store not found", nil)
		case errors.Is(err, application.ErrInvalidRating):
			response.Error[any](c, http.StatusBadRequest, "invalid payload", map[string]string{"rating": "must be between 1 and 5"})
		default:
			response.Error[any](c, http.StatusInternalServerError, "rating submission failed", nil)
		}
		return
	}
	status := http.StatusOK
	message := "rating updated"
	if created {
		status = http.StatusCreated
		message = "rating created"
	}
	response.Success(c, status, rating, message)
}

// MyRatings GET /api/ratings/user — the caller's ratings with stores.
func (h *RatingHandler) MyRatings(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	ratings, err := h.Svc.ListForUser(c.Request.Context(), uid)
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "failed to list ratings", nil)
		return
	}
	response.Success(c, http.StatusOK, ratings, "ratings")
}

// StoreRatings GET /api/ratings/store/:storeId — a store's ratings with
// their authors.
func (h *RatingHandler) StoreRatings(c *gin.Context) {
	ratings, err := h.Svc.ListForStore(c.Request.Context(), c.Param("storeId"))
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			response.Error[any](c, http.StatusNotFound, "store not found", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to list ratings", nil)
		return
	}
	response.Success(c, http.StatusOK, ratings, "ratings")
}
