package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/furnistore/backend/internal/application"
	"github.com/furnistore/backend/pkg/response"
	"github.com/furnistore/backend/pkg/validation"
)

type WishlistHandler struct {
	Svc    *application.WishlistService
	Logger *logrus.Logger
}

func NewWishlistHandler(svc *application.WishlistService, logger *logrus.Logger) *WishlistHandler {
	return &WishlistHandler{Svc: svc, Logger: logger}
}

type wishlistAddRequest struct {
	ProductID string `json:"productId" binding:"required,uuid"`
}

// Get GET /api/wishlist
func (h *WishlistHandler) Get(c *gin.Context) {
	items, err := h.Svc.Get(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, "wishlist", response.Payload{"wishlist": items})
}

// Add POST /api/wishlist
func (h *WishlistHandler) Add(c *gin.Context) {
	var req wishlistAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	items, err := h.Svc.Add(c.Request.Context(), c.GetString("userID"), req.ProductID)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, "added to wishlist", response.Payload{"wishlist": items})
}

// Remove DELETE /api/wishlist/:productId
func (h *WishlistHandler) Remove(c *gin.Context) {
	items, err := h.Svc.Remove(c.Request.Context(), c.GetString("userID"), c.Param("productId"))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, "removed from wishlist", response.Payload{"wishlist": items})
}
