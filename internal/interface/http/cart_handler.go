package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/furnistore/backend/internal/application"
	"github.com/furnistore/backend/pkg/response"
	"github.com/furnistore/backend/pkg/validation"
)

type CartHandler struct {
	Svc    *application.CartService
	Logger *logrus.Logger
}

func NewCartHandler(svc *application.CartService, logger *logrus.Logger) *CartHandler {
	return &CartHandler{Svc: svc, Logger: logger}
}

type addItemRequest struct {
	ProductID string `json:"productId" binding:"required,uuid"`
	Quantity  int    `json:"quantity" binding:"required,gte=1"`
}

type setQuantityRequest struct {
	ProductID string `json:"productId" binding:"required,uuid"`
	Quantity  int    `json:"quantity" binding:"required"`
}

// Add POST /api/cart
func (h *CartHandler) Add(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	cart, err := h.Svc.AddItem(c.Request.Context(), c.GetString("userID"), req.ProductID, req.Quantity)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, "item added to cart", response.Payload{"cart": cart})
}

// Get GET /api/cart
func (h *CartHandler) Get(c *gin.Context) {
	cart, err := h.Svc.GetCart(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, "cart", response.Payload{"cart": cart})
}

// SetQuantity PUT /api/cart
// The quantity check lives in the service so zero and negatives both map to
// the same invalid-input error.
func (h *CartHandler) SetQuantity(c *gin.Context) {
	var req setQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	cart, err := h.Svc.SetItemQuantity(c.Request.Context(), c.GetString("userID"), req.ProductID, req.Quantity)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, "cart updated", response.Payload{"cart": cart})
}

// Remove DELETE /api/cart/:productId
func (h *CartHandler) Remove(c *gin.Context) {
	cart, err := h.Svc.RemoveItem(c.Request.Context(), c.GetString("userID"), c.Param("productId"))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, "item removed from cart", response.Payload{"cart": cart})
}
