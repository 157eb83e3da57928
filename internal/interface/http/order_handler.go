package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/furnistore/backend/internal/application"
	"github.com/furnistore/backend/internal/domain/entity"
	"github.com/furnistore/backend/internal/interface/middleware"
	"github.com/furnistore/backend/pkg/response"
	"github.com/furnistore/backend/pkg/validation"
)

type OrderHandler struct {
	Svc    *application.OrderService
	Logger *logrus.Logger
}

func NewOrderHandler(svc *application.OrderService, logger *logrus.Logger) *OrderHandler {
	return &OrderHandler{Svc: svc, Logger: logger}
}

type shippingAddressRequest struct {
	Street     string `json:"street" binding:"required"`
	City       string `json:"city" binding:"required"`
	State      string `json:"state" binding:"required"`
	PostalCode string `json:"postalCode" binding:"required"`
	Phone      string `json:"phone" binding:"required"`
}

type placeOrderRequest struct {
	ShippingAddress shippingAddressRequest `json:"shippingAddress" binding:"required"`
}

// Place POST /api/orders
func (h *OrderHandler) Place(c *gin.Context) {
	var req placeOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	addr := entity.Address{
		Street:     req.ShippingAddress.Street,
		City:       req.ShippingAddress.City,
		State:      req.ShippingAddress.State,
		PostalCode: req.ShippingAddress.PostalCode,
		Phone:      req.ShippingAddress.Phone,
	}
	order, err := h.Svc.PlaceOrder(c.Request.Context(), c.GetString("userID"), addr)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, "order placed", response.Payload{"order": order})
}

// List GET /api/orders
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.Svc.ListOrders(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, "orders", response.Payload{"orders": orders})
}

// Get GET /api/orders/:id
func (h *OrderHandler) Get(c *gin.Context) {
	isAdmin := c.GetString(middleware.CtxUserRoleKey) == entity.RoleAdmin
	order, err := h.Svc.GetOrder(c.Request.Context(), c.Param("id"), c.GetString("userID"), isAdmin)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, "order", response.Payload{"order": order})
}

type updateStatusRequest struct {
	OrderStatus string `json:"orderStatus" binding:"required,oneof=pending shipped delivered cancelled"`
}

// UpdateStatus PUT /api/admin/orders/:id/status
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	order, err := h.Svc.UpdateStatus(c.Request.Context(), c.Param("id"), req.OrderStatus)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, "order status updated", response.Payload{"order": order})
}
