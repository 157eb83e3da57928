package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/furnistore/backend/internal/application"
	"github.com/furnistore/backend/pkg/response"
	"github.com/furnistore/backend/pkg/validation"
)

const maxImageSize = 8 << 20 // 8 MiB

type AdminHandler struct {
	Admin   *application.AdminService
	Catalog *application.CatalogService
	Logger  *logrus.Logger
}

func NewAdminHandler(admin *application.AdminService, catalog *application.CatalogService, logger *logrus.Logger) *AdminHandler {
	return &AdminHandler{Admin: admin, Catalog: catalog, Logger: logger}
}

// Dashboard GET /api/admin/dashboard
func (h *AdminHandler) Dashboard(c *gin.Context) {
	d, err := h.Admin.GetDashboard(c.Request.Context())
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, "dashboard retrieved", response.Payload{"dashboard": d})
}

type productRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	Category    string `json:"category" binding:"required,category"`
	Price       string `json:"price" binding:"required"`
	Discount    int    `json:"discount" binding:"gte=0,lt=100"`
	Stock       int    `json:"stock" binding:"gte=0"`
}

func (r productRequest) input() application.ProductInput {
	return application.ProductInput{
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		Price:       r.Price,
		Discount:    r.Discount,
		Stock:       r.Stock,
	}
}

// CreateProduct POST /api/admin/products
func (h *AdminHandler) CreateProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	p, err := h.Catalog.CreateProduct(c.Request.Context(), req.input())
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, "product created", response.Payload{"product": p})
}

// UpdateProduct PUT /api/admin/products/:id
func (h *AdminHandler) UpdateProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	p, err := h.Catalog.UpdateProduct(c.Request.Context(), c.Param("id"), req.input())
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, "product updated", response.Payload{"product": p})
}

// DeleteProduct DELETE /api/admin/products/:id
func (h *AdminHandler) DeleteProduct(c *gin.Context) {
	if err := h.Catalog.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, "product deleted", nil)
}

// UploadImage POST /api/admin/products/:id/image
// Expects multipart/form-data with an "image" file field.
func (h *AdminHandler) UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "image file is required", nil)
		return
	}
	if file.Size > maxImageSize {
		response.Error(c, http.StatusBadRequest, "image exceeds the 8MB limit", nil)
		return
	}
	src, err := file.Open()
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	defer func() { _ = src.Close() }()

	p, err := h.Catalog.AttachImage(c.Request.Context(), c.Param("id"), src, file.Filename, file.Header.Get("Content-Type"))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, "image uploaded", response.Payload{"product": p})
}
