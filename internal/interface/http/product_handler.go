package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/furnistore/backend/internal/application"
	repo "github.com/furnistore/backend/internal/domain/repository"
	"github.com/furnistore/backend/pkg/helpers"
	"github.com/furnistore/backend/pkg/response"
)

type ProductHandler struct {
	Svc    *application.CatalogService
	Logger *logrus.Logger
}

func NewProductHandler(svc *application.CatalogService, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{Svc: svc, Logger: logger}
}

// List GET /api/products?category=&search=&minPrice=&maxPrice=&page=&limit=
func (h *ProductHandler) List(c *gin.Context) {
	f := repo.ProductFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}
	if v := c.Query("minPrice"); v != "" {
		d, err := helpers.ParsePrice(v)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "invalid minPrice", nil)
			return
		}
		f.MinPrice = &d
	}
	if v := c.Query("maxPrice"); v != "" {
		d, err := helpers.ParsePrice(v)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "invalid maxPrice", nil)
			return
		}
		f.MaxPrice = &d
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "12"))

	result, err := h.Svc.Find(c.Request.Context(), f, page, limit)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, "products", response.Payload{
		"products":    result.Products,
		"total":       result.Total,
		"currentPage": result.CurrentPage,
		"totalPages":  result.TotalPages,
	})
}

// Get GET /api/products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	p, err := h.Svc.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, "product", response.Payload{"product": p})
}

// Search GET /api/products/search?q=
func (h *ProductHandler) Search(c *gin.Context) {
	q := c.Query("q")
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	hits, err := h.Svc.Search(c.Request.Context(), q, size)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, "search results", response.Payload{"results": hits})
}
