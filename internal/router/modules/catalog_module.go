package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/furnistore/backend/internal/container"
	handlers "github.com/furnistore/backend/internal/interface/http"
	"github.com/furnistore/backend/internal/interface/middleware"
)

// CatalogModule wires the public, read-only product routes.
type CatalogModule struct {
	Handler *handlers.ProductHandler
}

func NewCatalogModule(h *handlers.ProductHandler) *CatalogModule {
	return &CatalogModule{Handler: h}
}

func (m *CatalogModule) Register(rg *gin.RouterGroup) {
	browseLimiter := middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())

	rg.GET("/products", browseLimiter, m.Handler.List)
	rg.GET("/products/search", browseLimiter, m.Handler.Search)
	rg.GET("/products/:id", browseLimiter, m.Handler.Get)
}
