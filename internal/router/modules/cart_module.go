package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/furnistore/backend/internal/container"
	handlers "github.com/furnistore/backend/internal/interface/http"
	"github.com/furnistore/backend/internal/interface/middleware"
	"github.com/furnistore/backend/pkg/helpers"
)

// CartModule wires the per-user cart routes. Everything requires auth; the
// cart is keyed by the authenticated user, never by request payload.
type CartModule struct {
	Handler *handlers.CartHandler
	JWT     *helpers.JWTManager
}

func NewCartModule(h *handlers.CartHandler, jwt *helpers.JWTManager) *CartModule {
	return &CartModule{Handler: h, JWT: jwt}
}

func (m *CartModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.GET("/cart", m.Handler.Get)
		auth.POST("/cart", m.Handler.Add)
		auth.PUT("/cart", m.Handler.SetQuantity)
		auth.DELETE("/cart/:productId", m.Handler.Remove)
	}
}
