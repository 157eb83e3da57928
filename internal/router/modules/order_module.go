package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/furnistore/backend/internal/container"
	handlers "github.com/furnistore/backend/internal/interface/http"
	"github.com/furnistore/backend/internal/interface/middleware"
	"github.com/furnistore/backend/pkg/helpers"
)

// OrderModule wires checkout and order history routes.
type OrderModule struct {
	Handler *handlers.OrderHandler
	JWT     *helpers.JWTManager
}

func NewOrderModule(h *handlers.OrderHandler, jwt *helpers.JWTManager) *OrderModule {
	return &OrderModule{Handler: h, JWT: jwt}
}

func (m *OrderModule) Register(rg *gin.RouterGroup) {
	placeLimiter := middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByUserID(), nil)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/orders", placeLimiter, m.Handler.Place)
		auth.GET("/orders", m.Handler.List)
		auth.GET("/orders/:id", m.Handler.Get)
	}
}
