package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/furnistore/backend/internal/container"
	handlers "github.com/furnistore/backend/internal/interface/http"
	"github.com/furnistore/backend/internal/interface/middleware"
	"github.com/furnistore/backend/pkg/helpers"
)

// AdminModule wires the admin surface under /api/admin. Every route runs
// behind Auth plus RequireAdmin.
type AdminModule struct {
	Handler *handlers.AdminHandler
	Orders  *handlers.OrderHandler
	JWT     *helpers.JWTManager
}

func NewAdminModule(h *handlers.AdminHandler, orders *handlers.OrderHandler, jwt *helpers.JWTManager) *AdminModule {
	return &AdminModule{Handler: h, Orders: orders, JWT: jwt}
}

func (m *AdminModule) Register(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")
	admin.Use(middleware.Auth(container.GetRedis(), m.JWT))
	admin.Use(middleware.RequireAdmin())
	admin.Use(middleware.RateLimit(container.GetRedis(), 240, time.Minute, middleware.KeyByUserID(), nil))
	{
		admin.GET("/dashboard", m.Handler.Dashboard)

		admin.POST("/products", m.Handler.CreateProduct)
		admin.PUT("/products/:id", m.Handler.UpdateProduct)
		admin.DELETE("/products/:id", m.Handler.DeleteProduct)
		admin.POST("/products/:id/image", m.Handler.UploadImage)

		admin.PUT("/orders/:id/status", m.Orders.UpdateStatus)
	}
}
