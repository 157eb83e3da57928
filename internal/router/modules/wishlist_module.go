package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/furnistore/backend/internal/container"
	handlers "github.com/furnistore/backend/internal/interface/http"
	"github.com/furnistore/backend/internal/interface/middleware"
	"github.com/furnistore/backend/pkg/helpers"
)

type WishlistModule struct {
	Handler *handlers.WishlistHandler
	JWT     *helpers.JWTManager
}

func NewWishlistModule(h *handlers.WishlistHandler, jwt *helpers.JWTManager) *WishlistModule {
	return &WishlistModule{Handler: h, JWT: jwt}
}

func (m *WishlistModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.GET("/wishlist", m.Handler.Get)
		auth.POST("/wishlist", m.Handler.Add)
		auth.DELETE("/wishlist/:productId", m.Handler.Remove)
	}
}
