package router

import (
	"github.com/furnistore/backend/internal/application"
	"github.com/furnistore/backend/internal/container"
	pginfra "github.com/furnistore/backend/internal/infrastructure/postgres"
	handlers "github.com/furnistore/backend/internal/interface/http"
	"github.com/furnistore/backend/internal/router/modules"
)

// InitModules constructs every feature module from the container singletons
// and registers it with the router registry. Called once during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()
	jwt := container.GetJWT()

	users := pginfra.NewUserRepository(pool)
	products := pginfra.NewProductRepository(pool)
	carts := pginfra.NewCartRepository(pool)
	wishlists := pginfra.NewWishlistRepository(pool)
	orders := pginfra.NewOrderRepository(pool)

	userSvc := application.NewUserService(
		users,
		jwt,
		container.GetRedis(),
		logger,
		container.GetRabbitPub(),
		cfg.VerifyEmailURL,
		cfg.ResetPasswordURL,
	)
	catalogSvc := application.NewCatalogService(
		products,
		logger,
		container.GetES(),
		cfg.ESProductsIndex,
		container.GetGCS(),
		cfg.GCSBucket,
	)
	cartSvc := application.NewCartService(carts, products)
	orderSvc := application.NewOrderService(orders, carts, products, logger)
	wishlistSvc := application.NewWishlistService(wishlists, products)
	adminSvc := application.NewAdminService(users, products, orders)

	authHandler := handlers.NewAuthHandler(userSvc, logger, cfg.CookieDomain, cfg.CookieSecure)
	userHandler := handlers.NewUserHandler(userSvc, logger)
	productHandler := handlers.NewProductHandler(catalogSvc, logger)
	cartHandler := handlers.NewCartHandler(cartSvc, logger)
	orderHandler := handlers.NewOrderHandler(orderSvc, logger)
	wishlistHandler := handlers.NewWishlistHandler(wishlistSvc, logger)
	adminHandler := handlers.NewAdminHandler(adminSvc, catalogSvc, logger)

	r.Add(modules.NewAuthModule(authHandler, jwt))
	r.Add(modules.NewUserModule(userHandler, jwt))
	r.Add(modules.NewCatalogModule(productHandler))
	r.Add(modules.NewCartModule(cartHandler, jwt))
	r.Add(modules.NewOrderModule(orderHandler, jwt))
	r.Add(modules.NewWishlistModule(wishlistHandler, jwt))
	r.Add(modules.NewAdminModule(adminHandler, orderHandler, jwt))
}
