package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/storefront-client/internal/application/admin"
	"github.com/jhoicas/storefront-client/internal/application/cart"
	"github.com/jhoicas/storefront-client/internal/application/catalog"
	"github.com/jhoicas/storefront-client/internal/application/checkout"
	"github.com/jhoicas/storefront-client/internal/application/guard"
	"github.com/jhoicas/storefront-client/internal/application/session"
	"github.com/jhoicas/storefront-client/internal/domain/entity"
	"github.com/jhoicas/storefront-client/internal/infrastructure/feed"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Cart     *cart.Store
	Catalog  *catalog.Store
	Session  *session.Store
	Guard    *guard.Guard
	Checkout *checkout.UseCase
	Admin    *admin.UseCase
	Feed     feed.Channel
}

// Router registra las vistas. Las rutas públicas de /admin (login, logout) se registran
// antes del grupo protegido para que el guard no las intercepte.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Catálogo (público)
	catalogHandler := NewCatalogHandler(deps.Catalog, deps.Feed)
	app.Get("/products", catalogHandler.List)
	app.Get("/products/feed.xml", catalogHandler.Feed)
	app.Get("/products/:id", catalogHandler.GetByID)

	// Carrito (público)
	cartHandler := NewCartHandler(deps.Cart, deps.Catalog)
	app.Get("/cart", cartHandler.Get)
	app.Post("/cart", cartHandler.Add)
	app.Put("/cart", cartHandler.Update)
	app.Delete("/cart", cartHandler.Remove)

	// Checkout, seguimiento y pago (público)
	checkoutHandler := NewCheckoutHandler(deps.Checkout)
	app.Post("/checkout", checkoutHandler.PlaceOrder)
	app.Get("/orders/track/:orderNumber", checkoutHandler.Track)
	app.Get("/orders/track/:orderNumber/receipt.pdf", checkoutHandler.Receipt)
	app.Get("/orders/email/:email", checkoutHandler.ByEmail)
	app.Post("/payment", checkoutHandler.Pay)
	app.Get("/payment/test-cards", checkoutHandler.TestCards)
	app.Post("/payment/validate-card", checkoutHandler.ValidateCard)

	// Sesión del back office (público)
	adminHandler := NewAdminHandler(deps.Session, deps.Admin, deps.Catalog)
	app.Get(guard.LoginPath, adminHandler.LoginForm)
	app.Post(guard.LoginPath, adminHandler.Login)
	app.Post("/admin/logout", adminHandler.Logout)

	// Back office (route guard)
	protected := app.Group(DashboardPath, RequireAuth(deps.Guard, deps.Session))
	protected.Get("/", adminHandler.Dashboard)

	viewProducts := RequireCapability(deps.Session, entity.CapViewProducts, entity.CapManageProducts)
	manageProducts := RequireCapability(deps.Session, entity.CapManageProducts)
	products := protected.Group("/products")
	products.Get("/", viewProducts, adminHandler.Products)
	products.Post("/", manageProducts, adminHandler.CreateProduct)
	products.Put("/:id", manageProducts, adminHandler.UpdateProduct)
	products.Delete("/:id", manageProducts, adminHandler.DeleteProduct)

	orders := protected.Group("/orders")
	orders.Get("/", adminHandler.Orders)
	orders.Put("/:id/status", adminHandler.UpdateOrderStatus)

	upload := protected.Group("/upload")
	upload.Post("/image", adminHandler.UploadImage)
	upload.Delete("/image", adminHandler.DeleteImage)

	protected.All("/*", adminHandler.Fallback)
}
