// Package routes binds every page and interaction to its handler. Bindings
// are declared once at startup; the page identifiers (home, products, product,
// cart, checkout, profile, login, order-success, admin) each map to one GET
// route, and every user interaction maps to one POST route.
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/legoland/storefront/internal/handlers"
	"github.com/legoland/storefront/internal/middleware"
)

// SetupRouter builds the full route table.
func SetupRouter(h *handlers.Handlers) *gin.Engine {
	router := gin.Default()
	router.Use(middleware.RequestID())

	// Stylesheet and product images live outside the core; serve them when the
	// directory is present.
	router.Static("/assets", "./assets")

	// --- Pages ---
	router.GET("/", h.HomePage)
	router.GET("/products", h.HomePage)
	router.GET("/product", h.ProductPage)
	router.GET("/cart", h.CartPage)
	router.GET("/checkout", h.CheckoutPage)
	router.GET("/profile", h.ProfilePage)
	router.GET("/login", h.LoginPage)
	router.GET("/order-success", h.OrderSuccessPage)
	router.GET("/admin", h.AdminPage)

	// --- Interactions ---
	cart := router.Group("/cart")
	{
		cart.POST("/add", h.AddToCart)
		cart.POST("/remove", h.RemoveLine)
		cart.POST("/quantity", h.UpdateQuantity)
	}

	router.POST("/checkout", h.PlaceOrder)
	router.POST("/login", h.Login)

	admin := router.Group("/admin")
	{
		admin.POST("/products", h.CreateProduct)
		admin.POST("/orders/status", h.UpdateOrderStatus)
	}

	return router
}
