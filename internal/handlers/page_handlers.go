package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/legoland/storefront/internal/models"
	"github.com/legoland/storefront/internal/shop"
	"github.com/legoland/storefront/internal/views"
)

// HomePage renders the catalog grid; the home and products pages share it.
func (h *Handlers) HomePage(c *gin.Context) {
	products := h.Products.GetAll(c.Request.Context())
	h.render(c, "LegoLand", views.ProductGrid(products))
}

// ProductPage renders the detail view for the product named in the ?id query
// parameter. An unknown id renders the not-found fragment with a 200: it is a
// valid empty state, not an error.
func (h *Handlers) ProductPage(c *gin.Context) {
	id := c.Query("id")
	var product *models.Product
	for _, p := range h.Products.GetAll(c.Request.Context()) {
		if p.ID == id {
			product = &p
			break
		}
	}
	h.render(c, "Product", views.ProductDetail(product))
}

// CartPage renders the cart contents.
func (h *Handlers) CartPage(c *gin.Context) {
	lines := h.CartRepo.GetAll(c.Request.Context())
	h.render(c, "Your Cart", views.CartView(lines))
}

// CheckoutPage renders the order summary and shipping form.
func (h *Handlers) CheckoutPage(c *gin.Context) {
	lines := h.CartRepo.GetAll(c.Request.Context())
	h.render(c, "Checkout", views.CheckoutPage(lines, ""))
}

// ProfilePage renders the session user and their recent orders, or the
// sign-in notice.
func (h *Handlers) ProfilePage(c *gin.Context) {
	ctx := c.Request.Context()
	var user *models.User
	if u, signedIn := h.Session.Get(ctx); signedIn {
		user = &u
	}
	orders := h.Orders.GetAll(ctx)
	h.render(c, "Your Profile", views.ProfileView(user, orders))
}

// LoginPage renders the sign-in form.
func (h *Handlers) LoginPage(c *gin.Context) {
	h.render(c, "Sign In", views.LoginPage())
}

// OrderSuccessPage renders the confirmation for the most recently placed
// order, or the no-orders notice.
func (h *Handlers) OrderSuccessPage(c *gin.Context) {
	orders := h.Orders.GetAll(c.Request.Context())
	var latest *models.Order
	if len(orders) > 0 {
		latest = &orders[len(orders)-1]
	}
	h.render(c, "Order Confirmed", views.OrderConfirmation(latest))
}

// AdminPage renders the dashboard: orders, products, and analytics.
func (h *Handlers) AdminPage(c *gin.Context) {
	ctx := c.Request.Context()
	orders := h.Orders.GetAll(ctx)
	products := h.Products.GetAll(ctx)
	h.render(c, "Admin Dashboard", views.AdminDashboard(orders, products, shop.ComputeStats(orders)))
}
