// Package handlers wires HTTP requests to the shop engines and the view
// renderers. GET handlers read state and render a page; POST handlers mutate
// state through an engine and redirect, so the follow-up GET repaints from the
// fresh state.
package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/legoland/storefront/internal/repo"
	"github.com/legoland/storefront/internal/shop"
	"github.com/legoland/storefront/internal/store"
	"github.com/legoland/storefront/internal/views"
	g "github.com/maragudk/gomponents"
)

// Handlers holds the dependencies shared by every route handler.
type Handlers struct {
	Products repo.Products
	CartRepo repo.Cart
	Orders   repo.Orders
	Session  repo.Session

	Cart     shop.Cart
	Checkout shop.Checkout
	Admin    shop.Admin
}

// New builds the handler set on top of the given store.
func New(s store.Store) *Handlers {
	products := repo.Products{Store: s}
	cart := repo.Cart{Store: s}
	orders := repo.Orders{Store: s}
	session := repo.Session{Store: s}

	return &Handlers{
		Products: products,
		CartRepo: cart,
		Orders:   orders,
		Session:  session,
		Cart:     shop.Cart{Products: products, Lines: cart},
		Checkout: shop.Checkout{Cart: cart, Orders: orders, Session: session},
		Admin:    shop.Admin{Products: products, Orders: orders},
	}
}

// render writes a full page: the fragment wrapped in the shared layout with
// the current cart badge count.
func (h *Handlers) render(c *gin.Context, title string, body g.Node) {
	lines := h.CartRepo.GetAll(c.Request.Context())
	page := views.Layout(title, shop.Count(lines), body)

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := page.Render(c.Writer); err != nil {
		log.Printf("render %s: %v", c.Request.URL.Path, err)
	}
}

// fail logs a mutation error and answers with a plain 500. Nothing here is
// worth a custom error page in a demo storefront.
func (h *Handlers) fail(c *gin.Context, err error) {
	log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.String(http.StatusInternalServerError, "something went wrong")
}
