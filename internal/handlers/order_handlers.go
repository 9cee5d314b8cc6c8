package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/legoland/storefront/internal/shop"
	"github.com/legoland/storefront/internal/views"
)

// PlaceOrder handles the checkout form: it builds the shipping record from
// every submitted field verbatim and hands the cart to the checkout engine.
// An empty cart re-renders the checkout page with a blocking notice and
// changes nothing.
func (h *Handlers) PlaceOrder(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		c.String(http.StatusBadRequest, "invalid form: "+err.Error())
		return
	}
	fields := make(map[string]string, len(c.Request.PostForm))
	for key, values := range c.Request.PostForm {
		if len(values) > 0 {
			fields[key] = values[0]
		}
	}
	form := shop.ShippingForm{
		FullName: c.PostForm("fullName"),
		Email:    c.PostForm("email"),
		Fields:   fields,
	}

	ctx := c.Request.Context()
	if _, err := h.Checkout.Place(ctx, form); err != nil {
		if errors.Is(err, shop.ErrEmptyCart) {
			lines := h.CartRepo.GetAll(ctx)
			h.render(c, "Checkout", views.CheckoutPage(lines, "Your cart is empty. Add some adventures first!"))
			return
		}
		h.fail(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/order-success")
}
