package handlers

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
)

// AddToCartInput is the add-to-cart form submission.
type AddToCartInput struct {
	ProductID string `form:"productId" binding:"required"`
}

// AddToCart puts one unit of a product in the cart and sends the shopper back
// where they came from, so the page repaints with the updated badge.
func (h *Handlers) AddToCart(c *gin.Context) {
	var input AddToCartInput
	if err := c.ShouldBind(&input); err != nil {
		c.String(http.StatusBadRequest, "invalid input: "+err.Error())
		return
	}
	if err := h.Cart.Add(c.Request.Context(), input.ProductID); err != nil {
		h.fail(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, backTo(c, "/products"))
}

// RemoveLineInput is the remove-line form submission.
type RemoveLineInput struct {
	LineID string `form:"lineId" binding:"required"`
}

// RemoveLine drops a line from the cart.
func (h *Handlers) RemoveLine(c *gin.Context) {
	var input RemoveLineInput
	if err := c.ShouldBind(&input); err != nil {
		c.String(http.StatusBadRequest, "invalid input: "+err.Error())
		return
	}
	if err := h.Cart.Remove(c.Request.Context(), input.LineID); err != nil {
		h.fail(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/cart")
}

// UpdateQuantityInput is the quantity-change form submission. Zero and
// negative values are accepted here and clamped to 1 by the cart engine.
type UpdateQuantityInput struct {
	LineID   string `form:"lineId" binding:"required"`
	Quantity int    `form:"quantity"`
}

// UpdateQuantity sets a line's quantity.
func (h *Handlers) UpdateQuantity(c *gin.Context) {
	var input UpdateQuantityInput
	if err := c.ShouldBind(&input); err != nil {
		c.String(http.StatusBadRequest, "invalid input: "+err.Error())
		return
	}
	if err := h.Cart.SetQuantity(c.Request.Context(), input.LineID, input.Quantity); err != nil {
		h.fail(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/cart")
}

// backTo picks the redirect target after a mutation: the referring page when
// there is one, otherwise the fallback. Only the path is reused, so a foreign
// referrer cannot redirect the shopper off-site.
func backTo(c *gin.Context, fallback string) string {
	ref, err := url.Parse(c.Request.Referer())
	if err != nil || ref.Path == "" {
		return fallback
	}
	target := ref.Path
	if ref.RawQuery != "" {
		target += "?" + ref.RawQuery
	}
	return target
}
