package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/legoland/storefront/internal/models"
	"github.com/legoland/storefront/internal/shop"
)

// CreateProductInput is the admin product-creation form.
type CreateProductInput struct {
	Name        string  `form:"name" binding:"required"`
	Category    string  `form:"category" binding:"required"`
	Price       float64 `form:"price" binding:"gte=0"`
	Age         string  `form:"age"`
	Stock       int     `form:"stock" binding:"gte=0"`
	Description string  `form:"description"`
}

// CreateProduct appends a product to the catalog and re-renders the dashboard
// via redirect, which also presents a cleared form.
func (h *Handlers) CreateProduct(c *gin.Context) {
	var input CreateProductInput
	if err := c.ShouldBind(&input); err != nil {
		c.String(http.StatusBadRequest, "invalid input: "+err.Error())
		return
	}
	_, err := h.Admin.CreateProduct(c.Request.Context(), shop.ProductInput{
		Name:        input.Name,
		Category:    input.Category,
		Price:       input.Price,
		Age:         input.Age,
		Stock:       input.Stock,
		Description: input.Description,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin")
}

// UpdateOrderStatusInput is the status-selector form submission.
type UpdateOrderStatusInput struct {
	OrderID int64  `form:"orderId" binding:"required"`
	Status  string `form:"status" binding:"required"`
}

// UpdateOrderStatus moves an order to the selected status. A status outside
// the enumeration is rejected; an unknown order id falls through as a no-op,
// matching the storefront's original behavior.
func (h *Handlers) UpdateOrderStatus(c *gin.Context) {
	var input UpdateOrderStatusInput
	if err := c.ShouldBind(&input); err != nil {
		c.String(http.StatusBadRequest, "invalid input: "+err.Error())
		return
	}
	status := models.OrderStatus(input.Status)
	if !status.Valid() {
		c.String(http.StatusBadRequest, "unknown order status")
		return
	}
	if err := h.Admin.SetOrderStatus(c.Request.Context(), input.OrderID, status); err != nil {
		h.fail(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin")
}
