package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/legoland/storefront/internal/models"
)

// LoginInput is the sign-in form submission. Whatever arrives here becomes
// the session user; there is no credential check by design.
type LoginInput struct {
	Name  string `form:"name" binding:"required"`
	Email string `form:"email" binding:"required"`
	Role  string `form:"role"`
}

// Login stores the submitted user as the session user, overwriting any
// previous one, and sends the shopper to their profile.
func (h *Handlers) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBind(&input); err != nil {
		c.String(http.StatusBadRequest, "invalid input: "+err.Error())
		return
	}
	if input.Role == "" {
		input.Role = models.RoleShopper
	}
	user := models.User{Name: input.Name, Email: input.Email, Role: input.Role}
	if err := h.Session.Set(c.Request.Context(), user); err != nil {
		h.fail(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/profile")
}
