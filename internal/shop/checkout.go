package shop

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"

	"github.com/legoland/storefront/internal/models"
	"github.com/legoland/storefront/internal/repo"
)

// ErrEmptyCart rejects a checkout attempt with nothing in the cart. No state
// changes when it is returned.
var ErrEmptyCart = errors.New("cart is empty")

// ShippingForm carries the checkout submission. FullName and Email identify
// the shopper when nobody is signed in; Fields holds every submitted form
// field verbatim and becomes the order's shipping record.
type ShippingForm struct {
	FullName string
	Email    string
	Fields   map[string]string
}

// Checkout turns the current cart plus a shipping form into a persisted order.
type Checkout struct {
	Cart    repo.Cart
	Orders  repo.Orders
	Session repo.Session
}

// Place creates an order from the current cart, appends it to the order list,
// and clears the cart. The acting user is the stored session user when one
// exists, otherwise a new shopper built from the form and stored as the
// session user.
func (s Checkout) Place(ctx context.Context, form ShippingForm) (models.Order, error) {
	lines := s.Cart.GetAll(ctx)
	if len(lines) == 0 {
		return models.Order{}, ErrEmptyCart
	}

	user, signedIn := s.Session.Get(ctx)
	if !signedIn {
		user = models.User{Name: form.FullName, Email: form.Email, Role: models.RoleShopper}
	}
	if err := s.Session.Set(ctx, user); err != nil {
		return models.Order{}, err
	}

	order := models.Order{
		ID:        newOrderID(),
		Items:     lines,
		Total:     Total(lines),
		Status:    models.StatusProcessing,
		PlacedAt:  time.Now().UTC(),
		UserEmail: user.Email,
		Shipping:  form.Fields,
	}

	orders := s.Orders.GetAll(ctx)
	orders = append(orders, order)
	if err := s.Orders.SaveAll(ctx, orders); err != nil {
		return models.Order{}, err
	}
	if err := s.Cart.SaveAll(ctx, []models.CartLine{}); err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// newOrderID returns a random 5-digit order id. Ids are display handles, not
// database keys; collisions are possible and accepted.
func newOrderID() int64 {
	return int64(rand.IntN(90000) + 10000)
}
