// Package repo provides typed repositories over the blob store, one per
// persisted collection.
//
// Every mutation follows the same pattern: read the full collection, change an
// in-memory copy, write the full collection back. That makes the last writer
// win — two processes mutating the same collection at once will silently
// overwrite each other. The storefront assumes a single interactive user, so
// this is a documented limitation, not a bug to fix here.
package repo

import (
	"context"

	"github.com/legoland/storefront/internal/models"
	"github.com/legoland/storefront/internal/store"
)

// Products owns the catalog collection.
type Products struct {
	Store store.Store
}

// GetAll returns the catalog in storage order.
func (r Products) GetAll(ctx context.Context) []models.Product {
	return store.Load(ctx, r.Store, store.KeyProducts, []models.Product{})
}

// SaveAll replaces the catalog.
func (r Products) SaveAll(ctx context.Context, products []models.Product) error {
	return store.Save(ctx, r.Store, store.KeyProducts, products)
}

// Cart owns the cart-line collection.
type Cart struct {
	Store store.Store
}

// GetAll returns the cart lines in storage order.
func (r Cart) GetAll(ctx context.Context) []models.CartLine {
	return store.Load(ctx, r.Store, store.KeyCart, []models.CartLine{})
}

// SaveAll replaces the cart.
func (r Cart) SaveAll(ctx context.Context, lines []models.CartLine) error {
	return store.Save(ctx, r.Store, store.KeyCart, lines)
}

// Orders owns the order collection.
type Orders struct {
	Store store.Store
}

// GetAll returns the orders in storage order, oldest first.
func (r Orders) GetAll(ctx context.Context) []models.Order {
	return store.Load(ctx, r.Store, store.KeyOrders, []models.Order{})
}

// SaveAll replaces the order list.
func (r Orders) SaveAll(ctx context.Context, orders []models.Order) error {
	return store.Save(ctx, r.Store, store.KeyOrders, orders)
}

// Session owns the single stored user.
type Session struct {
	Store store.Store
}

// Get returns the session user, or found=false when nobody is signed in.
func (r Session) Get(ctx context.Context) (models.User, bool) {
	user := store.Load[*models.User](ctx, r.Store, store.KeyUser, nil)
	if user == nil {
		return models.User{}, false
	}
	return *user, true
}

// Set stores user as the session user, replacing any previous one.
func (r Session) Set(ctx context.Context, user models.User) error {
	return store.Save(ctx, r.Store, store.KeyUser, user)
}
