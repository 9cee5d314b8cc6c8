// Package shop holds the storefront business rules: the cart engine, the
// checkout engine, and the admin operations. Engines read and write whole
// collections through the repositories and carry no state of their own.
package shop

import (
	"context"

	"github.com/legoland/storefront/internal/models"
	"github.com/legoland/storefront/internal/repo"
)

// Cart implements the cart rules: add with a price snapshot, remove, and
// clamped quantity updates.
type Cart struct {
	Products repo.Products
	Lines    repo.Cart
}

// Add puts one unit of the given product in the cart. An existing line for the
// product has its quantity bumped; otherwise a new line is appended carrying
// the product's current price as a snapshot. An unknown product id is a silent
// no-op.
func (s Cart) Add(ctx context.Context, productID string) error {
	var product *models.Product
	for _, p := range s.Products.GetAll(ctx) {
		if p.ID == productID {
			product = &p
			break
		}
	}
	if product == nil {
		return nil
	}

	lines := s.Lines.GetAll(ctx)
	for i := range lines {
		if lines[i].ID == productID {
			lines[i].Quantity++
			return s.Lines.SaveAll(ctx, lines)
		}
	}
	lines = append(lines, models.CartLine{
		ID:       product.ID,
		Name:     product.Name,
		Price:    product.Price,
		Image:    product.Image,
		Quantity: 1,
	})
	return s.Lines.SaveAll(ctx, lines)
}

// Remove drops the line with the given id from the cart. Removing an id that
// is not in the cart persists the cart unchanged.
func (s Cart) Remove(ctx context.Context, lineID string) error {
	lines := s.Lines.GetAll(ctx)
	kept := lines[:0]
	for _, line := range lines {
		if line.ID != lineID {
			kept = append(kept, line)
		}
	}
	return s.Lines.SaveAll(ctx, kept)
}

// SetQuantity updates the quantity of the line with the given id, clamping to
// a minimum of 1. An unknown line id is a silent no-op.
func (s Cart) SetQuantity(ctx context.Context, lineID string, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}
	lines := s.Lines.GetAll(ctx)
	for i := range lines {
		if lines[i].ID == lineID {
			lines[i].Quantity = quantity
			return s.Lines.SaveAll(ctx, lines)
		}
	}
	return nil
}

// Total is the sum of price × quantity over all lines, using each line's
// snapshot price. The empty cart totals 0.
func Total(lines []models.CartLine) float64 {
	var total float64
	for _, line := range lines {
		total += line.Price * float64(line.Quantity)
	}
	return total
}

// Count is the number of units in the cart, shown on the cart badge.
func Count(lines []models.CartLine) int {
	var count int
	for _, line := range lines {
		count += line.Quantity
	}
	return count
}
