package shop

import (
	"context"
	"fmt"
	"time"

	"github.com/gosimple/slug"
	"github.com/legoland/storefront/internal/models"
	"github.com/legoland/storefront/internal/repo"
)

// Admin-created products get a fixed rating and a placeholder image; the
// creation form does not ask for either.
const (
	defaultRating    = 4.6
	placeholderImage = "assets/product-custom.svg"
)

// Admin implements the dashboard operations: order status changes, product
// creation, and analytics.
type Admin struct {
	Products repo.Products
	Orders   repo.Orders
}

// ProductInput is the admin product-creation form.
type ProductInput struct {
	Name        string
	Category    string
	Price       float64
	Age         string
	Stock       int
	Description string
}

// CreateProduct appends a new product to the catalog and returns it. The id is
// derived from the slugged name plus the creation timestamp.
func (s Admin) CreateProduct(ctx context.Context, in ProductInput) (models.Product, error) {
	product := models.Product{
		ID:          newProductID(in.Name, time.Now()),
		Name:        in.Name,
		Category:    in.Category,
		Price:       in.Price,
		Rating:      defaultRating,
		Age:         in.Age,
		Stock:       in.Stock,
		Description: in.Description,
		Image:       placeholderImage,
	}
	products := s.Products.GetAll(ctx)
	products = append(products, product)
	if err := s.Products.SaveAll(ctx, products); err != nil {
		return models.Product{}, err
	}
	return product, nil
}

func newProductID(name string, now time.Time) string {
	return fmt.Sprintf("%s-%d", slug.Make(name), now.UnixMilli())
}

// SetOrderStatus moves the order to the given status. Any status can follow
// any other; Delivered is not terminal. An unknown order id is a silent no-op,
// but a status outside the enumeration is rejected so stored orders always
// carry a known status.
func (s Admin) SetOrderStatus(ctx context.Context, orderID int64, status models.OrderStatus) error {
	if !status.Valid() {
		return fmt.Errorf("unknown order status %q", status)
	}
	orders := s.Orders.GetAll(ctx)
	for i := range orders {
		if orders[i].ID == orderID {
			orders[i].Status = status
			return s.Orders.SaveAll(ctx, orders)
		}
	}
	return nil
}

// Stats summarizes the order book for the admin dashboard.
type Stats struct {
	Orders        int
	Revenue       float64
	AverageBasket float64
}

// ComputeStats derives dashboard analytics from the full order list. An empty
// order book reports an average basket of 0, not a division by zero.
func ComputeStats(orders []models.Order) Stats {
	stats := Stats{Orders: len(orders)}
	for _, order := range orders {
		stats.Revenue += order.Total
	}
	if stats.Orders > 0 {
		stats.AverageBasket = stats.Revenue / float64(stats.Orders)
	}
	return stats
}
