package shop

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/legoland/storefront/internal/models"
	"github.com/legoland/storefront/internal/repo"
	"github.com/legoland/storefront/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdmin(t *testing.T) (Admin, context.Context) {
	t.Helper()
	ctx := context.Background()
	s := store.NewMemory()
	require.NoError(t, store.EnsureDefaults(ctx, s))
	return Admin{Products: repo.Products{Store: s}, Orders: repo.Orders{Store: s}}, ctx
}

func TestCreateProduct(t *testing.T) {
	admin, ctx := newAdmin(t)

	product, err := admin.CreateProduct(ctx, ProductInput{
		Name:        "Pirate Cove Set",
		Category:    "Sea Adventures",
		Price:       49.5,
		Age:         "6+",
		Stock:       12,
		Description: "Build a cove with a ship and treasure.",
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(product.ID, "pirate-cove-set-"), "id %q should start with the slugged name", product.ID)
	assert.InDelta(t, 4.6, product.Rating, 0.001)
	assert.Equal(t, "assets/product-custom.svg", product.Image)

	catalog := admin.Products.GetAll(ctx)
	require.Len(t, catalog, 7)
	assert.Equal(t, product.ID, catalog[6].ID, "new product appends to the catalog")
}

func TestNewProductIDIsTimestampDerived(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	id := newProductID("Space Base!", now)
	assert.Equal(t, "space-base-1700000000000", id)
}

func TestSetOrderStatus(t *testing.T) {
	admin, ctx := newAdmin(t)
	require.NoError(t, admin.Orders.SaveAll(ctx, []models.Order{
		{ID: 11111, Status: models.StatusProcessing},
		{ID: 22222, Status: models.StatusDelivered},
	}))

	require.NoError(t, admin.SetOrderStatus(ctx, 11111, models.StatusShipped))

	orders := admin.Orders.GetAll(ctx)
	assert.Equal(t, models.StatusShipped, orders[0].Status)
	assert.Equal(t, models.StatusDelivered, orders[1].Status)

	// Delivered is not terminal; it can move back.
	require.NoError(t, admin.SetOrderStatus(ctx, 22222, models.StatusPacked))
	assert.Equal(t, models.StatusPacked, admin.Orders.GetAll(ctx)[1].Status)
}

func TestSetOrderStatusUnknownOrderIsNoOp(t *testing.T) {
	admin, ctx := newAdmin(t)
	require.NoError(t, admin.Orders.SaveAll(ctx, []models.Order{{ID: 11111, Status: models.StatusProcessing}}))

	require.NoError(t, admin.SetOrderStatus(ctx, 99999, models.StatusShipped))
	assert.Equal(t, models.StatusProcessing, admin.Orders.GetAll(ctx)[0].Status)
}

func TestSetOrderStatusRejectsUnknownStatus(t *testing.T) {
	admin, ctx := newAdmin(t)
	err := admin.SetOrderStatus(ctx, 11111, models.OrderStatus("Lost"))
	assert.Error(t, err)
}

func TestComputeStats(t *testing.T) {
	stats := ComputeStats([]models.Order{{Total: 10}, {Total: 20}, {Total: 30}})
	assert.Equal(t, 3, stats.Orders)
	assert.InDelta(t, 60.0, stats.Revenue, 0.001)
	assert.InDelta(t, 20.0, stats.AverageBasket, 0.001)
}

func TestComputeStatsEmpty(t *testing.T) {
	stats := ComputeStats(nil)
	assert.Zero(t, stats.Orders)
	assert.Zero(t, stats.Revenue)
	assert.Zero(t, stats.AverageBasket)
}
