package store

import (
	"context"
	"testing"

	"github.com/legoland/storefront/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSaveRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	lines := []models.CartLine{
		{ID: "ll-rocket", Name: "Galaxy Rocket Builder", Price: 54.99, Image: "assets/product-rocket.svg", Quantity: 2},
		{ID: "ll-zoo", Name: "Safari Zoo Board Game", Price: 29.95, Image: "assets/product-zoo.svg", Quantity: 1},
	}
	require.NoError(t, Save(ctx, s, KeyCart, lines))

	got := Load(ctx, s, KeyCart, []models.CartLine{})
	assert.Equal(t, lines, got)
}

func TestLoadMissingKeyReturnsFallback(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	got := Load(ctx, s, KeyOrders, []models.Order{})
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestLoadCorruptValueReturnsFallback(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()
	require.NoError(t, s.Set(ctx, KeyProducts, []byte("{not json")))

	fallback := []models.Product{{ID: "fallback"}}
	got := Load(ctx, s, KeyProducts, fallback)
	assert.Equal(t, fallback, got)
}

func TestLoadNilFallbackForAbsentUser(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	user := Load[*models.User](ctx, s, KeyUser, nil)
	assert.Nil(t, user)

	require.NoError(t, Save(ctx, s, KeyUser, models.User{Name: "A", Email: "a@b.com", Role: "shopper"}))
	user = Load[*models.User](ctx, s, KeyUser, nil)
	require.NotNil(t, user)
	assert.Equal(t, "a@b.com", user.Email)
}
