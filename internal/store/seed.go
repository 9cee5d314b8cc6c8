package store

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/legoland/storefront/internal/models"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var seedYAML []byte

// DefaultProducts returns the demo catalog from the embedded seed fixture.
func DefaultProducts() ([]models.Product, error) {
	var products []models.Product
	if err := yaml.Unmarshal(seedYAML, &products); err != nil {
		return nil, fmt.Errorf("parse seed fixture: %w", err)
	}
	return products, nil
}

// EnsureDefaults populates the products, cart, and orders collections when
// they are absent. Collections that already exist are left untouched, so it is
// safe to run on every startup. The user key is deliberately not seeded:
// absence means nobody is signed in.
func EnsureDefaults(ctx context.Context, s Store) error {
	if _, found, err := s.Get(ctx, KeyProducts); err != nil {
		return err
	} else if !found {
		products, err := DefaultProducts()
		if err != nil {
			return err
		}
		if err := Save(ctx, s, KeyProducts, products); err != nil {
			return err
		}
	}
	if _, found, err := s.Get(ctx, KeyCart); err != nil {
		return err
	} else if !found {
		if err := Save(ctx, s, KeyCart, []models.CartLine{}); err != nil {
			return err
		}
	}
	if _, found, err := s.Get(ctx, KeyOrders); err != nil {
		return err
	} else if !found {
		if err := Save(ctx, s, KeyOrders, []models.Order{}); err != nil {
			return err
		}
	}
	return nil
}
