package client

import (
	"context"
	"fmt"

	"github.com/pulsarbalaji/storefront-client/internal/domain"
)

// Products lists the catalog. Stock values are the client's last known
// availability until checkout.
func (c *Client) Products(ctx context.Context) ([]domain.Product, error) {
	var out []domain.Product
	if err := c.getJSON(ctx, "products/", &out); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	return out, nil
}

// Product fetches a single catalog entry.
func (c *Client) Product(ctx context.Context, id int) (*domain.Product, error) {
	var out domain.Product
	if err := c.getJSON(ctx, fmt.Sprintf("products/%d/", id), &out); err != nil {
		return nil, fmt.Errorf("fetch product: %w", err)
	}

	return &out, nil
}
