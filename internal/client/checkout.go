package client

import (
	"context"
	"fmt"

	"github.com/pulsarbalaji/storefront-client/internal/dto"
)

// InitiateCheckout asks the server to validate and reserve the cart.
func (c *Client) InitiateCheckout(ctx context.Context, req dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	var out dto.CheckoutResponse
	if err := c.postJSON(ctx, c.authed, "checkout-initiate/", req, &out); err != nil {
		return nil, fmt.Errorf("initiate checkout: %w", err)
	}

	return &out, nil
}

// PlaceOrder turns a reserved cart into an order.
func (c *Client) PlaceOrder(ctx context.Context, req dto.OrderPlaceRequest) (*dto.OrderPlaceResponse, error) {
	var out dto.OrderPlaceResponse
	if err := c.postJSON(ctx, c.authed, "order-place/", req, &out); err != nil {
		return nil, fmt.Errorf("place order: %w", err)
	}

	return &out, nil
}

// Orders lists the customer's orders for the tracking view.
func (c *Client) Orders(ctx context.Context, customerID int) ([]dto.Order, error) {
	var out []dto.Order
	if err := c.getJSON(ctx, fmt.Sprintf("orders/%d/", customerID), &out); err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	return out, nil
}
