// Package checkout implements the one-shot reconciliation between the
// local cart and the server's stock reservation.
package checkout

//go:generate mockgen -destination=../mocks/mock_checkout_api.go -package=mocks -mock_names=API=MockCheckoutAPI github.com/pulsarbalaji/storefront-client/internal/checkout API

import (
	"context"
	"fmt"
	"sync"

	"github.com/pulsarbalaji/storefront-client/internal/domain"
	"github.com/pulsarbalaji/storefront-client/internal/dto"
	autherror "github.com/pulsarbalaji/storefront-client/internal/errors"
)

// API is the slice of the backend contract the flow consumes.
type API interface {
	InitiateCheckout(ctx context.Context, req dto.CheckoutRequest) (*dto.CheckoutResponse, error)
	PlaceOrder(ctx context.Context, req dto.OrderPlaceRequest) (*dto.OrderPlaceResponse, error)
}

// State of the current reconciliation attempt. Nothing persists across a
// failed attempt; every Run starts from StateIdle.
type State int

const (
	StateIdle State = iota
	StateReconciling
	StateReconciled
	StateRejected
	StateFailed
)

// Sessions is what the flow needs to know about auth state.
type Sessions interface {
	Snapshot() (domain.Session, bool)
}

// Flow runs the cart through checkout-initiate and replaces the local
// cart with the server's authoritative reservation.
type Flow struct {
	cart    domain.CartStore
	api     API
	session Sessions

	mu    sync.Mutex
	state State
}

func NewFlow(cart domain.CartStore, api API, session Sessions) *Flow {
	return &Flow{cart: cart, api: api, session: session}
}

// Result is the reservation for one checkout attempt. Reserved is what
// order placement must submit; Warnings are informational, non-blocking
// notes about stock drift.
type Result struct {
	Reserved []domain.CartLine
	Warnings []string
}

// Run reconciles the cart against the server. On any failure the cart is
// left untouched so the user can retry; on success the cart is replaced
// wholesale with the reserved items.
func (f *Flow) Run(ctx context.Context) (*Result, error) {
	f.setState(StateIdle)

	sess, ok := f.session.Snapshot()
	if !ok || sess.AccessToken == "" {
		return nil, autherror.ErrLoginRequired
	}

	items := f.cart.Items()
	if len(items) == 0 {
		return nil, autherror.ErrEmptyCart
	}

	req := dto.CheckoutRequest{UserID: sess.User.CustomerID}
	for _, line := range items {
		req.Cart = append(req.Cart, dto.CheckoutCartLine{ProductID: line.ProductID, Qty: line.Quantity})
	}

	f.setState(StateReconciling)

	resp, err := f.api.InitiateCheckout(ctx, req)
	if err != nil {
		f.setState(StateFailed)
		return nil, fmt.Errorf("checkout reconciliation: %w", err)
	}

	if !resp.Status {
		f.setState(StateRejected)
		return nil, &autherror.CheckoutRejectedError{Message: resp.Message}
	}

	result := &Result{Reserved: reservedToLines(resp.ReservedItems)}
	for _, item := range resp.UpdatedItems {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("quantity for %s reduced to %d due to stock changes", item.ProductName, item.Qty))
	}
	for _, item := range resp.RemovedItems {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("%s removed from cart: no longer available", item.ProductName))
	}

	// The server is now authoritative for price, availability and
	// quantity; local assumptions are discarded wholesale.
	if err := f.cart.SetAll(result.Reserved); err != nil {
		f.setState(StateFailed)
		return nil, fmt.Errorf("apply reserved items: %w", err)
	}

	f.setState(StateReconciled)

	return result, nil
}

// PlaceOrder submits the reserved items and clears the cart on success.
func (f *Flow) PlaceOrder(ctx context.Context, res *Result) (*dto.OrderPlaceResponse, error) {
	sess, ok := f.session.Snapshot()
	if !ok || sess.AccessToken == "" {
		return nil, autherror.ErrLoginRequired
	}

	req := dto.OrderPlaceRequest{UserID: sess.User.CustomerID}
	for _, line := range res.Reserved {
		req.Items = append(req.Items, dto.CheckoutCartLine{ProductID: line.ProductID, Qty: line.Quantity})
	}

	resp, err := f.api.PlaceOrder(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("place order: %w", err)
	}

	if !resp.Status {
		return nil, &autherror.CheckoutRejectedError{Message: resp.Message}
	}

	if err := f.cart.Clear(); err != nil {
		return nil, fmt.Errorf("clear cart after order: %w", err)
	}

	return resp, nil
}

// State reports the current attempt's progress for the UI.
func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.state
}

func (f *Flow) setState(s State) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.state = s
}

func reservedToLines(items []dto.ReservedItem) []domain.CartLine {
	lines := make([]domain.CartLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, domain.CartLine{
			ProductID:  item.ProductID,
			Quantity:   item.Qty,
			Name:       item.ProductName,
			Price:      item.Price,
			OfferPrice: item.OfferPrice,
			Image:      item.ProductImage,
			Stock:      item.Qty,
		})
	}

	return lines
}
