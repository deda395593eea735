package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/pulsarbalaji/storefront-client/internal/domain"
	autherror "github.com/pulsarbalaji/storefront-client/internal/errors"
	"github.com/pulsarbalaji/storefront-client/pkg/constant"
)

// CartStore is the local cart. Add increments a line by one, Remove
// decrements by one and deletes the line at zero. The stored quantities
// are advisory; the server re-prices and re-reserves at checkout and the
// cart is then replaced wholesale through SetAll.
type CartStore struct {
	mu    sync.Mutex
	path  string // empty means memory-only
	lines []domain.CartLine
}

// NewCartStore opens the cart persisted under dir, loading any previous
// contents. An empty dir gives a memory-only cart.
func NewCartStore(dir string) (*CartStore, error) {
	s := &CartStore{}
	if dir == "" {
		return s, nil
	}

	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}
	s.path = filepath.Join(dir, constant.CartFileName)

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read cart: %w", err)
	}

	if err := json.Unmarshal(data, &s.lines); err != nil {
		// Corrupted cart file: start empty rather than fail the app.
		s.lines = nil
	}

	return s, nil
}

// Add increments the quantity for p by one, creating the line on first
// add. The quantity is never raised above the last known stock.
func (s *CartStore) Add(p domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ProductID != p.ID {
			continue
		}
		if s.lines[i].Quantity >= p.Stock {
			return autherror.ErrOutOfStock
		}
		s.lines[i].Quantity++
		s.lines[i].Stock = p.Stock

		return s.persistLocked()
	}

	if p.Stock < 1 {
		return autherror.ErrOutOfStock
	}

	s.lines = append(s.lines, domain.CartLine{
		ProductID:  p.ID,
		Quantity:   1,
		Name:       p.Name,
		Price:      p.Price,
		OfferPrice: p.OfferPrice,
		Image:      p.Image,
		Stock:      p.Stock,
	})

	return s.persistLocked()
}

// Remove decrements the quantity for productID by one and deletes the
// line when it reaches zero.
func (s *CartStore) Remove(productID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ProductID != productID {
			continue
		}

		s.lines[i].Quantity--
		if s.lines[i].Quantity < 1 {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
		}

		return s.persistLocked()
	}

	return autherror.ErrProductNotInCart
}

// SetAll replaces the whole cart, used when the server's reserved items
// supersede the local state.
func (s *CartStore) SetAll(lines []domain.CartLine) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = make([]domain.CartLine, len(lines))
	copy(s.lines, lines)

	return s.persistLocked()
}

func (s *CartStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil

	return s.persistLocked()
}

// Items returns a copy of the current cart in insertion order.
func (s *CartStore) Items() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]domain.CartLine, len(s.lines))
	copy(items, s.lines)

	return items
}

func (s *CartStore) persistLocked() error {
	if s.path == "" {
		return nil
	}

	data, err := json.Marshal(s.lines)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("write cart: %w", err)
	}

	return nil
}
