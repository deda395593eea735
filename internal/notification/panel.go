// Package notification maintains the polled notification panel: a local
// mirror of the customer's notifications with optimistic read state.
package notification

//go:generate mockgen -destination=../mocks/mock_notification_api.go -package=mocks -mock_names=API=MockNotificationAPI github.com/pulsarbalaji/storefront-client/internal/notification API

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/pulsarbalaji/storefront-client/internal/domain"
	"github.com/pulsarbalaji/storefront-client/internal/dto"
)

// API is the slice of the backend contract the panel consumes.
type API interface {
	FetchNotifications(ctx context.Context, customerID int) (*dto.NotificationList, error)
	MarkNotificationRead(ctx context.Context, id int) error
	MarkAllNotificationsRead(ctx context.Context, customerID int) error
	DeleteNotification(ctx context.Context, id int) error
	ClearNotifications(ctx context.Context, customerID int) error
}

type Panel struct {
	api        API
	customerID int

	mu     sync.Mutex
	items  []domain.Notification
	unread int
}

func NewPanel(api API, customerID int) *Panel {
	return &Panel{api: api, customerID: customerID}
}

// Refresh replaces the local mirror with the server's current state.
func (p *Panel) Refresh(ctx context.Context) error {
	list, err := p.api.FetchNotifications(ctx, p.customerID)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.items = list.Data
	p.unread = 0
	for _, n := range p.items {
		if !n.IsRead {
			p.unread++
		}
	}

	return nil
}

// MarkRead flips one notification to read locally, then confirms with
// the server. The optimistic flip is reverted if the server call fails.
func (p *Panel) MarkRead(ctx context.Context, id int) error {
	flipped := p.setRead(id, true)

	if err := p.api.MarkNotificationRead(ctx, id); err != nil {
		if flipped {
			p.setRead(id, false)
		}
		return err
	}

	return nil
}

// MarkAllRead sets every notification read and zeroes the unread count,
// matching the readnotifications/all contract.
func (p *Panel) MarkAllRead(ctx context.Context) error {
	if err := p.api.MarkAllNotificationsRead(ctx, p.customerID); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	for i := range p.items {
		p.items[i].IsRead = true
	}
	p.unread = 0

	return nil
}

// Delete removes one notification locally after the server confirms.
func (p *Panel) Delete(ctx context.Context, id int) error {
	if err := p.api.DeleteNotification(ctx, id); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	for i := range p.items {
		if p.items[i].ID != id {
			continue
		}
		if !p.items[i].IsRead {
			p.unread--
		}
		p.items = append(p.items[:i], p.items[i+1:]...)
		break
	}

	return nil
}

// ClearAll deletes every notification for the customer.
func (p *Panel) ClearAll(ctx context.Context) error {
	if err := p.api.ClearNotifications(ctx, p.customerID); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.items = nil
	p.unread = 0

	return nil
}

// Items returns a copy of the current mirror.
func (p *Panel) Items() []domain.Notification {
	p.mu.Lock()
	defer p.mu.Unlock()

	items := make([]domain.Notification, len(p.items))
	copy(items, p.items)

	return items
}

func (p *Panel) Unread() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.unread
}

// Poll refreshes the panel on the given interval until ctx is cancelled.
// Errors are logged and the next tick retries; independent in-flight
// calls elsewhere are unaffected.
func (p *Panel) Poll(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := p.Refresh(ctx); err != nil {
				log.Printf("warn: notification poll failed: %v", err)
			}
		}
	}
}

func (p *Panel) setRead(id int, read bool) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i := range p.items {
		if p.items[i].ID != id {
			continue
		}
		if p.items[i].IsRead == read {
			return false
		}

		p.items[i].IsRead = read
		if read {
			p.unread--
		} else {
			p.unread++
		}

		return true
	}

	return false
}
