package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pulsarbalaji/storefront-client/internal/dto"
)

func (c *Client) FetchNotifications(ctx context.Context, customerID int) (*dto.NotificationList, error) {
	var out dto.NotificationList
	if err := c.getJSON(ctx, fmt.Sprintf("customer-notifications/%d/", customerID), &out); err != nil {
		return nil, fmt.Errorf("fetch notifications: %w", err)
	}

	return &out, nil
}

func (c *Client) MarkNotificationRead(ctx context.Context, id int) error {
	path := fmt.Sprintf("readnotifications/%d/", id)
	if err := c.sendJSON(ctx, c.authed, http.MethodPut, path, nil, nil); err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}

	return nil
}

func (c *Client) MarkAllNotificationsRead(ctx context.Context, customerID int) error {
	path := fmt.Sprintf("readnotifications/all/%d/", customerID)
	if err := c.sendJSON(ctx, c.authed, http.MethodPut, path, nil, nil); err != nil {
		return fmt.Errorf("mark all notifications read: %w", err)
	}

	return nil
}

func (c *Client) DeleteNotification(ctx context.Context, id int) error {
	path := fmt.Sprintf("notification/%d/", id)
	if err := c.sendJSON(ctx, c.authed, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("delete notification: %w", err)
	}

	return nil
}

func (c *Client) ClearNotifications(ctx context.Context, customerID int) error {
	path := fmt.Sprintf("notifications/clear/%d/", customerID)
	if err := c.sendJSON(ctx, c.authed, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("clear notifications: %w", err)
	}

	return nil
}
